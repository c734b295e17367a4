package grid

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/katalvlaran/dicekeys/face"
)

// Random draws a fully keyed grid from r, or from crypto/rand when r is nil.
// Letters are drawn by index-and-remove over the shrinking alphabet, digits
// and orientations independently per die.
//
// Random grids are for tests and demonstrations only; a real key is the
// physical box.
func Random(r io.Reader) (Grid, error) {
	if r == nil {
		r = rand.Reader
	}
	remaining := face.Letters()

	var g Grid
	for pos := 0; pos < Cells; pos++ {
		li, err := uniform(r, len(remaining))
		if err != nil {
			return Grid{}, fmt.Errorf("Random: letter at %d: %w", pos, err)
		}
		di, err := uniform(r, face.DigitCount)
		if err != nil {
			return Grid{}, fmt.Errorf("Random: digit at %d: %w", pos, err)
		}
		oi, err := uniform(r, face.OrientationCount)
		if err != nil {
			return Grid{}, fmt.Errorf("Random: orientation at %d: %w", pos, err)
		}

		d, _ := face.DigitFromValue(di)
		g.faces[pos] = face.New(remaining[li], d, face.OrientationFromTurns(oi))
		remaining = append(remaining[:li], remaining[li+1:]...)
	}

	return g, nil
}

// uniform returns an unbiased integer in [0, n).
func uniform(r io.Reader, n int) (int, error) {
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}

	return int(v.Int64()), nil
}
