// Package fixtures provides explicit, injectable grids for tests and demos.
// Nothing here is process-wide state: every call builds a fresh value, and
// random grids come from the reader the caller hands in.
//
// Fixture grids are public knowledge. Never derive real secrets from them.
package fixtures

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/katalvlaran/dicekeys/face"
	"github.com/katalvlaran/dicekeys/grid"
)

// Known grids in text form.
const (
	// AlphabeticalText is A..Y in row-major order, every digit 1, every die upright.
	AlphabeticalText = "A1tB1tC1tD1tE1tF1tG1tH1tI1tJ1tK1tL1tM1tN1tO1tP1tQ1tR1tS1tT1tU1tV1tW1tX1tY1t"

	// SampleText is a scrambled key with mixed digits and orientations and an
	// upright center die. Its canonical rotation is one quarter turn.
	SampleText = "N2tT5lF1rW1rX3lQ2tH5bY5rJ1rG3tP5tA5tS5tI4lO3lV5lL3bD2rR6rC1bB5lU3lM3tE1lK2b"

	// SampleCanonicalText is Canonical(Sample()) in text form.
	SampleCanonicalText = "B5tV5tP5rQ2rN2rU3tL3lA5rH5lT5tM3rD2bS5rY5bF1bE1tR6bI4tJ1bW1bK2lC1lO3tG3rX3t"

	// ReversedText is the grid at TotalSpace-1: letters Y..A, every digit 6,
	// every die turned left except the upright center.
	ReversedText = "Y6lX6lW6lV6lU6lT6lS6lR6lQ6lP6lO6lN6lM6tL6lK6lJ6lI6lH6lG6lF6lE6lD6lC6lB6lA6l"
)

// Alphabetical returns the grid of AlphabeticalText.
func Alphabetical() grid.Grid { return MustDecode(AlphabeticalText) }

// Sample returns the grid of SampleText.
func Sample() grid.Grid { return MustDecode(SampleText) }

// Reversed returns the grid of ReversedText.
func Reversed() grid.Grid { return MustDecode(ReversedText) }

// MustDecode decodes a text form known to be valid and panics otherwise.
func MustDecode(s string) grid.Grid {
	g, err := grid.Decode(s)
	if err != nil {
		panic(fmt.Sprintf("fixtures: %v", err))
	}

	return g
}

// WithLetter returns g with the letter at pos replaced. The result usually
// repeats one letter and misses another, like a miscopied backup.
func WithLetter(g grid.Grid, pos int, l face.Letter) grid.Grid {
	f := g.At(pos)
	f.Letter = l

	return g.With(pos, f)
}

// WithDigit returns g with the digit at pos replaced.
func WithDigit(g grid.Grid, pos int, d face.Digit) grid.Grid {
	f := g.At(pos)
	f.Digit = d

	return g.With(pos, f)
}

// WithOrientation returns g with the orientation at pos replaced.
func WithOrientation(g grid.Grid, pos int, o face.Orientation) grid.Grid {
	f := g.At(pos)
	f.Orientation = o

	return g.With(pos, f)
}

// Generator produces random grids from an injected source.
type Generator struct {
	src io.Reader
}

// NewGenerator returns a Generator reading from src; nil means crypto/rand.
func NewGenerator(src io.Reader) *Generator {
	return &Generator{src: src}
}

// Seeded returns a Generator with a deterministic ChaCha8 stream, for
// reproducible property tests.
func Seeded(seed uint64) *Generator {
	var key [32]byte
	for i := 0; i < 8; i++ {
		key[i] = byte(seed >> (8 * i))
	}

	return NewGenerator(rand.NewChaCha8(key))
}

// Grid draws one grid.
func (g *Generator) Grid() (grid.Grid, error) {
	return grid.Random(g.src)
}

// Grids draws n grids.
func (g *Generator) Grids(n int) ([]grid.Grid, error) {
	out := make([]grid.Grid, 0, n)
	for i := 0; i < n; i++ {
		x, err := g.Grid()
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}

	return out, nil
}
