package grid

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/dicekeys/face"
)

// Numeric form layout. The center die is upright after normalisation, so its
// orientation carries no information and is not encoded; its digit is.
//
//	value = (letterRank × DigitSpace + digitValue) × OrientationSpace + orientationValue
//
//	letterRank        Lehmer rank of the letter permutation   ∈ [0, 25!)
//	digitValue        base-6 digits, position 0 most significant ∈ [0, 6^25)
//	orientationValue  base-4 turns, center skipped, position 0 most significant ∈ [0, 4^24)
const (
	digitPositions       = Cells
	orientationPositions = Cells - 1
)

var (
	factorials       = factorialTable(face.LetterCount)
	letterSpace      = new(big.Int).Set(factorials[face.LetterCount])
	digitSpace       = new(big.Int).Exp(big.NewInt(face.DigitCount), big.NewInt(digitPositions), nil)
	orientationSpace = new(big.Int).Exp(big.NewInt(face.OrientationCount), big.NewInt(orientationPositions), nil)
	totalSpace       = new(big.Int).Mul(new(big.Int).Mul(letterSpace, digitSpace), orientationSpace)
)

// LetterSpace returns 25!, the number of letter permutations.
func LetterSpace() *big.Int { return new(big.Int).Set(letterSpace) }

// DigitSpace returns 6^25.
func DigitSpace() *big.Int { return new(big.Int).Set(digitSpace) }

// OrientationSpace returns 4^24.
func OrientationSpace() *big.Int { return new(big.Int).Set(orientationSpace) }

// TotalSpace returns the number of distinct center-upright, fully keyed grids.
// Every ToNumber result is in [0, TotalSpace).
func TotalSpace() *big.Int { return new(big.Int).Set(totalSpace) }

// RotateCenterUpright rotates g so that its center die reads upright:
// by 1 if it reads left, 2 if bottom, 3 if right.
func RotateCenterUpright(g Grid) (Grid, error) {
	turns := g.faces[Center].Orientation.Turns()
	if turns < 0 {
		return Grid{}, fmt.Errorf("RotateCenterUpright: center die: %w", ErrUnknownOrientation)
	}

	return Rotate(g, Rotation(turns).Inverse()), nil
}

// ToNumber encodes a fully keyed grid with known orientations as a single
// integer in [0, TotalSpace). The grid is first rotated center-upright, so
// FromNumber(ToNumber(g)) == RotateCenterUpright(g).
// Complexity: O(25²).
func ToNumber(g Grid) (*big.Int, error) {
	if err := Validate(g.faces[:], WithAllLetters()); err != nil {
		return nil, fmt.Errorf("ToNumber: %w", err)
	}
	g, err := RotateCenterUpright(g)
	if err != nil {
		return nil, fmt.Errorf("ToNumber: %w", err)
	}

	digits := make([]int, 0, digitPositions)
	turns := make([]int, 0, orientationPositions)
	for pos, f := range g.faces {
		digits = append(digits, f.Digit.Value())
		if pos != Center {
			turns = append(turns, f.Orientation.Turns())
		}
	}

	v := letterRank(g)
	v.Mul(v, digitSpace).Add(v, horner(digits, face.DigitCount))
	v.Mul(v, orientationSpace).Add(v, horner(turns, face.OrientationCount))

	return v, nil
}

// FromNumber decodes a value produced by ToNumber. The result is fully keyed
// and its center die is upright.
// Complexity: O(25²).
func FromNumber(n *big.Int) (Grid, error) {
	if n == nil {
		return Grid{}, fmt.Errorf("FromNumber: %w", &FormatError{Reason: "missing value"})
	}
	if n.Sign() < 0 {
		return Grid{}, fmt.Errorf("FromNumber: %w", &FormatError{Value: new(big.Int).Set(n), Reason: "negative"})
	}
	if n.Cmp(totalSpace) >= 0 {
		return Grid{}, fmt.Errorf("FromNumber: %w", &FormatError{Value: new(big.Int).Set(n), Reason: "not below TotalSpace"})
	}

	rest, orientationValue := new(big.Int).QuoRem(n, orientationSpace, new(big.Int))
	rank, digitValue := new(big.Int).QuoRem(rest, digitSpace, new(big.Int))

	letters := unrankLetters(rank)
	digits := unhorner(digitValue, face.DigitCount, digitPositions)
	turns := unhorner(orientationValue, face.OrientationCount, orientationPositions)

	var g Grid
	t := 0
	for pos := 0; pos < Cells; pos++ {
		d, _ := face.DigitFromValue(digits[pos])
		o := face.Upright
		if pos != Center {
			o = face.OrientationFromTurns(turns[t])
			t++
		}
		g.faces[pos] = face.New(letters[pos], d, o)
	}

	return g, nil
}

// ParseNumber parses a base-10 numeric form and decodes it.
func ParseNumber(s string) (Grid, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Grid{}, fmt.Errorf("ParseNumber: %w", &FormatError{Reason: fmt.Sprintf("%q is not a base-10 integer", s)})
	}

	return FromNumber(n)
}

// letterRank is the factorial-number-system rank of g's letters as a
// permutation of the alphabet: each position contributes k × (24−pos)!, where
// k is the letter's index among the letters not yet used.
func letterRank(g Grid) *big.Int {
	remaining := face.Letters()
	rank := new(big.Int)
	term := new(big.Int)
	for pos, f := range g.faces {
		k := indexOf(remaining, f.Letter)
		term.Mul(big.NewInt(int64(k)), factorials[Cells-1-pos])
		rank.Add(rank, term)
		remaining = append(remaining[:k], remaining[k+1:]...)
	}

	return rank
}

// unrankLetters inverts letterRank for rank ∈ [0, 25!).
func unrankLetters(rank *big.Int) []face.Letter {
	remaining := face.Letters()
	out := make([]face.Letter, 0, Cells)
	r := new(big.Int).Set(rank)
	for pos := 0; pos < Cells; pos++ {
		k, m := new(big.Int).QuoRem(r, factorials[Cells-1-pos], new(big.Int))
		r = m
		i := int(k.Int64())
		out = append(out, remaining[i])
		remaining = append(remaining[:i], remaining[i+1:]...)
	}

	return out
}

// horner folds base-b digits, most significant first.
func horner(digits []int, base int64) *big.Int {
	v := new(big.Int)
	b := big.NewInt(base)
	for _, d := range digits {
		v.Mul(v, b).Add(v, big.NewInt(int64(d)))
	}

	return v
}

// unhorner splits v into n base-b digits, most significant first.
func unhorner(v *big.Int, base int64, n int) []int {
	out := make([]int, n)
	r := new(big.Int).Set(v)
	b := big.NewInt(base)
	d := new(big.Int)
	for i := n - 1; i >= 0; i-- {
		r.QuoRem(r, b, d)
		out[i] = int(d.Int64())
	}

	return out
}

func factorialTable(n int) []*big.Int {
	out := make([]*big.Int, n+1)
	out[0] = big.NewInt(1)
	for i := 1; i <= n; i++ {
		out[i] = new(big.Int).Mul(out[i-1], big.NewInt(int64(i)))
	}

	return out
}

func indexOf(letters []face.Letter, l face.Letter) int {
	for i, x := range letters {
		if x == l {
			return i
		}
	}

	return -1
}
