package grid

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/katalvlaran/dicekeys/face"
)

// Sentinel errors. Structured errors below unwrap to these, so callers match
// with errors.Is and read detail with errors.As.
var (
	// ErrLength indicates a wrong face count or text length.
	ErrLength = errors.New("grid: invalid length")

	// ErrUniqueness indicates repeated and/or absent letters.
	ErrUniqueness = errors.New("grid: letters are not a permutation of the alphabet")

	// ErrFormat indicates a numeric form that is negative or outside TotalSpace.
	ErrFormat = errors.New("grid: invalid numeric form")

	// ErrUnknownOrientation indicates an orientation was required but unknown.
	ErrUnknownOrientation = errors.New("grid: orientation unknown")
)

// LengthError reports the observed and the accepted lengths.
type LengthError struct {
	Unit string // "faces" or "characters"
	Got  int
	Want []int
}

// Error implements error.
func (e *LengthError) Error() string {
	want := make([]string, len(e.Want))
	for i, w := range e.Want {
		want[i] = fmt.Sprint(w)
	}

	return fmt.Sprintf("grid: invalid length: got %d %s, want %s", e.Got, e.Unit, strings.Join(want, " or "))
}

// Unwrap lets errors.Is(err, ErrLength) match.
func (e *LengthError) Unwrap() error { return ErrLength }

// UniquenessError lists every repeated letter with all of its positions and
// every alphabet letter that no die shows.
type UniquenessError struct {
	Repeated map[face.Letter][]int
	Absent   []face.Letter
}

// RepeatedLetters returns the keys of Repeated in alphabet order.
func (e *UniquenessError) RepeatedLetters() []face.Letter {
	out := make([]face.Letter, 0, len(e.Repeated))
	for l := range e.Repeated {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Diagnostics renders one line per problem, e.g. "2 dice show Q (positions 3, 8)"
// and "no die shows F", for display next to a rescan prompt.
func (e *UniquenessError) Diagnostics() []string {
	var out []string
	for _, l := range e.RepeatedLetters() {
		pos := e.Repeated[l]
		ps := make([]string, len(pos))
		for i, p := range pos {
			ps[i] = fmt.Sprint(p)
		}
		out = append(out, fmt.Sprintf("%d dice show %s (positions %s)", len(pos), l, strings.Join(ps, ", ")))
	}
	for _, l := range e.Absent {
		out = append(out, fmt.Sprintf("no die shows %s", l))
	}

	return out
}

// Error implements error.
func (e *UniquenessError) Error() string {
	return "grid: letters not unique: " + strings.Join(e.Diagnostics(), "; ")
}

// Unwrap lets errors.Is(err, ErrUniqueness) match.
func (e *UniquenessError) Unwrap() error { return ErrUniqueness }

// FormatError reports a numeric form that cannot be decoded.
type FormatError struct {
	Value  *big.Int
	Reason string
}

// Error implements error.
func (e *FormatError) Error() string {
	return fmt.Sprintf("grid: invalid numeric form %s: %s", e.Value, e.Reason)
}

// Unwrap lets errors.Is(err, ErrFormat) match.
func (e *FormatError) Unwrap() error { return ErrFormat }
