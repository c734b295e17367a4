package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dicekeys/face"
)

// Text form lengths.
const (
	TextLength       = Cells * 3 // letter, digit, orientation per face
	LegacyTextLength = Cells * 2 // letter, digit per face
)

// Encode renders the 75-character text form: for each face in row-major
// order its letter, digit and orientation symbol. Unset fields render as '?'.
// Complexity: O(25).
func Encode(g Grid) string {
	var b strings.Builder
	b.Grow(TextLength)
	for _, f := range g.faces {
		b.WriteString(f.String())
	}

	return b.String()
}

// String implements fmt.Stringer with the text form.
func (g Grid) String() string { return Encode(g) }

// Decode parses a 75-character text form, or a 50-character legacy form
// whose orientations decode as unknown. The result must be fully keyed.
// Complexity: O(25).
func Decode(s string) (Grid, error) {
	return DecodeWith(s, WithAllLetters(), WithUnknownOrientation())
}

// DecodeWith parses a text form and validates the faces with opts instead of
// the fully keyed default, e.g. to load a miscopied backup for comparison.
func DecodeWith(s string, opts ...ValidateOption) (Grid, error) {
	var width int
	switch len(s) {
	case TextLength:
		width = 3
	case LegacyTextLength:
		width = 2
	default:
		return Grid{}, fmt.Errorf("Decode: %w", &LengthError{Unit: "characters", Got: len(s), Want: []int{TextLength, LegacyTextLength}})
	}

	faces := make([]face.Face, Cells)
	for pos := range faces {
		f, err := face.Parse(s[pos*width:(pos+1)*width], pos)
		if err != nil {
			return Grid{}, fmt.Errorf("Decode: %w", err)
		}
		faces[pos] = f
	}

	g, err := FromFaces(faces, opts...)
	if err != nil {
		return Grid{}, fmt.Errorf("Decode: %w", err)
	}

	return g, nil
}
