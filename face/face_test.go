package face_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/dicekeys/face"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLetters_Alphabet checks the alphabet is A..Y in order with matching indices.
func TestLetters_Alphabet(t *testing.T) {
	letters := face.Letters()
	require.Len(t, letters, face.LetterCount)
	assert.Equal(t, face.Letter('A'), letters[0])
	assert.Equal(t, face.Letter('Q'), letters[16])
	assert.Equal(t, face.Letter('Y'), letters[24])
	for i, l := range letters {
		assert.Equal(t, i, l.Index(), "index of %s", l)
	}
	assert.False(t, face.Letter('Z').Valid(), "Z is outside the alphabet")
	assert.Equal(t, -1, face.Letter(0).Index())
}

// TestDigit_Values covers the 1..6 <-> 0..5 mapping.
func TestDigit_Values(t *testing.T) {
	for v := 0; v < face.DigitCount; v++ {
		d, ok := face.DigitFromValue(v)
		require.True(t, ok)
		assert.Equal(t, v, d.Value())
	}
	_, ok := face.DigitFromValue(6)
	assert.False(t, ok)
	assert.Equal(t, -1, face.Digit('0').Value())
	assert.Equal(t, "?", face.Digit(0).String())
}

// TestOrientation_Turns covers symbol <-> quarter turn mapping and rotation.
func TestOrientation_Turns(t *testing.T) {
	cases := []struct {
		o     face.Orientation
		turns int
	}{
		{face.Upright, 0},
		{face.Right, 1},
		{face.Bottom, 2},
		{face.Left, 3},
		{face.Unknown, -1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.turns, tc.o.Turns(), "turns of %s", tc.o)
	}

	assert.Equal(t, face.Left, face.Upright.Rotate(3))
	assert.Equal(t, face.Upright, face.Left.Rotate(1))
	assert.Equal(t, face.Bottom, face.Right.Rotate(-3))
	assert.Equal(t, face.Unknown, face.Unknown.Rotate(2), "unknown stays unknown")
	assert.Equal(t, face.Right, face.OrientationFromTurns(5))
}

// TestFace_StringAndRotate verifies text rendering and that rotation only
// touches the orientation.
func TestFace_StringAndRotate(t *testing.T) {
	f := face.New('Q', '4', face.Right)
	assert.Equal(t, "Q4r", f.String())
	assert.True(t, f.Complete())

	g := f.Rotate(2)
	assert.Equal(t, "Q4l", g.String())
	assert.Equal(t, f.Letter, g.Letter)
	assert.Equal(t, f.Digit, g.Digit)

	partial := face.Face{Letter: 'B'}
	assert.False(t, partial.Complete())
	assert.Equal(t, "B??", partial.String())
}

// TestParse covers 3-char, legacy 2-char and failure positions.
func TestParse(t *testing.T) {
	f, err := face.Parse("C5b", 7)
	require.NoError(t, err)
	assert.Equal(t, face.New('C', '5', face.Bottom), f)

	f, err = face.Parse("C5", 7)
	require.NoError(t, err)
	assert.Equal(t, face.Unknown, f.Orientation)

	f, err = face.Parse("C5?", 7)
	require.NoError(t, err)
	assert.Equal(t, face.Unknown, f.Orientation)

	_, err = face.Parse("Z5t", 9)
	var se *face.SymbolError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 9, se.Position)
	assert.Equal(t, face.FieldLetter, se.Field)
	assert.Equal(t, byte('Z'), se.Symbol)
	assert.ErrorIs(t, err, face.ErrSymbol)

	_, err = face.Parse("C7t", 3)
	require.True(t, errors.As(err, &se))
	assert.Equal(t, face.FieldDigit, se.Field)
	assert.Contains(t, err.Error(), "position 3")

	_, err = face.Parse("C1x", 4)
	require.True(t, errors.As(err, &se))
	assert.Equal(t, face.FieldOrientation, se.Field)
}

// TestDiff reports exactly the differing attributes.
func TestDiff(t *testing.T) {
	a := face.New('B', '1', face.Upright)

	assert.Equal(t, face.Field(0), face.Diff(a, a))
	assert.Equal(t, face.FieldLetter, face.Diff(a, face.New('G', '1', face.Upright)))

	d := face.Diff(a, face.New('B', '2', face.Left))
	assert.True(t, d.Has(face.FieldDigit))
	assert.True(t, d.Has(face.FieldOrientation))
	assert.False(t, d.Has(face.FieldLetter))
	assert.Equal(t, []string{"digit", "orientation"}, d.Names())
	assert.Equal(t, "digit,orientation", d.String())
	assert.Equal(t, "none", face.Field(0).String())
}

// TestSymbolError_Unset renders an unset field without a position.
func TestSymbolError_Unset(t *testing.T) {
	err := &face.SymbolError{Position: face.NoPosition, Field: face.FieldDigit}
	assert.Equal(t, "face: invalid digit symbol unset", err.Error())
}

// TestParse_UnsetSymbols: '?' parses to the zero value in every slot, so a
// partial reading survives its own text form.
func TestParse_UnsetSymbols(t *testing.T) {
	f, err := face.Parse("???", 4)
	require.NoError(t, err)
	assert.Equal(t, face.Face{}, f)
	assert.Equal(t, "???", f.String())

	f, err = face.Parse("?3", 5)
	require.NoError(t, err)
	assert.Equal(t, face.Face{Digit: '3'}, f)
}
