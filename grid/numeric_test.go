package grid_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/dicekeys/face"
	"github.com/katalvlaran/dicekeys/fixtures"
	"github.com/katalvlaran/dicekeys/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	totalSpaceDecimal = "124127134662179891202329100571859806502566406865813504000000"
	sampleNumber      = "68323049729016156463003966852599076562774319433566044183502"
)

func bigInt(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad literal %q", s)

	return n
}

// TestSpaces pins the component ranges and their product.
func TestSpaces(t *testing.T) {
	assert.Equal(t, "15511210043330985984000000", grid.LetterSpace().String())
	assert.Equal(t, "28430288029929701376", grid.DigitSpace().String())
	assert.Equal(t, "281474976710656", grid.OrientationSpace().String())
	assert.Equal(t, totalSpaceDecimal, grid.TotalSpace().String())

	// Callers get copies.
	grid.TotalSpace().SetInt64(0)
	assert.Equal(t, totalSpaceDecimal, grid.TotalSpace().String())
}

// TestToNumber_Extremes: alphabetical encodes to 0, reversed to TotalSpace-1.
func TestToNumber_Extremes(t *testing.T) {
	n, err := grid.ToNumber(fixtures.Alphabetical())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n.Int64())

	n, err = grid.ToNumber(fixtures.Reversed())
	require.NoError(t, err)
	last := new(big.Int).Sub(grid.TotalSpace(), big.NewInt(1))
	assert.Equal(t, 0, n.Cmp(last))

	g, err := grid.FromNumber(big.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, fixtures.Alphabetical(), g)

	g, err = grid.FromNumber(last)
	require.NoError(t, err)
	assert.Equal(t, fixtures.Reversed(), g)
}

// TestToNumber_Sample pins one mid-range value.
func TestToNumber_Sample(t *testing.T) {
	n, err := grid.ToNumber(fixtures.Sample())
	require.NoError(t, err)
	assert.Equal(t, sampleNumber, n.String())

	g, err := grid.ParseNumber(sampleNumber)
	require.NoError(t, err)
	assert.Equal(t, fixtures.Sample(), g)
}

// TestToNumber_RotationNormalised: every rotation of a key encodes to the
// same number, because encoding first turns the center die upright.
func TestToNumber_RotationNormalised(t *testing.T) {
	want := bigInt(t, sampleNumber)
	for _, r := range grid.Rotations {
		n, err := grid.ToNumber(grid.Rotate(fixtures.Sample(), r))
		require.NoError(t, err)
		assert.Equal(t, 0, want.Cmp(n), "rotation %d", r)
	}
}

// TestNumeric_RoundTrip: FromNumber(ToNumber(g)) == RotateCenterUpright(g),
// and equals g when the center already reads upright.
func TestNumeric_RoundTrip(t *testing.T) {
	total := grid.TotalSpace()
	for _, g := range seededGrids(t, 4, 100) {
		upright, err := grid.RotateCenterUpright(g)
		require.NoError(t, err)
		assert.Equal(t, face.Upright, upright.At(grid.Center).Orientation)

		n, err := grid.ToNumber(g)
		require.NoError(t, err)
		assert.True(t, n.Sign() >= 0 && n.Cmp(total) < 0, "n out of range: %s", n)

		back, err := grid.FromNumber(n)
		require.NoError(t, err)
		assert.Equal(t, upright, back)

		again, err := grid.ToNumber(back)
		require.NoError(t, err)
		assert.Equal(t, 0, n.Cmp(again))
	}
}

// TestFromNumber_Bijective walks a few values around the edges of each
// component and checks they decode to valid grids that re-encode exactly.
func TestFromNumber_Bijective(t *testing.T) {
	total := grid.TotalSpace()
	os := grid.OrientationSpace()
	ds := new(big.Int).Mul(grid.DigitSpace(), os)
	values := []*big.Int{
		big.NewInt(1),
		big.NewInt(3),
		new(big.Int).Sub(os, big.NewInt(1)),
		new(big.Int).Set(os),
		new(big.Int).Sub(ds, big.NewInt(1)),
		new(big.Int).Set(ds),
		new(big.Int).Sub(total, big.NewInt(2)),
	}
	for _, v := range values {
		g, err := grid.FromNumber(v)
		require.NoError(t, err, "value %s", v)
		require.NoError(t, grid.Validate(g.Slice(), grid.WithAllLetters()))
		n, err := grid.ToNumber(g)
		require.NoError(t, err)
		assert.Equal(t, 0, v.Cmp(n), "value %s", v)
	}
}

// TestFromNumber_Errors rejects negative and out-of-range values.
func TestFromNumber_Errors(t *testing.T) {
	_, err := grid.FromNumber(big.NewInt(-1))
	assert.ErrorIs(t, err, grid.ErrFormat)

	_, err = grid.FromNumber(grid.TotalSpace())
	assert.ErrorIs(t, err, grid.ErrFormat)

	_, err = grid.FromNumber(nil)
	assert.ErrorIs(t, err, grid.ErrFormat)

	_, err = grid.ParseNumber("12ab")
	assert.ErrorIs(t, err, grid.ErrFormat)
}

// TestToNumber_Errors requires a fully keyed grid with known orientations.
func TestToNumber_Errors(t *testing.T) {
	_, err := grid.ToNumber(fixtures.WithLetter(fixtures.Alphabetical(), 0, 'B'))
	assert.ErrorIs(t, err, grid.ErrUniqueness)

	_, err = grid.ToNumber(fixtures.WithOrientation(fixtures.Alphabetical(), grid.Center, face.Unknown))
	assert.ErrorIs(t, err, face.ErrSymbol)

	_, err = grid.RotateCenterUpright(fixtures.WithOrientation(fixtures.Alphabetical(), grid.Center, face.Unknown))
	assert.ErrorIs(t, err, grid.ErrUnknownOrientation)
}
