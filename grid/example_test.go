package grid_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dicekeys/fixtures"
	"github.com/katalvlaran/dicekeys/grid"
)

// ExampleSeed shows that every reading of the same box yields one seed string.
func ExampleSeed() {
	scanned := grid.Rotate(fixtures.Sample(), grid.Rotate180)

	fmt.Println(grid.Seed(scanned) == grid.Seed(fixtures.Sample()))
	fmt.Println(grid.Seed(scanned)[:12])
	// Output:
	// true
	// B5tV5tP5rQ2r
}

// ExampleValidate renders actionable diagnostics for a misread key.
func ExampleValidate() {
	misread := fixtures.WithLetter(fixtures.Alphabetical(), 5, 'Q')

	err := grid.Validate(misread.Slice(), grid.WithAllLetters())
	var ue *grid.UniquenessError
	if errors.As(err, &ue) {
		for _, line := range ue.Diagnostics() {
			fmt.Println(line)
		}
	}
	// Output:
	// 2 dice show Q (positions 5, 16)
	// no die shows F
}

// ExampleToNumber encodes a key as one integer and back.
func ExampleToNumber() {
	n, err := grid.ToNumber(fixtures.Alphabetical())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	g, _ := grid.FromNumber(n)
	fmt.Println(n)
	fmt.Print(grid.Render(g))
	// Output:
	// 0
	// A1t B1t C1t D1t E1t
	// F1t G1t H1t I1t J1t
	// K1t L1t M1t N1t O1t
	// P1t Q1t R1t S1t T1t
	// U1t V1t W1t X1t Y1t
}
