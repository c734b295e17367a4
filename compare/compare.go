package compare

import (
	"fmt"

	"github.com/katalvlaran/dicekeys/face"
	"github.com/katalvlaran/dicekeys/grid"
)

// Mismatch is one position whose faces differ.
type Mismatch struct {
	Position int
	Fields   face.Field // non-empty set of differing attributes
	Want     face.Face  // face in the original
	Got      face.Face  // face in the rotated candidate
}

// Row returns the row of the mismatch in the box.
func (m Mismatch) Row() int {
	r, _ := grid.Coordinate(m.Position)

	return r
}

// Col returns the column of the mismatch in the box.
func (m Mismatch) Col() int {
	_, c := grid.Coordinate(m.Position)

	return c
}

// String implements fmt.Stringer.
func (m Mismatch) String() string {
	return fmt.Sprintf("position %d (row %d, col %d): %s differs: want %s, got %s",
		m.Position, m.Row(), m.Col(), m.Fields, m.Want, m.Got)
}

// Result is the best alignment of a candidate against an original.
type Result struct {
	Rotation   grid.Rotation // turns applied to the candidate
	Candidate  grid.Grid     // candidate after Rotation
	Mismatches []Mismatch    // in position order; empty for a perfect backup
}

// Perfect reports whether the candidate matches the original exactly.
func (r Result) Perfect() bool { return len(r.Mismatches) == 0 }

// Diff lists positions where a and b differ, without rotating either.
func Diff(a, b grid.Grid) []Mismatch {
	var out []Mismatch
	for pos := 0; pos < grid.Cells; pos++ {
		fa, fb := a.At(pos), b.At(pos)
		if d := face.Diff(fa, fb); d != 0 {
			out = append(out, Mismatch{Position: pos, Fields: d, Want: fa, Got: fb})
		}
	}

	return out
}

// Compare aligns candidate with original over the four rotations and returns
// the rotation with the fewest mismatching positions. A later rotation
// replaces the current best only when strictly better.
func Compare(original, candidate grid.Grid) Result {
	var best Result
	for i, r := range grid.Rotations {
		rotated := grid.Rotate(candidate, r)
		mm := Diff(original, rotated)
		if i == 0 || len(mm) < len(best.Mismatches) {
			best = Result{Rotation: r, Candidate: rotated, Mismatches: mm}
		}
	}

	return best
}
