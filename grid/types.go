package grid

import "github.com/katalvlaran/dicekeys/face"

// Layout constants.
const (
	Size   = 5           // dice per row and per column
	Cells  = Size * Size // dice per grid
	Center = Cells / 2   // row-major position of the center die
)

// Grid is an immutable arrangement of 25 faces in row-major order.
// Grid values are comparable with ==.
type Grid struct {
	faces [Cells]face.Face
}

// FromFaces validates faces and copies them into a Grid.
// Without options every face must be complete and symbol-valid; pass
// WithAllLetters before using the grid as a secret.
func FromFaces(faces []face.Face, opts ...ValidateOption) (Grid, error) {
	if err := Validate(faces, opts...); err != nil {
		return Grid{}, err
	}

	return fromSlice(faces), nil
}

// fromSlice copies exactly Cells faces without validation.
func fromSlice(faces []face.Face) Grid {
	var g Grid
	copy(g.faces[:], faces)

	return g
}

// At returns the face at row-major position i. An i outside 0..24 is a
// programmer error and panics; use Lookup for positions from user input.
func (g Grid) At(i int) face.Face { return g.faces[i] }

// Lookup returns the face at row-major position i, or false when i is
// outside 0..24.
func (g Grid) Lookup(i int) (face.Face, bool) {
	if i < 0 || i >= Cells {
		return face.Face{}, false
	}

	return g.faces[i], true
}

// Faces returns a copy of all faces in row-major order.
func (g Grid) Faces() [Cells]face.Face { return g.faces }

// Slice returns the faces as a freshly allocated slice.
func (g Grid) Slice() []face.Face {
	out := make([]face.Face, Cells)
	copy(out, g.faces[:])

	return out
}

// With returns a copy of g whose position i holds f. Used to express scan
// corrections and test fixtures; the result is not re-validated.
func (g Grid) With(i int, f face.Face) Grid {
	g.faces[i] = f

	return g
}

// Index maps (row, col) to a row-major position.
// Complexity: O(1).
func Index(row, col int) int { return row*Size + col }

// Coordinate maps a row-major position back to (row, col).
// Complexity: O(1).
func Coordinate(i int) (row, col int) { return i / Size, i % Size }
