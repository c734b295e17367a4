package grid

// Rotation is a number of clockwise quarter turns of the whole box.
type Rotation int

// The four elements of the rotation group.
const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// Rotations lists the group in evaluation order.
var Rotations = [4]Rotation{Rotate0, Rotate90, Rotate180, Rotate270}

// Normalize reduces r into 0..3.
func (r Rotation) Normalize() Rotation { return ((r % 4) + 4) % 4 }

// Inverse returns the rotation that undoes r.
func (r Rotation) Inverse() Rotation { return (4 - r.Normalize()) % 4 }

// rotationTables[r][i] is the source position of target position i after r
// clockwise quarter turns of a 5x5 matrix: new[row][col] = old[4-col][row]
// applied r times.
var rotationTables = [4][Cells]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24},
	{20, 15, 10, 5, 0, 21, 16, 11, 6, 1, 22, 17, 12, 7, 2, 23, 18, 13, 8, 3, 24, 19, 14, 9, 4},
	{24, 23, 22, 21, 20, 19, 18, 17, 16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	{4, 9, 14, 19, 24, 3, 8, 13, 18, 23, 2, 7, 12, 17, 22, 1, 6, 11, 16, 21, 0, 5, 10, 15, 20},
}

// SourcePosition returns the position of g that lands on target after r.
func SourcePosition(r Rotation, target int) int {
	return rotationTables[r.Normalize()][target]
}

// Rotate turns the whole grid r quarter turns clockwise. Each die moves per
// the rotation table and its engraving turns with the box.
// Rotate(Rotate(g, a), b) == Rotate(g, a+b); Rotate(g, 0) == g.
// Complexity: O(25).
func Rotate(g Grid, r Rotation) Grid {
	r = r.Normalize()
	if r == Rotate0 {
		return g
	}
	table := &rotationTables[r]
	var out Grid
	for i := 0; i < Cells; i++ {
		out.faces[i] = g.faces[table[i]].Rotate(int(r))
	}

	return out
}

// AllRotations returns g rotated by 0, 1, 2 and 3 quarter turns.
func AllRotations(g Grid) [4]Grid {
	var out [4]Grid
	for _, r := range Rotations {
		out[r] = Rotate(g, r)
	}

	return out
}
