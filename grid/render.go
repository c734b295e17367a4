package grid

import "strings"

// Render lays g out as five rows of five space-separated faces, the way the
// dice sit in the box:
//
//	A1t B1t C1t D1t E1t
//	F1t G1t H1t I1t J1t
//	...
func Render(g Grid) string {
	var b strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g.faces[Index(row, col)].String())
		}
		b.WriteByte('\n')
	}

	return b.String()
}
