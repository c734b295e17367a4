package grid

// CanonicalRotation returns the rotation of g whose text form is
// lexicographically smallest. Rotations are tried in order 0..3 and only a
// strictly smaller candidate replaces the current one, so ties keep the
// lowest rotation.
// Complexity: O(4×25).
func CanonicalRotation(g Grid) Rotation {
	best := Rotate0
	bestText := Encode(g)
	for _, r := range Rotations[1:] {
		if t := Encode(Rotate(g, r)); t < bestText {
			best, bestText = r, t
		}
	}

	return best
}

// Canonical returns the rotation-invariant representative of g:
// Canonical(g) == Canonical(Rotate(g, r)) for every r.
func Canonical(g Grid) Grid {
	return Rotate(g, CanonicalRotation(g))
}

// Seed returns the canonical text form, the literal string handed to
// secret derivation and hashed into a key id.
func Seed(g Grid) string {
	return Encode(Canonical(g))
}
