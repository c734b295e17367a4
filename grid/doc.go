// Package grid is the value model of a DiceKey: 25 dice in a 5x5 box, read in
// row-major order, turned into a canonical, verifiable, serialisable value.
//
// What:
//
//   - Grid: an immutable [25]face.Face value. Position 12 is the center die.
//   - Validate / Check: one validation core with two modes (error / bool).
//   - Rotate: the 4-fold rotation group acting on positions and on every
//     die's orientation.
//   - Canonical / Seed: the rotation with the lexicographically smallest text
//     form, so any reading of the same physical key yields identical bytes.
//   - Encode / Decode: the 75-character text form (50-character legacy form
//     is accepted on decode).
//   - ToNumber / FromNumber: bijection between center-upright, fully keyed
//     grids and [0, TotalSpace).
//
// Why:
//
//   - The canonical text form is the seed string handed to secret derivation.
//     An off-by-one in a rotation table or codec silently changes every
//     derived secret, so every transform here is table driven and pure.
//
// Complexity:
//
//   - Validate, Rotate, Encode, Decode: O(25).
//   - Canonical: 4 rotations and 4 encodings, O(100).
//   - ToNumber / FromNumber: O(25²) Lehmer steps over big integers.
//
// Errors:
//
//   - ErrLength:      *LengthError, wrong face count or text length.
//   - face.ErrSymbol: *face.SymbolError, bad symbol at a position.
//   - ErrUniqueness:  *UniquenessError, repeated and/or absent letters.
//   - ErrFormat:      *FormatError, numeric form negative or out of range.
//   - ErrUnknownOrientation: numeric encoding needs every orientation.
package grid
