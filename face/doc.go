// Package face models a single die of a DiceKey: the letter engraved on its
// upward face, the digit next to it and the rotation of that engraving.
//
// What:
//
//   - Letter: one of the 25 symbols A..Y (each die of a key carries a distinct one).
//   - Digit: one of the pip symbols 1..6.
//   - Orientation: t (upright), r, b, l for 0..3 clockwise quarter turns;
//     the zero value is the unknown orientation, rendered as '?'.
//   - Face: the (Letter, Digit, Orientation) triple. Any field left at its zero
//     value is unset, which is how scanners report partial readings.
//
// Why:
//
//   - Keeps symbol tables and their numeric mappings in one place, so the
//     grid codecs (text, numeric) cannot drift from each other.
//   - Symbol parsers attach the grid position to every failure.
//
// Errors:
//
//   - ErrSymbol: wrapped by *SymbolError, which names the position, the field
//     and the offending byte.
package face
