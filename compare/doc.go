// Package compare validates a hand-copied backup of a DiceKey against the
// original, whatever way round the backup was scanned.
//
// What:
//
//   - Diff: per-position differences between two grids held still.
//   - Compare: tries the candidate in all four rotations and keeps the one
//     with the fewest mismatching positions. Ties keep the lowest rotation
//     amount, scanning 0, 1, 2, 3.
//
// A Result with no mismatches is a perfect backup. Otherwise each Mismatch
// names a position and which of letter, digit and orientation differ, which
// is what a UI needs to say "the die at row 1, column 4 should show B".
//
// Complexity: O(4×25).
package compare
