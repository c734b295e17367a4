// Package dicekeys turns a physical DiceKey (25 dice in a 5x5 box, each
// showing a letter, a digit and an orientation) into a canonical, verifiable
// digital value that secrets can be derived from.
//
// What is a DiceKey?
//
//	A box of 25 dice. Every die carries a distinct letter A..Y and a digit
//	1..6 on each face; the face that lands up, and how far its engraving is
//	turned, is the key. Reading the box in any of its four orientations must
//	produce the same secret.
//
// Packages:
//
//	face/     : Letter, Digit, Orientation and the Face triple; symbol parsers
//	grid/     : immutable 25-face Grid: validation, rotation, canonical form,
//	             75/50-character text codec, bijective numeric codec
//	identity/ : keyId (SHA-256 of the canonical text, 16 hex chars), memo cache
//	compare/  : rotation-aware backup validation
//	fixtures/ : injectable grids and seeded generators for tests
//	cmd/dicekeys: command line front end
//
// Quick example:
//
//	g, err := grid.Decode(scanned)          // 75 characters from a scanner
//	seed := grid.Seed(g)                     // canonical text, rotation-invariant
//	id, err := identity.Attach(ctx, g, identity.SHA256())
//	n, err := grid.ToNumber(g)               // compact integer form
//
// Camera recognition, secret derivation, secret sharing and storage live
// outside this module; they exchange plain strings with it.
package dicekeys
