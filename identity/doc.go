// Package identity derives the keyId of a DiceKey and attaches it to the grid.
//
// A keyId is the first 8 bytes of SHA-256 over the canonical text form,
// rendered as 16 lowercase hex characters. It is a stable, non-secret label
// for a key across processes and devices; 64 bits are enough to tell a
// user's keys apart, not to commit to one.
//
// Hashing is the only operation of the module that may block, so it goes
// through the Hasher interface and takes a context. Everything else about a
// key stays a pure value:
//
//	id, err := identity.Attach(ctx, g, identity.SHA256())
//	id.KeyID() // "ffbe8b4ea4c902a8"
//
// Cache memoises keyIds by canonical text and collapses concurrent
// derivations of the same key into one hash call.
package identity
