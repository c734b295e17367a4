package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/katalvlaran/dicekeys/grid"
)

// Key id shape.
const (
	KeyIDBytes  = 8
	KeyIDLength = 2 * KeyIDBytes
)

var (
	// ErrShortDigest indicates a Hasher returned fewer than KeyIDBytes bytes.
	ErrShortDigest = errors.New("identity: digest shorter than key id")

	// ErrHash wraps any failure of the hash primitive.
	ErrHash = errors.New("identity: hash failed")
)

// Hasher is the hash primitive behind key ids. Implementations must be
// deterministic and safe for concurrent use.
type Hasher interface {
	Sum(ctx context.Context, data []byte) ([]byte, error)
}

// HasherFunc adapts a function to Hasher.
type HasherFunc func(ctx context.Context, data []byte) ([]byte, error)

// Sum implements Hasher.
func (f HasherFunc) Sum(ctx context.Context, data []byte) ([]byte, error) { return f(ctx, data) }

// SHA256 returns the standard in-process SHA-256 Hasher.
func SHA256() Hasher {
	return HasherFunc(func(_ context.Context, data []byte) ([]byte, error) {
		sum := sha256.Sum256(data)

		return sum[:], nil
	})
}

// KeyID hashes the canonical text form of g and returns the 16-hex-char id.
func KeyID(ctx context.Context, g grid.Grid, h Hasher) (string, error) {
	return keyIDFromSeed(ctx, grid.Seed(g), h)
}

func keyIDFromSeed(ctx context.Context, seed string, h Hasher) (string, error) {
	sum, err := h.Sum(ctx, []byte(seed))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHash, err)
	}
	if len(sum) < KeyIDBytes {
		return "", fmt.Errorf("KeyID: got %d bytes: %w", len(sum), ErrShortDigest)
	}

	return hex.EncodeToString(sum[:KeyIDBytes]), nil
}

// ValidKeyID reports whether s has the shape of a key id.
func ValidKeyID(s string) bool {
	if len(s) != KeyIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return false
		}
	}

	return true
}

// Identified is a grid with its keyId attached. The id is set once by Attach
// and never changes; two Identified values are the same key when their ids
// match.
type Identified struct {
	grid  grid.Grid
	keyID string
}

// Attach validates g as a fully keyed grid and derives its key id.
func Attach(ctx context.Context, g grid.Grid, h Hasher) (Identified, error) {
	if err := grid.Validate(g.Slice(), grid.WithAllLetters(), grid.WithUnknownOrientation()); err != nil {
		return Identified{}, fmt.Errorf("Attach: %w", err)
	}
	id, err := KeyID(ctx, g, h)
	if err != nil {
		return Identified{}, fmt.Errorf("Attach: %w", err)
	}

	return Identified{grid: g, keyID: id}, nil
}

// Grid returns the grid as it was read (not canonicalised).
func (i Identified) Grid() grid.Grid { return i.grid }

// KeyID returns the attached key id; empty for the zero value.
func (i Identified) KeyID() string { return i.keyID }

// Seed returns the canonical text form the id was derived from.
func (i Identified) Seed() string { return grid.Seed(i.grid) }

// Same reports whether i and o identify the same key.
func (i Identified) Same(o Identified) bool {
	return i.keyID != "" && i.keyID == o.keyID
}

// String implements fmt.Stringer.
func (i Identified) String() string { return i.keyID }
