package face

import (
	"errors"
	"fmt"
)

// ErrSymbol is the sentinel matched by every *SymbolError.
var ErrSymbol = errors.New("face: invalid symbol")

// NoPosition marks a SymbolError raised outside of any grid position.
const NoPosition = -1

// SymbolError reports an out-of-alphabet (or unset) letter, digit or
// orientation at a grid position.
type SymbolError struct {
	Position int   // row-major grid position, or NoPosition
	Field    Field // exactly one of FieldLetter, FieldDigit, FieldOrientation
	Symbol   byte  // offending byte; 0 when the field was unset
}

// Error implements error.
func (e *SymbolError) Error() string {
	sym := "unset"
	if e.Symbol != 0 {
		sym = fmt.Sprintf("%q", e.Symbol)
	}
	if e.Position == NoPosition {
		return fmt.Sprintf("face: invalid %s symbol %s", e.Field, sym)
	}

	return fmt.Sprintf("face: invalid %s symbol %s at position %d", e.Field, sym, e.Position)
}

// Unwrap lets errors.Is(err, ErrSymbol) match.
func (e *SymbolError) Unwrap() error { return ErrSymbol }
