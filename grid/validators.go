// Package: grid
//
// Purpose:
//   - Single source of truth for face validation. Validate (error mode) and
//     Check (boolean mode) share validate, so the two can never disagree.
//
// Order of checks (first failure wins):
//   length -> per-position symbols (lowest position first) -> letter uniqueness.

package grid

import (
	"fmt"

	"github.com/katalvlaran/dicekeys/face"
)

// ValidateOption tunes what validate accepts.
type ValidateOption func(*validateOptions)

type validateOptions struct {
	allLetters         bool // every alphabet letter exactly once
	partial            bool // any field may be unset
	unknownOrientation bool // orientation may be unset
}

// WithAllLetters requires the 25 letters to be a permutation of the alphabet.
// Required before a grid is used to derive secrets.
func WithAllLetters() ValidateOption {
	return func(o *validateOptions) { o.allLetters = true }
}

// WithPartial accepts unset letters, digits and orientations, as produced by
// a scan in progress.
func WithPartial() ValidateOption {
	return func(o *validateOptions) {
		o.partial = true
		o.unknownOrientation = true
	}
}

// WithUnknownOrientation accepts unset orientations only (legacy text form).
func WithUnknownOrientation() ValidateOption {
	return func(o *validateOptions) { o.unknownOrientation = true }
}

func gatherValidateOptions(opts []ValidateOption) validateOptions {
	var o validateOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Validate returns nil when faces form a valid grid under opts, otherwise a
// *LengthError, *face.SymbolError or *UniquenessError.
// Complexity: O(25).
func Validate(faces []face.Face, opts ...ValidateOption) error {
	if err := validate(faces, gatherValidateOptions(opts)); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}

	return nil
}

// Check is the boolean form of Validate, for live input such as a scan in
// progress.
func Check(faces []face.Face, opts ...ValidateOption) bool {
	return validate(faces, gatherValidateOptions(opts)) == nil
}

// validate is the shared core behind Validate and Check.
func validate(faces []face.Face, o validateOptions) error {
	if len(faces) != Cells {
		return &LengthError{Unit: "faces", Got: len(faces), Want: []int{Cells}}
	}

	for pos, f := range faces {
		if err := validateFace(f, pos, o); err != nil {
			return err
		}
	}

	if !o.allLetters {
		return nil
	}

	seen := make(map[face.Letter][]int, face.LetterCount)
	for pos, f := range faces {
		if f.Letter != 0 {
			seen[f.Letter] = append(seen[f.Letter], pos)
		}
	}
	ue := &UniquenessError{Repeated: map[face.Letter][]int{}}
	for _, l := range face.Letters() {
		switch n := len(seen[l]); {
		case n == 0:
			ue.Absent = append(ue.Absent, l)
		case n > 1:
			ue.Repeated[l] = seen[l]
		}
	}
	if len(ue.Repeated) > 0 || len(ue.Absent) > 0 {
		return ue
	}

	return nil
}

// validateFace checks the three symbols of one face.
func validateFace(f face.Face, pos int, o validateOptions) error {
	if !(f.Letter.Valid() || (o.partial && f.Letter == 0)) {
		return &face.SymbolError{Position: pos, Field: face.FieldLetter, Symbol: byte(f.Letter)}
	}
	if !(f.Digit.Valid() || (o.partial && f.Digit == 0)) {
		return &face.SymbolError{Position: pos, Field: face.FieldDigit, Symbol: byte(f.Digit)}
	}
	if !(f.Orientation.Valid() || (o.unknownOrientation && f.Orientation == face.Unknown)) {
		return &face.SymbolError{Position: pos, Field: face.FieldOrientation, Symbol: byte(f.Orientation)}
	}

	return nil
}
