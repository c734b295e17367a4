package face

// ParseLetter validates c as a letter symbol. pos is attached to the error.
// UnsetSymbol ('?') parses as the unset letter; callers decide whether unset
// is acceptable.
func ParseLetter(c byte, pos int) (Letter, error) {
	if c == UnsetSymbol {
		return 0, nil
	}
	if l := Letter(c); l.Valid() {
		return l, nil
	}

	return 0, &SymbolError{Position: pos, Field: FieldLetter, Symbol: c}
}

// ParseDigit validates c as a digit symbol. pos is attached to the error.
// UnsetSymbol ('?') parses as the unset digit.
func ParseDigit(c byte, pos int) (Digit, error) {
	if c == UnsetSymbol {
		return 0, nil
	}
	if d := Digit(c); d.Valid() {
		return d, nil
	}

	return 0, &SymbolError{Position: pos, Field: FieldDigit, Symbol: c}
}

// ParseOrientation validates c as an orientation symbol. UnsetSymbol ('?')
// parses as Unknown; callers decide whether Unknown is acceptable.
func ParseOrientation(c byte, pos int) (Orientation, error) {
	if c == UnsetSymbol {
		return Unknown, nil
	}
	if o := Orientation(c); o.Valid() {
		return o, nil
	}

	return Unknown, &SymbolError{Position: pos, Field: FieldOrientation, Symbol: c}
}

// Parse decodes a 3-character ("A1t") or 2-character legacy ("A1") chunk.
// The legacy form yields an Unknown orientation.
func Parse(chunk string, pos int) (Face, error) {
	if len(chunk) != 2 && len(chunk) != 3 {
		return Face{}, &SymbolError{Position: pos, Field: FieldLetter}
	}
	l, err := ParseLetter(chunk[0], pos)
	if err != nil {
		return Face{}, err
	}
	d, err := ParseDigit(chunk[1], pos)
	if err != nil {
		return Face{}, err
	}
	o := Unknown
	if len(chunk) == 3 {
		if o, err = ParseOrientation(chunk[2], pos); err != nil {
			return Face{}, err
		}
	}

	return New(l, d, o), nil
}
