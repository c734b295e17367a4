package face

import "strings"

// Alphabet sizes.
const (
	LetterCount      = 25
	DigitCount       = 6
	OrientationCount = 4
)

// Symbol tables in canonical order. The index of a symbol is its numeric value.
const (
	LetterSymbols      = "ABCDEFGHIJKLMNOPQRSTUVWXY"
	DigitSymbols       = "123456"
	OrientationSymbols = "trbl"
)

// UnsetSymbol renders any unset field in text forms.
const UnsetSymbol = '?'

// Letter is the engraved letter of a die; the zero value is unset.
type Letter byte

// Letters returns the alphabet in canonical order.
func Letters() []Letter {
	out := make([]Letter, LetterCount)
	for i := 0; i < LetterCount; i++ {
		out[i] = Letter(LetterSymbols[i])
	}

	return out
}

// Valid reports whether l is a member of the alphabet.
func (l Letter) Valid() bool { return l >= 'A' && l <= 'Y' }

// Index returns the alphabet index of l, or -1 when l is unset or invalid.
func (l Letter) Index() int {
	if !l.Valid() {
		return -1
	}

	return int(l - 'A')
}

// String implements fmt.Stringer.
func (l Letter) String() string { return string(symbol(byte(l))) }

// Digit is the pip symbol printed beside the letter; the zero value is unset.
type Digit byte

// DigitFromValue maps 0..5 to '1'..'6'.
func DigitFromValue(v int) (Digit, bool) {
	if v < 0 || v >= DigitCount {
		return 0, false
	}

	return Digit(DigitSymbols[v]), true
}

// Valid reports whether d is one of '1'..'6'.
func (d Digit) Valid() bool { return d >= '1' && d <= '6' }

// Value maps '1'..'6' to 0..5, or -1 when d is unset or invalid.
func (d Digit) Value() int {
	if !d.Valid() {
		return -1
	}

	return int(d - '1')
}

// String implements fmt.Stringer.
func (d Digit) String() string { return string(symbol(byte(d))) }

// Orientation is the rotation of a die's engraving in clockwise quarter turns.
type Orientation byte

// Orientation symbols. Unknown is the zero value.
const (
	Unknown Orientation = 0
	Upright Orientation = 't'
	Right   Orientation = 'r'
	Bottom  Orientation = 'b'
	Left    Orientation = 'l'
)

// OrientationFromTurns maps a quarter-turn count (any integer, taken mod 4)
// to its symbol.
func OrientationFromTurns(turns int) Orientation {
	return Orientation(OrientationSymbols[mod4(turns)])
}

// Valid reports whether o is one of t, r, b, l.
func (o Orientation) Valid() bool {
	return o != Unknown && strings.IndexByte(OrientationSymbols, byte(o)) >= 0
}

// Turns returns 0..3 clockwise quarter turns from upright, or -1 if unknown.
func (o Orientation) Turns() int {
	if o == Unknown {
		return -1
	}

	return strings.IndexByte(OrientationSymbols, byte(o))
}

// Rotate adds r clockwise quarter turns. Unknown stays unknown.
func (o Orientation) Rotate(r int) Orientation {
	t := o.Turns()
	if t < 0 {
		return o
	}

	return OrientationFromTurns(t + r)
}

// String implements fmt.Stringer.
func (o Orientation) String() string { return string(symbol(byte(o))) }

// Face is one die as observed. Zero-valued fields are unset.
type Face struct {
	Letter      Letter
	Digit       Digit
	Orientation Orientation
}

// New builds a Face from its three symbols.
func New(l Letter, d Digit, o Orientation) Face {
	return Face{Letter: l, Digit: d, Orientation: o}
}

// Complete reports whether letter, digit and orientation are all set.
func (f Face) Complete() bool {
	return f.Letter != 0 && f.Digit != 0 && f.Orientation != Unknown
}

// Rotate returns f with its orientation advanced by r quarter turns.
// Letter and digit are unchanged.
func (f Face) Rotate(r int) Face {
	f.Orientation = f.Orientation.Rotate(r)

	return f
}

// String renders the 3-character text form, e.g. "A1t".
func (f Face) String() string {
	return string([]byte{symbol(byte(f.Letter)), symbol(byte(f.Digit)), symbol(byte(f.Orientation))})
}

// Field names one attribute of a face. Values are bit flags so a set of
// fields fits in one Field.
type Field uint8

// Face attributes.
const (
	FieldLetter Field = 1 << iota
	FieldDigit
	FieldOrientation
)

var fieldNames = [...]struct {
	f    Field
	name string
}{
	{FieldLetter, "letter"},
	{FieldDigit, "digit"},
	{FieldOrientation, "orientation"},
}

// Has reports whether every bit of x is set in f.
func (f Field) Has(x Field) bool { return f&x == x && x != 0 }

// Names lists the attributes in f in letter, digit, orientation order.
func (f Field) Names() []string {
	var out []string
	for _, fn := range fieldNames {
		if f&fn.f != 0 {
			out = append(out, fn.name)
		}
	}

	return out
}

// String joins Names with commas; "none" for the empty set.
func (f Field) String() string {
	if f == 0 {
		return "none"
	}

	return strings.Join(f.Names(), ",")
}

// Diff returns the set of attributes on which a and b differ.
func Diff(a, b Face) Field {
	var out Field
	if a.Letter != b.Letter {
		out |= FieldLetter
	}
	if a.Digit != b.Digit {
		out |= FieldDigit
	}
	if a.Orientation != b.Orientation {
		out |= FieldOrientation
	}

	return out
}

func symbol(b byte) byte {
	if b == 0 {
		return UnsetSymbol
	}

	return b
}

func mod4(n int) int { return ((n % OrientationCount) + OrientationCount) % OrientationCount }
