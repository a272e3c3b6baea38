// Package password assembles random passwords from a selection of
// character classes.
package password

// Class identifies one of the character sets a password can draw from.
type Class int

const (
	// Upper is the set of ASCII uppercase letters.
	Upper Class = iota
	// Lower is the set of ASCII lowercase letters.
	Lower
	// Digits is the set of decimal digits.
	Digits
	// Symbols is the set of ASCII punctuation characters.
	Symbols
)

const (
	UpperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowerChars   = "abcdefghijklmnopqrstuvwxyz"
	DigitChars   = "0123456789"
	SymbolChars  = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	classesCount = 4
)

// Chars returns the characters that belong to the class.
func (c Class) Chars() string {
	switch c {
	case Upper:
		return UpperChars
	case Lower:
		return LowerChars
	case Digits:
		return DigitChars
	case Symbols:
		return SymbolChars
	default:
		return ""
	}
}

// String returns the lowercase name of the class.
func (c Class) String() string {
	switch c {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	case Digits:
		return "digits"
	case Symbols:
		return "symbols"
	default:
		return "unknown"
	}
}

// ParseClass maps a class name as printed by String back to a Class.
func ParseClass(name string) (Class, bool) {
	for c := Upper; c <= Symbols; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// Options describes the requested password.
type Options struct {
	Length  int  `json:"length"`
	Upper   bool `json:"upper"`
	Lower   bool `json:"lower"`
	Digits  bool `json:"digits"`
	Symbols bool `json:"symbols"`
}

// Classes returns the enabled classes in a fixed order: upper, lower,
// digits, symbols.
func (o Options) Classes() []Class {
	classes := make([]Class, 0, classesCount)
	if o.Upper {
		classes = append(classes, Upper)
	}
	if o.Lower {
		classes = append(classes, Lower)
	}
	if o.Digits {
		classes = append(classes, Digits)
	}
	if o.Symbols {
		classes = append(classes, Symbols)
	}
	return classes
}

// Enabled reports whether class c is selected.
func (o Options) Enabled(c Class) bool {
	switch c {
	case Upper:
		return o.Upper
	case Lower:
		return o.Lower
	case Digits:
		return o.Digits
	case Symbols:
		return o.Symbols
	default:
		return false
	}
}

// Toggle flips class c and returns the updated options.
func (o Options) Toggle(c Class) Options {
	switch c {
	case Upper:
		o.Upper = !o.Upper
	case Lower:
		o.Lower = !o.Lower
	case Digits:
		o.Digits = !o.Digits
	case Symbols:
		o.Symbols = !o.Symbols
	}
	return o
}
