// Package strength rates passwords with a fixed additive checklist.
package strength

import (
	"strings"
	"unicode"
	"unicode/utf8"

	zxcvbn "github.com/ccojocar/zxcvbn-go"

	"github.com/atinyakov/passgen/internal/password"
)

// Label is the human readable verdict derived from a Score.
type Label string

const (
	Weak   Label = "Weak"
	Medium Label = "Medium"
	Strong Label = "Strong"
)

const (
	// MaxScore is the highest value Score can return.
	MaxScore = 6

	longLength     = 12
	veryLongLength = 16

	// EstimateRunes bounds the prefix of a password handed to zxcvbn,
	// whose matching cost grows steeply with input length.
	EstimateRunes = 100
)

// Result holds the checklist score and its label.
type Result struct {
	Score int   `json:"score"`
	Label Label `json:"strength"`
}

// Score awards one point each for a lowercase letter, an uppercase letter,
// a digit (superscripts and other numeric forms included), an ASCII punctuation symbol, a length of at least 12 and a length
// of at least 16. Length is counted in runes.
func Score(pw string) int {
	var lower, upper, digit, symbol bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r), unicode.Is(unicode.No, r):
			digit = true
		case strings.ContainsRune(password.SymbolChars, r):
			symbol = true
		}
	}

	score := 0
	for _, ok := range []bool{lower, upper, digit, symbol} {
		if ok {
			score++
		}
	}
	n := utf8.RuneCountInString(pw)
	if n >= longLength {
		score++
	}
	if n >= veryLongLength {
		score++
	}
	return score
}

// LabelFor maps a score to its label: up to 2 is Weak, up to 4 is Medium.
func LabelFor(score int) Label {
	switch {
	case score <= 2:
		return Weak
	case score <= 4:
		return Medium
	default:
		return Strong
	}
}

// Assess scores pw and labels the result.
func Assess(pw string) Result {
	s := Score(pw)
	return Result{Score: s, Label: LabelFor(s)}
}

// Estimate is a dictionary and pattern aware guess of how hard pw is to crack.
type Estimate struct {
	Entropy   float64 `json:"entropy"`
	CrackTime string  `json:"crack_time"`
	// Score ranges 0..4.
	Score int `json:"score"`
}

// EstimateOf runs zxcvbn over the first EstimateRunes runes of pw. It is
// informational only and never changes the checklist label.
func EstimateOf(pw string) Estimate {
	m := zxcvbn.PasswordStrength(prefix(pw, EstimateRunes), nil)
	return Estimate{
		Entropy:   m.Entropy,
		CrackTime: m.CrackTimeDisplay,
		Score:     m.Score,
	}
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
