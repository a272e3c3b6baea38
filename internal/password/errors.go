package password

import (
	"errors"
	"fmt"
)

var (
	// ErrNoClassSelected is returned when every character class is disabled.
	ErrNoClassSelected = errors.New("select at least one character set")
	// ErrLengthTooShort matches any *LengthError via errors.Is.
	ErrLengthTooShort = errors.New("length too short")
)

// LengthError reports a requested length below the number of selected classes.
type LengthError struct {
	Length int
	Min    int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("length must be at least %d to include all selected sets", e.Min)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrLengthTooShort
}
