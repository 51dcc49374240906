package domain

import (
	"fmt"
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is a syntactically valid email address. It is the natural key for all
// per-identity records and is safe to use as a map key.
type Email string

// ParseEmail validates s against standard address syntax. The stored value is
// s unchanged.
func ParseEmail(s string) (Email, error) {
	if s == "" {
		return "", fmt.Errorf("%w: email cannot be empty", ErrValidation)
	}
	if !emailPattern.MatchString(s) {
		return "", fmt.Errorf("%w: malformed email address", ErrValidation)
	}
	return Email(s), nil
}

func (e Email) String() string { return string(e) }
