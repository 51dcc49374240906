package domain

import "fmt"

const minPasswordBytes = 8

// Password is a raw password that passed the length policy. It exists
// transiently to be hashed and must never be persisted or logged.
type Password string

// ParsePassword accepts s iff it is at least 8 bytes long.
func ParsePassword(s string) (Password, error) {
	if len(s) < minPasswordBytes {
		return "", fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordBytes)
	}
	return Password(s), nil
}

// String redacts the value so accidental formatting never leaks it.
func (Password) String() string { return "[redacted]" }
