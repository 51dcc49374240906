package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// LoginAttemptID correlates a login request with its pending 2FA challenge.
// Exactly one outstanding attempt exists per identity at any time.
type LoginAttemptID string

// NewLoginAttemptID mints a fresh random attempt id.
func NewLoginAttemptID() LoginAttemptID {
	return LoginAttemptID(uuid.NewString())
}

// ParseLoginAttemptID accepts s iff it is valid UUID syntax.
func ParseLoginAttemptID(s string) (LoginAttemptID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("%w: malformed login attempt id", ErrValidation)
	}
	return LoginAttemptID(s), nil
}

func (id LoginAttemptID) String() string { return string(id) }

const twoFACodeDigits = 6

// TwoFACode is a single-use six-digit challenge code.
type TwoFACode string

// NewTwoFACode generates a code from crypto/rand, one digit at a time so every
// digit is uniformly distributed.
func NewTwoFACode() (TwoFACode, error) {
	var b strings.Builder
	b.Grow(twoFACodeDigits)

	max := big.NewInt(10)
	for i := 0; i < twoFACodeDigits; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnexpected, err)
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return TwoFACode(b.String()), nil
}

// ParseTwoFACode accepts s iff it is exactly six ASCII digits.
func ParseTwoFACode(s string) (TwoFACode, error) {
	if len(s) != twoFACodeDigits {
		return "", fmt.Errorf("%w: code must be %d digits", ErrValidation, twoFACodeDigits)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", fmt.Errorf("%w: code must be numeric", ErrValidation)
		}
	}
	return TwoFACode(s), nil
}

func (c TwoFACode) String() string { return string(c) }
