package domain

import "errors"

var (
	// ErrValidation marks malformed client input. Every Parse* failure wraps it.
	ErrValidation = errors.New("invalid input")

	// ErrUserAlreadyExists is returned by UserStore.Add for a duplicate email.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUserNotFound is returned when no user is stored under an email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when a password does not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrChallengeNotFound is returned when no 2FA challenge is stored for an
	// email, or the stored one has expired.
	ErrChallengeNotFound = errors.New("2fa challenge not found")
	// ErrChallengeMismatch is returned when the attempt id or code does not
	// match the outstanding challenge.
	ErrChallengeMismatch = errors.New("2fa challenge mismatch")

	// ErrMissingToken is returned when a request that requires the session
	// cookie arrives without one.
	ErrMissingToken = errors.New("missing auth token")
	// ErrTokenRevoked is returned for a token that validates cryptographically
	// but is on the ban list.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrUnexpected wraps backend, hashing, and (de)serialization failures.
	// The underlying cause is chained for diagnostics and never rendered to
	// the client verbatim.
	ErrUnexpected = errors.New("unexpected error")
)
