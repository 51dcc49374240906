package domain

import "context"

// UserStore persists identities and validates credentials. Implementations
// hash the password before persisting; the raw value is never written.
type UserStore interface {
	// Add stores a new identity. Returns ErrUserAlreadyExists if the email is
	// already present.
	Add(ctx context.Context, email Email, password Password, requires2FA bool) error
	// Get returns an owned copy of the stored identity or ErrUserNotFound.
	Get(ctx context.Context, email Email) (User, error)
	// Validate checks the password against the stored hash. Returns
	// ErrUserNotFound for an unknown email and ErrInvalidCredentials on a
	// hash mismatch.
	Validate(ctx context.Context, email Email, password Password) error
}

// BannedTokenStore tracks session tokens that must be rejected before their
// natural expiry. Add is idempotent: re-adding a banned token simply
// re-asserts the ban.
type BannedTokenStore interface {
	Add(ctx context.Context, token string) error
	Contains(ctx context.Context, token string) (bool, error)
}

// Challenge is the outstanding 2FA record for one identity.
type Challenge struct {
	AttemptID LoginAttemptID
	Code      TwoFACode
}

// TwoFACodeStore holds at most one live challenge per identity. Add
// unconditionally overwrites any prior record for the email; the overwrite is
// what invalidates an earlier outstanding challenge.
type TwoFACodeStore interface {
	Add(ctx context.Context, email Email, challenge Challenge) error
	// Get returns the stored challenge or ErrChallengeNotFound when absent or
	// TTL-expired.
	Get(ctx context.Context, email Email) (Challenge, error)
	// Remove deletes the record for email. Removing an absent record is not
	// an error.
	Remove(ctx context.Context, email Email) error
}

// EmailClient is the notification port used to deliver 2FA codes. The real
// transport lives outside this service.
type EmailClient interface {
	Send(ctx context.Context, recipient Email, subject, body string) error
}
