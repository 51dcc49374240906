package domain

// User is a stored identity. The raw password never appears here; only the
// Argon2id hash is persisted. Users are created at signup and never mutated.
type User struct {
	Email        Email
	PasswordHash string
	Requires2FA  bool
}
