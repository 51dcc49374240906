// Package auth orchestrates the signup, login, verify-2fa, logout, and
// verify-token protocol over the credential, ban-list, and challenge stores.
//
// It is the only package with cross-store knowledge. Malformed input fails
// fast before any store is touched, and there are no cross-store
// transactions: each operation tolerates the partial failures documented on
// its method.
package auth
