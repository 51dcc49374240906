// Package stores provides the backend implementations of the domain store
// contracts: in-memory maps for tests and development, Postgres for user
// records, and Redis for the self-expiring ban-list and 2FA challenge
// records.
//
// Backends of the same contract are interchangeable; all of them honor the
// same pre- and postconditions, so call sites never inspect which one they
// were composed with.
package stores
