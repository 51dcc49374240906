package stores

import (
	"context"
	"sync"
	"time"

	"github.com/hexvault/authd/internal/domain"
)

// ChallengeTTL is how long an unverified 2FA challenge stays retrievable,
// independent of any verification activity.
const ChallengeTTL = 10 * time.Minute

type challengeEntry struct {
	challenge domain.Challenge
	deadline  time.Time
}

// MemoryTwoFACodeStore keeps 2FA challenges in a process-local map. Expired
// entries read as absent, mirroring the Redis backend's key expiry.
type MemoryTwoFACodeStore struct {
	mu      sync.RWMutex
	entries map[domain.Email]challengeEntry
}

// NewMemoryTwoFACodeStore returns an empty challenge store.
func NewMemoryTwoFACodeStore() *MemoryTwoFACodeStore {
	return &MemoryTwoFACodeStore{entries: make(map[domain.Email]challengeEntry)}
}

// Add stores the challenge for email, unconditionally overwriting any prior
// record. Last writer wins; the overwrite is what invalidates an earlier
// outstanding challenge.
func (s *MemoryTwoFACodeStore) Add(_ context.Context, email domain.Email, challenge domain.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[email] = challengeEntry{
		challenge: challenge,
		deadline:  time.Now().Add(ChallengeTTL),
	}
	return nil
}

// Get returns the live challenge for email or ErrChallengeNotFound.
func (s *MemoryTwoFACodeStore) Get(_ context.Context, email domain.Email) (domain.Challenge, error) {
	s.mu.RLock()
	entry, ok := s.entries[email]
	s.mu.RUnlock()
	if !ok || time.Now().After(entry.deadline) {
		return domain.Challenge{}, domain.ErrChallengeNotFound
	}
	return entry.challenge, nil
}

// Remove deletes the record for email. Absent records are not an error.
func (s *MemoryTwoFACodeStore) Remove(_ context.Context, email domain.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, email)
	return nil
}

var _ domain.TwoFACodeStore = (*MemoryTwoFACodeStore)(nil)
