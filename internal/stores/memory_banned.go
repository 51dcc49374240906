package stores

import (
	"context"
	"sync"
	"time"

	"github.com/hexvault/authd/internal/domain"
	"github.com/hexvault/authd/internal/token"
)

// MemoryBannedTokenStore keeps the ban list in a process-local map. Entries
// carry a deadline equal to the fixed token TTL and read as absent once past
// it, mirroring the Redis backend's per-key expiry.
type MemoryBannedTokenStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time
}

// NewMemoryBannedTokenStore returns an empty ban list.
func NewMemoryBannedTokenStore() *MemoryBannedTokenStore {
	return &MemoryBannedTokenStore{entries: make(map[string]time.Time)}
}

// Add bans tok. Re-adding re-asserts the ban with a fresh full-TTL deadline.
func (s *MemoryBannedTokenStore) Add(_ context.Context, tok string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[tok] = time.Now().Add(token.TTL)
	return nil
}

// Contains reports whether tok is banned and the ban is still live.
func (s *MemoryBannedTokenStore) Contains(_ context.Context, tok string) (bool, error) {
	s.mu.RLock()
	deadline, ok := s.entries[tok]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if time.Now().After(deadline) {
		// Lazily drop the dead entry so the map does not grow unboundedly.
		s.mu.Lock()
		if d, ok := s.entries[tok]; ok && time.Now().After(d) {
			delete(s.entries, tok)
		}
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}

var _ domain.BannedTokenStore = (*MemoryBannedTokenStore)(nil)
