package stores

import (
	"context"
	"fmt"
	"sync"

	"github.com/hexvault/authd/internal/domain"
	"github.com/hexvault/authd/internal/password"
)

// MemoryUserStore keeps identities in a process-local map. Intended for tests
// and development; behavior matches PostgresUserStore.
type MemoryUserStore struct {
	hasher *password.Hasher

	mu    sync.RWMutex
	users map[domain.Email]domain.User
}

// NewMemoryUserStore returns an empty store hashing with hasher.
func NewMemoryUserStore(hasher *password.Hasher) *MemoryUserStore {
	return &MemoryUserStore{
		hasher: hasher,
		users:  make(map[domain.Email]domain.User),
	}
}

// Add hashes the password and stores the identity. The expensive KDF runs
// outside the lock; the duplicate check is repeated under the write lock so a
// racing Add for the same email cannot clobber the first record.
func (s *MemoryUserStore) Add(ctx context.Context, email domain.Email, pw domain.Password, requires2FA bool) error {
	s.mu.RLock()
	_, exists := s.users[email]
	s.mu.RUnlock()
	if exists {
		return domain.ErrUserAlreadyExists
	}

	hash, err := s.hasher.Hash(ctx, string(pw))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnexpected, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[email]; exists {
		return domain.ErrUserAlreadyExists
	}
	s.users[email] = domain.User{
		Email:        email,
		PasswordHash: hash,
		Requires2FA:  requires2FA,
	}
	return nil
}

// Get returns an owned copy of the stored identity.
func (s *MemoryUserStore) Get(_ context.Context, email domain.Email) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

// Validate verifies pw against the stored hash.
func (s *MemoryUserStore) Validate(ctx context.Context, email domain.Email, pw domain.Password) error {
	s.mu.RLock()
	user, ok := s.users[email]
	s.mu.RUnlock()
	if !ok {
		return domain.ErrUserNotFound
	}

	ok, err := s.hasher.Verify(ctx, string(pw), user.PasswordHash)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnexpected, err)
	}
	if !ok {
		return domain.ErrInvalidCredentials
	}
	return nil
}

var _ domain.UserStore = (*MemoryUserStore)(nil)
