package stores

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hexvault/authd/internal/domain"
	"github.com/hexvault/authd/internal/token"
)

// Namespaced key prefix so ban entries cannot collide with other record types.
const bannedTokenKeyPrefix = "banned_token:"

// RedisBannedTokenStore keeps the ban list in Redis. Each entry expires after
// the fixed token TTL, so a ban lives exactly as long as the token it bans
// could remain valid.
type RedisBannedTokenStore struct {
	rdb redis.UniversalClient
}

// NewRedisBannedTokenStore returns a store backed by rdb.
func NewRedisBannedTokenStore(rdb redis.UniversalClient) *RedisBannedTokenStore {
	return &RedisBannedTokenStore{rdb: rdb}
}

func bannedKey(tok string) string {
	return bannedTokenKeyPrefix + tok
}

// Add bans tok. SET is idempotent: re-adding re-asserts the ban and resets
// the expiry to the full token TTL.
func (s *RedisBannedTokenStore) Add(ctx context.Context, tok string) error {
	if err := s.rdb.Set(ctx, bannedKey(tok), true, token.TTL).Err(); err != nil {
		return fmt.Errorf("%w: ban token: %v", domain.ErrUnexpected, err)
	}
	return nil
}

// Contains reports whether tok is banned.
func (s *RedisBannedTokenStore) Contains(ctx context.Context, tok string) (bool, error) {
	n, err := s.rdb.Exists(ctx, bannedKey(tok)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: check banned token: %v", domain.ErrUnexpected, err)
	}
	return n > 0, nil
}

var _ domain.BannedTokenStore = (*RedisBannedTokenStore)(nil)
