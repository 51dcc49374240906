package stores

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexvault/authd/internal/domain"
	"github.com/hexvault/authd/internal/token"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, redis.UniversalClient) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})
	return mr, rdb
}

func TestRedisBannedTokenStore(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := NewRedisBannedTokenStore(rdb)
	ctx := context.Background()

	banned, err := store.Contains(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, banned)

	require.NoError(t, store.Add(ctx, "tok"))

	banned, err = store.Contains(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, banned)

	// Re-adding is idempotent and resets the expiry.
	require.NoError(t, store.Add(ctx, "tok"))

	// The entry lives exactly as long as the token could remain valid.
	mr.FastForward(token.TTL - time.Second)
	banned, err = store.Contains(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, banned)

	mr.FastForward(2 * time.Second)
	banned, err = store.Contains(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, banned)
}

func TestRedisBannedTokenStoreKeyNamespace(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := NewRedisBannedTokenStore(rdb)

	require.NoError(t, store.Add(context.Background(), "tok"))
	assert.True(t, mr.Exists("banned_token:tok"))
}

func TestRedisTwoFACodeStoreRoundTrip(t *testing.T) {
	_, rdb := newTestRedis(t)
	store := NewRedisTwoFACodeStore(rdb)
	ctx := context.Background()
	email := domain.Email("user@example.com")
	challenge := newChallenge(t)

	require.NoError(t, store.Add(ctx, email, challenge))

	got, err := store.Get(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, challenge, got)
}

func TestRedisTwoFACodeStoreOverwrite(t *testing.T) {
	_, rdb := newTestRedis(t)
	store := NewRedisTwoFACodeStore(rdb)
	ctx := context.Background()
	email := domain.Email("user@example.com")

	first := newChallenge(t)
	second := newChallenge(t)
	require.NoError(t, store.Add(ctx, email, first))
	require.NoError(t, store.Add(ctx, email, second))

	got, err := store.Get(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestRedisTwoFACodeStoreRemove(t *testing.T) {
	_, rdb := newTestRedis(t)
	store := NewRedisTwoFACodeStore(rdb)
	ctx := context.Background()
	email := domain.Email("user@example.com")

	require.NoError(t, store.Add(ctx, email, newChallenge(t)))
	require.NoError(t, store.Remove(ctx, email))

	_, err := store.Get(ctx, email)
	assert.ErrorIs(t, err, domain.ErrChallengeNotFound)

	assert.NoError(t, store.Remove(ctx, email))
}

func TestRedisTwoFACodeStoreExpiry(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := NewRedisTwoFACodeStore(rdb)
	ctx := context.Background()
	email := domain.Email("user@example.com")

	require.NoError(t, store.Add(ctx, email, newChallenge(t)))
	assert.True(t, mr.Exists("two_fa_code:user@example.com"))

	mr.FastForward(ChallengeTTL + time.Second)

	_, err := store.Get(ctx, email)
	assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
}
