package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexvault/authd/internal/domain"
	"github.com/hexvault/authd/internal/password"
)

func testHasher(t *testing.T) *password.Hasher {
	t.Helper()
	h, err := password.NewHasher(password.Config{
		Memory:      8 * 1024,
		Time:        1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   16,
	})
	require.NoError(t, err)
	return h
}

func TestMemoryUserStoreAddGet(t *testing.T) {
	store := NewMemoryUserStore(testHasher(t))
	ctx := context.Background()
	email := domain.Email("user@example.com")

	err := store.Add(ctx, email, domain.Password("password123"), true)
	require.NoError(t, err)

	user, err := store.Get(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, email, user.Email)
	assert.True(t, user.Requires2FA)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "password123")
}

func TestMemoryUserStoreDuplicate(t *testing.T) {
	store := NewMemoryUserStore(testHasher(t))
	ctx := context.Background()
	email := domain.Email("user@example.com")

	require.NoError(t, store.Add(ctx, email, domain.Password("password123"), false))
	first, err := store.Get(ctx, email)
	require.NoError(t, err)

	err = store.Add(ctx, email, domain.Password("otherpassword"), true)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	// First record is unchanged.
	second, err := store.Get(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMemoryUserStoreGetUnknown(t *testing.T) {
	store := NewMemoryUserStore(testHasher(t))

	_, err := store.Get(context.Background(), domain.Email("nobody@example.com"))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMemoryUserStoreValidate(t *testing.T) {
	store := NewMemoryUserStore(testHasher(t))
	ctx := context.Background()
	email := domain.Email("user@example.com")

	require.NoError(t, store.Add(ctx, email, domain.Password("password123"), false))

	assert.NoError(t, store.Validate(ctx, email, domain.Password("password123")))
	assert.ErrorIs(t, store.Validate(ctx, email, domain.Password("password124")), domain.ErrInvalidCredentials)
	assert.ErrorIs(t, store.Validate(ctx, domain.Email("nobody@example.com"), domain.Password("password123")), domain.ErrUserNotFound)
}
