package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBannedTokenStore(t *testing.T) {
	store := NewMemoryBannedTokenStore()
	ctx := context.Background()

	banned, err := store.Contains(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, banned)

	require.NoError(t, store.Add(ctx, "tok"))

	banned, err = store.Contains(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, banned)

	// Idempotent: re-adding simply re-asserts the ban.
	require.NoError(t, store.Add(ctx, "tok"))
	banned, err = store.Contains(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, banned)

	banned, err = store.Contains(ctx, "other")
	require.NoError(t, err)
	assert.False(t, banned)
}
