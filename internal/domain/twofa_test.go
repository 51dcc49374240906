package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTwoFACode(t *testing.T) {
	code, err := ParseTwoFACode("012345")
	require.NoError(t, err)
	assert.Equal(t, "012345", code.String())

	for _, s := range []string{"", "12345", "1234567", "12345a", "12 456", "１２３４５６"} {
		_, err := ParseTwoFACode(s)
		require.Error(t, err, s)
		assert.True(t, errors.Is(err, ErrValidation), s)
	}
}

func TestNewTwoFACode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := NewTwoFACode()
		require.NoError(t, err)

		parsed, err := ParseTwoFACode(code.String())
		require.NoError(t, err)
		assert.Equal(t, code, parsed)
	}
}

func TestParseLoginAttemptID(t *testing.T) {
	id, err := ParseLoginAttemptID("71b8bf31-7f9c-48e7-bd21-6e740a0f7da3")
	require.NoError(t, err)
	assert.Equal(t, "71b8bf31-7f9c-48e7-bd21-6e740a0f7da3", id.String())

	for _, s := range []string{"", "not-a-uuid", "71b8bf31-7f9c-48e7-bd21"} {
		_, err := ParseLoginAttemptID(s)
		require.Error(t, err, s)
		assert.True(t, errors.Is(err, ErrValidation), s)
	}
}

func TestNewLoginAttemptID(t *testing.T) {
	seen := make(map[LoginAttemptID]bool)
	for i := 0; i < 1000; i++ {
		id := NewLoginAttemptID()

		_, err := ParseLoginAttemptID(id.String())
		require.NoError(t, err)
		require.False(t, seen[id], "generated ids must be unique")
		seen[id] = true
	}
}
