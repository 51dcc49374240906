package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePassword(t *testing.T) {
	for _, s := range []string{"password123", "longenough", "12345678"} {
		_, err := ParsePassword(s)
		assert.NoError(t, err, s)
	}

	for _, s := range []string{"", "short", "1234567"} {
		_, err := ParsePassword(s)
		require.Error(t, err, s)
		assert.True(t, errors.Is(err, ErrValidation), s)
	}
}

func TestPasswordNeverFormatsRaw(t *testing.T) {
	pw, err := ParsePassword("supersecret")
	require.NoError(t, err)

	assert.Equal(t, "[redacted]", fmt.Sprintf("%v", pw))
	assert.Equal(t, "[redacted]", pw.String())
}
