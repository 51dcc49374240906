package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"john.doe@company.co.uk",
		"user+tag@example.com",
		"user_name@example.org",
	}
	for _, s := range valid {
		email, err := ParseEmail(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, email.String(), "stored value must equal input unchanged")
	}

	invalid := []string{
		"",
		"invalid.email",
		"@example.com",
		"user@",
		"user@domain",
		"user name@example.com",
	}
	for _, s := range invalid {
		_, err := ParseEmail(s)
		require.Error(t, err, s)
		assert.True(t, errors.Is(err, ErrValidation), s)
	}
}
