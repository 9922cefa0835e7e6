package middleware

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("salajane-parool")
	require.NoError(t, err)

	parts := strings.Split(hash, ":")
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], saltBytes*2)
	assert.Len(t, parts[1], scryptKeyLen*2)

	t.Run("Unique Salt", func(t *testing.T) {
		other, err := HashPassword("salajane-parool")
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)
	})
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("õige-parool-123")
	require.NoError(t, err)

	t.Run("Correct Password", func(t *testing.T) {
		assert.True(t, VerifyPassword("õige-parool-123", hash))
	})

	t.Run("Wrong Password", func(t *testing.T) {
		assert.False(t, VerifyPassword("vale-parool-123", hash))
	})

	t.Run("Malformed Stored Value", func(t *testing.T) {
		malformed := []string{
			"",
			"nocolon",
			":",
			"salt:",
			":keyonly",
			"salt:not-hex",
			"salt:abcd", // key length mismatch
		}
		for _, stored := range malformed {
			assert.False(t, VerifyPassword("õige-parool-123", stored), "stored=%q", stored)
		}
	})
}
