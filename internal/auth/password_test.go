package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("super_password123")
	require.NoError(t, err)

	assert.NotEqual(t, "super_password123", hash)
	assert.True(t, CheckPasswordHash("super_password123", hash))
}

func TestCheckPasswordHash_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	assert.False(t, CheckPasswordHash("wrong-password", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)

	// bcrypt salts every call, so identical inputs produce distinct digests.
	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPasswordHash("same-password", h1))
	assert.True(t, CheckPasswordHash("same-password", h2))
}
