package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	tok, err := GenerateToken("secret", 42, "ayse", "admin", time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ayse", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	tok, err := GenerateToken("secret", 1, "u", "user", time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("other", tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	tok, err := GenerateToken("secret", 1, "u", "user", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("secret", tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("user123")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("user123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
