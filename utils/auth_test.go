package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	tok, err := GenerateJWT(secret, "uid-1", "a@example.com")
	require.NoError(t, err)

	claims, err := ParseJWT(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UID)
	assert.Equal(t, "a@example.com", claims.Email)

	_, err = ParseJWT([]byte("other"), tok)
	assert.Error(t, err)

	_, err = ParseJWT(secret, "not-a-token")
	assert.EqualError(t, err, "malformed token")
}

func TestGenerateJWTNeedsSecret(t *testing.T) {
	_, err := GenerateJWT(nil, "uid", "e")
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("secret124", hash))
}

func TestGenerateRandomToken(t *testing.T) {
	tok, err := GenerateRandomToken(6)
	require.NoError(t, err)
	assert.Len(t, tok, 6)
	for _, r := range tok {
		assert.True(t, strings.ContainsRune(resetCharset, r), "unexpected rune %q", r)
	}
}
