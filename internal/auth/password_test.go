package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	for _, pw := range []string{"pw123", "", "correct horse battery staple", "pässwörd"} {
		hash, err := HashPassword(pw)
		require.NoError(t, err)
		assert.NotEqual(t, pw, hash)
		assert.True(t, VerifyPassword(pw, hash), "password %q should verify", pw)
		assert.False(t, VerifyPassword(pw+"x", hash))
	}
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("pw", ""))
	assert.False(t, VerifyPassword("pw", "not-a-bcrypt-hash"))
}
