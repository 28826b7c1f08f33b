package service

import (
	"encoding/base64"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshTokenIssuer_Generate(t *testing.T) {
	issuer := NewRefreshTokenIssuer("lookup-secret", 7)

	token, expiresAt, err := issuer.Generate()
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, 5*time.Second)
}

func TestRefreshTokenIssuer_GenerateIsUnique(t *testing.T) {
	issuer := NewRefreshTokenIssuer("lookup-secret", 7)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, _, err := issuer.Generate()
		require.NoError(t, err)
		assert.False(t, seen[token], "duplicate token generated")
		seen[token] = true
	}
}

func TestRefreshTokenIssuer_LookupHash(t *testing.T) {
	issuer := NewRefreshTokenIssuer("lookup-secret", 7)

	digest := issuer.LookupHash("some-token")

	raw, err := hex.DecodeString(digest)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	// Deterministic for the same input, distinct for other inputs and keys.
	assert.Equal(t, digest, issuer.LookupHash("some-token"))
	assert.NotEqual(t, digest, issuer.LookupHash("other-token"))

	otherKey := NewRefreshTokenIssuer("different-secret", 7)
	assert.NotEqual(t, digest, otherKey.LookupHash("some-token"))
}
