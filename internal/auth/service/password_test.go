package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher()

	digest, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", digest)
	assert.True(t, h.Verify("secret123", digest))
	assert.False(t, h.Verify("secret124", digest))
}

func TestPasswordHasher_SaltedDigestsDiffer(t *testing.T) {
	h := NewPasswordHasher()

	first, err := h.Hash("secret123")
	require.NoError(t, err)

	second, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("secret123", first))
	assert.True(t, h.Verify("secret123", second))
}

func TestPasswordHasher_VerifyFailsClosedOnMalformedDigest(t *testing.T) {
	h := NewPasswordHasher()

	tests := []struct {
		name   string
		digest string
	}{
		{name: "empty", digest: ""},
		{name: "not a digest", digest: "plaintext-stored-by-mistake"},
		{name: "truncated", digest: "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, h.Verify("secret123", tt.digest))
		})
	}
}

func TestPasswordHasher_EmptyPassword(t *testing.T) {
	h := NewPasswordHasher()

	digest, err := h.Hash("")
	require.NoError(t, err)

	assert.True(t, h.Verify("", digest))
	assert.False(t, h.Verify("anything", digest))
}
