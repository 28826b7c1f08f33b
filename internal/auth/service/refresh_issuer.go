package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"time"
)

const refreshTokenBytes = 32

// RefreshTokenIssuer mints opaque refresh tokens. The plaintext leaves the
// process exactly once, in the response that minted it; storage only ever
// sees the bcrypt hash plus the keyed lookup digest.
type RefreshTokenIssuer struct {
	lookupSecret []byte
	ttl          time.Duration
}

func NewRefreshTokenIssuer(lookupSecret string, validityDays int) *RefreshTokenIssuer {
	return &RefreshTokenIssuer{
		lookupSecret: []byte(lookupSecret),
		ttl:          time.Duration(validityDays) * 24 * time.Hour,
	}
}

// Generate returns a new token plaintext (256 bits from crypto/rand,
// base64url) and its expiry.
func (i *RefreshTokenIssuer) Generate() (string, time.Time, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, err
	}

	return base64.RawURLEncoding.EncodeToString(buf), time.Now().Add(i.ttl), nil
}

// LookupHash derives the indexable lookup key for a token plaintext:
// HMAC-SHA256 under the server-held lookup secret, hex encoded. The digest is
// not a secret; it only lets the store find the candidate row in one indexed
// read instead of re-hashing every stored token.
func (i *RefreshTokenIssuer) LookupHash(plaintext string) string {
	mac := hmac.New(sha256.New, i.lookupSecret)
	mac.Write([]byte(plaintext))

	return hex.EncodeToString(mac.Sum(nil))
}
