package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is one issued refresh credential. The plaintext is never
// stored: TokenHash is the slow verification hash, LookupHash a keyed digest
// used for indexed equality lookup. Rows are revoked, never deleted.
type RefreshToken struct {
	ID         string
	UserID     string
	TokenHash  string
	LookupHash string
	FamilyID   string
	CreatedAt  time.Time
	ExpiresAt  time.Time
	RevokedAt  *time.Time
	ReplacedBy *string
}

// Usable reports whether the token can still be exchanged at the given time.
func (rt *RefreshToken) Usable(now time.Time) bool {
	return rt.RevokedAt == nil && now.Before(rt.ExpiresAt)
}
