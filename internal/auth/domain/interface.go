package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/alpay9/weather-intelligence-api/internal/auth/domain UserRepository

import "context"

type UserRepository interface {
	// GetByEmail returns (nil, nil) when no user exists for the email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	StoreRefreshToken(ctx context.Context, rt *RefreshToken) error
	// GetRefreshTokenByLookupHash returns (nil, nil) when no row matches.
	GetRefreshTokenByLookupHash(ctx context.Context, lookupHash string) (*RefreshToken, error)
	// Rotate revokes the token identified by oldID and inserts its
	// replacement as one atomic unit. The revoke only applies while the row
	// is still unrevoked; otherwise Rotate returns ErrRotationConflict and
	// nothing is written.
	Rotate(ctx context.Context, oldID string, replacement *RefreshToken) error
	// RevokeFamily revokes every usable token sharing the family id.
	RevokeFamily(ctx context.Context, familyID string) error
}
