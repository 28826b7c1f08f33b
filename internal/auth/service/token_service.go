package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/alpay9/weather-intelligence-api/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	CreateAccessToken(userID, email string) (string, time.Time, error)
	VerifyAccessToken(tokenString string) (*AccessClaims, error)
}

// AccessClaims is the fixed claim schema of an access token: subject is the
// user id, plus the configured issuer/audience pair and the user's email.
type AccessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

type TokenService struct {
	secret    []byte
	issuer    string
	audience  string
	accessTTL time.Duration
}

func NewTokenService(secret, issuer, audience string, accessMinutes int) *TokenService {
	return &TokenService{
		secret:    []byte(secret),
		issuer:    issuer,
		audience:  audience,
		accessTTL: time.Duration(accessMinutes) * time.Minute,
	}
}

func (ts *TokenService) CreateAccessToken(userID, email string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.accessTTL)

	claims := AccessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    ts.issuer,
			Audience:  jwt.ClaimStrings{ts.audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// VerifyAccessToken parses and validates an access token. A token is valid
// iff the HMAC signature matches, issuer and audience equal the configured
// values and the expiry has not passed.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return ts.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(ts.issuer),
		jwt.WithAudience(ts.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
