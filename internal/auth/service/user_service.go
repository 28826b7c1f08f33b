package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/alpay9/weather-intelligence-api/internal/auth/domain"
	"github.com/alpay9/weather-intelligence-api/internal/auth/dto"
	autherror "github.com/alpay9/weather-intelligence-api/internal/errors"
	"github.com/google/uuid"
)

type UserService struct {
	repo    domain.UserRepository
	tokens  TokenGenerator
	hasher  *PasswordHasher
	refresh *RefreshTokenIssuer
}

func NewUserService(repo domain.UserRepository, tokens TokenGenerator,
	hasher *PasswordHasher, refresh *RefreshTokenIssuer) *UserService {
	return &UserService{
		repo:    repo,
		tokens:  tokens,
		hasher:  hasher,
		refresh: refresh,
	}
}

// normalizeEmail fixes the case policy: one identity per address, regardless
// of the casing the client sent.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.TokenResponse, error) {
	email := normalizeEmail(input.Email)

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Registration starts the first token family for this user.
	return s.issueTokenPair(ctx, user, uuid.NewString())
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}

	// Unknown email and wrong password answer identically.
	if user == nil || !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, autherror.ErrInvalidCredentials
	}

	// A login starts a fresh family; it never rotates an existing chain.
	return s.issueTokenPair(ctx, user, uuid.NewString())
}

func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	stored, err := s.repo.GetRefreshTokenByLookupHash(ctx, s.refresh.LookupHash(input.RefreshToken))
	if err != nil {
		return nil, err
	}

	if stored == nil || !s.hasher.Verify(input.RefreshToken, stored.TokenHash) {
		return nil, autherror.ErrInvalidOrExpiredToken
	}

	if stored.RevokedAt != nil {
		// A rotated token presented again is evidence of theft: burn the
		// whole chain before answering.
		if err := s.repo.RevokeFamily(ctx, stored.FamilyID); err != nil {
			log.Printf("warn: failed to revoke token family %s: %v", stored.FamilyID, err)
		}

		return nil, autherror.ErrInvalidOrExpiredToken
	}

	if time.Now().After(stored.ExpiresAt) {
		return nil, autherror.ErrInvalidOrExpiredToken
	}

	user, err := s.repo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found for token refresh")
	}

	plaintext, expiresAt, err := s.refresh.Generate()
	if err != nil {
		return nil, err
	}

	tokenHash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, err
	}

	successor := &domain.RefreshToken{
		ID:         uuid.NewString(),
		UserID:     stored.UserID,
		TokenHash:  tokenHash,
		LookupHash: s.refresh.LookupHash(plaintext),
		FamilyID:   stored.FamilyID,
		CreatedAt:  time.Now(),
		ExpiresAt:  expiresAt,
	}

	if err := s.repo.Rotate(ctx, stored.ID, successor); err != nil {
		if errors.Is(err, autherror.ErrRotationConflict) {
			return nil, autherror.ErrInvalidOrExpiredToken
		}

		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	accessToken, _, err := s.tokens.CreateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: plaintext,
	}, nil
}

func (s *UserService) issueTokenPair(ctx context.Context, user *domain.User, familyID string) (*dto.TokenResponse, error) {
	plaintext, expiresAt, err := s.refresh.Generate()
	if err != nil {
		return nil, err
	}

	tokenHash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, err
	}

	rt := &domain.RefreshToken{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		TokenHash:  tokenHash,
		LookupHash: s.refresh.LookupHash(plaintext),
		FamilyID:   familyID,
		CreatedAt:  time.Now(),
		ExpiresAt:  expiresAt,
	}

	if err := s.repo.StoreRefreshToken(ctx, rt); err != nil {
		return nil, err
	}

	accessToken, _, err := s.tokens.CreateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: plaintext,
	}, nil
}
