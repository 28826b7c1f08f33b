package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/alpay9/weather-intelligence-api/internal/auth/domain"
	autherror "github.com/alpay9/weather-intelligence-api/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// PgxIface is the slice of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	var user domain.User
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var user domain.User
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)

	// The unique index on email is the last line of defense against two
	// concurrent registrations slipping past the service's existence check.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return autherror.ErrEmailAlreadyInUse
	}

	return err
}

func (r *PostgresRepository) StoreRefreshToken(ctx context.Context, rt *domain.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens
			(id, user_id, token_hash, lookup_hash, family_id, created_at, expires_at, revoked_at, replaced_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		rt.ID, rt.UserID, rt.TokenHash, rt.LookupHash, rt.FamilyID,
		rt.CreatedAt, rt.ExpiresAt, rt.RevokedAt, rt.ReplacedBy)

	return err
}

func (r *PostgresRepository) GetRefreshTokenByLookupHash(ctx context.Context, lookupHash string) (*domain.RefreshToken, error) {
	query := `
		SELECT id, user_id, token_hash, lookup_hash, family_id, created_at, expires_at, revoked_at, replaced_by
		FROM refresh_tokens
		WHERE lookup_hash = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, lookupHash)

	var rt domain.RefreshToken
	err := row.Scan(&rt.ID, &rt.UserID, &rt.TokenHash, &rt.LookupHash, &rt.FamilyID,
		&rt.CreatedAt, &rt.ExpiresAt, &rt.RevokedAt, &rt.ReplacedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &rt, nil
}

// Rotate revokes the old token and inserts its successor in one transaction.
// The conditional update only moves a row that is still unrevoked, so of two
// concurrent rotations of the same token exactly one commits; the other gets
// ErrRotationConflict.
func (r *PostgresRepository) Rotate(ctx context.Context, oldID string, replacement *domain.RefreshToken) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin rotation: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE refresh_tokens
		SET revoked_at = now(), replaced_by = $2
		WHERE id = $1 AND revoked_at IS NULL
	`, oldID, replacement.ID)
	if err != nil {
		_ = tx.Rollback(ctx)

		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	if tag.RowsAffected() == 0 {
		_ = tx.Rollback(ctx)

		return autherror.ErrRotationConflict
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO refresh_tokens
			(id, user_id, token_hash, lookup_hash, family_id, created_at, expires_at, revoked_at, replaced_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, replacement.ID, replacement.UserID, replacement.TokenHash, replacement.LookupHash,
		replacement.FamilyID, replacement.CreatedAt, replacement.ExpiresAt,
		replacement.RevokedAt, replacement.ReplacedBy)
	if err != nil {
		_ = tx.Rollback(ctx)

		return fmt.Errorf("failed to store rotated refresh token: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) RevokeFamily(ctx context.Context, familyID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens
		SET revoked_at = now()
		WHERE family_id = $1 AND revoked_at IS NULL
	`, familyID)

	return err
}
