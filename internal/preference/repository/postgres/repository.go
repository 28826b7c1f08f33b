package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/alpay9/weather-intelligence-api/internal/preference/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the slice of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*domain.Preference, error) {
	query := `
		SELECT user_id, units, bio
		FROM user_preferences
		WHERE user_id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, userID)

	var pref domain.Preference
	if err := row.Scan(&pref.UserID, &pref.Units, &pref.Bio); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get preference: %w", err)
	}

	return &pref, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, pref *domain.Preference) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_preferences (user_id, units, bio)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET
			units = EXCLUDED.units,
			bio = EXCLUDED.bio
	`, pref.UserID, pref.Units, pref.Bio)

	return err
}
