package postgres_test

import (
	"context"
	"testing"

	"github.com/alpay9/weather-intelligence-api/internal/preference/domain"
	repo "github.com/alpay9/weather-intelligence-api/internal/preference/repository/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		bio := "hiker"
		mock.ExpectQuery("SELECT user_id, units, bio").
			WithArgs("user-1").
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "units", "bio"}).
				AddRow("user-1", "imperial", &bio))

		pref, err := r.GetByUserID(ctx, "user-1")
		require.NoError(t, err)
		require.NotNil(t, pref)
		assert.Equal(t, "imperial", pref.Units)
		require.NotNil(t, pref.Bio)
		assert.Equal(t, "hiker", *pref.Bio)
	})

	t.Run("not found returns nil without error", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id, units, bio").
			WithArgs("user-2").
			WillReturnError(pgx.ErrNoRows)

		pref, err := r.GetByUserID(ctx, "user-2")
		require.NoError(t, err)
		assert.Nil(t, pref)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	pref := &domain.Preference{UserID: "user-1", Units: "metric"}

	mock.ExpectExec("INSERT INTO user_preferences").
		WithArgs(pref.UserID, pref.Units, pref.Bio).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, r.Upsert(context.Background(), pref))
	require.NoError(t, mock.ExpectationsWereMet())
}
