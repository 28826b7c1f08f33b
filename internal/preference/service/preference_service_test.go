package service_test

import (
	"context"
	"testing"

	autherror "github.com/alpay9/weather-intelligence-api/internal/errors"
	"github.com/alpay9/weather-intelligence-api/internal/mocks"
	"github.com/alpay9/weather-intelligence-api/internal/preference/domain"
	"github.com/alpay9/weather-intelligence-api/internal/preference/dto"
	"github.com/alpay9/weather-intelligence-api/internal/preference/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPreferenceFixture(t *testing.T) (*mocks.MockPreferenceRepository, *service.PreferenceService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockPreferenceRepository(ctrl)

	return repo, service.NewPreferenceService(repo)
}

func TestPreferenceService_Get_DefaultsWhenUnset(t *testing.T) {
	repo, svc := newPreferenceFixture(t)

	repo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(nil, nil)

	pref, err := svc.Get(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, domain.UnitsMetric, pref.Units)
	assert.Nil(t, pref.Bio)
}

func TestPreferenceService_Get_Stored(t *testing.T) {
	repo, svc := newPreferenceFixture(t)

	bio := "sailor, cares about gusts"
	repo.EXPECT().GetByUserID(gomock.Any(), "user-1").
		Return(&domain.Preference{UserID: "user-1", Units: domain.UnitsImperial, Bio: &bio}, nil)

	pref, err := svc.Get(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, domain.UnitsImperial, pref.Units)
	require.NotNil(t, pref.Bio)
	assert.Equal(t, bio, *pref.Bio)
}

func TestPreferenceService_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, svc := newPreferenceFixture(t)

		var upserted *domain.Preference
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, pref *domain.Preference) error {
				upserted = pref
				return nil
			})

		pref, err := svc.Update(context.Background(), "user-1", dto.PreferenceInput{Units: domain.UnitsImperial})
		require.NoError(t, err)

		assert.Equal(t, domain.UnitsImperial, pref.Units)
		require.NotNil(t, upserted)
		assert.Equal(t, "user-1", upserted.UserID)
	})

	t.Run("rejects unknown units", func(t *testing.T) {
		_, svc := newPreferenceFixture(t)

		pref, err := svc.Update(context.Background(), "user-1", dto.PreferenceInput{Units: "nautical"})

		assert.ErrorIs(t, err, autherror.ErrInvalidUnits)
		assert.Nil(t, pref)
	})
}
