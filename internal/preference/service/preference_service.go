package service

import (
	"context"

	autherror "github.com/alpay9/weather-intelligence-api/internal/errors"
	"github.com/alpay9/weather-intelligence-api/internal/preference/domain"
	"github.com/alpay9/weather-intelligence-api/internal/preference/dto"
)

type PreferenceService struct {
	repo domain.PreferenceRepository
}

func NewPreferenceService(repo domain.PreferenceRepository) *PreferenceService {
	return &PreferenceService{repo: repo}
}

// Get returns the stored preference, or metric defaults when the user never
// saved one.
func (s *PreferenceService) Get(ctx context.Context, userID string) (*dto.PreferenceOutput, error) {
	pref, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if pref == nil {
		return &dto.PreferenceOutput{Units: domain.UnitsMetric}, nil
	}

	return &dto.PreferenceOutput{Units: pref.Units, Bio: pref.Bio}, nil
}

func (s *PreferenceService) Update(ctx context.Context, userID string, input dto.PreferenceInput) (*dto.PreferenceOutput, error) {
	if input.Units != domain.UnitsMetric && input.Units != domain.UnitsImperial {
		return nil, autherror.ErrInvalidUnits
	}

	pref := &domain.Preference{
		UserID: userID,
		Units:  input.Units,
		Bio:    input.Bio,
	}

	if err := s.repo.Upsert(ctx, pref); err != nil {
		return nil, err
	}

	return &dto.PreferenceOutput{Units: pref.Units, Bio: pref.Bio}, nil
}
