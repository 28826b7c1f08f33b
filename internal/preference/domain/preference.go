package domain

//go:generate mockgen -destination=../../mocks/mock_preference_repository.go -package=mocks github.com/alpay9/weather-intelligence-api/internal/preference/domain PreferenceRepository

import "context"

const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

// Preference holds per-user display settings, one row per user.
type Preference struct {
	UserID string
	Units  string
	Bio    *string
}

type PreferenceRepository interface {
	// GetByUserID returns (nil, nil) when the user has no stored preference.
	GetByUserID(ctx context.Context, userID string) (*Preference, error)
	Upsert(ctx context.Context, pref *Preference) error
}
