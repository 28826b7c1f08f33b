package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	authhandler "github.com/alpay9/weather-intelligence-api/internal/auth/handler"
	authservice "github.com/alpay9/weather-intelligence-api/internal/auth/service"
	"github.com/alpay9/weather-intelligence-api/internal/mocks"
	"github.com/alpay9/weather-intelligence-api/internal/preference/domain"
	"github.com/alpay9/weather-intelligence-api/internal/preference/dto"
	"github.com/alpay9/weather-intelligence-api/internal/preference/handler"
	"github.com/alpay9/weather-intelligence-api/internal/preference/service"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPreferenceApp(t *testing.T) (*fiber.App, *mocks.MockPreferenceRepository, *authservice.TokenService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockPreferenceRepository(ctrl)
	preferenceHandler := handler.NewPreferenceHandler(service.NewPreferenceService(repo))

	tokenService := authservice.NewTokenService("test-secret", "test-issuer", "test-audience", 15)
	authHandler := authhandler.NewAuthHandler(nil, tokenService)

	app := fiber.New()
	handler.RegisterRoutes(app, preferenceHandler, authHandler.RequireAuth)

	return app, repo, tokenService
}

func bearerFor(t *testing.T, ts *authservice.TokenService, userID, email string) string {
	t.Helper()

	token, _, err := ts.CreateAccessToken(userID, email)
	require.NoError(t, err)

	return "Bearer " + token
}

func TestGetPreferences(t *testing.T) {
	t.Run("requires access token", func(t *testing.T) {
		app, _, _ := newPreferenceApp(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/preferences", nil), -1)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("answers defaults for a fresh user", func(t *testing.T) {
		app, repo, ts := newPreferenceApp(t)

		repo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(nil, nil)

		req := httptest.NewRequest("GET", "/api/v1/preferences", nil)
		req.Header.Set(fiber.HeaderAuthorization, bearerFor(t, ts, "user-1", "a@x.com"))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out dto.PreferenceOutput
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, domain.UnitsMetric, out.Units)
	})
}

func TestUpdatePreferences(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, repo, ts := newPreferenceApp(t)

		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		body, err := json.Marshal(dto.PreferenceInput{Units: domain.UnitsImperial})
		require.NoError(t, err)

		req := httptest.NewRequest("PUT", "/api/v1/preferences", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(fiber.HeaderAuthorization, bearerFor(t, ts, "user-1", "a@x.com"))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("rejects unknown units", func(t *testing.T) {
		app, _, ts := newPreferenceApp(t)

		body, err := json.Marshal(dto.PreferenceInput{Units: "nautical"})
		require.NoError(t, err)

		req := httptest.NewRequest("PUT", "/api/v1/preferences", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(fiber.HeaderAuthorization, bearerFor(t, ts, "user-1", "a@x.com"))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
