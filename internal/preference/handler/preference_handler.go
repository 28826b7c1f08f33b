package handler

import (
	"errors"

	authhandler "github.com/alpay9/weather-intelligence-api/internal/auth/handler"
	autherror "github.com/alpay9/weather-intelligence-api/internal/errors"
	"github.com/alpay9/weather-intelligence-api/internal/preference/dto"
	"github.com/alpay9/weather-intelligence-api/internal/preference/service"
	"github.com/gofiber/fiber/v2"
)

type PreferenceHandler struct {
	preferenceService *service.PreferenceService
}

func NewPreferenceHandler(preferenceService *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

func (h *PreferenceHandler) Get(c *fiber.Ctx) error {
	userID, _ := c.Locals(authhandler.LocalUserID).(string)

	pref, err := h.preferenceService.Get(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(pref)
}

func (h *PreferenceHandler) Update(c *fiber.Ctx) error {
	var input dto.PreferenceInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	userID, _ := c.Locals(authhandler.LocalUserID).(string)

	pref, err := h.preferenceService.Update(c.UserContext(), userID, input)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidUnits) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(pref)
}

// RegisterRoutes mounts the preference endpoints behind the access-token
// middleware.
func RegisterRoutes(app *fiber.App, h *PreferenceHandler, requireAuth fiber.Handler) {
	prefs := app.Group("/api/v1/preferences", requireAuth)
	prefs.Get("/", h.Get)
	prefs.Put("/", h.Update)
}
