package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	// Locals keys set by RequireAuth for downstream handlers.
	LocalUserID = "userID"
	LocalEmail  = "email"

	bearerPrefix = "Bearer "
)

// RequireAuth verifies the bearer access token and stores the authenticated
// identity in the request locals.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	authz := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(authz, bearerPrefix) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
	}

	claims, err := h.tokenService.VerifyAccessToken(strings.TrimPrefix(authz, bearerPrefix))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired access token"})
	}

	c.Locals(LocalUserID, claims.Subject)
	c.Locals(LocalEmail, claims.Email)

	return c.Next()
}
