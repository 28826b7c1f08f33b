package handler

import (
	"time"

	"github.com/alpay9/weather-intelligence-api/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RegisterRoutes mounts the auth endpoints. Login and refresh sit behind a
// fixed-window per-IP rate limit; register does not.
func RegisterRoutes(app *fiber.App, h *AuthHandler, cfg *config.Config) {
	rateLimit := limiter.New(limiter.Config{
		Max:               cfg.LoginRateLimit,
		Expiration:        time.Duration(cfg.LoginRateWindowMin) * time.Minute,
		LimiterMiddleware: limiter.FixedWindow{},
	})

	auth := app.Group("/api/v1/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", rateLimit, h.Login)
	auth.Post("/refresh", rateLimit, h.Refresh)
}
