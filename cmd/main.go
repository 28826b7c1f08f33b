package main

import (
	"context"
	"log"

	"github.com/alpay9/weather-intelligence-api/config"
	"github.com/alpay9/weather-intelligence-api/db"
	"github.com/alpay9/weather-intelligence-api/internal/auth/handler"
	repo "github.com/alpay9/weather-intelligence-api/internal/auth/repository/postgres"
	"github.com/alpay9/weather-intelligence-api/internal/auth/service"
	prefhandler "github.com/alpay9/weather-intelligence-api/internal/preference/handler"
	prefrepo "github.com/alpay9/weather-intelligence-api/internal/preference/repository/postgres"
	prefservice "github.com/alpay9/weather-intelligence-api/internal/preference/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	userRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessExpiryMin)
	refreshIssuer := service.NewRefreshTokenIssuer(cfg.RefreshLookupSecret, cfg.RefreshExpiryDays)
	userService := service.NewUserService(userRepo, tokenService, service.NewPasswordHasher(), refreshIssuer)
	authHandler := handler.NewAuthHandler(userService, tokenService)

	preferenceRepo := prefrepo.NewPostgresRepository(dbPool)
	preferenceService := prefservice.NewPreferenceService(preferenceRepo)
	preferenceHandler := prefhandler.NewPreferenceHandler(preferenceService)

	app := fiber.New()
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSAllowOrigins}))

	handler.RegisterRoutes(app, authHandler, cfg)
	prefhandler.RegisterRoutes(app, preferenceHandler, authHandler.RequireAuth)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
