package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort                   = "8080"
	DefaultJWTIssuer              = "weather-intelligence-api"
	DefaultJWTAudience            = "weather-intelligence-clients"
	DefaultAccessTokenExpiryMin   = 15
	DefaultRefreshTokenExpiryDays = 7
	DefaultLoginRateLimit         = 10
	DefaultLoginRateWindowMin     = 1
	DefaultCORSAllowOrigins       = "http://localhost:3000"
)

type Config struct {
	Env  string
	Port string

	DBURL string

	// JWTSecret signs access tokens; RefreshLookupSecret keys the refresh
	// token lookup digest. Both are required at startup.
	JWTSecret           string
	RefreshLookupSecret string
	JWTIssuer           string
	JWTAudience         string

	AccessExpiryMin   int
	RefreshExpiryDays int

	LoginRateLimit     int
	LoginRateWindowMin int

	CORSAllowOrigins string
}

// Load reads config/.env.dev or config/.env.prod (by ENV) and the process
// environment, environment winning, and fails the process when a required
// secret is absent.
func Load() *Config {
	env := getEnv("ENV", "development")

	envFile := ".env.dev"
	if env == "production" {
		envFile = ".env.prod"
	}

	// The file is optional; real deployments often inject everything
	// through the environment.
	_ = godotenv.Load(filepath.Join("config", envFile))

	return &Config{
		Env:                 env,
		Port:                getEnv("PORT", DefaultPort),
		DBURL:               mustGetEnv("DB_URL"),
		JWTSecret:           mustGetEnv("JWT_SECRET"),
		RefreshLookupSecret: mustGetEnv("REFRESH_LOOKUP_SECRET"),
		JWTIssuer:           getEnv("JWT_ISSUER", DefaultJWTIssuer),
		JWTAudience:         getEnv("JWT_AUDIENCE", DefaultJWTAudience),
		AccessExpiryMin:     getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		RefreshExpiryDays:   getEnvAsInt("REFRESH_TOKEN_EXPIRY_DAYS", DefaultRefreshTokenExpiryDays),
		LoginRateLimit:      getEnvAsInt("LOGIN_RATE_LIMIT", DefaultLoginRateLimit),
		LoginRateWindowMin:  getEnvAsInt("LOGIN_RATE_WINDOW_MINUTES", DefaultLoginRateWindowMin),
		CORSAllowOrigins:    getEnv("CORS_ALLOW_ORIGINS", DefaultCORSAllowOrigins),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	log.Fatalf("Missing required environment variable: %s", key)

	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)

		return defaultVal
	}

	return val
}
