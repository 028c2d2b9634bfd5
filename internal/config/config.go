// Package config loads runtime configuration from the environment.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server's runtime configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// DBPath is the SQLite database file, used when DatabaseURL is empty.
	DBPath string

	// DatabaseURL selects the PostgreSQL backend when set.
	DatabaseURL string

	// JWTSecret signs session tokens.
	JWTSecret string

	// TokenTTL is how long session tokens remain valid.
	TokenTTL time.Duration
}

// Load reads configuration from .env files (if present) and the
// environment, falling back to development defaults.
func Load() Config {
	// Ignore missing .env files; the environment still applies.
	_ = godotenv.Load(".env", ".env.local")

	return Config{
		Port:        getenv("PORT", "8080"),
		DBPath:      getenv("DB_PATH", "./data/frontdesk.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getenv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:    getDuration("TOKEN_TTL", 24*time.Hour),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
