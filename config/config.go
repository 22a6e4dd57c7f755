package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP Server
	Port    string
	GinMode string

	// Database
	SQLiteDBPath string

	// Session gate
	AdminUsername string
	AdminPassword string
	JWTSecret     string
	TokenLifespan time.Duration

	// Logging
	LogLevel string
}

// Load reads configuration from the environment, after loading .env if one
// is present. Missing keys fall back to development defaults; the admin
// credentials deliberately have no default.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/bizdash.db"),

		AdminUsername: getEnv("ADMIN_USERNAME", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		JWTSecret:     getEnv("JWT_SECRET", "bizdash-dev-secret"),
		TokenLifespan: time.Hour * time.Duration(getEnvInt("TOKEN_HOUR_LIFESPAN", 24)),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate reports configuration values that can never work.
func (c *Config) Validate() error {
	if port, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q: must be a number", c.Port)
	} else if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}
	if c.TokenLifespan <= 0 {
		return fmt.Errorf("invalid token lifespan %s: must be positive", c.TokenLifespan)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
