// Package config loads client configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL   string
	CredentialDB string
	HTTPTimeout  time.Duration
	LogLevel     slog.Level
}

func Load() Config {
	// A missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	return Config{
		APIBaseURL:   getEnv("LEARNSMART_API_URL", "http://127.0.0.1:5000/api"),
		CredentialDB: getEnv("LEARNSMART_CREDENTIAL_DB", "learnsmart.db"),
		HTTPTimeout:  getEnvDuration("LEARNSMART_HTTP_TIMEOUT", 10*time.Second),
		LogLevel:     getEnvLevel("LEARNSMART_LOG_LEVEL", slog.LevelWarn),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvLevel(key string, defaultValue slog.Level) slog.Level {
	switch strings.ToLower(os.Getenv(key)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return defaultValue
	}
}
