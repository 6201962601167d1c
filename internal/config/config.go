package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the portal.
type Config struct {
	Environment string
	Port        string
	LogLevel    slog.Level

	// DatabaseURL is the Postgres connection string. A legacy "postgres://"
	// scheme prefix is normalized to "postgresql://".
	DatabaseURL string

	// SessionSecret signs the session cookie.
	SessionSecret string

	// UploadDir is where profile pictures are stored. Created on first use.
	UploadDir string

	// RedisURL enables catalog caching when set.
	RedisURL string

	// KafkaBrokers enables domain event publishing when set (comma separated).
	KafkaBrokers []string
}

// LoadConfig reads configuration from the environment, loading a local .env
// file first when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment:   getEnv("ENVIRONMENT", "development"),
		Port:          getEnv("PORT", "8080"),
		LogLevel:      parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DatabaseURL:   normalizeDatabaseURL(os.Getenv("DATABASE_URL")),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		UploadDir:     getEnv("UPLOAD_DIR", "static/images/profile_pics"),
		RedisURL:      os.Getenv("REDIS_URL"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.SessionSecret == "" {
		if cfg.Environment != "development" {
			return nil, fmt.Errorf("SESSION_SECRET is required outside development")
		}
		cfg.SessionSecret = "dev-session-secret"
	}

	return cfg, nil
}

// normalizeDatabaseURL rewrites the legacy "postgres://" scheme still emitted
// by some hosting providers.
func normalizeDatabaseURL(url string) string {
	if strings.HasPrefix(url, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(url, "postgres://")
	}
	return url
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
