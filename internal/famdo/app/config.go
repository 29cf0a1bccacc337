package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL   string        // Optional: backend base URL; empty runs fully offline
	DatabaseFile string        // Optional: path to the local SQLite replica (default: ./famdo.db)
	SyncTimeout  time.Duration // Optional: per-request budget for remote pushes (default: 10s)
	Env          string        // Environment (dev, staging, prod) (default: dev)
	LogLevel     string        // Log level (debug, info, warn, error) (default: info)
	LogFormat    string        // Log format (json, text) (default: text)
}

// LoadConfig reads configuration from the environment. A .env file in the
// working directory is folded in first, so a checkout can carry its own
// settings without exporting anything.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		APIBaseURL:   os.Getenv("FAMDO_API_URL"),
		DatabaseFile: getEnvOrDefault("FAMDO_DATABASE_FILE", "famdo.db"),
		SyncTimeout:  getEnvDurationOrDefault("FAMDO_SYNC_TIMEOUT", 10*time.Second),
		Env:          getEnvOrDefault("ENV", "dev"),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:    getEnvOrDefault("LOG_FORMAT", "text"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are read as seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
