// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"qtbot/internal/qt"
)

// Config holds the application configuration.
type Config struct {
	Port         int
	DatabasePath string
	LogLevel     string
	QTBaseURL    string
	QTVariant    string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	port := 8080
	if raw := os.Getenv("PORT"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 1 || p > 65535 {
			return nil, fmt.Errorf("invalid PORT %q", raw)
		}
		port = p
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "./data/qtbot.db"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	baseURL := os.Getenv("QT_BASE_URL")
	if baseURL == "" {
		baseURL = qt.DefaultBaseURL
	}

	variant := os.Getenv("QT_VARIANT")
	if variant == "" {
		variant = qt.DefaultVariant
	}

	return &Config{
		Port:         port,
		DatabasePath: dbPath,
		LogLevel:     logLevel,
		QTBaseURL:    baseURL,
		QTVariant:    variant,
	}, nil
}
