package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	LogLevel string
	Storage  StorageConfig
	Reminder ReminderConfig
}

// StorageConfig holds local storage configuration
type StorageConfig struct {
	DataDir   string
	SessionDB string
}

// ReminderConfig holds the rent reminder schedule
type ReminderConfig struct {
	Enabled  bool
	Schedule string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	return &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Storage:  loadStorageConfig(),
		Reminder: loadReminderConfig(),
	}, nil
}

// loadStorageConfig loads data directory settings
func loadStorageConfig() StorageConfig {
	dataDir := getEnv("DATA_DIR", "./data")
	return StorageConfig{
		DataDir:   dataDir,
		SessionDB: getEnv("SESSION_DB", filepath.Join(dataDir, "session.db")),
	}
}

// loadReminderConfig loads the rent reminder cron settings
func loadReminderConfig() ReminderConfig {
	return ReminderConfig{
		Enabled:  getEnv("REMINDER_ENABLED", "true") == "true",
		Schedule: getEnv("REMINDER_SCHEDULE", "30 8 1 * *"),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:" + c.Port
	}
	return origins
}
