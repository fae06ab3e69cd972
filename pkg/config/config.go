// Package config loads catalog configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string
	LogLevel  string
	LogFormat string

	// Database
	DatabaseDriver   string
	DatabaseURL      string
	SQLitePath       string
	DatabaseMaxConns int

	// Events
	EventsEnabled bool
	RabbitMQURL   string
}

// Load reads configuration from the environment. Values in a .env file in
// the working directory are used for variables that are not already set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", ""),

		DatabaseURL:      getEnv("DATABASE_URL", ""),
		SQLitePath:       getEnv("CATALOG_SQLITE_PATH", ""),
		DatabaseMaxConns: getIntEnv("DATABASE_MAX_CONNS", 10),

		EventsEnabled: getBoolEnv("EVENTS_ENABLED", true),
		RabbitMQURL:   getEnv("RABBITMQ_URL", ""),
	}
	cfg.DatabaseDriver = strings.ToLower(getEnv("DATABASE_DRIVER", "auto"))

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// UsesBroker reports whether events go to RabbitMQ rather than in process.
func (c *Config) UsesBroker() bool {
	return c.EventsEnabled && c.RabbitMQURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
