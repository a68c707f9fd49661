package config

import (
	"os"
	"strconv"

	"fountains/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Generator GeneratorConfig
	Export    ExportConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds API server settings
type ServerConfig struct {
	Port string
}

// GeneratorConfig holds default stream parameters
type GeneratorConfig struct {
	DefaultLength int
	DefaultLimit  int
	Shards        int
}

// ExportConfig holds export output settings
type ExportConfig struct {
	Dir string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Generator: GeneratorConfig{
			DefaultLength: getEnvIntOrDefault("GENERATOR_LENGTH", 32),
			DefaultLimit:  getEnvIntOrDefault("GENERATOR_LIMIT", 256),
			Shards:        getEnvIntOrDefault("GENERATOR_SHARDS", 4),
		},
		Export: ExportConfig{
			Dir: getEnvOrDefault("EXPORT_DIR", "."),
		},
	}

	if config.Generator.DefaultLength <= 0 {
		return nil, errors.ConfigInvalid("GENERATOR_LENGTH must be positive")
	}
	if config.Generator.DefaultLimit < 0 {
		return nil, errors.ConfigInvalid("GENERATOR_LIMIT must be non-negative")
	}
	if config.Generator.Shards <= 0 {
		return nil, errors.ConfigInvalid("GENERATOR_SHARDS must be positive")
	}

	return config, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
