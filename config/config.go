package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string
}

// LoadConfig creates a new Config instance with values from environment
// variables, applying per-environment defaults.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{
		ServerPort:    envOr("SERVER_PORT", "8080"),
		ServerHost:    envOr("SERVER_HOST", "0.0.0.0"),
		DBHost:        envOr("DB_HOST", "localhost"),
		DBPort:        envOr("DB_PORT", "5432"),
		DBUser:        envOr("DB_USER", "postgres"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        envOr("DB_NAME", "platewise"),
		DBSSLMode:     envOr("DB_SSL_MODE", "disable"),
		RedisHost:     envOr("REDIS_HOST", "localhost"),
		RedisPort:     envOr("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisURL:      os.Getenv("REDIS_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
	}

	if db := os.Getenv("REDIS_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", db, err)
		}
		cfg.RedisDB = n
	}

	// Development and test runs get a usable secret out of the box;
	// production must provide one.
	if cfg.JWTSecret == "" && env != Production {
		cfg.JWTSecret = "development-secret"
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
