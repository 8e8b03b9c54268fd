package config

import (
	"fmt"
	"strconv"
)

// ValidateConfig checks that required settings are present and well-formed.
func ValidateConfig(cfg *Config) error {
	if cfg.ServerPort == "" {
		return fmt.Errorf("server port is required")
	}
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("server port must be numeric: %w", err)
	}

	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return fmt.Errorf("database host, port, user and name are required")
	}

	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	return nil
}
