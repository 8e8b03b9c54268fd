package config

import "os"

// Environment names the runtime environment the process was started in.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment reads the environment from ENV, defaulting to development.
// CI=true, as set by most CI systems, wins over ENV.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	switch env := Environment(os.Getenv("ENV")); env {
	case Production, Test:
		return env
	default:
		return Development
	}
}

// IsDevelopment reports whether the process runs in development.
func IsDevelopment() bool {
	return GetEnvironment() == Development
}

// IsProduction reports whether the process runs in production.
func IsProduction() bool {
	return GetEnvironment() == Production
}
