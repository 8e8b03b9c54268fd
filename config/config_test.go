package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("DB_HOST", "localhost")
	os.Setenv("DB_PORT", "5432")
	os.Setenv("DB_USER", "postgres")
	os.Setenv("DB_PASSWORD", "postgres")
	os.Setenv("DB_NAME", "platewise")
	os.Setenv("DB_SSL_MODE", "disable")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("REDIS_URL", "redis://localhost:6379")
	defer func() {
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("REDIS_URL")
	}()

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "postgres", cfg.DBPassword)
	assert.Equal(t, "platewise", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	os.Unsetenv("DB_HOST")
	os.Unsetenv("DB_PORT")
	os.Unsetenv("DB_USER")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("ENV")

	cfg, err := LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "platewise", cfg.DBName)
	// Non-production environments fall back to a development secret.
	assert.Equal(t, "development-secret", cfg.JWTSecret)
}

func TestLoadConfigInvalidRedisDB(t *testing.T) {
	os.Setenv("REDIS_DB", "not-a-number")
	defer os.Unsetenv("REDIS_DB")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	valid := &Config{
		ServerPort: "8080",
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBName:     "platewise",
		JWTSecret:  "secret",
	}
	assert.NoError(t, ValidateConfig(valid))

	badPort := *valid
	badPort.ServerPort = "not-a-port"
	assert.Error(t, ValidateConfig(&badPort))

	noDB := *valid
	noDB.DBName = ""
	assert.Error(t, ValidateConfig(&noDB))

	noSecret := *valid
	noSecret.JWTSecret = ""
	assert.Error(t, ValidateConfig(&noSecret))
}

func TestGetEnvironment(t *testing.T) {
	os.Unsetenv("CI")
	os.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	os.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())

	os.Unsetenv("ENV")
	assert.Equal(t, Development, GetEnvironment())
	assert.True(t, IsDevelopment())

	os.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
	os.Unsetenv("CI")
}
