package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origHost := os.Getenv("DB_HOST")
	defer os.Setenv("DB_HOST", origHost)

	os.Setenv("DB_HOST", "test-host")
	os.Setenv("DB_MAX_OPEN_CONNS", "20")
	os.Setenv("MINIO_USE_SSL", "true")
	os.Setenv("REPORT_PREFIX", "exports")
	defer os.Unsetenv("REPORT_PREFIX")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "exports", cfg.Report.Prefix)
	assert.Equal(t, "daily-signup-report", cfg.Report.DefaultTask)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_ENV_INT"
	os.Setenv(key, "42")
	defer os.Unsetenv(key)

	assert.Equal(t, 42, getEnvInt(key, 1))
	assert.Equal(t, 1, getEnvInt("NON_EXISTENT", 1))

	os.Setenv(key, "not-a-number")
	assert.Equal(t, 1, getEnvInt(key, 1))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_ENV_BOOL"
	os.Setenv(key, "true")
	defer os.Unsetenv(key)

	assert.True(t, getEnvBool(key, false))
	assert.False(t, getEnvBool("NON_EXISTENT", false))

	os.Setenv(key, "garbage")
	assert.True(t, getEnvBool(key, true))
}
