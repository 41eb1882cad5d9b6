package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "migrations", cfg.MigrationsDir)
	assert.NotEmpty(t, cfg.DBConn)
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_CONN", "host=db port=5432 user=u password=p dbname=d sslmode=disable")
	t.Setenv("CORS_ORIGIN", "https://app.example.com")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://app.example.com", cfg.CORSOrigin)
	assert.Contains(t, cfg.DBConn, "dbname=d")
}
