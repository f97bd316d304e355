package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promo-planner/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.SlogFormat())
	assert.Equal(t, configs.StoreDriverPostgres, cfg.Store.NormalizedDriver())
	assert.False(t, cfg.Psql.RunMigrations)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("STORE_SEED", "true")
	t.Setenv("PSQL_MAX_CONNS", "4")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, configs.StoreDriverMemory, cfg.Store.NormalizedDriver())
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, int32(4), cfg.Psql.MaxConns)
}

func TestLoadDotenvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ENV=staging\nHTTP_PORT=7070\n"), 0o600))
	t.Setenv("HTTP_PORT", "6060")
	// make sure ENV is restored after godotenv sets it
	t.Setenv("ENV", "")
	require.NoError(t, os.Unsetenv("ENV"))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, uint16(6060), cfg.HTTP.Port)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
