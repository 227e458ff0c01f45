package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":3001", cfg.ListenAddr)
	assert.Equal(t, 24, cfg.Cleanup.MaxAgeHours)
	assert.Equal(t, time.Hour, cfg.SweepInterval())
	assert.Equal(t, 24*time.Hour, cfg.MaxAge())
	assert.Equal(t, "*", cfg.CORS.AllowedOrigin)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.OIDC.Enabled)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
listen_addr: ":9000"
cleanup:
  max_age_hours: 6
  sweep_interval_min: 15
logging:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, 6, cfg.Cleanup.MaxAgeHours)
	assert.Equal(t, 15*time.Minute, cfg.SweepInterval())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WH_LISTEN_ADDR", ":4000")
	t.Setenv("WH_MAX_AGE_HOURS", "12")
	t.Setenv("WH_SWEEP_INTERVAL_MIN", "30")
	t.Setenv("WH_ADMIN_KEY", "secret")
	t.Setenv("WH_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.ListenAddr)
	assert.Equal(t, 12, cfg.Cleanup.MaxAgeHours)
	assert.Equal(t, 30*time.Minute, cfg.SweepInterval())
	assert.Equal(t, "secret", cfg.AdminKey)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestPortEnvWinsOverListenAddr(t *testing.T) {
	t.Setenv("PORT", "8081")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.ListenAddr)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}
