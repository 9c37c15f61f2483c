package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 120, cfg.Server.RateLimitPerMinute)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "low-stock-reports", cfg.Minio.Bucket)
	assert.Equal(t, AlertModeTotal, cfg.Alerts.Mode)
	assert.Equal(t, 30, cfg.Alerts.WindowDays)
	assert.Equal(t, 60, cfg.Alerts.SweepIntervalMinutes)
	assert.False(t, cfg.Alerts.SweepEnabled)
}

func TestLoad_TOMLFile(t *testing.T) {
	path := writeConfigFile(t, `
[server]
port = 9090
rate_limit_per_minute = 60

[database]
url = "postgres://localhost:5432/stockwatch"

[alerts]
mode = "per_warehouse"
window_days = 14
sweep_enabled = true
sweep_interval_minutes = 15
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 60, cfg.Server.RateLimitPerMinute)
	assert.Equal(t, "postgres://localhost:5432/stockwatch", cfg.Database.URL)
	assert.Equal(t, AlertModePerWarehouse, cfg.Alerts.Mode)
	assert.Equal(t, 14, cfg.Alerts.WindowDays)
	assert.True(t, cfg.Alerts.SweepEnabled)
	assert.Equal(t, 15, cfg.Alerts.SweepIntervalMinutes)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
[server]
port = 9090

[alerts]
mode = "per_warehouse"
`)

	t.Setenv("PORT", "7070")
	t.Setenv("DATABASE_URL", "postgres://db:5432/app")
	t.Setenv("ALERT_MODE", "total")
	t.Setenv("ALERT_WINDOW_DAYS", "7")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "postgres://db:5432/app", cfg.Database.URL)
	assert.Equal(t, AlertModeTotal, cfg.Alerts.Mode)
	assert.Equal(t, 7, cfg.Alerts.WindowDays)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestLoad_InvalidMode(t *testing.T) {
	t.Setenv("ALERT_MODE", "per_product")

	cfg, err := Load("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/config.toml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
