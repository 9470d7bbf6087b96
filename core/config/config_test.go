package config_test

import (
	"testing"

	"nursery-monitor/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Empty(t, cfg.Server.ApiKey)
	assert.Equal(t, "Bibit", cfg.Feed.Sheet)
	assert.Equal(t, 360, cfg.Feed.CacheTTLMinutes)
	assert.Equal(t, 30, cfg.Feed.PollIntervalSeconds)
	assert.Equal(t, "sengon", cfg.Feed.WatchSpecies)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "nursery", cfg.Database.Name)
	assert.False(t, cfg.Storage.Enabled)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("FEED_ENDPOINT", "https://example.test/export")
	t.Setenv("FEED_WATCH_SPECIES", "jati")
	t.Setenv("STORAGE_ENABLED", "true")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "https://example.test/export", cfg.Feed.Endpoint)
	assert.Equal(t, "jati", cfg.Feed.WatchSpecies)
	assert.True(t, cfg.Storage.Enabled)
}
