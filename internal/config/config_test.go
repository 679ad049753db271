package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadClean(t *testing.T) (*Config, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	return Load()
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadClean(t)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:8100", cfg.UrbanAPIHost)
	assert.Equal(t, 2*time.Second, cfg.PingTimeout())
	assert.Equal(t, 60*time.Second, cfg.OperationTimeout())
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "scenario.events", cfg.EventStream)
	assert.Equal(t, "scenarios-conductor-group", cfg.ConsumerGroup)
	assert.Equal(t, "9000", cfg.MetricsPort)
	assert.False(t, cfg.MetricsDisable)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("URBAN_API_HOST", "https://urban.example.com")
	t.Setenv("URBAN_API_PING_TIMEOUT_SEC", "5")
	t.Setenv("EVENT_STREAM", "custom.events")
	t.Setenv("METRICS_DISABLE", "true")

	cfg, err := loadClean(t)
	require.NoError(t, err)

	assert.Equal(t, "https://urban.example.com", cfg.UrbanAPIHost)
	assert.Equal(t, 5*time.Second, cfg.PingTimeout())
	assert.Equal(t, "custom.events", cfg.EventStream)
	assert.True(t, cfg.MetricsDisable)
}

func TestLoad_ProductionRequiresToken(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("URBAN_API_TOKEN", "")

	_, err := loadClean(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "URBAN_API_TOKEN")
}

func TestLoad_ProductionWithTokenPasses(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("URBAN_API_TOKEN", "secret")

	cfg, err := loadClean(t)
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}
