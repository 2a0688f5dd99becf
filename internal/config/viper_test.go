package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "ร้านค้า", cfg.Store.Name)
	assert.Equal(t, "settings.yaml", cfg.Store.SettingsFile)
	assert.Equal(t, 30, cfg.Fetch.TimeoutSeconds)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("LEDGER_LOG_LEVEL", "debug")
	t.Setenv("LEDGER_LOG_FORMAT", "json")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestInitializeConfigGeminiKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.Fetch.TimeoutSeconds = 30
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"bad log level", func(c *Config) { c.Log.Level = "chatty" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"timeout too low", func(c *Config) { c.Fetch.TimeoutSeconds = 0 }, true},
		{"timeout too high", func(c *Config) { c.Fetch.TimeoutSeconds = 301 }, true},
		{"ai enabled without key", func(c *Config) { c.AI.Enabled = true; c.AI.TimeoutSeconds = 30 }, true},
		{"ai enabled with key", func(c *Config) {
			c.AI.Enabled = true
			c.AI.APIKey = "k"
			c.AI.TimeoutSeconds = 30
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingFromConfigBadLevel(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "nope"
	cfg.Log.Format = "text"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
