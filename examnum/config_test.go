package examnum

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	assert.Equal(t, LogFormatText, cfg.Log.Format)
	assert.Equal(t, 6, cfg.Generator.Digits)
	assert.Equal(t, 3, cfg.Generator.MinDistance)
	assert.Nil(t, cfg.Generator.Seed)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.False(t, cfg.Database.Enabled)
	assert.False(t, cfg.Notifications.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[log]
level = "debug"
format = "json"
add_source = true

[generator]
digits = 4
min_distance = 2
seed = 42
max_attempts = 1000

[output]
dir = "out"
qr = true

[notifications]
enabled = true
webhook_url = "https://discord.com/api/webhooks/123/abc"
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, LogFormatJSON, cfg.Log.Format)
	assert.True(t, cfg.Log.AddSource)
	assert.Equal(t, 4, cfg.Generator.Digits)
	assert.Equal(t, 2, cfg.Generator.MinDistance)
	require.NotNil(t, cfg.Generator.Seed)
	assert.Equal(t, uint64(42), *cfg.Generator.Seed)
	assert.Equal(t, 1000, cfg.Generator.MaxAttempts)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.True(t, cfg.Output.QR)
	assert.True(t, cfg.Notifications.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *Config)
	}{
		{
			name: "zero digits",
			modify: func(cfg *Config) {
				cfg.Generator.Digits = 0
			},
		},
		{
			name: "too many digits",
			modify: func(cfg *Config) {
				cfg.Generator.Digits = 20
			},
		},
		{
			name: "negative min distance",
			modify: func(cfg *Config) {
				cfg.Generator.MinDistance = -1
			},
		},
		{
			name: "negative max attempts",
			modify: func(cfg *Config) {
				cfg.Generator.MaxAttempts = -1
			},
		},
		{
			name: "empty output dir",
			modify: func(cfg *Config) {
				cfg.Output.Dir = ""
			},
		},
		{
			name: "database enabled without address",
			modify: func(cfg *Config) {
				cfg.Database.Enabled = true
			},
		},
		{
			name: "notifications enabled without webhook url",
			modify: func(cfg *Config) {
				cfg.Notifications.Enabled = true
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfigStringRedactsWebhookURL(t *testing.T) {
	cfg := defaultConfig()
	cfg.Notifications.WebhookURL = "https://discord.com/api/webhooks/123/secret"

	assert.NotContains(t, cfg.String(), "secret")
}
