package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.Database.Path = "/tmp/darkscreen.db"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty database path", mutate: func(c *Config) { c.Database.Path = "" }, wantErr: "database.path"},
		{name: "unknown level", mutate: func(c *Config) { c.Logging.Level = "chatty" }, wantErr: "logging.level"},
		{name: "unknown format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "zero log size", mutate: func(c *Config) { c.Logging.MaxSizeMB = 0 }, wantErr: "logging.max_size_mb"},
		{name: "device path", mutate: func(c *Config) { c.Backlight.Device = "/sys/class/backlight/x" }, wantErr: "backlight.device"},
		{name: "empty base path", mutate: func(c *Config) { c.Backlight.BasePath = "" }, wantErr: "backlight.base_path"},
		{name: "negative notice", mutate: func(c *Config) { c.Session.NoticeDurationMs = -1 }, wantErr: "session.notice_duration_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "chatty"
	cfg.Logging.Format = "xml"

	err := validateConfig(cfg)
	assert.ErrorContains(t, err, "database.path")
	assert.ErrorContains(t, err, "logging.level")
	assert.ErrorContains(t, err, "logging.format")
}
