package config

import (
	"github.com/bnema/darkscreen/internal/infrastructure/backlight"
	"github.com/bnema/darkscreen/internal/logging"
)

const defaultNoticeDurationMs = 3000

// DefaultConfig returns the built-in configuration. Database.Path and
// Logging.LogDir stay empty and are resolved against the XDG directories on load.
func DefaultConfig() *Config {
	logDefaults := logging.DefaultConfig()
	fileDefaults := logging.DefaultFileConfig()

	return &Config{
		Logging: LoggingConfig{
			Level:         logDefaults.Level.String(),
			Format:        logDefaults.Format,
			EnableFileLog: false,
			MaxSizeMB:     fileDefaults.MaxSizeMB,
			MaxBackups:    fileDefaults.MaxBackups,
		},
		Backlight: BacklightConfig{
			BasePath:  backlight.DefaultBasePath,
			UseLogind: false,
		},
		Session: SessionConfig{
			Simulate:           false,
			SimulatePermission: false,
			NoticeDurationMs:   defaultNoticeDurationMs,
		},
	}
}
