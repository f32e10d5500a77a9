// Package config loads darkscreen settings from TOML, environment variables
// and defaults, and reloads them when the file changes.
package config

// Config is the darkscreen configuration.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database" toml:"database"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging"`
	Backlight BacklightConfig `mapstructure:"backlight" toml:"backlight"`
	Session   SessionConfig   `mapstructure:"session" toml:"session"`
}

// DatabaseConfig locates the preferences database.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// LoggingConfig controls the zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`

	// File output configuration
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups"`
}

// BacklightConfig selects the sysfs device driving device-wide brightness.
type BacklightConfig struct {
	BasePath string `mapstructure:"base_path" toml:"base_path"`
	// Device is a directory name under BasePath. Empty picks the first one.
	Device string `mapstructure:"device" toml:"device"`
	// UseLogind routes writes through logind when the brightness file is read-only.
	UseLogind bool `mapstructure:"use_logind" toml:"use_logind"`
}

// SessionConfig tunes the interactive dark screen.
type SessionConfig struct {
	// Simulate replaces the backlight with an in-memory device.
	Simulate bool `mapstructure:"simulate" toml:"simulate"`
	// SimulatePermission is the initial write permission of the simulated device.
	SimulatePermission bool `mapstructure:"simulate_permission" toml:"simulate_permission"`
	// NoticeDurationMs is how long notices stay on screen.
	NoticeDurationMs int `mapstructure:"notice_duration_ms" toml:"notice_duration_ms"`
}
