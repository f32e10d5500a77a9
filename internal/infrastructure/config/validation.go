package config

import (
	"fmt"
	"os"
	"strings"
)

// validateConfig collects every problem instead of stopping at the first one.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateDatabase(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateBacklight(config)...)
	validationErrors = append(validationErrors, validateSession(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateDatabase(config *Config) []string {
	if strings.TrimSpace(config.Database.Path) == "" {
		return []string{"database.path cannot be empty"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)",
			config.Logging.Level,
		))
	}

	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)",
			config.Logging.Format,
		))
	}

	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateBacklight(config *Config) []string {
	var validationErrors []string
	if config.Backlight.BasePath == "" {
		validationErrors = append(validationErrors, "backlight.base_path cannot be empty")
	}
	if strings.ContainsRune(config.Backlight.Device, os.PathSeparator) {
		validationErrors = append(validationErrors, "backlight.device must be a device name, not a path")
	}
	return validationErrors
}

func validateSession(config *Config) []string {
	if config.Session.NoticeDurationMs < 0 {
		return []string{"session.notice_duration_ms must be non-negative"}
	}
	return nil
}
