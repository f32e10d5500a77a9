// Package logging wraps zerolog with the configuration and context helpers
// shared by every darkscreen component.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LogFileName is the name of the log file inside FileConfig.LogDir.
const LogFileName = "darkscreen.log"

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls optional log file output.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	MaxSizeMB     int
	MaxBackups    int
	WriteToStderr bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// DefaultFileConfig returns file output settings with rotation at 10 MB and
// three backups. File output is off.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return newLogger(os.Stderr, cfg)
}

// NewFromConfigValues builds a logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// DARKSCREEN_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// DARKSCREEN_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("DARKSCREEN_LOG_LEVEL"), os.Getenv("DARKSCREEN_LOG_FORMAT"))
}

// NewWithFile creates a logger that writes to a rotating file in fileCfg.LogDir.
// The returned cleanup closes the file. When file output is disabled the logger
// writes to stderr only if WriteToStderr is set, otherwise it is silent.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}

	if !fileCfg.Enabled {
		if fileCfg.WriteToStderr {
			return newLogger(os.Stderr, cfg), noop, nil
		}
		return zerolog.Nop(), noop, nil
	}

	if err := os.MkdirAll(fileCfg.LogDir, 0o750); err != nil {
		return zerolog.Nop(), noop, err
	}

	rf, err := NewRotatingFile(filepath.Join(fileCfg.LogDir, LogFileName), fileCfg.MaxSizeMB, fileCfg.MaxBackups)
	if err != nil {
		return zerolog.Nop(), noop, err
	}

	var out io.Writer = rf
	if fileCfg.WriteToStderr {
		out = zerolog.MultiLevelWriter(rf, consoleWriter(os.Stderr, cfg))
	}

	// File output is always JSON so the logs command can parse it back.
	fileLogger := zerolog.New(out).Level(cfg.Level).With().Timestamp().Logger()
	return fileLogger, func() { _ = rf.Close() }, nil
}

func newLogger(w io.Writer, cfg Config) zerolog.Logger {
	var output io.Writer = w
	if cfg.Format != "json" {
		output = consoleWriter(w, cfg)
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

func consoleWriter(w io.Writer, cfg Config) zerolog.ConsoleWriter {
	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}
	return zerolog.ConsoleWriter{Out: w, TimeFormat: timeFormat}
}

// SetGlobalLevel changes the minimum level of every logger at runtime. Loggers
// built with a lower level than the global one are filtered by it.
func SetGlobalLevel(level string) {
	zerolog.SetGlobalLevel(ParseLevel(level))
}
