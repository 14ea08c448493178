// Package debug provides logging and profiling for plugin instances.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel  = "FREI0RGO_LOG_LEVEL"
	EnvLogFormat = "FREI0RGO_LOG_FORMAT"
	EnvLogFile   = "FREI0RGO_LOG_FILE"
	EnvProfile   = "FREI0RGO_PROFILE"
)

// Format selects the log line encoding.
type Format int

const (
	// FormatText writes logrus text lines with full timestamps.
	FormatText Format = iota
	// FormatJSON writes one JSON object per line.
	FormatJSON
)

// String returns the name used in the environment.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Config holds the process-wide logging settings.
type Config struct {
	Level   logrus.Level
	Format  Format
	File    string // empty writes to stderr
	Profile bool
}

// DefaultConfig logs text at info level to stderr with profiling off.
func DefaultConfig() Config {
	return Config{
		Level:  logrus.InfoLevel,
		Format: FormatText,
	}
}

// ConfigFromEnv reads Config from the process environment. Unknown or
// malformed values keep their defaults.
func ConfigFromEnv() Config {
	return configFromLookup(os.LookupEnv)
}

func configFromLookup(lookup func(string) (string, bool)) Config {
	cfg := DefaultConfig()

	if v, ok := lookup(EnvLogLevel); ok {
		if level, err := logrus.ParseLevel(strings.TrimSpace(v)); err == nil {
			cfg.Level = level
		}
	}
	if v, ok := lookup(EnvLogFormat); ok && strings.EqualFold(strings.TrimSpace(v), FormatJSON.String()) {
		cfg.Format = FormatJSON
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.File = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvProfile); ok {
		if enabled, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.Profile = enabled
		}
	}
	return cfg
}

// NewLogger builds a logger for cfg. If the log file cannot be opened the
// logger falls back to stderr and reports why.
func NewLogger(cfg Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(cfg.Level)

	switch cfg.Format {
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	logger.SetOutput(os.Stderr)
	if cfg.File != "" {
		w, err := openLogFile(cfg.File)
		if err != nil {
			logger.WithError(err).WithField("file", cfg.File).Warn("Falling back to stderr")
		} else {
			logger.SetOutput(w)
		}
	}
	return logger
}

func openLogFile(filename string) (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// Discard returns a logger that drops everything. Useful in tests and
// before the host has initialized the plugin.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
