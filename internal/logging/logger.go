// Package logging wires zerolog loggers and carries them through context.Context.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// FileConfig controls the optional log file sink.
type FileConfig struct {
	Enabled       bool
	Path          string
	WriteToStderr bool
}

// New creates a new zerolog logger writing to stderr with the given configuration
func New(cfg Config) zerolog.Logger {
	return newLogger(cfg, consoleOrJSON(cfg, os.Stderr))
}

// NewWithFile creates a logger that also appends to a file. The returned
// cleanup closes the file and is safe to call when no file was opened.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	const (
		logDirPerm  = 0o750
		logFilePerm = 0o600
	)
	noop := func() {}

	if !fileCfg.Enabled || fileCfg.Path == "" {
		if !fileCfg.WriteToStderr {
			return zerolog.Nop(), noop, nil
		}
		return New(cfg), noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(fileCfg.Path), logDirPerm); err != nil {
		return New(cfg), noop, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(fileCfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return New(cfg), noop, fmt.Errorf("open log file: %w", err)
	}

	// Files always get JSON so they stay greppable.
	writers := []io.Writer{file}
	if fileCfg.WriteToStderr {
		writers = append(writers, consoleOrJSON(cfg, os.Stderr))
	}

	cleanup := func() { _ = file.Close() }
	return newLogger(cfg, zerolog.MultiLevelWriter(writers...)), cleanup, nil
}

func newLogger(cfg Config, output io.Writer) zerolog.Logger {
	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

func consoleOrJSON(cfg Config, out io.Writer) io.Writer {
	if cfg.Format == "json" {
		return out
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: cfg.TimeFormat}
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
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

// NewFromEnv creates a logger based on environment variables
// TESSERA_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// TESSERA_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("TESSERA_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("TESSERA_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}

// NewFromConfigValues creates a logger from config strings, as read from
// the config file.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" {
		cfg.Format = format
	}
	return New(cfg)
}
