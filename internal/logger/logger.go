// Package logger configures the application's structured logging.
//
// It builds the root zerolog logger from config: JSON output for
// deployed environments, a human-friendly console writer for local
// development.
package logger

import (
	"os"
	"strings"

	"github.com/rakhadavedra/blogstack/internal/config"
	"github.com/rs/zerolog"
)

// New constructs the root application logger from the logging config.
//
// Unknown level strings fall back to info rather than failing startup;
// a service with slightly-too-chatty logs beats one that refuses to run.
func New(cfg *config.Config) *zerolog.Logger {
	level := parseLevel(cfg.Logging.Level)

	var logger zerolog.Logger
	if cfg.Logging.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().
			Timestamp().
			Logger()
	} else {
		logger = zerolog.New(os.Stderr).
			Level(level).
			With().
			Timestamp().
			Str("service", "blogstack").
			Str("env", cfg.Primary.Env).
			Logger()
	}

	return &logger
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
