// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded
// from a `.env` file), loads them into structured Go types, and
// validates that required values are present so the app fails fast on
// bad or missing configuration.
//
// Env vars use the BLOGSTACK_ prefix and dot-delimited nesting:
//
//	BLOGSTACK_SERVER.PORT      -> server.port      -> Config.Server.Port
//	BLOGSTACK_DATABASE.URI     -> database.uri     -> Config.Database.URI
//	BLOGSTACK_LOGGING.LEVEL    -> logging.level    -> Config.Logging.Level
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file (if present) into the
	// process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config is the root configuration object for the application.
//
// The `koanf` tags map env keys onto fields; the `validate` tags are
// enforced by go-playground/validator before the config is handed out.
// Logging is a pointer because it is optional; defaults are injected
// when it is absent.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Logging  *LoggingConfig `koanf:"logging"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and switch behavior (e.g. console logging in local).
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains MongoDB connection parameters.
//
// URI is a standard mongodb:// connection string. Name selects the
// database holding the users/categories/blogs collections.
type DatabaseConfig struct {
	URI            string `koanf:"uri" validate:"required"`
	Name           string `koanf:"name" validate:"required"`
	ConnectTimeout int    `koanf:"connect_timeout"`
	MaxPoolSize    uint64 `koanf:"max_pool_size"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level" validate:"required"`

	// Format selects the output format, "json" or "console".
	Format string `koanf:"format" validate:"required,oneof=json console"`
}

// DefaultLoggingConfig returns the logging settings used when the
// logging block is not configured.
func DefaultLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level:  "info",
		Format: "json",
	}
}

// Load reads configuration from the environment, unmarshals it into
// Config, validates it, and applies defaults.
//
// Load exits the process on invalid configuration: there is no useful
// way to serve requests without a port or a database URI.
func Load() (*Config, error) {
	// Bootstrap logger for config-time failures, before the real
	// logger exists (its settings live inside the config).
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	// Only env vars with the BLOGSTACK_ prefix are read; the prefix is
	// stripped and the rest lowercased to form the koanf key path.
	err := k.Load(env.Provider("BLOGSTACK_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "BLOGSTACK_"))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load env variables")
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal config")
	}

	// Defaults for optional blocks before validation runs.
	if mainConfig.Logging == nil {
		mainConfig.Logging = DefaultLoggingConfig()
	}
	if mainConfig.Database.ConnectTimeout <= 0 {
		mainConfig.Database.ConnectTimeout = 10
	}
	if mainConfig.Database.MaxPoolSize == 0 {
		mainConfig.Database.MaxPoolSize = 100
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("config validation failed")
	}

	return mainConfig, nil
}
