package logger

import (
	"testing"

	"github.com/rakhadavedra/blogstack/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(level, format string) *config.Config {
	return &config.Config{
		Primary: config.Primary{Env: "test"},
		Logging: &config.LoggingConfig{Level: level, Format: format},
	}
}

func TestNewAppliesLevel(t *testing.T) {
	log := New(newConfig("debug", "json"))
	require.NotNil(t, log)
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())

	log = New(newConfig("error", "console"))
	assert.Equal(t, zerolog.ErrorLevel, log.GetLevel())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))

	// Unknown levels fall back to info instead of failing startup.
	assert.Equal(t, zerolog.InfoLevel, parseLevel("chatty"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
}
