package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "LOG_LEVEL", "LOG_FORMAT", "ULID_TIMEZONE", "ULID_TIME_FORMAT", "ULID_OUTPUT"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, time.RFC3339Nano, cfg.TimeFormat)
	assert.False(t, cfg.JSONOutput())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("ULID_TIMEZONE", "Local")
	t.Setenv("ULID_TIME_FORMAT", time.RFC1123)
	t.Setenv("ULID_OUTPUT", "Json")

	cfg := Load()
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, time.RFC1123, cfg.TimeFormat)
	assert.True(t, cfg.JSONOutput())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLocation_Unknown(t *testing.T) {
	cfg := &Config{Timezone: "Mars/Olympus_Mons"}
	_, err := cfg.Location()
	assert.ErrorContains(t, err, `load timezone "Mars/Olympus_Mons"`)
}
