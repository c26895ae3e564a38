package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppEnv     string
	LogLevel   string
	LogFormat  string // text or json
	Timezone   string // IANA name, "UTC" or "Local"; display location for parsed timestamps
	TimeFormat string // Go layout used for text output
	Output     string // text or json
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "warn"),
		LogFormat:  strings.ToLower(getEnv("LOG_FORMAT", "text")),
		Timezone:   getEnv("ULID_TIMEZONE", "UTC"),
		TimeFormat: getEnv("ULID_TIME_FORMAT", time.RFC3339Nano),
		Output:     strings.ToLower(getEnv("ULID_OUTPUT", "text")),
	}
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// JSONOutput reports whether commands should print JSON by default.
func (c *Config) JSONOutput() bool { return c.Output == "json" }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
