package app

import (
	"time"

	"chancli/internal/config"
	"chancli/pkg/logging"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// Layered configuration, or a single file when ConfigPath is set
	ConfigPath string

	// Command line overrides of the loaded settings
	APIURL  string
	Timeout time.Duration

	// Build version shown on the splash page
	Version string

	// Settings is filled in by NewApplication.
	Settings *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, version string) *Config {
	return &Config{
		NoTUI:   noTUI,
		Debug:   debug,
		Version: version,
	}
}

// applyOverrides lays command line flags over the loaded settings.
func (c *Config) applyOverrides(settings config.Config) (config.Config, error) {
	if c.APIURL != "" {
		settings.API.BaseURL = c.APIURL
	}
	if c.Timeout != 0 {
		settings.API.Timeout = c.Timeout
	}
	settings.Debug = settings.Debug || c.Debug
	if err := settings.Validate(); err != nil {
		return config.Config{}, err
	}
	return settings, nil
}

// logLevel picks the log level for a mode. Debug wins over the configured
// logLevel, which wins over the mode's fallback.
func (c *Config) logLevel(fallback logging.LogLevel) logging.LogLevel {
	if c.Debug {
		return logging.LevelDebug
	}
	if c.Settings == nil || c.Settings.LogLevel == "" {
		return fallback
	}
	level, err := logging.ParseLevel(c.Settings.LogLevel)
	if err != nil {
		return fallback
	}
	return level
}
