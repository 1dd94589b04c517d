package config

import (
	"time"
)

// Config is the top-level configuration structure for chancli.
type Config struct {
	API   APIConfig `yaml:"api"`
	UI    UIConfig  `yaml:"ui"`
	Debug bool      `yaml:"debug,omitempty"`

	// LogLevel is one of debug, info, warn or error. Debug wins over it.
	LogLevel string `yaml:"logLevel,omitempty"`
}

// APIConfig configures the imageboard JSON API client.
type APIConfig struct {
	BaseURL           string        `yaml:"baseURL,omitempty"`           // e.g. https://a.4cdn.org
	Timeout           time.Duration `yaml:"timeout,omitempty"`           // Bound on a single fetch, retries included
	RetryMax          *int          `yaml:"retryMax,omitempty"`          // Transport / 5xx retries; nil keeps the default
	RequestsPerSecond *float64      `yaml:"requestsPerSecond,omitempty"` // Client-side rate limit; 0 disables it
	UserAgent         string        `yaml:"userAgent,omitempty"`
}

// UIConfig configures presentation.
type UIConfig struct {
	DarkMode *bool `yaml:"darkMode,omitempty"`
	Indent   *int  `yaml:"indent,omitempty"` // Comment body indentation in columns
}

// Retries returns the configured retry count.
func (a APIConfig) Retries() int {
	if a.RetryMax == nil {
		return DefaultRetryMax
	}
	return *a.RetryMax
}

// RateLimit returns the configured requests per second.
func (a APIConfig) RateLimit() float64 {
	if a.RequestsPerSecond == nil {
		return DefaultRequestsPerSecond
	}
	return *a.RequestsPerSecond
}

// IndentWidth returns the comment indentation in columns.
func (u UIConfig) IndentWidth() int {
	if u.Indent == nil {
		return DefaultIndent
	}
	return *u.Indent
}

// IsDark reports whether the dark palette should be used.
func (u UIConfig) IsDark() bool {
	return u.DarkMode == nil || *u.DarkMode
}
