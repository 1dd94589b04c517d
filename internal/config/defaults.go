package config

import "time"

const (
	DefaultBaseURL           = "https://a.4cdn.org"
	DefaultTimeout           = 10 * time.Second
	DefaultRetryMax          = 2
	DefaultRequestsPerSecond = 1.0
	DefaultUserAgent         = "chancli"
	DefaultIndent            = 4
)

// GetDefaultConfig returns the configuration used when no file or
// environment override is present.
func GetDefaultConfig() Config {
	retries := DefaultRetryMax
	rps := DefaultRequestsPerSecond
	indent := DefaultIndent
	dark := true
	return Config{
		API: APIConfig{
			BaseURL:           DefaultBaseURL,
			Timeout:           DefaultTimeout,
			RetryMax:          &retries,
			RequestsPerSecond: &rps,
			UserAgent:         DefaultUserAgent,
		},
		UI: UIConfig{
			DarkMode: &dark,
			Indent:   &indent,
		},
	}
}
