package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"chancli/pkg/logging"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var lookupEnv = os.LookupEnv
var loadDotEnv = func() error { return godotenv.Load() }

const (
	userConfigDir    = ".config/chancli"
	projectConfigDir = ".chancli"
	configFileName   = "config.yaml"

	EnvAPIURL   = "CHANCLI_API_URL"
	EnvTimeout  = "CHANCLI_TIMEOUT"
	EnvDebug    = "CHANCLI_DEBUG"
	EnvLogLevel = "CHANCLI_LOG_LEVEL"
)

// LoadConfig loads the chancli configuration by layering default, user,
// project and environment settings.
func LoadConfig() (Config, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		config, err = mergeFileIfExists(config, userConfigPath, "user")
		if err != nil {
			return Config{}, err
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		config, err = mergeFileIfExists(config, projectConfigPath, "project")
		if err != nil {
			return Config{}, err
		}
	}

	return finish(config)
}

// LoadConfigFromPath loads defaults overlaid with exactly one file.
// Unlike the layered lookup the file must exist.
func LoadConfigFromPath(path string) (Config, error) {
	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return finish(mergeConfigs(GetDefaultConfig(), fileConfig))
}

func finish(config Config) (Config, error) {
	config, err := applyEnv(config)
	if err != nil {
		return Config{}, err
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func mergeFileIfExists(base Config, path, layer string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error loading %s config from %s: %w", layer, path, err)
	}
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Unset fields in
// the overlay leave the base untouched.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.API.BaseURL != "" {
		merged.API.BaseURL = overlay.API.BaseURL
	}
	if overlay.API.Timeout != 0 {
		merged.API.Timeout = overlay.API.Timeout
	}
	if overlay.API.RetryMax != nil {
		merged.API.RetryMax = overlay.API.RetryMax
	}
	if overlay.API.RequestsPerSecond != nil {
		merged.API.RequestsPerSecond = overlay.API.RequestsPerSecond
	}
	if overlay.API.UserAgent != "" {
		merged.API.UserAgent = overlay.API.UserAgent
	}

	if overlay.UI.DarkMode != nil {
		merged.UI.DarkMode = overlay.UI.DarkMode
	}
	if overlay.UI.Indent != nil {
		merged.UI.Indent = overlay.UI.Indent
	}

	merged.Debug = merged.Debug || overlay.Debug
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}

	return merged
}

// applyEnv overlays CHANCLI_* variables, reading ./.env first.
func applyEnv(config Config) (Config, error) {
	if err := loadDotEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading .env: %w", err)
	}

	if v, ok := lookupEnv(EnvAPIURL); ok && strings.TrimSpace(v) != "" {
		config.API.BaseURL = strings.TrimSpace(v)
	}
	if v, ok := lookupEnv(EnvTimeout); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		config.API.Timeout = d
	}
	if v, ok := lookupEnv(EnvDebug); ok && strings.TrimSpace(v) != "" {
		debug, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvDebug, v, err)
		}
		config.Debug = debug
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		config.LogLevel = strings.TrimSpace(v)
	}
	return config, nil
}

// Validate rejects configurations the client cannot run with.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.baseURL must not be empty")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.baseURL %q: %w", c.API.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.baseURL %q: scheme must be http or https", c.API.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("api.baseURL %q: missing host", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.API.Retries() < 0 {
		return fmt.Errorf("api.retryMax must not be negative, got %d", c.API.Retries())
	}
	if c.API.RateLimit() < 0 {
		return fmt.Errorf("api.requestsPerSecond must not be negative, got %v", c.API.RateLimit())
	}
	if c.UI.IndentWidth() < 0 {
		return fmt.Errorf("ui.indent must not be negative, got %d", c.UI.IndentWidth())
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("logLevel: %w", err)
	}
	return nil
}
