package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup at tempDir and clears the environment layer.
func isolate(t *testing.T, env map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	originalUser := getUserConfigPath
	originalProject := getProjectConfigPath
	originalLookup := lookupEnv
	originalDotEnv := loadDotEnv
	t.Cleanup(func() {
		getUserConfigPath = originalUser
		getProjectConfigPath = originalProject
		lookupEnv = originalLookup
		loadDotEnv = originalDotEnv
	})

	getUserConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "user", configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "project", configFileName), nil
	}
	lookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	loadDotEnv = func() error { return nil }
	return tempDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	isolate(t, nil)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.API.Timeout)
	assert.Equal(t, DefaultRetryMax, cfg.API.Retries())
	assert.Equal(t, DefaultIndent, cfg.UI.IndentWidth())
	assert.Equal(t, DefaultRequestsPerSecond, cfg.API.RateLimit())
	assert.Empty(t, cfg.LogLevel)
	assert.True(t, cfg.UI.IsDark())
	assert.False(t, cfg.Debug)
}

func TestLoadConfig_UserThenProjectOverride(t *testing.T) {
	dir := isolate(t, nil)

	writeFile(t, filepath.Join(dir, "user", configFileName), `
api:
  timeout: 3s
  retryMax: 0
ui:
  darkMode: false
`)
	writeFile(t, filepath.Join(dir, "project", configFileName), `
api:
  baseURL: http://localhost:8080
ui:
  indent: 2
`)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, 0, cfg.API.Retries(), "explicit zero retries must survive the merge")
	assert.Equal(t, 2, cfg.UI.IndentWidth())
	assert.False(t, cfg.UI.IsDark())
	assert.Equal(t, DefaultUserAgent, cfg.API.UserAgent)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := isolate(t, nil)
	writeFile(t, filepath.Join(dir, "user", configFileName), "api: [unclosed")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading user config")
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	isolate(t, map[string]string{
		EnvAPIURL:   "https://mirror.example.org",
		EnvTimeout:  "250ms",
		EnvDebug:    "true",
		EnvLogLevel: " warn ",
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://mirror.example.org", cfg.API.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.API.Timeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_InvalidEnvironment(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad timeout", map[string]string{EnvTimeout: "soon"}},
		{"bad debug", map[string]string{EnvDebug: "maybe"}},
		{"bad scheme", map[string]string{EnvAPIURL: "ftp://a.4cdn.org"}},
		{"bad log level", map[string]string{EnvLogLevel: "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t, tt.env)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_ExplicitZerosOverrideDefaults(t *testing.T) {
	dir := isolate(t, nil)
	writeFile(t, filepath.Join(dir, "user", configFileName), `
api:
  requestsPerSecond: 3
ui:
  indent: 6
`)
	writeFile(t, filepath.Join(dir, "project", configFileName), `
api:
  requestsPerSecond: 0
ui:
  indent: 0
logLevel: error
`)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.API.RateLimit(), "requestsPerSecond: 0 must disable the limiter")
	assert.Equal(t, 0, cfg.UI.IndentWidth(), "indent: 0 must survive the merge")
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestMergeConfigs_UnsetFieldsKeepBase(t *testing.T) {
	base := GetDefaultConfig()
	base.LogLevel = "info"

	merged := mergeConfigs(base, Config{})

	assert.Equal(t, DefaultRequestsPerSecond, merged.API.RateLimit())
	assert.Equal(t, DefaultIndent, merged.UI.IndentWidth())
	assert.Equal(t, "info", merged.LogLevel)
}

func TestLoadConfigFromPath(t *testing.T) {
	dir := isolate(t, nil)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "api:\n  requestsPerSecond: 4\ndebug: true\n")

	cfg, err := LoadConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.API.RateLimit())
	assert.True(t, cfg.Debug)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)

	_, err = LoadConfigFromPath(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := GetDefaultConfig()

	noTimeout := base
	noTimeout.API.Timeout = 0
	assert.Error(t, noTimeout.Validate())

	negative := -1
	negRetries := base
	negRetries.API.RetryMax = &negative
	assert.Error(t, negRetries.Validate())

	noHost := base
	noHost.API.BaseURL = "https://"
	assert.Error(t, noHost.Validate())

	negIndent := base
	minusTwo := -2
	negIndent.UI.Indent = &minusTwo
	assert.Error(t, negIndent.Validate())

	negRate := base
	minusRate := -0.5
	negRate.API.RequestsPerSecond = &minusRate
	assert.Error(t, negRate.Validate())

	badLevel := base
	badLevel.LogLevel = "verbose"
	assert.Error(t, badLevel.Validate())

	assert.NoError(t, base.Validate())
}
