package app

import (
	"context"
	"fmt"
	"os"

	"chancli/internal/config"
	"chancli/pkg/logging"
)

// Application is the main application structure that bootstraps and runs chancli
type Application struct {
	config   *Config
	services *Services
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	// Line mode shares the terminal with the pages, so only warnings are
	// printed unless debugging.
	appLogLevel := logging.LevelWarn
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Initialize logging for CLI output (will be replaced for TUI mode)
	logging.InitForCLI(appLogLevel, os.Stderr)

	var settings config.Config
	var err error

	if cfg.ConfigPath != "" {
		settings, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Info("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		settings, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration")
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		logging.Info("Bootstrap", "Loaded configuration using layered approach")
	}

	settings, err = cfg.applyOverrides(settings)
	if err != nil {
		return nil, fmt.Errorf("invalid command line override: %w", err)
	}
	cfg.Settings = &settings
	cfg.Debug = settings.Debug
	logging.InitForCLI(cfg.logLevel(logging.LevelWarn), os.Stderr)

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	logging.Debug("Bootstrap", "Using API at %s (timeout %s, %d retries)", settings.API.BaseURL, settings.API.Timeout, settings.API.Retries())

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return a.runREPLMode(ctx)
	}
	return a.runTUIMode(ctx)
}

// runREPLMode runs the application as a line-oriented prompt
func (a *Application) runREPLMode(ctx context.Context) error {
	return runREPLMode(ctx, a.config, a.services)
}

// runTUIMode runs the application in interactive TUI mode
func (a *Application) runTUIMode(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.services)
}
