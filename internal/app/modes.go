package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"chancli/internal/interpreter"
	"chancli/internal/repl"
	"chancli/internal/tui/controller"
	"chancli/internal/tui/design"
	"chancli/internal/tui/model"
	"chancli/pkg/logging"
)

// runREPLMode serves commands on a plain prompt. An interrupt while a page
// is loading cancels the fetch and ends the session.
func runREPLMode(ctx context.Context, config *Config, services *Services) error {
	logging.Debug("CLI", "Running in no-TUI mode.")

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	design.Initialize(config.Settings.UI.IsDark())

	runner := interpreter.NewRunner(services.Interpreter)
	if err := repl.New(runner).Run(ctx); err != nil {
		logging.Error("CLI", err, "Line mode failed")
		return err
	}
	return nil
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	design.Initialize(config.Settings.UI.IsDark())

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(config.logLevel(logging.LevelInfo))
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(model.TUIConfig{
		Interpreter: services.Interpreter,
		DebugMode:   config.Debug,
		LogChannel:  logChan,
	})
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}
