package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"chancli/internal/app"

	"github.com/spf13/cobra"
)

// noTUI switches from the full-screen interface to a plain prompt, for
// terminals where the alternate screen is unwanted or unavailable.
var noTUI bool

// debug enables verbose logging across the application.
var debug bool

// configPath replaces the layered configuration lookup with a single file.
var configPath string

// apiURL and timeout override the loaded API settings.
var apiURL string
var timeout time.Duration

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chancli",
	Short: "Browse 4chan boards, threads and archives from the terminal",
	Long: `chancli is an interactive terminal client for the read-only 4chan JSON API.

Type commands at the prompt to list boards, page through a board's threads,
open a thread by its index on the current page, or browse a board's archive.
Type help inside chancli for the full command list.

It can run in two modes:

1. Interactive TUI Mode (default):
   - Full-screen pager with a command line, a status bar and an activity log.
   - Commands typed while a page loads are queued; esc abandons the load.

2. Line Mode (using --no-tui flag):
   - A plain prompt with history and tab completion that prints each page.

Configuration:
  chancli loads configuration from ~/.config/chancli/config.yaml and
  .chancli/config.yaml in the current directory, then CHANCLI_* environment
  variables (a .env file is read too). Flags override everything.`,
	Args: cobra.NoArgs,
	RunE: runRoot,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid configuration)
	SilenceUsage: true,
}

// runRoot builds the application from flags and configuration and runs it.
func runRoot(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(noTUI, debug, cmd.Root().Version)
	cfg.ConfigPath = configPath
	cfg.APIURL = apiURL
	cfg.Timeout = timeout

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "chancli version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.Flags().BoolVar(&noTUI, "no-tui", false, "Use a plain line prompt instead of the full-screen interface")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Load configuration from this file only")
	rootCmd.Flags().StringVar(&apiURL, "api-url", "", "Base URL of the JSON API (default https://a.4cdn.org)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "Bound on a single page load, retries included (default 10s)")
}
