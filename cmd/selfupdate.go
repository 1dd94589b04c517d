package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const githubRepoSlug = "gimu/chancli"

// release is the part of a published release the update needs.
type release struct {
	Version   string
	AssetURL  string
	AssetName string
}

// Replaced in tests.
var (
	detectLatest = func(ctx context.Context, slug string) (release, bool, error) {
		latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(slug))
		if err != nil || !found {
			return release{}, found, err
		}
		return release{Version: latest.Version(), AssetURL: latest.AssetURL, AssetName: latest.AssetName}, true, nil
	}
	updateTo       = selfupdate.UpdateTo
	executablePath = selfupdate.ExecutablePath
)

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update chancli to the latest version",
		Long: `Checks for the latest release of chancli on GitHub and
updates the current binary if a newer version is found.`,
		Args: cobra.NoArgs,
		RunE: runSelfUpdate,
	}
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	currentVersion := rootCmd.Version
	if currentVersion == "" || currentVersion == "dev" {
		return errors.New("cannot self-update a development version")
	}

	ctx := context.Background()
	var out io.Writer = os.Stdout
	if cmd != nil {
		out = cmd.OutOrStdout()
		if cmd.Context() != nil {
			ctx = cmd.Context()
		}
	}

	fmt.Fprintf(out, "Current version: %s\n", currentVersion)
	fmt.Fprintln(out, "Checking for updates...")

	latest, found, err := detectLatest(ctx, githubRepoSlug)
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s could not be found in %s", currentVersion, githubRepoSlug)
	}

	newer, err := isNewer(latest.Version, currentVersion)
	if err != nil {
		return err
	}
	if !newer {
		fmt.Fprintf(out, "Current version (%s) is the latest.\n", currentVersion)
		return nil
	}

	exe, err := executablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	fmt.Fprintf(out, "Updating to version %s...\n", latest.Version)
	if err := updateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Fprintf(out, "Successfully updated to version %s\n", latest.Version)
	return nil
}

// isNewer reports whether latest is a higher semantic version than current.
func isNewer(latest, current string) (bool, error) {
	l, err := semver.NewVersion(latest)
	if err != nil {
		return false, fmt.Errorf("invalid release version %q: %w", latest, err)
	}
	c, err := semver.NewVersion(current)
	if err != nil {
		return false, fmt.Errorf("invalid current version %q: %w", current, err)
	}
	return l.GreaterThan(c), nil
}
