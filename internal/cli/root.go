package cli

import (
	"fmt"
	"log/slog"

	"github.com/aoc-tools/aocgen/internal/branding"
	"github.com/aoc-tools/aocgen/internal/config"
	"github.com/aoc-tools/aocgen/internal/logger"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// log is set up by the root command before any subcommand runs.
var log = slog.Default()

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds the daily files of an Advent of Code project: a solution
stub, a test stub and empty input/example files, placed in a per-day package.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		return setupLogger(cmd)
	},
}

// setupLogger (re)builds log from the current configuration and environment.
func setupLogger(cmd *cobra.Command) error {
	cfg, err := config.Logger()
	if err != nil {
		return err
	}
	log = logger.New(cmd.ErrOrStderr(), cfg)
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}
