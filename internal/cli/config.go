package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/aoc-tools/aocgen/internal/branding"
	"github.com/aoc-tools/aocgen/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write user settings. Environment variables (` + branding.EnvVar("<KEY>") + `, with
dots replaced by underscores) and a project .env file take precedence over the file.

Known keys:
` + settingsHelp(),
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Example: "  " + branding.CLIName() + " config set timezone Europe/Berlin\n" +
		"  " + branding.CLIName() + " config set log.format json",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get a configuration value, or all known values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 1 {
			fmt.Fprintln(out, config.Get(args[0]))
			return nil
		}
		printSettings(out)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.FilePath())
		return nil
	},
}

func printSettings(w io.Writer) {
	for _, s := range config.Settings() {
		fmt.Fprintf(w, "%-12s %s\n", s.Key, config.Get(s.Key))
	}
}

func settingsHelp() string {
	var b strings.Builder
	for _, s := range config.Settings() {
		fmt.Fprintf(&b, "  %-12s %s\n", s.Key, s.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}
