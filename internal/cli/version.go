package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aoc-tools/aocgen/internal/branding"
	"github.com/aoc-tools/aocgen/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

// versionInfo is what `version --json` prints. Templates lists the embedded
// template sets a project's `language` may name.
type versionInfo struct {
	Version   string   `json:"version"`
	Commit    string   `json:"commit"`
	Date      string   `json:"date"`
	Templates []string `json:"templates"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information and the bundled template sets",
	Long: `Print version information. The version is what "requires" constraints in
` + branding.ProjectFile() + ` are checked against; development builds report "dev" and
skip that check.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		info := versionInfo{
			Version:   buildVersion,
			Commit:    buildCommit,
			Date:      buildDate,
			Templates: scaffold.Languages(),
		}
		if versionJSON {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), info.Version, info.Commit, info.Date)
		fmt.Fprintf(out, "templates: %s\n", strings.Join(info.Templates, ", "))
		return nil
	},
}
