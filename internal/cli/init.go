package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/aoc-tools/aocgen/internal/branding"
	"github.com/aoc-tools/aocgen/internal/project"
	"github.com/aoc-tools/aocgen/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	initNamespace string
	initLanguage  string
	initDir       string
)

func init() {
	initCmd.Flags().StringVar(&initNamespace, "namespace", "", "Namespace prefix for generated code, e.g. com.example (required)")
	initCmd.Flags().StringVar(&initLanguage, "language", scaffold.DefaultLanguage,
		"Template language: "+strings.Join(scaffold.Languages(), ", "))
	initCmd.Flags().StringVar(&initDir, "dir", "", "Project directory (default: current directory)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create " + branding.ProjectFile() + " for a puzzle project",
	Long: `Create the project file that tells the generator where to put files.

Example:
  ` + branding.CLIName() + ` init --namespace com.example --language java`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if initNamespace == "" {
			return fmt.Errorf("--namespace is required")
		}
		dir := initDir
		if dir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}
			dir = cwd
		}

		p, err := project.Init(dir, initNamespace, initLanguage)
		if err != nil {
			return fmt.Errorf("initializing project: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created %s\n", project.Path(dir))
		fmt.Fprintf(out, "  namespace: %s\n  language:  %s\n  sources:   %s\n  tests:     %s\n",
			p.Namespace, p.Language, p.SourceDir, p.TestSourceDir)
		fmt.Fprintf(out, "\nRun '%s generate-day' to scaffold today's puzzle.\n", branding.CLIName())
		return nil
	},
}
