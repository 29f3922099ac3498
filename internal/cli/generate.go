package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aoc-tools/aocgen/internal/branding"
	"github.com/aoc-tools/aocgen/internal/calendar"
	"github.com/aoc-tools/aocgen/internal/config"
	"github.com/aoc-tools/aocgen/internal/project"
	"github.com/aoc-tools/aocgen/internal/scaffold"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Viper keys bound to generate-day flags; env vars are AOCGEN_<KEY>.
const (
	keyDay           = "day"
	keyForce         = "force"
	keyUseDayPackage = "use_day_package"
)

var errInvalidSetting = errors.New("invalid setting")

var (
	genDryRun     bool
	genProjectDir string
)

func init() {
	f := generateCmd.Flags()
	f.String("day", "", "Puzzle day 0-31, decimal (default: today in the configured time zone)")
	f.Bool("force", false, "Overwrite existing solution and test files")
	f.Bool("use-day-package", true, "Place files in a per-day package (<namespace>.dayNN)")
	f.BoolVar(&genDryRun, "dry-run", false, "Show what would be written without touching any file")
	f.StringVar(&genProjectDir, "project", "", "Project directory (default: nearest parent with "+branding.ProjectFile()+")")

	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:     "generate-day",
	Aliases: []string{"gen"},
	Short:   "Scaffold the solution, test and input files for a puzzle day",
	Long: `Scaffold the files for one puzzle day: a solution stub, a test stub, an empty
input.txt and an empty example.txt. Existing files are left alone unless --force
is given; input and example files are never emptied.

Examples:
  ` + branding.CLIName() + ` generate-day
  ` + branding.CLIName() + ` generate-day --day 5 --force
  AOCGEN_DAY=7 ` + branding.CLIName() + ` generate-day --use-day-package=false`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		for key, flag := range map[string]string{
			keyDay:           "day",
			keyForce:         "force",
			keyUseDayPackage: "use-day-package",
		} {
			if err := viper.BindPFlag(key, f.Lookup(flag)); err != nil {
				return fmt.Errorf("binding --%s: %w", flag, err)
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveProjectRoot(genProjectDir)
		if err != nil {
			return err
		}
		if err := config.LoadDotEnv(root); err != nil {
			return err
		}
		// .env may carry AOCGEN_LOG_* settings.
		if err := setupLogger(cmd); err != nil {
			return err
		}

		day, err := parseDay(viper.GetString(keyDay))
		if err != nil {
			return err
		}

		force, err := parseBool(keyForce)
		if err != nil {
			return err
		}

		p, err := project.Load(root)
		if err != nil {
			return err
		}
		opts := generateOptions{
			Root:    root,
			Day:     day,
			Force:   force,
			DryRun:  genDryRun,
			Version: buildVersion,
		}
		if viper.IsSet(keyUseDayPackage) {
			v, err := parseBool(keyUseDayPackage)
			if err != nil {
				return err
			}
			opts.UseDayPackage = &v
		}
		return runGenerate(p, opts, cmd.OutOrStdout(), log)
	},
}

// generateOptions are the command-line and environment inputs to one run.
type generateOptions struct {
	Root          string
	Day           int
	Force         bool
	UseDayPackage *bool // nil keeps the project setting
	DryRun        bool
	Version       string
	Clock         calendar.Provider // nil builds one from the configured zone
}

func runGenerate(p *project.Project, opts generateOptions, out io.Writer, log *slog.Logger) error {
	if err := p.CheckRequires(opts.Version); err != nil {
		return err
	}

	dirs, err := p.Dirs(opts.Root)
	if err != nil {
		return err
	}

	clock := opts.Clock
	if clock == nil {
		zoned, err := calendar.NewZoned(resolveTimezone(p))
		if err != nil {
			return err
		}
		clock = zoned
	}

	useDayPackage := p.DayPackage()
	if opts.UseDayPackage != nil {
		useDayPackage = *opts.UseDayPackage
	}

	report, err := scaffold.New(log, clock).Generate(scaffold.Request{
		Day:           opts.Day,
		Namespace:     p.Namespace,
		Language:      p.Language,
		UseDayPackage: useDayPackage,
		Force:         opts.Force,
		DryRun:        opts.DryRun,
	}, dirs)
	if err != nil {
		return err
	}

	printReport(out, opts.Root, report, opts.DryRun)
	return nil
}

// parseDay reads a day from a flag or AOCGEN_DAY. Values are decimal, so
// "08" is day 8. Empty means unset.
func parseDay(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return calendar.Unset, nil
	}
	day, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", scaffold.ErrInvalidDay, raw)
	}
	if day < 0 && day != calendar.Unset {
		return 0, fmt.Errorf("%w: %d (want 0-%d)", scaffold.ErrInvalidDay, day, calendar.MaxDay)
	}
	return day, nil
}

// parseBool reads a boolean setting, rejecting values such as "yes" that
// viper would otherwise turn into false.
func parseBool(key string) (bool, error) {
	raw := viper.GetString(key)
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q is not a boolean", errInvalidSetting, key, raw)
	}
	return v, nil
}

// resolveTimezone picks the zone for "today": an explicit AOCGEN_TIMEZONE
// wins, then the project file, then the user config (which defaults to
// calendar.DefaultZone).
func resolveTimezone(p *project.Project) string {
	if v := os.Getenv(branding.EnvVar("TIMEZONE")); v != "" {
		return v
	}
	if p.Timezone != "" {
		return p.Timezone
	}
	return config.Get(config.KeyTimezone)
}

func resolveProjectRoot(dir string) (string, error) {
	if dir != "" {
		return filepath.Abs(dir)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return project.FindRoot(cwd)
}

func printReport(w io.Writer, root string, report *scaffold.Report, dryRun bool) {
	heading := "Generated"
	if dryRun {
		heading = "Would generate"
	}
	fmt.Fprintf(w, "%s Day %02d in %s\n", heading, report.Day, report.Names.Package)
	for _, a := range report.Artifacts {
		status := a.Action.String()
		if a.Err != nil {
			status = "failed"
		}
		fmt.Fprintf(w, "  %-10s %s\n", status, displayPath(root, a.Path))
	}

	if failed := report.Failed(); len(failed) > 0 {
		fmt.Fprintln(w, "\nFailures:")
		for _, a := range failed {
			fmt.Fprintf(w, "  - %s: %v\n", a.Kind, a.Err)
		}
	}
}

func displayPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && filepath.IsLocal(rel) {
		return rel
	}
	return path
}
