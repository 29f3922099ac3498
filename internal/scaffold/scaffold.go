package scaffold

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aoc-tools/aocgen/internal/calendar"
	"github.com/aoc-tools/aocgen/internal/platform"
)

// Configuration errors. These are the only errors Generate returns.
var (
	ErrMissingConfig   = errors.New("missing required configuration")
	ErrInvalidDay      = errors.New("day out of range")
	ErrUnknownLanguage = errors.New("unknown template language")
)

// Request holds the parameters of one generation run.
type Request struct {
	Day           int    // calendar.Unset resolves to today in the fixed zone
	Namespace     string // dotted prefix, e.g. "com.example"
	Language      string // template set; empty means DefaultLanguage
	UseDayPackage bool
	Force         bool
	DryRun        bool // decide and log, but touch nothing
}

// Kind identifies one of the four managed artifacts.
type Kind int

const (
	KindSource Kind = iota
	KindTest
	KindInput
	KindExample
)

// String returns the label used in skip messages.
func (k Kind) String() string {
	switch k {
	case KindSource:
		return "Source"
	case KindTest:
		return "Test source"
	case KindInput:
		return "Input"
	case KindExample:
		return "Example"
	default:
		return "Unknown"
	}
}

// ArtifactResult is the outcome for one artifact.
type ArtifactResult struct {
	Kind   Kind
	Path   string
	Action Action
	Err    error
}

// Report holds the outcome of a generation run.
type Report struct {
	Day       int
	Names     Names
	Language  Language
	Artifacts []ArtifactResult
}

// Count returns how many artifacts ended with action a and no error.
func (r *Report) Count(a Action) int {
	n := 0
	for _, art := range r.Artifacts {
		if art.Action == a && art.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the artifacts whose operation failed.
func (r *Report) Failed() []ArtifactResult {
	var failed []ArtifactResult
	for _, art := range r.Artifacts {
		if art.Err != nil {
			failed = append(failed, art)
		}
	}
	return failed
}

// Generator writes the daily scaffold.
type Generator struct {
	log   *slog.Logger
	clock calendar.Provider
}

// New creates a Generator. A nil logger falls back to slog.Default().
func New(log *slog.Logger, clock calendar.Provider) *Generator {
	if log == nil {
		log = slog.Default()
	}
	return &Generator{log: log, clock: clock}
}

// artifact is one managed file plus how to produce and report it.
type artifact struct {
	kind   Kind
	path   string
	render func() ([]byte, error) // nil for placeholders
	onFail func()
}

// Generate creates, skips or overwrites the four artifacts for the requested
// day. Only configuration problems are returned as errors; I/O failures are
// logged, recorded in the report and do not stop the remaining artifacts.
func (g *Generator) Generate(req Request, dirs Dirs) (*Report, error) {
	if strings.TrimSpace(req.Namespace) == "" {
		return nil, fmt.Errorf("%w: namespace", ErrMissingConfig)
	}
	if err := dirs.validate(); err != nil {
		return nil, err
	}
	lang, err := LookupLanguage(req.Language)
	if err != nil {
		return nil, err
	}

	day := req.Day
	if day < 0 {
		if g.clock == nil {
			return nil, fmt.Errorf("%w: no day given and no date provider", ErrMissingConfig)
		}
		day = calendar.ResolveDay(day, g.clock)
	}
	if !calendar.ValidDay(day) {
		return nil, fmt.Errorf("%w: %d (want 0-%d)", ErrInvalidDay, day, calendar.MaxDay)
	}

	g.log.Info(fmt.Sprintf("Generating Advent of Code files for Day %02d", day))
	names := NewNames(req.Namespace, day, req.UseDayPackage)
	g.log.Info(fmt.Sprintf("Writing files to package: %s", names.Package))

	targets := names.Targets(dirs, lang)
	artifacts := []artifact{
		{
			kind:   KindSource,
			path:   targets.Source,
			render: func() ([]byte, error) { return RenderSource(lang, names) },
			onFail: func() {
				g.log.Error(fmt.Sprintf("Unable to create new %s file: %s", lang.Label, names.ClassName+lang.Ext))
			},
		},
		{
			kind:   KindTest,
			path:   targets.Test,
			render: func() ([]byte, error) { return RenderTest(lang, names) },
			onFail: func() {
				g.log.Error(fmt.Sprintf("Unable to create new %s test file: %s", lang.Label, names.TestClassName+lang.Ext))
			},
		},
		{
			kind: KindInput,
			path: targets.Input,
			onFail: func() {
				g.log.Warn(fmt.Sprintf("Failed to create input file for tests at: %s", targets.Input))
			},
		},
		{
			kind: KindExample,
			path: targets.Example,
			onFail: func() {
				g.log.Warn(fmt.Sprintf("Failed to create example file for tests at: %s", targets.Example))
			},
		},
	}

	report := &Report{
		Day:      day,
		Names:    names,
		Language: lang,
	}
	for _, a := range artifacts {
		report.Artifacts = append(report.Artifacts, g.apply(a, req))
	}
	return report, nil
}

// apply runs the exists/force decision for one artifact and carries it out.
func (g *Generator) apply(a artifact, req Request) ArtifactResult {
	result := ArtifactResult{
		Kind:   a.kind,
		Path:   a.path,
		Action: Decide(platform.Exists(a.path), req.Force),
	}

	if result.Action == ActionSkip {
		g.log.Info(fmt.Sprintf("%s file already exists at: %s. Skipping creation", a.kind, a.path))
		return result
	}

	if req.DryRun {
		g.log.Info(fmt.Sprintf("Dry run: would %s %s", result.Action, a.path))
		return result
	}

	if err := g.write(a); err != nil {
		g.log.Debug("artifact failed", "kind", a.kind.String(), "path", a.path, "error", err)
		a.onFail()
		result.Err = err
	}
	return result
}

func (g *Generator) write(a artifact) error {
	if a.render == nil {
		return platform.Touch(a.path)
	}
	content, err := a.render()
	if err != nil {
		return err
	}
	return platform.WriteFile(a.path, content)
}
