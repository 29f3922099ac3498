package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aoc-tools/aocgen/internal/branding"
	"github.com/aoc-tools/aocgen/internal/scaffold"
	"go.yaml.in/yaml/v3"
)

// ErrNotFound is returned when no project file exists at or above a directory.
var ErrNotFound = errors.New("project file not found")

// Project represents the aocgen.yaml structure.
type Project struct {
	Namespace     string   `yaml:"namespace"`
	Language      string   `yaml:"language,omitempty"`
	SourceDir     string   `yaml:"source_dir,omitempty"`
	TestSourceDir string   `yaml:"test_source_dir,omitempty"`
	Resources     []string `yaml:"resources,omitempty"`
	TestResources []string `yaml:"test_resources,omitempty"`
	UseDayPackage *bool    `yaml:"use_day_package,omitempty"`
	Timezone      string   `yaml:"timezone,omitempty"`
	Requires      string   `yaml:"requires,omitempty"`
}

// layout is the conventional directory set for one language.
type layout struct {
	source, testSource, resource, testResource string
}

var layouts = map[string]layout{
	"java":   {"src/main/java", "src/test/java", "src/main/resources", "src/test/resources"},
	"kotlin": {"src/main/kotlin", "src/test/kotlin", "src/main/resources", "src/test/resources"},
}

// Path returns the full path to the project file inside root.
func Path(root string) string {
	return filepath.Join(root, branding.ProjectFile())
}

// FindRoot walks up from start until it finds a directory containing the
// project file.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}
	for {
		if info, err := os.Stat(Path(dir)); err == nil && info.Mode().IsRegular() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in %s or any parent", ErrNotFound, branding.ProjectFile(), start)
		}
		dir = parent
	}
}

// Load reads, validates and parses the project file in root, then fills in
// defaults for anything left unset.
func Load(root string) (*Project, error) {
	path := Path(root)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading project config: %w", err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid %s: %s", path, result.Error())
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project config: %w", err)
	}
	p.ApplyDefaults()
	return &p, nil
}

// Save writes p to the project file in root.
func Save(root string, p *Project) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling project config: %w", err)
	}

	result, err := Validate(data)
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("invalid project config: %s", result.Error())
	}

	if err := os.WriteFile(Path(root), data, 0644); err != nil {
		return fmt.Errorf("writing project config: %w", err)
	}
	return nil
}

// Init creates a new project file in root with the conventional layout for
// lang. It refuses to replace an existing file.
func Init(root, namespace, lang string) (*Project, error) {
	if _, err := os.Stat(Path(root)); err == nil {
		return nil, fmt.Errorf("project already initialized: %s exists", Path(root))
	}
	if lang == "" {
		lang = scaffold.DefaultLanguage
	}
	if _, err := scaffold.LookupLanguage(lang); err != nil {
		return nil, err
	}

	l := layouts[lang]
	useDayPackage := true
	p := &Project{
		Namespace:     namespace,
		Language:      lang,
		SourceDir:     l.source,
		TestSourceDir: l.testSource,
		Resources:     []string{l.resource},
		TestResources: []string{l.testResource},
		UseDayPackage: &useDayPackage,
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}
	if err := Save(root, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ApplyDefaults fills unset fields from the language's conventional layout.
// Lists that were set explicitly, even to empty, are kept as they are.
func (p *Project) ApplyDefaults() {
	if p.Language == "" {
		p.Language = scaffold.DefaultLanguage
	}
	l, ok := layouts[p.Language]
	if !ok {
		l = layouts[scaffold.DefaultLanguage]
	}
	if p.SourceDir == "" {
		p.SourceDir = l.source
	}
	if p.TestSourceDir == "" {
		p.TestSourceDir = l.testSource
	}
	if p.Resources == nil {
		p.Resources = []string{l.resource}
	}
	if p.TestResources == nil {
		p.TestResources = []string{l.testResource}
	}
	if p.UseDayPackage == nil {
		useDayPackage := true
		p.UseDayPackage = &useDayPackage
	}
}

// DayPackage reports whether generated files go into a per-day package.
func (p *Project) DayPackage() bool {
	return p.UseDayPackage == nil || *p.UseDayPackage
}

// Dirs resolves the four generator base directories against root. The first
// entry of each resource list is used.
func (p *Project) Dirs(root string) (scaffold.Dirs, error) {
	if p.Namespace == "" {
		return scaffold.Dirs{}, fmt.Errorf("%w: namespace", scaffold.ErrMissingConfig)
	}
	if len(p.Resources) == 0 {
		return scaffold.Dirs{}, fmt.Errorf("%w: resources", scaffold.ErrMissingConfig)
	}
	if len(p.TestResources) == 0 {
		return scaffold.Dirs{}, fmt.Errorf("%w: test_resources", scaffold.ErrMissingConfig)
	}
	return scaffold.Dirs{
		Source:       resolve(root, p.SourceDir),
		TestSource:   resolve(root, p.TestSourceDir),
		Resource:     resolve(root, p.Resources[0]),
		TestResource: resolve(root, p.TestResources[0]),
	}, nil
}

func resolve(root, dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}
