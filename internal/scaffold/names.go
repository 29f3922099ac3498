package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Fixed placeholder file names.
const (
	InputFile   = "input.txt"
	ExampleFile = "example.txt"
)

// Names holds the identifiers derived from a day number and namespace.
type Names struct {
	Day           int
	Namespace     string // prefix as configured, e.g. "com.example"
	Package       string // Namespace plus the optional ".dayNN" segment
	ClassName     string // "DayNN"
	TestClassName string // "DayNNTest"
}

// NewNames derives the class and package names for day.
func NewNames(namespace string, day int, useDayPackage bool) Names {
	pkg := namespace
	if useDayPackage {
		pkg += fmt.Sprintf(".day%02d", day)
	}
	cls := ClassName(day)
	return Names{
		Day:           day,
		Namespace:     namespace,
		Package:       pkg,
		ClassName:     cls,
		TestClassName: cls + "Test",
	}
}

// ClassName returns "Day" followed by the zero-padded day.
func ClassName(day int) string {
	return fmt.Sprintf("Day%02d", day)
}

// RelPath converts the package into a relative directory path.
func (n Names) RelPath() string {
	return filepath.Join(strings.Split(n.Package, ".")...)
}

// Dirs are the four base directories supplied by the project.
type Dirs struct {
	Source       string
	TestSource   string
	Resource     string
	TestResource string
}

func (d Dirs) validate() error {
	var missing []string
	if d.Source == "" {
		missing = append(missing, "source directory")
	}
	if d.TestSource == "" {
		missing = append(missing, "test source directory")
	}
	if d.Resource == "" {
		missing = append(missing, "resource directory")
	}
	if d.TestResource == "" {
		missing = append(missing, "test resource directory")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}
	return nil
}

// TargetPaths are the four files the generator manages for one day.
type TargetPaths struct {
	Source  string
	Test    string
	Input   string
	Example string
}

// Targets joins the base directories with the package path and file names.
func (n Names) Targets(dirs Dirs, lang Language) TargetPaths {
	rel := n.RelPath()
	return TargetPaths{
		Source:  filepath.Join(dirs.Source, rel, n.ClassName+lang.Ext),
		Test:    filepath.Join(dirs.TestSource, rel, n.TestClassName+lang.Ext),
		Input:   filepath.Join(dirs.Resource, rel, InputFile),
		Example: filepath.Join(dirs.TestResource, rel, ExampleFile),
	}
}
