package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"text/template"
)

//go:embed scaffolds
var scaffoldFS embed.FS

// Language describes one embedded template set.
type Language struct {
	Name  string // template set directory under scaffolds/
	Ext   string // source file extension, including the dot
	Label string // used in "Unable to create new <label> file" messages
}

var languages = map[string]Language{
	"java":   {Name: "java", Ext: ".java", Label: "java"},
	"kotlin": {Name: "kotlin", Ext: ".kt", Label: "kotlin"},
}

// DefaultLanguage is used when a project does not name one.
const DefaultLanguage = "java"

// LookupLanguage returns the template set for name. An empty name selects
// DefaultLanguage.
func LookupLanguage(name string) (Language, error) {
	if name == "" {
		name = DefaultLanguage
	}
	lang, ok := languages[name]
	if !ok {
		return Language{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownLanguage, name, Languages())
	}
	return lang, nil
}

// Languages lists the names of all embedded template sets.
func Languages() []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// templateData holds all variables available to the templates.
type templateData struct {
	Package       string // e.g., "com.example.day05"
	UtilsPackage  string // e.g., "com.example.utils"
	ClassName     string // e.g., "Day05"
	TestClassName string // e.g., "Day05Test"
	DayPadded     string // e.g., "05"
	InputFile     string
	ExampleFile   string
}

func newTemplateData(n Names) templateData {
	return templateData{
		Package:       n.Package,
		UtilsPackage:  n.Namespace + ".utils",
		ClassName:     n.ClassName,
		TestClassName: n.TestClassName,
		DayPadded:     fmt.Sprintf("%02d", n.Day),
		InputFile:     InputFile,
		ExampleFile:   ExampleFile,
	}
}

// render executes scaffolds/<lang>/<name>.tmpl against n.
func render(lang Language, name string, n Names) ([]byte, error) {
	tmplPath := path.Join("scaffolds", lang.Name, name+".tmpl")
	tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newTemplateData(n)); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", tmplPath, err)
	}
	return buf.Bytes(), nil
}

// RenderSource returns the solution stub for n.
func RenderSource(lang Language, n Names) ([]byte, error) {
	return render(lang, "source", n)
}

// RenderTest returns the test stub for n.
func RenderTest(lang Language, n Names) ([]byte, error) {
	return render(lang, "test", n)
}
