package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aoc-tools/aocgen/internal/calendar"
	"github.com/aoc-tools/aocgen/internal/project"
	"github.com/aoc-tools/aocgen/internal/scaffold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func newProject(t *testing.T, lang string) (string, *project.Project) {
	t.Helper()
	root := t.TempDir()
	_, err := project.Init(root, "com.example", lang)
	require.NoError(t, err)
	p, err := project.Load(root)
	require.NoError(t, err)
	return root, p
}

func fixedClock(t *testing.T, instant time.Time) calendar.Provider {
	t.Helper()
	z, err := calendar.NewZoned(calendar.DefaultZone)
	require.NoError(t, err)
	z.Now = func() time.Time { return instant }
	return z
}

func TestRunGenerateWritesMavenLayout(t *testing.T) {
	root, p := newProject(t, "java")
	var out bytes.Buffer

	err := runGenerate(p, generateOptions{Root: root, Day: 5}, &out, quiet)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "src/main/java/com/example/day05/Day05.java"))
	assert.FileExists(t, filepath.Join(root, "src/test/java/com/example/day05/Day05Test.java"))
	assert.FileExists(t, filepath.Join(root, "src/main/resources/com/example/day05/input.txt"))
	assert.FileExists(t, filepath.Join(root, "src/test/resources/com/example/day05/example.txt"))

	assert.Contains(t, out.String(), "Generated Day 05 in com.example.day05")
	assert.Contains(t, out.String(), "create     "+filepath.Join("src", "main", "java", "com", "example", "day05", "Day05.java"))
}

func TestRunGenerateUnsetDayUsesClock(t *testing.T) {
	root, p := newProject(t, "kotlin")
	clock := fixedClock(t, time.Date(2024, time.December, 1, 5, 0, 0, 0, time.UTC))

	err := runGenerate(p, generateOptions{Root: root, Day: calendar.Unset, Clock: clock}, io.Discard, quiet)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "src/main/kotlin/com/example/day01/Day01.kt"))
}

func TestRunGenerateFlagOverridesProjectDayPackage(t *testing.T) {
	root, p := newProject(t, "java")
	flat := false

	err := runGenerate(p, generateOptions{Root: root, Day: 3, UseDayPackage: &flat}, io.Discard, quiet)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "src/main/java/com/example/Day03.java"))
	assert.NoDirExists(t, filepath.Join(root, "src/main/java/com/example/day03"))
}

func TestRunGenerateSecondRunSkips(t *testing.T) {
	root, p := newProject(t, "java")
	require.NoError(t, runGenerate(p, generateOptions{Root: root, Day: 9}, io.Discard, quiet))

	src := filepath.Join(root, "src/main/java/com/example/day09/Day09.java")
	require.NoError(t, os.WriteFile(src, []byte("// my solution"), 0644))

	var out bytes.Buffer
	require.NoError(t, runGenerate(p, generateOptions{Root: root, Day: 9}, &out, quiet))

	data, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "// my solution", string(data))
	assert.Contains(t, out.String(), "skip")
}

func TestRunGenerateReportsFailuresWithoutError(t *testing.T) {
	root, p := newProject(t, "java")
	input := filepath.Join(root, "src/main/resources/com/example/day04/input.txt")
	require.NoError(t, os.MkdirAll(input, 0755))

	var out bytes.Buffer
	err := runGenerate(p, generateOptions{Root: root, Day: 4, Force: true}, &out, quiet)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "failed")
	assert.Contains(t, out.String(), "Failures:")
	assert.FileExists(t, filepath.Join(root, "src/test/resources/com/example/day04/example.txt"))
}

func TestRunGenerateConfigurationErrors(t *testing.T) {
	t.Run("requires constraint", func(t *testing.T) {
		root, p := newProject(t, "java")
		p.Requires = ">=2.0.0"
		err := runGenerate(p, generateOptions{Root: root, Day: 1, Version: "1.0.0"}, io.Discard, quiet)
		assert.ErrorIs(t, err, project.ErrVersionMismatch)
	})

	t.Run("missing resources", func(t *testing.T) {
		root, p := newProject(t, "java")
		p.Resources = []string{}
		err := runGenerate(p, generateOptions{Root: root, Day: 1}, io.Discard, quiet)
		assert.ErrorIs(t, err, scaffold.ErrMissingConfig)
	})

	t.Run("day out of range", func(t *testing.T) {
		root, p := newProject(t, "java")
		err := runGenerate(p, generateOptions{Root: root, Day: 40}, io.Discard, quiet)
		assert.ErrorIs(t, err, scaffold.ErrInvalidDay)
	})

	t.Run("bad timezone", func(t *testing.T) {
		root, p := newProject(t, "java")
		p.Timezone = "Nowhere/Special"
		t.Setenv("AOCGEN_TIMEZONE", "")
		err := runGenerate(p, generateOptions{Root: root, Day: calendar.Unset}, io.Discard, quiet)
		assert.Error(t, err)
	})
}

func TestResolveTimezone(t *testing.T) {
	p := &project.Project{Timezone: "Europe/Paris"}

	t.Setenv("AOCGEN_TIMEZONE", "")
	assert.Equal(t, "Europe/Paris", resolveTimezone(p))

	t.Setenv("AOCGEN_TIMEZONE", "Asia/Tokyo")
	assert.Equal(t, "Asia/Tokyo", resolveTimezone(p))
}

func TestDisplayPath(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "work", "aoc")
	inside := filepath.Join(root, "src", "Day01.java")
	outside := filepath.Join(string(filepath.Separator), "elsewhere", "input.txt")

	assert.Equal(t, filepath.Join("src", "Day01.java"), displayPath(root, inside))
	assert.Equal(t, outside, displayPath(root, outside))
}

func TestResolveProjectRootExplicit(t *testing.T) {
	dir := t.TempDir()
	got, err := resolveProjectRoot(dir)
	require.NoError(t, err)

	want, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "", want: calendar.Unset},
		{raw: "7", want: 7},
		{raw: "08", want: 8},
		{raw: " 09 ", want: 9},
		{raw: "-1", want: calendar.Unset},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "0x1f", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseDay(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, scaffold.ErrInvalidDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateCommandDayFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		want    string
		wantErr bool
	}{
		{name: "plain", env: "7", want: "day07/Day07.java"},
		{name: "leading zero is decimal", env: "08", want: "day08/Day08.java"},
		{name: "not a number", env: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, _ := newProject(t, "java")
			t.Setenv("AOCGEN_DAY", tt.env)

			_, _, err := execute(t, "generate-day", "--project", root)
			if tt.wantErr {
				assert.ErrorIs(t, err, scaffold.ErrInvalidDay)
				assert.NoDirExists(t, filepath.Join(root, "src"))
				return
			}
			require.NoError(t, err)
			assert.FileExists(t, filepath.Join(root, "src/main/java/com/example", tt.want))
		})
	}
}

func TestGenerateCommandDayFlagIsDecimal(t *testing.T) {
	root, _ := newProject(t, "java")

	out, _, err := execute(t, "generate-day", "--project", root, "--day", "09")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated Day 09 in com.example.day09")
}

func TestGenerateCommandRejectsBadBoolean(t *testing.T) {
	root, _ := newProject(t, "java")
	t.Setenv("AOCGEN_FORCE", "yes please")

	_, _, err := execute(t, "generate-day", "--project", root, "--day", "1")
	assert.ErrorIs(t, err, errInvalidSetting)
	assert.NoDirExists(t, filepath.Join(root, "src"))
}

func TestGenerateCommandAppliesDotEnvLogSettings(t *testing.T) {
	root, _ := newProject(t, "java")
	env := "AOCGEN_LOG_LEVEL=error\nAOCGEN_LOG_FORMAT=json\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte(env), 0644))
	for _, key := range []string{"AOCGEN_LOG_LEVEL", "AOCGEN_LOG_FORMAT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	// A directory where the source file belongs makes the forced write fail.
	src := filepath.Join(root, "src/main/java/com/example/day03/Day03.java")
	require.NoError(t, os.MkdirAll(src, 0755))

	_, stderr, err := execute(t, "generate-day", "--project", root, "--day", "3", "--force")
	require.NoError(t, err)

	assert.NotContains(t, stderr, "Generating Advent of Code files")
	assert.NotContains(t, stderr, "level=")
	assert.Contains(t, stderr, `"level":"ERROR"`)
	assert.Contains(t, stderr, `"msg":"Unable to create new java file: Day03.java"`)
	assert.FileExists(t, filepath.Join(root, "src/test/java/com/example/day03/Day03Test.java"))
}
