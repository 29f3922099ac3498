//go:build integration

package integration_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/aoc-tools/aocgen/internal/calendar"
	"github.com/aoc-tools/aocgen/internal/project"
	"github.com/aoc-tools/aocgen/internal/scaffold"
)

// TestFullFlowInitGenerateRegenerate tests the complete flow:
// init project -> generate today's day -> edit -> regenerate -> force.
func TestFullFlowInitGenerateRegenerate(t *testing.T) {
	env := setupTestEnv(t)

	// Step 1: Initialize the project.
	if _, err := project.Init(env.ProjectDir, "com.example", "java"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	p, err := project.Load(env.ProjectDir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	dirs, err := p.Dirs(env.ProjectDir)
	if err != nil {
		t.Fatalf("Dirs: %v", err)
	}

	// Step 2: Generate "today", pinned to Dec 6 in New York.
	clock, err := calendar.NewZoned(p.Timezone)
	if err != nil {
		t.Fatalf("NewZoned: %v", err)
	}
	clock.Now = func() time.Time { return time.Date(2023, time.December, 7, 4, 59, 0, 0, time.UTC) }

	gen := scaffold.New(quietLogger(), clock)
	req := scaffold.Request{Day: calendar.Unset, Namespace: p.Namespace, Language: p.Language, UseDayPackage: p.DayPackage()}

	report, err := gen.Generate(req, dirs)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if report.Day != 6 {
		t.Fatalf("resolved day = %d, want 6", report.Day)
	}

	src := filepath.Join(env.ProjectDir, "src/main/java/com/example/day06/Day06.java")
	test := filepath.Join(env.ProjectDir, "src/test/java/com/example/day06/Day06Test.java")
	input := filepath.Join(env.ProjectDir, "src/main/resources/com/example/day06/input.txt")
	example := filepath.Join(env.ProjectDir, "src/test/resources/com/example/day06/example.txt")
	for _, path := range []string{src, test, input, example} {
		assertFileExists(t, path)
	}
	assertContains(t, readFile(t, test), `Day06.part1("example.txt")`)

	// Step 3: Fill in the solution and the puzzle input, then regenerate.
	writeFile(t, src, "// solved")
	writeFile(t, input, "Time: 7 15 30\n")

	req.Day = 6
	report, err = gen.Generate(req, dirs)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if n := report.Count(scaffold.ActionSkip); n != 4 {
		t.Errorf("skipped = %d, want 4", n)
	}
	if got := readFile(t, src); got != "// solved" {
		t.Errorf("solution was modified: %q", got)
	}

	// Step 4: Force regenerates templates but keeps the input.
	req.Force = true
	if _, err := gen.Generate(req, dirs); err != nil {
		t.Fatalf("forced Generate: %v", err)
	}
	assertContains(t, readFile(t, src), "public class Day06 {")
	if got := readFile(t, input); got != "Time: 7 15 30\n" {
		t.Errorf("input was modified: %q", got)
	}
}

// TestFlatPackageKotlinProject covers a project that opts out of per-day packages.
func TestFlatPackageKotlinProject(t *testing.T) {
	env := setupTestEnv(t)

	writeFile(t, project.Path(env.ProjectDir), `namespace: org.elves
language: kotlin
use_day_package: false
resources: [inputs]
test_resources: [examples]
`)

	p, err := project.Load(env.ProjectDir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	dirs, err := p.Dirs(env.ProjectDir)
	if err != nil {
		t.Fatalf("Dirs: %v", err)
	}

	_, err = scaffold.New(quietLogger(), nil).Generate(scaffold.Request{
		Day:           25,
		Namespace:     p.Namespace,
		Language:      p.Language,
		UseDayPackage: p.DayPackage(),
	}, dirs)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	assertFileExists(t, filepath.Join(env.ProjectDir, "src/main/kotlin/org/elves/Day25.kt"))
	assertFileExists(t, filepath.Join(env.ProjectDir, "src/test/kotlin/org/elves/Day25Test.kt"))
	assertFileExists(t, filepath.Join(env.ProjectDir, "inputs/org/elves/input.txt"))
	assertFileExists(t, filepath.Join(env.ProjectDir, "examples/org/elves/example.txt"))
}
