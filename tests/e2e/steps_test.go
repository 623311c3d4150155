package e2e

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// binaryPath holds the path to the compiled binary (set once in TestMain)
var binaryPath string

// testContext holds state for a single scenario
type testContext struct {
	tmpDir   string
	exitCode int
	output   string
}

// buildBinary compiles the hospforge binary once
func buildBinary() (string, error) {
	tmpFile, err := os.CreateTemp("", "hospforge-test-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpFile.Close()

	// Get the directory of this test file to find the project root
	_, thisFile, _, _ := runtime.Caller(0)
	projectRoot := filepath.Join(filepath.Dir(thisFile), "..", "..")

	cmd := exec.Command("go", "build", "-o", tmpFile.Name(), "./cmd/hospforge")
	cmd.Dir = projectRoot
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("build failed: %w\n%s", err, stderr.String())
	}

	return tmpFile.Name(), nil
}

// TestMain compiles the binary once before running all tests
func TestMain(m *testing.M) {
	var err error
	binaryPath, err = buildBinary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build binary: %v\n", err)
		os.Exit(1)
	}
	defer os.Remove(binaryPath)

	code := m.Run()
	os.Exit(code)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	tc := &testContext{}

	// Setup: create temp directory before each scenario
	sc.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tmpDir, err := os.MkdirTemp("", "hospforge-e2e-*")
		if err != nil {
			return ctx, err
		}
		tc.tmpDir = tmpDir
		return ctx, nil
	})

	// Teardown: cleanup temp directory after each scenario
	sc.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc.tmpDir != "" {
			os.RemoveAll(tc.tmpDir)
		}
		return ctx, nil
	})

	// Step definitions
	sc.Step(`^hospforge is built$`, tc.hospforgeIsBuilt)
	sc.Step(`^I run hospforge with "([^"]*)"$`, tc.iRunHospforgeWith)
	sc.Step(`^the exit code should be (\d+)$`, tc.theExitCodeShouldBe)
	sc.Step(`^the output should contain "([^"]*)"$`, tc.theOutputShouldContain)
	sc.Step(`^"([^"]*)" should exist$`, tc.shouldExist)
	sc.Step(`^"([^"]*)" should contain (\d+) lines$`, tc.shouldContainLines)
	sc.Step(`^every line in "([^"]*)" should match the command grammar$`, tc.everyLineShouldMatchGrammar)
	sc.Step(`^"([^"]*)" and "([^"]*)" should be identical$`, tc.shouldBeIdentical)
}

func (tc *testContext) hospforgeIsBuilt() error {
	if binaryPath == "" {
		return fmt.Errorf("binary not built")
	}
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		return fmt.Errorf("binary does not exist at %s", binaryPath)
	}
	return nil
}

func (tc *testContext) iRunHospforgeWith(args string) error {
	// Replace {tmpdir} placeholder with actual temp directory
	args = strings.ReplaceAll(args, "{tmpdir}", tc.tmpDir)

	cmd := exec.Command(binaryPath, strings.Fields(args)...)
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	tc.output = output.String()

	if exitErr, ok := err.(*exec.ExitError); ok {
		tc.exitCode = exitErr.ExitCode()
	} else if err != nil {
		return fmt.Errorf("failed to run command: %w", err)
	} else {
		tc.exitCode = 0
	}

	return nil
}

func (tc *testContext) theExitCodeShouldBe(expected int) error {
	if tc.exitCode != expected {
		return fmt.Errorf("expected exit code %d, got %d\nOutput:\n%s", expected, tc.exitCode, tc.output)
	}
	return nil
}

func (tc *testContext) theOutputShouldContain(expected string) error {
	if !strings.Contains(tc.output, expected) {
		return fmt.Errorf("output does not contain %q\nOutput:\n%s", expected, tc.output)
	}
	return nil
}

func (tc *testContext) shouldExist(path string) error {
	path = strings.ReplaceAll(path, "{tmpdir}", tc.tmpDir)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%s does not exist: %w", path, err)
	}
	return nil
}

func (tc *testContext) shouldContainLines(path string, count int) error {
	path = strings.ReplaceAll(path, "{tmpdir}", tc.tmpDir)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	lines := strings.Count(string(data), "\n")
	if lines != count {
		return fmt.Errorf("expected %d lines in %s, found %d", count, path, lines)
	}
	return nil
}

// Grammar patterns for strictly valid command lines, one per command word.
var grammarPatterns = map[string]*regexp.Regexp{
	"EMERGENCY":        regexp.MustCompile(`^EMERGENCY PAC\d{3,} init: \d+ triage: [1-5] stability: \d+ tests: \[[A-Z,]*\] meds: \[[A-Z_,]*\]$`),
	"APPOINTMENT":      regexp.MustCompile(`^APPOINTMENT PAC\d{3,} init: \d+ scheduled: \d+ doctor: [A-Z]+ tests: \[[A-Z,]*\]$`),
	"SURGERY":          regexp.MustCompile(`^SURGERY PAC\d{3,} init: \d+ type: [A-Z]+ scheduled: \d+ urgency: (LOW|MEDIUM|HIGH) tests: \[[A-Z,]*\] meds: \[[A-Z_,]*\]$`),
	"LAB_REQUEST":      regexp.MustCompile(`^LAB_REQUEST LAB\d{3,} init: \d+ priority: (URGENT|NORMAL) lab: (LAB1|LAB2|BOTH) tests: \[[A-Z,]+\]$`),
	"PHARMACY_REQUEST": regexp.MustCompile(`^PHARMACY_REQUEST REQ\d{3,} init: \d+ priority: (URGENT|HIGH|NORMAL) items: \[[A-Z_,:0-9]+\]$`),
	"RESTOCK":          regexp.MustCompile(`^RESTOCK [A-Z_]+ quantity: [1-9]\d*$`),
	"STATUS":           regexp.MustCompile(`^STATUS (ALL|TRIAGE|SURGERY|PHARMACY|LAB)$`),
}

func (tc *testContext) everyLineShouldMatchGrammar(path string) error {
	path = strings.ReplaceAll(path, "{tmpdir}", tc.tmpDir)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	for i, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		word, _, _ := strings.Cut(line, " ")
		pattern, ok := grammarPatterns[word]
		if !ok {
			return fmt.Errorf("line %d: unknown command word %q in %q", i+1, word, line)
		}
		if !pattern.MatchString(line) {
			return fmt.Errorf("line %d does not match the %s grammar: %q", i+1, word, line)
		}
	}
	return nil
}

func (tc *testContext) shouldBeIdentical(pathA, pathB string) error {
	pathA = strings.ReplaceAll(pathA, "{tmpdir}", tc.tmpDir)
	pathB = strings.ReplaceAll(pathB, "{tmpdir}", tc.tmpDir)

	a, err := os.ReadFile(pathA)
	if err != nil {
		return fmt.Errorf("read %s: %w", pathA, err)
	}
	b, err := os.ReadFile(pathB)
	if err != nil {
		return fmt.Errorf("read %s: %w", pathB, err)
	}

	if !bytes.Equal(a, b) {
		return fmt.Errorf("%s and %s differ", pathA, pathB)
	}
	return nil
}
