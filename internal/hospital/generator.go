// Package hospital generates command-stream artifacts for stress-testing
// a hospital operations processor.
package hospital

import (
	"fmt"
	"hash/fnv"
	randv2 "math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrsinham/hospforge/internal/hospital/command"
	"github.com/mrsinham/hospforge/internal/hospital/scenario"
	"github.com/mrsinham/hospforge/internal/hospital/synth"
)

// Options contains all parameters needed to generate one artifact.
type Options struct {
	Scenario    scenario.Scenario
	NumCommands int    // 0 = scenario default
	OutputDir   string // directory for the artifact (default ".")
	OutputPath  string // explicit file path; overrides OutputDir + auto name
	Seed        int64  // 0 = derive deterministically from the output path

	// Validity controls
	Mode             synth.Mode
	ListInvalidRate  float64 // 0 = default 0.15
	FieldInvalidRate float64 // 0 = default 0.10

	// Scenario shape controls
	Chaos          float64
	OverlapRatio   float64
	EmergencyRatio float64

	// Output control
	Quiet            bool                     // Suppress progress output (for TUI integration)
	ProgressCallback func(current, total int) // Optional callback for progress updates
}

// Result describes the generated artifact.
type Result struct {
	Path        string
	NumCommands int
	Seed        int64
}

// Generate composes the selected scenario and writes it as one
// newline-terminated command per line. The same options with the same
// seed always produce byte-identical output.
func Generate(opts Options) (Result, error) {
	if !scenario.IsValid(string(opts.Scenario)) {
		return Result{}, fmt.Errorf("unknown scenario %q (valid: %v)", opts.Scenario, scenario.AllScenarios())
	}
	if opts.NumCommands < 0 {
		return Result{}, fmt.Errorf("number of commands must be >= 0, got %d", opts.NumCommands)
	}
	if opts.Chaos < 0 || opts.Chaos > 1 {
		return Result{}, fmt.Errorf("chaos must be in [0,1], got %g", opts.Chaos)
	}
	if opts.OverlapRatio < 0 || opts.OverlapRatio > 1 {
		return Result{}, fmt.Errorf("overlap ratio must be in [0,1], got %g", opts.OverlapRatio)
	}
	if opts.EmergencyRatio < 0 || opts.EmergencyRatio > 1 {
		return Result{}, fmt.Errorf("emergency ratio must be in [0,1], got %g", opts.EmergencyRatio)
	}

	mode := opts.Mode
	if mode == "" {
		mode = synth.Mixed
	}
	cfg := synth.DefaultConfig(mode)
	if opts.ListInvalidRate > 0 {
		cfg.ListInvalidRate = opts.ListInvalidRate
	}
	if opts.FieldInvalidRate > 0 {
		cfg.FieldInvalidRate = opts.FieldInvalidRate
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		dir := opts.OutputDir
		if dir == "" {
			dir = "."
		}
		outputPath = filepath.Join(dir, defaultFileName(opts.Scenario, opts.Seed))
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Result{}, fmt.Errorf("create output directory: %w", err)
		}
	}

	// Set seed for reproducibility
	var seed int64
	if opts.Seed != 0 {
		seed = opts.Seed
		if !opts.Quiet {
			fmt.Printf("Using seed: %d\n", seed)
		}
	} else {
		// Generate deterministic seed from output path name
		h := fnv.New64a()
		_, _ = h.Write([]byte(outputPath)) // hash.Write never returns an error
		seed = int64(h.Sum64())
		if !opts.Quiet {
			fmt.Printf("Auto-generated seed from '%s': %d\n", outputPath, seed)
			fmt.Println("  (same path = same command stream)")
		}
	}

	rng := randv2.New(randv2.NewPCG(uint64(seed), uint64(seed)))
	builder := command.NewBuilder(synth.New(cfg, rng))

	composer := scenario.GetComposer(opts.Scenario)
	cmds := composer.Compose(builder, scenario.Params{
		NumCommands:    opts.NumCommands,
		Chaos:          opts.Chaos,
		OverlapRatio:   opts.OverlapRatio,
		EmergencyRatio: opts.EmergencyRatio,
	})

	if opts.ProgressCallback != nil {
		opts.ProgressCallback(len(cmds), len(cmds))
	}

	var sb strings.Builder
	for _, cmd := range cmds {
		sb.WriteString(cmd.Line())
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return Result{}, fmt.Errorf("write artifact: %w", err)
	}

	if !opts.Quiet {
		fmt.Printf("Generated %d commands to %s\n", len(cmds), outputPath)
	}

	return Result{Path: outputPath, NumCommands: len(cmds), Seed: seed}, nil
}

// defaultFileName builds the auto-generated artifact name. When the seed
// is derived from the path the name cannot embed it, so it falls back to
// the scenario alone.
func defaultFileName(s scenario.Scenario, seed int64) string {
	if seed == 0 {
		return fmt.Sprintf("commands_%s.txt", s)
	}
	return fmt.Sprintf("commands_%s_%d.txt", s, seed)
}
