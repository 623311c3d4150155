package wizard

import (
	"fmt"

	"github.com/mrsinham/hospforge/internal/hospital"
	"github.com/mrsinham/hospforge/internal/hospital/scenario"
	"github.com/mrsinham/hospforge/internal/hospital/synth"
)

// ToOptions converts a wizard State to generator Options.
func ToOptions(s *State) (hospital.Options, error) {
	if s.Scenario == "" {
		return hospital.Options{}, fmt.Errorf("scenario is required")
	}
	if !scenario.IsValid(s.Scenario) {
		return hospital.Options{}, fmt.Errorf("invalid scenario %q, valid options: %v", s.Scenario, scenario.AllScenarios())
	}

	mode := synth.Mixed
	if s.Mode != "" {
		parsed, err := synth.ParseMode(s.Mode)
		if err != nil {
			return hospital.Options{}, err
		}
		mode = parsed
	}

	return hospital.Options{
		Scenario:         scenario.Scenario(s.Scenario),
		NumCommands:      s.NumCommands,
		OutputDir:        s.OutputDir,
		OutputPath:       s.OutputPath,
		Seed:             s.Seed,
		Mode:             mode,
		ListInvalidRate:  s.ListInvalidRate,
		FieldInvalidRate: s.FieldInvalidRate,
		Chaos:            s.Chaos,
		OverlapRatio:     s.OverlapRatio,
		EmergencyRatio:   s.EmergencyRatio,
		Quiet:            true, // the TUI owns the terminal
	}, nil
}

// FromOptions creates a wizard State from generator Options.
// Used for --save-config to export CLI options as YAML.
func FromOptions(opts hospital.Options) *State {
	return &State{
		Scenario:         string(opts.Scenario),
		NumCommands:      opts.NumCommands,
		OutputDir:        opts.OutputDir,
		OutputPath:       opts.OutputPath,
		Seed:             opts.Seed,
		Mode:             string(opts.Mode),
		ListInvalidRate:  opts.ListInvalidRate,
		FieldInvalidRate: opts.FieldInvalidRate,
		Chaos:            opts.Chaos,
		OverlapRatio:     opts.OverlapRatio,
		EmergencyRatio:   opts.EmergencyRatio,
	}
}
