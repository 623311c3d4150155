package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete wizard configuration for YAML serialization.
type Config struct {
	Scenario    string `yaml:"scenario"`
	NumCommands int    `yaml:"num_commands,omitempty"`
	OutputDir   string `yaml:"output_dir,omitempty"`
	OutputPath  string `yaml:"output_path,omitempty"`
	Seed        int64  `yaml:"seed,omitempty"`

	Mode             string  `yaml:"mode"`
	ListInvalidRate  float64 `yaml:"list_invalid_rate,omitempty"`
	FieldInvalidRate float64 `yaml:"field_invalid_rate,omitempty"`

	Chaos          float64 `yaml:"chaos,omitempty"`
	OverlapRatio   float64 `yaml:"overlap_ratio,omitempty"`
	EmergencyRatio float64 `yaml:"emergency_ratio,omitempty"`
}

// LoadFromYAML reads a wizard state from a YAML config file.
func LoadFromYAML(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &State{
		Scenario:         cfg.Scenario,
		NumCommands:      cfg.NumCommands,
		OutputDir:        cfg.OutputDir,
		OutputPath:       cfg.OutputPath,
		Seed:             cfg.Seed,
		Mode:             cfg.Mode,
		ListInvalidRate:  cfg.ListInvalidRate,
		FieldInvalidRate: cfg.FieldInvalidRate,
		Chaos:            cfg.Chaos,
		OverlapRatio:     cfg.OverlapRatio,
		EmergencyRatio:   cfg.EmergencyRatio,
	}, nil
}

// SaveToYAML writes a wizard state to a YAML config file.
func SaveToYAML(s *State, path string) error {
	cfg := Config{
		Scenario:         s.Scenario,
		NumCommands:      s.NumCommands,
		OutputDir:        s.OutputDir,
		OutputPath:       s.OutputPath,
		Seed:             s.Seed,
		Mode:             s.Mode,
		ListInvalidRate:  s.ListInvalidRate,
		FieldInvalidRate: s.FieldInvalidRate,
		Chaos:            s.Chaos,
		OverlapRatio:     s.OverlapRatio,
		EmergencyRatio:   s.EmergencyRatio,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
