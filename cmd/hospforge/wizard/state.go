// Package wizard provides an interactive TUI for configuring command
// stream generation.
package wizard

// State holds the complete state for the wizard interface.
type State struct {
	Scenario    string
	NumCommands int
	OutputDir   string
	OutputPath  string
	Seed        int64

	Mode             string
	ListInvalidRate  float64
	FieldInvalidRate float64

	Chaos          float64
	OverlapRatio   float64
	EmergencyRatio float64
}
