// Package scenario composes command builders across phases into complete
// stress scenarios for the hospital command processor.
package scenario

import (
	"math/rand/v2"

	"github.com/mrsinham/hospforge/internal/hospital/command"
)

// Scenario identifies a named stress pattern.
type Scenario string

const (
	Triage       Scenario = "triage"
	Appointments Scenario = "appointments"
	Surgery      Scenario = "surgery"
	LabPharm     Scenario = "labpharm"
	Depletion    Scenario = "depletion"
	Chaos        Scenario = "chaos"
)

// AllScenarios returns all supported scenarios.
func AllScenarios() []Scenario {
	return []Scenario{Triage, Appointments, Surgery, LabPharm, Depletion, Chaos}
}

// IsValid checks if a scenario string is valid.
func IsValid(s string) bool {
	for _, valid := range AllScenarios() {
		if string(valid) == s {
			return true
		}
	}
	return false
}

// Params carries the knobs shared by every composer. Zero values fall
// back to per-scenario defaults.
type Params struct {
	// NumCommands is the total command count (0 = scenario default).
	NumCommands int

	// Chaos in [0,1] monotonically biases sampling toward higher
	// pressure: tighter inter-arrival gaps, more urgent priorities,
	// shorter scheduling offsets.
	Chaos float64

	// OverlapRatio is the chance a scheduling-sensitive command reuses a
	// previously assigned slot (0 = scenario default).
	OverlapRatio float64

	// EmergencyRatio is the emergency/appointment mix for the triage
	// scenario (0 = default 0.65).
	EmergencyRatio float64
}

// Composer drives builders across one or more phases and returns the
// ordered command list for one artifact.
type Composer interface {
	// Scenario returns the pattern this composer produces.
	Scenario() Scenario

	// DefaultNumCommands returns the command count used when the caller
	// does not override it.
	DefaultNumCommands() int

	// Compose assembles the full ordered command sequence.
	Compose(b *command.Builder, p Params) []command.Command
}

// GetComposer returns the composer for the specified scenario.
func GetComposer(s Scenario) Composer {
	switch s {
	case Triage:
		return &triageComposer{}
	case Appointments:
		return &appointmentsComposer{}
	case Surgery:
		return &surgeryComposer{}
	case LabPharm:
		return &labPharmComposer{}
	case Depletion:
		return &depletionComposer{}
	case Chaos:
		fallthrough
	default:
		return &chaosComposer{}
	}
}

// tightGap selects an inter-arrival gap bound from the chaos parameter:
// chaos at or above 0.5 squeezes arrivals to the tight bound.
func tightGap(chaos float64, tight, loose int) int {
	if chaos >= 0.5 {
		return tight
	}
	return loose
}

// boundedShuffle permutes cmds within consecutive windows of chunk
// elements. Each command stays within chunk-1 positions of where its
// initiation time placed it.
func boundedShuffle(rng *rand.Rand, cmds []command.Command, chunk int) {
	if chunk <= 1 {
		return
	}
	for start := 0; start < len(cmds); start += chunk {
		end := start + chunk
		if end > len(cmds) {
			end = len(cmds)
		}
		window := cmds[start:end]
		rng.Shuffle(len(window), func(i, j int) {
			window[i], window[j] = window[j], window[i]
		})
	}
}
