// Package synth generates atomic and compound field values under a
// validity mode switch. All randomness flows through an explicit
// *rand.Rand so a seed fully determines the generated stream.
package synth

import (
	"fmt"
	"strings"
)

// Mode selects between always-valid output and probabilistic corruption.
type Mode string

const (
	// Strict produces only domain-legal values.
	Strict Mode = "strict"
	// Mixed draws invalid values with the configured probabilities.
	Mixed Mode = "mixed"
)

// AllModes returns all valid validity modes.
func AllModes() []Mode {
	return []Mode{Strict, Mixed}
}

// ParseMode parses a string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "strict":
		return Strict, nil
	case "mixed":
		return Mixed, nil
	default:
		return Strict, fmt.Errorf("invalid mode: %s (valid: strict, mixed)", s)
	}
}

// Default corruption rates. Scalar required fields corrupt at a lower
// rate than list-valued fields so that most mixed-mode commands are
// almost valid: one bad field among several good ones.
const (
	DefaultListInvalidRate  = 0.15
	DefaultFieldInvalidRate = 0.10
)

// Config holds validity-mode settings shared by all synthesizers and
// builders of one generation run.
type Config struct {
	Mode Mode

	// ListInvalidRate is the chance that a list-valued field blends its
	// pool with known-invalid values. Applies per list.
	ListInvalidRate float64

	// FieldInvalidRate is the chance that a scalar required field is
	// replaced by an invalid value. Applies independently per field.
	FieldInvalidRate float64
}

// DefaultConfig returns a Config for the given mode with default rates.
func DefaultConfig(mode Mode) Config {
	return Config{
		Mode:             mode,
		ListInvalidRate:  DefaultListInvalidRate,
		FieldInvalidRate: DefaultFieldInvalidRate,
	}
}

// Validate checks if config is valid.
func (c *Config) Validate() error {
	if c.Mode != Strict && c.Mode != Mixed {
		return fmt.Errorf("unknown mode %q, valid modes: %v", c.Mode, AllModes())
	}
	if c.ListInvalidRate < 0 || c.ListInvalidRate > 1 {
		return fmt.Errorf("list invalid rate must be in [0,1], got %g", c.ListInvalidRate)
	}
	if c.FieldInvalidRate < 0 || c.FieldInvalidRate > 1 {
		return fmt.Errorf("field invalid rate must be in [0,1], got %g", c.FieldInvalidRate)
	}
	return nil
}
