package synth

import (
	"fmt"
	"math/rand/v2"
)

// Synthesizer draws field values from pools under the configured validity
// mode. It is scenario-scoped: one instance per generation run, never
// shared across runs.
type Synthesizer struct {
	cfg Config
	rng *rand.Rand
}

// New creates a Synthesizer from a config and an explicit random source.
func New(cfg Config, rng *rand.Rand) *Synthesizer {
	return &Synthesizer{cfg: cfg, rng: rng}
}

// Mode returns the active validity mode.
func (s *Synthesizer) Mode() Mode {
	return s.cfg.Mode
}

// Rand exposes the underlying random source for composers that shuffle.
func (s *Synthesizer) Rand() *rand.Rand {
	return s.rng
}

// Bool returns true with the given probability.
func (s *Synthesizer) Bool(probability float64) bool {
	return s.rng.Float64() < probability
}

// IntBetween returns a uniform integer in [lo, hi]. Degenerate ranges
// collapse to lo.
func (s *Synthesizer) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

// Pick returns a uniformly chosen element of the pool.
func (s *Synthesizer) Pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[s.rng.IntN(len(pool))]
}

// CorruptField reports whether one scalar required field should receive
// an invalid value. Independent roll per field.
func (s *Synthesizer) CorruptField() bool {
	return s.cfg.Mode == Mixed && s.Bool(s.cfg.FieldInvalidRate)
}

// CorruptList reports whether one list-valued field should blend its
// pool with known-invalid values.
func (s *Synthesizer) CorruptList() bool {
	return s.cfg.Mode == Mixed && s.Bool(s.cfg.ListInvalidRate)
}

// SampleSubset draws a random-size subset of pool without replacement.
// The size is uniform in [min, max], both clamped to the pool size;
// min 0 may yield the empty subset.
func (s *Synthesizer) SampleSubset(pool []string, min, max int) []string {
	if min < 0 {
		min = 0
	}
	if min > len(pool) {
		min = len(pool)
	}
	if max > len(pool) {
		max = len(pool)
	}
	if max < min {
		max = min
	}

	k := s.IntBetween(min, max)
	if k == 0 {
		return []string{}
	}

	idx := s.rng.Perm(len(pool))[:k]
	out := make([]string, 0, k)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}

// TaggedItem pairs a pool element with a quantity.
type TaggedItem struct {
	Name string
	Qty  int
}

// Quantities drawn when the quantity axis corrupts: non-positive or
// absurdly large.
var invalidQuantities = []int{0, -1, -5, 9999}

// SampleTaggedList draws a subset as SampleSubset does and tags each
// element with an independently drawn quantity in [minQty, maxQty].
// Under mixed mode the quantity axis corrupts per item, independent of
// whether the name pool itself was corrupted.
func (s *Synthesizer) SampleTaggedList(pool []string, minQty, maxQty, min, max int) []TaggedItem {
	names := s.SampleSubset(pool, min, max)
	items := make([]TaggedItem, 0, len(names))
	for _, name := range names {
		qty := s.IntBetween(minQty, maxQty)
		if s.cfg.Mode == Mixed && s.Bool(s.cfg.ListInvalidRate) {
			qty = invalidQuantities[s.rng.IntN(len(invalidQuantities))]
		}
		items = append(items, TaggedItem{Name: name, Qty: qty})
	}
	return items
}

// Identifier returns prefix plus a 3-digit zero-padded index. Under
// mixed mode a per-field roll may substitute a member of the malformed
// pool instead (wrong prefix, wrong padding, empty).
func (s *Synthesizer) Identifier(prefix string, index int, malformed []string) string {
	if s.CorruptField() && len(malformed) > 0 {
		return malformed[s.rng.IntN(len(malformed))]
	}
	return fmt.Sprintf("%s%03d", prefix, index)
}
