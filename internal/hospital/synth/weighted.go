package synth

import "math/rand/v2"

// Choice pairs a variant with its selection weight.
type Choice[T any] struct {
	Value  T
	Weight float64
}

// Weighted picks among variants proportionally to their declared
// weights. Choices are kept in declaration order so the same seed always
// selects the same sequence.
type Weighted[T any] struct {
	choices []Choice[T]
	total   float64
}

// NewWeighted builds a picker from a declarative weight table.
// Non-positive weights are dropped.
func NewWeighted[T any](choices ...Choice[T]) *Weighted[T] {
	w := &Weighted[T]{}
	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		w.choices = append(w.choices, c)
		w.total += c.Weight
	}
	return w
}

// Pick returns one variant. An empty table returns the zero value.
func (w *Weighted[T]) Pick(rng *rand.Rand) T {
	var zero T
	if len(w.choices) == 0 {
		return zero
	}
	r := rng.Float64() * w.total
	for _, c := range w.choices {
		r -= c.Weight
		if r < 0 {
			return c.Value
		}
	}
	return w.choices[len(w.choices)-1].Value
}
