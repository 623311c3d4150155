package synth

import (
	"math/rand/v2"
	"testing"
)

func newStrict(seed uint64) *Synthesizer {
	return New(DefaultConfig(Strict), rand.New(rand.NewPCG(seed, seed)))
}

func newMixed(seed uint64) *Synthesizer {
	return New(DefaultConfig(Mixed), rand.New(rand.NewPCG(seed, seed)))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
		wantErr  bool
	}{
		{"strict", Strict, false},
		{"STRICT", Strict, false},
		{"mixed", Mixed, false},
		{"Mixed", Mixed, false},
		{"chaotic", Strict, true},
		{"", Strict, true},
	}

	for _, tc := range tests {
		got, err := ParseMode(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMode(%q) should return error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q) returned error: %v", tc.input, err)
		}
		if got != tc.expected {
			t.Errorf("ParseMode(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	good := DefaultConfig(Mixed)
	if err := good.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	bad := Config{Mode: Mixed, ListInvalidRate: 1.5, FieldInvalidRate: 0.1}
	if err := bad.Validate(); err == nil {
		t.Error("rate above 1 should fail validation")
	}

	unknown := Config{Mode: Mode("weird")}
	if err := unknown.Validate(); err == nil {
		t.Error("unknown mode should fail validation")
	}
}

func TestSampleSubset_Bounds(t *testing.T) {
	s := newStrict(42)
	pool := []string{"A", "B", "C", "D", "E"}

	for i := 0; i < 200; i++ {
		subset := s.SampleSubset(pool, 1, 3)
		if len(subset) < 1 || len(subset) > 3 {
			t.Fatalf("subset size %d outside [1,3]", len(subset))
		}
		seen := map[string]bool{}
		for _, v := range subset {
			if seen[v] {
				t.Fatalf("subset %v contains duplicate %q", subset, v)
			}
			seen[v] = true
		}
	}
}

func TestSampleSubset_ClampsToPoolSize(t *testing.T) {
	s := newStrict(42)
	pool := []string{"A", "B"}

	for i := 0; i < 50; i++ {
		subset := s.SampleSubset(pool, 0, 10)
		if len(subset) > len(pool) {
			t.Fatalf("subset size %d exceeds pool size %d", len(subset), len(pool))
		}
	}
}

func TestSampleSubset_MinZeroAllowsEmpty(t *testing.T) {
	s := newStrict(1)
	sawEmpty := false
	for i := 0; i < 100; i++ {
		if len(s.SampleSubset([]string{"A", "B", "C"}, 0, 3)) == 0 {
			sawEmpty = true
			break
		}
	}
	if !sawEmpty {
		t.Error("min 0 should occasionally produce the empty subset")
	}
}

func TestSampleTaggedList_StrictQuantities(t *testing.T) {
	s := newStrict(42)
	pool := []string{"A", "B", "C", "D", "E"}

	for i := 0; i < 200; i++ {
		items := s.SampleTaggedList(pool, 1, 10, 1, 5)
		for _, item := range items {
			if item.Qty < 1 || item.Qty > 10 {
				t.Fatalf("strict quantity %d outside [1,10]", item.Qty)
			}
		}
	}
}

func TestSampleTaggedList_MixedQuantityAxisIndependent(t *testing.T) {
	s := newMixed(42)
	pool := []string{"A", "B", "C", "D", "E"}

	sawInvalidQty := false
	for i := 0; i < 500; i++ {
		for _, item := range s.SampleTaggedList(pool, 1, 10, 1, 5) {
			if item.Qty <= 0 || item.Qty > 10 {
				sawInvalidQty = true
			}
		}
	}
	if !sawInvalidQty {
		t.Error("mixed mode should occasionally corrupt quantities")
	}
}

func TestIdentifier_Strict(t *testing.T) {
	s := newStrict(42)

	tests := []struct {
		prefix string
		index  int
		want   string
	}{
		{"PAC", 1, "PAC001"},
		{"REQ", 42, "REQ042"},
		{"LAB", 123, "LAB123"},
		{"PAC", 1000, "PAC1000"},
	}

	for _, tc := range tests {
		got := s.Identifier(tc.prefix, tc.index, []string{"BAD"})
		if got != tc.want {
			t.Errorf("Identifier(%q, %d) = %q, want %q", tc.prefix, tc.index, got, tc.want)
		}
	}
}

func TestCorruptField_Rate(t *testing.T) {
	// Over a large batch the empirical invalid fraction must sit within
	// a tight tolerance of the configured probability.
	cfg := Config{Mode: Mixed, ListInvalidRate: 0.15, FieldInvalidRate: 0.15}
	s := New(cfg, rand.New(rand.NewPCG(42, 42)))

	const draws = 10000
	invalid := 0
	for i := 0; i < draws; i++ {
		if s.CorruptField() {
			invalid++
		}
	}

	fraction := float64(invalid) / draws
	if fraction < 0.12 || fraction > 0.18 {
		t.Errorf("corruption fraction %.4f outside 0.15±0.03", fraction)
	}
}

func TestCorruptField_StrictNever(t *testing.T) {
	s := newStrict(42)
	for i := 0; i < 1000; i++ {
		if s.CorruptField() || s.CorruptList() {
			t.Fatal("strict mode must never corrupt")
		}
	}
}

func TestTimeSequence_Properties(t *testing.T) {
	s := newStrict(42)

	tests := []struct {
		name   string
		start  int
		count  int
		maxGap int
	}{
		{"typical", 0, 100, 5},
		{"constant", 10, 20, 0},
		{"single", 7, 1, 3},
		{"tight", 0, 500, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			times := s.TimeSequence(tc.start, tc.count, tc.maxGap)
			if len(times) != tc.count {
				t.Fatalf("length %d, want %d", len(times), tc.count)
			}
			if times[0] != tc.start {
				t.Errorf("first element %d, want %d", times[0], tc.start)
			}
			for i := 1; i < len(times); i++ {
				if times[i] < times[i-1] {
					t.Fatalf("sequence decreases at %d: %d < %d", i, times[i], times[i-1])
				}
				if times[i]-times[i-1] > tc.maxGap {
					t.Fatalf("gap at %d exceeds maxGap %d", i, tc.maxGap)
				}
			}
		})
	}
}

func TestTimeSequence_EmptyAndConstant(t *testing.T) {
	s := newStrict(42)

	if got := s.TimeSequence(0, 0, 5); len(got) != 0 {
		t.Errorf("count 0 should yield empty sequence, got %v", got)
	}

	constant := s.TimeSequence(5, 10, 0)
	for _, v := range constant {
		if v != 5 {
			t.Fatalf("maxGap 0 should yield constant sequence, got %v", constant)
		}
	}
}

func TestWeighted_Distribution(t *testing.T) {
	w := NewWeighted(
		Choice[string]{Value: "common", Weight: 0.8},
		Choice[string]{Value: "rare", Weight: 0.2},
	)
	rng := rand.New(rand.NewPCG(42, 42))

	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		counts[w.Pick(rng)]++
	}

	if counts["common"] < 700 {
		t.Errorf("common should dominate, got %d/1000", counts["common"])
	}
	if counts["rare"] == 0 {
		t.Error("rare should still be drawn")
	}
}

func TestWeighted_Empty(t *testing.T) {
	w := NewWeighted[string]()
	rng := rand.New(rand.NewPCG(1, 1))
	if got := w.Pick(rng); got != "" {
		t.Errorf("empty table should return zero value, got %q", got)
	}
}

func TestWeighted_DeterministicWithSeed(t *testing.T) {
	table := []Choice[string]{
		{Value: "a", Weight: 1},
		{Value: "b", Weight: 2},
		{Value: "c", Weight: 3},
	}

	first := NewWeighted(table...)
	second := NewWeighted(table...)
	rngA := rand.New(rand.NewPCG(7, 7))
	rngB := rand.New(rand.NewPCG(7, 7))

	for i := 0; i < 100; i++ {
		if first.Pick(rngA) != second.Pick(rngB) {
			t.Fatal("same seed must select the same sequence")
		}
	}
}
