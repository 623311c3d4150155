package synth

// TimeSequence produces count non-decreasing initiation times. The first
// element equals start; each subsequent element adds a uniform gap in
// [0, maxGap] to its predecessor. maxGap 0 yields a constant sequence,
// count <= 0 an empty one. Repeated timestamps are legal and are used to
// create deliberate concurrency pressure downstream.
func (s *Synthesizer) TimeSequence(start, count, maxGap int) []int {
	if count <= 0 {
		return []int{}
	}
	if maxGap < 0 {
		maxGap = 0
	}

	times := make([]int, count)
	current := start
	for i := 0; i < count; i++ {
		times[i] = current
		current += s.IntBetween(0, maxGap)
	}
	return times
}
