package scenario

import "math/rand/v2"

// slotRegistry remembers recently assigned scheduling slots so composers
// can hand them out again and force booking collisions. Bounded so reuse
// stays concentrated on a small window of slots.
type slotRegistry struct {
	capacity int
	slots    []int
	next     int
}

func newSlotRegistry(capacity int) *slotRegistry {
	return &slotRegistry{capacity: capacity}
}

func (r *slotRegistry) Len() int {
	return len(r.slots)
}

// Record stores a slot, overwriting the oldest entry once the registry
// is full.
func (r *slotRegistry) Record(slot int) {
	if len(r.slots) < r.capacity {
		r.slots = append(r.slots, slot)
		return
	}
	r.slots[r.next] = slot
	r.next = (r.next + 1) % r.capacity
}

// Reuse returns a uniformly chosen recorded slot, or 0 when empty.
func (r *slotRegistry) Reuse(rng *rand.Rand) int {
	if len(r.slots) == 0 {
		return 0
	}
	return r.slots[rng.IntN(len(r.slots))]
}
