package command

import (
	"slices"

	"github.com/mrsinham/hospforge/internal/hospital/synth"
	"github.com/mrsinham/hospforge/internal/hospital/vocab"
)

// preopOmissionRate is the sub-roll for the one coupled corruption:
// a surgery scheduled without its required pre-op clearance. Only
// attempted under mixed mode.
const preopOmissionRate = 0.3

// itemsOmissionRate is the mixed-mode sub-roll for a pharmacy request
// missing its required items field entirely.
const itemsOmissionRate = 0.1

// Scalar invalid pools. Numeric fields corrupt to out-of-range values so
// the line grammar stays parseable.
var (
	invalidInits       = []int{-5, -1}
	invalidTriages     = []int{0, 6, 10, -1}
	invalidStabilities = []int{0, 50, 99, -1}
	invalidRestockQtys = []int{0, -5, -1}

	// HIGH is valid for pharmacy but not for the two-tier lab queue, so
	// lab priority probes include it deliberately.
	invalidLabPriorities = []string{"SUPER", "EXTREME", "NONE", "INVALID", "", "HIGH"}
)

// Builder assembles command instances. Unset fields are drawn from the
// vocabulary; per-type invariants are enforced in strict mode and
// violatable, one independent roll per required field, in mixed mode.
type Builder struct {
	s *synth.Synthesizer
}

// NewBuilder creates a builder on top of a synthesizer.
func NewBuilder(s *synth.Synthesizer) *Builder {
	return &Builder{s: s}
}

// Synth exposes the underlying synthesizer for composers.
func (b *Builder) Synth() *synth.Synthesizer {
	return b.s
}

func (b *Builder) pickInt(pool []int) int {
	return pool[b.s.Rand().IntN(len(pool))]
}

// tests draws a test list of size [min, max]. excludePreop removes PREOP
// from the pool; forcePreop appends it when missing. A corrupt-list roll
// blends known-invalid tests into the pool.
func (b *Builder) tests(min, max int, excludePreop, forcePreop bool) []string {
	pool := vocab.AllTests
	if excludePreop {
		pool = slices.DeleteFunc(slices.Clone(pool), func(t string) bool { return t == vocab.PreOpTest })
	}
	if b.s.CorruptList() {
		pool = slices.Concat(pool, vocab.InvalidTests)
	}

	tests := b.s.SampleSubset(pool, min, max)
	if forcePreop && !slices.Contains(tests, vocab.PreOpTest) {
		tests = append(tests, vocab.PreOpTest)
	}
	return tests
}

// meds draws a medication list of size [min, max], blending invalid
// names under a corrupt-list roll.
func (b *Builder) meds(min, max int) []string {
	pool := vocab.Medications
	if b.s.CorruptList() {
		pool = slices.Concat(pool, vocab.InvalidMedications)
	}
	return b.s.SampleSubset(pool, min, max)
}

// EmergencyParams carries resolved fields for an emergency intake.
// Zero values and nil lists are drawn by the builder.
type EmergencyParams struct {
	Index     int
	Init      int
	Triage    int
	Stability int
	Tests     []string
	Meds      []string
}

// Emergency builds a triage intake. Strict invariants: triage in [1,5],
// stability in [100,1000], tests never include PREOP.
func (b *Builder) Emergency(p EmergencyParams) Emergency {
	id := b.s.Identifier("PAC", p.Index, vocab.InvalidPatientIDs)

	triage := p.Triage
	if triage == 0 {
		triage = b.s.IntBetween(1, 5)
	}
	if b.s.CorruptField() {
		triage = b.pickInt(invalidTriages)
	}

	stability := p.Stability
	if stability == 0 {
		stability = b.s.IntBetween(100, 1000)
	}
	if b.s.CorruptField() {
		stability = b.pickInt(invalidStabilities)
	}

	tests := p.Tests
	if tests == nil {
		tests = b.tests(0, 3, true, false)
	}
	meds := p.Meds
	if meds == nil {
		meds = b.meds(0, 3)
	}

	init := p.Init
	if b.s.CorruptField() {
		init = b.pickInt(invalidInits)
	}

	return Emergency{
		PatientID: id,
		Init:      init,
		Triage:    triage,
		Stability: stability,
		Tests:     tests,
		Meds:      meds,
	}
}

// AppointmentParams carries resolved fields for an appointment.
type AppointmentParams struct {
	Index     int
	Init      int
	Scheduled int // 0 = draw; values <= Init are repaired
	Doctor    string
	Tests     []string
}

// Appointment builds a consultation. Strict invariant: scheduled > init.
// A caller-supplied slot that violates it (e.g. a reused slot) is
// repaired by adding a minimum offset.
func (b *Builder) Appointment(p AppointmentParams) Appointment {
	id := b.s.Identifier("PAC", p.Index, vocab.InvalidPatientIDs)
	init := p.Init

	scheduled := p.Scheduled
	if scheduled == 0 {
		scheduled = init + b.s.IntBetween(50, 200)
	} else if scheduled <= init {
		scheduled = init + b.s.IntBetween(20, 100)
	}
	if b.s.CorruptField() {
		scheduled = b.pickInt([]int{init - 10, init, 0, -1})
	}

	doctor := p.Doctor
	if doctor == "" {
		doctor = b.s.Pick(vocab.Specialties)
	}
	if b.s.CorruptField() {
		doctor = b.s.Pick(vocab.InvalidSpecialties)
	}

	tests := p.Tests
	if tests == nil {
		tests = b.tests(0, 2, true, false)
	}

	if b.s.CorruptField() {
		init = b.pickInt(invalidInits)
	}

	return Appointment{
		PatientID: id,
		Init:      init,
		Scheduled: scheduled,
		Doctor:    doctor,
		Tests:     tests,
	}
}

// SurgeryParams carries resolved fields for a surgery.
type SurgeryParams struct {
	Index     int
	Init      int
	Type      string
	Scheduled int // 0 = draw; values < Init are repaired
	Urgency   string
	Tests     []string
	Meds      []string
}

// Surgery builds an operation. Strict invariants: scheduled >= init, the
// test list includes PREOP, the medication list is non-empty. Omitting
// PREOP is the one coupled corruption: mixed mode plus a 30% sub-roll.
func (b *Builder) Surgery(p SurgeryParams) Surgery {
	id := b.s.Identifier("PAC", p.Index, vocab.InvalidPatientIDs)
	init := p.Init

	surgeryType := p.Type
	if surgeryType == "" {
		surgeryType = b.s.Pick(vocab.Specialties)
	}
	if b.s.CorruptField() {
		surgeryType = b.s.Pick(vocab.InvalidSpecialties)
	}

	scheduled := p.Scheduled
	if scheduled == 0 {
		scheduled = init + b.s.IntBetween(100, 300)
	} else if scheduled < init {
		scheduled = init + b.s.IntBetween(50, 150)
	}
	if b.s.CorruptField() {
		scheduled = b.pickInt([]int{init - 50, -1, 0})
	}

	urgency := p.Urgency
	if urgency == "" {
		urgency = b.s.Pick(vocab.UrgencyLevels)
	}
	if b.s.CorruptField() {
		urgency = b.s.Pick(vocab.InvalidUrgencyLevels)
	}

	omitPreop := b.s.Mode() == synth.Mixed && b.s.Bool(preopOmissionRate)

	tests := p.Tests
	if tests == nil {
		tests = b.tests(1, 3, false, !omitPreop)
	} else if !omitPreop && !slices.Contains(tests, vocab.PreOpTest) {
		tests = append(slices.Clone(tests), vocab.PreOpTest)
	}

	meds := p.Meds
	switch {
	case meds == nil && b.s.Mode() == synth.Mixed && b.s.Bool(0.15):
		meds = b.meds(0, 3) // may be empty, the intended violation
	case meds == nil:
		meds = b.meds(1, 4)
	case len(meds) == 0 && b.s.Mode() == synth.Strict:
		meds = b.meds(1, 3)
	}

	if b.s.CorruptField() {
		init = b.pickInt(invalidInits)
	}

	return Surgery{
		PatientID: id,
		Init:      init,
		Type:      surgeryType,
		Scheduled: scheduled,
		Urgency:   urgency,
		Tests:     tests,
		Meds:      meds,
	}
}

// LabRequestParams carries resolved fields for a lab request.
type LabRequestParams struct {
	Index    int
	Init     int
	Priority string
	Lab      string
	Tests    []string
}

// LabRequest builds a laboratory request. Strict invariants: at least
// one test, every test in the declared lab's compatibility set, two-tier
// priority. Mixed mode may draw HIGH as the invalid-priority probe.
func (b *Builder) LabRequest(p LabRequestParams) LabRequest {
	id := b.s.Identifier("LAB", p.Index, vocab.InvalidLabIDs)
	init := p.Init

	priority := p.Priority
	if priority == "" {
		priority = b.s.Pick(vocab.LabPriorities)
	}
	if b.s.CorruptField() {
		priority = b.s.Pick(invalidLabPriorities)
	}

	labType := p.Lab
	if labType == "" {
		labType = b.s.Pick(vocab.LabTypes)
	}
	if b.s.CorruptField() {
		labType = b.s.Pick(vocab.InvalidLabTypes)
	}

	tests := p.Tests
	if tests == nil {
		if b.s.CorruptList() {
			// Incompatibility probe: draw across every lab's pool plus
			// invalid names, ignoring the declared lab.
			tests = b.s.SampleSubset(slices.Concat(vocab.AllTests, vocab.InvalidTests), 1, 3)
		} else {
			tests = b.s.SampleSubset(vocab.TestsFor(labType), 1, 3)
		}
	} else {
		compatible := make([]string, 0, len(tests))
		for _, t := range tests {
			if vocab.IsValidTestFor(labType, t) {
				compatible = append(compatible, t)
			}
		}
		tests = compatible
	}
	if len(tests) == 0 {
		// Filtered pool emptied out: fall back to a fresh compatible draw.
		tests = b.s.SampleSubset(vocab.TestsFor(labType), 1, 2)
	}

	if b.s.CorruptField() {
		init = b.pickInt(invalidInits)
	}

	return LabRequest{
		LabID:    id,
		Init:     init,
		Priority: priority,
		Lab:      labType,
		Tests:    tests,
	}
}

// PharmacyRequestParams carries resolved fields for a pharmacy request.
type PharmacyRequestParams struct {
	Index    int
	Init     int
	Priority string
	Items    []Item
}

// PharmacyRequest builds a dispensing request. Three-tier priority; the
// item list corrupts on two independent axes (names and quantities).
func (b *Builder) PharmacyRequest(p PharmacyRequestParams) PharmacyRequest {
	id := b.s.Identifier("REQ", p.Index, vocab.InvalidRequestIDs)
	init := p.Init

	priority := p.Priority
	if priority == "" {
		priority = b.s.Pick(vocab.PharmacyPriorities)
	}
	if b.s.CorruptField() {
		priority = b.s.Pick(vocab.InvalidPriorities)
	}

	items := p.Items
	switch {
	case items == nil && b.s.Mode() == synth.Mixed && b.s.Bool(itemsOmissionRate):
		// Dropped items field, the intended violation.
	case items == nil:
		pool := vocab.Medications
		if b.s.CorruptList() {
			pool = slices.Concat(pool, vocab.InvalidMedications)
		}
		tagged := b.s.SampleTaggedList(pool, 1, 10, 1, 5)
		items = make([]Item, len(tagged))
		for i, t := range tagged {
			items[i] = Item{Med: t.Name, Qty: t.Qty}
		}
	}

	if b.s.CorruptField() {
		init = b.pickInt(invalidInits)
	}

	return PharmacyRequest{
		RequestID: id,
		Init:      init,
		Priority:  priority,
		Items:     items,
	}
}

// RestockParams carries resolved fields for a restock.
type RestockParams struct {
	Medication string
	Quantity   int
}

// Restock builds a stock replenishment. Strict invariant: quantity > 0.
func (b *Builder) Restock(p RestockParams) Restock {
	med := p.Medication
	if med == "" {
		med = b.s.Pick(vocab.Medications)
	}
	if b.s.CorruptField() {
		med = b.s.Pick(vocab.InvalidMedications)
	}

	qty := p.Quantity
	if qty == 0 {
		qty = b.s.IntBetween(10, 100)
	}
	if b.s.CorruptField() {
		qty = b.pickInt(invalidRestockQtys)
	}

	return Restock{Medication: med, Quantity: qty}
}

// Status builds a subsystem query. An empty component argument draws
// one; corruption may produce an unknown component or the bare
// malformed "STATUS".
func (b *Builder) Status(component string) Status {
	if component == "" {
		component = b.s.Pick(vocab.StatusComponents)
	}
	if b.s.CorruptField() {
		component = b.s.Pick(vocab.InvalidStatusComponents)
	}
	return Status{Component: component}
}

// Unknown returns a line outside the processor grammar.
func (b *Builder) Unknown() Raw {
	return Raw(b.s.Pick(vocab.UnknownCommands))
}
