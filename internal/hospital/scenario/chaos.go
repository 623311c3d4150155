package scenario

import (
	"github.com/mrsinham/hospforge/internal/hospital/command"
	"github.com/mrsinham/hospforge/internal/hospital/synth"
)

type chaosKind int

const (
	kindEmergency chaosKind = iota
	kindAppointment
	kindSurgery
	kindLab
	kindPharmacy
	kindRestock
	kindStatus
	kindUnknown
)

// chaosComposer mixes every command type in one stream. The chaos
// parameter compresses inter-arrival gaps and skews the mix toward
// emergencies and out-of-grammar lines.
type chaosComposer struct{}

func (chaosComposer) Scenario() Scenario { return Chaos }

func (chaosComposer) DefaultNumCommands() int { return 150 }

func (c chaosComposer) Compose(b *command.Builder, p Params) []command.Command {
	n := p.NumCommands
	if n <= 0 {
		n = c.DefaultNumCommands()
	}

	s := b.Synth()

	// maxGap shrinks linearly with chaos but never reaches zero, so the
	// stream keeps a forward-moving clock.
	maxGap := int(10 * (1 - p.Chaos))
	if maxGap < 1 {
		maxGap = 1
	}
	times := s.TimeSequence(0, n, maxGap)

	// Unknown-command probes are a corruption feature: strict streams
	// stay inside the grammar.
	unknownWeight := 0.05 + 0.10*p.Chaos
	if s.Mode() == synth.Strict {
		unknownWeight = 0
	}

	kind := synth.NewWeighted(
		synth.Choice[chaosKind]{Value: kindEmergency, Weight: 0.20 + 0.15*p.Chaos},
		synth.Choice[chaosKind]{Value: kindAppointment, Weight: 0.15},
		synth.Choice[chaosKind]{Value: kindSurgery, Weight: 0.15},
		synth.Choice[chaosKind]{Value: kindLab, Weight: 0.20},
		synth.Choice[chaosKind]{Value: kindPharmacy, Weight: 0.20},
		synth.Choice[chaosKind]{Value: kindRestock, Weight: 0.05},
		synth.Choice[chaosKind]{Value: kindStatus, Weight: 0.05},
		synth.Choice[chaosKind]{Value: kindUnknown, Weight: unknownWeight},
	)

	cmds := make([]command.Command, 0, n)
	for i := 0; i < n; i++ {
		idx, init := i+1, times[i]
		switch kind.Pick(s.Rand()) {
		case kindEmergency:
			ep := command.EmergencyParams{Index: idx, Init: init}
			if s.Bool(p.Chaos) {
				// More critical patients under pressure.
				ep.Triage = s.IntBetween(1, 3)
			}
			cmds = append(cmds, b.Emergency(ep))
		case kindAppointment:
			ap := command.AppointmentParams{Index: idx, Init: init}
			if s.Bool(p.Chaos) {
				ap.Scheduled = init + s.IntBetween(20, 100)
			}
			cmds = append(cmds, b.Appointment(ap))
		case kindSurgery:
			sp := command.SurgeryParams{Index: idx, Init: init}
			if s.Bool(p.Chaos * 0.5) {
				sp.Urgency = "HIGH"
			}
			if s.Bool(p.Chaos) {
				sp.Scheduled = init + s.IntBetween(50, 150)
			}
			cmds = append(cmds, b.Surgery(sp))
		case kindLab:
			lp := command.LabRequestParams{Index: idx, Init: init}
			if s.Bool(p.Chaos * 0.4) {
				lp.Priority = "URGENT"
			}
			cmds = append(cmds, b.LabRequest(lp))
		case kindPharmacy:
			pp := command.PharmacyRequestParams{Index: idx, Init: init}
			switch {
			case s.Bool(p.Chaos * 0.3):
				pp.Priority = "URGENT"
			case s.Bool(p.Chaos * 0.4):
				pp.Priority = "HIGH"
			}
			cmds = append(cmds, b.PharmacyRequest(pp))
		case kindRestock:
			rp := command.RestockParams{}
			if s.Bool(p.Chaos) {
				// The drained system needs bigger refills.
				rp.Quantity = s.IntBetween(50, 150)
			}
			cmds = append(cmds, b.Restock(rp))
		case kindStatus:
			cmds = append(cmds, b.Status(""))
		case kindUnknown:
			cmds = append(cmds, b.Unknown())
		}
	}
	return cmds
}
