package scenario

import (
	"github.com/mrsinham/hospforge/internal/hospital/command"
	"github.com/mrsinham/hospforge/internal/hospital/synth"
	"github.com/mrsinham/hospforge/internal/hospital/vocab"
)

// surgeryComposer schedules operations so every third surgery lands on a
// shared slot ladder, forcing the processor's conflict resolution to
// arbitrate by urgency. Types cycle through the specialties so all
// operating rooms see load.
type surgeryComposer struct{}

func (surgeryComposer) Scenario() Scenario { return Surgery }

func (surgeryComposer) DefaultNumCommands() int { return 35 }

func (c surgeryComposer) Compose(b *command.Builder, p Params) []command.Command {
	n := p.NumCommands
	if n <= 0 {
		n = c.DefaultNumCommands()
	}

	s := b.Synth()
	times := s.TimeSequence(0, n, tightGap(p.Chaos, 2, 8))

	// Chaos pushes the urgency mix toward HIGH without ever dropping the
	// lower tiers.
	urgency := synth.NewWeighted(
		synth.Choice[string]{Value: "HIGH", Weight: 0.40 + 0.30*p.Chaos},
		synth.Choice[string]{Value: "MEDIUM", Weight: 0.35},
		synth.Choice[string]{Value: "LOW", Weight: 0.25},
	)

	const slotBase = 100

	cmds := make([]command.Command, 0, n)
	for i := 0; i < n; i++ {
		scheduled := times[i] + s.IntBetween(80, 200)
		if i%3 == 0 {
			// Every third surgery competes for the same ladder slot.
			scheduled = slotBase + (i/3)*50
		}
		cmds = append(cmds, b.Surgery(command.SurgeryParams{
			Index:     i + 1,
			Init:      times[i],
			Type:      vocab.Specialties[i%len(vocab.Specialties)],
			Scheduled: scheduled,
			Urgency:   urgency.Pick(s.Rand()),
		}))
	}
	return cmds
}
