package scenario

import (
	"github.com/mrsinham/hospforge/internal/hospital/command"
	"github.com/mrsinham/hospforge/internal/hospital/vocab"
)

// appointmentsComposer drives the booking calendar: a stream of
// consultations where a configurable share tries to take a slot that was
// already handed out.
type appointmentsComposer struct{}

func (appointmentsComposer) Scenario() Scenario { return Appointments }

func (appointmentsComposer) DefaultNumCommands() int { return 75 }

func (c appointmentsComposer) Compose(b *command.Builder, p Params) []command.Command {
	n := p.NumCommands
	if n <= 0 {
		n = c.DefaultNumCommands()
	}
	overlap := p.OverlapRatio
	if overlap <= 0 {
		overlap = 0.4
	}

	s := b.Synth()
	times := s.TimeSequence(0, n, tightGap(p.Chaos, 1, 3))
	reg := newSlotRegistry(20)

	cmds := make([]command.Command, 0, n)
	for i := 0; i < n; i++ {
		var scheduled int
		reused := reg.Len() > 0 && s.Bool(overlap)
		if reused {
			scheduled = reg.Reuse(s.Rand())
		}
		cmd := b.Appointment(command.AppointmentParams{
			Index:     i + 1,
			Init:      times[i],
			Scheduled: scheduled,
			// Cycle the specialties so every doctor type sees load.
			Doctor: vocab.Specialties[i%len(vocab.Specialties)],
		})
		if !reused && cmd.Scheduled > cmd.Init {
			reg.Record(cmd.Scheduled)
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}
