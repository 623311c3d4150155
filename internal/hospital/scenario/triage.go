package scenario

import (
	"github.com/mrsinham/hospforge/internal/hospital/command"
)

// triageChunk bounds the post-assignment shuffle window: commands swap
// places only within a chunk, so arrivals stay near their drawn times
// while the stream is no longer strictly ordered.
const triageChunk = 5

// triageLevels oversamples the urgent end so priority handling stays
// under pressure.
var triageLevels = []int{1, 1, 2, 2, 3, 4, 5}

// triageComposer floods the intake queue with emergencies mixed with a
// minority of routine appointments.
type triageComposer struct{}

func (triageComposer) Scenario() Scenario { return Triage }

func (triageComposer) DefaultNumCommands() int { return 60 }

func (c triageComposer) Compose(b *command.Builder, p Params) []command.Command {
	n := p.NumCommands
	if n <= 0 {
		n = c.DefaultNumCommands()
	}
	ratio := p.EmergencyRatio
	if ratio <= 0 {
		ratio = 0.65
	}

	s := b.Synth()
	times := s.TimeSequence(0, n, tightGap(p.Chaos, 2, 10))

	cmds := make([]command.Command, 0, n)
	for i := 0; i < n; i++ {
		if s.Bool(ratio) {
			cmds = append(cmds, b.Emergency(command.EmergencyParams{
				Index:     i + 1,
				Init:      times[i],
				Triage:    triageLevels[s.Rand().IntN(len(triageLevels))],
				Stability: s.IntBetween(100, 800),
			}))
		} else {
			cmds = append(cmds, b.Appointment(command.AppointmentParams{
				Index:     i + 1,
				Init:      times[i],
				Scheduled: times[i] + s.IntBetween(30, 150),
			}))
		}
	}

	boundedShuffle(s.Rand(), cmds, triageChunk)
	return cmds
}
