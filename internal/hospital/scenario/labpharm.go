package scenario

import (
	"github.com/mrsinham/hospforge/internal/hospital/command"
	"github.com/mrsinham/hospforge/internal/hospital/vocab"
)

// labPharmComposer exercises the two request queues at once: laboratory
// and pharmacy requests in equal volume with large restocks interspersed
// to replenish the drained stock, then fully shuffled so neither queue
// sees an orderly stream.
type labPharmComposer struct{}

func (labPharmComposer) Scenario() Scenario { return LabPharm }

func (labPharmComposer) DefaultNumCommands() int { return 105 }

func (c labPharmComposer) Compose(b *command.Builder, p Params) []command.Command {
	n := p.NumCommands
	if n <= 0 {
		n = c.DefaultNumCommands()
	}

	// 3:3:1 lab/pharmacy/restock split, restock absorbing the remainder.
	nLab := 3 * n / 7
	nPharm := 3 * n / 7
	nRestock := n - nLab - nPharm

	s := b.Synth()
	times := s.TimeSequence(0, n, tightGap(p.Chaos, 1, 3))

	cmds := make([]command.Command, 0, n)
	for i := 0; i < nLab; i++ {
		// Stress skews the queue: roughly a third of requests jump it.
		priority := "NORMAL"
		if s.Bool(0.3) {
			priority = "URGENT"
		}
		cmds = append(cmds, b.LabRequest(command.LabRequestParams{
			Index:    i + 1,
			Init:     times[len(cmds)],
			Priority: priority,
		}))
	}
	for i := 0; i < nPharm; i++ {
		var priority string
		switch {
		case s.Bool(0.25):
			priority = "URGENT"
		case s.Bool(0.35):
			priority = "HIGH"
		default:
			priority = "NORMAL"
		}
		cmds = append(cmds, b.PharmacyRequest(command.PharmacyRequestParams{
			Index:    i + 1,
			Init:     times[len(cmds)],
			Priority: priority,
		}))
	}
	for i := 0; i < nRestock; i++ {
		cmds = append(cmds, b.Restock(command.RestockParams{
			Medication: s.Pick(vocab.Medications),
			Quantity:   s.IntBetween(50, 200),
		}))
	}

	s.Rand().Shuffle(len(cmds), func(i, j int) {
		cmds[i], cmds[j] = cmds[j], cmds[i]
	})
	return cmds
}
