package scenario

import (
	"github.com/mrsinham/hospforge/internal/hospital/command"
	"github.com/mrsinham/hospforge/internal/hospital/vocab"
)

// Depletion phase parameters. Beyond the drain volume the structure is
// fixed: drain a known set of medications in descending priority order,
// observe the empty stock, restock, and confirm recovery.
const (
	depletionMeds        = 5
	depletionDrainQty    = 5
	depletionRestockQty  = 50
	depletionRecoveryN   = 10
	depletionRecoveryQty = 3
)

// depletionMaxTargets caps the medications per drain request, indexed
// by priority tier. The middle wave spreads slightly wider.
var depletionMaxTargets = []int{2, 3, 2}

// depletionComposer drains pharmacy stock and then restores it.
// NumCommands sizes the drain; the status, restock and recovery tail is
// structural and rides on top.
type depletionComposer struct{}

func (depletionComposer) Scenario() Scenario { return Depletion }

func (depletionComposer) DefaultNumCommands() int { return 80 }

func (c depletionComposer) Compose(b *command.Builder, p Params) []command.Command {
	n := p.NumCommands
	if n <= 0 {
		n = c.DefaultNumCommands()
	}

	s := b.Synth()
	meds := vocab.Medications[:depletionMeds]
	times := s.TimeSequence(0, n, 2)

	cmds := make([]command.Command, 0, n+depletionMeds+depletionRecoveryN+2)
	index := 0

	// Drain: three descending-priority waves of n/3 requests over the
	// same medications, so lower-priority requests arrive at an
	// already-empty stock. The last wave absorbs the remainder.
	for tier, priority := range vocab.PharmacyPriorities {
		count := n / 3
		if tier == len(vocab.PharmacyPriorities)-1 {
			count = n - 2*(n/3)
		}
		for i := 0; i < count; i++ {
			index++
			targets := s.SampleSubset(meds, 1, depletionMaxTargets[tier])
			items := make([]command.Item, len(targets))
			for j, med := range targets {
				items[j] = command.Item{Med: med, Qty: depletionDrainQty}
			}
			cmds = append(cmds, b.PharmacyRequest(command.PharmacyRequestParams{
				Index:    index,
				Init:     times[len(cmds)],
				Priority: priority,
				Items:    items,
			}))
		}
	}

	// Observe the drained stock.
	cmds = append(cmds, b.Status("PHARMACY"))

	// Restock every drained medication.
	for _, med := range meds {
		cmds = append(cmds, b.Restock(command.RestockParams{
			Medication: med,
			Quantity:   depletionRestockQty,
		}))
	}

	// Recovery: small requests after the restock that must now succeed.
	recoveryStart := times[n-1] + 10
	for i := 0; i < depletionRecoveryN; i++ {
		index++
		cmds = append(cmds, b.PharmacyRequest(command.PharmacyRequestParams{
			Index:    index,
			Init:     recoveryStart + i*3,
			Priority: "NORMAL",
			Items:    []command.Item{{Med: s.Pick(meds), Qty: depletionRecoveryQty}},
		}))
	}

	// Confirm recovery.
	cmds = append(cmds, b.Status("PHARMACY"))
	return cmds
}
