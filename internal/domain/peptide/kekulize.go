package peptide

import (
	"fmt"

	"github.com/peptilab/peptigraph/pkg/errors"
	"github.com/peptilab/peptigraph/pkg/types/chem"
)

// kekulize rewrites every aromatic-pending ring bond to a concrete single or
// double order.  Each non-pyrrolic ring atom must end up with exactly one
// ring double bond; pyrrolic atoms take none.  Rings are processed in
// declaration order and each ring's walk starts at its seed edge, so the
// assignment is deterministic.  Fused systems work because the per-atom
// "needs a double" state is shared across rings.
func kekulize(g *MolecularGraph, rings []RingSpec) error {
	if len(rings) == 0 {
		return ensureNoAromaticPending(g)
	}

	need := make(map[int]bool)
	for _, ring := range rings {
		pyrrolic := make(map[int]bool, len(ring.Pyrrolic))
		for _, a := range ring.Pyrrolic {
			pyrrolic[a] = true
		}
		for _, a := range ring.Cycle {
			if !pyrrolic[a] {
				need[a] = true
			}
		}
	}

	for _, ring := range rings {
		for k := range ring.Cycle {
			a := ring.Cycle[k]
			b := ring.Cycle[(k+1)%len(ring.Cycle)]
			bi := g.BondBetween(a, b)
			if bi < 0 {
				return errors.Newf(errors.ErrCodeKekulization,
					"ring edge %d-%d has no bond", a, b)
			}
			if g.BondAt(bi).Order != chem.OrderAromatic {
				continue
			}
			if need[a] && need[b] {
				g.SetBondOrder(bi, chem.OrderDouble)
				need[a], need[b] = false, false
			} else {
				g.SetBondOrder(bi, chem.OrderSingle)
			}
		}
	}

	for atom, pending := range need {
		if pending {
			return errors.New(errors.ErrCodeKekulization, "no valid alternation").
				WithDetail(fmt.Sprintf("atom=%d left without a ring double bond", atom))
		}
	}
	return ensureNoAromaticPending(g)
}

// ensureNoAromaticPending verifies that no aromatic-order bond survived
// outside the declared rings.
func ensureNoAromaticPending(g *MolecularGraph) error {
	for i := 0; i < g.BondCount(); i++ {
		if g.BondAt(i).Order == chem.OrderAromatic {
			b := g.BondAt(i)
			return errors.New(errors.ErrCodeKekulization, "aromatic bond outside any declared ring").
				WithDetail(fmt.Sprintf("bond=%d-%d", b.A, b.B))
		}
	}
	return nil
}
