package peptide

import (
	"fmt"

	"github.com/peptilab/peptigraph/pkg/errors"
)

// residueInstance is one materialized residue inside a build: a window of
// atoms in the shared graph plus the consumption state of its anchors.
// Anchors are single-use; every bond that attaches to a residue burns one.
type residueInstance struct {
	template *FragmentTemplate
	position int // 1-based position in the sequence
	offset   int // graph index of template atom 0
	consumed map[AnchorRole]bool
}

// instantiate appends a template's atoms and bonds to g and returns the
// instance handle.  Atom indices inside the instance are template indices
// shifted by offset.
func instantiate(g *MolecularGraph, tpl *FragmentTemplate, position int) (*residueInstance, error) {
	offset := g.AtomCount()
	for _, a := range tpl.Atoms {
		g.AddAtom(Atom{Element: a.Element, Charge: a.Charge, Chirality: a.Chirality})
	}
	for _, b := range tpl.Bonds {
		if err := g.AddBond(offset+b.A, offset+b.B, b.Order); err != nil {
			return nil, err
		}
	}
	return &residueInstance{
		template: tpl,
		position: position,
		offset:   offset,
		consumed: make(map[AnchorRole]bool, len(tpl.Anchors)),
	}, nil
}

// anchorAtom resolves an anchor role to its graph atom index without
// consuming it.
func (r *residueInstance) anchorAtom(role AnchorRole) (int, error) {
	idx, ok := r.template.Anchors[role]
	if !ok {
		return 0, errors.New(errors.ErrCodeUnknownAnchor, "residue declares no such anchor").
			WithDetail(fmt.Sprintf("position=%d residue=%s role=%s", r.position, r.template.Identity, role))
	}
	return r.offset + idx, nil
}

// isConsumed reports whether the anchor has already been bonded.
func (r *residueInstance) isConsumed(role AnchorRole) bool {
	return r.consumed[role]
}

// consume resolves and burns an anchor, returning its graph atom index.
func (r *residueInstance) consume(role AnchorRole) (int, error) {
	idx, err := r.anchorAtom(role)
	if err != nil {
		return 0, err
	}
	if r.consumed[role] {
		return 0, errors.New(errors.ErrCodeAnchorAlreadyUsed, "anchor already bonded").
			WithDetail(fmt.Sprintf("position=%d residue=%s role=%s", r.position, r.template.Identity, role))
	}
	r.consumed[role] = true
	return idx, nil
}

// rings returns the instance's aromatic ring specs with graph indices.
func (r *residueInstance) rings() []RingSpec {
	if len(r.template.Rings) == 0 {
		return nil
	}
	out := make([]RingSpec, len(r.template.Rings))
	for i, ring := range r.template.Rings {
		cycle := make([]int, len(ring.Cycle))
		for j, a := range ring.Cycle {
			cycle[j] = r.offset + a
		}
		var pyrrolic []int
		if len(ring.Pyrrolic) > 0 {
			pyrrolic = make([]int, len(ring.Pyrrolic))
			for j, a := range ring.Pyrrolic {
				pyrrolic[j] = r.offset + a
			}
		}
		out[i] = RingSpec{Cycle: cycle, Pyrrolic: pyrrolic}
	}
	return out
}
