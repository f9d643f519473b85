package peptide

import (
	"fmt"
	"sort"

	"github.com/peptilab/peptigraph/pkg/errors"
	"github.com/peptilab/peptigraph/pkg/types/chem"
)

// CrossLink declares one covalent bond between two residue anchors.
// Positions are 1-based sequence positions.  A zero Order means single.
type CrossLink struct {
	PositionA int
	AnchorA   AnchorRole
	PositionB int
	AnchorB   AnchorRole
	Order     chem.BondOrder
}

// normalized returns the link with its endpoints in canonical order: lower
// (position, role) first.  Build sorts the normalized links before resolving
// them, so the emitted graph is identical for any declaration order.
func (l CrossLink) normalized() CrossLink {
	if l.PositionA > l.PositionB ||
		(l.PositionA == l.PositionB && l.AnchorA > l.AnchorB) {
		l.PositionA, l.PositionB = l.PositionB, l.PositionA
		l.AnchorA, l.AnchorB = l.AnchorB, l.AnchorA
	}
	return l
}

// BuildSpec is the full input of one build: the residue sequence plus any
// cross-links and the head-to-tail closure flag.
type BuildSpec struct {
	Sequence   []ResidueIdentity
	CrossLinks []CrossLink
	Cyclic     bool
}

// Build assembles the molecular graph for spec: instantiate every residue,
// join the backbone, resolve cross-links, close or cap the termini, then
// kekulize.  The returned graph contains no aromatic-pending bonds.
func Build(spec BuildSpec) (*MolecularGraph, error) {
	if len(spec.Sequence) == 0 {
		return nil, errors.New(errors.ErrCodeEmptySequence, "sequence has no residues")
	}

	atomHint := 0
	templates := make([]*FragmentTemplate, len(spec.Sequence))
	for i, id := range spec.Sequence {
		tpl, err := Template(id)
		if err != nil {
			return nil, err
		}
		templates[i] = tpl
		atomHint += tpl.HeavyAtomCount()
	}

	g := NewGraph(atomHint+1, atomHint+len(spec.CrossLinks)+1)
	instances := make([]*residueInstance, len(templates))
	var rings []RingSpec
	for i, tpl := range templates {
		inst, err := instantiate(g, tpl, i+1)
		if err != nil {
			return nil, err
		}
		instances[i] = inst
		rings = append(rings, inst.rings()...)
	}

	// Backbone amide bonds, N-to-C.
	for i := 0; i < len(instances)-1; i++ {
		c, err := instances[i].consume(AnchorCTerm)
		if err != nil {
			return nil, err
		}
		n, err := instances[i+1].consume(AnchorNTerm)
		if err != nil {
			return nil, err
		}
		if err := g.AddBond(c, n, chem.OrderSingle); err != nil {
			return nil, err
		}
	}

	if err := resolveCrossLinks(g, instances, spec.CrossLinks); err != nil {
		return nil, err
	}

	if spec.Cyclic {
		if err := cyclize(g, instances); err != nil {
			return nil, err
		}
	} else if err := capCTerminus(g, instances[len(instances)-1]); err != nil {
		return nil, err
	}

	if err := kekulize(g, rings); err != nil {
		return nil, err
	}
	return g, nil
}

// resolveCrossLinks validates, canonically orders, and bonds every declared
// cross-link.
func resolveCrossLinks(g *MolecularGraph, instances []*residueInstance, links []CrossLink) error {
	if len(links) == 0 {
		return nil
	}
	sorted := make([]CrossLink, len(links))
	for i, l := range links {
		sorted[i] = l.normalized()
	}
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.PositionA != b.PositionA {
			return a.PositionA < b.PositionA
		}
		if a.AnchorA != b.AnchorA {
			return a.AnchorA < b.AnchorA
		}
		if a.PositionB != b.PositionB {
			return a.PositionB < b.PositionB
		}
		return a.AnchorB < b.AnchorB
	})

	for _, l := range sorted {
		order := l.Order
		if order == 0 {
			order = chem.OrderSingle
		}
		if !order.IsValid() || order == chem.OrderAromatic {
			return errors.New(errors.ErrCodeValidation, "cross-link bond order invalid").
				WithDetail(fmt.Sprintf("order=%d", l.Order))
		}
		instA, err := instanceAt(instances, l.PositionA)
		if err != nil {
			return err
		}
		instB, err := instanceAt(instances, l.PositionB)
		if err != nil {
			return err
		}
		if instA == instB && l.AnchorA == l.AnchorB {
			return errors.New(errors.ErrCodeValidation, "cross-link joins an anchor to itself").
				WithDetail(fmt.Sprintf("position=%d role=%s", l.PositionA, l.AnchorA))
		}
		a, err := instA.consume(l.AnchorA)
		if err != nil {
			return err
		}
		b, err := instB.consume(l.AnchorB)
		if err != nil {
			return err
		}
		if err := g.AddBond(a, b, order); err != nil {
			return err
		}
	}
	return nil
}

func instanceAt(instances []*residueInstance, position int) (*residueInstance, error) {
	if position < 1 || position > len(instances) {
		return nil, errors.New(errors.ErrCodeValidation, "cross-link position out of range").
			WithDetail(fmt.Sprintf("position=%d length=%d", position, len(instances)))
	}
	return instances[position-1], nil
}

// cyclize closes the backbone head-to-tail.  A single residue cannot close
// (the result would be a three-membered lactam the catalog's chemistry does
// not represent), and a terminus already burned by a cross-link cannot be
// reused.
func cyclize(g *MolecularGraph, instances []*residueInstance) error {
	if len(instances) == 1 {
		return errors.New(errors.ErrCodeCyclization, "cannot cyclize a single residue")
	}
	head, tail := instances[0], instances[len(instances)-1]
	if head.isConsumed(AnchorNTerm) {
		return errors.New(errors.ErrCodeCyclization, "n-terminus already bonded").
			WithDetail(fmt.Sprintf("position=%d", head.position))
	}
	if tail.isConsumed(AnchorCTerm) {
		return errors.New(errors.ErrCodeCyclization, "c-terminus already bonded").
			WithDetail(fmt.Sprintf("position=%d", tail.position))
	}
	c, err := tail.consume(AnchorCTerm)
	if err != nil {
		return err
	}
	n, err := head.consume(AnchorNTerm)
	if err != nil {
		return err
	}
	return g.AddBond(c, n, chem.OrderSingle)
}

// capCTerminus completes a linear peptide's free carboxyl with its hydroxyl
// oxygen.  When a cross-link already consumed the c-term anchor the terminus
// is a side-chain amide or ester and no cap is added.
func capCTerminus(g *MolecularGraph, tail *residueInstance) error {
	if tail.isConsumed(AnchorCTerm) {
		return nil
	}
	c, err := tail.consume(AnchorCTerm)
	if err != nil {
		return err
	}
	o := g.AddAtom(Atom{Element: chem.Oxygen})
	return g.AddBond(c, o, chem.OrderSingle)
}
