package peptide

import (
	"github.com/peptilab/peptigraph/pkg/errors"
	"github.com/peptilab/peptigraph/pkg/types/chem"
)

// Visitor receives the linearized event stream of a finished graph.  Events
// arrive in SMILES grammar order: the root atom first, then for each atom
// its ring-closure bonds, then its subtrees, every subtree but the last
// wrapped in OpenBranch/CloseBranch and introduced by VisitBond.
type Visitor interface {
	// VisitAtom reports an atom together with its implicit hydrogen count.
	VisitAtom(a Atom, hydrogens int)

	// VisitBond reports the bond leading to the next visited atom.
	VisitBond(order chem.BondOrder)

	// VisitRingBond reports a ring-closure bond at the current atom.  The
	// same ring number arrives exactly twice, once per endpoint; numbers
	// are reused once both endpoints have been seen.
	VisitRingBond(order chem.BondOrder, ring int)

	// OpenBranch and CloseBranch delimit a non-final subtree of an atom.
	OpenBranch()
	CloseBranch()
}

// edgeKind classifies a bond during the first traversal pass.
type edgeKind int8

const (
	edgeUnseen edgeKind = iota
	edgeTree
	edgeRing
)

// Emit walks g depth-first from atom 0 and streams the traversal to v.
// Neighbors are taken in bond insertion order, so two identical builds
// produce identical event streams.  Emit fails when the graph is empty,
// disconnected, or still carries aromatic-pending bonds.
func Emit(g *MolecularGraph, v Visitor) error {
	if g.AtomCount() == 0 {
		return errors.New(errors.ErrCodeEmptySequence, "graph has no atoms")
	}
	for i := 0; i < g.BondCount(); i++ {
		if g.BondAt(i).Order == chem.OrderAromatic {
			return errors.New(errors.ErrCodeKekulization, "graph emitted before kekulization")
		}
	}

	e := &emitter{
		g:       g,
		kinds:   make([]edgeKind, g.BondCount()),
		visited: make([]bool, g.AtomCount()),
		ringAt:  make(map[int][]int),
	}
	e.classify(0, -1)
	for i, seen := range e.visited {
		if !seen {
			return errors.Newf(errors.ErrCodeInternal, "graph is disconnected at atom %d", i)
		}
	}

	e.ringNumber = make(map[int]int)
	e.emit(0, -1, v)
	return nil
}

type emitter struct {
	g       *MolecularGraph
	kinds   []edgeKind
	visited []bool

	// ringAt lists, per atom, the ring bonds touching it in discovery
	// order.  Populated by classify, consumed by emit.
	ringAt map[int][]int

	// ringNumber maps an open ring bond to its allocated closure number.
	ringNumber map[int]int
	inUse      []bool
}

// classify performs the first pass: mark every bond as tree or ring.  A bond
// to an already-visited atom that is not the traversal parent is a ring
// bond; it is recorded at both endpoints so the second pass can emit the
// closure number at each.
func (e *emitter) classify(atom, parentBond int) {
	e.visited[atom] = true
	for _, bi := range e.g.IncidentBonds(atom) {
		if bi == parentBond || e.kinds[bi] != edgeUnseen {
			continue
		}
		next := e.g.BondAt(bi).Other(atom)
		if e.visited[next] {
			e.kinds[bi] = edgeRing
			e.ringAt[next] = append(e.ringAt[next], bi)
			e.ringAt[atom] = append(e.ringAt[atom], bi)
			continue
		}
		e.kinds[bi] = edgeTree
		e.classify(next, bi)
	}
}

// emit performs the second pass: replay the traversal as visitor events.
func (e *emitter) emit(atom, parentBond int, v Visitor) {
	v.VisitAtom(e.g.AtomAt(atom), e.g.HydrogenCount(atom))

	for _, bi := range e.ringAt[atom] {
		order := e.g.BondAt(bi).Order
		if n, open := e.ringNumber[bi]; open {
			v.VisitRingBond(order, n)
			delete(e.ringNumber, bi)
			e.inUse[n-1] = false
		} else {
			n := e.allocateRing()
			e.ringNumber[bi] = n
			v.VisitRingBond(order, n)
		}
	}

	var children []int
	for _, bi := range e.g.IncidentBonds(atom) {
		if bi != parentBond && e.kinds[bi] == edgeTree {
			children = append(children, bi)
		}
	}
	for i, bi := range children {
		last := i == len(children)-1
		if !last {
			v.OpenBranch()
		}
		v.VisitBond(e.g.BondAt(bi).Order)
		e.emit(e.g.BondAt(bi).Other(atom), bi, v)
		if !last {
			v.CloseBranch()
		}
	}
}

// allocateRing returns the smallest closure number not currently open.
func (e *emitter) allocateRing() int {
	for i, used := range e.inUse {
		if !used {
			e.inUse[i] = true
			return i + 1
		}
	}
	e.inUse = append(e.inUse, true)
	return len(e.inUse)
}
