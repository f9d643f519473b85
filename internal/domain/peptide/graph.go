package peptide

import (
	"github.com/peptilab/peptigraph/pkg/errors"
	"github.com/peptilab/peptigraph/pkg/types/chem"
)

// Atom is one heavy atom of a molecular graph.  Hydrogens are implicit and
// derived from valence; see MolecularGraph.HydrogenCount.
type Atom struct {
	Element   chem.Element
	Charge    int
	Chirality chem.Chirality
}

// Bond is an undirected edge between two atoms, identified by their indices
// in the owning graph.
type Bond struct {
	A, B  int
	Order chem.BondOrder
}

// Other returns the endpoint opposite to atom index i.
func (b Bond) Other(i int) int {
	if b.A == i {
		return b.B
	}
	return b.A
}

// MolecularGraph is a mutable heavy-atom graph.  Atom and bond indices are
// assigned in insertion order and never change; per-atom adjacency lists
// record incident bonds in the order they were added, which is what makes
// the emitter's traversal deterministic.
type MolecularGraph struct {
	atoms     []Atom
	bonds     []Bond
	adjacency [][]int // per-atom indices into bonds, insertion order
}

// NewGraph returns an empty graph with capacity hints.
func NewGraph(atomHint, bondHint int) *MolecularGraph {
	return &MolecularGraph{
		atoms:     make([]Atom, 0, atomHint),
		bonds:     make([]Bond, 0, bondHint),
		adjacency: make([][]int, 0, atomHint),
	}
}

// AddAtom appends an atom and returns its index.
func (g *MolecularGraph) AddAtom(a Atom) int {
	g.atoms = append(g.atoms, a)
	g.adjacency = append(g.adjacency, nil)
	return len(g.atoms) - 1
}

// AddBond appends a bond between existing atoms a and b.
func (g *MolecularGraph) AddBond(a, b int, order chem.BondOrder) error {
	if a < 0 || a >= len(g.atoms) || b < 0 || b >= len(g.atoms) {
		return errors.Newf(errors.ErrCodeMalformedTemplate,
			"bond endpoint out of range: %d-%d with %d atoms", a, b, len(g.atoms))
	}
	if a == b {
		return errors.Newf(errors.ErrCodeMalformedTemplate, "self bond on atom %d", a)
	}
	if !order.IsValid() {
		return errors.Newf(errors.ErrCodeMalformedTemplate, "invalid bond order %d", order)
	}
	idx := len(g.bonds)
	g.bonds = append(g.bonds, Bond{A: a, B: b, Order: order})
	g.adjacency[a] = append(g.adjacency[a], idx)
	g.adjacency[b] = append(g.adjacency[b], idx)
	return nil
}

// AtomCount returns the number of heavy atoms.
func (g *MolecularGraph) AtomCount() int { return len(g.atoms) }

// BondCount returns the number of bonds.
func (g *MolecularGraph) BondCount() int { return len(g.bonds) }

// AtomAt returns the atom at index i.
func (g *MolecularGraph) AtomAt(i int) Atom { return g.atoms[i] }

// BondAt returns the bond at index i.
func (g *MolecularGraph) BondAt(i int) Bond { return g.bonds[i] }

// IncidentBonds returns the indices of bonds touching atom i, in the order
// the bonds were added.  The returned slice is owned by the graph.
func (g *MolecularGraph) IncidentBonds(i int) []int {
	return g.adjacency[i]
}

// BondBetween returns the index of the bond joining a and b, or -1.
func (g *MolecularGraph) BondBetween(a, b int) int {
	for _, bi := range g.adjacency[a] {
		if g.bonds[bi].Other(a) == b {
			return bi
		}
	}
	return -1
}

// SetBondOrder rewrites the order of bond i.  Used by the kekulizer to
// replace aromatic-pending orders with their final assignment.
func (g *MolecularGraph) SetBondOrder(i int, order chem.BondOrder) {
	g.bonds[i].Order = order
}

// Degree returns the sum of bond multiplicities incident on atom i.
func (g *MolecularGraph) Degree(i int) int {
	total := 0
	for _, bi := range g.adjacency[i] {
		total += g.bonds[bi].Order.Multiplicity()
	}
	return total
}

// HydrogenCount returns the implicit hydrogen count of atom i: the atom's
// standard valence adjusted by formal charge, minus the bond multiplicities
// already consumed, floored at zero.
func (g *MolecularGraph) HydrogenCount(i int) int {
	a := g.atoms[i]
	h := a.Element.Valence() + a.Charge - g.Degree(i)
	if h < 0 {
		return 0
	}
	return h
}
