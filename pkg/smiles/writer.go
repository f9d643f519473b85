// Package smiles renders peptide build event streams as SMILES strings.
// The writer is one Visitor implementation among possibly many; it owns all
// notation concerns (bracket atoms, bond symbols, ring-closure digits) and
// knows nothing about how the graph was assembled.
package smiles

import (
	"fmt"
	"strings"

	"github.com/peptilab/peptigraph/internal/domain/peptide"
	"github.com/peptilab/peptigraph/pkg/types/chem"
)

// Writer accumulates visitor events into a SMILES string.  The zero value
// is ready to use; String returns the notation built so far.
type Writer struct {
	sb strings.Builder
}

// NewWriter returns an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// String returns the SMILES accumulated so far.
func (w *Writer) String() string {
	return w.sb.String()
}

// VisitAtom writes the atom, bracketed when it carries stereo, charge, or an
// element outside the organic subset.  Bare organic-subset symbols leave the
// hydrogen count implicit.
func (w *Writer) VisitAtom(a peptide.Atom, hydrogens int) {
	needsBracket := a.Chirality != chem.ChiralityNone ||
		a.Charge != 0 ||
		!a.Element.InOrganicSubset()
	if !needsBracket {
		w.sb.WriteString(a.Element.Symbol())
		return
	}

	w.sb.WriteByte('[')
	w.sb.WriteString(a.Element.Symbol())
	w.sb.WriteString(a.Chirality.Mark())
	switch {
	case hydrogens == 1:
		w.sb.WriteByte('H')
	case hydrogens > 1:
		fmt.Fprintf(&w.sb, "H%d", hydrogens)
	}
	switch {
	case a.Charge > 0:
		w.sb.WriteByte('+')
		if a.Charge > 1 {
			fmt.Fprintf(&w.sb, "%d", a.Charge)
		}
	case a.Charge < 0:
		w.sb.WriteByte('-')
		if a.Charge < -1 {
			fmt.Fprintf(&w.sb, "%d", -a.Charge)
		}
	}
	w.sb.WriteByte(']')
}

// VisitBond writes the symbol of the bond leading to the next atom.  Single
// bonds are implicit.
func (w *Writer) VisitBond(order chem.BondOrder) {
	w.sb.WriteString(bondSymbol(order))
}

// VisitRingBond writes a ring-closure number, prefixed by the bond symbol
// when the closing bond is not single.  Numbers above 9 use the %nn form.
func (w *Writer) VisitRingBond(order chem.BondOrder, ring int) {
	w.sb.WriteString(bondSymbol(order))
	if ring > 9 {
		fmt.Fprintf(&w.sb, "%%%d", ring)
		return
	}
	fmt.Fprintf(&w.sb, "%d", ring)
}

// OpenBranch writes "(".
func (w *Writer) OpenBranch() {
	w.sb.WriteByte('(')
}

// CloseBranch writes ")".
func (w *Writer) CloseBranch() {
	w.sb.WriteByte(')')
}

func bondSymbol(order chem.BondOrder) string {
	switch order {
	case chem.OrderDouble:
		return "="
	case chem.OrderTriple:
		return "#"
	default:
		return ""
	}
}

// Write builds the SMILES string for an already-assembled graph.
func Write(g *peptide.MolecularGraph) (string, error) {
	w := NewWriter()
	if err := peptide.Emit(g, w); err != nil {
		return "", err
	}
	return w.String(), nil
}
