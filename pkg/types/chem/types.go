// Package chem provides the chemistry-graph primitive types shared by every
// layer of peptigraph: element symbols, bond orders, and stereo tags.  These
// are plain closed types with no behavior beyond validation and lookup; all
// graph construction logic lives in internal/domain/peptide.
package chem

// ─────────────────────────────────────────────────────────────────────────────
// Element
// ─────────────────────────────────────────────────────────────────────────────

// Element identifies an atomic element.  Only the elements occurring in
// peptide fragments are modeled; the set is closed so that valence and mass
// lookups are total.
type Element int

const (
	Carbon Element = iota
	Nitrogen
	Oxygen
	Sulfur
	Selenium
)

var elementSymbols = [...]string{"C", "N", "O", "S", "Se"}

// Standard valences of the neutral elements in their common organic
// bonding states.  Implicit hydrogen counts are derived from these.
var elementValences = [...]int{4, 3, 2, 2, 2}

// Monoisotopic-free average atomic weights (g/mol), CIAAW 2021 rounded.
var elementWeights = [...]float64{12.011, 14.007, 15.999, 32.06, 78.971}

// hydrogenWeight is the average atomic weight of hydrogen, used when
// summing implicit hydrogens into a molecular weight.
const hydrogenWeight = 1.008

// Symbol returns the periodic-table symbol, e.g. "Se" for Selenium.
func (e Element) Symbol() string {
	if !e.IsValid() {
		return "?"
	}
	return elementSymbols[e]
}

// Valence returns the standard valence of the neutral element.
func (e Element) Valence() int {
	if !e.IsValid() {
		return 0
	}
	return elementValences[e]
}

// AtomicWeight returns the average atomic weight in g/mol.
func (e Element) AtomicWeight() float64 {
	if !e.IsValid() {
		return 0
	}
	return elementWeights[e]
}

// IsValid reports whether e is one of the declared elements.
func (e Element) IsValid() bool {
	return e >= Carbon && e <= Selenium
}

// InOrganicSubset reports whether the element may be written without
// brackets in SMILES when its implicit hydrogen count is the default.
func (e Element) InOrganicSubset() bool {
	switch e {
	case Carbon, Nitrogen, Oxygen, Sulfur:
		return true
	default:
		return false
	}
}

// HydrogenWeight returns the average atomic weight of hydrogen.
func HydrogenWeight() float64 { return hydrogenWeight }

// ─────────────────────────────────────────────────────────────────────────────
// BondOrder
// ─────────────────────────────────────────────────────────────────────────────

// BondOrder is the order of a covalent bond.  OrderAromatic marks a ring
// bond whose final single/double assignment is pending kekulization; no
// aromatic-pending bond may survive into an emitted graph.
type BondOrder int

const (
	OrderSingle BondOrder = 1
	OrderDouble BondOrder = 2
	OrderTriple BondOrder = 3

	// OrderAromatic is a placeholder order used between catalog
	// instantiation and kekulization.
	OrderAromatic BondOrder = 9
)

// Multiplicity returns the integer bond multiplicity used for valence
// accounting.  Aromatic-pending bonds count as single; they are always
// rewritten before valence is inspected.
func (o BondOrder) Multiplicity() int {
	if o == OrderAromatic {
		return 1
	}
	return int(o)
}

// IsValid reports whether o is a declared bond order.
func (o BondOrder) IsValid() bool {
	switch o {
	case OrderSingle, OrderDouble, OrderTriple, OrderAromatic:
		return true
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Chirality
// ─────────────────────────────────────────────────────────────────────────────

// Chirality is the tetrahedral stereo tag carried by an atom, declared by
// the residue template and passed through to the output notation untouched.
type Chirality int

const (
	ChiralityNone Chirality = iota
	// ChiralityCCW is anticlockwise tetrahedral order (SMILES "@", TH1).
	ChiralityCCW
	// ChiralityCW is clockwise tetrahedral order (SMILES "@@", TH2).
	ChiralityCW
)

// Mark returns the SMILES chirality mark ("", "@", or "@@").
func (c Chirality) Mark() string {
	switch c {
	case ChiralityCCW:
		return "@"
	case ChiralityCW:
		return "@@"
	default:
		return ""
	}
}
