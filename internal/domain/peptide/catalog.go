package peptide

import (
	"github.com/peptilab/peptigraph/pkg/errors"
	"github.com/peptilab/peptigraph/pkg/types/chem"
)

// AnchorRole names a bondable position on an instantiated residue fragment.
type AnchorRole string

const (
	// AnchorNTerm is the backbone amine nitrogen.
	AnchorNTerm AnchorRole = "n-term"
	// AnchorCTerm is the backbone carbonyl carbon.
	AnchorCTerm AnchorRole = "c-term"
	// AnchorSideChain is the residue-specific reactive side-chain atom.
	AnchorSideChain AnchorRole = "side-chain"
)

// IsValid reports whether r is a declared anchor role.
func (r AnchorRole) IsValid() bool {
	switch r {
	case AnchorNTerm, AnchorCTerm, AnchorSideChain:
		return true
	}
	return false
}

// TemplateAtom describes one atom of a fragment template.
type TemplateAtom struct {
	Element   chem.Element
	Chirality chem.Chirality
	Charge    int
}

// TemplateBond is an edge between template atom indices.  Aromatic orders
// mark ring bonds pending kekulization.
type TemplateBond struct {
	A, B  int
	Order chem.BondOrder
}

// RingSpec declares one aromatic ring of a template.
type RingSpec struct {
	// Cycle lists the ring's atom indices in traversal order; consecutive
	// entries (and last-to-first) are bonded.  The kekulizer seeds its walk
	// on the Cycle[0]-Cycle[1] edge, which fixes the assignment.
	Cycle []int

	// Pyrrolic flags ring atoms whose lone pair completes the sextet, so
	// they take no ring double bond (the indole and imidazole NH nitrogens).
	Pyrrolic []int
}

// FragmentTemplate is the immutable blueprint of one residue: its heavy
// atoms, internal bonds, anchor positions, and aromatic rings.  Atom indices
// 0-3 are the shared backbone (N, CA, C, carbonyl O); side-chain atoms start
// at index 4.
type FragmentTemplate struct {
	Identity ResidueIdentity
	Name     string
	Atoms    []TemplateAtom
	Bonds    []TemplateBond
	Anchors  map[AnchorRole]int
	Rings    []RingSpec
}

// HeavyAtomCount returns the number of heavy atoms in the fragment.
func (t *FragmentTemplate) HeavyAtomCount() int { return len(t.Atoms) }

// ─────────────────────────────────────────────────────────────────────────────
// Catalog construction
// ─────────────────────────────────────────────────────────────────────────────

func atC() TemplateAtom  { return TemplateAtom{Element: chem.Carbon} }
func atN() TemplateAtom  { return TemplateAtom{Element: chem.Nitrogen} }
func atO() TemplateAtom  { return TemplateAtom{Element: chem.Oxygen} }
func atS() TemplateAtom  { return TemplateAtom{Element: chem.Sulfur} }
func atSe() TemplateAtom { return TemplateAtom{Element: chem.Selenium} }

func atCStereo(c chem.Chirality) TemplateAtom {
	return TemplateAtom{Element: chem.Carbon, Chirality: c}
}

func single(a, b int) TemplateBond   { return TemplateBond{A: a, B: b, Order: chem.OrderSingle} }
func double(a, b int) TemplateBond   { return TemplateBond{A: a, B: b, Order: chem.OrderDouble} }
func aromatic(a, b int) TemplateBond { return TemplateBond{A: a, B: b, Order: chem.OrderAromatic} }

// template assembles a full entry around the shared backbone.  The bond list
// is built in emission walk order: N-CA first, then the side chain, then
// CA-C and C=O, so a depth-first traversal leaves the carboxyl for last.
func template(id ResidueIdentity, name string, ca chem.Chirality,
	side []TemplateAtom, sideBonds []TemplateBond,
	sideAnchor int, rings ...RingSpec) FragmentTemplate {

	atoms := make([]TemplateAtom, 0, 4+len(side))
	atoms = append(atoms, atN(), atCStereo(ca), atC(), atO())
	atoms = append(atoms, side...)

	bonds := make([]TemplateBond, 0, 3+len(sideBonds))
	bonds = append(bonds, single(0, 1))
	bonds = append(bonds, sideBonds...)
	bonds = append(bonds, single(1, 2), double(2, 3))

	anchors := map[AnchorRole]int{
		AnchorNTerm: 0,
		AnchorCTerm: 2,
	}
	if sideAnchor >= 0 {
		anchors[AnchorSideChain] = sideAnchor
	}

	return FragmentTemplate{
		Identity: id,
		Name:     name,
		Atoms:    atoms,
		Bonds:    bonds,
		Anchors:  anchors,
		Rings:    rings,
	}
}

// noAnchor marks templates without a side-chain anchor.
const noAnchor = -1

// lChiral is the CA stereo tag of an L-amino acid with the side chain
// emitted before the carboxyl.  The proline family uses the same tag: the
// pyrrolidine ring digit lands on N and CD, so CA sees the same neighbor
// order as the open-chain residues.
const lChiral = chem.ChiralityCW

var catalog map[ResidueIdentity]*FragmentTemplate

func init() {
	entries := []FragmentTemplate{
		template(Glycine, "Glycine", chem.ChiralityNone, nil, nil, noAnchor),

		template(Alanine, "Alanine", lChiral,
			[]TemplateAtom{atC()},
			[]TemplateBond{single(1, 4)},
			noAnchor),

		template(Valine, "Valine", lChiral,
			[]TemplateAtom{atC(), atC(), atC()},
			[]TemplateBond{single(1, 4), single(4, 5), single(4, 6)},
			noAnchor),

		template(Leucine, "Leucine", lChiral,
			[]TemplateAtom{atC(), atC(), atC(), atC()},
			[]TemplateBond{single(1, 4), single(4, 5), single(5, 6), single(5, 7)},
			noAnchor),

		template(Isoleucine, "Isoleucine", lChiral,
			[]TemplateAtom{atCStereo(chem.ChiralityCW), atC(), atC(), atC()},
			[]TemplateBond{single(1, 4), single(4, 5), single(4, 6), single(6, 7)},
			noAnchor),

		template(Methionine, "Methionine", lChiral,
			[]TemplateAtom{atC(), atC(), atS(), atC()},
			[]TemplateBond{single(1, 4), single(4, 5), single(5, 6), single(6, 7)},
			noAnchor),

		template(Proline, "Proline", lChiral,
			[]TemplateAtom{atC(), atC(), atC()},
			[]TemplateBond{single(1, 4), single(4, 5), single(5, 6), single(6, 0)},
			noAnchor),

		template(Phenylalanine, "Phenylalanine", lChiral,
			[]TemplateAtom{atC(), atC(), atC(), atC(), atC(), atC(), atC()},
			[]TemplateBond{
				single(1, 4), single(4, 5),
				aromatic(5, 6), aromatic(6, 7), aromatic(7, 8),
				aromatic(8, 9), aromatic(9, 10), aromatic(10, 5),
			},
			noAnchor,
			RingSpec{Cycle: []int{5, 6, 7, 8, 9, 10}}),

		template(Tyrosine, "Tyrosine", lChiral,
			[]TemplateAtom{atC(), atC(), atC(), atC(), atC(), atC(), atC(), atO()},
			[]TemplateBond{
				single(1, 4), single(4, 5),
				aromatic(5, 6), aromatic(6, 7), aromatic(7, 8),
				aromatic(8, 9), aromatic(9, 10), aromatic(10, 5),
				single(8, 11),
			},
			11,
			RingSpec{Cycle: []int{5, 6, 7, 8, 9, 10}}),

		template(Tryptophan, "Tryptophan", lChiral,
			[]TemplateAtom{
				atC(), atC(), atC(), atN(), atC(),
				atC(), atC(), atC(), atC(), atC(),
			},
			[]TemplateBond{
				single(1, 4), single(4, 5),
				aromatic(5, 6), aromatic(6, 7), aromatic(7, 8),
				aromatic(8, 9), aromatic(9, 5),
				aromatic(9, 10), aromatic(10, 11), aromatic(11, 12),
				aromatic(12, 13), aromatic(13, 8),
			},
			noAnchor,
			RingSpec{Cycle: []int{5, 6, 7, 8, 9}, Pyrrolic: []int{7}},
			RingSpec{Cycle: []int{9, 10, 11, 12, 13, 8}}),

		template(Histidine, "Histidine", lChiral,
			[]TemplateAtom{atC(), atC(), atN(), atC(), atN(), atC()},
			[]TemplateBond{
				single(1, 4), single(4, 5),
				aromatic(5, 6), aromatic(6, 7), aromatic(7, 8),
				aromatic(8, 9), aromatic(9, 5),
			},
			noAnchor,
			RingSpec{Cycle: []int{6, 7, 8, 9, 5}, Pyrrolic: []int{8}}),

		template(Serine, "Serine", lChiral,
			[]TemplateAtom{atC(), atO()},
			[]TemplateBond{single(1, 4), single(4, 5)},
			5),

		// CB's methyl is bonded before the hydroxyl so the CW tag at CB
		// denotes the (2S,3R) diastereomer.
		template(Threonine, "Threonine", lChiral,
			[]TemplateAtom{atCStereo(chem.ChiralityCW), atO(), atC()},
			[]TemplateBond{single(1, 4), single(4, 6), single(4, 5)},
			5),

		template(Cysteine, "Cysteine", lChiral,
			[]TemplateAtom{atC(), atS()},
			[]TemplateBond{single(1, 4), single(4, 5)},
			5),

		template(Selenocysteine, "Selenocysteine", lChiral,
			[]TemplateAtom{atC(), atSe()},
			[]TemplateBond{single(1, 4), single(4, 5)},
			5),

		template(Asparagine, "Asparagine", lChiral,
			[]TemplateAtom{atC(), atC(), atO(), atN()},
			[]TemplateBond{single(1, 4), single(4, 5), double(5, 6), single(5, 7)},
			noAnchor),

		template(Glutamine, "Glutamine", lChiral,
			[]TemplateAtom{atC(), atC(), atC(), atO(), atN()},
			[]TemplateBond{single(1, 4), single(4, 5), single(5, 6), double(6, 7), single(6, 8)},
			noAnchor),

		template(AsparticAcid, "Aspartic acid", lChiral,
			[]TemplateAtom{atC(), atC(), atO(), atO()},
			[]TemplateBond{single(1, 4), single(4, 5), double(5, 6), single(5, 7)},
			7),

		template(GlutamicAcid, "Glutamic acid", lChiral,
			[]TemplateAtom{atC(), atC(), atC(), atO(), atO()},
			[]TemplateBond{single(1, 4), single(4, 5), single(5, 6), double(6, 7), single(6, 8)},
			8),

		template(Lysine, "Lysine", lChiral,
			[]TemplateAtom{atC(), atC(), atC(), atC(), atN()},
			[]TemplateBond{single(1, 4), single(4, 5), single(5, 6), single(6, 7), single(7, 8)},
			8),

		template(Arginine, "Arginine", lChiral,
			[]TemplateAtom{atC(), atC(), atC(), atN(), atC(), atN(), atN()},
			[]TemplateBond{
				single(1, 4), single(4, 5), single(5, 6), single(6, 7),
				single(7, 8), double(8, 9), single(8, 10),
			},
			noAnchor),

		template(Pyrrolysine, "Pyrrolysine", lChiral,
			[]TemplateAtom{
				atC(), atC(), atC(), atC(), atN(),
				atC(), atO(),
				atCStereo(chem.ChiralityCCW), atCStereo(chem.ChiralityCCW),
				atC(), atC(), atC(), atN(),
			},
			[]TemplateBond{
				single(1, 4), single(4, 5), single(5, 6), single(6, 7), single(7, 8),
				single(8, 9), double(9, 10),
				single(9, 11), single(11, 12), single(12, 13),
				single(12, 14), single(14, 15), double(15, 16), single(16, 11),
			},
			noAnchor),

		template(Dehydroalanine, "Dehydroalanine", chem.ChiralityNone,
			[]TemplateAtom{atC()},
			[]TemplateBond{double(1, 4)},
			4),

		template(Dehydrobutyrine, "Dehydrobutyrine", chem.ChiralityNone,
			[]TemplateAtom{atC(), atC()},
			[]TemplateBond{double(1, 4), single(4, 5)},
			noAnchor),

		template(AminoisobutyricAcid, "2-Aminoisobutyric acid", chem.ChiralityNone,
			[]TemplateAtom{atC(), atC()},
			[]TemplateBond{single(1, 4), single(1, 5)},
			noAnchor),

		template(Ornithine, "Ornithine", lChiral,
			[]TemplateAtom{atC(), atC(), atC(), atN()},
			[]TemplateBond{single(1, 4), single(4, 5), single(5, 6), single(6, 7)},
			7),

		// trans-4-hydroxy-L-proline, (2S,4R).
		template(Hydroxyproline, "4-Hydroxyproline", lChiral,
			[]TemplateAtom{atC(), atCStereo(chem.ChiralityCCW), atC(), atO()},
			[]TemplateBond{single(1, 4), single(4, 5), single(5, 6), single(6, 0), single(5, 7)},
			7),
	}

	catalog = make(map[ResidueIdentity]*FragmentTemplate, len(entries))
	for i := range entries {
		e := &entries[i]
		if err := validateTemplate(e); err != nil {
			panic(err)
		}
		catalog[e.Identity] = e
	}
}

// validateTemplate checks a template's internal consistency at startup.
// A failure here is programmer error in the catalog tables.
func validateTemplate(t *FragmentTemplate) error {
	n := len(t.Atoms)
	for _, b := range t.Bonds {
		if b.A < 0 || b.A >= n || b.B < 0 || b.B >= n || b.A == b.B {
			return errors.Newf(errors.ErrCodeMalformedTemplate,
				"%s: bond %d-%d out of range", t.Name, b.A, b.B)
		}
	}
	for role, idx := range t.Anchors {
		if idx < 0 || idx >= n {
			return errors.Newf(errors.ErrCodeMalformedTemplate,
				"%s: anchor %s points at atom %d of %d", t.Name, role, idx, n)
		}
	}
	for _, ring := range t.Rings {
		if len(ring.Cycle) < 3 {
			return errors.Newf(errors.ErrCodeMalformedTemplate,
				"%s: ring cycle shorter than 3", t.Name)
		}
		for i, a := range ring.Cycle {
			b := ring.Cycle[(i+1)%len(ring.Cycle)]
			if !templateHasBond(t, a, b) {
				return errors.Newf(errors.ErrCodeMalformedTemplate,
					"%s: ring cycle edge %d-%d has no bond", t.Name, a, b)
			}
		}
	}
	return nil
}

func templateHasBond(t *FragmentTemplate, a, b int) bool {
	for _, bd := range t.Bonds {
		if (bd.A == a && bd.B == b) || (bd.A == b && bd.B == a) {
			return true
		}
	}
	return false
}

// Template resolves an identity to its catalog entry.
func Template(id ResidueIdentity) (*FragmentTemplate, error) {
	if t, ok := catalog[id]; ok {
		return t, nil
	}
	return nil, errors.New(errors.ErrCodeUnknownResidue, "identity has no catalog entry").
		WithDetail(id.String())
}
