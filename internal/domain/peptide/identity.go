// Package peptide implements the peptide build engine: a catalog of residue
// fragment templates, a backbone assembler, cross-link resolution, optional
// head-to-tail cyclization, kekulization of template-flagged aromatic rings,
// and a deterministic visitor-based emitter over the finished molecular graph.
package peptide

import (
	"strings"

	"github.com/peptilab/peptigraph/pkg/errors"
)

// ResidueIdentity names one entry of the residue catalog.  The set is closed;
// every identity resolves to exactly one FragmentTemplate.
type ResidueIdentity int

const (
	identityInvalid ResidueIdentity = iota

	// The twenty standard proteinogenic amino acids.
	Alanine
	Arginine
	Asparagine
	AsparticAcid
	Cysteine
	GlutamicAcid
	Glutamine
	Glycine
	Histidine
	Isoleucine
	Leucine
	Lysine
	Methionine
	Phenylalanine
	Proline
	Serine
	Threonine
	Tryptophan
	Tyrosine
	Valine

	// The two extended-code translational residues.
	Selenocysteine
	Pyrrolysine

	// Modified residues occurring in ribosomally synthesized and
	// post-translationally modified peptides.
	Dehydroalanine
	Dehydrobutyrine
	AminoisobutyricAcid
	Ornithine
	Hydroxyproline

	identityCount
)

// code1ByIdentity holds the one-letter code for identities that have one.
// Modified residues have three-letter codes only.
var code1ByIdentity = map[ResidueIdentity]string{
	Alanine:        "A",
	Arginine:       "R",
	Asparagine:     "N",
	AsparticAcid:   "D",
	Cysteine:       "C",
	GlutamicAcid:   "E",
	Glutamine:      "Q",
	Glycine:        "G",
	Histidine:      "H",
	Isoleucine:     "I",
	Leucine:        "L",
	Lysine:         "K",
	Methionine:     "M",
	Phenylalanine:  "F",
	Proline:        "P",
	Serine:         "S",
	Threonine:      "T",
	Tryptophan:     "W",
	Tyrosine:       "Y",
	Valine:         "V",
	Selenocysteine: "U",
	Pyrrolysine:    "O",
}

var code3ByIdentity = map[ResidueIdentity]string{
	Alanine:             "Ala",
	Arginine:            "Arg",
	Asparagine:          "Asn",
	AsparticAcid:        "Asp",
	Cysteine:            "Cys",
	GlutamicAcid:        "Glu",
	Glutamine:           "Gln",
	Glycine:             "Gly",
	Histidine:           "His",
	Isoleucine:          "Ile",
	Leucine:             "Leu",
	Lysine:              "Lys",
	Methionine:          "Met",
	Phenylalanine:       "Phe",
	Proline:             "Pro",
	Serine:              "Ser",
	Threonine:           "Thr",
	Tryptophan:          "Trp",
	Tyrosine:            "Tyr",
	Valine:              "Val",
	Selenocysteine:      "Sec",
	Pyrrolysine:         "Pyl",
	Dehydroalanine:      "Dha",
	Dehydrobutyrine:     "Dhb",
	AminoisobutyricAcid: "Aib",
	Ornithine:           "Orn",
	Hydroxyproline:      "Hyp",
}

var identityByCode1 map[string]ResidueIdentity
var identityByCode3 map[string]ResidueIdentity

func init() {
	identityByCode1 = make(map[string]ResidueIdentity, len(code1ByIdentity))
	for id, c := range code1ByIdentity {
		identityByCode1[c] = id
	}
	identityByCode3 = make(map[string]ResidueIdentity, len(code3ByIdentity))
	for id, c := range code3ByIdentity {
		identityByCode3[strings.ToLower(c)] = id
	}
}

// IsValid reports whether the identity names a catalog entry.
func (r ResidueIdentity) IsValid() bool {
	return r > identityInvalid && r < identityCount
}

// Code1 returns the one-letter code, or "" for residues that have none.
func (r ResidueIdentity) Code1() string {
	return code1ByIdentity[r]
}

// Code3 returns the three-letter code, e.g. "Hyp".
func (r ResidueIdentity) Code3() string {
	return code3ByIdentity[r]
}

// String implements fmt.Stringer using the three-letter code.
func (r ResidueIdentity) String() string {
	if c, ok := code3ByIdentity[r]; ok {
		return c
	}
	return "???"
}

// FromCode1 resolves a one-letter residue code.  The lookup is
// case-sensitive; lowercase codes are not valid.
func FromCode1(code string) (ResidueIdentity, error) {
	if id, ok := identityByCode1[code]; ok {
		return id, nil
	}
	return identityInvalid, errors.New(errors.ErrCodeUnknownResidue, "unknown residue code").
		WithDetail("code=" + code)
}

// FromCode3 resolves a three-letter residue code, case-insensitively.
func FromCode3(code string) (ResidueIdentity, error) {
	if id, ok := identityByCode3[strings.ToLower(code)]; ok {
		return id, nil
	}
	return identityInvalid, errors.New(errors.ErrCodeUnknownResidue, "unknown residue code").
		WithDetail("code=" + code)
}

// Identities returns every catalog identity in declaration order.
func Identities() []ResidueIdentity {
	out := make([]ResidueIdentity, 0, identityCount-1)
	for id := identityInvalid + 1; id < identityCount; id++ {
		out = append(out, id)
	}
	return out
}
