package conversion

import (
	"strings"

	"github.com/peptilab/peptigraph/internal/domain/peptide"
	"github.com/peptilab/peptigraph/pkg/errors"
)

// DecodeSequence parses a sequence string into residue identities.  Two
// notations are accepted: dash-separated three-letter codes ("Gly-Ala-Hyp",
// case-insensitive) and plain one-letter codes ("GAW", uppercase).  The
// notation is chosen by the presence of a dash; modified residues have no
// one-letter code and require the three-letter form.
func DecodeSequence(raw string) ([]peptide.ResidueIdentity, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, errors.New(errors.ErrCodeEmptySequence, "sequence is empty")
	}

	if strings.Contains(trimmed, "-") {
		parts := strings.Split(trimmed, "-")
		out := make([]peptide.ResidueIdentity, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				return nil, errors.New(errors.ErrCodeValidation, "empty residue token in sequence")
			}
			id, err := peptide.FromCode3(p)
			if err != nil {
				return nil, err
			}
			out = append(out, id)
		}
		return out, nil
	}

	out := make([]peptide.ResidueIdentity, 0, len(trimmed))
	for _, r := range trimmed {
		id, err := peptide.FromCode1(string(r))
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
