package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/peptilab/peptigraph/internal/application/conversion"
)

// crossLinkFlagFormat documents the --cross-link value syntax.
const crossLinkFlagFormat = "POS:ROLE:POS:ROLE (e.g. 1:side-chain:4:side-chain)"

func newConvertCmd(a *app) *cobra.Command {
	var (
		cyclic    bool
		linkSpecs []string
	)

	cmd := &cobra.Command{
		Use:   "convert SEQUENCE",
		Short: "Convert a peptide sequence to SMILES",
		Long: `Convert a peptide sequence to SMILES.  The sequence is either plain
one-letter codes ("GAW") or dash-separated three-letter codes
("Gly-Ala-Hyp"); the latter form is required for modified residues.`,
		Example: `  peptigraph convert GAW
  peptigraph convert Ala-Dha-Gly-Cys --cross-link 2:side-chain:4:side-chain
  peptigraph convert GLPG --cyclic -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			links, err := parseCrossLinks(linkSpecs)
			if err != nil {
				return err
			}

			res, err := a.svc.Convert(cmd.Context(), conversion.ConvertInput{
				Sequence:   args[0],
				CrossLinks: links,
				Cyclic:     cyclic,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.output == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			fmt.Fprintf(out, "SMILES:    %s\n", res.SMILES)
			fmt.Fprintf(out, "Formula:   %s\n", res.Formula)
			fmt.Fprintf(out, "Weight:    %.2f g/mol\n", res.MolecularWeight)
			fmt.Fprintf(out, "Residues:  %d\n", res.Residues)
			fmt.Fprintf(out, "Atoms:     %d heavy, %d bonds\n", res.AtomCount, res.BondCount)
			return nil
		},
	}

	cmd.Flags().BoolVar(&cyclic, "cyclic", false, "close the backbone head-to-tail")
	cmd.Flags().StringArrayVar(&linkSpecs, "cross-link", nil,
		"declare a cross-link, "+crossLinkFlagFormat+"; repeatable")
	return cmd
}

// parseCrossLinks parses the --cross-link flag values.
func parseCrossLinks(specs []string) ([]conversion.CrossLinkInput, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make([]conversion.CrossLinkInput, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) != 4 {
			return nil, fmt.Errorf("cross-link %q: want %s", spec, crossLinkFlagFormat)
		}
		posA, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("cross-link %q: position %q is not a number", spec, parts[0])
		}
		posB, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("cross-link %q: position %q is not a number", spec, parts[2])
		}
		out = append(out, conversion.CrossLinkInput{
			PositionA: posA, AnchorA: parts[1],
			PositionB: posB, AnchorB: parts[3],
		})
	}
	return out, nil
}
