package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newResiduesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "residues",
		Short: "List the residue catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := a.svc.Residues(cmd.Context())
			out := cmd.OutOrStdout()

			if a.output == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tCODE3\tNAME\tATOMS\tANCHORS")
			for _, info := range infos {
				code1 := info.Code1
				if code1 == "" {
					code1 = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					code1, info.Code3, info.Name, info.HeavyAtoms,
					strings.Join(info.Anchors, ","))
			}
			return w.Flush()
		},
	}
}
