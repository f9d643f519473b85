package conversion

import (
	"fmt"
	"sort"
	"strings"

	"github.com/peptilab/peptigraph/internal/domain/peptide"
	"github.com/peptilab/peptigraph/pkg/types/chem"
)

// Formula derives the Hill-order molecular formula and the average molecular
// weight of a graph, implicit hydrogens included.
func Formula(g *peptide.MolecularGraph) (string, float64) {
	counts := map[chem.Element]int{}
	hydrogens := 0
	weight := 0.0

	for i := 0; i < g.AtomCount(); i++ {
		a := g.AtomAt(i)
		counts[a.Element]++
		h := g.HydrogenCount(i)
		hydrogens += h
		weight += a.Element.AtomicWeight() + float64(h)*chem.HydrogenWeight()
	}

	var sb strings.Builder
	appendElem := func(symbol string, n int) {
		if n == 0 {
			return
		}
		sb.WriteString(symbol)
		if n > 1 {
			fmt.Fprintf(&sb, "%d", n)
		}
	}

	// Hill order: carbon, hydrogen, then the rest alphabetically.
	appendElem("C", counts[chem.Carbon])
	appendElem("H", hydrogens)

	rest := make([]chem.Element, 0, len(counts))
	for e := range counts {
		if e != chem.Carbon {
			rest = append(rest, e)
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		return rest[i].Symbol() < rest[j].Symbol()
	})
	for _, e := range rest {
		appendElem(e.Symbol(), counts[e])
	}

	return sb.String(), weight
}
