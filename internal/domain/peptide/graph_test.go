package peptide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peptilab/peptigraph/pkg/errors"
	"github.com/peptilab/peptigraph/pkg/types/chem"
)

func TestGraph_AddAndQuery(t *testing.T) {
	g := NewGraph(4, 3)
	n := g.AddAtom(Atom{Element: chem.Nitrogen})
	ca := g.AddAtom(Atom{Element: chem.Carbon, Chirality: chem.ChiralityCW})
	c := g.AddAtom(Atom{Element: chem.Carbon})
	o := g.AddAtom(Atom{Element: chem.Oxygen})

	require.NoError(t, g.AddBond(n, ca, chem.OrderSingle))
	require.NoError(t, g.AddBond(ca, c, chem.OrderSingle))
	require.NoError(t, g.AddBond(c, o, chem.OrderDouble))

	assert.Equal(t, 4, g.AtomCount())
	assert.Equal(t, 3, g.BondCount())
	assert.Equal(t, chem.ChiralityCW, g.AtomAt(ca).Chirality)

	bi := g.BondBetween(c, o)
	require.GreaterOrEqual(t, bi, 0)
	assert.Equal(t, chem.OrderDouble, g.BondAt(bi).Order)
	assert.Equal(t, -1, g.BondBetween(n, o))
}

func TestGraph_AdjacencyInsertionOrder(t *testing.T) {
	g := NewGraph(4, 3)
	for i := 0; i < 4; i++ {
		g.AddAtom(Atom{Element: chem.Carbon})
	}
	require.NoError(t, g.AddBond(0, 2, chem.OrderSingle))
	require.NoError(t, g.AddBond(0, 1, chem.OrderSingle))
	require.NoError(t, g.AddBond(0, 3, chem.OrderSingle))

	// Incident bonds come back in the order they were added, not sorted
	// by neighbor index.
	var neighbors []int
	for _, bi := range g.IncidentBonds(0) {
		neighbors = append(neighbors, g.BondAt(bi).Other(0))
	}
	assert.Equal(t, []int{2, 1, 3}, neighbors)
}

func TestGraph_AddBondErrors(t *testing.T) {
	g := NewGraph(2, 1)
	g.AddAtom(Atom{Element: chem.Carbon})
	g.AddAtom(Atom{Element: chem.Carbon})

	assert.True(t, errors.IsCode(g.AddBond(0, 5, chem.OrderSingle), errors.ErrCodeMalformedTemplate))
	assert.True(t, errors.IsCode(g.AddBond(1, 1, chem.OrderSingle), errors.ErrCodeMalformedTemplate))
	assert.True(t, errors.IsCode(g.AddBond(0, 1, chem.BondOrder(7)), errors.ErrCodeMalformedTemplate))
}

func TestGraph_DegreeAndHydrogens(t *testing.T) {
	g := NewGraph(3, 2)
	c := g.AddAtom(Atom{Element: chem.Carbon})
	o := g.AddAtom(Atom{Element: chem.Oxygen})
	n := g.AddAtom(Atom{Element: chem.Nitrogen, Charge: 1})

	require.NoError(t, g.AddBond(c, o, chem.OrderDouble))
	require.NoError(t, g.AddBond(c, n, chem.OrderSingle))

	assert.Equal(t, 3, g.Degree(c))
	assert.Equal(t, 1, g.HydrogenCount(c))
	assert.Equal(t, 0, g.HydrogenCount(o))
	// Positive charge raises nitrogen's fill to 4.
	assert.Equal(t, 3, g.HydrogenCount(n))
}
