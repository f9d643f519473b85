package peptide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peptilab/peptigraph/pkg/errors"
	"github.com/peptilab/peptigraph/pkg/types/chem"
)

func mustSequence(t *testing.T, codes string) []ResidueIdentity {
	t.Helper()
	seq := make([]ResidueIdentity, 0, len(codes))
	for _, c := range codes {
		id, err := FromCode1(string(c))
		require.NoError(t, err)
		seq = append(seq, id)
	}
	return seq
}

func TestBuild_EmptySequence(t *testing.T) {
	_, err := Build(BuildSpec{})
	assert.True(t, errors.IsCode(err, errors.ErrCodeEmptySequence))
}

func TestBuild_SingleGlycine(t *testing.T) {
	g, err := Build(BuildSpec{Sequence: mustSequence(t, "G")})
	require.NoError(t, err)

	// 4 template atoms + 1 cap oxygen, 3 template bonds + 1 cap bond.
	assert.Equal(t, 5, g.AtomCount())
	assert.Equal(t, 4, g.BondCount())

	// Cap oxygen is the last atom, single-bonded to the carbonyl carbon.
	cap := g.AtomCount() - 1
	assert.Equal(t, chem.Oxygen, g.AtomAt(cap).Element)
	bi := g.BondBetween(2, cap)
	require.GreaterOrEqual(t, bi, 0)
	assert.Equal(t, chem.OrderSingle, g.BondAt(bi).Order)
}

func TestBuild_AtomCountLaw(t *testing.T) {
	// Linear build: sum of template atoms plus one cap oxygen.
	for _, tc := range []struct {
		codes string
		atoms int
	}{
		{"G", 4 + 1},
		{"GG", 8 + 1},
		{"AW", 5 + 14 + 1},
		{"KGILQADFSWHP", 9 + 4 + 8 + 8 + 9 + 5 + 8 + 11 + 6 + 14 + 10 + 7 + 1},
	} {
		g, err := Build(BuildSpec{Sequence: mustSequence(t, tc.codes)})
		require.NoError(t, err, tc.codes)
		assert.Equal(t, tc.atoms, g.AtomCount(), tc.codes)
	}
}

func TestBuild_LongSequence(t *testing.T) {
	// 34-residue antimicrobial-peptide-sized chain touching most of the
	// standard catalog, including every aromatic residue and proline.
	const codes = "KGILGKLGVVQAGVDFVSGVWAGIKQSAKDHPNA"
	counts := map[byte]int{
		'G': 4, 'A': 5, 'V': 7, 'L': 8, 'I': 8, 'P': 7, 'F': 11,
		'W': 14, 'H': 10, 'S': 6, 'N': 8, 'Q': 9, 'D': 8, 'K': 9,
	}
	want := 1 // cap oxygen
	for i := 0; i < len(codes); i++ {
		n, ok := counts[codes[i]]
		require.True(t, ok, "residue %c", codes[i])
		want += n
	}

	g, err := Build(BuildSpec{Sequence: mustSequence(t, codes)})
	require.NoError(t, err)
	assert.Equal(t, want, g.AtomCount())
	assert.Equal(t, 244, g.AtomCount())

	// The whole chain emits cleanly: rings kekulized, graph connected.
	rec := &recorder{}
	require.NoError(t, Emit(g, rec))
	assert.NotEmpty(t, rec.events)
}

func TestBuild_BackboneBondCount(t *testing.T) {
	g, err := Build(BuildSpec{Sequence: mustSequence(t, "GGG")})
	require.NoError(t, err)
	// 3 residues x 3 template bonds + 2 amide bonds + 1 cap bond.
	assert.Equal(t, 12, g.BondCount())
	assert.Equal(t, 13, g.AtomCount())
}

func TestBuild_ImplicitHydrogens(t *testing.T) {
	g, err := Build(BuildSpec{Sequence: mustSequence(t, "G")})
	require.NoError(t, err)

	// H2N-CH2-C(=O)-OH: N has 2, CA has 2, C has 0, both oxygens 0 and 1.
	assert.Equal(t, 2, g.HydrogenCount(0))
	assert.Equal(t, 2, g.HydrogenCount(1))
	assert.Equal(t, 0, g.HydrogenCount(2))
	assert.Equal(t, 0, g.HydrogenCount(3))
	assert.Equal(t, 1, g.HydrogenCount(4))
}

func TestBuild_CyclicDipeptide(t *testing.T) {
	g, err := Build(BuildSpec{Sequence: mustSequence(t, "GG"), Cyclic: true})
	require.NoError(t, err)

	// No cap oxygen; closure bond instead.
	assert.Equal(t, 8, g.AtomCount())
	assert.Equal(t, 8, g.BondCount())

	// Head nitrogen is a secondary amide now.
	assert.Equal(t, 1, g.HydrogenCount(0))
}

func TestBuild_CyclizeSingleResidue(t *testing.T) {
	_, err := Build(BuildSpec{Sequence: mustSequence(t, "G"), Cyclic: true})
	assert.True(t, errors.IsCode(err, errors.ErrCodeCyclization))
}

func TestBuild_CrossLinkDisulfide(t *testing.T) {
	// Oxidized CC dipeptide: Cys1 SG - Cys2 SG.
	g, err := Build(BuildSpec{
		Sequence: mustSequence(t, "CC"),
		CrossLinks: []CrossLink{{
			PositionA: 1, AnchorA: AnchorSideChain,
			PositionB: 2, AnchorB: AnchorSideChain,
		}},
	})
	require.NoError(t, err)

	// Residue atoms 0-5 and 6-11, cap at 12; disulfide joins atoms 5 and 11.
	assert.Equal(t, 13, g.AtomCount())
	bi := g.BondBetween(5, 11)
	require.GreaterOrEqual(t, bi, 0)
	assert.Equal(t, chem.OrderSingle, g.BondAt(bi).Order)
	assert.Equal(t, 0, g.HydrogenCount(5))
	assert.Equal(t, 0, g.HydrogenCount(11))
}

func TestBuild_CrossLinkUnknownAnchor(t *testing.T) {
	_, err := Build(BuildSpec{
		Sequence: mustSequence(t, "GG"),
		CrossLinks: []CrossLink{{
			PositionA: 1, AnchorA: AnchorSideChain,
			PositionB: 2, AnchorB: AnchorSideChain,
		}},
	})
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnknownAnchor))
}

func TestBuild_CrossLinkPositionOutOfRange(t *testing.T) {
	for _, pos := range []int{0, 3, -1} {
		_, err := Build(BuildSpec{
			Sequence: mustSequence(t, "CC"),
			CrossLinks: []CrossLink{{
				PositionA: 1, AnchorA: AnchorSideChain,
				PositionB: pos, AnchorB: AnchorSideChain,
			}},
		})
		assert.True(t, errors.IsCode(err, errors.ErrCodeValidation), "position %d", pos)
	}
}

func TestBuild_AnchorDoubleConsumption(t *testing.T) {
	// Two links burning the same SG.
	_, err := Build(BuildSpec{
		Sequence: mustSequence(t, "CCC"),
		CrossLinks: []CrossLink{
			{PositionA: 1, AnchorA: AnchorSideChain, PositionB: 2, AnchorB: AnchorSideChain},
			{PositionA: 1, AnchorA: AnchorSideChain, PositionB: 3, AnchorB: AnchorSideChain},
		},
	})
	assert.True(t, errors.IsCode(err, errors.ErrCodeAnchorAlreadyUsed))
}

func TestBuild_CrossLinkOrderIndependence(t *testing.T) {
	links := []CrossLink{
		{PositionA: 1, AnchorA: AnchorSideChain, PositionB: 4, AnchorB: AnchorSideChain},
		{PositionA: 2, AnchorA: AnchorSideChain, PositionB: 5, AnchorB: AnchorSideChain},
	}
	flipped := []CrossLink{
		{PositionA: 5, AnchorA: AnchorSideChain, PositionB: 2, AnchorB: AnchorSideChain},
		links[0],
	}

	build := func(ls []CrossLink) *MolecularGraph {
		g, err := Build(BuildSpec{Sequence: mustSequence(t, "CCGCC"), CrossLinks: ls})
		require.NoError(t, err)
		return g
	}
	a, b := build(links), build(flipped)

	require.Equal(t, a.BondCount(), b.BondCount())
	for i := 0; i < a.BondCount(); i++ {
		assert.Equal(t, a.BondAt(i), b.BondAt(i), "bond %d", i)
	}
}

func TestBuild_CapSkippedWhenCTermCrossLinked(t *testing.T) {
	// Lys side-chain amine to the C-terminus: a side-chain lactam tail.
	g, err := Build(BuildSpec{
		Sequence: mustSequence(t, "KG"),
		CrossLinks: []CrossLink{{
			PositionA: 1, AnchorA: AnchorSideChain,
			PositionB: 2, AnchorB: AnchorCTerm,
		}},
	})
	require.NoError(t, err)

	// 9 + 4 atoms, no cap oxygen.
	assert.Equal(t, 13, g.AtomCount())
}

func TestBuild_CyclizeAfterCTermCrossLinkFails(t *testing.T) {
	_, err := Build(BuildSpec{
		Sequence: mustSequence(t, "KG"),
		Cyclic:   true,
		CrossLinks: []CrossLink{{
			PositionA: 1, AnchorA: AnchorSideChain,
			PositionB: 2, AnchorB: AnchorCTerm,
		}},
	})
	assert.True(t, errors.IsCode(err, errors.ErrCodeCyclization))
}

func TestBuild_SelfLinkRejected(t *testing.T) {
	_, err := Build(BuildSpec{
		Sequence: mustSequence(t, "C"),
		CrossLinks: []CrossLink{{
			PositionA: 1, AnchorA: AnchorSideChain,
			PositionB: 1, AnchorB: AnchorSideChain,
		}},
	})
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
}

func TestBuild_LanthionineBridge(t *testing.T) {
	// Cys SG to Dha CB thioether, the lanthipeptide motif.
	dha, err := FromCode3("Dha")
	require.NoError(t, err)
	cys, err := FromCode3("Cys")
	require.NoError(t, err)

	g, err := Build(BuildSpec{
		Sequence: []ResidueIdentity{cys, Glycine, dha},
		CrossLinks: []CrossLink{{
			PositionA: 1, AnchorA: AnchorSideChain,
			PositionB: 3, AnchorB: AnchorSideChain,
		}},
	})
	require.NoError(t, err)
	// Cys 6 + Gly 4 + Dha 5 + cap.
	assert.Equal(t, 16, g.AtomCount())
}
