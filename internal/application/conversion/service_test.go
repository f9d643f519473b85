package conversion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peptilab/peptigraph/internal/config"
	"github.com/peptilab/peptigraph/internal/domain/peptide"
	"github.com/peptilab/peptigraph/internal/infrastructure/monitoring/logging"
	"github.com/peptilab/peptigraph/internal/infrastructure/monitoring/prometheus"
	"github.com/peptilab/peptigraph/pkg/errors"
)

func newTestService() *Service {
	return New(config.ConvertConfig{MaxSequenceLength: 100, MaxCrossLinks: 8}, logging.NewNop(), prometheus.New())
}

func TestConvert_Glycine(t *testing.T) {
	res, err := newTestService().Convert(context.Background(), ConvertInput{Sequence: "G"})
	require.NoError(t, err)

	assert.False(t, res.ID.IsZero())
	assert.Equal(t, "NCC(=O)O", res.SMILES)
	assert.Equal(t, "C2H5NO2", res.Formula)
	assert.InDelta(t, 75.07, res.MolecularWeight, 0.01)
	assert.Equal(t, 5, res.AtomCount)
	assert.Equal(t, 4, res.BondCount)
	assert.Equal(t, 1, res.Residues)
}

func TestConvert_ThreeLetterEqualsOneLetter(t *testing.T) {
	svc := newTestService()
	a, err := svc.Convert(context.Background(), ConvertInput{Sequence: "GAW"})
	require.NoError(t, err)
	b, err := svc.Convert(context.Background(), ConvertInput{Sequence: "Gly-Ala-Trp"})
	require.NoError(t, err)
	assert.Equal(t, a.SMILES, b.SMILES)
	assert.Equal(t, a.Formula, b.Formula)
}

func TestConvert_CyclicDipeptide(t *testing.T) {
	res, err := newTestService().Convert(context.Background(), ConvertInput{Sequence: "GG", Cyclic: true})
	require.NoError(t, err)
	assert.Equal(t, "N1CC(=O)NCC1=O", res.SMILES)
	assert.Equal(t, "C4H6N2O2", res.Formula)
	assert.InDelta(t, 114.10, res.MolecularWeight, 0.01)
}

func TestConvert_Disulfide(t *testing.T) {
	res, err := newTestService().Convert(context.Background(), ConvertInput{
		Sequence: "CC",
		CrossLinks: []CrossLinkInput{{
			PositionA: 1, AnchorA: "side-chain",
			PositionB: 2, AnchorB: "side-chain",
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, 13, res.AtomCount)
	assert.Contains(t, res.Formula, "S2")
}

func TestConvert_Errors(t *testing.T) {
	svc := newTestService()
	cases := []struct {
		name string
		in   ConvertInput
		code errors.ErrorCode
	}{
		{"empty", ConvertInput{Sequence: ""}, errors.ErrCodeEmptySequence},
		{"unknown letter", ConvertInput{Sequence: "GXZ"}, errors.ErrCodeUnknownResidue},
		{"unknown code3", ConvertInput{Sequence: "Gly-Xyz"}, errors.ErrCodeUnknownResidue},
		{"bad role", ConvertInput{
			Sequence:   "CC",
			CrossLinks: []CrossLinkInput{{PositionA: 1, AnchorA: "thiol", PositionB: 2, AnchorB: "side-chain"}},
		}, errors.ErrCodeUnknownAnchor},
		{"no anchor on gly", ConvertInput{
			Sequence:   "GG",
			CrossLinks: []CrossLinkInput{{PositionA: 1, AnchorA: "side-chain", PositionB: 2, AnchorB: "side-chain"}},
		}, errors.ErrCodeUnknownAnchor},
		{"cyclize single", ConvertInput{Sequence: "G", Cyclic: true}, errors.ErrCodeCyclization},
	}
	for _, tc := range cases {
		_, err := svc.Convert(context.Background(), tc.in)
		assert.True(t, errors.IsCode(err, tc.code), "%s: got %v", tc.name, err)
	}
}

func TestConvert_Limits(t *testing.T) {
	svc := New(config.ConvertConfig{MaxSequenceLength: 2, MaxCrossLinks: 1}, logging.NewNop(), nil)

	_, err := svc.Convert(context.Background(), ConvertInput{Sequence: "GGG"})
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))

	_, err = svc.Convert(context.Background(), ConvertInput{
		Sequence: "CC",
		CrossLinks: []CrossLinkInput{
			{PositionA: 1, AnchorA: "side-chain", PositionB: 2, AnchorB: "side-chain"},
			{PositionA: 1, AnchorA: "n-term", PositionB: 2, AnchorB: "c-term"},
		},
	})
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
}

func TestResidues(t *testing.T) {
	infos := newTestService().Residues(context.Background())
	require.Len(t, infos, 27)

	byCode3 := map[string]ResidueInfo{}
	for _, info := range infos {
		byCode3[info.Code3] = info
	}

	gly := byCode3["Gly"]
	assert.Equal(t, "G", gly.Code1)
	assert.Equal(t, 4, gly.HeavyAtoms)
	assert.Equal(t, []string{"n-term", "c-term"}, gly.Anchors)

	cys := byCode3["Cys"]
	assert.Contains(t, cys.Anchors, "side-chain")

	hyp := byCode3["Hyp"]
	assert.Empty(t, hyp.Code1)
	assert.Equal(t, 8, hyp.HeavyAtoms)
}

func TestDecodeSequence(t *testing.T) {
	seq, err := DecodeSequence(" GA ")
	require.NoError(t, err)
	assert.Equal(t, []peptide.ResidueIdentity{peptide.Glycine, peptide.Alanine}, seq)

	seq, err = DecodeSequence("gly-HYP")
	require.NoError(t, err)
	assert.Equal(t, []peptide.ResidueIdentity{peptide.Glycine, peptide.Hydroxyproline}, seq)

	_, err = DecodeSequence("Gly--Ala")
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
}

func TestFormula_Glycylglycine(t *testing.T) {
	g, err := peptide.Build(peptide.BuildSpec{
		Sequence: []peptide.ResidueIdentity{peptide.Glycine, peptide.Glycine},
	})
	require.NoError(t, err)

	formula, weight := Formula(g)
	assert.Equal(t, "C4H8N2O3", formula)
	assert.InDelta(t, 132.12, weight, 0.01)
}
