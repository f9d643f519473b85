// Package conversion is the application service in front of the peptide
// build engine: it decodes request sequences, enforces configured limits,
// runs the build, renders SMILES, and derives the summary properties
// (formula, molecular weight, counts) reported to callers.
package conversion

import (
	"context"
	"fmt"
	"time"

	"github.com/peptilab/peptigraph/internal/config"
	"github.com/peptilab/peptigraph/internal/domain/peptide"
	"github.com/peptilab/peptigraph/internal/infrastructure/monitoring/logging"
	"github.com/peptilab/peptigraph/internal/infrastructure/monitoring/prometheus"
	"github.com/peptilab/peptigraph/pkg/errors"
	"github.com/peptilab/peptigraph/pkg/smiles"
	"github.com/peptilab/peptigraph/pkg/types/chem"
	"github.com/peptilab/peptigraph/pkg/types/common"
)

// CrossLinkInput is one cross-link declaration as received from a caller.
// Positions are 1-based; roles are "n-term", "c-term" or "side-chain".
type CrossLinkInput struct {
	PositionA int    `json:"position_a"`
	AnchorA   string `json:"anchor_a"`
	PositionB int    `json:"position_b"`
	AnchorB   string `json:"anchor_b"`
}

// ConvertInput is one conversion request.
type ConvertInput struct {
	// Sequence is either plain one-letter codes ("GAW") or dash-separated
	// three-letter codes ("Gly-Ala-Hyp").
	Sequence   string           `json:"sequence"`
	CrossLinks []CrossLinkInput `json:"cross_links,omitempty"`
	Cyclic     bool             `json:"cyclic,omitempty"`
}

// Result is the outcome of a successful conversion.
type Result struct {
	ID              common.ID     `json:"id"`
	Sequence        string        `json:"sequence"`
	Residues        int           `json:"residues"`
	SMILES          string        `json:"smiles"`
	Formula         string        `json:"formula"`
	MolecularWeight float64       `json:"molecular_weight"`
	AtomCount       int           `json:"atom_count"`
	BondCount       int           `json:"bond_count"`
	Cyclic          bool          `json:"cyclic"`
	Elapsed         time.Duration `json:"-"`
	ElapsedMS       float64       `json:"elapsed_ms"`
}

// ResidueInfo describes one catalog entry for listings.
type ResidueInfo struct {
	Code1      string   `json:"code1,omitempty"`
	Code3      string   `json:"code3"`
	Name       string   `json:"name"`
	HeavyAtoms int      `json:"heavy_atoms"`
	Anchors    []string `json:"anchors"`
}

// Service orchestrates conversions.  Construct with New; all dependencies
// are injected.
type Service struct {
	limits  config.ConvertConfig
	logger  logging.Logger
	metrics *prometheus.Metrics
}

// New constructs a Service.  metrics may be nil when recording is disabled.
func New(limits config.ConvertConfig, logger logging.Logger, metrics *prometheus.Metrics) *Service {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{
		limits:  limits,
		logger:  logger.Named("conversion"),
		metrics: metrics,
	}
}

// Convert runs one full conversion.  Failures carry a stable error code;
// callers branch on errors.GetCode.
func (s *Service) Convert(ctx context.Context, in ConvertInput) (*Result, error) {
	start := time.Now()

	res, err := s.convert(ctx, in)
	elapsed := time.Since(start)

	if err != nil {
		code := errors.GetCode(err)
		s.logger.Warn("conversion failed",
			logging.String("sequence", in.Sequence),
			logging.String("code", code.String()),
			logging.Err(err),
			logging.Duration("elapsed", elapsed),
		)
		if s.metrics != nil {
			s.metrics.ObserveConversion(code.String(), 0, 0, 0, elapsed)
		}
		return nil, err
	}

	res.Elapsed = elapsed
	res.ElapsedMS = float64(elapsed.Microseconds()) / 1000
	s.logger.Info("conversion finished",
		logging.String("id", res.ID.String()),
		logging.Int("residues", res.Residues),
		logging.Int("atoms", res.AtomCount),
		logging.Bool("cyclic", res.Cyclic),
		logging.Duration("elapsed", elapsed),
	)
	if s.metrics != nil {
		s.metrics.ObserveConversion("ok", res.Residues, res.AtomCount, res.BondCount, elapsed)
	}
	return res, nil
}

func (s *Service) convert(_ context.Context, in ConvertInput) (*Result, error) {
	sequence, err := DecodeSequence(in.Sequence)
	if err != nil {
		return nil, err
	}
	if s.limits.MaxSequenceLength > 0 && len(sequence) > s.limits.MaxSequenceLength {
		return nil, errors.New(errors.ErrCodeValidation, "sequence exceeds configured limit").
			WithDetail(fmt.Sprintf("residues=%d limit=%d", len(sequence), s.limits.MaxSequenceLength))
	}
	if s.limits.MaxCrossLinks > 0 && len(in.CrossLinks) > s.limits.MaxCrossLinks {
		return nil, errors.New(errors.ErrCodeValidation, "too many cross-links").
			WithDetail(fmt.Sprintf("links=%d limit=%d", len(in.CrossLinks), s.limits.MaxCrossLinks))
	}

	links := make([]peptide.CrossLink, 0, len(in.CrossLinks))
	for _, l := range in.CrossLinks {
		roleA, err := parseAnchorRole(l.AnchorA)
		if err != nil {
			return nil, err
		}
		roleB, err := parseAnchorRole(l.AnchorB)
		if err != nil {
			return nil, err
		}
		links = append(links, peptide.CrossLink{
			PositionA: l.PositionA, AnchorA: roleA,
			PositionB: l.PositionB, AnchorB: roleB,
			Order: chem.OrderSingle,
		})
	}

	graph, err := peptide.Build(peptide.BuildSpec{
		Sequence:   sequence,
		CrossLinks: links,
		Cyclic:     in.Cyclic,
	})
	if err != nil {
		return nil, err
	}

	notation, err := smiles.Write(graph)
	if err != nil {
		return nil, err
	}

	formula, weight := Formula(graph)
	return &Result{
		ID:              common.NewID(),
		Sequence:        in.Sequence,
		Residues:        len(sequence),
		SMILES:          notation,
		Formula:         formula,
		MolecularWeight: weight,
		AtomCount:       graph.AtomCount(),
		BondCount:       graph.BondCount(),
		Cyclic:          in.Cyclic,
	}, nil
}

// Residues lists the catalog in declaration order.
func (s *Service) Residues(_ context.Context) []ResidueInfo {
	ids := peptide.Identities()
	out := make([]ResidueInfo, 0, len(ids))
	for _, id := range ids {
		tpl, err := peptide.Template(id)
		if err != nil {
			continue
		}
		anchors := make([]string, 0, len(tpl.Anchors))
		for _, role := range []peptide.AnchorRole{peptide.AnchorNTerm, peptide.AnchorCTerm, peptide.AnchorSideChain} {
			if _, ok := tpl.Anchors[role]; ok {
				anchors = append(anchors, string(role))
			}
		}
		out = append(out, ResidueInfo{
			Code1:      id.Code1(),
			Code3:      id.Code3(),
			Name:       tpl.Name,
			HeavyAtoms: tpl.HeavyAtomCount(),
			Anchors:    anchors,
		})
	}
	return out
}

func parseAnchorRole(s string) (peptide.AnchorRole, error) {
	role := peptide.AnchorRole(s)
	if !role.IsValid() {
		return "", errors.New(errors.ErrCodeUnknownAnchor, "unknown anchor role").
			WithDetail("role=" + s)
	}
	return role, nil
}
