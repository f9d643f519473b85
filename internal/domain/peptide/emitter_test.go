package peptide

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peptilab/peptigraph/pkg/errors"
	"github.com/peptilab/peptigraph/pkg/types/chem"
)

// recorder captures the event stream as comparable strings.
type recorder struct {
	events []string
}

func (r *recorder) VisitAtom(a Atom, hydrogens int) {
	r.events = append(r.events, fmt.Sprintf("atom %s h=%d chir=%q", a.Element.Symbol(), hydrogens, a.Chirality.Mark()))
}

func (r *recorder) VisitBond(order chem.BondOrder) {
	r.events = append(r.events, fmt.Sprintf("bond %d", order))
}

func (r *recorder) VisitRingBond(order chem.BondOrder, ring int) {
	r.events = append(r.events, fmt.Sprintf("ring %d order %d", ring, order))
}

func (r *recorder) OpenBranch()  { r.events = append(r.events, "open") }
func (r *recorder) CloseBranch() { r.events = append(r.events, "close") }

func record(t *testing.T, spec BuildSpec) []string {
	t.Helper()
	g, err := Build(spec)
	require.NoError(t, err)
	rec := &recorder{}
	require.NoError(t, Emit(g, rec))
	return rec.events
}

func TestEmit_Glycine(t *testing.T) {
	events := record(t, BuildSpec{Sequence: mustSequence(t, "G")})
	assert.Equal(t, []string{
		`atom N h=2 chir=""`,
		`bond 1`,
		`atom C h=2 chir=""`,
		`bond 1`,
		`atom C h=0 chir=""`,
		`open`,
		`bond 2`,
		`atom O h=0 chir=""`,
		`close`,
		`bond 1`,
		`atom O h=1 chir=""`,
	}, events)
}

func TestEmit_RootAtomFirst(t *testing.T) {
	events := record(t, BuildSpec{Sequence: mustSequence(t, "AG")})
	require.NotEmpty(t, events)
	// The stream starts with the first residue's nitrogen and no bond.
	assert.Equal(t, `atom N h=2 chir=""`, events[0])
}

func TestEmit_Deterministic(t *testing.T) {
	spec := BuildSpec{
		Sequence: mustSequence(t, "CWHC"),
		CrossLinks: []CrossLink{{
			PositionA: 1, AnchorA: AnchorSideChain,
			PositionB: 4, AnchorB: AnchorSideChain,
		}},
	}
	assert.Equal(t, record(t, spec), record(t, spec))
}

func TestEmit_BranchesBalanced(t *testing.T) {
	events := record(t, BuildSpec{Sequence: mustSequence(t, "KWFYHP")})
	depth := 0
	for _, ev := range events {
		switch ev {
		case "open":
			depth++
		case "close":
			depth--
		}
		assert.GreaterOrEqual(t, depth, 0)
	}
	assert.Zero(t, depth)
}

func TestEmit_RingNumbersPairAndRecycle(t *testing.T) {
	events := record(t, BuildSpec{Sequence: mustSequence(t, "FF")})
	seen := map[string]int{}
	for _, ev := range events {
		var ring, order int
		if _, err := fmt.Sscanf(ev, "ring %d order %d", &ring, &order); err == nil {
			seen[ev]++
		}
	}
	// Two separate benzene rings both use number 1: the digit is released
	// after its second appearance and reallocated.  Two events per ring.
	require.Len(t, seen, 1)
	assert.Equal(t, 4, seen["ring 1 order 1"])
}

func TestEmit_FusedRingsUseTwoNumbers(t *testing.T) {
	events := record(t, BuildSpec{Sequence: mustSequence(t, "W")})
	rings := []string{}
	for _, ev := range events {
		var ring, order int
		if _, err := fmt.Sscanf(ev, "ring %d order %d", &ring, &order); err == nil {
			rings = append(rings, fmt.Sprintf("%d", ring))
		}
	}
	// Indole has two closure bonds; while both are open two numbers are
	// live at once.  The pyrrole ring opens first and closes first.
	assert.Equal(t, []string{"1", "2", "1", "2"}, rings)
}

func TestEmit_RejectsPendingAromatic(t *testing.T) {
	g := NewGraph(2, 1)
	g.AddAtom(Atom{Element: chem.Carbon})
	g.AddAtom(Atom{Element: chem.Carbon})
	require.NoError(t, g.AddBond(0, 1, chem.OrderAromatic))

	err := Emit(g, &recorder{})
	assert.True(t, errors.IsCode(err, errors.ErrCodeKekulization))
}

func TestEmit_RejectsDisconnected(t *testing.T) {
	g := NewGraph(2, 0)
	g.AddAtom(Atom{Element: chem.Carbon})
	g.AddAtom(Atom{Element: chem.Carbon})

	err := Emit(g, &recorder{})
	assert.True(t, errors.IsCode(err, errors.ErrCodeInternal))
}

func TestEmit_EmptyGraph(t *testing.T) {
	err := Emit(NewGraph(0, 0), &recorder{})
	assert.True(t, errors.IsCode(err, errors.ErrCodeEmptySequence))
}
