package apted_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apted/apted"
	"github.com/katalvlaran/apted/bracket"
	"github.com/katalvlaran/apted/cost"
	"github.com/katalvlaran/apted/gen"
	"github.com/katalvlaran/apted/oracle"
	"github.com/katalvlaran/apted/treenode"
)

// swappedCost wraps a CostModel with delete and insert exchanged, for the
// cost-swap symmetry property.
type swappedCost struct {
	inner cost.CostModel
}

func (s swappedCost) Delete(n treenode.Node) float64         { return s.inner.Insert(n) }
func (s swappedCost) Insert(n treenode.Node) float64         { return s.inner.Delete(n) }
func (s swappedCost) Update(src, dst treenode.Node) float64 { return s.inner.Update(dst, src) }

func propertyTrees(t *testing.T) []treenode.Node {
	t.Helper()
	a, err := gen.Random(6, 21)
	require.NoError(t, err)
	b, err := gen.Random(7, 22)
	require.NoError(t, err)
	c, err := gen.Star(5)
	require.NoError(t, err)

	return []treenode.Node{a, b, c}
}

// Property 1: non-negativity.
func TestPropertyNonNegativity(t *testing.T) {
	trees := propertyTrees(t)
	for i := range trees {
		for j := range trees {
			a, err := apted.New(trees[i], trees[j], cost.UnitCost{})
			require.NoError(t, err)
			d, err := a.ComputeEditDistance()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, d, 0.0)
		}
	}
}

// Property 2: identity, TED(a,a) == 0 when update returns 0 for equal labels.
func TestPropertyIdentity(t *testing.T) {
	for _, tr := range propertyTrees(t) {
		a, err := apted.New(tr, tr, cost.UnitCost{})
		require.NoError(t, err)
		d, err := a.ComputeEditDistance()
		require.NoError(t, err)
		assert.Equal(t, 0.0, d)
	}
}

// Property 3: symmetry under swap of delete/insert costs; under unit cost
// (symmetric already) TED(a,b) == TED(b,a) directly.
func TestPropertyCostSwapSymmetry(t *testing.T) {
	trees := propertyTrees(t)
	for i := range trees {
		for j := range trees {
			if i == j {
				continue
			}
			fwd, err := apted.New(trees[i], trees[j], cost.UnitCost{})
			require.NoError(t, err)
			dFwd, err := fwd.ComputeEditDistance()
			require.NoError(t, err)

			rev, err := apted.New(trees[j], trees[i], swappedCost{cost.UnitCost{}})
			require.NoError(t, err)
			dRev, err := rev.ComputeEditDistance()
			require.NoError(t, err)

			assert.InDelta(t, dFwd, dRev, 1e-9)

			plainRev, err := apted.New(trees[j], trees[i], cost.UnitCost{})
			require.NoError(t, err)
			dPlainRev, err := plainRev.ComputeEditDistance()
			require.NoError(t, err)
			assert.Equal(t, dFwd, dPlainRev)
		}
	}
}

// Property 4: oracle agreement on small inputs.
func TestPropertyOracleAgreement(t *testing.T) {
	for _, pair := range crossCheckPairs(t) {
		a, err := apted.New(pair[0], pair[1], cost.UnitCost{})
		require.NoError(t, err)
		got, err := a.ComputeEditDistance()
		require.NoError(t, err)

		want, err := oracle.Run(pair[0], pair[1], cost.UnitCost{}, oracle.WithMaxNodes(10))
		require.NoError(t, err)

		assert.InDelta(t, want, got, 1e-4)
	}
}

// Property 5: SPF equivalence (already also covered end-to-end in
// TestComputeEditDistanceSPFTestMatchesDefault; this instance uses a
// different tree pair for independent coverage).
func TestPropertySPFEquivalence(t *testing.T) {
	t1, err := gen.CompleteKary(2, 3)
	require.NoError(t, err)
	t2, err := gen.Path(7)
	require.NoError(t, err)

	a, err := apted.New(t1, t2, cost.UnitCost{})
	require.NoError(t, err)

	def, err := a.ComputeEditDistance()
	require.NoError(t, err)
	left, err := a.ComputeEditDistanceSPFTest(apted.PathLeft)
	require.NoError(t, err)
	right, err := a.ComputeEditDistanceSPFTest(apted.PathRight)
	require.NoError(t, err)

	assert.Equal(t, def, left)
	assert.Equal(t, def, right)
}

// Property 6: mapping-cost agreement (already covered by
// TestComputeEditMappingCostMatchesDistance; kept here under its property
// name too, on a distinct pair).
func TestPropertyMappingCostAgreement(t *testing.T) {
	t1, err := gen.Star(6)
	require.NoError(t, err)
	t2, err := gen.Path(6)
	require.NoError(t, err)

	a, err := apted.New(t1, t2, cost.UnitCost{})
	require.NoError(t, err)
	d, err := a.ComputeEditDistance()
	require.NoError(t, err)
	mapping, err := a.ComputeEditMapping()
	require.NoError(t, err)

	assert.InDelta(t, d, a.MappingCost(mapping), 1e-9)
}

// Property 7: bracket parsing round-trip.
func TestPropertyBracketRoundTrip(t *testing.T) {
	cases := []string{
		"{a}",
		"{a{b}{c}}",
		"{f{d{a}{c{b}}}{e}}",
		"{r{a}{b}{c}{d}}",
	}
	for _, s := range cases {
		tr, err := bracket.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, bracket.Serialize(tr))
	}
}

// Property 9: mapping legality — checked here as a partial one-to-one
// matching whose matched pairs preserve relative postorder on both sides.
func TestPropertyMappingLegality(t *testing.T) {
	t1, err := gen.Random(8, 5)
	require.NoError(t, err)
	t2, err := gen.Random(8, 6)
	require.NoError(t, err)

	a, err := apted.New(t1, t2, cost.UnitCost{})
	require.NoError(t, err)
	_, err = a.ComputeEditDistance()
	require.NoError(t, err)
	mapping, err := a.ComputeEditMapping()
	require.NoError(t, err)

	seenSrc := map[int]bool{}
	seenDst := map[int]bool{}
	var matches []apted.Pair
	for _, p := range mapping {
		if p.Src != 0 {
			assert.False(t, seenSrc[p.Src], "src postL %d used twice", p.Src)
			seenSrc[p.Src] = true
		}
		if p.Dst != 0 {
			assert.False(t, seenDst[p.Dst], "dst postL %d used twice", p.Dst)
			seenDst[p.Dst] = true
		}
		if p.Src != 0 && p.Dst != 0 {
			matches = append(matches, p)
		}
	}

	// Matched pairs must be monotonic in both coordinates: sorting by Src
	// postL id must also sort by Dst postL id. This is necessary for
	// ancestor-descendant and sibling-order preservation but not
	// sufficient: postorder alone does not tell a descendant from a left
	// sibling.
	for i := 1; i < len(matches); i++ {
		for j := 0; j < i; j++ {
			if matches[j].Src < matches[i].Src {
				assert.Less(t, matches[j].Dst, matches[i].Dst)
			} else if matches[j].Src > matches[i].Src {
				assert.Greater(t, matches[j].Dst, matches[i].Dst)
			}
		}
	}
}

func TestScenarios(t *testing.T) {
	scenarios := []struct {
		name     string
		t1, t2   string
		expected float64
	}{
		{"S1", "{a}", "{a}", 0},
		{"S2", "{a}", "{b}", 1},
		{"S3", "{a{b}{c}}", "{a{c}{b}}", 2},
		{"S4", "{f{d{a}{c{b}}}{e}}", "{f{c{d{a}{b}}}{e}}", 2},
		{"S5", "{a{b{c}}}", "{a{b}{c}}", 1},
		{"S6", "{r{a}{b}{c}{d}}", "{r}", 4},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			t1, err := bracket.Parse(sc.t1)
			require.NoError(t, err)
			t2, err := bracket.Parse(sc.t2)
			require.NoError(t, err)

			a, err := apted.New(t1, t2, cost.UnitCost{})
			require.NoError(t, err)
			d, err := a.ComputeEditDistance()
			require.NoError(t, err)
			assert.Equal(t, sc.expected, d)
		})
	}
}

func TestScenarioS4FixedCostAgreesWithOracle(t *testing.T) {
	t1, err := bracket.Parse("{f{d{a}{c{b}}}{e}}")
	require.NoError(t, err)
	t2, err := bracket.Parse("{f{c{d{a}{b}}}{e}}")
	require.NoError(t, err)

	fc, err := cost.NewFixedCost(0.4, 0.4, 0.6)
	require.NoError(t, err)

	a, err := apted.New(t1, t2, fc)
	require.NoError(t, err)
	got, err := a.ComputeEditDistance()
	require.NoError(t, err)

	want, err := oracle.Run(t1, t2, fc, oracle.WithMaxNodes(10))
	require.NoError(t, err)

	assert.InDelta(t, want, got, 1e-4)
}
