package apted_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apted/apted"
	"github.com/katalvlaran/apted/cost"
	"github.com/katalvlaran/apted/gen"
	"github.com/katalvlaran/apted/oracle"
	"github.com/katalvlaran/apted/treenode"
)

func TestIdenticalTreesHaveZeroDistance(t *testing.T) {
	tr := treenode.NewNode("a", treenode.NewLeaf("b"), treenode.NewNode("c", treenode.NewLeaf("d")))

	a, err := apted.New(tr, tr.Clone(), cost.UnitCost{})
	require.NoError(t, err)

	d, err := a.ComputeEditDistance()
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestSingleNodeRelabel(t *testing.T) {
	a, err := apted.New(treenode.NewLeaf("x"), treenode.NewLeaf("y"), cost.UnitCost{})
	require.NoError(t, err)

	d, err := a.ComputeEditDistance()
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
}

func TestSingleNodeVsSubtree(t *testing.T) {
	sub := treenode.NewNode("x", treenode.NewLeaf("y"), treenode.NewLeaf("z"))
	a, err := apted.New(treenode.NewLeaf("w"), sub, cost.UnitCost{})
	require.NoError(t, err)

	d, err := a.ComputeEditDistance()
	require.NoError(t, err)
	// Relabel w->x (1, since labels differ) + insert y + insert z.
	assert.Equal(t, 3.0, d)
}

func TestFixedCostScenario(t *testing.T) {
	fc, err := cost.NewFixedCost(0.4, 0.4, 0.6)
	require.NoError(t, err)

	t1 := treenode.NewNode("a", treenode.NewLeaf("b"))
	t2 := treenode.NewLeaf("a")

	a, err := apted.New(t1, t2, fc)
	require.NoError(t, err)
	d, err := a.ComputeEditDistance()
	require.NoError(t, err)
	// Delete the single leaf child (0.4); root is already aligned but
	// FixedCost.Update is label-blind so it's still charged: 0.6 + 0.4.
	assert.InDelta(t, 1.0, d, 1e-9)
}

func crossCheckPairs(t *testing.T) [][2]treenode.Node {
	t.Helper()

	path4, err := gen.Path(4)
	require.NoError(t, err)
	star4, err := gen.Star(4)
	require.NoError(t, err)
	kary, err := gen.CompleteKary(2, 2)
	require.NoError(t, err)
	rand1, err := gen.Random(6, 7)
	require.NoError(t, err)
	rand2, err := gen.Random(6, 99)
	require.NoError(t, err)

	return [][2]treenode.Node{
		{path4, star4},
		{star4, kary},
		{kary, path4},
		{rand1, rand2},
		{rand1, path4},
	}
}

func TestCrossCheckAgainstOracle(t *testing.T) {
	models := []cost.CostModel{
		cost.UnitCost{},
		mustFixed(t, 0.4, 0.4, 0.6),
		mustFixed(t, 1, 1, 1),
	}

	for _, pair := range crossCheckPairs(t) {
		for _, model := range models {
			a, err := apted.New(pair[0], pair[1], model)
			require.NoError(t, err)
			got, err := a.ComputeEditDistance()
			require.NoError(t, err)

			want, err := oracle.Run(pair[0], pair[1], model, oracle.WithMaxNodes(10))
			require.NoError(t, err)

			assert.InDelta(t, want, got, 1e-9)
		}
	}
}

func mustFixed(t *testing.T, del, ins, upd float64) cost.FixedCost {
	t.Helper()
	fc, err := cost.NewFixedCost(del, ins, upd)
	require.NoError(t, err)

	return fc
}

func TestComputeEditMappingCostMatchesDistance(t *testing.T) {
	t1, err := gen.Random(8, 3)
	require.NoError(t, err)
	t2, err := gen.Random(8, 4)
	require.NoError(t, err)

	a, err := apted.New(t1, t2, cost.UnitCost{})
	require.NoError(t, err)

	d, err := a.ComputeEditDistance()
	require.NoError(t, err)

	mapping, err := a.ComputeEditMapping()
	require.NoError(t, err)

	assert.InDelta(t, d, a.MappingCost(mapping), 1e-9)
}

func TestComputeEditDistanceSPFTestMatchesDefault(t *testing.T) {
	t1, err := gen.Random(10, 11)
	require.NoError(t, err)
	t2, err := gen.Random(10, 12)
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

type recordingExecutor struct {
	deletes, inserts, updates int
}

func (r *recordingExecutor) Delete(interface{}) error {
	r.deletes++

	return nil
}

func (r *recordingExecutor) Insert(interface{}) error {
	r.inserts++

	return nil
}

func (r *recordingExecutor) Update(_, _ interface{}) error {
	r.updates++

	return nil
}

func TestExecuteOperationsVisitsEveryPair(t *testing.T) {
	t1, err := gen.Path(5)
	require.NoError(t, err)
	t2, err := gen.Star(5)
	require.NoError(t, err)

	a, err := apted.New(t1, t2, cost.UnitCost{})
	require.NoError(t, err)
	_, err = a.ComputeEditDistance()
	require.NoError(t, err)
	mapping, err := a.ComputeEditMapping()
	require.NoError(t, err)

	exec := &recordingExecutor{}
	require.NoError(t, a.ExecuteOperations(mapping, exec))
	assert.Equal(t, len(mapping), exec.deletes+exec.inserts+exec.updates)

	reverseExec := &recordingExecutor{}
	require.NoError(t, a.ExecuteOperationsInReverse(mapping, reverseExec))
	assert.Equal(t, len(mapping), reverseExec.deletes+reverseExec.inserts+reverseExec.updates)
}

func TestComputeEditMappingBeforeDistanceFails(t *testing.T) {
	a, err := apted.New(treenode.NewLeaf("a"), treenode.NewLeaf("b"), cost.UnitCost{})
	require.NoError(t, err)

	_, err = a.ComputeEditMapping()
	assert.ErrorIs(t, err, apted.ErrPreconditionViolated)
}

func TestNewRejectsNilTrees(t *testing.T) {
	_, err := apted.New(nil, treenode.NewLeaf("a"), cost.UnitCost{})
	assert.ErrorIs(t, err, apted.ErrInvalidInput)
}

type negativeDeleteCost struct{ cost.UnitCost }

func (negativeDeleteCost) Delete(treenode.Node) float64 { return -1 }

func TestInvalidCostModelSurfacesAsError(t *testing.T) {
	_, err := apted.New(treenode.NewLeaf("a"), treenode.NewLeaf("b"), negativeDeleteCost{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apted.ErrInvalidCostModel))
}
