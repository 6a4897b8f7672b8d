package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apted/cost"
	"github.com/katalvlaran/apted/gen"
	"github.com/katalvlaran/apted/oracle"
	"github.com/katalvlaran/apted/treenode"
)

func TestRunIdenticalTrees(t *testing.T) {
	a := treenode.NewNode("x", treenode.NewLeaf("y"), treenode.NewLeaf("z"))
	b := treenode.NewNode("x", treenode.NewLeaf("y"), treenode.NewLeaf("z"))

	d, err := oracle.Run(a, b, cost.UnitCost{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestRunLeafVsLeafRelabel(t *testing.T) {
	a := treenode.NewLeaf("a")
	b := treenode.NewLeaf("b")

	d, err := oracle.Run(a, b, cost.UnitCost{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
}

func TestRunDeleteAll(t *testing.T) {
	a := treenode.NewNode("x", treenode.NewLeaf("y"), treenode.NewLeaf("z"))
	b := treenode.NewLeaf("w")

	d, err := oracle.Run(a, b, cost.UnitCost{})
	require.NoError(t, err)
	// Best: relabel root x->w (1), delete y, delete z (2) = 3.
	assert.Equal(t, 3.0, d)
}

func TestSolveMappingCostMatchesDistance(t *testing.T) {
	a := treenode.NewNode("x", treenode.NewLeaf("y"), treenode.NewLeaf("z"))
	b := treenode.NewNode("x", treenode.NewLeaf("y"))

	d, mapping, err := oracle.Solve(a, b, cost.UnitCost{})
	require.NoError(t, err)

	var total float64
	model := cost.UnitCost{}
	for _, p := range mapping {
		switch {
		case p.Dst == nil:
			total += model.Delete(p.Src)
		case p.Src == nil:
			total += model.Insert(p.Dst)
		default:
			total += model.Update(p.Src, p.Dst)
		}
	}
	assert.Equal(t, d, total)
}

func TestRunResourceExceeded(t *testing.T) {
	big, err := gen.Path(20)
	require.NoError(t, err)
	small := treenode.NewLeaf("a")

	_, err = oracle.Run(big, small, cost.UnitCost{})
	assert.ErrorIs(t, err, oracle.ErrResourceExceeded)

	_, err = oracle.Run(big, small, cost.UnitCost{}, oracle.WithMaxNodes(25))
	assert.NoError(t, err)
}
