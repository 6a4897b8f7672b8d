package oracle_test

import (
	"fmt"

	"github.com/katalvlaran/apted/cost"
	"github.com/katalvlaran/apted/oracle"
	"github.com/katalvlaran/apted/treenode"
)

// ExampleRun computes the exact tree edit distance between a tree and a
// single leaf, the "delete everything but relabel the root" case.
func ExampleRun() {
	a := treenode.NewNode("x", treenode.NewLeaf("y"), treenode.NewLeaf("z"))
	b := treenode.NewLeaf("w")

	d, err := oracle.Run(a, b, cost.UnitCost{})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.0f\n", d)
	// Output:
	// distance=3
}
