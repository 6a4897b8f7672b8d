package cost

import "github.com/katalvlaran/apted/treenode"

// UnitCost charges 1 for delete and insert, and 1 for update unless the
// two labels are already equal (a free rename). This is the textbook unit
// cost model used by scenarios S1-S6 of the testable-properties table.
type UnitCost struct{}

// compile-time assertion.
var _ CostModel = UnitCost{}

// Delete returns 1 for any node.
func (UnitCost) Delete(treenode.Node) float64 { return 1 }

// Insert returns 1 for any node.
func (UnitCost) Insert(treenode.Node) float64 { return 1 }

// Update returns 0 when src and dst share a label, else 1.
func (UnitCost) Update(src, dst treenode.Node) float64 {
	if src.Label() == dst.Label() {
		return 0
	}

	return 1
}
