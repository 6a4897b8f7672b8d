package cost

import (
	"errors"

	"github.com/katalvlaran/apted/treenode"
)

// Sentinel errors for cost model validation.
var (
	// ErrNegativeCost indicates a cost model configured with a negative
	// delete/insert/update cost.
	ErrNegativeCost = errors.New("cost: cost must be non-negative")

	// ErrNonFiniteCost indicates a cost model configured with a NaN or
	// infinite delete/insert/update cost.
	ErrNonFiniteCost = errors.New("cost: cost must be finite")
)

// CostModel is the capability apted and oracle consume to price the three
// edit operations. Implementations need not satisfy the triangle
// inequality or any metric property — TED remains well-defined either
// way, it simply loses the "metric" guarantee (spec.md §4.1).
type CostModel interface {
	// Delete returns the cost of deleting n.
	Delete(n treenode.Node) float64

	// Insert returns the cost of inserting n.
	Insert(n treenode.Node) float64

	// Update returns the cost of relabeling src into dst (a rename of
	// src's node to carry dst's label).
	Update(src, dst treenode.Node) float64
}
