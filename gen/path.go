package gen

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/apted/treenode"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path builds a degenerate tree of n nodes, each the sole child of its
// predecessor: n0 -> n1 -> ... -> n(n-1). Labels are the decimal node
// index. It is the worst case for any algorithm whose complexity
// depends on tree height rather than size.
func Path(n int) (*treenode.SimpleNode, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
	}

	node := treenode.NewLeaf(strconv.Itoa(n - 1))
	for i := n - 2; i >= 0; i-- {
		node = treenode.NewNode(strconv.Itoa(i), node)
	}

	return node, nil
}
