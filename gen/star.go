package gen

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/apted/treenode"
)

const (
	methodStar   = "Star"
	minStarNodes = 1
)

// Star builds a hub-and-spoke tree: one root labeled "center" with n-1
// leaf children labeled by decimal index 1..n-1. Requires n >= 1 (n==1
// yields a single unattached root).
func Star(n int) (*treenode.SimpleNode, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
	}

	leaves := make([]*treenode.SimpleNode, 0, n-1)
	for i := 1; i < n; i++ {
		leaves = append(leaves, treenode.NewLeaf(strconv.Itoa(i)))
	}

	return treenode.NewNode("center", leaves...), nil
}
