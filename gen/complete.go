package gen

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/apted/treenode"
)

const methodCompleteKary = "CompleteKary"

// CompleteKary builds a complete k-ary tree of the given depth: every
// internal node has exactly k children, and every root-to-leaf path has
// length depth. depth==0 yields a single leaf. Nodes are labeled by
// their preorder rank.
func CompleteKary(k, depth int) (*treenode.SimpleNode, error) {
	if k < 1 {
		return nil, fmt.Errorf("%s: k=%d: %w", methodCompleteKary, k, ErrInvalidDegree)
	}
	if depth < 0 {
		return nil, fmt.Errorf("%s: depth=%d < 0: %w", methodCompleteKary, depth, ErrTooFewNodes)
	}

	counter := 0
	var build func(level int) *treenode.SimpleNode
	build = func(level int) *treenode.SimpleNode {
		label := strconv.Itoa(counter)
		counter++
		if level == depth {
			return treenode.NewLeaf(label)
		}

		children := make([]*treenode.SimpleNode, k)
		for i := 0; i < k; i++ {
			children[i] = build(level + 1)
		}

		return treenode.NewNode(label, children...)
	}

	return build(0), nil
}
