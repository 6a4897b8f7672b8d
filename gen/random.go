package gen

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/apted/treenode"
)

const (
	methodRandom   = "Random"
	minRandomNodes = 1
)

// Random builds a random recursive tree of n nodes: node i (for
// i = 1..n-1) is attached as a child of a uniformly chosen node among
// 0..i-1, using the RNG seeded deterministically from seed. Labels are
// decimal node index. Mirrors builder's RandomSparse in spirit
// (independent per-element random choices over a fixed, documented
// trial order) adapted to trees instead of graphs.
func Random(n int, seed int64) (*treenode.SimpleNode, error) {
	if n < minRandomNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minRandomNodes, ErrTooFewNodes)
	}

	rng := rand.New(rand.NewSource(seed))

	nodes := make([]*treenode.SimpleNode, n)
	childrenOf := make([][]*treenode.SimpleNode, n)
	for i := 0; i < n; i++ {
		nodes[i] = treenode.NewLeaf(strconv.Itoa(i))
	}

	for i := 1; i < n; i++ {
		parent := rng.Intn(i)
		childrenOf[parent] = append(childrenOf[parent], nodes[i])
	}

	// Rebuild bottom-up since SimpleNode is immutable: children must be
	// finalized before the parent node is constructed.
	var build func(i int) *treenode.SimpleNode
	build = func(i int) *treenode.SimpleNode {
		kids := childrenOf[i]
		if len(kids) == 0 {
			return nodes[i]
		}
		resolved := make([]*treenode.SimpleNode, len(kids))
		for j, c := range kids {
			idx, _ := strconv.Atoi(c.Label())
			resolved[j] = build(idx)
		}

		return treenode.NewNode(nodes[i].Label(), resolved...)
	}

	return build(0), nil
}
