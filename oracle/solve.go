package oracle

import (
	"fmt"
	"math"

	"github.com/katalvlaran/apted/cost"
	"github.com/katalvlaran/apted/treenode"
)

// Run returns the brute-force tree edit distance between t1 and t2
// under model.
func Run(t1, t2 treenode.Node, model cost.CostModel, opts ...Option) (float64, error) {
	c, _, err := Solve(t1, t2, model, opts...)

	return c, err
}

// Solve enumerates every one-to-one partial mapping between the node
// sets of t1 and t2 — including the empty mapping — discards any that
// violates ancestor-descendant or sibling-order preservation, and
// returns the minimum total cost over the survivors, together with a
// mapping achieving it. This is the textbook definition of tree edit
// distance (Tai 1979; Bille 2005 §3), deliberately independent of
// apted's indexing and decomposition scheme: it exists to catch a bug
// shared by every shortcut that scheme takes, so it must not take any
// of them itself.
func Solve(t1, t2 treenode.Node, model cost.CostModel, opts ...Option) (float64, []Mapping, error) {
	if t1 == nil || t2 == nil || model == nil {
		return 0, nil, ErrInvalidInput
	}

	cfg := newConfig(opts...)
	nodes1 := flatten(t1)
	nodes2 := flatten(t2)
	if n := len(nodes1); n > cfg.maxNodes {
		return 0, nil, fmt.Errorf("%w: tree 1 has %d nodes > max %d", ErrResourceExceeded, n, cfg.maxNodes)
	}
	if n := len(nodes2); n > cfg.maxNodes {
		return 0, nil, fmt.Errorf("%w: tree 2 has %d nodes > max %d", ErrResourceExceeded, n, cfg.maxNodes)
	}

	s := &searcher{
		model:    model,
		nodes1:   nodes1,
		nodes2:   nodes2,
		used2:    make([]bool, len(nodes2)),
		bestCost: math.Inf(1),
	}
	s.search(0)

	return s.bestCost, s.bestMapping, nil
}

// flatNode is one node of a flattened tree, tagged with the data needed
// to check mapping legality in O(1): its preorder rank and the number of
// nodes in its subtree (so [pre, pre+size) is exactly the preorder range
// of its descendants).
type flatNode struct {
	node   treenode.Node
	pre    int
	size   int
	parent int // index into the same flattened slice, or -1 for the root
}

// flatten assigns preorder ranks to every node of root and records each
// one's subtree size and parent index.
func flatten(root treenode.Node) []flatNode {
	var nodes []flatNode
	var walk func(n treenode.Node, parent int) int
	walk = func(n treenode.Node, parent int) int {
		idx := len(nodes)
		nodes = append(nodes, flatNode{node: n, pre: idx, parent: parent})
		size := 1
		for _, c := range n.Children() {
			size += walk(c, idx)
		}
		nodes[idx].size = size

		return idx
	}
	walk(root, -1)

	return nodes
}

// relation classifies the structural position of one flattened node
// relative to another within the same tree.
type relation int

const (
	relAncestor relation = iota
	relDescendant
	relUnordered // neither an ancestor nor a descendant of the other
)

func relate(nodes []flatNode, a, b int) relation {
	pa, pb := nodes[a], nodes[b]
	switch {
	case pb.pre > pa.pre && pb.pre < pa.pre+pa.size:
		return relAncestor
	case pa.pre > pb.pre && pa.pre < pb.pre+pb.size:
		return relDescendant
	default:
		return relUnordered
	}
}

// searcher holds one Solve call's enumeration state.
type searcher struct {
	model cost.CostModel

	nodes1, nodes2 []flatNode
	used2          []bool

	pairs1, pairs2 []int // indices (into nodes1/nodes2) of pairs chosen so far, in order added

	bestCost    float64
	bestMapping []Mapping
}

// search tries, for t1 node i, every legal choice (skip it, or match it
// to each unused, structurally-consistent t2 node), then recurses to
// i+1. At i == len(nodes1) it scores the completed partial mapping.
func (s *searcher) search(i int) {
	if i == len(s.nodes1) {
		s.score()

		return
	}

	// Branch 1: leave nodes1[i] unmapped.
	s.search(i + 1)

	// Branch 2: map nodes1[i] to every unused, legal nodes2[j].
	for j := range s.nodes2 {
		if s.used2[j] {
			continue
		}
		if !s.legal(i, j) {
			continue
		}

		s.used2[j] = true
		s.pairs1 = append(s.pairs1, i)
		s.pairs2 = append(s.pairs2, j)

		s.search(i + 1)

		s.pairs1 = s.pairs1[:len(s.pairs1)-1]
		s.pairs2 = s.pairs2[:len(s.pairs2)-1]
		s.used2[j] = false
	}
}

// legal reports whether adding (i, j) to the pairs already chosen keeps
// the partial mapping order-preserving: for every existing pair (i', j'),
// i' and i must relate to each other (ancestor/descendant/unordered) the
// same way j' and j do, and unordered pairs must keep their left-to-right
// (preorder) order on both sides.
func (s *searcher) legal(i, j int) bool {
	for k, i2 := range s.pairs1 {
		j2 := s.pairs2[k]
		rel := relate(s.nodes1, i2, i)
		if rel != relate(s.nodes2, j2, j) {
			return false
		}
		if rel == relUnordered && (s.nodes1[i2].pre < s.nodes1[i].pre) != (s.nodes2[j2].pre < s.nodes2[j].pre) {
			return false
		}
	}

	return true
}

// score computes the total cost of the mapping currently assembled in
// s.pairs1/s.pairs2 (every unmapped node on either side is implicitly
// deleted or inserted) and keeps it if it beats the best seen so far.
func (s *searcher) score() {
	mapped1 := make([]bool, len(s.nodes1))
	mapped2 := make([]bool, len(s.nodes2))

	var total float64
	var mapping []Mapping
	for k, i := range s.pairs1 {
		j := s.pairs2[k]
		mapped1[i] = true
		mapped2[j] = true
		total += s.model.Update(s.nodes1[i].node, s.nodes2[j].node)
		mapping = append(mapping, Mapping{Src: s.nodes1[i].node, Dst: s.nodes2[j].node})
	}
	for i, n := range s.nodes1 {
		if !mapped1[i] {
			total += s.model.Delete(n.node)
			mapping = append(mapping, Mapping{Src: n.node})
		}
	}
	for j, n := range s.nodes2 {
		if !mapped2[j] {
			total += s.model.Insert(n.node)
			mapping = append(mapping, Mapping{Dst: n.node})
		}
	}

	if total < s.bestCost {
		s.bestCost = total
		s.bestMapping = mapping
	}
}
