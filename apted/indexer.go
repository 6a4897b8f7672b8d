package apted

import (
	"github.com/katalvlaran/apted/cost"
	"github.com/katalvlaran/apted/treenode"
)

// indexer flattens one input tree into the parallel integer arrays
// spec.md §3 describes, all addressable in O(1) and all indexed by preL
// id unless noted. It is built once per tree per Apted run and is never
// mutated afterwards.
//
// preorder subtrees are contiguous ranges: the subtree rooted at preL id
// i occupies exactly [i, i+size[i]) in preL order, and (dually) postorder
// subtrees occupy a contiguous range ending at the root's own postL id.
// Every traversal below relies on one of these two properties.
type indexer struct {
	treeSize int

	preLToNode []treenode.Node
	size       []int
	parent     []int
	children   [][]int
	nodeTypeL  []bool // true iff the node is the leftmost child of its parent
	nodeTypeR  []bool // true iff the node is the rightmost child of its parent

	preLToPostL []int
	postLToPreL []int

	// preR is the mirror of preL: preorder, but children visited
	// right-to-left. postR mirrors postL the same way.
	preLToPreR []int
	preRToPreL []int
	preLToPostR []int
	postRToPreL []int

	// postLToLLD[j] is the postL id of the leftmost leaf descendant of
	// the node whose own postL id is j.
	postLToLLD []int

	// postRToRLD[j] is the postR id of the rightmost leaf descendant of
	// the node whose own postR id is j — postLToLLD's mirror.
	postRToRLD []int

	// preLToLN[i] (resp. preRToLN[r]) is the preL (resp. preR) id of the
	// nearest leaf strictly before i (resp. r) in that order, or -1 if
	// none precedes it. Nothing in this package reads them at present:
	// spfA reuses spfL's table builder and does no active-node skipping.
	preLToLN []int
	preRToLN []int

	// Strategy weights (Pawlik & Augsten §5.2), addressed by preL id.
	preLToKRSum    []int64
	preLToRevKRSum []int64
	preLToDescSum  []int64

	// Per-node costs, addressed by preL id.
	preLToDelCost []float64
	preLToInsCost []float64

	// Cost aggregates (subtree sums of the above), addressed by preL id.
	preLToSumDelCost []float64
	preLToSumInsCost []float64
}

// buildIndexer runs the linear passes spec.md §4.2 describes and returns
// a fully populated indexer for root.
func buildIndexer(root treenode.Node, model cost.CostModel) (*indexer, error) {
	if root == nil {
		return nil, ErrInvalidInput
	}

	n := countNodes(root)
	idx := &indexer{
		treeSize:         n,
		preLToNode:       make([]treenode.Node, n),
		size:             make([]int, n),
		parent:           make([]int, n),
		children:         make([][]int, n),
		nodeTypeL:        make([]bool, n),
		nodeTypeR:        make([]bool, n),
		preLToPostL:      make([]int, n),
		postLToPreL:      make([]int, n),
		preLToPreR:       make([]int, n),
		preRToPreL:       make([]int, n),
		preLToPostR:      make([]int, n),
		postRToPreL:      make([]int, n),
		postLToLLD:       make([]int, n),
		postRToRLD:       make([]int, n),
		preLToLN:         make([]int, n),
		preRToLN:         make([]int, n),
		preLToKRSum:      make([]int64, n),
		preLToRevKRSum:   make([]int64, n),
		preLToDescSum:    make([]int64, n),
		preLToDelCost:    make([]float64, n),
		preLToInsCost:    make([]float64, n),
		preLToSumDelCost: make([]float64, n),
		preLToSumInsCost: make([]float64, n),
	}

	// Pass 1: single recursive preorder walk. Assigns preL ids on entry,
	// postL ids on exit (giving size/parent/children/nodeTypeL-R/krSum/
	// revKrSum/descSum for free).
	preCounter := 0
	postCounter := 0
	var walk func(n treenode.Node, parent int, isFirst, isLast bool) (preLID int, subtreeSizeSum int64)
	walk = func(n treenode.Node, parent int, isFirst, isLast bool) (int, int64) {
		preLID := preCounter
		preCounter++

		idx.preLToNode[preLID] = n
		idx.parent[preLID] = parent
		idx.nodeTypeL[preLID] = isFirst
		idx.nodeTypeR[preLID] = isLast

		kids := n.Children()
		childIDs := make([]int, 0, len(kids))
		size := 1
		var krSum, revKrSum int64
		var subtreeSizeSum int64

		for i, c := range kids {
			childID, childSizeSum := walk(c, preLID, i == 0, i == len(kids)-1)
			childIDs = append(childIDs, childID)
			size += idx.size[childID]
			subtreeSizeSum += childSizeSum

			if i != 0 {
				krSum += int64(idx.size[childID]) + idx.preLToKRSum[childID]
			}
			if i != len(kids)-1 {
				revKrSum += int64(idx.size[childID]) + idx.preLToRevKRSum[childID]
			}
		}
		krSum += int64(size)
		revKrSum += int64(size)
		subtreeSizeSum += int64(size)

		idx.children[preLID] = childIDs
		idx.size[preLID] = size
		idx.preLToKRSum[preLID] = krSum
		idx.preLToRevKRSum[preLID] = revKrSum

		s := int64(size - 1)
		idx.preLToDescSum[preLID] = ((s+1)*(s+4))/2 - subtreeSizeSum

		idx.preLToPostL[preLID] = postCounter
		idx.postLToPreL[postCounter] = preLID
		postCounter++

		return preLID, subtreeSizeSum
	}
	walk(root, -1, true, true)

	// Pass 1b: mirror walk over the already-built preL tree, visiting
	// children right-to-left, assigning preR ids on entry and postR ids
	// on exit — preL/postL's counterparts.
	preRCounter := 0
	postRCounter := 0
	var walkR func(preLID int)
	walkR = func(preLID int) {
		idx.preLToPreR[preLID] = preRCounter
		idx.preRToPreL[preRCounter] = preLID
		preRCounter++

		kids := idx.children[preLID]
		for i := len(kids) - 1; i >= 0; i-- {
			walkR(kids[i])
		}

		idx.preLToPostR[preLID] = postRCounter
		idx.postRToPreL[postRCounter] = preLID
		postRCounter++
	}
	walkR(0)

	// Pass 2: leftmost/rightmost-leaf-descendant indices, nearest-leaf-
	// to-the-left arrays, and per-node cost validation/aggregation.
	for j := 0; j < n; j++ {
		p := idx.postLToPreL[j]
		if idx.size[p] == 1 {
			idx.postLToLLD[j] = j
		} else {
			firstChild := idx.children[p][0]
			idx.postLToLLD[j] = idx.postLToLLD[idx.preLToPostL[firstChild]]
		}
	}
	for j := 0; j < n; j++ {
		p := idx.postRToPreL[j]
		if idx.size[p] == 1 {
			idx.postRToRLD[j] = j
		} else {
			kids := idx.children[p]
			lastChild := kids[len(kids)-1]
			idx.postRToRLD[j] = idx.postRToRLD[idx.preLToPostR[lastChild]]
		}
	}

	lastLeafL := -1
	for i := 0; i < n; i++ {
		idx.preLToLN[i] = lastLeafL
		if idx.isLeaf(i) {
			lastLeafL = i
		}
	}
	lastLeafR := -1
	for r := 0; r < n; r++ {
		p := idx.preRToPreL[r]
		idx.preRToLN[r] = lastLeafR
		if idx.isLeaf(p) {
			lastLeafR = r
		}
	}

	for i := n - 1; i >= 0; i-- {
		del := model.Delete(idx.preLToNode[i])
		ins := model.Insert(idx.preLToNode[i])
		if err := checkCost(del); err != nil {
			return nil, err
		}
		if err := checkCost(ins); err != nil {
			return nil, err
		}
		idx.preLToDelCost[i] = del
		idx.preLToInsCost[i] = ins
		idx.preLToSumDelCost[i] += del
		idx.preLToSumInsCost[i] += ins
		if p := idx.parent[i]; p != -1 {
			idx.preLToSumDelCost[p] += idx.preLToSumDelCost[i]
			idx.preLToSumInsCost[p] += idx.preLToSumInsCost[i]
		}
	}

	return idx, nil
}

func countNodes(n treenode.Node) int {
	count := 1
	for _, c := range n.Children() {
		count += countNodes(c)
	}

	return count
}

// isLeaf reports whether the node at preL id i has no children.
func (idx *indexer) isLeaf(i int) bool { return idx.size[i] == 1 }
