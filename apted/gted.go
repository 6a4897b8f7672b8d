package apted

import (
	"github.com/katalvlaran/apted/internal/fmatrix"
)

// costAccessor reads the per-node delete/insert/update costs the engine
// needs, letting apted.go decide how those are sourced (precomputed
// arrays for delete/insert, a lazily-validated model call for update).
type costAccessor interface {
	del(preL1 int) (float64, error)
	ins(preL2 int) (float64, error)
	upd(preL1, preL2 int) (float64, error)
}

// tedEngine holds the working state of one comparison of idx1 against
// idx2: the cost accessor, and a lazily, exhaustively filled treeDist
// cache (addressed by postL id in each tree) that apted/mapping.go's
// backtrace reads from.
type tedEngine struct {
	idx1, idx2     *indexer
	costOf         costAccessor
	treeDist       *fmatrix.Matrix // n1 x n2, addressed by (postL1, postL2)
	treeDistFilled bool
}

func newTEDEngine(idx1, idx2 *indexer, costOf costAccessor) (*tedEngine, error) {
	treeDist, err := fmatrix.New(idx1.treeSize, idx2.treeSize)
	if err != nil {
		return nil, err
	}

	return &tedEngine{idx1: idx1, idx2: idx2, costOf: costOf, treeDist: treeDist}, nil
}

// run computes TED(root1, root2) via the strategy computer's automatic
// (non-forced) recommendation and the gted path-decomposition driver.
func (e *tedEngine) run() (float64, error) {
	strat := buildStrategy(e.idx1, e.idx2, strategyAuto)

	return e.runWithStrategy(strat)
}

// runWithStrategy is run's strategy-parameterized core: it lets
// Apted.ComputeEditDistanceSPFTest supply a strategy matrix forced to
// PathLeft or PathRight for every cell, so the forced direction actually
// drives which of spfL/spfR the decomposition below dispatches to,
// rather than merely being decoded and discarded.
func (e *tedEngine) runWithStrategy(strat *fmatrix.Matrix) (float64, error) {
	d := newDeltaTable(e.idx1.treeSize, e.idx2.treeSize)

	return gted(e.idx1, e.idx2, e.costOf, strat, d, 0, 0)
}

// gted is the GTED recursive driver of spec.md §4.5: it resolves
// TED(subtree x, subtree y) by short-circuiting to spf1 when either side
// is a single node, or else decoding the strategy computer's
// recommendation for (x, y) into an owning tree, a path kind, and the
// leaf the path runs to; recursing into every subtree hanging off that
// path before invoking the matching single-path function to fold the
// recursion's results (via d) into TED(x, y) itself.
func gted(idx1, idx2 *indexer, costOf costAccessor, strat *fmatrix.Matrix, d *deltaTable, x, y int) (float64, error) {
	if v, ok := d.get(x, y); ok {
		return v, nil
	}

	size1, size2 := idx1.size[x], idx2.size[y]

	var (
		result float64
		err    error
	)
	switch {
	case size1 == 1 || size2 == 1:
		result, err = spf1(idx1, idx2, costOf, x, y)
	default:
		code := int(strat.At(x, y))
		ownerT2, leaf := decodePath(code, idx1.treeSize)

		var kind PathType
		if !ownerT2 {
			kind = classifyPathT1(idx1, x, leaf)
			err = walkOffPathT1(idx1, idx2, costOf, strat, d, x, y, leaf)
		} else {
			kind = classifyPathT2(idx2, y, leaf)
			err = walkOffPathT2(idx1, idx2, costOf, strat, d, x, y, leaf)
		}

		if err == nil {
			switch kind {
			case PathLeft:
				result, err = spfL(idx1, idx2, costOf, strat, d, x, y)
			case PathRight:
				result, err = spfR(idx1, idx2, costOf, strat, d, x, y)
			default:
				result, err = spfA(idx1, idx2, costOf, strat, d, x, y)
			}
		}
	}
	if err != nil {
		return 0, err
	}

	d.set(x, y, result)

	return result, nil
}

// fillFullTreeDist populates e.treeDist for every keyroot pair via the
// classical Zhang & Shasha (1989) exhaustive sweep, addressed by postL
// id. It is the supporting table apted/mapping.go's backtrace needs:
// that backtrace's own per-pair forest-distance recomputation visits
// every keyroot pair reachable by nodeLLD-boundary mismatch within
// whatever subtree pairs it recurses into, which in the worst case is
// every keyroot pair — not just the ones gted's strategy-guided
// decomposition happened to visit while computing the scalar distance.
// Run once, lazily, the first time a mapping is requested.
func (e *tedEngine) fillFullTreeDist() error {
	if e.treeDistFilled {
		return nil
	}

	kr1 := keyroots(e.idx1)
	kr2 := keyroots(e.idx2)
	for _, r1 := range kr1 {
		for _, r2 := range kr2 {
			if err := e.forestDist(r1, r2); err != nil {
				return err
			}
		}
	}

	e.treeDistFilled = true

	return nil
}

// keyroots returns the preL ids of idx's keyroots: the root itself, plus
// every node that is not the leftmost child of its parent. Processing
// keyroots in ascending postL order is what lets treeDist be filled
// bottom-up in one pass.
func keyroots(idx *indexer) []int {
	krs := make([]int, 0, idx.treeSize)
	for postL := 0; postL < idx.treeSize; postL++ {
		preL := idx.postLToPreL[postL]
		if idx.parent[preL] == -1 || !idx.nodeTypeL[preL] {
			krs = append(krs, preL)
		}
	}

	return krs
}

// forestDist computes the forest-distance table for the descendants of
// r1 (in idx1) against the descendants of r2 (in idx2), using global
// postL ids throughout, and records every "tree case" cell it visits
// into e.treeDist. r1 and r2 are preL ids.
func (e *tedEngine) forestDist(r1, r2 int) error {
	p1 := e.idx1.preLToPostL[r1]
	p2 := e.idx2.preLToPostL[r2]
	lld1 := e.idx1.postLToLLD[p1]
	lld2 := e.idx2.postLToLLD[p2]

	rows := p1 - lld1 + 2
	cols := p2 - lld2 + 2
	fd, err := fmatrix.New(rows, cols)
	if err != nil {
		return err
	}

	for i := 1; i < rows; i++ {
		preL := e.idx1.postLToPreL[lld1+i-1]
		del, err := e.costOf.del(preL)
		if err != nil {
			return err
		}
		fd.Set(i, 0, fd.At(i-1, 0)+del)
	}
	for j := 1; j < cols; j++ {
		preL := e.idx2.postLToPreL[lld2+j-1]
		ins, err := e.costOf.ins(preL)
		if err != nil {
			return err
		}
		fd.Set(0, j, fd.At(0, j-1)+ins)
	}

	for i := 1; i < rows; i++ {
		postL1 := lld1 + i - 1
		preL1 := e.idx1.postLToPreL[postL1]
		nodeLLD1 := e.idx1.postLToLLD[postL1]

		for j := 1; j < cols; j++ {
			postL2 := lld2 + j - 1
			preL2 := e.idx2.postLToPreL[postL2]
			nodeLLD2 := e.idx2.postLToLLD[postL2]

			del, err := e.costOf.del(preL1)
			if err != nil {
				return err
			}
			ins, err := e.costOf.ins(preL2)
			if err != nil {
				return err
			}

			delCand := fd.At(i-1, j) + del
			insCand := fd.At(i, j-1) + ins

			var best float64
			if nodeLLD1 == lld1 && nodeLLD2 == lld2 {
				upd, err := e.costOf.upd(preL1, preL2)
				if err != nil {
					return err
				}
				updCand := fd.At(i-1, j-1) + upd
				best = minOf3(delCand, insCand, updCand)
				e.treeDist.Set(postL1, postL2, best)
			} else {
				di1 := nodeLLD1 - lld1
				dj1 := nodeLLD2 - lld2
				treeCand := fd.At(di1, dj1) + e.treeDist.At(postL1, postL2)
				best = minOf3(delCand, insCand, treeCand)
			}
			fd.Set(i, j, best)
		}
	}

	return nil
}

func minOf3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}

	return m
}
