package apted

import "github.com/katalvlaran/apted/internal/fmatrix"

const (
	opMatch = iota
	opDelete
	opInsert
	opTreeJump
)

// computeMapping recovers an edit mapping consistent with e.treeDist by
// re-deriving each keyroot pair's forest-distance table (this time
// tracking which of the three recurrence branches won each cell) and
// tracing it back from the bottom-right corner to the origin, per
// Zhang & Shasha's "Treematch" backtrace. Every cell traced here was
// already computed once by fillFullTreeDist; re-deriving rather than caching the
// full per-(v,w) tables trades memory (O(n1*n2) tables, live only one
// at a time) for a second pass of the same O(n1*n2*leaf-depth) work —
// the classical space/time tradeoff for this family of algorithms.
func (e *tedEngine) computeMapping() ([]Pair, error) {
	if err := e.fillFullTreeDist(); err != nil {
		return nil, err
	}

	var mapping []Pair
	stack := [][2]int{{0, 0}} // preL roots: preorder always assigns the root id 0

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		r1, r2 := top[0], top[1]

		pairs, jumps, err := e.traceOne(r1, r2)
		if err != nil {
			return nil, err
		}
		mapping = append(mapping, pairs...)
		stack = append(stack, jumps...)
	}

	return mapping, nil
}

// traceOne rebuilds the forest-distance table for (r1, r2) (preL ids of
// the two subtree roots) with per-cell operation tags, then backtraces
// it into a set of Pair matches/deletes/inserts plus a list of further
// (preL1, preL2) subtree-root pairs whose comparison was deferred to a
// treeDist lookup ("tree jumps") and must be traced separately.
func (e *tedEngine) traceOne(r1, r2 int) ([]Pair, [][2]int, error) {
	p1 := e.idx1.preLToPostL[r1]
	p2 := e.idx2.preLToPostL[r2]
	lld1 := e.idx1.postLToLLD[p1]
	lld2 := e.idx2.postLToLLD[p2]

	rows := p1 - lld1 + 2
	cols := p2 - lld2 + 2
	fd, err := fmatrix.New(rows, cols)
	if err != nil {
		return nil, nil, err
	}
	op := make([][]int, rows)
	for i := range op {
		op[i] = make([]int, cols)
	}

	for i := 1; i < rows; i++ {
		preL := e.idx1.postLToPreL[lld1+i-1]
		del, err := e.costOf.del(preL)
		if err != nil {
			return nil, nil, err
		}
		fd.Set(i, 0, fd.At(i-1, 0)+del)
		op[i][0] = opDelete
	}
	for j := 1; j < cols; j++ {
		preL := e.idx2.postLToPreL[lld2+j-1]
		ins, err := e.costOf.ins(preL)
		if err != nil {
			return nil, nil, err
		}
		fd.Set(0, j, fd.At(0, j-1)+ins)
		op[0][j] = opInsert
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
				return nil, nil, err
			}
			ins, err := e.costOf.ins(preL2)
			if err != nil {
				return nil, nil, err
			}

			delCand := fd.At(i-1, j) + del
			insCand := fd.At(i, j-1) + ins

			isTreeCase := nodeLLD1 == lld1 && nodeLLD2 == lld2
			var thirdCand float64
			if isTreeCase {
				upd, err := e.costOf.upd(preL1, preL2)
				if err != nil {
					return nil, nil, err
				}
				thirdCand = fd.At(i-1, j-1) + upd
			} else {
				di1 := nodeLLD1 - lld1
				dj1 := nodeLLD2 - lld2
				thirdCand = fd.At(di1, dj1) + e.treeDist.At(postL1, postL2)
			}

			best := delCand
			bestOp := opDelete
			if insCand < best {
				best, bestOp = insCand, opInsert
			}
			if thirdCand < best {
				best = thirdCand
				if isTreeCase {
					bestOp = opMatch
				} else {
					bestOp = opTreeJump
				}
			}
			fd.Set(i, j, best)
			op[i][j] = bestOp
		}
	}

	var pairs []Pair
	var jumps [][2]int
	i, j := rows-1, cols-1
	for i > 0 || j > 0 {
		switch {
		case i > 0 && op[i][j] == opDelete:
			postL1 := lld1 + i - 1
			pairs = append(pairs, Pair{Src: postL1 + 1, Dst: 0})
			i--
		case j > 0 && op[i][j] == opInsert:
			postL2 := lld2 + j - 1
			pairs = append(pairs, Pair{Src: 0, Dst: postL2 + 1})
			j--
		case op[i][j] == opMatch:
			postL1 := lld1 + i - 1
			postL2 := lld2 + j - 1
			pairs = append(pairs, Pair{Src: postL1 + 1, Dst: postL2 + 1})
			i--
			j--
		default: // opTreeJump
			postL1 := lld1 + i - 1
			postL2 := lld2 + j - 1
			jumps = append(jumps, [2]int{e.idx1.postLToPreL[postL1], e.idx2.postLToPreL[postL2]})
			nodeLLD1 := e.idx1.postLToLLD[postL1]
			nodeLLD2 := e.idx2.postLToLLD[postL2]
			i = nodeLLD1 - lld1
			j = nodeLLD2 - lld2
		}
	}

	return pairs, jumps, nil
}
