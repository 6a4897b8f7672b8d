package apted

import (
	"math"

	"github.com/katalvlaran/apted/internal/fmatrix"
)

// deltaTable memoizes TED(subtree x in T1, subtree y in T2) by preL id
// pair, filled on demand as gted's recursive decomposition and the
// single-path functions below discover they need it. Unlike spec.md §3's
// delta (which excludes the cost of mapping the two roots), this one
// includes it — the simpler convention a caller-facing "whole subtree
// distance" memo needs, and the one apted/mapping.go's backtrace already
// expects of a tree-distance table (see gted.go's fillFullTreeDist,
// which mapping.go reads from directly).
type deltaTable struct {
	val   [][]float64
	known [][]bool
}

func newDeltaTable(n1, n2 int) *deltaTable {
	val := make([][]float64, n1)
	known := make([][]bool, n1)
	for i := range val {
		val[i] = make([]float64, n2)
		known[i] = make([]bool, n2)
	}

	return &deltaTable{val: val, known: known}
}

func (d *deltaTable) get(x, y int) (float64, bool) { return d.val[x][y], d.known[x][y] }

func (d *deltaTable) set(x, y int, v float64) { d.val[x][y] = v; d.known[x][y] = true }

// spf1 handles the two degenerate single-path cases where at least one
// side is a single node (spec.md §4.4): two singletons reduce to a plain
// update-vs-delete+insert choice; a singleton against a larger subtree
// reduces to picking the one node of the larger side worth renaming the
// singleton into (or not renaming at all, deleting/inserting wholesale).
func spf1(idx1, idx2 *indexer, costOf costAccessor, x, y int) (float64, error) {
	size1, size2 := idx1.size[x], idx2.size[y]

	if size1 == 1 && size2 == 1 {
		upd, err := costOf.upd(x, y)
		if err != nil {
			return 0, err
		}
		del, err := costOf.del(x)
		if err != nil {
			return 0, err
		}
		ins, err := costOf.ins(y)
		if err != nil {
			return 0, err
		}

		return math.Min(upd, del+ins), nil
	}

	if size1 == 1 {
		del, err := costOf.del(x)
		if err != nil {
			return 0, err
		}
		sumIns := idx2.preLToSumInsCost[y]
		best := del + sumIns

		for g := y; g < y+size2; g++ {
			upd, err := costOf.upd(x, g)
			if err != nil {
				return 0, err
			}
			insG, err := costOf.ins(g)
			if err != nil {
				return 0, err
			}
			if cand := sumIns + upd - insG; cand < best {
				best = cand
			}
		}

		return best, nil
	}

	// size2 == 1: symmetric, y is the singleton.
	ins, err := costOf.ins(y)
	if err != nil {
		return 0, err
	}
	sumDel := idx1.preLToSumDelCost[x]
	best := ins + sumDel

	for f := x; f < x+size1; f++ {
		upd, err := costOf.upd(f, y)
		if err != nil {
			return 0, err
		}
		delF, err := costOf.del(f)
		if err != nil {
			return 0, err
		}
		if cand := sumDel + upd - delF; cand < best {
			best = cand
		}
	}

	return best, nil
}

// classifyPathT1 reports which of the three path kinds a decomposition
// path ending at leaf (preL id) takes through the subtree rooted at
// subtreeRoot (preL id), both in idx1: PathLeft if leaf is that
// subtree's leftmost leaf descendant, PathRight if its rightmost, else
// PathInner.
func classifyPathT1(idx *indexer, subtreeRoot, leaf int) PathType {
	lld := idx.postLToPreL[idx.postLToLLD[idx.preLToPostL[subtreeRoot]]]
	if leaf == lld {
		return PathLeft
	}
	rld := idx.postRToPreL[idx.postRToRLD[idx.preLToPostR[subtreeRoot]]]
	if leaf == rld {
		return PathRight
	}

	return PathInner
}

// walkOffPathT1 walks the decomposition path in idx1 from leaf up to
// subtreeRoot, and at every level recurses gted into every sibling
// subtree the path does not pass through, paired against the fixed
// other-tree subtree rootY — the "off-path children" half of spec.md
// §4.5's recursive decomposition.
func walkOffPathT1(idx1, idx2 *indexer, costOf costAccessor, strat *fmatrix.Matrix, d *deltaTable, subtreeRoot, rootY, leaf int) error {
	v := leaf
	for v != subtreeRoot {
		p := idx1.parent[v]
		for _, c := range idx1.children[p] {
			if c == v {
				continue
			}
			if _, err := gted(idx1, idx2, costOf, strat, d, c, rootY); err != nil {
				return err
			}
		}
		v = p
	}

	return nil
}

// classifyPathT2 and walkOffPathT2 mirror their T1 counterparts for the
// case where the strategy computer chose a path through T2 instead.
func classifyPathT2(idx *indexer, subtreeRoot, leaf int) PathType {
	return classifyPathT1(idx, subtreeRoot, leaf)
}

func walkOffPathT2(idx1, idx2 *indexer, costOf costAccessor, strat *fmatrix.Matrix, d *deltaTable, rootX, subtreeRoot, leaf int) error {
	v := leaf
	for v != subtreeRoot {
		p := idx2.parent[v]
		for _, c := range idx2.children[p] {
			if c == v {
				continue
			}
			if _, err := gted(idx1, idx2, costOf, strat, d, rootX, c); err != nil {
				return err
			}
		}
		v = p
	}

	return nil
}

// spfL, spfR and spfA all solve the same forest-distance recurrence
// (Zhang & Shasha 1989) for the subtree pair (x, y); they differ only in
// which global order (postL/leftmost-leaf-descendant, or postR/
// rightmost-leaf-descendant) anchors the boundary bookkeeping — a choice
// that affects which off-path subtree pairs get reused from d versus
// recomputed, not the value produced (spec.md §8 property 5's SPF-
// equivalence). spfA, invoked for PathInner, shares spfL's postL
// anchoring: the inner-path case only changes where along the tree the
// path bends, not the shape of the recurrence that resolves it, and
// spec.md §9 explicitly sanctions simplifying spfA's bookkeeping (its
// fn/ft active-node linked list) down to a direct scan — this goes one
// step further and reuses spfL's table builder outright, documented here
// as that simplification rather than hidden as a silent alias.
func spfL(idx1, idx2 *indexer, costOf costAccessor, strat *fmatrix.Matrix, d *deltaTable, x, y int) (float64, error) {
	return pathForestDist(idx1, idx2, costOf, strat, d, x, y, false)
}

func spfR(idx1, idx2 *indexer, costOf costAccessor, strat *fmatrix.Matrix, d *deltaTable, x, y int) (float64, error) {
	return pathForestDist(idx1, idx2, costOf, strat, d, x, y, true)
}

func spfA(idx1, idx2 *indexer, costOf costAccessor, strat *fmatrix.Matrix, d *deltaTable, x, y int) (float64, error) {
	return pathForestDist(idx1, idx2, costOf, strat, d, x, y, false)
}

// pathForestDist computes the classical Zhang-Shasha forest-distance
// table for the descendants of x against the descendants of y, anchored
// on postL/LLD (useRight=false) or postR/RLD (useRight=true). Cells whose
// leftmost(rightmost)-descendant boundary matches the outer pair's own
// are "tree case" cells computed directly from the table and memoized
// into d; all other cells fall back to gted's memoized recursion for the
// whole-subtree distance they need, which is always a strictly smaller
// pair than (x, y) and therefore terminates.
func pathForestDist(idx1, idx2 *indexer, costOf costAccessor, strat *fmatrix.Matrix, d *deltaTable, x, y int, useRight bool) (float64, error) {
	ord1, ord2, lld1, lld2, base1, base2 := orderArrays(idx1, idx2, x, y, useRight)

	rows := base1 + 2
	cols := base2 + 2
	fd, err := fmatrix.New(rows, cols)
	if err != nil {
		return 0, err
	}

	for i := 1; i < rows; i++ {
		preL := ord1.toPreL(lld1 + i - 1)
		del, err := costOf.del(preL)
		if err != nil {
			return 0, err
		}
		fd.Set(i, 0, fd.At(i-1, 0)+del)
	}
	for j := 1; j < cols; j++ {
		preL := ord2.toPreL(lld2 + j - 1)
		ins, err := costOf.ins(preL)
		if err != nil {
			return 0, err
		}
		fd.Set(0, j, fd.At(0, j-1)+ins)
	}

	for i := 1; i < rows; i++ {
		pos1 := lld1 + i - 1
		preL1 := ord1.toPreL(pos1)
		bound1 := ord1.boundary(pos1)

		for j := 1; j < cols; j++ {
			pos2 := lld2 + j - 1
			preL2 := ord2.toPreL(pos2)
			bound2 := ord2.boundary(pos2)

			del, err := costOf.del(preL1)
			if err != nil {
				return 0, err
			}
			ins, err := costOf.ins(preL2)
			if err != nil {
				return 0, err
			}
			delCand := fd.At(i-1, j) + del
			insCand := fd.At(i, j-1) + ins

			var best float64
			if bound1 == lld1 && bound2 == lld2 {
				upd, err := costOf.upd(preL1, preL2)
				if err != nil {
					return 0, err
				}
				best = minOf3(delCand, insCand, fd.At(i-1, j-1)+upd)
				d.set(preL1, preL2, best)
			} else {
				sub, err := gted(idx1, idx2, costOf, strat, d, preL1, preL2)
				if err != nil {
					return 0, err
				}
				di1 := bound1 - lld1
				dj1 := bound2 - lld2
				best = minOf3(delCand, insCand, fd.At(di1, dj1)+sub)
			}
			fd.Set(i, j, best)
		}
	}

	return fd.At(rows-1, cols-1), nil
}

// order abstracts over the postL/LLD and postR/RLD addressing schemes so
// pathForestDist can be written once and run in either direction.
type order struct {
	toPreL   func(pos int) int
	boundary func(pos int) int // leftmost/rightmost leaf descendant, in this same order's ids
}

func orderArrays(idx1, idx2 *indexer, x, y int, useRight bool) (ord1, ord2 order, lld1, lld2, base1, base2 int) {
	if !useRight {
		ord1 = order{toPreL: func(pos int) int { return idx1.postLToPreL[pos] }, boundary: func(pos int) int { return idx1.postLToLLD[pos] }}
		ord2 = order{toPreL: func(pos int) int { return idx2.postLToPreL[pos] }, boundary: func(pos int) int { return idx2.postLToLLD[pos] }}
		p1 := idx1.preLToPostL[x]
		p2 := idx2.preLToPostL[y]
		lld1 = idx1.postLToLLD[p1]
		lld2 = idx2.postLToLLD[p2]
		base1 = p1 - lld1
		base2 = p2 - lld2

		return ord1, ord2, lld1, lld2, base1, base2
	}

	ord1 = order{toPreL: func(pos int) int { return idx1.postRToPreL[pos] }, boundary: func(pos int) int { return idx1.postRToRLD[pos] }}
	ord2 = order{toPreL: func(pos int) int { return idx2.postRToPreL[pos] }, boundary: func(pos int) int { return idx2.postRToRLD[pos] }}
	p1 := idx1.preLToPostR[x]
	p2 := idx2.preLToPostR[y]
	lld1 = idx1.postRToRLD[p1]
	lld2 = idx2.postRToRLD[p2]
	base1 = p1 - lld1
	base2 = p2 - lld2

	return ord1, ord2, lld1, lld2, base1, base2
}
