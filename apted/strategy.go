package apted

import (
	"math"

	"github.com/katalvlaran/apted/internal/fmatrix"
)

// pathCosts holds, for every node i of one tree with size[i]>1, the
// cheapest known cost of routing a GTED decomposition path through i via
// each of the three path kinds, together with the leaf that path kind
// currently ends at. It is the per-tree precomputation strategy.go uses
// to score the six path candidates for every (v,w) pair.
//
// This trades the reference's row-recycling, incrementally-updated-
// during-the-(v,w)-loop bookkeeping for a single O(n) bottom-up pass
// computed once per tree up front — an explicitly sanctioned
// alternative (spec.md §9: "a reimplementation may instead allocate an
// n1-row pool up front"). Strategy quality (and hence GTED's constant
// factor) may differ slightly from the reference; correctness does not,
// since any valid per-pair path assignment yields the same TED
// (spec.md §8 property 5 relies on exactly this fact).
type pathCosts struct {
	costL, costR, costI []float64
	leafL, leafR, leafI []int
}

func computePathCosts(idx *indexer) pathCosts {
	n := idx.treeSize
	pc := pathCosts{
		costL: make([]float64, n),
		costR: make([]float64, n),
		costI: make([]float64, n),
		leafL: make([]int, n),
		leafR: make([]int, n),
		leafI: make([]int, n),
	}

	for j := 0; j < n; j++ {
		p := idx.postLToPreL[j]
		if idx.isLeaf(p) {
			pc.costL[p] = 0
			pc.costR[p] = 0
			pc.costI[p] = math.Inf(1)
			pc.leafL[p] = p
			pc.leafR[p] = p
			pc.leafI[p] = -1
			continue
		}

		bestInner := math.Inf(1)
		bestInnerLeaf := -1
		for _, c := range idx.children[p] {
			cCost, cLeaf := bestOfThree(
				pc.costL[c], pc.leafL[c],
				pc.costR[c], pc.leafR[c],
				pc.costI[c], pc.leafI[c],
			)
			candidate := cCost + float64(idx.size[c])
			if candidate < bestInner {
				bestInner = candidate
				bestInnerLeaf = cLeaf
			}

			if idx.nodeTypeL[c] {
				pc.costL[p] = pc.costL[c] + float64(idx.size[c])
				pc.leafL[p] = pc.leafL[c]
			}
			if idx.nodeTypeR[c] {
				pc.costR[p] = pc.costR[c] + float64(idx.size[c])
				pc.leafR[p] = pc.leafR[c]
			}
		}
		pc.costI[p] = bestInner
		pc.leafI[p] = bestInnerLeaf
	}

	return pc
}

func bestOfThree(cL float64, lL int, cR float64, lR int, cI float64, lI int) (float64, int) {
	best, leaf := cL, lL
	if cR < best {
		best, leaf = cR, lR
	}
	if cI < best {
		best, leaf = cI, lI
	}

	return best, leaf
}

// buildStrategy fills an n1 x n2 matrix with one encoded path id per
// (v,w) pair, per spec.md §4.3's six-candidate minimization. Pairs where
// either subtree is a leaf are left at the zero value — GTED never
// consults strategy for those, it short-circuits to spf1 first.
func buildStrategy(idx1, idx2 *indexer, forced pathStrategyOverride) *fmatrix.Matrix {
	pc1 := computePathCosts(idx1)
	pc2 := computePathCosts(idx2)

	n1, n2 := idx1.treeSize, idx2.treeSize
	strat, err := fmatrix.New(n1, n2)
	if err != nil {
		// n1,n2 are tree sizes of already-validated non-empty trees,
		// always >= 1; this can only fail on a programmer error.
		panic(err)
	}

	k := n1 // pathIdOffset, per spec.md §4.3.

	for v := 0; v < n1; v++ {
		if idx1.isLeaf(v) {
			continue
		}
		for w := 0; w < n2; w++ {
			if idx2.isLeaf(w) {
				continue
			}

			var (
				bestCost = math.Inf(1)
				ownerT2  bool
				kind     PathType
				leaf     int
			)
			consider := func(c float64, owner bool, k2 PathType, l int) {
				if c < bestCost {
					bestCost, ownerT2, kind, leaf = c, owner, k2, l
				}
			}

			switch forced {
			case strategyForcePostL:
				consider(0, false, PathLeft, pc1.leafL[v])
			case strategyForcePostR:
				consider(0, false, PathRight, pc1.leafR[v])
			default:
				consider(pc1.costL[v]+float64(idx2.preLToKRSum[w]), false, PathLeft, pc1.leafL[v])
				consider(pc1.costR[v]+float64(idx2.preLToRevKRSum[w]), false, PathRight, pc1.leafR[v])
				if pc1.leafI[v] >= 0 {
					consider(pc1.costI[v]+float64(idx2.preLToDescSum[w]), false, PathInner, pc1.leafI[v])
				}
				consider(pc2.costL[w]+float64(idx1.preLToKRSum[v]), true, PathLeft, pc2.leafL[w])
				consider(pc2.costR[w]+float64(idx1.preLToRevKRSum[v]), true, PathRight, pc2.leafR[w])
				if pc2.leafI[w] >= 0 {
					consider(pc2.costI[w]+float64(idx1.preLToDescSum[v]), true, PathInner, pc2.leafI[w])
				}
			}

			strat.Set(v, w, float64(encodePath(ownerT2, kind, leaf, k)))
		}
	}

	return strat
}

// encodePath packs (owner, kind, leaf) into the single signed integer
// spec.md §3/§4.3 describes: negative => left path; magnitude-1 < K =>
// path in T1; magnitude-1 >= K => path in T2 (offset by K). Right vs.
// inner is not encoded structurally — it is recovered at decode time by
// comparing the decoded leaf against the owning subtree's actual
// rightmost descendant (spec.md §3's strategy-matrix decode rule).
func encodePath(ownerT2 bool, kind PathType, leaf, k int) int {
	magnitude := leaf + 1
	if ownerT2 {
		magnitude += k
	}
	if kind == PathLeft {
		return -magnitude
	}

	return magnitude
}

// decodePath recovers (ownerT2, leaf) from an encoded path id.
func decodePath(code, k int) (ownerT2 bool, leaf int) {
	magnitude := code
	if magnitude < 0 {
		magnitude = -magnitude
	}
	magnitude--

	if magnitude >= k {
		return true, magnitude - k
	}

	return false, magnitude
}
