package apted

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/apted/cost"
	"github.com/katalvlaran/apted/internal/fmatrix"
	"github.com/katalvlaran/apted/treenode"
)

// Apted computes the edit distance, and optionally an edit mapping,
// between two trees under a caller-supplied cost model. One instance
// holds the work for one (t1, t2) pair; build a new instance to compare
// a different pair.
type Apted struct {
	idx1, idx2 *indexer
	model      cost.CostModel
	cfg        config

	engine       *tedEngine
	distance     float64
	computed     bool
	mapping      []Pair
	mappingKnown bool
}

// New indexes both trees and validates the cost model's sign/finiteness
// invariant against every node it observes. It does not run the
// comparison itself; call ComputeEditDistance for that.
func New(t1, t2 treenode.Tree, model cost.CostModel, opts ...Option) (*Apted, error) {
	if t1 == nil || t2 == nil {
		return nil, ErrInvalidInput
	}
	if model == nil {
		return nil, fmt.Errorf("apted: %w: nil cost model", ErrInvalidCostModel)
	}

	idx1, err := buildIndexer(t1, model)
	if err != nil {
		return nil, err
	}
	idx2, err := buildIndexer(t2, model)
	if err != nil {
		return nil, err
	}

	return &Apted{
		idx1:  idx1,
		idx2:  idx2,
		model: model,
		cfg:   newConfig(opts...),
	}, nil
}

// modelCostAccessor adapts a validated indexer pair and the caller's
// cost model to the costAccessor the ted engine consumes. Delete/insert
// costs are read from the indexer's precomputed per-node values (already
// validated once, at indexing time); update costs are validated lazily,
// the first time a given (src,dst) pair is actually observed, per
// spec.md §7.
type modelCostAccessor struct {
	idx1, idx2 *indexer
	model      cost.CostModel
}

func (a *modelCostAccessor) del(preL1 int) (float64, error) {
	return a.idx1.preLToDelCost[preL1], nil
}

func (a *modelCostAccessor) ins(preL2 int) (float64, error) {
	return a.idx2.preLToInsCost[preL2], nil
}

func (a *modelCostAccessor) upd(preL1, preL2 int) (float64, error) {
	c := a.model.Update(a.idx1.preLToNode[preL1], a.idx2.preLToNode[preL2])
	if err := checkCost(c); err != nil {
		return 0, err
	}

	return c, nil
}

// ComputeEditDistance returns the tree edit distance between the two
// trees New was called with, under their cost model.
func (a *Apted) ComputeEditDistance() (float64, error) {
	if a.computed {
		return a.distance, nil
	}

	engine, err := newTEDEngine(a.idx1, a.idx2, &modelCostAccessor{idx1: a.idx1, idx2: a.idx2, model: a.model})
	if err != nil {
		return 0, err
	}
	dist, err := engine.runWithStrategy(buildStrategy(a.idx1, a.idx2, a.cfg.forcedStrategy))
	if err != nil {
		return 0, err
	}

	a.engine = engine
	a.distance = dist
	a.computed = true

	return dist, nil
}

// ComputeEditDistanceSPFTest recomputes the distance forcing every
// decomposition point's strategy cell to PathLeft or PathRight, so the
// gted driver dispatches to spfL (resp. spfR) throughout instead of
// following the automatic strategy's per-pair choice. The result must
// equal ComputeEditDistance's, since a path choice only ever changes how
// the distance is derived, never its value (spec.md §8 property 5 — SPF
// equivalence). It is primarily useful in tests exercising that
// property.
func (a *Apted) ComputeEditDistanceSPFTest(forced PathType) (float64, error) {
	strat := a.PathStrategy(forced)

	engine, err := newTEDEngine(a.idx1, a.idx2, &modelCostAccessor{idx1: a.idx1, idx2: a.idx2, model: a.model})
	if err != nil {
		return 0, err
	}

	return engine.runWithStrategy(strat)
}

// PathStrategy exposes the strategy computer's recommendation matrix for
// introspection and testing. PathLeft or PathRight forces every cell to
// that path for this one call; PathInner keeps the selection configured
// at New time (WithPathStrategy, or the automatic strategy by default).
func (a *Apted) PathStrategy(forced PathType) *fmatrix.Matrix {
	override := a.cfg.forcedStrategy
	switch forced {
	case PathLeft:
		override = strategyForcePostL
	case PathRight:
		override = strategyForcePostR
	}

	return buildStrategy(a.idx1, a.idx2, override)
}

// ComputeEditMapping returns a minimum-cost edit mapping consistent with
// ComputeEditDistance's value. ComputeEditDistance must have completed
// successfully first; ComputeEditDistanceSPFTest does not satisfy this
// precondition; it runs its own engine instance for testing and does not
// record it as the one ComputeEditMapping backtraces from.
func (a *Apted) ComputeEditMapping() ([]Pair, error) {
	if a.mappingKnown {
		return a.mapping, nil
	}
	if !a.computed {
		return nil, ErrPreconditionViolated
	}

	mapping, err := a.engine.computeMapping()
	if err != nil {
		return nil, err
	}
	a.mapping = mapping
	a.mappingKnown = true

	return mapping, nil
}

// MappingCost sums the cost a given mapping implies under this Apted's
// cost model: a delete for every Dst==0 pair, an insert for every
// Src==0 pair, and an update for every matched pair.
func (a *Apted) MappingCost(mapping []Pair) float64 {
	var total float64
	for _, p := range mapping {
		switch {
		case p.Dst == 0:
			preL := a.idx1.postLToPreL[p.Src-1]
			total += a.idx1.preLToDelCost[preL]
		case p.Src == 0:
			preL := a.idx2.postLToPreL[p.Dst-1]
			total += a.idx2.preLToInsCost[preL]
		default:
			preL1 := a.idx1.postLToPreL[p.Src-1]
			preL2 := a.idx2.postLToPreL[p.Dst-1]
			total += a.model.Update(a.idx1.preLToNode[preL1], a.idx2.preLToNode[preL2])
		}
	}

	return total
}

// ExecuteOperations replays mapping against exec in an order safe for a
// live, mutating tree: deletes in postorder (children before parents),
// then updates, then inserts in preorder (parents before children).
func (a *Apted) ExecuteOperations(mapping []Pair, exec Executor) error {
	return a.execute(mapping, exec, false)
}

// ExecuteOperationsInReverse replays mapping as its own inverse: inserts
// first (in reverse T2 preorder, i.e. children before parents), then
// updates, then deletes (in reverse T1 postorder, i.e. parents before
// children).
func (a *Apted) ExecuteOperationsInReverse(mapping []Pair, exec Executor) error {
	return a.execute(mapping, exec, true)
}

func (a *Apted) execute(mapping []Pair, exec Executor, reverse bool) error {
	var deletes, inserts, updates []Pair
	for _, p := range mapping {
		switch {
		case p.Dst == 0:
			deletes = append(deletes, p)
		case p.Src == 0:
			inserts = append(inserts, p)
		default:
			updates = append(updates, p)
		}
	}

	// Deletes: postL order is already children-before-parents.
	sort.Slice(deletes, func(i, j int) bool { return deletes[i].Src < deletes[j].Src })
	// Inserts: order by preL id in T2, i.e. parents before children.
	sort.Slice(inserts, func(i, j int) bool {
		return a.idx2.postLToPreL[inserts[i].Dst-1] < a.idx2.postLToPreL[inserts[j].Dst-1]
	})

	runDeletes := func() error {
		for _, p := range deletes {
			preL := a.idx1.postLToPreL[p.Src-1]
			if err := exec.Delete(a.idx1.preLToNode[preL]); err != nil {
				return err
			}
		}

		return nil
	}
	runInserts := func() error {
		for _, p := range inserts {
			preL := a.idx2.postLToPreL[p.Dst-1]
			if err := exec.Insert(a.idx2.preLToNode[preL]); err != nil {
				return err
			}
		}

		return nil
	}
	runUpdates := func() error {
		for _, p := range updates {
			preL1 := a.idx1.postLToPreL[p.Src-1]
			preL2 := a.idx2.postLToPreL[p.Dst-1]
			if err := exec.Update(a.idx1.preLToNode[preL1], a.idx2.preLToNode[preL2]); err != nil {
				return err
			}
		}

		return nil
	}

	if !reverse {
		if err := runDeletes(); err != nil {
			return err
		}
		if err := runUpdates(); err != nil {
			return err
		}

		return runInserts()
	}

	// Reverse replay: undo in the opposite order (inserts first, since
	// a reverse pass undoes a delete by inserting; deletes last, since
	// it undoes an insert by deleting) and reverse each sub-order too.
	sort.Slice(inserts, func(i, j int) bool {
		return a.idx2.postLToPreL[inserts[i].Dst-1] > a.idx2.postLToPreL[inserts[j].Dst-1]
	})
	sort.Slice(deletes, func(i, j int) bool { return deletes[i].Src > deletes[j].Src })

	if err := runInserts(); err != nil {
		return err
	}
	if err := runUpdates(); err != nil {
		return err
	}

	return runDeletes()
}
