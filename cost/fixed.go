package cost

import (
	"math"

	"github.com/katalvlaran/apted/treenode"
)

// FixedCost charges the same constant for every delete, every insert, and
// every update, regardless of the labels involved. Unlike UnitCost, a
// FixedCost's Update does not special-case equal labels — it is a
// deliberately label-blind cost model used to exercise non-metric,
// non-identity cost configurations (spec.md §8 scenario S4 uses
// FixedCost(0.4, 0.4, 0.6)).
type FixedCost struct {
	Del float64
	Ins float64
	Upd float64
}

// compile-time assertion.
var _ CostModel = FixedCost{}

// NewFixedCost validates del, ins, upd and returns a FixedCost, or an
// error if any of them is negative or non-finite.
func NewFixedCost(del, ins, upd float64) (FixedCost, error) {
	fc := FixedCost{Del: del, Ins: ins, Upd: upd}
	if err := Validate(fc); err != nil {
		return FixedCost{}, err
	}

	return fc, nil
}

// Delete returns Del.
func (f FixedCost) Delete(treenode.Node) float64 { return f.Del }

// Insert returns Ins.
func (f FixedCost) Insert(treenode.Node) float64 { return f.Ins }

// Update returns Upd, regardless of whether src and dst share a label.
func (f FixedCost) Update(_, _ treenode.Node) float64 { return f.Upd }

// Validate reports ErrNegativeCost or ErrNonFiniteCost for a FixedCost
// with an invalid constant. Other CostModel implementations are
// validated by apted as it reads their costs (oracle does not validate
// them), since their cost may depend on arbitrary node labels; FixedCost's
// constants are known up front, so Validate can check them directly.
func Validate(f FixedCost) error {
	for _, c := range [...]float64{f.Del, f.Ins, f.Upd} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return ErrNonFiniteCost
		}
		if c < 0 {
			return ErrNegativeCost
		}
	}

	return nil
}
