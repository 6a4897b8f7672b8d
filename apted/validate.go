package apted

import (
	"fmt"
	"math"

	"github.com/katalvlaran/apted/cost"
)

// checkCost validates a single cost value observed from the caller's
// cost model, wrapping cost's sentinels into apted.ErrInvalidCostModel
// per spec.md §7: invalid cost models fail on first observation rather
// than being pre-scanned.
func checkCost(c float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return fmt.Errorf("%w: %v: %w", ErrInvalidCostModel, c, cost.ErrNonFiniteCost)
	}
	if c < 0 {
		return fmt.Errorf("%w: %v: %w", ErrInvalidCostModel, c, cost.ErrNegativeCost)
	}

	return nil
}
