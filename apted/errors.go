package apted

import "errors"

// Sentinel errors for the apted package.
var (
	// ErrInvalidInput indicates one of the two input trees has no root.
	ErrInvalidInput = errors.New("apted: invalid input tree")

	// ErrInvalidCostModel indicates the supplied cost model produced a
	// negative or non-finite cost for some node or node pair.
	ErrInvalidCostModel = errors.New("apted: invalid cost model")

	// ErrPreconditionViolated indicates ComputeEditMapping was called
	// before ComputeEditDistance completed successfully
	// (ComputeEditDistanceSPFTest does not count). MappingCost and
	// ExecuteOperations* do not check this precondition.
	ErrPreconditionViolated = errors.New("apted: distance must be computed first")
)
