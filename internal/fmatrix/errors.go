package fmatrix

import "errors"

// Sentinel errors for fmatrix construction and checked access.
var (
	// ErrInvalidDimensions indicates a requested shape with rows<=0 or cols<=0.
	ErrInvalidDimensions = errors.New("fmatrix: dimensions must be > 0")

	// ErrOutOfRange indicates a checked access outside the matrix bounds.
	ErrOutOfRange = errors.New("fmatrix: index out of range")
)
