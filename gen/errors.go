package gen

import "errors"

// ErrTooFewNodes indicates n (or an equivalent size parameter) is smaller
// than the minimum a generator accepts.
var ErrTooFewNodes = errors.New("gen: parameter too small")

// ErrInvalidDegree indicates a branching factor k < 1 was requested for
// CompleteKary.
var ErrInvalidDegree = errors.New("gen: invalid branching degree")
