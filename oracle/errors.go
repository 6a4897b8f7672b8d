package oracle

import "errors"

// ErrResourceExceeded indicates one of the two input trees exceeds the
// configured MaxNodes ceiling; the brute-force search is exponential and
// refuses to run unbounded.
var ErrResourceExceeded = errors.New("oracle: tree exceeds node limit")

// ErrInvalidInput indicates a nil tree or cost model was supplied.
var ErrInvalidInput = errors.New("oracle: invalid input")
