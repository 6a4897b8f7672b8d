package bracket

import "errors"

// Sentinel errors for bracket parsing.
var (
	// ErrEmptyInput indicates an empty or whitespace-only input string.
	ErrEmptyInput = errors.New("bracket: empty input")

	// ErrMalformed indicates a string that does not parse as a single
	// well-formed "{label{...}...}" tree, e.g. unbalanced braces or
	// trailing bytes after the root's closing brace.
	ErrMalformed = errors.New("bracket: malformed tree string")
)
