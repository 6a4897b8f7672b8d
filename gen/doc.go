// Package gen builds small labeled trees for tests, benchmarks, and
// examples: simple parametric shapes (Path, Star, CompleteKary) and a
// single stochastic generator (Random) for fuzz-style coverage.
//
// Every constructor returns a *treenode.SimpleNode directly rather than
// the Constructor-closure-over-a-mutable-graph pattern lvlath's builder
// package uses — trees here are built bottom-up in one shot, so there is
// no shared mutable state for a closure to capture.
package gen
