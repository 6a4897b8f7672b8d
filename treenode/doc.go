// Package treenode defines the Node capability consumed by the apted
// package — a labeled, ordered tree node exposing its label and its
// children in left-to-right order — and a concrete, immutable
// implementation of it for tests, benchmarks, and the bracket parser.
//
// A Tree is nothing more than its root Node: any Node, together with the
// subtree it roots, is a complete ordered tree. Concrete trees built with
// NewNode/NewLeaf are immutable once constructed, matching the "trees are
// immutable during a TED computation" contract required by apted.
package treenode
