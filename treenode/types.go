package treenode

import "errors"

// Sentinel errors for tree construction.
var (
	// ErrEmptyTree indicates an operation was given a tree with no root.
	ErrEmptyTree = errors.New("treenode: tree has no root")

	// ErrNilChild indicates a nil child was passed to NewNode.
	ErrNilChild = errors.New("treenode: nil child")
)

// Node is the capability apted consumes from an input tree: a label of
// parametric type (here, a plain string) and an ordered sequence of
// children. Implementations must return children in the same order on
// every call — order is semantically meaningful to tree edit distance.
type Node interface {
	// Label returns this node's label.
	Label() string

	// Children returns this node's children, left to right. A leaf
	// returns an empty (possibly nil) slice.
	Children() []Node
}

// Tree emphasizes that any Node, taken together with its descendants, is
// a complete rooted ordered tree — the root IS the tree.
type Tree = Node
