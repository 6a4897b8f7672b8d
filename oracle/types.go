package oracle

import "github.com/katalvlaran/apted/treenode"

// Mapping is one entry of a brute-force edit mapping: Dst==nil denotes a
// delete of Src, Src==nil denotes an insert of Dst, and both set denotes
// a rename/match of the two named nodes.
type Mapping struct {
	Src treenode.Node
	Dst treenode.Node
}
