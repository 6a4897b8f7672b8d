package bracket

import (
	"strings"

	"github.com/katalvlaran/apted/treenode"
)

// Serialize renders t in bracket notation, "{label{child1}{child2}...}".
// Serialize followed by Parse round-trips to an equal label/shape tree
// (spec.md §8 property 7).
func Serialize(t treenode.Node) string {
	var sb strings.Builder
	serialize(t, &sb)

	return sb.String()
}

func serialize(n treenode.Node, sb *strings.Builder) {
	sb.WriteByte('{')
	sb.WriteString(n.Label())
	for _, c := range n.Children() {
		serialize(c, sb)
	}
	sb.WriteByte('}')
}
