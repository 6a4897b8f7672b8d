package bracket

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/apted/treenode"
)

// Parse parses a single bracket-notation tree, e.g. "{a{b}{c}}", and
// returns its root. Leading/trailing whitespace around the whole string
// is tolerated; anything else outside the matched root braces is
// ErrMalformed.
func Parse(s string) (*treenode.SimpleNode, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}

	node, rest, err := parseNode(trimmed)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, fmt.Errorf("bracket: trailing input %q: %w", rest, ErrMalformed)
	}

	return node, nil
}

// parseNode consumes one "{label child*}" production from the front of s
// and returns the parsed node plus whatever of s remains unconsumed.
func parseNode(s string) (*treenode.SimpleNode, string, error) {
	if len(s) == 0 || s[0] != '{' {
		return nil, s, ErrMalformed
	}

	// Scan the label: everything from position 1 up to the next '{' or '}'.
	i := 1
	for i < len(s) && s[i] != '{' && s[i] != '}' {
		i++
	}
	if i >= len(s) {
		return nil, s, ErrMalformed
	}
	label := s[1:i]

	var children []*treenode.SimpleNode
	for i < len(s) && s[i] == '{' {
		child, remainder, err := parseNode(s[i:])
		if err != nil {
			return nil, s, err
		}
		children = append(children, child)
		i += len(s[i:]) - len(remainder)
	}

	if i >= len(s) || s[i] != '}' {
		return nil, s, ErrMalformed
	}
	i++ // consume the closing brace

	return treenode.NewNode(label, children...), s[i:], nil
}
