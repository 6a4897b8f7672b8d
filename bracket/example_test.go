package bracket_test

import (
	"fmt"

	"github.com/katalvlaran/apted/bracket"
)

// ExampleParse parses a small tree and serializes it back.
func ExampleParse() {
	tree, err := bracket.Parse("{a{b}{c}}")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(bracket.Serialize(tree))
	// Output:
	// {a{b}{c}}
}
