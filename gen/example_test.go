package gen_test

import (
	"fmt"

	"github.com/katalvlaran/apted/gen"
)

// ExampleStar builds a 4-node star and prints its root's child count.
func ExampleStar() {
	root, err := gen.Star(4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("root=%q children=%d\n", root.Label(), len(root.Children()))
	// Output:
	// root="center" children=3
}
