// Package bracket implements the bracket-notation tree format used as the
// test input format throughout apted's test suite: "{label{child1}{child2}}".
//
// Grammar (spec.md §6):
//   - A node is "{" label child* "}".
//   - label is every byte from just after the opening "{" up to (but not
//     including) the next "{" or "}" — other bracket families, "()", "[]",
//     "<>", are ordinary label bytes and do not need balancing or escaping.
//   - children are zero or more sibling node productions, concatenated
//     directly with no separator.
//
// Parse is a straightforward recursive-descent parser: matched-bracket
// counting falls out of the recursion itself (each "{" opens a nested
// parseNode call, each call consumes its own matching "}"), in the same style
// builder's deterministic constructors validate and consume their input
// eagerly rather than pre-scanning.
package bracket
