// Package oracle provides a brute-force, unmemoized reference
// implementation of tree edit distance, used to cross-check apted's
// optimized engine against small trees in tests. It enumerates every
// one-to-one partial mapping between the two node sets, keeps those that
// preserve ancestor-descendant and sibling order (checked with its own
// preorder ranks and subtree sizes), and takes the cheapest; it uses no
// dynamic-programming table and shares no code with the apted package's
// engine.
//
// Because it is exponential in the combined tree size, Run and Solve
// refuse inputs above a configurable node-count ceiling rather than
// silently taking an unbounded amount of time — mirroring the size
// guard tsp's exact Held-Karp solver uses for the same reason.
package oracle
