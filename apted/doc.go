// Package apted computes the tree edit distance (and an optimal edit
// mapping) between two ordered, labeled trees under a caller-supplied
// cost model, following Pawlik & Augsten's APTED algorithm.
//
// Four passes build the machinery the distance computation needs. An
// indexer (indexer.go) flattens each input tree into parallel arrays
// addressed by four traversal orders (preL, preR, postL, postR) plus
// their leaf-descendant and cost-aggregate arrays. A strategy computer
// (strategy.go) scores, for every pair of non-leaf subtree roots, which
// of six candidate root-to-leaf paths is cheapest to resolve that pair
// through. The gted driver (gted.go) walks that recommendation
// recursively: it resolves TED(x, y) by decoding the strategy cell for
// (x, y) into an owning tree and a path, recursing into every subtree
// hanging off that path first, then folding the results into one of the
// three single-path functions (spf.go) — spfL/spfR for paths that run to
// a leftmost/rightmost leaf, spfA for any other path — which apply the
// classical forest-distance recurrence (Zhang & Shasha 1989) to produce
// TED(x, y) itself. A path choice changes only how much work gted does
// to reach the answer, never the answer (spec's SPF-equivalence
// property); ComputeEditDistanceSPFTest exploits this by forcing every
// decision to spfL or spfR, so tests can check the result still agrees
// with the unforced computation.
//
// Mapping extraction (mapping.go) backtraces a minimum-cost edit mapping
// from a second, exhaustively filled table, since its own backtrace
// needs broader keyroot-pair coverage than gted's strategy-guided
// recursion produces on its own.
package apted
