// Package fmatrix provides a small, row-major dense float64 matrix used
// internally by apted as the backing store for the treeDist and strategy
// tables and for per-call forest-distance scratch tables.
//
// It is trimmed from the teacher pack's matrix.Dense: only the flat
// row-major layout and shape validation are carried over. Dense's
// eigen/LU/QR/statistics/graph-adapter surface has no role in tree edit
// distance and is not ported (see DESIGN.md).
package fmatrix
