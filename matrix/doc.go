// Package matrix provides the dense integer matrix used by the
// Branch-and-Bound cost matrix and its block reductions.
//
// What:
//
//   - Dense is a row-major matrix of int values, backed by a single flat
//     slice for cache-friendly access.
//
// Why:
//
//   - Grid distances are exact integers; carrying them as int instead of
//     float64 avoids the rounding/stabilization concerns a general-purpose
//     numeric library would need, since no fractional or irrational values
//     ever enter this matrix.
//
// Complexity:
//
//   - NewDense: O(rows×cols).
//   - At, Set: O(1).
//   - Clone: O(rows×cols), used once per Branch-and-Bound tree-node
//     expansion to avoid mutating a parent's matrix.
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols is non-positive.
//   - ErrIndexOutOfBounds: a row or column index is outside [0, rows) /
//     [0, cols).
package matrix
