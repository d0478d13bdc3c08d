// Package grid models the warehouse floor as an immutable rectangular array
// of free and shelf cells, and provides a uniform-cost shortest-path search
// between any two free cells.
//
// What:
//
//   - Grid wraps a C×W free/shelf map, indexed by (x, y) with 0 ≤ x < Width
//     and 0 ≤ y < Height.
//   - ShortestPath runs a 4-connected uniform-cost search (BFS, since every
//     edge has unit weight) between two free cells, breaking ties among
//     equal-length paths in favor of fewer direction changes.
//
// Why:
//
//   - The cost-graph builder needs exact distances and cell traces between
//     every pair of access points; ShortestPath is the single primitive
//     every higher layer depends on.
//   - The turn tie-break exists purely so printed directions stay short:
//     among several shortest routes, prefer the one with fewest turns.
//
// Complexity:
//
//   - NewGrid: O(Width×Height) to allocate the shelf map.
//   - ShortestPath: O(Width×Height·log(Width×Height)) per call.
//
// Errors:
//
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//   - ErrBlocked: a coordinate passed to ShortestPath sits on a shelf.
//   - ErrUnreachable: no path connects the two cells.
package grid
