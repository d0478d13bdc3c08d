// Package costgraph builds the access-point meta-graph a solver runs over:
// pairwise grid shortest-paths between every access point of every node,
// plus the start/end boundary overlay that forces a Hamiltonian-cycle
// shape onto the result.
//
// What:
//
//   - BuildCostGraph populates every access point's distance vector by
//     invoking the grid pathfinder across all cross-node AP pairs, then
//     applies the start/end overlay described on BuildCostGraph.
//   - CostMatrix renders the populated arena into a dense 4N×4N matrix
//     whose row/column is node index×4 plus the access point's direction
//     (RowToAP maps it back to an access point), for Branch-and-Bound's
//     exclusive use.
//
// Why:
//
//   - Every solver operates on precomputed distances, never on the grid
//     directly, so the pathfinder only ever runs once per AP pair.
//
// Complexity:
//
//   - BuildCostGraph: O(N²·CR log CR) in the worst case (every node pair,
//     every AP pair, one pathfinder call each).
//   - CostMatrix: O((4N)²).
//
// Errors:
//
//   - Wraps faults.ErrInfeasible when the pathfinder reports no path
//     between two required access points.
package costgraph
