// Package directions turns a solved access-point tour into a full cell
// route and a sequence of human-readable step instructions.
//
// What:
//
//   - Format concatenates the stored per-edge cell traces between
//     consecutive access points in a tour (dropping duplicated joins) into
//     one connected cell route, and emits compressed movement instructions
//     plus pickup/return annotations alongside it.
//
// Why:
//
//   - The cost-graph builder already cached a cell trace for every edge a
//     solver might use; the formatter never re-runs the pathfinder, it only
//     renders what was already computed.
//
// Complexity:
//
//   - O(total route length) — every stored trace is walked exactly once.
package directions
