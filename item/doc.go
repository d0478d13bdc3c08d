// Package item models the warehouse request's node set: the shelf items a
// picker must visit, the start/end positions, and the access points (free
// cells adjacent to a shelf) from which each can be picked.
//
// What:
//
//   - Node is one shelf location, carrying the item IDs stored there and up
//     to four AccessPoints (one per free orthogonal neighbour).
//   - AccessPoint is a pickable stance: a free cell plus a distance vector
//     to every other access point in the current request, populated by the
//     cost-graph builder.
//   - Arena owns the Node and AccessPoint slices for one request and hands
//     out stable indices so both types can reference each other without
//     pointers into a shared, reusable buffer.
//
// Why:
//
//   - Splitting Node/AccessPoint by index (not pointer) lets a distance
//     vector be a flat row addressed by AP index, and lets Reset clear
//     every access point's distance vector in one pass, so the same nodes
//     can be reused across requests.
//
// Errors:
//
//   - ErrNoAccessPoint: a shelf cell has no free orthogonal neighbour, so no
//     node can be built for it.
package item
