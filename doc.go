// Package warehouse computes a short picker route over a warehouse floor:
// starting at a given cell, visiting every requested shelf item, and
// finishing at a given cell.
//
// What:
//
//	grid        immutable floor map and 4-connected shortest-path search
//	item        node/access-point arena for one request
//	costgraph   pairwise access-point distances plus the start/end overlay
//	matrix      dense integer matrix backing Branch-and-Bound
//	solve       Branch-and-Bound, Nearest-Neighbour, and Genetic solvers
//	supervisor  wall-clock/memory budget with a Nearest-Neighbour fallback
//	directions  tour → cell route + step instructions
//	faults      shared error-kind sentinels
//
// Why:
//
//	Solve is the single entry point tying the above into the two-stage
//	pipeline: build the cost graph once, then run a supervised solver and
//	format its tour. Everything else is an implementation detail behind
//	that one call.
//
// Non-goals: parsing inventory or order-list files, a command-line menu,
// ASCII map rendering, report writing, and benchmarking — all external
// collaborators that hand this package an already-built Grid and item
// list.
package warehouse
