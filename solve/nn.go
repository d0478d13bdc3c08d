package solve

import (
	"fmt"

	"github.com/triplex-216/warehouse/costgraph"
	"github.com/triplex-216/warehouse/faults"
)

// startNodeIndex is the arena node index reserved for the start position.
// Every solver in this package relies on the root engine adding nodes in
// the order start, items…, end, so node 0 is always the start.
const startNodeIndex = 0

// solveNearestNeighbour runs the multi-start greedy solver: for
// every access point in the request, grow a greedy tour from it, then
// return the shortest tour found, rotated so it begins at the start
// node's access point.
//
// The end→start overlay edge (the only finite edge leaving end) makes the
// "end, once reached, must be followed by start" rule self-enforcing: a
// greedy search never needs to special-case it, since every other
// continuation from end is infinite.
func solveNearestNeighbour(cm *costgraph.CostMatrixResult, numNodes int) (Result, error) {
	size := numNodes * 4

	var best Result
	found := false

	for s := 0; s < size; s++ {
		if cm.RowToAP[s] == -1 {
			continue
		}

		path := []int{s}
		visited := make(map[int]bool, numNodes)
		visited[s/4] = true
		total := 0

		for len(path) < numNodes {
			tail := path[len(path)-1]
			bestV, bestCost := -1, infinity
			for v := 0; v < size; v++ {
				if cm.RowToAP[v] == -1 || visited[v/4] {
					continue
				}
				c, err := cm.Matrix.At(tail, v)
				if err != nil {
					continue
				}
				if c < bestCost || (c == bestCost && (bestV == -1 || v < bestV)) {
					bestCost, bestV = c, v
				}
			}
			if bestV == -1 || bestCost >= infinity {
				break // stuck: this starting point cannot reach a full tour
			}
			path = append(path, bestV)
			visited[bestV/4] = true
			total += bestCost
		}

		if len(path) != numNodes {
			continue
		}

		closeCost, err := cm.Matrix.At(path[len(path)-1], s)
		if err != nil || closeCost >= infinity {
			continue
		}
		total += closeCost

		if !found || total < best.Cost {
			best = Result{Path: rotateToStart(path, cm.RowToAP), Cost: total}
			found = true
		}
	}

	if !found {
		return Result{}, fmt.Errorf("solve: nearest-neighbour found no closing tour: %w", faults.ErrInfeasible)
	}

	return best, nil
}

// rotateToStart rotates a cyclic tour of matrix rows so it begins at the
// start node's access point, then converts it to access-point indices.
// Rotation does not change a cycle's total cost.
func rotateToStart(path []int, rowToAP []int) []int {
	startPos := 0
	for i, row := range path {
		if row/4 == startNodeIndex {
			startPos = i

			break
		}
	}

	out := make([]int, len(path))
	for i := range path {
		out[i] = rowToAP[path[(startPos+i)%len(path)]]
	}

	return out
}
