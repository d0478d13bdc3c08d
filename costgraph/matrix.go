package costgraph

import (
	"github.com/triplex-216/warehouse/item"
	"github.com/triplex-216/warehouse/matrix"
)

// Infinity is the sentinel used for unreachable/disallowed matrix entries.
// It mirrors item.Infinity so Branch-and-Bound never has to import item
// just to compare against the overlay's infinite edges.
const Infinity = item.Infinity

// CostMatrixResult is a dense 4N×4N rendering of an arena's distance
// vectors, indexed by matrix row/column rather than access-point index.
type CostMatrixResult struct {
	Matrix *matrix.Dense
	// RowToAP maps a matrix row/column to the arena access-point index it
	// represents, or -1 if that slot has no access point (a node with
	// fewer than four free neighbours).
	RowToAP []int
}

// CostMatrix renders arena's populated distance vectors into a dense
// 4N×4N matrix for Branch-and-Bound. N is the total node count; each
// node occupies a four-row/four-column block, one row per cardinal
// direction. Missing access points and intra-node pairs are stored as
// Infinity.
//
// BuildCostGraph must have populated arena's distance vectors before this
// is called.
func CostMatrix(arena *item.Arena) (*CostMatrixResult, error) {
	n := len(arena.Nodes)
	size := 4 * n

	dense, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, err
	}

	rowToAP := make([]int, size)
	for i := range rowToAP {
		rowToAP[i] = -1
	}
	apToRow := make([]int, len(arena.AccessPoints))
	for i := range apToRow {
		apToRow[i] = -1
	}

	for _, node := range arena.Nodes {
		for _, apIdx := range node.AccessPoints {
			ap := arena.AccessPoints[apIdx]
			row := node.Index*4 + int(ap.Dir)
			rowToAP[row] = apIdx
			apToRow[apIdx] = row
		}
	}

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if err := dense.Set(r, c, Infinity); err != nil {
				return nil, err
			}
		}
	}

	for r := 0; r < size; r++ {
		apA := rowToAP[r]
		if apA == -1 {
			continue
		}
		for c := 0; c < size; c++ {
			apB := rowToAP[c]
			if apB == -1 || apA == apB {
				continue
			}
			if arena.AccessPoints[apA].Node == arena.AccessPoints[apB].Node {
				continue // intra-node transitions are disallowed
			}
			entry := arena.AccessPoints[apA].Distance(apB)
			if !entry.Known {
				continue // stays Infinity
			}
			if err := dense.Set(r, c, entry.Dist); err != nil {
				return nil, err
			}
		}
	}

	return &CostMatrixResult{Matrix: dense, RowToAP: rowToAP}, nil
}
