package solve

import (
	"fmt"

	"github.com/triplex-216/warehouse/costgraph"
	"github.com/triplex-216/warehouse/faults"
)

// Solve dispatches to the solver named by opts.Algorithm over a cost
// matrix already built by the costgraph package. numNodes is the total
// node count (item nodes plus start and end).
func Solve(opts Options, cm *costgraph.CostMatrixResult, numNodes int) (Result, error) {
	switch opts.Algorithm {
	case Default, BranchAndBound:
		return solveBranchAndBound(opts, cm, numNodes)
	case NearestNeighbour:
		return solveNearestNeighbour(cm, numNodes)
	case Genetic:
		return solveGenetic(opts, cm, numNodes)
	default:
		return Result{}, fmt.Errorf("solve: algorithm tag %d: %w", opts.Algorithm, faults.ErrConfig)
	}
}
