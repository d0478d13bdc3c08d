package costgraph

import (
	"fmt"

	"github.com/triplex-216/warehouse/faults"
	"github.com/triplex-216/warehouse/grid"
	"github.com/triplex-216/warehouse/item"
)

// BuildCostGraph populates every access point's distance vector in arena,
// then applies the start/end boundary overlay. It resets the arena's
// distance vectors on entry, so callers may reuse arena across requests.
//
// Contract: for every pair of access points belonging to different
// nodes, the cost and cell trace are stored in both directions. After raw
// population, the overlay makes every non-start access point's edge to the
// start access point infinite, every access point's edge from the end
// access point infinite, the end→start edge free, and the start→end edge
// infinite — forcing the tour to close start→…→end→start.
func BuildCostGraph(g *grid.Grid, arena *item.Arena) error {
	if arena.StartNode < 0 || arena.EndNode < 0 {
		return fmt.Errorf("costgraph: arena has no start/end node registered: %w", faults.ErrInternal)
	}

	arena.Reset()

	for i, nodeA := range arena.Nodes {
		for _, nodeB := range arena.Nodes[i+1:] {
			for _, apAIdx := range nodeA.AccessPoints {
				apA := &arena.AccessPoints[apAIdx]
				for _, apBIdx := range nodeB.AccessPoints {
					apB := &arena.AccessPoints[apBIdx]
					if apA.Distance(apB.Index).Known {
						continue // already computed this pass
					}

					res, err := g.ShortestPath(apA.Cell, apB.Cell)
					if err != nil {
						return fmt.Errorf("costgraph: access point %d to %d: %w", apA.Index, apB.Index, faults.ErrInfeasible)
					}
					if err := arena.SetDistance(apA.Index, apB.Index, res.Distance, res.Cells); err != nil {
						return err
					}
				}
			}
		}
	}

	applyBoundaryOverlay(arena)

	return nil
}

// applyBoundaryOverlay implements the start/end boundary invariant: the
// tour must close start→…→end→start, never visiting start mid-route and
// never leaving end anywhere but back to start.
func applyBoundaryOverlay(arena *item.Arena) {
	startAP := arena.StartAccessPoint()
	endAP := arena.EndAccessPoint()

	for _, node := range arena.Nodes {
		if node.Index == arena.StartNode {
			continue
		}
		for _, apIdx := range node.AccessPoints {
			arena.SetDirected(apIdx, startAP.Index, item.Infinity, nil)
			arena.SetDirected(endAP.Index, apIdx, item.Infinity, nil)
		}
	}

	arena.SetDirected(endAP.Index, startAP.Index, 0, nil)
	arena.SetDirected(startAP.Index, endAP.Index, item.Infinity, nil)
}
