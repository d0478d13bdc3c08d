package warehouse

import (
	"context"
	"errors"
	"fmt"

	"github.com/triplex-216/warehouse/costgraph"
	"github.com/triplex-216/warehouse/faults"
	"github.com/triplex-216/warehouse/grid"
	"github.com/triplex-216/warehouse/item"
	"github.com/triplex-216/warehouse/supervisor"
)

// ItemSpec is one requested pick: the product IDs stored at Cell, which
// must be a shelf cell with at least one free orthogonal neighbour.
type ItemSpec struct {
	IDs  []int
	Cell grid.Cell
}

// Request is one routing request: the floor, the picker's start/end
// positions, and the items to collect.
type Request struct {
	Grid  *grid.Grid
	Start grid.Cell
	End   grid.Cell
	Items []ItemSpec
}

// Solve builds the cost graph for req and runs it through a supervised
// solver, returning the formatted route, total cost, and whether the
// Nearest-Neighbour fallback was used.
func Solve(ctx context.Context, req Request, opts supervisor.Options) (supervisor.Result, error) {
	if !req.Grid.Free(req.Start.X, req.Start.Y) {
		return supervisor.Result{}, fmt.Errorf("warehouse: start %v is not a free cell: %w", req.Start, faults.ErrConfig)
	}
	if !req.Grid.Free(req.End.X, req.End.Y) {
		return supervisor.Result{}, fmt.Errorf("warehouse: end %v is not a free cell: %w", req.End, faults.ErrConfig)
	}

	arena := item.NewArena()
	arena.AddStartNode(req.Start)
	for _, spec := range groupByCell(req.Items) {
		if _, err := arena.AddItemNode(req.Grid, spec.IDs, spec.Cell); err != nil {
			if errors.Is(err, item.ErrNoAccessPoint) {
				return supervisor.Result{}, fmt.Errorf("warehouse: item %v at %v: %w", spec.IDs, spec.Cell, faults.ErrInfeasible)
			}

			return supervisor.Result{}, err
		}
	}
	arena.AddEndNode(req.End)

	if err := costgraph.BuildCostGraph(req.Grid, arena); err != nil {
		return supervisor.Result{}, err
	}
	cm, err := costgraph.CostMatrix(arena)
	if err != nil {
		return supervisor.Result{}, err
	}

	return supervisor.Run(ctx, arena, cm, len(arena.Nodes), opts)
}

// groupByCell merges item specs that name the same shelf cell into one
// spec carrying the combined ID list, preserving first-seen order. Several
// products may share a shelf cell; they form one node with one visit.
func groupByCell(items []ItemSpec) []ItemSpec {
	grouped := make([]ItemSpec, 0, len(items))
	at := make(map[grid.Cell]int, len(items))
	for _, spec := range items {
		if i, ok := at[spec.Cell]; ok {
			grouped[i].IDs = append(grouped[i].IDs, spec.IDs...)

			continue
		}
		at[spec.Cell] = len(grouped)
		grouped = append(grouped, ItemSpec{IDs: append([]int(nil), spec.IDs...), Cell: spec.Cell})
	}

	return grouped
}
