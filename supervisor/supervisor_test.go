package supervisor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/triplex-216/warehouse/costgraph"
	"github.com/triplex-216/warehouse/grid"
	"github.com/triplex-216/warehouse/item"
	"github.com/triplex-216/warehouse/solve"
)

func buildRequest(t *testing.T) (*item.Arena, *costgraph.CostMatrixResult, int) {
	t.Helper()

	g, err := grid.NewGrid(6, 6, []grid.Cell{{X: 2, Y: 2}, {X: 4, Y: 4}})
	require.NoError(t, err)

	a := item.NewArena()
	a.AddStartNode(grid.Cell{X: 0, Y: 0})
	_, err = a.AddItemNode(g, []int{1}, grid.Cell{X: 2, Y: 2})
	require.NoError(t, err)
	_, err = a.AddItemNode(g, []int{2}, grid.Cell{X: 4, Y: 4})
	require.NoError(t, err)
	a.AddEndNode(grid.Cell{X: 0, Y: 0})

	require.NoError(t, costgraph.BuildCostGraph(g, a))
	cm, err := costgraph.CostMatrix(a)
	require.NoError(t, err)

	return a, cm, len(a.Nodes)
}

func TestRunCompletesWithoutTimeout(t *testing.T) {
	a, cm, n := buildRequest(t)

	res, err := Run(context.Background(), a, cm, n, Options{
		Algorithm: solve.NearestNeighbour,
		Timeout:   -1,
	})
	require.NoError(t, err)
	require.False(t, res.TimeoutTriggered)
	require.NotEmpty(t, res.Route.Cells)
}

func TestRunFallsBackOnTimeout(t *testing.T) {
	// A larger node count makes Branch-and-Bound's search tree wide enough
	// that a zero-duration timeout reliably wins the race against its
	// synchronous completion.
	a, cm, n := buildLargeRequest(t)

	res, err := Run(context.Background(), a, cm, n, Options{
		Algorithm:    solve.BranchAndBound,
		Timeout:      0,
		PollInterval: time.Millisecond,
	})
	require.NoError(t, err)
	require.True(t, res.TimeoutTriggered)
	require.NotEmpty(t, res.Route.Cells)
}

func buildLargeRequest(t *testing.T) (*item.Arena, *costgraph.CostMatrixResult, int) {
	t.Helper()

	items := []grid.Cell{{X: 1, Y: 1}, {X: 3, Y: 2}, {X: 5, Y: 4}, {X: 7, Y: 6}, {X: 9, Y: 8}, {X: 2, Y: 9}}
	g, err := grid.NewGrid(12, 12, items)
	require.NoError(t, err)

	a := item.NewArena()
	a.AddStartNode(grid.Cell{X: 0, Y: 0})
	for i, c := range items {
		_, err := a.AddItemNode(g, []int{i + 1}, c)
		require.NoError(t, err)
	}
	a.AddEndNode(grid.Cell{X: 11, Y: 11})

	require.NoError(t, costgraph.BuildCostGraph(g, a))
	cm, err := costgraph.CostMatrix(a)
	require.NoError(t, err)

	return a, cm, len(a.Nodes)
}

func TestRunFallbackCostMatchesNearestNeighbour(t *testing.T) {
	a, cm, n := buildLargeRequest(t)

	forced, err := Run(context.Background(), a, cm, n, Options{
		Algorithm:    solve.BranchAndBound,
		Timeout:      0,
		PollInterval: time.Millisecond,
	})
	require.NoError(t, err)
	require.True(t, forced.TimeoutTriggered)

	direct, err := Run(context.Background(), a, cm, n, Options{
		Algorithm: solve.NearestNeighbour,
		Timeout:   -1,
	})
	require.NoError(t, err)
	require.False(t, direct.TimeoutTriggered)

	require.Equal(t, direct.TotalCost, forced.TotalCost)
	require.Equal(t, direct.Route, forced.Route)
}

func TestRunFallsBackOnMemoryCeiling(t *testing.T) {
	// The memory ceiling is only checked on a poll tick, and a result that
	// arrives first wins, so the wider request and a near-zero poll interval
	// let the first tick come before Branch-and-Bound finishes.
	a, cm, n := buildLargeRequest(t)

	original := memoryPercentFunc
	memoryPercentFunc = func() (float64, error) { return 99, nil }
	defer func() { memoryPercentFunc = original }()

	res, err := Run(context.Background(), a, cm, n, Options{
		Algorithm:    solve.BranchAndBound,
		Timeout:      time.Hour,
		MemPercent:   80,
		PollInterval: time.Nanosecond,
	})
	require.NoError(t, err)
	require.True(t, res.TimeoutTriggered)
}

func TestRunPropagatesCancellation(t *testing.T) {
	a, cm, n := buildRequest(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A caller-cancelled context must not silently produce a fallback
	// result: either the poll loop observes ctx.Done() directly, or the
	// solver itself observes the derived worker context and reports a
	// budget error — both surface as an error, never success.
	_, err := Run(ctx, a, cm, n, DefaultOptions())
	require.Error(t, err)
}
