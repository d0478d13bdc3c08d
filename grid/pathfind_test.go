package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShortestPathSameCell(t *testing.T) {
	g, err := NewGrid(3, 3, nil)
	require.NoError(t, err)

	res, err := g.ShortestPath(Cell{X: 1, Y: 1}, Cell{X: 1, Y: 1})
	require.NoError(t, err)
	require.Equal(t, 0, res.Distance)
	require.Equal(t, []Cell{{X: 1, Y: 1}}, res.Cells)
}

func TestShortestPathOpenGrid(t *testing.T) {
	g, err := NewGrid(5, 5, nil)
	require.NoError(t, err)

	res, err := g.ShortestPath(Cell{X: 0, Y: 0}, Cell{X: 4, Y: 0})
	require.NoError(t, err)
	require.Equal(t, 4, res.Distance)
	require.Len(t, res.Cells, 5)
	require.Equal(t, Cell{X: 0, Y: 0}, res.Cells[0])
	require.Equal(t, Cell{X: 4, Y: 0}, res.Cells[len(res.Cells)-1])
}

func TestShortestPathPrefersFewerTurns(t *testing.T) {
	// A 3x3 open grid: the straight path from (0,1) to (2,1) has zero turns
	// and must be preferred over any equal-length zig-zag.
	g, err := NewGrid(3, 3, nil)
	require.NoError(t, err)

	res, err := g.ShortestPath(Cell{X: 0, Y: 1}, Cell{X: 2, Y: 1})
	require.NoError(t, err)
	require.Equal(t, 2, res.Distance)
	require.Equal(t, []Cell{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, res.Cells)
}

func TestShortestPathTurnTieBreakDependsOnArrivalDirection(t *testing.T) {
	// 3x2 grid with a shelf at (2,0). Both shortest paths from (0,0) to
	// (2,1) have length 3, but east-south-east turns twice while
	// south-east-east turns once. A search that prunes per cell instead of
	// per (cell, direction) settles (1,1) from the east-first expansion and
	// can only produce the two-turn path.
	g, err := NewGrid(3, 2, []Cell{{X: 2, Y: 0}})
	require.NoError(t, err)

	res, err := g.ShortestPath(Cell{X: 0, Y: 0}, Cell{X: 2, Y: 1})
	require.NoError(t, err)
	require.Equal(t, 3, res.Distance)
	require.Equal(t, []Cell{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, res.Cells)
}

func TestShortestPathUnreachable(t *testing.T) {
	// Wall off the middle column entirely so (0,0) cannot reach (2,*).
	shelves := []Cell{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}
	g, err := NewGrid(3, 3, shelves)
	require.NoError(t, err)

	_, err = g.ShortestPath(Cell{X: 0, Y: 0}, Cell{X: 2, Y: 0})
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestShortestPathRejectsShelfEndpoint(t *testing.T) {
	g, err := NewGrid(3, 3, []Cell{{X: 1, Y: 1}})
	require.NoError(t, err)

	_, err = g.ShortestPath(Cell{X: 1, Y: 1}, Cell{X: 0, Y: 0})
	require.ErrorIs(t, err, ErrBlocked)
}

func TestShortestPathRejectsOutOfBounds(t *testing.T) {
	g, err := NewGrid(3, 3, nil)
	require.NoError(t, err)

	_, err = g.ShortestPath(Cell{X: -1, Y: 0}, Cell{X: 0, Y: 0})
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestShortestPathAroundObstacle(t *testing.T) {
	// A 3-row corridor with a single shelf forcing a detour.
	shelves := []Cell{{X: 1, Y: 1}}
	g, err := NewGrid(3, 3, shelves)
	require.NoError(t, err)

	res, err := g.ShortestPath(Cell{X: 1, Y: 0}, Cell{X: 1, Y: 2})
	require.NoError(t, err)
	require.Equal(t, 4, res.Distance)
}
