package grid

import "container/heap"

// PathResult is the outcome of a successful ShortestPath call.
type PathResult struct {
	// Distance is the number of edges on the returned path.
	Distance int
	// Cells is the ordered list of cells from the start (inclusive) to the
	// end (inclusive).
	Cells []Cell
}

// searchState is one entry in the pathfinder's frontier: the cell reached,
// the direction last moved to reach it, the number of edges travelled, and
// the number of turns taken so far. The search space is (cell, direction)
// pairs, not bare cells: two arrivals at the same cell with equal distance
// and equal turns can still differ in how cheaply they extend, because a
// future turn depends on the incoming direction.
type searchState struct {
	cell  Cell
	dist  int
	turns int
	dir   Direction
	index int // heap bookkeeping
}

// frontier is a container/heap priority queue ordered first by distance,
// then by turn count, so that among equally short paths the search settles
// on the one with the fewest direction changes.
type frontier []*searchState

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}

	return f[i].turns < f[j].turns
}

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index, f[j].index = i, j
}

func (f *frontier) Push(x any) {
	s := x.(*searchState)
	s.index = len(*f)
	*f = append(*f, s)
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	s.index = -1
	*f = old[:n-1]

	return s
}

// stateStart marks the predecessor of the first move out of the start cell.
const stateStart = -2

// ShortestPath finds a 4-connected path between two free cells, minimizing
// edge count first and direction-change count second.
//
// Both cost components are non-decreasing along every edge, so a Dijkstra
// sweep over (cell, direction) states pops states in lexicographically
// non-decreasing (distance, turns) order; the first state popped at the end
// cell therefore realises the minimum.
//
// Complexity: O(Width×Height·log(Width×Height)).
func (g *Grid) ShortestPath(start, end Cell) (PathResult, error) {
	if !g.InBounds(start.X, start.Y) || !g.InBounds(end.X, end.Y) {
		return PathResult{}, ErrOutOfBounds
	}
	if g.IsShelf(start.X, start.Y) || g.IsShelf(end.X, end.Y) {
		return PathResult{}, ErrBlocked
	}
	if start == end {
		return PathResult{Distance: 0, Cells: []Cell{start}}, nil
	}

	// One state per (cell, incoming direction); stateOf flattens the pair.
	n := g.Width * g.Height * 4
	bestDist := make([]int, n)
	bestTurns := make([]int, n)
	prev := make([]int, n)
	for i := range bestDist {
		bestDist[i] = -1
		prev[i] = -1
	}

	pq := &frontier{}
	heap.Init(pq)

	for _, nb := range g.Neighbors(start.X, start.Y) {
		s := g.stateOf(nb.Cell, nb.Dir)
		bestDist[s] = 1
		bestTurns[s] = 0
		prev[s] = stateStart
		heap.Push(pq, &searchState{cell: nb.Cell, dist: 1, turns: 0, dir: nb.Dir})
	}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*searchState)
		curState := g.stateOf(cur.cell, cur.dir)
		if cur.dist != bestDist[curState] || cur.turns != bestTurns[curState] {
			continue // stale entry, a cheaper one already settled this state
		}
		if cur.cell == end {
			return g.reconstruct(prev, start, curState, cur.dist), nil
		}

		for _, nb := range g.Neighbors(cur.cell.X, cur.cell.Y) {
			nState := g.stateOf(nb.Cell, nb.Dir)
			nDist := cur.dist + 1
			nTurns := cur.turns
			if cur.dir != nb.Dir {
				nTurns++
			}
			if bestDist[nState] == -1 ||
				nDist < bestDist[nState] ||
				(nDist == bestDist[nState] && nTurns < bestTurns[nState]) {
				bestDist[nState] = nDist
				bestTurns[nState] = nTurns
				prev[nState] = curState
				heap.Push(pq, &searchState{cell: nb.Cell, dist: nDist, turns: nTurns, dir: nb.Dir})
			}
		}
	}

	return PathResult{}, ErrUnreachable
}

// stateOf flattens a (cell, incoming direction) pair into a state index.
func (g *Grid) stateOf(c Cell, d Direction) int {
	return g.index(c.X, c.Y)*4 + int(d)
}

// cellOf recovers the cell a state index refers to.
func (g *Grid) cellOf(state int) Cell {
	x, y := g.coordinate(state / 4)

	return Cell{X: x, Y: y}
}

// reconstruct walks the prev chain from the end state back to the start
// cell and reverses it.
func (g *Grid) reconstruct(prev []int, start Cell, endState, dist int) PathResult {
	cells := make([]Cell, 0, dist+1)
	for s := endState; s != stateStart; s = prev[s] {
		cells = append(cells, g.cellOf(s))
	}
	cells = append(cells, start)
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}

	return PathResult{Distance: dist, Cells: cells}
}
