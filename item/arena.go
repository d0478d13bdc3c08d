package item

import (
	"fmt"

	"github.com/triplex-216/warehouse/faults"
	"github.com/triplex-216/warehouse/grid"
)

// Arena owns every Node and AccessPoint created for one request. Nodes and
// access points reference each other by index into this arena rather than
// by pointer, so every access point's distance vector can be cleared with
// a single Reset call and the nodes reused.
type Arena struct {
	Nodes        []Node
	AccessPoints []AccessPoint

	// StartNode and EndNode are the indices, into Nodes, of the two
	// SingleNode entries. They are -1 until set by AddStartNode/AddEndNode.
	StartNode int
	EndNode   int
}

// NewArena returns an empty arena ready to accept item, start, and end
// nodes.
func NewArena() *Arena {
	return &Arena{StartNode: -1, EndNode: -1}
}

// AddItemNode registers a shelf cell carrying the given item IDs, deriving
// its access points from every free orthogonal neighbour in g. It returns
// ErrNoAccessPoint if the shelf has no free neighbour.
func (a *Arena) AddItemNode(g *grid.Grid, ids []int, cell grid.Cell) (int, error) {
	neighbors := g.Neighbors(cell.X, cell.Y)
	if len(neighbors) == 0 {
		return 0, ErrNoAccessPoint
	}

	nodeIdx := len(a.Nodes)
	node := Node{Index: nodeIdx, Kind: KindItem, ItemIDs: ids, Cell: cell}
	for _, nb := range neighbors {
		apIdx := a.addAccessPoint(nodeIdx, nb.Dir, nb.Cell)
		node.AccessPoints = append(node.AccessPoints, apIdx)
	}
	a.Nodes = append(a.Nodes, node)

	return nodeIdx, nil
}

// AddStartNode registers the picker's starting position as a SingleNode: a
// single access point equal to cell itself. It records the node's index in
// a.StartNode.
func (a *Arena) AddStartNode(cell grid.Cell) int {
	idx := a.addSingleNode(KindStart, cell)
	a.StartNode = idx

	return idx
}

// AddEndNode registers the picker's finishing position as a SingleNode,
// recording the node's index in a.EndNode.
func (a *Arena) AddEndNode(cell grid.Cell) int {
	idx := a.addSingleNode(KindEnd, cell)
	a.EndNode = idx

	return idx
}

func (a *Arena) addSingleNode(kind Kind, cell grid.Cell) int {
	nodeIdx := len(a.Nodes)
	apIdx := a.addAccessPoint(nodeIdx, grid.North, cell)
	a.Nodes = append(a.Nodes, Node{
		Index:        nodeIdx,
		Kind:         kind,
		Cell:         cell,
		AccessPoints: []int{apIdx},
	})

	return nodeIdx
}

func (a *Arena) addAccessPoint(nodeIdx int, dir grid.Direction, cell grid.Cell) int {
	idx := len(a.AccessPoints)
	a.AccessPoints = append(a.AccessPoints, AccessPoint{
		Index: idx,
		Node:  nodeIdx,
		Dir:   dir,
		Cell:  cell,
	})

	return idx
}

// Reset clears every access point's distance vector, resizing each to the
// arena's current access-point count. Callers must invoke Reset before a
// fresh cost-graph build pass, since every AP's distance vector must
// start empty.
func (a *Arena) Reset() {
	n := len(a.AccessPoints)
	for i := range a.AccessPoints {
		a.AccessPoints[i].distances = make([]DistanceEntry, n)
	}
}

// SetDistance records the cost and cell trace between access points i and
// j in both directions: i→j gets path as given, j→i gets the reversed
// path, preserving the cost-graph's symmetry invariant. It returns an
// error wrapping faults.ErrInternal if i and j belong to the same node:
// distances between two access points of one item are a disallowed
// transition and must never be stored.
func (a *Arena) SetDistance(i, j int, dist int, path []grid.Cell) error {
	if a.AccessPoints[i].Node == a.AccessPoints[j].Node {
		return fmt.Errorf("item: access points %d and %d share node %d: %w", i, j, a.AccessPoints[i].Node, faults.ErrInternal)
	}
	a.AccessPoints[i].setDistance(j, dist, path)
	a.AccessPoints[j].setDistance(i, dist, reversePath(path))

	return nil
}

// SetDirected records the cost and trace from access point i to access
// point j only, leaving j→i untouched. Used by the start/end overlay,
// whose boundary edges are deliberately asymmetric.
func (a *Arena) SetDirected(i, j int, dist int, path []grid.Cell) {
	a.AccessPoints[i].setDistance(j, dist, path)
}

func reversePath(path []grid.Cell) []grid.Cell {
	if path == nil {
		return nil
	}
	out := make([]grid.Cell, len(path))
	for i, c := range path {
		out[len(path)-1-i] = c
	}

	return out
}

// StartAccessPoint returns the single access point of the start node.
func (a *Arena) StartAccessPoint() *AccessPoint {
	return &a.AccessPoints[a.Nodes[a.StartNode].AccessPoints[0]]
}

// EndAccessPoint returns the single access point of the end node.
func (a *Arena) EndAccessPoint() *AccessPoint {
	return &a.AccessPoints[a.Nodes[a.EndNode].AccessPoints[0]]
}
