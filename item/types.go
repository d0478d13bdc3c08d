package item

import "github.com/triplex-216/warehouse/grid"

// Infinity represents an unreachable or disallowed access-point pair. It is
// stored as an ordinary Known distance (not absence of an entry) so the
// cost matrix can treat every cell uniformly.
const Infinity = 1 << 30

// Kind distinguishes an ordinary item node from the degenerate start/end
// nodes used to close the Hamiltonian tour (SingleNode).
type Kind int

const (
	// KindItem is a regular shelf location with up to four access points.
	KindItem Kind = iota
	// KindStart is the picker's starting position: exactly one access point,
	// equal to the node's own cell.
	KindStart
	// KindEnd is the picker's finishing position: exactly one access point,
	// equal to the node's own cell.
	KindEnd
)

// Node is one shelf location (or the degenerate start/end position) in a
// request's node set.
type Node struct {
	// Index is this node's position in the owning Arena's Nodes slice.
	Index int
	Kind  Kind
	// ItemIDs lists the product identifiers stored at Cell. Empty for
	// KindStart and KindEnd.
	ItemIDs []int
	Cell    grid.Cell
	// AccessPoints holds the indices, into the owning Arena's AccessPoints
	// slice, of this node's pickable stances — up to four for KindItem,
	// exactly one for KindStart/KindEnd.
	AccessPoints []int
}

// DistanceEntry is one entry of an AccessPoint's distance vector: the cost
// and cell trace to reach another access point. Known is false until the
// cost-graph builder populates the entry. The cost matrix stores an
// unknown entry as infinite distance; the direction formatter rejects a
// tour that uses one.
type DistanceEntry struct {
	Known bool
	Dist  int
	Path  []grid.Cell
}

// AccessPoint is a free cell from which its parent node's item(s) may be
// picked.
type AccessPoint struct {
	// Index is this access point's position in the owning Arena's
	// AccessPoints slice, and the key of every distance vector. The cost
	// matrix row/column is instead the owning node's index×4 plus Dir.
	Index int
	// Node is the owning Node's index in the same Arena.
	Node int
	Dir  grid.Direction
	Cell grid.Cell
	// distances is a dense row keyed by AccessPoint.Index, sized to the
	// arena's total access-point count as of the last Reset call.
	distances []DistanceEntry
}

// Distance returns the stored entry from ap to the access point at index
// other. A zero-value, not-Known entry means the pair has not been
// populated (or is disallowed, e.g. two APs of the same node).
func (ap *AccessPoint) Distance(other int) DistanceEntry {
	if other < 0 || other >= len(ap.distances) {
		return DistanceEntry{}
	}

	return ap.distances[other]
}

// setDistance records the cost and trace from ap to the access point at
// index other. Unexported: only the cost-graph builder, which owns the
// arena for the duration of a request, may populate distance vectors.
func (ap *AccessPoint) setDistance(other int, dist int, path []grid.Cell) {
	ap.distances[other] = DistanceEntry{Known: true, Dist: dist, Path: path}
}
