package solve

import (
	"container/heap"
	"fmt"

	"github.com/triplex-216/warehouse/costgraph"
	"github.com/triplex-216/warehouse/faults"
	"github.com/triplex-216/warehouse/matrix"
)

const infinity = costgraph.Infinity

// bbEngine holds the search-tree state for one Branch-and-Bound run: the
// cost-graph's row/access-point mapping, the node count, and the frontier
// of tree nodes awaiting expansion. A dedicated engine struct keeps the
// search loop free of closures over mutable outer state.
type bbEngine struct {
	numNodes int
	rowToAP  []int
	frontier bbFrontier
}

// bbTreeNode is one entry in the Branch-and-Bound search tree: the
// accumulated lower bound, the partial path (as matrix rows), and the
// reduced matrix reflecting every edge fixed so far.
type bbTreeNode struct {
	lowerBound int
	path       []int
	mat        *matrix.Dense
	index      int
}

type bbFrontier []*bbTreeNode

func (f bbFrontier) Len() int { return len(f) }

// Less orders by ascending lower bound, breaking ties in favor of the
// deeper (longer) path, since a deeper path is closer to a complete tour.
func (f bbFrontier) Less(i, j int) bool {
	if f[i].lowerBound != f[j].lowerBound {
		return f[i].lowerBound < f[j].lowerBound
	}

	return len(f[i].path) > len(f[j].path)
}

func (f bbFrontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index, f[j].index = i, j
}

func (f *bbFrontier) Push(x any) {
	n := x.(*bbTreeNode)
	n.index = len(*f)
	*f = append(*f, n)
}

func (f *bbFrontier) Pop() any {
	old := *f
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*f = old[:n-1]

	return node
}

// reduceMatrix applies the block-wise row then column reduction
// to m in place, and returns the total amount subtracted — a valid
// lower-bound contribution, since only finite (reachable) entries are
// shifted.
func reduceMatrix(m *matrix.Dense, numNodes int) int {
	total := 0
	for node := 0; node < numNodes; node++ {
		rowStart := node * 4
		min := m.RowBlockMin(rowStart, infinity)
		if min > 0 && min < infinity {
			m.SubtractRowBlock(rowStart, min, infinity)
			total += min
		}
	}
	for node := 0; node < numNodes; node++ {
		colStart := node * 4
		min := m.ColBlockMin(colStart, infinity)
		if min > 0 && min < infinity {
			m.SubtractColBlock(colStart, min, infinity)
			total += min
		}
	}

	return total
}

// solveBranchAndBound runs the exact solver over cm, a cost matrix
// built from a request whose node at arena index 0 is the start node (the
// fixed, deterministic seed node).
func solveBranchAndBound(opts Options, cm *costgraph.CostMatrixResult, numNodes int) (Result, error) {
	ctx := opts.context()

	rootMat := cm.Matrix.Clone()
	rootCost := reduceMatrix(rootMat, numNodes)

	const seedNode = 0
	eng := &bbEngine{numNodes: numNodes, rowToAP: cm.RowToAP}
	heap.Init(&eng.frontier)

	for row := seedNode * 4; row < seedNode*4+4; row++ {
		if cm.RowToAP[row] == -1 {
			continue
		}
		childMat := rootMat.Clone()
		// Node 0 is already visited by choosing this access point: no
		// future edge should ever arrive at any of its access points
		// again. Wiping the whole column block (not just the unchosen
		// three) keeps later reductions tight; the one entry this removes
		// (the free end→start closing edge) is never traversed as an
		// explicit move, so no feasible tour's cost is affected.
		childMat.SetColBlockInf(seedNode*4, infinity)
		heap.Push(&eng.frontier, &bbTreeNode{
			lowerBound: rootCost,
			path:       []int{row},
			mat:        childMat,
		})
	}

	for eng.frontier.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("solve: branch-and-bound cancelled: %w", faults.ErrBudget)
		}

		cur := heap.Pop(&eng.frontier).(*bbTreeNode)
		if len(cur.path) == numNodes {
			return pathToResult(cur.path, cm.RowToAP, cur.lowerBound), nil
		}

		visited := make(map[int]bool, len(cur.path))
		for _, row := range cur.path {
			visited[row/4] = true
		}

		u := cur.path[len(cur.path)-1]
		for v := 0; v < numNodes*4; v++ {
			if cm.RowToAP[v] == -1 || visited[v/4] {
				continue
			}
			c, err := cur.mat.At(u, v)
			if err != nil || c >= infinity {
				continue
			}

			child := cur.mat.Clone()
			child.SetRowBlockInf((u/4)*4, infinity)
			child.SetColBlockInf((v/4)*4, infinity)
			r := reduceMatrix(child, numNodes)

			childPath := make([]int, len(cur.path)+1)
			copy(childPath, cur.path)
			childPath[len(cur.path)] = v

			heap.Push(&eng.frontier, &bbTreeNode{
				lowerBound: cur.lowerBound + c + r,
				path:       childPath,
				mat:        child,
			})
		}
	}

	return Result{}, fmt.Errorf("solve: no Hamiltonian tour closes this request: %w", faults.ErrInfeasible)
}

// pathToResult converts a Branch-and-Bound path of matrix rows into a
// Result of access-point indices.
func pathToResult(path []int, rowToAP []int, cost int) Result {
	apPath := make([]int, len(path))
	for i, row := range path {
		apPath[i] = rowToAP[row]
	}

	return Result{Path: apPath, Cost: cost}
}
