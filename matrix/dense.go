package matrix

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of int values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []int
}

// NewDense creates an r×c Dense matrix initialized to zero.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns
// ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep, independent copy of m. Branch-and-Bound expands a
// tree node by cloning its parent's matrix and reducing the copy, leaving
// the parent untouched for its other children.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	data := make([]int, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// RowBlockMin returns the smallest value across the four rows
// [rowStart, rowStart+4) and all columns, ignoring any row entirely
// excluded by an infinite sentinel value equal to at least inf. Used by
// the block-wise reduction: one of a node's four access points is
// ultimately chosen, so the minimum is taken over the whole four-row block
// rather than per individual row.
// Complexity: O(4*c).
func (m *Dense) RowBlockMin(rowStart int, inf int) int {
	min := inf
	for r := rowStart; r < rowStart+4 && r < m.r; r++ {
		for c := 0; c < m.c; c++ {
			v := m.data[r*m.c+c]
			if v < min {
				min = v
			}
		}
	}

	return min
}

// SubtractRowBlock subtracts delta from every finite entry (< inf) across
// the four rows [rowStart, rowStart+4).
// Complexity: O(4*c).
func (m *Dense) SubtractRowBlock(rowStart int, delta int, inf int) {
	for r := rowStart; r < rowStart+4 && r < m.r; r++ {
		for c := 0; c < m.c; c++ {
			idx := r*m.c + c
			if m.data[idx] < inf {
				m.data[idx] -= delta
			}
		}
	}
}

// ColBlockMin is RowBlockMin's column-wise counterpart: the smallest value
// across all rows and the four columns [colStart, colStart+4).
// Complexity: O(r*4).
func (m *Dense) ColBlockMin(colStart int, inf int) int {
	min := inf
	for c := colStart; c < colStart+4 && c < m.c; c++ {
		for r := 0; r < m.r; r++ {
			v := m.data[r*m.c+c]
			if v < min {
				min = v
			}
		}
	}

	return min
}

// SubtractColBlock subtracts delta from every finite entry (< inf) across
// the four columns [colStart, colStart+4).
// Complexity: O(r*4).
func (m *Dense) SubtractColBlock(colStart int, delta int, inf int) {
	for c := colStart; c < colStart+4 && c < m.c; c++ {
		for r := 0; r < m.r; r++ {
			idx := r*m.c + c
			if m.data[idx] < inf {
				m.data[idx] -= delta
			}
		}
	}
}

// SetRowBlockInf sets every entry across the four rows [rowStart,
// rowStart+4) to inf. Used to mark "visited from this node" during
// Branch-and-Bound expansion.
// Complexity: O(4*c).
func (m *Dense) SetRowBlockInf(rowStart int, inf int) {
	for r := rowStart; r < rowStart+4 && r < m.r; r++ {
		for c := 0; c < m.c; c++ {
			m.data[r*m.c+c] = inf
		}
	}
}

// SetColBlockInf sets every entry across the four columns [colStart,
// colStart+4) to inf. Used to mark "arrived at this node" during
// Branch-and-Bound expansion.
// Complexity: O(r*4).
func (m *Dense) SetColBlockInf(colStart int, inf int) {
	for c := colStart; c < colStart+4 && c < m.c; c++ {
		for r := 0; r < m.r; r++ {
			m.data[r*m.c+c] = inf
		}
	}
}
