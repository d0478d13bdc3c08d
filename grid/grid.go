package grid

// NewGrid constructs a Grid of the given dimensions with shelves placed at
// the listed cells. It deep-copies nothing from the caller beyond the
// coordinates themselves. It returns ErrOutOfBounds if a dimension is not
// strictly positive or a shelf lies outside the grid.
//
// Complexity: O(Width×Height) time and memory.
func NewGrid(width, height int, shelves []Cell) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrOutOfBounds
	}
	shelf := make([][]bool, height)
	for y := range shelf {
		shelf[y] = make([]bool, width)
	}
	g := &Grid{Width: width, Height: height, shelf: shelf}
	for _, c := range shelves {
		if !g.InBounds(c.X, c.Y) {
			return nil, ErrOutOfBounds
		}
		shelf[c.Y][c.X] = true
	}

	return g, nil
}

// InBounds reports whether (x,y) lies within the grid's extent.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Free reports whether (x,y) is in bounds and is not a shelf cell.
// Complexity: O(1).
func (g *Grid) Free(x, y int) bool {
	return g.InBounds(x, y) && !g.shelf[y][x]
}

// IsShelf reports whether (x,y) is in bounds and holds a shelf.
// Complexity: O(1).
func (g *Grid) IsShelf(x, y int) bool {
	return g.InBounds(x, y) && g.shelf[y][x]
}

// Neighbors returns the free cells orthogonally adjacent to (x,y), paired
// with the Direction from (x,y) to each. Order follows the canonical
// Directions array (N, E, S, W).
// Complexity: O(1).
func (g *Grid) Neighbors(x, y int) []struct {
	Dir  Direction
	Cell Cell
} {
	out := make([]struct {
		Dir  Direction
		Cell Cell
	}, 0, 4)
	for _, d := range Directions {
		dx, dy := d.offset()
		nx, ny := x+dx, y+dy
		if g.Free(nx, ny) {
			out = append(out, struct {
				Dir  Direction
				Cell Cell
			}{Dir: d, Cell: Cell{X: nx, Y: ny}})
		}
	}

	return out
}

// index maps (x,y) to a row-major offset: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// coordinate converts a row-major offset back to (x,y).
// Complexity: O(1).
func (g *Grid) coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}
