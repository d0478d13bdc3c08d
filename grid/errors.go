package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a coordinate lies outside the grid's extent.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrBlocked indicates a coordinate passed to ShortestPath is a shelf
	// cell, not a free cell.
	ErrBlocked = errors.New("grid: coordinate is a shelf cell")

	// ErrUnreachable indicates no 4-connected free path links the two
	// requested cells.
	ErrUnreachable = errors.New("grid: no path between the requested cells")
)
