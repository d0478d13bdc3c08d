package directions

import "github.com/triplex-216/warehouse/grid"

// Route is the formatted output of a solved tour: the full connected cell
// trajectory the picker walks, and the compressed step-by-step
// instructions describing it.
type Route struct {
	Cells        []grid.Cell
	Instructions []string
}
