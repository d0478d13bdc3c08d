package directions

import (
	"fmt"

	"github.com/triplex-216/warehouse/grid"
	"github.com/triplex-216/warehouse/item"
)

// Format renders the tour given by path (an ordered list of access-point
// indices into arena, start first and end last) into a full cell route and
// step instructions.
func Format(arena *item.Arena, path []int) (Route, error) {
	var cells []grid.Cell
	var instructions []string

	for i := 0; i < len(path)-1; i++ {
		from := &arena.AccessPoints[path[i]]
		to := &arena.AccessPoints[path[i+1]]
		entry := from.Distance(to.Index)
		if !entry.Known {
			return Route{}, fmt.Errorf("directions: no stored trace from access point %d to %d", from.Index, to.Index)
		}

		if i == 0 {
			cells = append(cells, entry.Path...)
		} else if len(entry.Path) > 0 {
			cells = append(cells, entry.Path[1:]...)
		}

		instructions = append(instructions, groupDirections(entry.Path)...)

		node := arena.Nodes[to.Node]
		switch node.Kind {
		case item.KindItem:
			instructions = append(instructions, fmt.Sprintf("Pick up product %v", node.ItemIDs))
		case item.KindEnd:
			instructions = append(instructions, "Return to the end position")
		}
	}

	return Route{Cells: cells, Instructions: instructions}, nil
}

// groupDirections walks a cell trace and compresses consecutive steps in
// the same cardinal direction into a single instruction. Direction
// mapping: (+,0)→right, (−,0)→left, (0,+)→up, (0,−)→down.
func groupDirections(trace []grid.Cell) []string {
	if len(trace) < 2 {
		return nil
	}

	var out []string
	runStart := trace[0]
	runDir := directionWord(trace[0], trace[1])
	steps := 1

	for i := 1; i < len(trace)-1; i++ {
		d := directionWord(trace[i], trace[i+1])
		if d == runDir {
			steps++

			continue
		}
		out = append(out, formatStep(runStart, trace[i], steps, runDir))
		runStart, runDir, steps = trace[i], d, 1
	}
	out = append(out, formatStep(runStart, trace[len(trace)-1], steps, runDir))

	return out
}

func directionWord(a, b grid.Cell) string {
	dx, dy := b.X-a.X, b.Y-a.Y
	switch {
	case dx > 0 && dy == 0:
		return "right"
	case dx < 0 && dy == 0:
		return "left"
	case dx == 0 && dy > 0:
		return "up"
	case dx == 0 && dy < 0:
		return "down"
	default:
		return "nowhere"
	}
}

func formatStep(from, to grid.Cell, steps int, dir string) string {
	unit := "step"
	if steps > 1 {
		unit = "steps"
	}

	return fmt.Sprintf("From (%d,%d) move %d %s %s to (%d,%d)", from.X, from.Y, steps, unit, dir, to.X, to.Y)
}
