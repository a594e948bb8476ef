package grid

import (
	"iter"

	"github.com/katalvlaran/aocgrid/compass"
)

// Step returns the index one cell away from i in direction d, or
// (-1, false) if the move leaves the grid or i is out of range.
// East and West never wrap into the neighboring row.
func (g *Grid[T]) Step(i int, d compass.Direction) (int, bool) {
	if !g.InBounds(i) {
		return -1, false
	}
	switch d {
	case compass.East:
		if i%g.width == g.width-1 {
			return -1, false
		}
		return i + 1, true
	case compass.West:
		if i%g.width == 0 {
			return -1, false
		}
		return i - 1, true
	case compass.North:
		if i < g.width {
			return -1, false
		}
		return i - g.width, true
	case compass.South:
		if i+g.width >= len(g.data) {
			return -1, false
		}
		return i + g.width, true
	default:
		return -1, false
	}
}

// Neighbors yields (direction, index) for every direction in which Step
// from i succeeds, in compass.All order (N, E, S, W).
func (g *Grid[T]) Neighbors(i int) iter.Seq2[compass.Direction, int] {
	return func(yield func(compass.Direction, int) bool) {
		for _, d := range compass.All() {
			j, ok := g.Step(i, d)
			if !ok {
				continue
			}
			if !yield(d, j) {
				return
			}
		}
	}
}
