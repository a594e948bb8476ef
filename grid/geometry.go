package grid

import (
	"iter"
	"slices"
)

// Coordinate converts a row-major index back to (col, row).
// Complexity: O(1).
func (g *Grid[T]) Coordinate(i int) (col, row int) {
	return i % g.width, i / g.width
}

// Index maps (col, row) to its flat index, or (-1, false) if outside.
func (g *Grid[T]) Index(col, row int) (int, bool) {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return -1, false
	}
	return row*g.width + col, true
}

// Manhattan returns |Δcol| + |Δrow| between two flat indices.
func (g *Grid[T]) Manhattan(a, b int) int {
	ac, ar := g.Coordinate(a)
	bc, br := g.Coordinate(b)
	return absInt(ac-bc) + absInt(ar-br)
}

// Adjacent reports whether a and b are orthogonal neighbors.
func (g *Grid[T]) Adjacent(a, b int) bool {
	return g.InBounds(a) && g.InBounds(b) && g.Manhattan(a, b) == 1
}

// IsBorder reports whether i lies on the first or last row or column.
func (g *Grid[T]) IsBorder(i int) bool {
	if !g.InBounds(i) {
		return false
	}
	col, row := g.Coordinate(i)
	return row == 0 || row == g.height-1 || col == 0 || col == g.width-1
}

// IsCorner reports whether i is one of the (up to four) corner cells.
func (g *Grid[T]) IsCorner(i int) bool {
	if !g.InBounds(i) {
		return false
	}
	col, row := g.Coordinate(i)
	return (row == 0 || row == g.height-1) && (col == 0 || col == g.width-1)
}

// Border yields every border cell exactly once in row-major order.
func (g *Grid[T]) Border() iter.Seq[int] {
	return func(yield func(int) bool) {
		for r := 0; r < g.height; r++ {
			start := r * g.width
			if r == 0 || r == g.height-1 {
				for i := start; i < start+g.width; i++ {
					if !yield(i) {
						return
					}
				}
				continue
			}
			if !yield(start) {
				return
			}
			if g.width > 1 && !yield(start+g.width-1) {
				return
			}
		}
	}
}

// Corners returns the distinct corner indices in ascending order: one for
// a 1×1 grid, two for a single row or column, four otherwise.
func (g *Grid[T]) Corners() []int {
	last := len(g.data) - 1
	out := []int{0, g.width - 1, last - (g.width - 1), last}
	slices.Sort(out)
	return slices.Compact(out)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
