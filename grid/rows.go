package grid

import "iter"

// Row returns a view of row r. The view shares storage with the grid and
// has its capacity clipped to the row, so appending to it cannot clobber
// the following row.
func (g *Grid[T]) Row(r int) ([]T, bool) {
	if r < 0 || r >= g.height {
		return nil, false
	}
	start, end := r*g.width, (r+1)*g.width
	return g.data[start:end:end], true
}

// Rows yields (row number, row view) from top to bottom. Writes through a
// view mutate the grid.
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for r := 0; r < g.height; r++ {
			row, _ := g.Row(r)
			if !yield(r, row) {
				return
			}
		}
	}
}

// ForRowPairs calls fn once for every vertically adjacent pair of rows,
// (0,1), (1,2), ..., in order. Both views are writable, which is what
// settling simulations need to move values between rows.
func (g *Grid[T]) ForRowPairs(fn func(above, below []T)) {
	for r := 0; r+1 < g.height; r++ {
		above, _ := g.Row(r)
		below, _ := g.Row(r + 1)
		fn(above, below)
	}
}
