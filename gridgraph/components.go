package gridgraph

import "github.com/katalvlaran/aocgrid/grid"

// ConnectedComponents finds all contiguous regions of cells for which
// include returns true. Two neighboring included cells belong to the same
// region when same(a, b) holds; a nil same joins every included neighbor.
//
// Components are returned in row-major order of their first cell; each
// lists its flat indices in BFS order (neighbors scanned N, E, S, W).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func ConnectedComponents[T any](g *grid.Grid[T], include func(T) bool, same func(a, b T) bool) [][]int {
	cells := g.Data()
	seen := make([]bool, len(cells))
	var comps [][]int

	for i0, v0 := range cells {
		if seen[i0] || !include(v0) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range g.Neighbors(u) {
				if seen[v] || !include(cells[v]) {
					continue
				}
				if same != nil && !same(cells[u], cells[v]) {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
