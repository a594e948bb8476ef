package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/aocgrid/grid"
)

// Unreached marks a cell the search never reached in Result.Depth.
const Unreached = -1

// Result holds the outcome of Distances:
//   - Order: cells in visit sequence.
//   - Depth: steps from the start per cell, Unreached if never reached.
//   - Parent: predecessor per cell in the BFS tree, -1 for the start and
//     for unreached cells.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether cell i was reached.
func (r *Result) Reached(i int) bool {
	return i >= 0 && i < len(r.Depth) && r.Depth[i] != Unreached
}

// PathTo reconstructs the cells from the start to dest, inclusive.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: cell %d", ErrNoPath, dest)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur >= 0; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Distances runs breadth-first search on g from start. A move from cell
// `from` to its neighbor `to` is taken only if passable(from, to) is true;
// a nil passable allows every move.
// Returns ErrStartOutOfRange, ErrOptionViolation, or any OnVisit error.
func Distances[T any](g *grid.Grid[T], start int, passable func(from, to int) bool, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %d", ErrStartOutOfRange, start)
	}

	n := g.Len()
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := range res.Depth {
		res.Depth[i] = Unreached
		res.Parent[i] = -1
	}

	res.Depth[start] = 0
	queue := []int{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		depth := res.Depth[u]
		res.Order = append(res.Order, u)
		if err := o.OnVisit(u, depth); err != nil {
			return res, err
		}
		if o.MaxDepth > 0 && depth >= o.MaxDepth {
			continue
		}
		for _, v := range g.Neighbors(u) {
			if res.Depth[v] != Unreached {
				continue
			}
			if passable != nil && !passable(u, v) {
				continue
			}
			res.Depth[v] = depth + 1
			res.Parent[v] = u
			queue = append(queue, v)
		}
	}

	return res, nil
}
