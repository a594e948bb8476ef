package gridgraph

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/aocgrid/grid"
)

// CheapestPath finds a minimum-cost route from any cell in src to any cell
// in dst. cost(from, to) returns the price of moving into neighbor `to`
// and whether the move is allowed at all; prices must be 0 or 1.
// Returns the path (source and target included) and its total cost.
//
// Behavior:
//  1. Validate terminals.
//  2. Multi-source 0-1 BFS from all src cells:
//     • cost 0 moves go to the front of the deque
//     • cost 1 moves go to the back
//  3. Stop when the first dst cell is dequeued.
//  4. Reconstruct the path via predecessors.
//
// Errors: ErrEmptyTerminals, ErrStartOutOfRange, ErrCostRange, ErrNoPath.
func CheapestPath[T any](g *grid.Grid[T], src, dst []int, cost func(from, to int) (int, bool)) (path []int, total int, err error) {
	if len(src) == 0 || len(dst) == 0 {
		return nil, 0, ErrEmptyTerminals
	}
	dstSet := make(map[int]struct{}, len(dst))
	for _, i := range dst {
		if !g.InBounds(i) {
			return nil, 0, fmt.Errorf("%w: target %d", ErrStartOutOfRange, i)
		}
		dstSet[i] = struct{}{}
	}

	n := g.Len()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost 0 at front, cost 1 at back
	dq := list.New()
	for _, i := range src {
		if !g.InBounds(i) {
			return nil, 0, fmt.Errorf("%w: source %d", ErrStartOutOfRange, i)
		}
		dist[i] = 0
		dq.PushBack(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		for _, v := range g.Neighbors(u) {
			step, ok := cost(u, v)
			if !ok {
				continue
			}
			if step != 0 && step != 1 {
				return nil, 0, fmt.Errorf("%w: %d→%d costs %d", ErrCostRange, u, v, step)
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[target], nil
}

// ExpandRegion connects component srcComp to component dstComp, both
// indices into comps as returned by ConnectedComponents, at minimum cost.
// Returns ErrComponentIndex for an invalid index, otherwise as CheapestPath.
func ExpandRegion[T any](g *grid.Grid[T], comps [][]int, srcComp, dstComp int, cost func(from, to int) (int, bool)) ([]int, int, error) {
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	return CheapestPath(g, comps[srcComp], comps[dstComp], cost)
}
