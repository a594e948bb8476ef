// Package gridgraph runs graph searches over a grid.Grid, treating every
// cell as a vertex and grid.Neighbors as its 4-connected edges.
//
// What:
//
//   - ConnectedComponents groups included cells into regions whose neighboring
//     cells satisfy a caller-supplied "same region" relation.
//   - Distances is a breadth-first search returning step counts, parents and
//     visit order from a start cell, with depth limiting and a visit hook.
//   - CheapestPath is a multi-source 0-1 BFS: each move costs 0 or 1, e.g.
//     counting how many water cells must be filled to join two islands.
//   - ExpandRegion applies CheapestPath between two ConnectedComponents results.
//
// Puzzle rules (which moves are allowed, what a move costs) stay with the
// caller as predicates over flat indices; the package never inspects cell
// values itself.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×4), Memory: O(W×H).
//   - Distances:           O(W×H×4), Memory: O(W×H).
//   - CheapestPath:        O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrStartOutOfRange: a start or target index is not a cell of the grid.
//   - ErrEmptyTerminals: CheapestPath got no sources or no targets.
//   - ErrCostRange: a move cost other than 0 or 1.
//   - ErrComponentIndex: ExpandRegion got a component index out of range.
//   - ErrNoPath: the target cannot be reached.
//   - ErrOptionViolation: an invalid Option was supplied.
package gridgraph
