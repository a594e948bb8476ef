// Package grid stores a rectangular field of cells in row-major order and
// answers addressing and adjacency queries over it.
//
// What:
//
//   - Grid[T] holds Width×Height cells of any type; a cell is addressed by its
//     flat index i = row*Width + col.
//   - Parse builds a grid from text, one line per row, decoding every rune
//     through a caller-supplied function.
//   - Step and Neighbors define the 4-connected topology. Moves never wrap
//     across row boundaries.
//   - Rows and ForRowPairs expose rows as views for in-place simulations.
//   - Quadruple tiles a grid 2×2 for callers emulating repeating terrain.
//
// The grid performs no traversal of its own; see package gridgraph for
// searches built on top of Neighbors.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths, or data not a multiple of width.
//   - ErrInvalidWidth: width is zero or negative.
//   - ErrDecode: the cell decoder rejected a rune.
//
// Out-of-range queries return (zero, false) rather than an error and never panic.
//
// Complexity:
//
//   - Parse, New, Clone, Quadruple: O(W×H).
//   - At, Set, Step, Coordinate, Index: O(1).
package grid
