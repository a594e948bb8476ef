// Package aocgrid is the shared toolkit behind a set of daily puzzle
// solutions: a generic rectangular grid, compass directions, half-open
// intervals, and the handful of grid searches the puzzles keep reaching for.
//
// Layout:
//
//	compass/   — North/East/South/West, opposite, rotations, token parsing
//	grid/      — Grid[T]: text parsing, stepping, neighbors, rows, border, 2×2 tiling
//	gridgraph/ — regions, BFS distances and 0-1 cheapest paths over a Grid
//	interval/  — [Start, End) ranges: intersection and subtraction
//	cmd/gridinspect — command-line inspection of grid files
//
// Quick ASCII example:
//
//	ab.
//	cd.     Step(0, East) = 1, Step(2, East) = absent,
//	ef.     Neighbors(4) = N:1 E:5 S:7 W:3
//
// Every query on a grid answers "absent" for out-of-range input instead of
// panicking; only construction returns errors.
//
//	go get github.com/katalvlaran/aocgrid
package aocgrid
