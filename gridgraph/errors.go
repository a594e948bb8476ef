package gridgraph

import "errors"

var (
	// ErrStartOutOfRange indicates a start or target index outside the grid.
	ErrStartOutOfRange = errors.New("gridgraph: index out of range")
	// ErrEmptyTerminals indicates an empty source or target set.
	ErrEmptyTerminals = errors.New("gridgraph: sources and targets must be non-empty")
	// ErrCostRange indicates a move cost other than 0 or 1.
	ErrCostRange = errors.New("gridgraph: move cost must be 0 or 1")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no path exists between the requested cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("gridgraph: invalid option supplied")
)
