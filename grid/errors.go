package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidWidth indicates a non-positive width.
	ErrInvalidWidth = errors.New("grid: width must be positive")
	// ErrDecode indicates the cell decoder rejected an input rune.
	ErrDecode = errors.New("grid: cannot decode cell")
)
