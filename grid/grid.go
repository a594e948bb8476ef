package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Grid is a fixed-width, row-major field of cells. Cells may be mutated in
// place through Set, Ref or the row views; the shape never changes.
type Grid[T any] struct {
	width, height int
	data          []T
}

// New wraps data as a grid with the given width. The slice is used as the
// backing storage, not copied.
// Returns ErrInvalidWidth if width <= 0, ErrEmptyGrid for empty data and
// ErrNonRectangular if len(data) is not a multiple of width.
func New[T any](data []T, width int) (*Grid[T], error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if len(data) == 0 {
		return nil, ErrEmptyGrid
	}
	if len(data)%width != 0 {
		return nil, fmt.Errorf("%w: %d cells do not fill rows of %d", ErrNonRectangular, len(data), width)
	}

	return &Grid[T]{width: width, height: len(data) / width, data: data}, nil
}

// Filled returns a width×height grid with every cell set to v.
func Filled[T any](width, height int, v T) (*Grid[T], error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if height <= 0 {
		return nil, ErrEmptyGrid
	}
	data := make([]T, width*height)
	for i := range data {
		data[i] = v
	}

	return &Grid[T]{width: width, height: height, data: data}, nil
}

// Parse builds a grid from text where each line is a row and each rune one
// cell. Lines are separated by '\n'; a trailing '\r' on a line and a single
// trailing newline are ignored.
// Returns ErrEmptyGrid, ErrNonRectangular (naming the first ragged row), or
// ErrDecode wrapping the decoder's error with the failing position.
func Parse[T any](text string, decode func(r rune) (T, error)) (*Grid[T], error) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	width := utf8.RuneCountInString(strings.TrimSuffix(lines[0], "\r"))
	if width == 0 {
		return nil, ErrEmptyGrid
	}

	data := make([]T, 0, width*len(lines))
	for row, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if n := utf8.RuneCountInString(line); n != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, row, n, width)
		}
		col := 0
		for _, r := range line {
			v, err := decode(r)
			if err != nil {
				return nil, fmt.Errorf("%w %q at row %d col %d: %w", ErrDecode, r, row, col, err)
			}
			data = append(data, v)
			col++
		}
	}

	return &Grid[T]{width: width, height: len(lines), data: data}, nil
}

// ParseRunes builds a grid whose cells are the input runes themselves.
func ParseRunes(text string) (*Grid[rune], error) {
	return Parse(text, func(r rune) (rune, error) { return r, nil })
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns the number of cells, Width×Height.
func (g *Grid[T]) Len() int { return len(g.data) }

// Data returns the row-major backing slice. Writes through it are visible
// to the grid.
func (g *Grid[T]) Data() []T { return g.data }

// InBounds reports whether i addresses a cell.
func (g *Grid[T]) InBounds(i int) bool {
	return i >= 0 && i < len(g.data)
}

// At returns the cell at flat index i, or (zero, false) if out of range.
func (g *Grid[T]) At(i int) (T, bool) {
	if !g.InBounds(i) {
		var zero T
		return zero, false
	}
	return g.data[i], true
}

// Ref returns a pointer to the cell at i, or nil if out of range.
func (g *Grid[T]) Ref(i int) *T {
	if !g.InBounds(i) {
		return nil
	}
	return &g.data[i]
}

// Set stores v at flat index i and reports whether i was in range.
func (g *Grid[T]) Set(i int, v T) bool {
	if !g.InBounds(i) {
		return false
	}
	g.data[i] = v
	return true
}

// Find returns the first row-major index whose cell satisfies pred.
func (g *Grid[T]) Find(pred func(T) bool) (int, bool) {
	for i, v := range g.data {
		if pred(v) {
			return i, true
		}
	}
	return -1, false
}

// Clone returns a grid with its own copy of the cells.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)

	return &Grid[T]{width: g.width, height: g.height, data: data}
}

// Quadruple tiles the grid 2×2 into a new grid of twice the width and
// height. Each quadrant is an exact copy in the same orientation.
func (g *Grid[T]) Quadruple() *Grid[T] {
	w := g.width * 2
	data := make([]T, 0, len(g.data)*4)
	for tile := 0; tile < 2; tile++ {
		for r := 0; r < g.height; r++ {
			row := g.data[r*g.width : (r+1)*g.width]
			data = append(data, row...)
			data = append(data, row...)
		}
	}

	return &Grid[T]{width: w, height: g.height * 2, data: data}
}
