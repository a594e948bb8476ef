package grid

import (
	"io"
	"strings"
)

// Render maps every cell back to a display rune and joins the rows with
// '\n'. The result has no trailing newline. It is a diagnostic aid;
// nothing depends on its exact form.
func (g *Grid[T]) Render(encode func(T) rune) string {
	var b strings.Builder
	b.Grow(len(g.data) + g.height)
	for r, row := range g.Rows() {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, v := range row {
			b.WriteRune(encode(v))
		}
	}
	return b.String()
}

// Fprint writes Render(encode) followed by a newline to w.
func (g *Grid[T]) Fprint(w io.Writer, encode func(T) rune) error {
	_, err := io.WriteString(w, g.Render(encode)+"\n")
	return err
}
