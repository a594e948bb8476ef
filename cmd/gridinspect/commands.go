package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aocgrid/grid"
	"github.com/katalvlaran/aocgrid/gridgraph"
)

// errNoStart is returned by reach when the grid holds no start rune.
var errNoStart = errors.New("start cell not found")

func identity(r rune) rune { return r }

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print size, border, corners and region count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			return writeInfo(cmd.OutOrStdout(), g, a.legend)
		},
	}
}

func writeInfo(w io.Writer, g *grid.Grid[rune], lg Legend) error {
	border := 0
	for range g.Border() {
		border++
	}
	walls := 0
	for _, r := range g.Data() {
		if lg.IsWall(r) {
			walls++
		}
	}
	regions := gridgraph.ConnectedComponents(g, lg.IsRegion, func(x, y rune) bool { return x == y })

	_, err := fmt.Fprintf(w, "size: %dx%d (%d cells)\nborder: %d cells\ncorners: %s\nwalls: %d\nregions: %d\n",
		g.Width(), g.Height(), g.Len(), border, cellList(g, g.Corners()), walls, len(regions))
	return err
}

func (a *app) renderCmd() *cobra.Command {
	var quadruple int
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Print the grid, optionally tiled 2x2 several times",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if quadruple < 0 {
				return fmt.Errorf("--quadruple must not be negative, got %d", quadruple)
			}
			g, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			for i := 0; i < quadruple; i++ {
				g = g.Quadruple()
			}
			a.logger.Debug("rendering", zap.Int("width", g.Width()), zap.Int("height", g.Height()))
			return g.Fprint(cmd.OutOrStdout(), identity)
		},
	}
	cmd.Flags().IntVarP(&quadruple, "quadruple", "q", 0, "number of 2x2 tilings to apply before rendering")
	return cmd
}

func (a *app) reachCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "reach FILE",
		Short: "Breadth-first search from the start cell around walls",
		Long: `reach walks from the legend's start cell through every non-wall cell.
With --steps N it stops after N steps and also reports how many cells can be
occupied after exactly N steps (cells at a distance of matching parity).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			return a.writeReach(cmd.OutOrStdout(), g, steps)
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 0, "maximum number of steps (0 = unlimited)")
	return cmd
}

func (a *app) writeReach(w io.Writer, g *grid.Grid[rune], steps int) error {
	startRune := a.legend.StartRune()
	start, ok := g.Find(func(r rune) bool { return r == startRune })
	if !ok {
		return fmt.Errorf("%w: %q", errNoStart, startRune)
	}
	open := func(_, to int) bool {
		r, _ := g.At(to)
		return !a.legend.IsWall(r)
	}
	res, err := gridgraph.Distances(g, start, open, gridgraph.WithMaxDepth(steps))
	if err != nil {
		return err
	}

	farthest, exact := 0, 0
	for _, d := range res.Depth {
		if d == gridgraph.Unreached {
			continue
		}
		farthest = max(farthest, d)
		if d%2 == steps%2 {
			exact++
		}
	}
	a.logger.Debug("reach finished", zap.Int("visited", len(res.Order)), zap.Int("steps", steps))

	if _, err := fmt.Fprintf(w, "start: %s\nreachable: %d\nfarthest: %d\n",
		cellList(g, []int{start}), len(res.Order), farthest); err != nil {
		return err
	}
	if steps > 0 {
		_, err = fmt.Fprintf(w, "exact: %d\n", exact)
	}
	return err
}

func cellList[T any](g *grid.Grid[T], cells []int) string {
	out := ""
	for i, c := range cells {
		col, row := g.Coordinate(c)
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("(%d,%d)", col, row)
	}
	return out
}
