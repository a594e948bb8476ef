// Command gridinspect loads a puzzle grid from a text file and reports its
// shape, border, regions and reachability, or renders it back to text.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/aocgrid/grid"
)

// app carries state shared by all subcommands.
type app struct {
	verbose    bool
	legendPath string

	logger *zap.Logger
	legend Legend
}

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. A nil logger is replaced by a zap
// production logger during PersistentPreRunE.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:   "gridinspect",
		Short: "Inspect rectangular puzzle grids",
		Long: `gridinspect reads a text grid (one row per line, one cell per rune)
and answers questions about it. Pass "-" as FILE to read stdin.

A YAML legend (--legend) names which runes are walls, which rune marks the
start cell and which runes are background:

  walls: "#"
  start: "S"
  background: "."`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				config := zap.NewProductionConfig()
				if a.verbose {
					config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				l, err := config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				a.logger = l
			}
			lg, err := LoadLegend(a.legendPath)
			if err != nil {
				return err
			}
			a.legend = lg
			a.logger.Debug("legend loaded",
				zap.String("path", a.legendPath),
				zap.String("walls", lg.Walls),
				zap.String("start", lg.Start))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.legendPath, "legend", "", "YAML legend file")

	root.AddCommand(a.infoCmd(), a.renderCmd(), a.reachCmd())
	return root
}

// load reads FILE (or stdin for "-") into a rune grid.
func (a *app) load(cmd *cobra.Command, path string) (*grid.Grid[rune], error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	g, err := grid.ParseRunes(string(raw))
	if err != nil {
		a.logger.Error("grid rejected", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	a.logger.Debug("grid loaded",
		zap.String("path", path),
		zap.Int("width", g.Width()),
		zap.Int("height", g.Height()))
	return g, nil
}
