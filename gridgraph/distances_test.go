package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/aocgrid/grid"
	"github.com/katalvlaran/aocgrid/gridgraph"
)

// gardenMap is a walled garden with a start plot S.
const gardenMap = `...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........`

// DistancesSuite exercises Distances under various scenarios.
type DistancesSuite struct {
	suite.Suite
}

// TestOpenGridMatchesManhattan verifies BFS depth equals Manhattan distance without walls.
func (s *DistancesSuite) TestOpenGridMatchesManhattan() {
	g, err := grid.Filled(6, 4, '.')
	require.NoError(s.T(), err)

	start, _ := g.Index(2, 1)
	res, err := gridgraph.Distances(g, start, nil)
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Order, g.Len())
	require.Equal(s.T(), start, res.Order[0])

	for i := 0; i < g.Len(); i++ {
		require.Equal(s.T(), g.Manhattan(start, i), res.Depth[i], "cell %d", i)
	}
}

// TestGardenSteps counts plots reachable in exactly 6 steps.
func (s *DistancesSuite) TestGardenSteps() {
	g, err := grid.ParseRunes(gardenMap)
	require.NoError(s.T(), err)
	start, ok := g.Find(func(r rune) bool { return r == 'S' })
	require.True(s.T(), ok)

	open := func(_, to int) bool {
		r, _ := g.At(to)
		return r != '#'
	}
	res, err := gridgraph.Distances(g, start, open, gridgraph.WithMaxDepth(6))
	require.NoError(s.T(), err)

	plots := 0
	for _, d := range res.Depth {
		if d != gridgraph.Unreached && d%2 == 0 {
			plots++
		}
		require.LessOrEqual(s.T(), d, 6)
	}
	require.Equal(s.T(), 16, plots)
}

// TestPathTo reconstructs a path around a wall.
//
//	S#.
//	.#.
//	...
func (s *DistancesSuite) TestPathTo() {
	g, err := grid.ParseRunes("S#.\n.#.\n...")
	require.NoError(s.T(), err)

	open := func(_, to int) bool {
		r, _ := g.At(to)
		return r != '#'
	}
	res, err := gridgraph.Distances(g, 0, open)
	require.NoError(s.T(), err)

	path, err := res.PathTo(2)
	require.NoError(s.T(), err)
	if diff := cmp.Diff([]int{0, 3, 6, 7, 8, 5, 2}, path); diff != "" {
		s.T().Errorf("path mismatch (-want +got):\n%s", diff)
	}
	require.Equal(s.T(), 6, res.Depth[2])

	require.False(s.T(), res.Reached(1))
	_, err = res.PathTo(1)
	require.ErrorIs(s.T(), err, gridgraph.ErrNoPath)
	_, err = res.PathTo(99)
	require.ErrorIs(s.T(), err, gridgraph.ErrNoPath)

	self, err := res.PathTo(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0}, self)
}

// TestOnVisitAbort ensures a hook error stops the search and is propagated.
func (s *DistancesSuite) TestOnVisitAbort() {
	g, err := grid.Filled(5, 5, 0)
	require.NoError(s.T(), err)

	stop := errors.New("stop")
	visited := 0
	res, err := gridgraph.Distances(g, 0, nil, gridgraph.WithOnVisit(func(_, depth int) error {
		visited++
		if depth == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(s.T(), err, stop)
	require.NotNil(s.T(), res)
	require.Equal(s.T(), len(res.Order), visited)
	require.Equal(s.T(), 4, visited) // 0, then 1 and 5, then the first depth-2 cell
}

// TestInvalidInput covers bad start indices and options.
func (s *DistancesSuite) TestInvalidInput() {
	g, err := grid.Filled(2, 2, 0)
	require.NoError(s.T(), err)

	_, err = gridgraph.Distances(g, -1, nil)
	require.ErrorIs(s.T(), err, gridgraph.ErrStartOutOfRange)
	_, err = gridgraph.Distances(g, 4, nil)
	require.ErrorIs(s.T(), err, gridgraph.ErrStartOutOfRange)
	_, err = gridgraph.Distances(g, 0, nil, gridgraph.WithMaxDepth(-1))
	require.ErrorIs(s.T(), err, gridgraph.ErrOptionViolation)
}

func TestDistancesSuite(t *testing.T) {
	suite.Run(t, new(DistancesSuite))
}
