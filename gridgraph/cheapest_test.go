// File: gridgraph/cheapest_test.go
package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aocgrid/grid"
	"github.com/katalvlaran/aocgrid/gridgraph"
)

// fillCost prices entering water at 1 and land at 0.
func fillCost(g *grid.Grid[int]) func(from, to int) (int, bool) {
	return func(_, to int) (int, bool) {
		v, _ := g.At(to)
		if v < 1 {
			return 1, true
		}
		return 0, true
	}
}

// TestExpandRegion_BasicLine converts the middle of [1,0,1] at cost 1.
func TestExpandRegion_BasicLine(t *testing.T) {
	g := mustInts(t, []int{1, 0, 1}, 3)
	comps := gridgraph.ConnectedComponents(g, isLand, nil)
	require.Len(t, comps, 2)

	path, cost, err := gridgraph.ExpandRegion(g, comps, 0, 1, fillCost(g))
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Equal(t, []int{0, 1, 2}, path)
}

// TestExpandRegion_MediumRow needs three conversions across [1,0,0,0,1].
func TestExpandRegion_MediumRow(t *testing.T) {
	g := mustInts(t, []int{1, 0, 0, 0, 1}, 5)
	comps := gridgraph.ConnectedComponents(g, isLand, nil)

	path, cost, err := gridgraph.ExpandRegion(g, comps, 0, 1, fillCost(g))
	require.NoError(t, err)
	assert.Equal(t, 3, cost)
	assert.Len(t, path, 5)
}

// TestCheapestPath_FreeLand prefers a long land detour over filling water.
//
//	1 0 1
//	1 0 1
//	1 1 1
func TestCheapestPath_FreeLand(t *testing.T) {
	g := mustInts(t, []int{
		1, 0, 1,
		1, 0, 1,
		1, 1, 1,
	}, 3)

	path, cost, err := gridgraph.CheapestPath(g, []int{0}, []int{2}, fillCost(g))
	require.NoError(t, err)
	assert.Equal(t, 0, cost)
	assert.Equal(t, []int{0, 3, 6, 7, 8, 5, 2}, path)
}

// TestCheapestPath_Blocked treats disallowed moves as walls.
func TestCheapestPath_Blocked(t *testing.T) {
	g := mustInts(t, []int{
		1, 9, 1,
		1, 9, 1,
	}, 3)
	wall := func(_, to int) (int, bool) {
		v, _ := g.At(to)
		return 0, v != 9
	}

	_, _, err := gridgraph.CheapestPath(g, []int{0}, []int{2}, wall)
	require.ErrorIs(t, err, gridgraph.ErrNoPath)
}

// TestCheapestPath_SourceIsTarget returns the single cell at zero cost.
func TestCheapestPath_SourceIsTarget(t *testing.T) {
	g := mustInts(t, []int{0, 0}, 2)
	path, cost, err := gridgraph.CheapestPath(g, []int{1}, []int{1, 0}, fillCost(g))
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Equal(t, []int{1}, path)
}

func TestCheapestPath_Errors(t *testing.T) {
	g := mustInts(t, []int{1, 0, 1}, 3)
	free := func(_, _ int) (int, bool) { return 0, true }
	pricey := func(_, _ int) (int, bool) { return 2, true }

	cases := []struct {
		name     string
		src, dst []int
		cost     func(from, to int) (int, bool)
		err      error
	}{
		{"NoSources", nil, []int{2}, free, gridgraph.ErrEmptyTerminals},
		{"NoTargets", []int{0}, nil, free, gridgraph.ErrEmptyTerminals},
		{"BadSource", []int{7}, []int{2}, free, gridgraph.ErrStartOutOfRange},
		{"BadTarget", []int{0}, []int{-1}, free, gridgraph.ErrStartOutOfRange},
		{"CostRange", []int{0}, []int{2}, pricey, gridgraph.ErrCostRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := gridgraph.CheapestPath(g, tc.src, tc.dst, tc.cost)
			require.ErrorIs(t, err, tc.err)
		})
	}

	comps := gridgraph.ConnectedComponents(g, isLand, nil)
	_, _, err := gridgraph.ExpandRegion(g, comps, 0, 2, free)
	require.ErrorIs(t, err, gridgraph.ErrComponentIndex)
	_, _, err = gridgraph.ExpandRegion(g, comps, -1, 1, free)
	require.ErrorIs(t, err, gridgraph.ErrComponentIndex)
}
