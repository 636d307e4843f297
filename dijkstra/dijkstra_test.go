// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/dijkstra"
	"github.com/katalvlaran/algoviz/internal/graphtest"
	"github.com/katalvlaran/algoviz/trace"
)

func TestNew_NilGraph(t *testing.T) {
	_, err := dijkstra.New(nil)
	assert.ErrorIs(t, err, algo.ErrPrecondition)
}

func TestDijkstra_TakesTheCheapRoute(t *testing.T) {
	d, err := dijkstra.New(graphtest.Diamond(t))
	require.NoError(t, err)

	tr := graphtest.RunSingle(t, d, 0, 3)
	path, err := tr.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, path)
	// 2 is reached through 3 (2+1) rather than directly (4)
	assert.Equal(t, 3, tr.Predecessor(2))
}

func TestDijkstra_SettlesEverythingReachable(t *testing.T) {
	g := graphtest.Line(t, 5, 1)
	d, err := dijkstra.New(g)
	require.NoError(t, err)

	tr := graphtest.RunSingle(t, d, 0, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, tr.VisitedEdges(), "no early exit at the target")
	assert.Equal(t, 3, tr.Predecessor(4))
}

func TestDijkstra_StrictImprovementOnly(t *testing.T) {
	// two equal-cost routes to 3: via 1 (edges 0,1) and via 2 (edges 2,3)
	g := graphtest.Build(t,
		[][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		[]graphtest.E{{From: 0, To: 1, W: 1}, {From: 1, To: 3, W: 1}, {From: 0, To: 2, W: 1}, {From: 2, To: 3, W: 1}},
	)
	d, err := dijkstra.New(g)
	require.NoError(t, err)

	tr := graphtest.RunSingle(t, d, 0, 3)
	assert.Equal(t, 1, tr.Predecessor(3), "equal-cost relaxation does not overwrite")
	assert.False(t, tr.IsVisited(3))
}

func TestDijkstra_Options(t *testing.T) {
	g := graphtest.Diamond(t)

	walls, err := dijkstra.New(g, dijkstra.WithInfEdgeThreshold(1))
	require.NoError(t, err)
	tr := graphtest.RunSingle(t, walls, 0, 3)
	assert.True(t, tr.Snapshot().Cleared(), "every edge is a wall")

	capped, err := dijkstra.New(g, dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	tr = graphtest.RunSingle(t, capped, 0, 3)
	assert.Equal(t, 0, tr.Predecessor(1))
	assert.Equal(t, trace.None, tr.Predecessor(2), "distance 4 exceeds the cap")

	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
}

func TestDijkstra_OneCheckpointPerImprovement(t *testing.T) {
	g := graphtest.Diamond(t)
	d, err := dijkstra.New(g)
	require.NoError(t, err)

	c := &algo.Counter{}
	tr := graphtest.NewTrace(t, g, 0, 3)
	require.NoError(t, d.RunSingleSource(context.Background(), algo.Env{Trace: tr, Step: c}, 0, 3))
	// improvements: 1 (via 0), 2 (via 0, w=4), 3 (via 1), 2 (via 3, w=3)
	assert.Equal(t, 4, c.Paced())
	assert.Zero(t, c.Unpaced())
}
