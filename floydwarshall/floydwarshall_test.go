// SPDX-License-Identifier: MIT

package floydwarshall_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/dijkstra"
	"github.com/katalvlaran/algoviz/floydwarshall"
	"github.com/katalvlaran/algoviz/internal/graphtest"
	"github.com/katalvlaran/algoviz/trace"
)

func TestNew_NilGraph(t *testing.T) {
	_, err := floydwarshall.New(nil)
	assert.ErrorIs(t, err, algo.ErrPrecondition)
}

func TestFloydWarshall_ShortestPath(t *testing.T) {
	f, err := floydwarshall.New(graphtest.Diamond(t))
	require.NoError(t, err)

	tr := graphtest.RunSingle(t, f, 0, 3)
	path, err := tr.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, path)
}

func TestFloydWarshall_PacedOnlyWhenTouched(t *testing.T) {
	g := graphtest.Diamond(t)
	f, err := floydwarshall.New(g)
	require.NoError(t, err)

	c := &algo.Counter{}
	tr := graphtest.NewTrace(t, g, 0, 3)
	require.NoError(t, f.RunSingleSource(context.Background(), algo.Env{Trace: tr, Step: c}, 0, 3))

	n := g.NodeCount()
	// every cell yields once; the rebuild ticks for k=1..3 (0 and 3 are not
	// joined through node 0 alone)
	assert.Equal(t, n*n*n+3, c.Paced()+c.Unpaced())
	assert.Positive(t, c.Paced())
	assert.Positive(t, c.Unpaced(), "diagonal cells never touch an edge")
	assert.Equal(t, g.EdgeCount(), tr.VisitedCount())
}

func TestFloydWarshall_FastReconstruct(t *testing.T) {
	g := graphtest.Diamond(t)
	f, err := floydwarshall.New(g, floydwarshall.WithFastReconstruct())
	require.NoError(t, err)

	c := &algo.Counter{}
	tr := graphtest.NewTrace(t, g, 0, 3)
	require.NoError(t, f.RunSingleSource(context.Background(), algo.Env{Trace: tr, Step: c}, 0, 3))

	n := g.NodeCount()
	assert.Equal(t, n*n*n+1, c.Paced()+c.Unpaced())
	path, err := tr.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, path)
}

func TestFloydWarshall_Unreachable(t *testing.T) {
	f, err := floydwarshall.New(graphtest.Disconnected(t))
	require.NoError(t, err)

	tr := graphtest.RunSingle(t, f, 0, 3)
	_, err = tr.PathTo(3)
	assert.ErrorIs(t, err, trace.ErrNoPath)
}

func TestFloydWarshall_MatchesOtherSolversOnRandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		g := graphtest.Random(t, 10, seed)
		f, err := floydwarshall.New(g)
		require.NoError(t, err)

		d, err := dijkstra.New(g)
		require.NoError(t, err)

		pf, err := graphtest.RunSingle(t, f, 0, 9).PathTo(9)
		require.NoError(t, err)
		pd, err := graphtest.RunSingle(t, d, 0, 9).PathTo(9)
		require.NoError(t, err)
		assert.InDelta(t, graphtest.PathWeight(g, pd), graphtest.PathWeight(g, pf), 1e-9, "seed %d", seed)
	}
}
