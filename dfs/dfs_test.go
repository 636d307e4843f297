// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/dfs"
	"github.com/katalvlaran/algoviz/internal/graphtest"
	"github.com/katalvlaran/algoviz/trace"
)

func TestNew_NilGraph(t *testing.T) {
	_, err := dfs.New(nil)
	assert.ErrorIs(t, err, algo.ErrPrecondition)
}

// TestDFS_NotNecessarilyShortest: from 0 the first edge leads down the long
// branch 0-1-2-3 before the direct edge 0-3 is ever tried.
func TestDFS_NotNecessarilyShortest(t *testing.T) {
	g := graphtest.Build(t,
		[][2]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		[]graphtest.E{{From: 0, To: 1, W: 1}, {From: 1, To: 2, W: 1}, {From: 2, To: 3, W: 1}, {From: 0, To: 3, W: 1}},
	)
	d, err := dfs.New(g)
	require.NoError(t, err)

	tr := graphtest.RunSingle(t, d, 0, 3)
	path, err := tr.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
	assert.False(t, tr.IsVisited(3), "the direct edge is never explored")
}

func TestDFS_Backtracks(t *testing.T) {
	// 0-1 is a dead end; the target hangs off 0-2.
	g := graphtest.Build(t,
		[][2]float64{{0, 0}, {1, 0}, {0, 1}, {0, 2}},
		[]graphtest.E{{From: 0, To: 1, W: 1}, {From: 0, To: 2, W: 1}, {From: 2, To: 3, W: 1}},
	)
	d, err := dfs.New(g)
	require.NoError(t, err)

	tr := graphtest.RunSingle(t, d, 0, 3)
	path, err := tr.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, path)
	assert.Equal(t, []int{0, 1, 2}, tr.VisitedEdges())
}

func TestDFS_LoopFreeOnRandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := graphtest.Random(t, 25, seed)
		d, err := dfs.New(g)
		require.NoError(t, err)

		tr := graphtest.RunSingle(t, d, 0, 24)
		path, err := tr.PathTo(24)
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, 0, path[0])
		assert.Equal(t, 24, path[len(path)-1])
	}
}

func TestDFS_Stop(t *testing.T) {
	g := graphtest.Line(t, 4, 1)
	d, err := dfs.New(g)
	require.NoError(t, err)

	steps := 0
	c := &algo.Counter{OnStep: func(bool) error {
		steps++
		if steps == 2 {
			return algo.ErrStopped
		}
		return nil
	}}
	tr := trace.New(4)
	err = d.RunSingleSource(context.Background(), algo.Env{Trace: tr, Step: c}, 0, 3)
	assert.ErrorIs(t, err, algo.ErrStopped)
	assert.Equal(t, 2, tr.VisitedCount())
}
