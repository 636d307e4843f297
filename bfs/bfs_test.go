// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/internal/graphtest"
	"github.com/katalvlaran/algoviz/trace"
)

func TestNew_NilGraph(t *testing.T) {
	_, err := bfs.New(nil)
	assert.ErrorIs(t, err, algo.ErrPrecondition)
}

func TestBFS_MinHopsIgnoringWeights(t *testing.T) {
	g := graphtest.Diamond(t)
	b, err := bfs.New(g)
	require.NoError(t, err)

	tr := graphtest.RunSingle(t, b, 0, 3)
	path, err := tr.PathTo(3)
	require.NoError(t, err)
	// both routes have two hops; edge 0-1 has the lower id so it is explored first
	assert.Equal(t, []int{0, 1, 3}, path)
	assert.Equal(t, trace.None, tr.Predecessor(0))
}

func TestBFS_StopsAtTarget(t *testing.T) {
	g := graphtest.Line(t, 6, 1)
	b, err := bfs.New(g)
	require.NoError(t, err)

	tr := graphtest.RunSingle(t, b, 0, 2)
	assert.Equal(t, []int{0, 1}, tr.VisitedEdges(), "nothing beyond the target is explored")
	assert.Equal(t, trace.None, tr.Predecessor(3))
}

func TestBFS_SourceIsTarget(t *testing.T) {
	b, err := bfs.New(graphtest.Line(t, 3, 1))
	require.NoError(t, err)

	tr := graphtest.RunSingle(t, b, 1, 1)
	assert.True(t, tr.Snapshot().Cleared())
}

func TestBFS_UnreachableTarget(t *testing.T) {
	b, err := bfs.New(graphtest.Disconnected(t))
	require.NoError(t, err)

	tr := graphtest.RunSingle(t, b, 0, 3)
	_, err = tr.PathTo(3)
	assert.ErrorIs(t, err, trace.ErrNoPath)
}

func TestBFS_CheckpointPerDiscovery(t *testing.T) {
	g := graphtest.Line(t, 5, 1)
	b, err := bfs.New(g)
	require.NoError(t, err)

	tr := graphtest.NewTrace(t, g, 0, 4)
	c := &algo.Counter{}
	require.NoError(t, b.RunSingleSource(context.Background(), algo.Env{Trace: tr, Step: c}, 0, 4))
	assert.Equal(t, 4, c.Paced())
	assert.Equal(t, 4, tr.VisitedCount())
}

func TestBFS_StopPropagates(t *testing.T) {
	g := graphtest.Line(t, 5, 1)
	b, err := bfs.New(g)
	require.NoError(t, err)

	tr := graphtest.NewTrace(t, g, 0, 4)
	c := &algo.Counter{OnStep: func(bool) error { return algo.ErrStopped }}
	err = b.RunSingleSource(context.Background(), algo.Env{Trace: tr, Step: c}, 0, 4)
	assert.ErrorIs(t, err, algo.ErrStopped)
	assert.Equal(t, 1, tr.VisitedCount(), "at most one mutation lands before the stop")
}

func TestBFS_BadEndpoints(t *testing.T) {
	g := graphtest.Line(t, 3, 1)
	b, err := bfs.New(g)
	require.NoError(t, err)

	err = b.RunSingleSource(context.Background(), algo.Env{Trace: trace.New(3), Step: algo.Instant{}}, 0, 7)
	assert.ErrorIs(t, err, algo.ErrPrecondition)
}
