package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/algoviz/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square builds 0-1-3-2-0 with unit weights.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		_, err := g.AddNode(p[0], p[1])
		require.NoError(t, err)
	}
	for _, e := range [][2]int{{0, 1}, {1, 3}, {3, 2}, {2, 0}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	return g
}

// TestAddEdge_Validation covers every rejection path of AddEdge.
func TestAddEdge_Validation(t *testing.T) {
	g := square(t)

	cases := []struct {
		name     string
		from, to int
		w        float64
		want     error
	}{
		{"missing node", 0, 9, 1, core.ErrNodeNotFound},
		{"self loop", 1, 1, 1, core.ErrLoopNotAllowed},
		{"negative", 0, 3, -1, core.ErrBadWeight},
		{"nan", 0, 3, math.NaN(), core.ErrBadWeight},
		{"inf", 0, 3, math.Inf(1), core.ErrBadWeight},
		{"parallel", 1, 0, 2, core.ErrMultiEdgeNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.AddEdge(tc.from, tc.to, tc.w)
			require.ErrorIs(t, err, tc.want)
		})
	}
	assert.Equal(t, 4, g.EdgeCount())
}

// TestNeighbors_SortedByEdgeID checks deterministic neighbor order and Other().
func TestNeighbors_SortedByEdgeID(t *testing.T) {
	g := square(t)

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, 2)
	assert.Equal(t, 0, nbs[0].ID)
	assert.Equal(t, 3, nbs[1].ID)
	assert.Equal(t, 1, nbs[0].Other(0))
	assert.Equal(t, 2, nbs[1].Other(0))

	_, err = g.Neighbors(42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestEdgeBetween_Undirected verifies pair lookup ignores endpoint order.
func TestEdgeBetween_Undirected(t *testing.T) {
	g := square(t)

	e, ok := g.EdgeBetween(3, 1)
	require.True(t, ok)
	assert.Equal(t, 1, e.ID)

	_, ok = g.EdgeBetween(0, 3)
	assert.False(t, ok)
}

// TestConnectivity covers IsConnected and Components on split graphs.
func TestConnectivity(t *testing.T) {
	g := core.NewGraph()
	assert.True(t, g.IsConnected(), "empty graph is connected")

	for i := 0; i < 5; i++ {
		_, _ = g.AddNode(float64(i), 0)
	}
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(3, 4, 1)

	assert.False(t, g.IsConnected())
	assert.Equal(t, [][]int{{0, 1}, {2}, {3, 4}}, g.Components())

	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 3, 1)
	assert.True(t, g.IsConnected())
	assert.Len(t, g.Components(), 1)
}

// TestFreezeAndClone verifies frozen graphs reject mutation while clones do not.
func TestFreezeAndClone(t *testing.T) {
	g := square(t)
	g.Freeze()

	_, err := g.AddNode(5, 5)
	assert.ErrorIs(t, err, core.ErrFrozen)
	_, err = g.AddEdge(0, 3, 1)
	assert.ErrorIs(t, err, core.ErrFrozen)
	assert.ErrorIs(t, g.RemoveEdge(0), core.ErrFrozen)

	c := g.Clone()
	assert.False(t, c.Frozen())
	e, err := c.Edge(2)
	require.NoError(t, err)
	require.NoError(t, c.RemoveEdge(2))
	assert.False(t, c.HasEdge(3, 2))
	assert.True(t, g.HasEdge(3, 2), "original untouched")

	require.NoError(t, c.RestoreEdge(e))
	assert.True(t, c.HasEdge(3, 2))
	assert.ErrorIs(t, c.RestoreEdge(e), core.ErrMultiEdgeNotAllowed)

	id, err := c.AddEdge(0, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, id, "clone continues the edge id sequence")
}

// TestDistanceAndWeight checks the Euclidean helper and TotalWeight.
func TestDistanceAndWeight(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(0, 0)
	b, _ := g.AddNode(3, 4)
	assert.InDelta(t, 5.0, g.Distance(a, b), 1e-12)
	assert.True(t, math.IsInf(g.Distance(a, 7), 1))

	id, err := g.AddEdge(a, b, g.Distance(a, b))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, g.TotalWeight([]int{id, 99}), 1e-12)

	st := g.Stats()
	assert.Equal(t, 2, st.NodeCount)
	assert.Equal(t, 1, st.EdgeCount)
	assert.True(t, st.Connected)
}
