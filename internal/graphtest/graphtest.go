// SPDX-License-Identifier: MIT

// Package graphtest holds graph fixtures and run helpers shared by the
// algorithm test suites.
package graphtest

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/trace"
)

// E is a fixture edge: endpoints and weight. A negative weight means
// "use the Euclidean distance".
type E struct {
	From, To int
	W        float64
}

// Build creates a frozen graph with nodes at pts and the given edges.
func Build(t testing.TB, pts [][2]float64, edges []E) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, p := range pts {
		_, err := g.AddNode(p[0], p[1])
		require.NoError(t, err)
	}
	for _, e := range edges {
		w := e.W
		if w < 0 {
			w = g.Distance(e.From, e.To)
		}
		_, err := g.AddEdge(e.From, e.To, w)
		require.NoError(t, err)
	}
	g.Freeze()

	return g
}

// Line returns nodes 0..n-1 spaced 100px apart and chained by edges of weight w.
func Line(t testing.TB, n int, w float64) *core.Graph {
	t.Helper()

	pts := make([][2]float64, n)
	edges := make([]E, 0, n)
	for i := range pts {
		pts[i] = [2]float64{float64(i) * 100, 0}
		if i > 0 {
			edges = append(edges, E{i - 1, i, w})
		}
	}

	return Build(t, pts, edges)
}

// Diamond is a four-node detour fixture. Edges by id:
//
//	0: 0-1 w=1   1: 1-3 w=1   2: 0-2 w=4   3: 2-3 w=1   4: 1-2 w=10
//
// The cheapest 0→3 route is 0-1-3 (weight 2); going through 2 costs 5.
// The unique minimum spanning tree is {0, 1, 3} with weight 3.
func Diamond(t testing.TB) *core.Graph {
	t.Helper()

	return Build(t,
		[][2]float64{{0, 0}, {1, 0}, {1, 1}, {2, 0}},
		[]E{{0, 1, 1}, {1, 3, 1}, {0, 2, 4}, {2, 3, 1}, {1, 2, 10}},
	)
}

// Random returns a generated, connected graph of n nodes. Whole-graph density
// is used so both classes of variant get plenty of alternative routes.
func Random(t testing.TB, n int, seed int64) *core.Graph {
	t.Helper()

	g, err := builder.Generate(builder.Size(n), algo.WholeGraphClass, builder.WithSeed(seed))
	require.NoError(t, err)

	return g
}

// Disconnected returns two separate edges: 0-1 and 2-3.
func Disconnected(t testing.TB) *core.Graph {
	t.Helper()

	return Build(t,
		[][2]float64{{0, 0}, {1, 0}, {5, 5}, {6, 5}},
		[]E{{0, 1, 1}, {2, 3, 1}},
	)
}

// NewTrace returns an AppendOnly trace sized for g, with endpoints set when
// source and target are both non-negative.
func NewTrace(t testing.TB, g *core.Graph, source, target int) *trace.Trace {
	t.Helper()

	tr := trace.New(g.NodeCount())
	if source >= 0 && target >= 0 {
		require.NoError(t, tr.SetEndpoints(source, target))
	}

	return tr
}

// RunSingle runs v to completion with an Instant checkpointer and returns the trace.
func RunSingle(t testing.TB, v algo.SingleSource, source, target int) *trace.Trace {
	t.Helper()

	tr := NewTrace(t, v.Graph(), source, target)
	tr.Reset(v.Graph().NodeCount(), algo.Discipline(v))
	require.NoError(t, v.RunSingleSource(context.Background(), algo.Env{Trace: tr, Step: algo.Instant{}}, source, target))

	return tr
}

// RunWhole runs v to completion with an Instant checkpointer and returns the trace.
func RunWhole(t testing.TB, v algo.WholeGraph) *trace.Trace {
	t.Helper()

	tr := trace.New(v.Graph().NodeCount())
	tr.Reset(v.Graph().NodeCount(), algo.Discipline(v))
	require.NoError(t, v.RunWholeGraph(context.Background(), algo.Env{Trace: tr, Step: algo.Instant{}}))

	return tr
}

// PathWeight sums the edge weights along a node path; +Inf if a hop has no edge.
func PathWeight(g *core.Graph, path []int) float64 {
	var sum float64
	for i := 1; i < len(path); i++ {
		e, ok := g.EdgeBetween(path[i-1], path[i])
		if !ok {
			return math.Inf(1)
		}
		sum += e.Weight
	}

	return sum
}

// AssertSpanningTree checks that ids are exactly N-1 edges of g forming a tree.
func AssertSpanningTree(t testing.TB, g *core.Graph, ids []int) {
	t.Helper()

	n := g.NodeCount()
	require.Len(t, ids, n-1)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			x = parent[x]
		}
		return x
	}
	for _, id := range ids {
		e, err := g.Edge(id)
		require.NoError(t, err)
		a, b := find(e.From), find(e.To)
		require.NotEqual(t, a, b, "edge %d closes a cycle", id)
		parent[a] = b
	}
}
