// SPDX-License-Identifier: MIT

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/internal/graphtest"
	"github.com/katalvlaran/algoviz/registry"
)

func selectSingle(t *testing.T, name string, g *core.Graph) algo.SingleSource {
	t.Helper()
	v, err := registry.Select(name, g)
	require.NoError(t, err)
	s, ok := v.(algo.SingleSource)
	require.True(t, ok, name)
	return s
}

func selectWhole(t *testing.T, name string, g *core.Graph) algo.WholeGraph {
	t.Helper()
	v, err := registry.Select(name, g)
	require.NoError(t, err)
	w, ok := v.(algo.WholeGraph)
	require.True(t, ok, name)
	return w
}

// TestShortestPathWeightsAgree: every weighted shortest-path variant yields
// a loop-free source→target path of the same total weight.
func TestShortestPathWeightsAgree(t *testing.T) {
	weighted := []string{"Dijkstra", "A*", "Bellman-Ford", "Floyd-Warshall"}
	for seed := int64(1); seed <= 4; seed++ {
		g := graphtest.Random(t, 10, seed)
		var want float64
		for i, name := range weighted {
			path, err := graphtest.RunSingle(t, selectSingle(t, name, g), 0, 9).PathTo(9)
			require.NoError(t, err, "%s seed %d", name, seed)
			assertLoopFree(t, path)

			w := graphtest.PathWeight(g, path)
			if i == 0 {
				want = w
				continue
			}
			assert.InDelta(t, want, w, 1e-9, "%s seed %d", name, seed)
		}
	}
}

// TestUnitWeightsBFSMatchesDijkstraHops: with all weights 1 on a 10-node
// graph, BFS and Dijkstra find paths of equal hop count from 0 to 9.
func TestUnitWeightsBFSMatchesDijkstraHops(t *testing.T) {
	base := graphtest.Random(t, 10, 3)
	pts := make([][2]float64, 0, base.NodeCount())
	for _, n := range base.Nodes() {
		pts = append(pts, [2]float64{n.X, n.Y})
	}
	edges := make([]graphtest.E, 0, base.EdgeCount())
	for _, e := range base.Edges() {
		edges = append(edges, graphtest.E{From: e.From, To: e.To, W: 1})
	}
	g := graphtest.Build(t, pts, edges)

	pb, err := graphtest.RunSingle(t, selectSingle(t, "bfs", g), 0, 9).PathTo(9)
	require.NoError(t, err)
	pd, err := graphtest.RunSingle(t, selectSingle(t, "dijkstra", g), 0, 9).PathTo(9)
	require.NoError(t, err)
	assert.Len(t, pd, len(pb))
}

// TestSpanningTreesAgree: Kruskal, Prim and Reverse-Delete all produce N-1
// edge spanning trees of identical total weight.
func TestSpanningTreesAgree(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		g := graphtest.Random(t, 25, seed)
		var want float64
		for i, name := range []string{"Kruskal", "Prim", "Reverse-Delete"} {
			ids := graphtest.RunWhole(t, selectWhole(t, name, g)).VisitedEdges()
			graphtest.AssertSpanningTree(t, g, ids)
			if i == 0 {
				want = g.TotalWeight(ids)
				continue
			}
			assert.InDelta(t, want, g.TotalWeight(ids), 1e-9, "%s seed %d", name, seed)
		}
	}
}

func assertLoopFree(t *testing.T, path []int) {
	t.Helper()
	seen := make(map[int]bool, len(path))
	for _, v := range path {
		require.False(t, seen[v], "node %d repeats in %v", v, path)
		seen[v] = true
	}
}
