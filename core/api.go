// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters and the freeze switch.
// Policy:
//   - No algorithms here beyond O(1)/O(V) snapshots.
//   - Every exported function documents complexity and locking strategy.

package core

import "math"

// Freeze marks the graph immutable. Every later AddNode/AddEdge/RemoveEdge/RestoreEdge
// returns ErrFrozen. Freezing twice is a no-op.
//
// Complexity: O(1). Locking: write lock.
func (g *Graph) Freeze() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.frozen = true
}

// Frozen reports whether Freeze has been called.
//
// Complexity: O(1). Locking: read lock.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// Distance returns the Euclidean distance between the positions of nodes u and v.
// Unknown ids yield +Inf so that callers using it as a heuristic never underestimate
// by accident.
//
// Complexity: O(1). Locking: read lock.
func (g *Graph) Distance(u, v int) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(u) || !g.hasNode(v) {
		return math.Inf(1)
	}

	return euclid(g.nodes[u], g.nodes[v])
}

// TotalWeight sums the weights of the given edge ids. Unknown ids are ignored.
//
// Complexity: O(len(ids)). Locking: read lock.
func (g *Graph) TotalWeight(ids []int) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sum float64
	for _, id := range ids {
		if e, ok := g.edges[id]; ok {
			sum += e.Weight
		}
	}

	return sum
}

// GraphStats is a read-only snapshot of the catalog sizes.
type GraphStats struct {
	NodeCount int
	EdgeCount int
	Frozen    bool
	Connected bool
}

// Stats produces a snapshot of catalog sizes and connectivity.
//
// Complexity: O(V + E). Locking: read lock.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return &GraphStats{
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
		Frozen:    g.frozen,
		Connected: g.isConnectedLocked(),
	}
}

// euclid is the straight-line distance between two node positions.
func euclid(a, b Node) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
