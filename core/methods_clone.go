// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves node ids, edge ids and nextEdgeID so ids never collide on the copy.
// Concurrency:
//   - Read lock on the source for snapshotting; the clone is private to the caller.

package core

// Clone returns a deep, unfrozen copy of the Graph: nodes, edges and adjacency.
// Edge ids are preserved so edges of the copy can be matched to edges of the
// original (e.g. against an AnimationTrace).
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		nodes:      make([]Node, len(g.nodes)),
		edges:      make(map[int]*Edge, len(g.edges)),
		nextEdgeID: g.nextEdgeID,
		adjacency:  make([]map[int]struct{}, len(g.nodes)),
		pairs:      make(map[[2]int]int, len(g.pairs)),
	}
	copy(clone.nodes, g.nodes)
	for i := range clone.adjacency {
		clone.adjacency[i] = make(map[int]struct{}, len(g.adjacency[i]))
	}
	for _, e := range g.edges {
		ne := *e
		clone.insertEdge(&ne)
	}

	return clone
}
