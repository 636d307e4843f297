// SPDX-License-Identifier: MIT

// Package core provides the GraphModel shared by every animated algorithm:
// a thread-safe, undirected, weighted graph whose nodes carry 2D positions.
//
// The Graph G = (V,E) has a deliberately narrow shape:
//
//   - Node ids are dense: 0..N-1, assigned by AddNode in call order.
//   - Edges are undirected, carry a non-negative finite weight, and get dense
//     ids 0..E-1 in AddEdge order.
//   - No self-loops (ErrLoopNotAllowed) and no parallel edges
//     (ErrMultiEdgeNotAllowed).
//   - Adjacency index: adjacency[node] = set of incident edge ids.
//   - A single sync.RWMutex guards nodes, edges and adjacency, so a renderer
//     may read the graph while an algorithm is walking it.
//
// Immutability:
//
//	Graph providers call Freeze() before handing the graph out. Every mutator
//	on a frozen graph returns ErrFrozen. Clone() returns an unfrozen deep copy
//	that preserves edge ids, which is what Reverse-Delete uses as its working
//	copy (RemoveEdge / RestoreEdge).
//
// Determinism:
//
//	Nodes(), Edges() and Neighbors() return results sorted by id, so every
//	algorithm built on this package explores the graph in a reproducible order.
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	represents a square with four nodes and four edges.
package core
