// SPDX-License-Identifier: MIT

// Package prim_kruskal animates the two greedy minimum spanning tree builders.
//
// Kruskal
//
//	Edges are stable-sorted by ascending weight (equal weights keep ascending
//	id order). A disjoint-set forest with path compression and union by rank
//	rejects edges that would close a cycle. Each accepted edge is marked and
//	followed by one paced checkpoint. The run ends at N−1 accepted edges.
//
// Prim
//
//	The tree starts from the globally least edge (same ordering as Kruskal).
//	Each step recomputes the boundary, i.e. every edge with exactly one
//	endpoint in the tree, and adds the least one. The boundary scan is
//	deliberately recomputed from scratch each step so every step is
//	self-contained. The run ends at N−1 tree edges.
//
// Both return algo.ErrDisconnected when the graph cannot be spanned; a graph
// with at most one node finishes immediately with an empty tree.
//
// Complexity:
//
//   - Kruskal: O(E log E + E·α(V))
//   - Prim:    O(V·E)
package prim_kruskal
