// SPDX-License-Identifier: MIT

// Package bfs animates breadth-first search from a source towards a target.
//
// What
//
//   - Explores nodes layer by layer, ignoring edge weights.
//   - The first time a node is discovered, its discoverer becomes its
//     predecessor in the trace and the discovering edge is marked visited.
//   - Stops as soon as the target is discovered (or dequeued, when the source
//     is the target), so the recorded path has the minimum hop count.
//
// Determinism
//
//	core.Graph.Neighbors returns incident edges sorted by Edge.ID and BFS
//	enqueues in that order, so the discovery order is reproducible.
//
// Pacing
//
//	One paced checkpoint after every discovery: each step paints exactly one
//	new tree edge.
//
// Complexity: O(V + E) time, O(V) space.
package bfs
