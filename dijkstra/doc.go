// SPDX-License-Identifier: MIT

// Package dijkstra animates Dijkstra's shortest-path algorithm on a weighted,
// undirected core.Graph.
//
// Nodes are settled in order of increasing tentative distance from the source
// using a binary min-heap. Every strict improvement of a tentative distance
// records the new predecessor in the trace, marks the relaxing edge as
// visited, and yields one paced checkpoint. The run continues until every
// reachable node is settled; the target does not end it early.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is settled at most once (V pops that do work).
//   - Each relaxation may push a duplicate heap entry (up to E pushes).
//   - Space: O(V + E) in the worst case under lazy decrease-key.
//
// Options:
//
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable walls.
//   - WithMaxDistance(d):      nodes farther than d are never settled.
//
// Ties between equal tentative distances are broken by push order, so runs
// are reproducible for a fixed graph.
package dijkstra
