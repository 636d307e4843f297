// SPDX-License-Identifier: MIT

// Package floydwarshall animates the all-pairs Floyd-Warshall algorithm and
// shows the current best source→target route as it evolves.
//
// What
//
//   - dist and next tables are dense row-major n×n buffers; the diagonal is 0
//     and missing edges are +Inf.
//   - Loop order is fixed (k → i → j). A strict improvement of dist[i][j] via k
//     sets next[i][j] = next[i][k] and marks the edges i-k and k-j, where they
//     exist. Otherwise the direct edge i-j is marked, if it exists.
//   - A cell that marked at least one edge ends with a paced checkpoint; a cell
//     that touched nothing ends with an unpaced Tick, so the animation does not
//     stall on empty cells.
//   - After each k the source→target route is rebuilt from next and written
//     into the predecessor array from the target backwards, followed by a Tick.
//
// Fast mode
//
//	WithFastReconstruct() rebuilds the route only once, after the last k. The
//	per-k rebuild costs O(n) inside an O(n³) loop and exists for animation
//	fidelity.
//
// Complexity: O(V³) time, O(V²) space.
package floydwarshall
