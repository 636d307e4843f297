// SPDX-License-Identifier: MIT

// Package algo defines the contract shared by every animated graph algorithm.
//
// A Variant is bound to one *core.Graph at construction and comes in two
// classes:
//
//   - SingleSource variants (BFS, DFS, Dijkstra, A*, Bellman-Ford,
//     Floyd-Warshall) run from a source towards a target and record
//     predecessors in the trace.
//   - WholeGraph variants (Kruskal, Prim, Reverse-Delete) build a minimum
//     spanning tree and record only visited edges.
//
// Variants never sleep or block on their own. After every visually meaningful
// trace mutation they call Env.Step.Checkpoint, which is where pacing, pausing
// and stopping happen. A variant that receives ErrStopped from a checkpoint
// returns it unchanged; the lifecycle treats it as a clean stop.
package algo
