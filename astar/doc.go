// SPDX-License-Identifier: MIT

// Package astar animates A* search towards a target on a weighted, undirected
// core.Graph with positioned nodes.
//
// Priority of a node is g + h where g is the tentative distance from the
// source and h is the straight-line distance to the target multiplied by a
// per-graph scale:
//
//	scale = min(1, min over edges e with |e| > 0 of weight(e) / |e|)
//
// where |e| is the Euclidean length of e. With that scale h never exceeds
// the true remaining cost and is consistent, so a node's predecessor is final
// when it is popped. Generated graphs use Euclidean weights, giving scale 1
// (the plain Euclidean heuristic).
//
// A node's predecessor and tree edge are written into the trace when it is
// popped; the run ends when the target pops.
package astar
