// SPDX-License-Identifier: MIT

// Package dfs animates depth-first search from a source towards a target.
//
// The search recurses along the lowest-id unexplored edge first and records
// the first-found predecessor of every node. It stops once the target is
// reached at any depth, so the resulting path is a valid path but not
// necessarily the shortest one.
//
// Recursion depth is bounded by the node count.
package dfs
