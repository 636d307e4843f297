// SPDX-License-Identifier: MIT

// Package core defines the central Graph, Node, and Edge types,
// and provides thread-safe primitives for building, querying, and cloning graphs.
//
// This file declares Node, Edge, Graph, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound        - requested node does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - negative, NaN or infinite weight.
//	ErrLoopNotAllowed      - self-loop.
//	ErrMultiEdgeNotAllowed - second edge between the same pair of nodes.
//	ErrFrozen              - mutation attempted on a frozen graph.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrFrozen indicates a mutation on a graph that was frozen by its provider.
	ErrFrozen = errors.New("core: graph is frozen")
)

// None marks an absent node reference (no predecessor, no endpoint).
const None = -1

// Node is a graph vertex with a position on the drawing canvas.
type Node struct {
	// ID is the dense identifier of this node (0..N-1).
	ID int

	// X, Y locate the node on the canvas. Edge weights are derived from them.
	X, Y float64
}

// Edge is an undirected, weighted connection between two nodes.
type Edge struct {
	// ID is the dense identifier of this edge (0..E-1), preserved by Clone.
	ID int

	// From and To are the endpoints as passed to AddEdge. Direction carries no meaning.
	From, To int

	// Weight is the traversal cost; non-negative and finite.
	Weight float64
}

// Other returns the endpoint of e opposite to id.
// If id is not an endpoint, From is returned.
func (e *Edge) Other(id int) int {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Graph is the core in-memory graph data structure.
//
// mu protects every field below it; frozen is flipped once by Freeze.
type Graph struct {
	mu sync.RWMutex

	frozen bool

	// Storage
	nodes      []Node        // node id → Node (dense)
	edges      map[int]*Edge // edge id → Edge (sparse after RemoveEdge on a clone)
	nextEdgeID int           // next id handed out by AddEdge

	// adjacency[node][edgeID] = struct{}{}
	adjacency []map[int]struct{}

	// pairs[{min,max}] = edgeID, enforces the no-multi-edge rule in O(1).
	pairs map[[2]int]int
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		edges: make(map[int]*Edge),
		pairs: make(map[[2]int]int),
	}
}

// pairKey normalizes an undirected endpoint pair.
func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}
