// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge catalog operations (add, remove on clones, restore, lookup).
// Determinism:
//   - Edge ids are handed out densely in AddEdge call order; Edges() is sorted by id.
// Concurrency:
//   - Mutators take the write lock; getters take the read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge connects from and to with the given weight and returns the new edge id.
//
// Errors:
//   - ErrFrozen: graph was frozen.
//   - ErrNodeNotFound: either endpoint is missing.
//   - ErrLoopNotAllowed: from == to.
//   - ErrBadWeight: weight < 0, NaN or ±Inf.
//   - ErrMultiEdgeNotAllowed: an edge between the pair already exists.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to int, weight float64) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return None, ErrFrozen
	}
	if err := g.validateEdge(from, to, weight); err != nil {
		return None, err
	}

	id := g.nextEdgeID
	g.nextEdgeID++
	g.insertEdge(&Edge{ID: id, From: from, To: to, Weight: weight})

	return id, nil
}

// RemoveEdge deletes the edge with the given id. Intended for unfrozen working
// copies obtained via Clone.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	e, ok := g.edges[id]
	if !ok {
		return fmt.Errorf("%w: id=%d", ErrEdgeNotFound, id)
	}

	delete(g.edges, id)
	delete(g.pairs, pairKey(e.From, e.To))
	delete(g.adjacency[e.From], id)
	delete(g.adjacency[e.To], id)

	return nil
}

// RestoreEdge re-inserts a previously removed edge keeping its original id.
// The id must not be in use and the endpoint pair must be free.
//
// Complexity: O(1).
func (g *Graph) RestoreEdge(e Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	if _, taken := g.edges[e.ID]; taken || e.ID < 0 {
		return fmt.Errorf("%w: id=%d already in use", ErrMultiEdgeNotAllowed, e.ID)
	}
	if err := g.validateEdge(e.From, e.To, e.Weight); err != nil {
		return err
	}

	restored := e
	g.insertEdge(&restored)
	if e.ID >= g.nextEdgeID {
		g.nextEdgeID = e.ID + 1
	}

	return nil
}

// Edge returns a copy of the edge with the given id.
//
// Complexity: O(1).
func (g *Graph) Edge(id int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// HasEdge reports whether an edge connects u and v.
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.pairs[pairKey(u, v)]

	return ok
}

// EdgeBetween returns the edge connecting u and v, if any.
//
// Complexity: O(1).
func (g *Graph) EdgeBetween(u, v int) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.pairs[pairKey(u, v)]
	if !ok {
		return nil, false
	}

	return g.edges[id], true
}

// Edges returns all edges sorted by id. The pointers are shared with the
// graph; treat them as read-only.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns |E|.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// validateEdge enforces endpoint, loop, weight and multi-edge rules. Caller holds g.mu.
func (g *Graph) validateEdge(from, to int, weight float64) error {
	if !g.hasNode(from) || !g.hasNode(to) {
		return fmt.Errorf("%w: edge %d-%d", ErrNodeNotFound, from, to)
	}
	if from == to {
		return fmt.Errorf("%w: node %d", ErrLoopNotAllowed, from)
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}
	if _, dup := g.pairs[pairKey(from, to)]; dup {
		return fmt.Errorf("%w: edge %d-%d", ErrMultiEdgeNotAllowed, from, to)
	}

	return nil
}

// insertEdge links e into every index. Caller holds g.mu and has validated e.
func (g *Graph) insertEdge(e *Edge) {
	g.edges[e.ID] = e
	g.pairs[pairKey(e.From, e.To)] = e.ID
	g.adjacency[e.From][e.ID] = struct{}{}
	g.adjacency[e.To][e.ID] = struct{}{}
}
