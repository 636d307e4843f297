// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node catalog operations.
// Determinism:
//   - Node ids are handed out densely in AddNode call order.
// Concurrency:
//   - Mutators take the write lock; getters take the read lock.

package core

// AddNode appends a node at position (x, y) and returns its id.
// Returns ErrFrozen if the graph has been frozen.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(x, y float64) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return None, ErrFrozen
	}

	id := len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id, X: x, Y: y})
	g.adjacency = append(g.adjacency, make(map[int]struct{}))

	return id, nil
}

// HasNode reports whether id names a node of g.
//
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasNode(id)
}

// Node returns a copy of the node with the given id.
//
// Complexity: O(1).
func (g *Graph) Node(id int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(id) {
		return Node{}, ErrNodeNotFound
	}

	return g.nodes[id], nil
}

// Nodes returns a copy of all nodes in ascending id order.
//
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns |V|.
//
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Degree returns the number of edges incident to id.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(id) {
		return 0, ErrNodeNotFound
	}

	return len(g.adjacency[id]), nil
}

// hasNode is the lock-free membership check; callers hold g.mu.
func (g *Graph) hasNode(id int) bool {
	return id >= 0 && id < len(g.nodes)
}
