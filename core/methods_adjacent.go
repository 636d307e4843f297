// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency queries and connectivity.
// Determinism:
//   - Neighbors/NeighborIDs are sorted; Components lists members in ascending id order
//     and components by their smallest member.

package core

import "sort"

// Neighbors returns the edges incident to id, sorted by Edge.ID ascending.
//
// Errors:
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity: O(d log d), where d is the degree of id.
//
// Notes:
//   - The returned *Edge values are shared with the graph; treat them as read-only.
//   - Use e.Other(id) to obtain the adjacent node.
func (g *Graph) Neighbors(id int) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(id) {
		return nil, ErrNodeNotFound
	}

	return g.neighborsLocked(id), nil
}

// NeighborIDs returns the ids of nodes adjacent to id, sorted ascending.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	out := make([]int, 0, len(nbs))
	for _, e := range nbs {
		out = append(out, e.Other(id))
	}
	sort.Ints(out)

	return out, nil
}

// IsConnected reports whether every node is reachable from node 0.
// Graphs with zero or one node are connected.
//
// Complexity: O(V + E).
func (g *Graph) IsConnected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.isConnectedLocked()
}

// Components partitions the nodes into connected components.
// Each component is sorted ascending; components are ordered by their smallest node.
//
// Complexity: O(V + E).
func (g *Graph) Components() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.nodes)
	seen := make([]bool, n)
	var out [][]int
	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		members := g.reachLocked(start, seen)
		sort.Ints(members)
		out = append(out, members)
	}

	return out
}

// neighborsLocked collects incident edges of id in id order. Caller holds g.mu.
func (g *Graph) neighborsLocked(id int) []*Edge {
	out := make([]*Edge, 0, len(g.adjacency[id]))
	for eid := range g.adjacency[id] {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// isConnectedLocked runs a breadth-first reachability check from node 0.
func (g *Graph) isConnectedLocked() bool {
	n := len(g.nodes)
	if n <= 1 {
		return true
	}
	// fewer than n-1 edges can never span n nodes
	if len(g.edges) < n-1 {
		return false
	}

	return len(g.reachLocked(0, make([]bool, n))) == n
}

// reachLocked marks and returns every node reachable from start. Caller holds g.mu.
func (g *Graph) reachLocked(start int, seen []bool) []int {
	seen[start] = true
	queue := []int{start}
	members := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for eid := range g.adjacency[u] {
			v := g.edges[eid].Other(u)
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
				members = append(members, v)
			}
		}
	}

	return members
}
