// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// generate.go - Generate(size, class, opts...).
//
// Contract:
//   • n = Size (or WithNodeCount) ≥ 1, else ErrTooFewVertices.
//   • cfg.rng must be non-nil, else ErrNeedRandSource.
//   • Node i gets 1 + rng.Intn(maxAdj) random partner draws; self-pairs and
//     duplicate pairs are skipped. maxAdj = max(1, n/3) for single-source
//     classes and max(1, n/2) for whole-graph classes.
//   • Connectivity repair links every detached component to the component of
//     node 0 through their closest pair of nodes.
//   • Edge weight = Euclidean distance between endpoints.
//   • The returned graph is frozen.
//
// Determinism:
//   • RNG draws happen in a fixed order: layout, then node i asc.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/core"
)

const methodGenerate = "Generate"

// Generate builds a random connected graph for the given size and class.
func Generate(size Size, class algo.Class, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	n := int(size)
	if cfg.nodeCount > 0 {
		n = cfg.nodeCount
	}
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodGenerate, n, ErrTooFewVertices)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}

	pts, err := layout(n, cfg, cfg.rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	g := core.NewGraph()
	for _, p := range pts {
		if _, err = g.AddNode(p.x, p.y); err != nil {
			return nil, fmt.Errorf("%s: AddNode: %w", methodGenerate, err)
		}
	}

	if err = wireRandom(g, n, maxAdjacent(n, class), cfg); err != nil {
		return nil, err
	}
	if err = repairConnectivity(g); err != nil {
		return nil, err
	}
	if !g.IsConnected() {
		return nil, fmt.Errorf("%s: graph still disconnected: %w", methodGenerate, ErrConstructFailed)
	}
	g.Freeze()

	return g, nil
}

// maxAdjacent is the upper bound on partner draws per node.
func maxAdjacent(n int, class algo.Class) int {
	m := n / 3
	if class == algo.WholeGraphClass {
		m = n / 2
	}
	if m < 1 {
		m = 1
	}

	return m
}

// wireRandom draws random partners for every node in ascending id order.
func wireRandom(g *core.Graph, n, maxAdj int, cfg builderConfig) error {
	if n < 2 {
		return nil
	}
	for u := 0; u < n; u++ {
		draws := 1 + cfg.rng.Intn(maxAdj)
		for k := 0; k < draws; k++ {
			v := cfg.rng.Intn(n)
			if v == u || g.HasEdge(u, v) {
				continue
			}
			if _, err := g.AddEdge(u, v, g.Distance(u, v)); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodGenerate, u, v, err)
			}
		}
	}

	return nil
}

// repairConnectivity links each component other than node 0's to node 0's
// component through the geometrically closest pair.
func repairConnectivity(g *core.Graph) error {
	comps := g.Components()
	if len(comps) <= 1 {
		return nil
	}

	joined := append([]int(nil), comps[0]...)
	for _, comp := range comps[1:] {
		a, b := closestPair(g, joined, comp)
		if _, err := g.AddEdge(a, b, g.Distance(a, b)); err != nil {
			return fmt.Errorf("%s: repair %d-%d: %w", methodGenerate, a, b, err)
		}
		joined = append(joined, comp...)
	}

	return nil
}

// closestPair returns (a∈from, b∈to) minimizing Distance(a, b); ties keep the first pair.
func closestPair(g *core.Graph, from, to []int) (int, int) {
	best, ba, bb := math.Inf(1), from[0], to[0]
	for _, a := range from {
		for _, b := range to {
			if d := g.Distance(a, b); d < best {
				best, ba, bb = d, a, b
			}
		}
	}

	return ba, bb
}
