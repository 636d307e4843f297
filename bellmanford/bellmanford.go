// SPDX-License-Identifier: MIT

// Package bellmanford animates the Bellman-Ford shortest-path algorithm.
//
// The run makes exactly N passes over every edge in ascending id order and
// relaxes each edge in both directions. There is no early exit once
// distances stabilize: every pass is shown. Every examined edge is marked
// visited and followed by one paced checkpoint; strict improvements update
// the predecessor array.
//
// Complexity: O(V·E) time, O(V) space.
package bellmanford

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/trace"
)

// Name is the canonical display name.
const Name = "Bellman-Ford"

// BellmanFord is the exhaustive relaxation variant bound to one graph.
type BellmanFord struct {
	g *core.Graph
}

// New binds a BellmanFord to g. Returns algo.ErrPrecondition if g is nil.
func New(g *core.Graph) (*BellmanFord, error) {
	if g == nil {
		return nil, fmt.Errorf("bellmanford: %w: nil graph", algo.ErrPrecondition)
	}

	return &BellmanFord{g: g}, nil
}

// Name implements algo.Variant.
func (b *BellmanFord) Name() string { return Name }

// Class implements algo.Variant.
func (b *BellmanFord) Class() algo.Class { return algo.SingleSourceClass }

// Graph implements algo.Variant.
func (b *BellmanFord) Graph() *core.Graph { return b.g }

// RunSingleSource implements algo.SingleSource.
func (b *BellmanFord) RunSingleSource(ctx context.Context, env algo.Env, source, target int) error {
	if err := algo.CheckEnv(env); err != nil {
		return err
	}
	if err := algo.CheckEndpoints(b.g, source, target); err != nil {
		return err
	}

	n := b.g.NodeCount()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[source] = 0

	edges := b.g.Edges()
	for pass := 0; pass < n; pass++ {
		for _, e := range edges {
			if err := env.Trace.Visit(e.ID); err != nil {
				return fmt.Errorf("bellmanford: %w", err)
			}
			if err := relax(env.Trace, dist, e.From, e.To, e.Weight); err != nil {
				return err
			}
			if err := relax(env.Trace, dist, e.To, e.From, e.Weight); err != nil {
				return err
			}
			if err := env.Step.Checkpoint(ctx); err != nil {
				return err
			}
		}
	}

	return nil
}

// relax improves dist[v] through u on strict improvement.
func relax(tr *trace.Trace, dist []float64, u, v int, w float64) error {
	nd := dist[u] + w
	if nd >= dist[v] {
		return nil
	}
	dist[v] = nd
	if err := tr.SetPredecessor(v, u); err != nil {
		return fmt.Errorf("bellmanford: %w", err)
	}

	return nil
}
