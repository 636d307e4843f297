// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/core"
)

// Canonical display names.
const (
	KruskalName = "Kruskal"
	PrimName    = "Prim"
)

// Kruskal is the union-find MST variant bound to one graph.
type Kruskal struct {
	g *core.Graph
}

// NewKruskal binds a Kruskal to g. Returns algo.ErrPrecondition if g is nil.
func NewKruskal(g *core.Graph) (*Kruskal, error) {
	if g == nil {
		return nil, fmt.Errorf("prim_kruskal: %w: nil graph", algo.ErrPrecondition)
	}

	return &Kruskal{g: g}, nil
}

// Name implements algo.Variant.
func (k *Kruskal) Name() string { return KruskalName }

// Class implements algo.Variant.
func (k *Kruskal) Class() algo.Class { return algo.WholeGraphClass }

// Graph implements algo.Variant.
func (k *Kruskal) Graph() *core.Graph { return k.g }

// Prim is the tree-growing MST variant bound to one graph.
type Prim struct {
	g *core.Graph
}

// NewPrim binds a Prim to g. Returns algo.ErrPrecondition if g is nil.
func NewPrim(g *core.Graph) (*Prim, error) {
	if g == nil {
		return nil, fmt.Errorf("prim_kruskal: %w: nil graph", algo.ErrPrecondition)
	}

	return &Prim{g: g}, nil
}

// Name implements algo.Variant.
func (p *Prim) Name() string { return PrimName }

// Class implements algo.Variant.
func (p *Prim) Class() algo.Class { return algo.WholeGraphClass }

// Graph implements algo.Variant.
func (p *Prim) Graph() *core.Graph { return p.g }

// SortedByWeight returns g's edges in ascending weight order; equal weights
// keep ascending id order.
func SortedByWeight(g *core.Graph) []*core.Edge {
	edges := g.Edges() // ascending id
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	return edges
}

// lighter orders edges by weight, then id.
func lighter(a, b *core.Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.ID < b.ID
}

// accept marks an edge as part of the tree and paces the step.
func accept(ctx context.Context, env algo.Env, e *core.Edge) error {
	if err := env.Trace.Visit(e.ID); err != nil {
		return fmt.Errorf("prim_kruskal: %w", err)
	}

	return env.Step.Checkpoint(ctx)
}
