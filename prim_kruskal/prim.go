// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"context"
	"fmt"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/core"
)

// RunWholeGraph implements algo.WholeGraph.
func (p *Prim) RunWholeGraph(ctx context.Context, env algo.Env) error {
	if err := algo.CheckEnv(env); err != nil {
		return err
	}
	n := p.g.NodeCount()
	if n <= 1 {
		return nil
	}

	edges := SortedByWeight(p.g)
	if len(edges) == 0 {
		return fmt.Errorf("prim: %w: no edges", algo.ErrDisconnected)
	}

	inTree := make([]bool, n)
	first := edges[0]
	inTree[first.From], inTree[first.To] = true, true
	if err := accept(ctx, env, first); err != nil {
		return err
	}

	for size := 1; size < n-1; size++ {
		e := leastBoundaryEdge(edges, inTree)
		if e == nil {
			return fmt.Errorf("prim: %w: %d of %d tree edges", algo.ErrDisconnected, size, n-1)
		}
		inTree[e.From], inTree[e.To] = true, true
		if err := accept(ctx, env, e); err != nil {
			return err
		}
	}

	return nil
}

// leastBoundaryEdge scans all edges for the lightest one with exactly one
// endpoint in the tree.
func leastBoundaryEdge(edges []*core.Edge, inTree []bool) *core.Edge {
	var best *core.Edge
	for _, e := range edges {
		if inTree[e.From] == inTree[e.To] {
			continue
		}
		if best == nil || lighter(e, best) {
			best = e
		}
	}

	return best
}
