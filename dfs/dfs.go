// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/core"
)

// walker holds the per-run traversal state.
type walker struct {
	g      *core.Graph
	env    algo.Env
	target int
	seen   []bool
}

// RunSingleSource implements algo.SingleSource.
func (d *DFS) RunSingleSource(ctx context.Context, env algo.Env, source, target int) error {
	if err := algo.CheckEnv(env); err != nil {
		return err
	}
	if err := algo.CheckEndpoints(d.g, source, target); err != nil {
		return err
	}

	w := &walker{
		g:      d.g,
		env:    env,
		target: target,
		seen:   make([]bool, d.g.NodeCount()),
	}
	_, err := w.traverse(ctx, source)

	return err
}

// traverse explores from u and reports whether the target was reached.
func (w *walker) traverse(ctx context.Context, u int) (bool, error) {
	w.seen[u] = true
	if u == w.target {
		return true, nil
	}

	nbs, err := w.g.Neighbors(u)
	if err != nil {
		return false, fmt.Errorf("dfs: neighbors of %d: %w", u, err)
	}
	for _, e := range nbs {
		v := e.Other(u)
		if w.seen[v] {
			continue
		}
		if err = w.env.Trace.SetPredecessor(v, u); err != nil {
			return false, fmt.Errorf("dfs: %w", err)
		}
		if err = w.env.Trace.Visit(e.ID); err != nil {
			return false, fmt.Errorf("dfs: %w", err)
		}
		if err = w.env.Step.Checkpoint(ctx); err != nil {
			return false, err
		}

		found, err := w.traverse(ctx, v)
		if err != nil || found {
			return found, err
		}
	}

	return false, nil
}
