// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/core"
)

// walker encapsulates mutable BFS state for one run.
type walker struct {
	g      *core.Graph
	env    algo.Env
	target int
	queue  []int
	seen   []bool
}

// RunSingleSource implements algo.SingleSource.
func (b *BFS) RunSingleSource(ctx context.Context, env algo.Env, source, target int) error {
	if err := algo.CheckEnv(env); err != nil {
		return err
	}
	if err := algo.CheckEndpoints(b.g, source, target); err != nil {
		return err
	}

	w := &walker{
		g:      b.g,
		env:    env,
		target: target,
		queue:  make([]int, 0, b.g.NodeCount()),
		seen:   make([]bool, b.g.NodeCount()),
	}
	w.seen[source] = true
	w.queue = append(w.queue, source)

	return w.loop(ctx)
}

// loop dequeues until the target is found or the queue drains.
func (w *walker) loop(ctx context.Context) error {
	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]
		if u == w.target {
			return nil
		}

		found, err := w.discover(ctx, u)
		if err != nil || found {
			return err
		}
	}

	return nil
}

// discover marks every unseen neighbour of u, checkpointing after each one.
// It reports whether the target was among them.
func (w *walker) discover(ctx context.Context, u int) (bool, error) {
	nbs, err := w.g.Neighbors(u)
	if err != nil {
		return false, fmt.Errorf("bfs: neighbors of %d: %w", u, err)
	}
	for _, e := range nbs {
		v := e.Other(u)
		if w.seen[v] {
			continue
		}
		w.seen[v] = true
		if err = w.env.Trace.SetPredecessor(v, u); err != nil {
			return false, fmt.Errorf("bfs: %w", err)
		}
		if err = w.env.Trace.Visit(e.ID); err != nil {
			return false, fmt.Errorf("bfs: %w", err)
		}
		if err = w.env.Step.Checkpoint(ctx); err != nil {
			return false, err
		}
		if v == w.target {
			return true, nil
		}
		w.queue = append(w.queue, v)
	}

	return false, nil
}
