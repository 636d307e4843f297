// SPDX-License-Identifier: MIT

package floydwarshall

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/trace"
)

// tables holds the dense dist/next buffers for one run.
type tables struct {
	n    int
	dist []float64
	next []int
}

func newTables(g *core.Graph) *tables {
	n := g.NodeCount()
	t := &tables{n: n, dist: make([]float64, n*n), next: make([]int, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			t.dist[i*n+j] = math.Inf(1)
			t.next[i*n+j] = trace.None
		}
		t.dist[i*n+i] = 0
		t.next[i*n+i] = i
	}
	for _, e := range g.Edges() {
		t.dist[e.From*n+e.To], t.next[e.From*n+e.To] = e.Weight, e.To
		t.dist[e.To*n+e.From], t.next[e.To*n+e.From] = e.Weight, e.From
	}

	return t
}

// route follows next from u to v; nil when no route exists.
func (t *tables) route(u, v int) []int {
	if t.next[u*t.n+v] == trace.None {
		return nil
	}
	out := []int{u}
	for u != v {
		u = t.next[u*t.n+v]
		if u == trace.None || len(out) > t.n {
			return nil
		}
		out = append(out, u)
	}

	return out
}

// RunSingleSource implements algo.SingleSource.
func (f *FloydWarshall) RunSingleSource(ctx context.Context, env algo.Env, source, target int) error {
	if err := algo.CheckEnv(env); err != nil {
		return err
	}
	if err := algo.CheckEndpoints(f.g, source, target); err != nil {
		return err
	}

	t := newTables(f.g)
	n := t.n
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				touched, err := f.cell(t, env.Trace, k, i, j)
				if err != nil {
					return err
				}
				if touched {
					err = env.Step.Checkpoint(ctx)
				} else {
					err = env.Step.Tick(ctx)
				}
				if err != nil {
					return err
				}
			}
		}

		if f.opts.FastReconstruct && k < n-1 {
			continue
		}
		if err := writeRoute(ctx, env, t.route(source, target)); err != nil {
			return err
		}
	}

	return nil
}

// cell processes one (k, i, j) step and reports whether it marked an edge.
func (f *FloydWarshall) cell(t *tables, tr *trace.Trace, k, i, j int) (bool, error) {
	n := t.n
	if cand := t.dist[i*n+k] + t.dist[k*n+j]; cand < t.dist[i*n+j] {
		t.dist[i*n+j] = cand
		t.next[i*n+j] = t.next[i*n+k]

		a, err := f.mark(tr, i, k)
		if err != nil {
			return false, err
		}
		b, err := f.mark(tr, k, j)

		return a || b, err
	}

	return f.mark(tr, i, j)
}

// mark visits the edge u-v if it exists.
func (f *FloydWarshall) mark(tr *trace.Trace, u, v int) (bool, error) {
	e, ok := f.g.EdgeBetween(u, v)
	if !ok {
		return false, nil
	}
	if err := tr.Visit(e.ID); err != nil {
		return false, fmt.Errorf("floydwarshall: %w", err)
	}

	return true, nil
}

// writeRoute stores route into the predecessor array from the target back to
// the source, then yields without delay.
func writeRoute(ctx context.Context, env algo.Env, route []int) error {
	if len(route) == 0 {
		return nil
	}
	for idx := len(route) - 1; idx > 0; idx-- {
		if err := env.Trace.SetPredecessor(route[idx], route[idx-1]); err != nil {
			return fmt.Errorf("floydwarshall: %w", err)
		}
	}

	return env.Step.Tick(ctx)
}
