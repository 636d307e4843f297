// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/core"
)

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	opts    Options
	env     algo.Env
	dist    []float64 // best known distance from the source
	settled []bool    // distance is final
	pq      nodePQ
	seq     int // push counter for FIFO tie-breaking
}

// RunSingleSource implements algo.SingleSource.
func (d *Dijkstra) RunSingleSource(ctx context.Context, env algo.Env, source, target int) error {
	if err := algo.CheckEnv(env); err != nil {
		return err
	}
	if err := algo.CheckEndpoints(d.g, source, target); err != nil {
		return err
	}

	n := d.g.NodeCount()
	r := &runner{
		g:       d.g,
		opts:    d.opts,
		env:     env,
		dist:    make([]float64, n),
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	r.push(source, 0)

	return r.process(ctx)
}

// push enqueues id with priority dist.
func (r *runner) push(id int, dist float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
	r.seq++
}

// process settles nodes until the heap drains or MaxDistance is exceeded.
func (r *runner) process(ctx context.Context) error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.settled[item.id] {
			continue // stale entry
		}
		if item.dist > r.opts.MaxDistance {
			break
		}
		r.settled[item.id] = true

		if err := r.relax(ctx, item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries every edge out of u; each strict improvement is painted and paced.
func (r *runner) relax(ctx context.Context, u int) error {
	nbs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}
	for _, e := range nbs {
		v := e.Other(u)
		if r.settled[v] || e.Weight >= r.opts.InfEdgeThreshold {
			continue
		}
		nd := r.dist[u] + e.Weight
		if nd > r.opts.MaxDistance || nd >= r.dist[v] {
			continue
		}

		r.dist[v] = nd
		r.push(v, nd)
		if err = r.env.Trace.SetPredecessor(v, u); err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		if err = r.env.Trace.Visit(e.ID); err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		if err = r.env.Step.Checkpoint(ctx); err != nil {
			return err
		}
	}

	return nil
}

// nodeItem is a heap entry: node id, tentative distance and push sequence.
type nodeItem struct {
	id   int
	dist float64
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by seq.
// Lazy decrease-key: improved distances push a new entry and stale ones are
// skipped on pop via settled[].
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
