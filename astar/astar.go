// SPDX-License-Identifier: MIT

package astar

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/trace"
)

// search holds the per-run state.
type search struct {
	g      *core.Graph
	env    algo.Env
	target int
	scale  float64
	gScore []float64
	parent []int // predecessor candidate
	via    []int // edge id to parent
	closed []bool
	open   openSet
	seq    int
}

// RunSingleSource implements algo.SingleSource.
func (a *AStar) RunSingleSource(ctx context.Context, env algo.Env, source, target int) error {
	if err := algo.CheckEnv(env); err != nil {
		return err
	}
	if err := algo.CheckEndpoints(a.g, source, target); err != nil {
		return err
	}

	n := a.g.NodeCount()
	s := &search{
		g:      a.g,
		env:    env,
		target: target,
		scale:  a.scale,
		gScore: make([]float64, n),
		parent: make([]int, n),
		via:    make([]int, n),
		closed: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		s.gScore[i] = math.Inf(1)
		s.parent[i] = trace.None
		s.via[i] = trace.None
	}
	s.gScore[source] = 0
	heap.Init(&s.open)
	s.push(source)

	return s.run(ctx)
}

func (s *search) h(v int) float64 {
	return s.scale * s.g.Distance(v, s.target)
}

func (s *search) push(v int) {
	heap.Push(&s.open, &openItem{id: v, f: s.gScore[v] + s.h(v), seq: s.seq})
	s.seq++
}

// run pops the most promising node until the target is closed.
func (s *search) run(ctx context.Context) error {
	for s.open.Len() > 0 {
		u := heap.Pop(&s.open).(*openItem).id
		if s.closed[u] {
			continue
		}
		s.closed[u] = true

		if s.via[u] != trace.None {
			if err := s.env.Trace.SetPredecessor(u, s.parent[u]); err != nil {
				return fmt.Errorf("astar: %w", err)
			}
			if err := s.env.Trace.Visit(s.via[u]); err != nil {
				return fmt.Errorf("astar: %w", err)
			}
			if err := s.env.Step.Checkpoint(ctx); err != nil {
				return err
			}
		}
		if u == s.target {
			return nil
		}
		if err := s.expand(u); err != nil {
			return err
		}
	}

	return nil
}

// expand relaxes the open neighbours of u.
func (s *search) expand(u int) error {
	nbs, err := s.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %d: %w", u, err)
	}
	for _, e := range nbs {
		v := e.Other(u)
		if s.closed[v] {
			continue
		}
		if nd := s.gScore[u] + e.Weight; nd < s.gScore[v] {
			s.gScore[v] = nd
			s.parent[v] = u
			s.via[v] = e.ID
			s.push(v)
		}
	}

	return nil
}

// openItem is an entry of the open set keyed by f = g + h.
type openItem struct {
	id  int
	f   float64
	seq int
}

// openSet is a min-heap of *openItem by f, then push order.
type openSet []*openItem

func (o openSet) Len() int { return len(o) }

func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].seq < o[j].seq
}

func (o openSet) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

func (o *openSet) Push(x interface{}) { *o = append(*o, x.(*openItem)) }

func (o *openSet) Pop() interface{} {
	old := *o
	n := len(old)
	item := old[n-1]
	*o = old[:n-1]

	return item
}
