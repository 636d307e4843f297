// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"context"
	"fmt"

	"github.com/katalvlaran/algoviz/algo"
)

// RunWholeGraph implements algo.WholeGraph.
func (k *Kruskal) RunWholeGraph(ctx context.Context, env algo.Env) error {
	if err := algo.CheckEnv(env); err != nil {
		return err
	}
	n := k.g.NodeCount()
	if n <= 1 {
		return nil
	}

	dsu := newDSU(n)
	accepted := 0
	for _, e := range SortedByWeight(k.g) {
		if !dsu.union(e.From, e.To) {
			continue
		}
		if err := accept(ctx, env, e); err != nil {
			return err
		}
		if accepted++; accepted == n-1 {
			return nil
		}
	}

	return fmt.Errorf("kruskal: %w: %d of %d tree edges", algo.ErrDisconnected, accepted, n-1)
}

// dsu is a disjoint-set forest over node ids 0..n-1.
type dsu struct {
	parent []int
	rank   []int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// findParent returns the representative of x, compressing the path on the way.
func (d *dsu) findParent(x int) int {
	if d.parent[x] != x {
		d.parent[x] = d.findParent(d.parent[x])
	}

	return d.parent[x]
}

// union merges the sets of a and b by rank; false if they were already one set.
func (d *dsu) union(a, b int) bool {
	ra, rb := d.findParent(a), d.findParent(b)
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}

	return true
}
