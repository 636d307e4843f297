// SPDX-License-Identifier: MIT

// Package reversedelete animates the Reverse-Delete minimum spanning tree
// algorithm.
//
// The run seeds the trace with every edge, then walks edges in descending
// weight order (equal weights keep ascending id order). Each edge is
// tentatively removed from a private working copy of the graph; if the copy
// stays connected the edge is unmarked and one paced checkpoint follows,
// otherwise the edge is restored. The trace follows the RemoveOnly
// discipline: after the seed it only ever shrinks.
//
// Complexity: O(E·(V + E)), one breadth-first connectivity check per edge.
package reversedelete

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/trace"
)

// Name is the canonical display name.
const Name = "Reverse-Delete"

// ReverseDelete is the edge-removing MST variant bound to one graph.
type ReverseDelete struct {
	g *core.Graph
}

// New binds a ReverseDelete to g. Returns algo.ErrPrecondition if g is nil.
func New(g *core.Graph) (*ReverseDelete, error) {
	if g == nil {
		return nil, fmt.Errorf("reversedelete: %w: nil graph", algo.ErrPrecondition)
	}

	return &ReverseDelete{g: g}, nil
}

// Name implements algo.Variant.
func (r *ReverseDelete) Name() string { return Name }

// Class implements algo.Variant.
func (r *ReverseDelete) Class() algo.Class { return algo.WholeGraphClass }

// Graph implements algo.Variant.
func (r *ReverseDelete) Graph() *core.Graph { return r.g }

// Discipline reports that runs only remove visited edges after seeding.
func (r *ReverseDelete) Discipline() trace.Discipline { return trace.RemoveOnly }

// RunWholeGraph implements algo.WholeGraph.
func (r *ReverseDelete) RunWholeGraph(ctx context.Context, env algo.Env) error {
	if err := algo.CheckEnv(env); err != nil {
		return err
	}
	if !r.g.IsConnected() {
		return fmt.Errorf("reversedelete: %w", algo.ErrDisconnected)
	}

	edges := r.g.Edges() // ascending id
	ids := make([]int, len(edges))
	for i, e := range edges {
		ids[i] = e.ID
	}
	if err := env.Trace.Seed(ids); err != nil {
		return fmt.Errorf("reversedelete: %w", err)
	}
	if err := env.Step.Checkpoint(ctx); err != nil {
		return err
	}

	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight > edges[j].Weight })
	work := r.g.Clone()
	for _, e := range edges {
		removed, err := tryRemove(work, *e)
		if err != nil {
			return err
		}
		if !removed {
			continue
		}
		if err = env.Trace.Unvisit(e.ID); err != nil {
			return fmt.Errorf("reversedelete: %w", err)
		}
		if err = env.Step.Checkpoint(ctx); err != nil {
			return err
		}
	}

	return nil
}

// tryRemove deletes e from work and keeps it deleted only if work stays connected.
func tryRemove(work *core.Graph, e core.Edge) (bool, error) {
	if err := work.RemoveEdge(e.ID); err != nil {
		return false, fmt.Errorf("reversedelete: %w", err)
	}
	if work.IsConnected() {
		return true, nil
	}
	if err := work.RestoreEdge(e); err != nil {
		return false, fmt.Errorf("reversedelete: %w", err)
	}

	return false, nil
}
