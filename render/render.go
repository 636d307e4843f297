// SPDX-License-Identifier: MIT

// Package render turns the shared trace into frames and paints them.
//
// Renderers never talk to the running algorithm. A Poller reads the source on
// its own cadence (and whenever the engine hints that a step happened), builds
// a Frame from defensive snapshots and hands it to a Renderer.
package render

import (
	"context"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/engine"
	"github.com/katalvlaran/algoviz/registry"
	"github.com/katalvlaran/algoviz/trace"
)

// Source is what a Poller reads. *session.Session satisfies it.
type Source interface {
	Graph() *core.Graph
	Snapshot() trace.Snapshot
	State() engine.State
	Selected() (registry.Entry, bool)
	RunID() string
}

// Renderer paints one frame.
type Renderer interface {
	Render(ctx context.Context, f Frame) error
}

// Frame is everything a renderer needs for one redraw.
type Frame struct {
	Variant string         `json:"variant"`
	State   engine.State   `json:"state"`
	RunID   string         `json:"runId,omitempty"`
	Nodes   int            `json:"nodes"`
	Edges   int            `json:"edges"`
	Trace   trace.Snapshot `json:"trace"`

	// Path is the source→target route read from the predecessor array; nil
	// until the target is reached.
	Path       []int   `json:"path,omitempty"`
	PathWeight float64 `json:"pathWeight,omitempty"`
	// TreeWeight is the summed weight of the visited edges.
	TreeWeight float64 `json:"treeWeight"`
}

// Capture reads src once and builds a Frame.
func Capture(src Source) Frame {
	f := Frame{
		State: src.State(),
		RunID: src.RunID(),
		Trace: src.Snapshot(),
	}
	if e, ok := src.Selected(); ok {
		f.Variant = e.Name
	}

	g := src.Graph()
	if g == nil {
		return f
	}
	f.Nodes, f.Edges = g.NodeCount(), g.EdgeCount()
	for _, id := range f.Trace.VisitedEdges {
		if e, err := g.Edge(id); err == nil {
			f.TreeWeight += e.Weight
		}
	}
	if f.Path = PathOf(f.Trace); f.Path != nil {
		for i := 1; i < len(f.Path); i++ {
			if e, ok := g.EdgeBetween(f.Path[i-1], f.Path[i]); ok {
				f.PathWeight += e.Weight
			}
		}
	}

	return f
}

// PathOf walks the snapshot's predecessors from target back to source.
// Returns nil when no endpoints are set or the chain does not reach source.
func PathOf(s trace.Snapshot) []int {
	n := len(s.Path)
	if s.Source < 0 || s.Target < 0 || s.Source >= n || s.Target >= n {
		return nil
	}

	rev := []int{s.Target}
	for cur := s.Target; cur != s.Source; {
		cur = s.Path[cur]
		if cur == trace.None || len(rev) > n {
			return nil
		}
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
