// SPDX-License-Identifier: MIT

package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/core"
)

// Name is the canonical display name.
const Name = "A*"

// AStar is the heuristic shortest-path variant bound to one graph.
type AStar struct {
	g     *core.Graph
	scale float64
}

// New binds an AStar to g. Returns algo.ErrPrecondition if g is nil.
func New(g *core.Graph) (*AStar, error) {
	if g == nil {
		return nil, fmt.Errorf("astar: %w: nil graph", algo.ErrPrecondition)
	}

	return &AStar{g: g, scale: HeuristicScale(g)}, nil
}

// Name implements algo.Variant.
func (a *AStar) Name() string { return Name }

// Class implements algo.Variant.
func (a *AStar) Class() algo.Class { return algo.SingleSourceClass }

// Graph implements algo.Variant.
func (a *AStar) Graph() *core.Graph { return a.g }

// HeuristicScale returns the factor that keeps the Euclidean heuristic
// admissible on g: the smallest weight-to-length ratio over all edges, capped at 1.
func HeuristicScale(g *core.Graph) float64 {
	scale := 1.0
	for _, e := range g.Edges() {
		length := g.Distance(e.From, e.To)
		if length <= 0 || math.IsInf(length, 0) {
			continue
		}
		if r := e.Weight / length; r < scale {
			scale = r
		}
	}

	return scale
}
