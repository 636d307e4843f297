// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/core"
)

// Name is the canonical display name.
const Name = "Dijkstra"

// Sentinel errors for option validation.
var (
	// ErrBadMaxDistance indicates WithMaxDistance received a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates WithInfEdgeThreshold received a non-positive value.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a Dijkstra variant.
type Options struct {
	// MaxDistance caps the distances explored. Default +Inf.
	MaxDistance float64

	// InfEdgeThreshold makes edges with weight ≥ threshold impassable. Default +Inf.
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithMaxDistance stops settling nodes whose distance exceeds max.
// Panics on negative or NaN input.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Panics on zero, negative or NaN input.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// Dijkstra is the shortest-path variant bound to one graph.
type Dijkstra struct {
	g    *core.Graph
	opts Options
}

// New binds a Dijkstra to g. Returns algo.ErrPrecondition if g is nil.
func New(g *core.Graph, opts ...Option) (*Dijkstra, error) {
	if g == nil {
		return nil, fmt.Errorf("dijkstra: %w: nil graph", algo.ErrPrecondition)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Dijkstra{g: g, opts: cfg}, nil
}

// Name implements algo.Variant.
func (d *Dijkstra) Name() string { return Name }

// Class implements algo.Variant.
func (d *Dijkstra) Class() algo.Class { return algo.SingleSourceClass }

// Graph implements algo.Variant.
func (d *Dijkstra) Graph() *core.Graph { return d.g }
