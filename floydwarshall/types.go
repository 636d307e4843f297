// SPDX-License-Identifier: MIT

package floydwarshall

import (
	"fmt"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/core"
)

// Name is the canonical display name.
const Name = "Floyd-Warshall"

// Options configures a FloydWarshall variant.
type Options struct {
	// FastReconstruct rebuilds the route once at the end instead of after every k.
	FastReconstruct bool
}

// Option represents a functional option for configuring FloydWarshall.
type Option func(*Options)

// WithFastReconstruct skips the per-k route rebuild.
func WithFastReconstruct() Option {
	return func(o *Options) {
		o.FastReconstruct = true
	}
}

// FloydWarshall is the all-pairs variant bound to one graph.
type FloydWarshall struct {
	g    *core.Graph
	opts Options
}

// New binds a FloydWarshall to g. Returns algo.ErrPrecondition if g is nil.
func New(g *core.Graph, opts ...Option) (*FloydWarshall, error) {
	if g == nil {
		return nil, fmt.Errorf("floydwarshall: %w: nil graph", algo.ErrPrecondition)
	}
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	return &FloydWarshall{g: g, opts: cfg}, nil
}

// Name implements algo.Variant.
func (f *FloydWarshall) Name() string { return Name }

// Class implements algo.Variant.
func (f *FloydWarshall) Class() algo.Class { return algo.SingleSourceClass }

// Graph implements algo.Variant.
func (f *FloydWarshall) Graph() *core.Graph { return f.g }
