// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/core"
)

// Name is the canonical display name.
const Name = "Depth-First Search"

// DFS is the depth-first search variant bound to one graph.
type DFS struct {
	g *core.Graph
}

// New binds a DFS to g. Returns algo.ErrPrecondition if g is nil.
func New(g *core.Graph) (*DFS, error) {
	if g == nil {
		return nil, fmt.Errorf("dfs: %w: nil graph", algo.ErrPrecondition)
	}

	return &DFS{g: g}, nil
}

// Name implements algo.Variant.
func (d *DFS) Name() string { return Name }

// Class implements algo.Variant.
func (d *DFS) Class() algo.Class { return algo.SingleSourceClass }

// Graph implements algo.Variant.
func (d *DFS) Graph() *core.Graph { return d.g }
