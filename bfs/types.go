// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/core"
)

// Name is the canonical display name.
const Name = "Breadth-First Search"

// BFS is the breadth-first search variant bound to one graph.
type BFS struct {
	g *core.Graph
}

// New binds a BFS to g. Returns algo.ErrPrecondition if g is nil.
func New(g *core.Graph) (*BFS, error) {
	if g == nil {
		return nil, fmt.Errorf("bfs: %w: nil graph", algo.ErrPrecondition)
	}

	return &BFS{g: g}, nil
}

// Name implements algo.Variant.
func (b *BFS) Name() string { return Name }

// Class implements algo.Variant.
func (b *BFS) Class() algo.Class { return algo.SingleSourceClass }

// Graph implements algo.Variant.
func (b *BFS) Graph() *core.Graph { return b.g }
