// SPDX-License-Identifier: MIT

// Package registry is the immutable name → variant table.
//
// Each Entry carries the canonical display name, the variant class, the
// default step delay and a factory bound to a graph. Lookups are
// case-insensitive and accept short aliases ("bfs", "astar", ...).
package registry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/astar"
	"github.com/katalvlaran/algoviz/bellmanford"
	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/dfs"
	"github.com/katalvlaran/algoviz/dijkstra"
	"github.com/katalvlaran/algoviz/floydwarshall"
	pk "github.com/katalvlaran/algoviz/prim_kruskal"
	"github.com/katalvlaran/algoviz/reversedelete"
)

// ErrUnknownVariant indicates a name that matches no registered variant.
var ErrUnknownVariant = errors.New("registry: unknown variant")

// Step delays. Exhaustive variants run faster so a full animation stays watchable.
const (
	BaseDelay       = 500 * time.Millisecond
	ExhaustiveDelay = BaseDelay - 325*time.Millisecond // Bellman-Ford, Reverse-Delete
	AllPairsDelay   = BaseDelay - 350*time.Millisecond // Floyd-Warshall
)

// Factory builds a variant bound to g.
type Factory func(g *core.Graph) (algo.Variant, error)

// Entry describes one registered variant.
type Entry struct {
	Name         string
	Class        algo.Class
	DefaultDelay time.Duration
	Aliases      []string
	New          Factory
}

// entries is the registration order, also used by Names.
var entries = []Entry{
	{bfs.Name, algo.SingleSourceClass, BaseDelay, []string{"bfs", "breadth-first"},
		func(g *core.Graph) (algo.Variant, error) { return bfs.New(g) }},
	{dfs.Name, algo.SingleSourceClass, BaseDelay, []string{"dfs", "depth-first"},
		func(g *core.Graph) (algo.Variant, error) { return dfs.New(g) }},
	{dijkstra.Name, algo.SingleSourceClass, BaseDelay, nil,
		func(g *core.Graph) (algo.Variant, error) { return dijkstra.New(g) }},
	{astar.Name, algo.SingleSourceClass, BaseDelay, []string{"astar", "a-star", "a_star"},
		func(g *core.Graph) (algo.Variant, error) { return astar.New(g) }},
	{bellmanford.Name, algo.SingleSourceClass, ExhaustiveDelay, []string{"bellmanford", "bellman_ford"},
		func(g *core.Graph) (algo.Variant, error) { return bellmanford.New(g) }},
	{floydwarshall.Name, algo.SingleSourceClass, AllPairsDelay, []string{"floydwarshall", "floyd_warshall"},
		func(g *core.Graph) (algo.Variant, error) { return floydwarshall.New(g) }},
	{pk.KruskalName, algo.WholeGraphClass, BaseDelay, nil,
		func(g *core.Graph) (algo.Variant, error) { return pk.NewKruskal(g) }},
	{pk.PrimName, algo.WholeGraphClass, BaseDelay, nil,
		func(g *core.Graph) (algo.Variant, error) { return pk.NewPrim(g) }},
	{reversedelete.Name, algo.WholeGraphClass, ExhaustiveDelay, []string{"reversedelete", "reverse_delete"},
		func(g *core.Graph) (algo.Variant, error) { return reversedelete.New(g) }},
}

// index maps every lower-cased name and alias to its entry position.
var index = func() map[string]int {
	m := make(map[string]int, 2*len(entries))
	for i, e := range entries {
		m[strings.ToLower(e.Name)] = i
		for _, a := range e.Aliases {
			m[strings.ToLower(a)] = i
		}
	}
	return m
}()

// Lookup returns the entry registered under name or one of its aliases.
func Lookup(name string) (Entry, error) {
	i, ok := index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	e := entries[i]
	e.Aliases = append([]string(nil), e.Aliases...)

	return e, nil
}

// Select builds the named variant bound to g.
func Select(name string, g *core.Graph) (algo.Variant, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	return e.New(g)
}

// Names returns the canonical names in registration order.
func Names() []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}

	return out
}

// All returns a copy of every entry in registration order.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	return out
}
