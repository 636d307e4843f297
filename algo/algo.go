// SPDX-License-Identifier: MIT

package algo

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/trace"
)

// Sentinel errors shared by all variants.
var (
	// ErrPrecondition indicates the variant cannot run: no graph, or missing
	// or out-of-range endpoints for a single-source variant.
	ErrPrecondition = errors.New("algo: precondition not met")

	// ErrStopped is returned from a checkpoint once a stop was requested.
	// It is a cooperative exit, not a failure.
	ErrStopped = errors.New("algo: stopped")

	// ErrDisconnected indicates a whole-graph variant could not span the graph.
	ErrDisconnected = errors.New("algo: graph is disconnected")
)

// Class distinguishes variants that need endpoints from those that do not.
type Class int

const (
	// SingleSourceClass variants run from a source towards a target.
	SingleSourceClass Class = iota

	// WholeGraphClass variants operate on the entire graph.
	WholeGraphClass
)

// String implements fmt.Stringer.
func (c Class) String() string {
	switch c {
	case SingleSourceClass:
		return "single-source"
	case WholeGraphClass:
		return "whole-graph"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Checkpointer is the only place a running variant yields.
type Checkpointer interface {
	// Checkpoint requests a redraw, sleeps for the trace's step delay,
	// honours stop and pause requests, and returns ErrStopped on stop.
	Checkpoint(ctx context.Context) error

	// Tick is Checkpoint without the step delay.
	Tick(ctx context.Context) error
}

// Env is what a running variant may touch besides its own graph.
type Env struct {
	Trace *trace.Trace
	Step  Checkpointer
}

// Variant is one graph algorithm bound to a graph.
type Variant interface {
	Name() string
	Class() Class
	Graph() *core.Graph
}

// SingleSource is implemented by variants of SingleSourceClass.
type SingleSource interface {
	Variant
	RunSingleSource(ctx context.Context, env Env, source, target int) error
}

// WholeGraph is implemented by variants of WholeGraphClass.
type WholeGraph interface {
	Variant
	RunWholeGraph(ctx context.Context, env Env) error
}

// Discipline returns the trace discipline a variant's run follows.
// Only a variant that declares RemoveOnly (Reverse-Delete) shrinks the
// visited set; every other variant only appends.
func Discipline(v Variant) trace.Discipline {
	if r, ok := v.(interface{ Discipline() trace.Discipline }); ok {
		return r.Discipline()
	}

	return trace.AppendOnly
}

// CheckEndpoints validates a source/target pair against g.
func CheckEndpoints(g *core.Graph, source, target int) error {
	if g == nil {
		return fmt.Errorf("%w: nil graph", ErrPrecondition)
	}
	if !g.HasNode(source) || !g.HasNode(target) {
		return fmt.Errorf("%w: endpoints %d→%d not in graph of %d nodes",
			ErrPrecondition, source, target, g.NodeCount())
	}

	return nil
}

// CheckEnv validates that env carries both a trace and a checkpointer.
func CheckEnv(env Env) error {
	if env.Trace == nil || env.Step == nil {
		return fmt.Errorf("%w: incomplete environment", ErrPrecondition)
	}

	return nil
}
