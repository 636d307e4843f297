// SPDX-License-Identifier: MIT

// Package session is the host facade over the engine: it owns the graph,
// the shared trace and the variant selection, and turns user intents
// (select, set endpoints, start, pause, stop, regenerate) into engine calls.
package session

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/engine"
	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/registry"
	"github.com/katalvlaran/algoviz/trace"
)

// Options configures a Session. The zero value is usable: a Small graph,
// a time-based seed, registry default delays and no logging.
type Options struct {
	Size       builder.Size
	Seed       int64 // 0 picks a time-based seed
	Width      float64
	Height     float64
	NodeRadius float64

	// StepDelay overrides the selected variant's default delay when > 0.
	StepDelay time.Duration

	Logger   *zap.Logger
	Metrics  *metrics.Collector
	Redraw   func()
	OnFinish func(engine.Result)
}

// Session is safe for concurrent use.
type Session struct {
	log *zap.Logger
	tr  *trace.Trace
	eng *engine.Engine

	mu         sync.Mutex
	opts       Options
	rng        *rand.Rand
	graph      *core.Graph
	graphSize  builder.Size
	graphClass algo.Class
	entry      registry.Entry
	selected   bool
	variant    algo.Variant // last instance handed to the engine
}

// New returns a Session with no graph and no variant selected.
func New(opts Options) *Session {
	if opts.Size == 0 {
		opts.Size = builder.Small
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	tr := trace.New(0)
	engOpts := []engine.Option{engine.WithLogger(opts.Logger), engine.WithMetrics(opts.Metrics)}
	if opts.Redraw != nil {
		engOpts = append(engOpts, engine.WithRedraw(opts.Redraw))
	}
	if opts.OnFinish != nil {
		engOpts = append(engOpts, engine.WithOnFinish(opts.OnFinish))
	}

	return &Session{
		log:  opts.Logger,
		tr:   tr,
		eng:  engine.New(tr, engOpts...),
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
}

// SelectVariant chooses the variant the next Start builds.
// Unknown names yield registry.ErrUnknownVariant and keep the old selection.
func (s *Session) SelectVariant(name string) error {
	e, err := registry.Lookup(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry, s.selected = e, true
	s.log.Debug("variant selected", zap.String("variant", e.Name), zap.Stringer("class", e.Class))

	return nil
}

// Selected returns the selected registry entry.
func (s *Session) Selected() (registry.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.entry, s.selected
}

// Size returns the size used by the next regeneration.
func (s *Session) Size() builder.Size {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.opts.Size
}

// SetSize changes the size used by the next regeneration. It fails with
// engine.ErrAlreadyRunning while a run is active.
func (s *Session) SetSize(size builder.Size) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.idleLocked(); err != nil {
		return err
	}
	s.opts.Size = size

	return nil
}

// SetStepDelay overrides every variant's default delay; d <= 0 restores the
// registry defaults. An active run picks the new delay up at its next step.
func (s *Session) SetStepDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.opts.StepDelay = d
	switch {
	case d > 0:
		s.tr.SetStepDelay(d)
	case s.selected:
		s.tr.SetStepDelay(s.entry.DefaultDelay)
	}
}

// SetGraph installs g, clearing endpoints and the trace.
// Returns engine.ErrAlreadyRunning while a run is active.
func (s *Session) SetGraph(g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("%w: nil graph", algo.ErrPrecondition)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.idleLocked(); err != nil {
		return err
	}
	s.installLocked(g, s.opts.Size, s.entry.Class)

	return nil
}

// Regenerate builds a fresh random graph for the current size and the
// selected variant's class.
func (s *Session) Regenerate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.idleLocked(); err != nil {
		return err
	}

	return s.generateLocked()
}

// Refresh regenerates the graph only if there is none, the size changed, or
// the selected variant's class differs from the class the graph was built
// for. It reports whether a new graph was built.
func (s *Session) Refresh() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.graph != nil && s.graphSize == s.opts.Size && (!s.selected || s.graphClass == s.entry.Class) {
		return false, nil
	}
	if err := s.idleLocked(); err != nil {
		return false, err
	}

	return true, s.generateLocked()
}

func (s *Session) generateLocked() error {
	class := algo.SingleSourceClass
	if s.selected {
		class = s.entry.Class
	}
	opts := []builder.BuilderOption{builder.WithRand(s.rng)}
	if s.opts.Width > 0 && s.opts.Height > 0 {
		opts = append(opts, builder.WithCanvas(s.opts.Width, s.opts.Height))
	}
	if s.opts.NodeRadius > 0 {
		opts = append(opts, builder.WithNodeRadius(s.opts.NodeRadius))
	}

	g, err := builder.Generate(s.opts.Size, class, opts...)
	if err != nil {
		return err
	}
	s.installLocked(g, s.opts.Size, class)

	st := g.Stats()
	s.log.Info("graph generated",
		zap.Stringer("size", s.opts.Size),
		zap.Stringer("class", class),
		zap.Int("nodes", st.NodeCount),
		zap.Int("edges", st.EdgeCount),
	)

	return nil
}

func (s *Session) installLocked(g *core.Graph, size builder.Size, class algo.Class) {
	s.graph, s.graphSize, s.graphClass = g, size, class
	s.variant = nil
	s.tr.ClearEndpoints()
	s.tr.Reset(g.NodeCount(), trace.AppendOnly)
}

// idleLocked rejects graph and endpoint changes while a run owns the trace.
func (s *Session) idleLocked() error {
	if st := s.eng.State(); st != engine.Idle {
		return fmt.Errorf("%w: session is %s", engine.ErrAlreadyRunning, st)
	}

	return nil
}

// Graph returns the current graph, or nil.
func (s *Session) Graph() *core.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.graph
}

// SetEndpoints selects the source and target for single-source variants.
func (s *Session) SetEndpoints(source, target int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.graph == nil {
		return fmt.Errorf("%w: no graph", algo.ErrPrecondition)
	}
	if err := algo.CheckEndpoints(s.graph, source, target); err != nil {
		return err
	}
	if err := s.idleLocked(); err != nil {
		return err
	}
	if err := s.tr.SetEndpoints(source, target); err != nil {
		return fmt.Errorf("%w: %w", algo.ErrPrecondition, err)
	}

	return nil
}

// Start runs the selected variant on the current graph. A paused run of the
// same instance is resumed instead.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.variant != nil && s.eng.Variant() == s.variant && s.selected && s.entry.Name == s.variant.Name() {
		if err := s.eng.Start(s.variant); err == nil {
			return nil
		}
	}
	if s.graph == nil {
		return fmt.Errorf("%w: no graph", algo.ErrPrecondition)
	}
	if !s.selected {
		return fmt.Errorf("%w: no variant selected", algo.ErrPrecondition)
	}
	if st := s.eng.State(); st == engine.Running || st == engine.Paused {
		return fmt.Errorf("%w: session is %s", engine.ErrAlreadyRunning, st)
	}

	v, err := s.entry.New(s.graph)
	if err != nil {
		return err
	}
	delay := s.opts.StepDelay
	if delay <= 0 {
		delay = s.entry.DefaultDelay
	}
	s.tr.SetStepDelay(delay)
	if err = s.eng.Start(v); err != nil {
		return err
	}
	s.variant = v

	return nil
}

// Pause asks the active run to block at its next checkpoint.
func (s *Session) Pause() { s.eng.Pause() }

// Resume releases a paused run.
func (s *Session) Resume() { s.eng.Resume() }

// Stop cancels the active run and waits for the cleared trace.
func (s *Session) Stop() { s.eng.Stop() }

// Wait blocks until the active run ends or ctx is done.
func (s *Session) Wait(ctx context.Context) error { return s.eng.Wait(ctx) }

// State returns the engine state.
func (s *Session) State() engine.State { return s.eng.State() }

// IsRunning reports whether a run is executing.
func (s *Session) IsRunning() bool { return s.eng.IsRunning() }

// IsPaused reports whether a run is paused.
func (s *Session) IsPaused() bool { return s.eng.IsPaused() }

// LastResult returns the most recent run's outcome.
func (s *Session) LastResult() (engine.Result, bool) { return s.eng.LastResult() }

// RunID returns the active run's ID, or "".
func (s *Session) RunID() string { return s.eng.RunID() }

// Snapshot returns a defensive copy of the trace.
func (s *Session) Snapshot() trace.Snapshot { return s.tr.Snapshot() }

// Trace returns the shared trace for renderers that read it directly.
func (s *Session) Trace() *trace.Trace { return s.tr }
