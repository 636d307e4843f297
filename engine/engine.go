// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/trace"
)

var (
	// ErrAlreadyRunning is returned by Start while another variant instance
	// is Running or Paused. The request is rejected, not queued.
	ErrAlreadyRunning = errors.New("engine: another run is active")

	// ErrRunFailed wraps any error or panic that ended a run abnormally.
	ErrRunFailed = errors.New("engine: run failed")
)

// Engine owns the lifecycle of at most one run against a shared trace.
type Engine struct {
	tr *trace.Trace

	log      *zap.Logger
	metrics  *metrics.Collector
	redraw   func()
	onFinish func(Result)

	mu    sync.Mutex
	state State
	cur   *run
	done  chan struct{} // closed once the latest run has fully settled
	last  Result
}

// run is the bookkeeping of one background execution.
type run struct {
	id      string
	variant algo.Variant
	source  int
	target  int
	nodes   int
	started time.Time

	cancel context.CancelFunc
	done   chan struct{}
	steps  atomic.Int64

	// resume is non-nil while a pause is requested; closing it releases the
	// worker. Guarded by Engine.mu.
	resume chan struct{}
}

// New returns an Idle engine driving tr.
func New(tr *trace.Trace, opts ...Option) *Engine {
	if tr == nil {
		panic("engine: New(nil trace)")
	}
	e := &Engine{tr: tr, log: zap.NewNop(), done: make(chan struct{})}
	close(e.done)
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Trace returns the trace the engine mutates.
func (e *Engine) Trace() *trace.Trace { return e.tr }

// Start launches v on a background goroutine.
//
// If v is the instance currently paused (or asked to pause), Start resumes
// it without touching the trace. Any other active run yields
// ErrAlreadyRunning. A single-source variant takes its endpoints from the
// trace; missing endpoints, a nil variant or a nil graph yield
// algo.ErrPrecondition. On every error the state is left unchanged.
func (e *Engine) Start(v algo.Variant) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for e.state == Stopped {
		// A concurrent Stop has not been acknowledged yet.
		done := e.cur.done
		e.mu.Unlock()
		<-done
		e.mu.Lock()
	}

	if e.state == Running || e.state == Paused {
		if v != nil && e.cur.variant == v && e.cur.resume != nil {
			e.resumeLocked()

			return nil
		}

		return fmt.Errorf("%w: %s is %s", ErrAlreadyRunning, e.cur.variant.Name(), e.state)
	}

	r, err := e.prepare(v)
	if err != nil {
		return err
	}

	e.tr.Reset(r.nodes, algo.Discipline(v))
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	e.cur = r
	e.done = r.done
	e.state = Running
	e.metrics.RunStarted()
	e.log.Info("run started",
		zap.String("run_id", r.id),
		zap.String("variant", v.Name()),
		zap.Stringer("class", v.Class()),
		zap.Int("nodes", r.nodes),
		zap.Duration("step_delay", e.tr.StepDelay()),
	)

	go e.execute(ctx, r)

	return nil
}

// prepare validates v against the trace and builds its run record.
func (e *Engine) prepare(v algo.Variant) (*run, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: no variant selected", algo.ErrPrecondition)
	}
	g := v.Graph()
	if g == nil {
		return nil, fmt.Errorf("%w: %s has no graph", algo.ErrPrecondition, v.Name())
	}

	r := &run{
		id:      uuid.NewString(),
		variant: v,
		source:  core.None,
		target:  core.None,
		nodes:   g.NodeCount(),
		started: time.Now(),
		done:    make(chan struct{}),
	}

	switch v.Class() {
	case algo.SingleSourceClass:
		if _, ok := v.(algo.SingleSource); !ok {
			return nil, fmt.Errorf("%w: %s cannot run from a source", algo.ErrPrecondition, v.Name())
		}
		s, t, ok := e.tr.Endpoints()
		if !ok {
			return nil, fmt.Errorf("%w: %s needs a source and a target", algo.ErrPrecondition, v.Name())
		}
		if err := algo.CheckEndpoints(g, s, t); err != nil {
			return nil, err
		}
		r.source, r.target = s, t
	case algo.WholeGraphClass:
		if _, ok := v.(algo.WholeGraph); !ok {
			return nil, fmt.Errorf("%w: %s cannot run on a whole graph", algo.ErrPrecondition, v.Name())
		}
	default:
		return nil, fmt.Errorf("%w: %s has unknown class %s", algo.ErrPrecondition, v.Name(), v.Class())
	}

	return r, nil
}

// execute runs on the worker goroutine and settles the run's outcome.
func (e *Engine) execute(ctx context.Context, r *run) {
	env := algo.Env{Trace: e.tr, Step: &stepper{e: e, r: r}}
	err := invoke(ctx, r, env)
	stopped := ctx.Err() != nil || errors.Is(err, algo.ErrStopped)
	r.cancel()

	res := Result{
		RunID:    r.id,
		Variant:  r.variant.Name(),
		Started:  r.started,
		Duration: time.Since(r.started),
		Steps:    r.steps.Load(),
	}

	// A Stop that lands after the variant returned still owns the outcome.
	e.mu.Lock()
	stopped = stopped || e.state == Stopped
	switch {
	case stopped:
		res.Outcome = OutcomeStopped
	case err != nil:
		res.Outcome = OutcomeFailed
		if !errors.Is(err, ErrRunFailed) {
			err = fmt.Errorf("%w: %w", ErrRunFailed, err)
		}
		res.Err = err
	default:
		res.Outcome = OutcomeCompleted
	}
	if res.Outcome != OutcomeCompleted {
		e.tr.Reset(r.nodes, algo.Discipline(r.variant))
	}
	e.state = Idle
	e.cur = nil
	e.last = res
	e.mu.Unlock()

	e.metrics.RunFinished(res.Variant, res.Outcome, res.Duration)
	fields := []zap.Field{
		zap.String("run_id", res.RunID),
		zap.String("variant", res.Variant),
		zap.String("outcome", res.Outcome),
		zap.Duration("duration", res.Duration),
		zap.Int64("steps", res.Steps),
	}
	if res.Err != nil {
		e.log.Error("run failed", append(fields, zap.Error(res.Err))...)
	} else {
		e.log.Info("run finished", fields...)
	}
	if e.onFinish != nil {
		e.onFinish(res)
	}
	if e.redraw != nil {
		e.redraw()
	}
	close(r.done)
}

// invoke dispatches to the variant's contract and converts a panic into an
// ErrRunFailed error.
func invoke(ctx context.Context, r *run, env algo.Env) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: panic in %s: %v", ErrRunFailed, r.variant.Name(), p)
		}
	}()

	if r.variant.Class() == algo.SingleSourceClass {
		if v, ok := r.variant.(algo.SingleSource); ok {
			return v.RunSingleSource(ctx, env, r.source, r.target)
		}
	} else if v, ok := r.variant.(algo.WholeGraph); ok {
		return v.RunWholeGraph(ctx, env)
	}

	return fmt.Errorf("%w: %s implements no run contract", algo.ErrPrecondition, r.variant.Name())
}

// Pause asks the running variant to block at its next checkpoint. The state
// becomes Paused once the worker gets there. No-op unless Running.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Running || e.cur.resume != nil {
		return
	}
	e.cur.resume = make(chan struct{})
	e.log.Debug("pause requested", zap.String("run_id", e.cur.id))
}

// Resume releases a paused or pause-requested run. No-op otherwise.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if (e.state != Running && e.state != Paused) || e.cur.resume == nil {
		return
	}
	e.resumeLocked()
}

func (e *Engine) resumeLocked() {
	close(e.cur.resume)
	e.cur.resume = nil
	e.state = Running
	e.log.Debug("run resumed", zap.String("run_id", e.cur.id))
}

// Stop cancels the active run, wakes it if paused and waits until the worker
// has exited and reset the trace. No-op when Idle.
func (e *Engine) Stop() {
	e.mu.Lock()
	r := e.cur
	if r == nil {
		e.mu.Unlock()

		return
	}
	if e.state != Stopped {
		e.state = Stopped
		r.cancel()
		e.log.Info("stop requested", zap.String("run_id", r.id))
	}
	e.mu.Unlock()

	<-r.done
}

// Wait blocks until the current run (if any) ends or ctx is done.
func (e *Engine) Wait(ctx context.Context) error {
	select {
	case <-e.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done returns a channel closed when the latest run has ended and its
// hooks have returned. Before the first run the channel is already closed.
func (e *Engine) Done() <-chan struct{} {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.done
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// IsRunning reports whether a run is executing (not paused, not stopping).
func (e *Engine) IsRunning() bool { return e.State() == Running }

// IsPaused reports whether the active run is blocked at a checkpoint.
func (e *Engine) IsPaused() bool { return e.State() == Paused }

// Variant returns the active variant, or nil when Idle.
func (e *Engine) Variant() algo.Variant {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cur == nil {
		return nil
	}

	return e.cur.variant
}

// RunID returns the active run's ID, or "" when Idle.
func (e *Engine) RunID() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cur == nil {
		return ""
	}

	return e.cur.id
}

// LastResult returns the outcome of the most recently finished run.
// ok is false if no run has finished yet.
func (e *Engine) LastResult() (res Result, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.last, e.last.RunID != ""
}
