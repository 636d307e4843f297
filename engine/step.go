// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/algoviz/algo"
)

// stepper is the algo.Checkpointer handed to one run.
type stepper struct {
	e *Engine
	r *run
}

// Checkpoint implements algo.Checkpointer.
func (s *stepper) Checkpoint(ctx context.Context) error {
	return s.yield(ctx, s.e.tr.StepDelay())
}

// Tick implements algo.Checkpointer.
func (s *stepper) Tick(ctx context.Context) error {
	return s.yield(ctx, 0)
}

func (s *stepper) yield(ctx context.Context, delay time.Duration) error {
	s.r.steps.Add(1)
	s.e.metrics.Checkpoint(s.r.variant.Name())
	if s.e.redraw != nil {
		s.e.redraw()
	}

	if err := sleep(ctx, delay); err != nil {
		return err
	}
	if err := s.awaitResume(ctx); err != nil {
		return err
	}

	return live(ctx)
}

// awaitResume blocks while a pause is requested, acknowledging it by moving
// the engine to Paused.
func (s *stepper) awaitResume(ctx context.Context) error {
	s.e.mu.Lock()
	ch := s.r.resume
	if ch != nil && s.e.state == Running {
		s.e.state = Paused
		s.e.log.Info("run paused", zap.String("run_id", s.r.id), zap.Int64("steps", s.r.steps.Load()))
	}
	s.e.mu.Unlock()

	if ch == nil {
		return nil
	}
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return algo.ErrStopped
	}
}

// sleep waits for d, returning algo.ErrStopped early if ctx ends.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return live(ctx)
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return live(ctx)
	case <-ctx.Done():
		return algo.ErrStopped
	}
}

func live(ctx context.Context) error {
	if ctx.Err() != nil {
		return algo.ErrStopped
	}

	return nil
}
