// SPDX-License-Identifier: MIT

package engine

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/algoviz/metrics"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}

	return func(e *Engine) { e.log = l }
}

// WithMetrics records runs and checkpoints in c.
func WithMetrics(c *metrics.Collector) Option {
	return func(e *Engine) { e.metrics = c }
}

// WithRedraw installs the redraw hint called at every checkpoint.
// fn runs on the worker goroutine and must not block.
func WithRedraw(fn func()) Option {
	return func(e *Engine) { e.redraw = fn }
}

// WithOnFinish installs a callback invoked once per run after the engine is
// back to Idle. It runs on the worker goroutine.
func WithOnFinish(fn func(Result)) Option {
	return func(e *Engine) { e.onFinish = fn }
}
