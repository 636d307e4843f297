// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Poller redraws a Renderer from a Source at a fixed interval and on demand.
type Poller struct {
	src      Source
	r        Renderer
	interval time.Duration
	log      *zap.Logger
	hint     chan struct{}
	last     time.Time
}

// NewPoller returns a Poller. Panics if interval is not positive.
func NewPoller(src Source, r Renderer, interval time.Duration, log *zap.Logger) *Poller {
	if interval <= 0 {
		panic("render: non-positive poll interval")
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Poller{src: src, r: r, interval: interval, log: log, hint: make(chan struct{}, 1)}
}

// Request asks for a redraw as soon as possible. It never blocks; requests
// made while one is pending collapse into it. Suitable as engine.WithRedraw.
func (p *Poller) Request() {
	select {
	case p.hint <- struct{}{}:
	default:
	}
}

// Run paints until ctx is done, then paints one final frame and returns nil.
// A renderer error ends the loop and is returned.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return p.paint(context.WithoutCancel(ctx))
		case <-ticker.C:
		case <-p.hint:
			// Hints can arrive once per step; the ticker catches up on skipped ones.
			if time.Since(p.last) < p.interval/4 {
				continue
			}
		}
		if err := p.paint(ctx); err != nil {
			return err
		}
	}
}

func (p *Poller) paint(ctx context.Context) error {
	p.last = time.Now()
	if err := p.r.Render(ctx, Capture(p.src)); err != nil {
		p.log.Error("render failed", zap.Error(err))
		return err
	}

	return nil
}

// Poll is NewPoller(src, r, interval, nil).Run(ctx).
func Poll(ctx context.Context, src Source, r Renderer, interval time.Duration) error {
	return NewPoller(src, r, interval, nil).Run(ctx)
}
