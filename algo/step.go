// SPDX-License-Identifier: MIT

package algo

import (
	"context"
	"sync/atomic"
)

// Instant is a Checkpointer that never sleeps or pauses; it only observes
// cancellation. It runs a variant to completion as fast as possible, which is
// what headless tools and tests want.
type Instant struct{}

// Checkpoint returns ErrStopped once ctx is done.
func (Instant) Checkpoint(ctx context.Context) error { return stopped(ctx) }

// Tick returns ErrStopped once ctx is done.
func (Instant) Tick(ctx context.Context) error { return stopped(ctx) }

func stopped(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ErrStopped
	default:
		return nil
	}
}

// Counter is an Instant checkpointer that counts paced and unpaced yields and
// optionally runs a hook at each one. The hook may return an error (typically
// ErrStopped) to end the run at that point.
type Counter struct {
	paced   atomic.Int64
	unpaced atomic.Int64

	// OnStep, if set, is called after counting; paced reports Checkpoint vs Tick.
	OnStep func(paced bool) error
}

// Checkpoint counts a paced yield.
func (c *Counter) Checkpoint(ctx context.Context) error {
	c.paced.Add(1)

	return c.step(ctx, true)
}

// Tick counts an unpaced yield.
func (c *Counter) Tick(ctx context.Context) error {
	c.unpaced.Add(1)

	return c.step(ctx, false)
}

func (c *Counter) step(ctx context.Context, paced bool) error {
	if c.OnStep != nil {
		if err := c.OnStep(paced); err != nil {
			return err
		}
	}

	return stopped(ctx)
}

// Paced returns the number of Checkpoint calls so far.
func (c *Counter) Paced() int { return int(c.paced.Load()) }

// Unpaced returns the number of Tick calls so far.
func (c *Counter) Unpaced() int { return int(c.unpaced.Load()) }
