// SPDX-License-Identifier: MIT

// Package engine runs one graph algorithm at a time on a background goroutine
// and exposes a start / pause / resume / stop lifecycle over it.
//
// States:
//
//	Idle ──Start──▶ Running ──Pause──▶ Paused ──Resume──▶ Running
//	                   │                  │
//	                   └──────Stop────────┴──▶ Stopped ──(worker exits)──▶ Idle
//
// A run also returns to Idle on its own when the variant completes or fails.
//
// The variant yields only at checkpoints. Each checkpoint, in order:
//
//  1. calls the redraw hook (a hint; renderers poll on their own cadence);
//  2. sleeps for the trace's step delay, waking early on stop;
//  3. returns algo.ErrStopped if a stop was requested;
//  4. blocks on a channel while a pause is requested (no spinning);
//  5. re-checks for stop.
//
// Outcomes:
//
//   - completed: the trace is left as the variant finished it, until the next run;
//   - stopped: the trace is reset (no visited edges, every predecessor NONE);
//   - failed: the variant returned an error or panicked; the error is wrapped
//     with ErrRunFailed, reported through Result and the logger, and the
//     trace is reset.
//
// Engine is safe for concurrent use. Stop blocks until the worker has
// acknowledged, which takes at most one step.
package engine
