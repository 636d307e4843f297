// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached at the return site with %w.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrNeedRandSource indicates Generate was called without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooFewVertices indicates a node count below one.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrCanvasTooSmall indicates the canvas cannot hold the requested number of
// non-overlapping nodes at the configured radius.
var ErrCanvasTooSmall = errors.New("builder: canvas too small for node count")

// ErrUnknownSize indicates ParseSize did not recognize its input.
var ErrUnknownSize = errors.New("builder: unknown graph size")

// ErrConstructFailed indicates the generated graph violated an invariant
// (for example it is still disconnected after repair).
var ErrConstructFailed = errors.New("builder: construction failed")
