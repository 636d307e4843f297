// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// options.go - functional options for Generate.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes Generate by mutating a builderConfig before
// construction begins. Later options override earlier ones.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCanvas sets the drawing area in pixels. Panics if either side is not positive.
func WithCanvas(width, height float64) BuilderOption {
	if width <= 0 || height <= 0 {
		panic("builder: WithCanvas(width<=0 || height<=0)")
	}
	return func(c *builderConfig) {
		c.width, c.height = width, height
	}
}

// WithNodeRadius sets the drawn node radius; nodes never overlap at this
// radius. Panics if r <= 0.
func WithNodeRadius(r float64) BuilderOption {
	if r <= 0 {
		panic("builder: WithNodeRadius(r<=0)")
	}
	return func(c *builderConfig) {
		c.radius = r
	}
}

// WithNodeCount overrides the node count implied by the Size argument.
// Panics if n < 1.
func WithNodeCount(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithNodeCount(n<1)")
	}
	return func(c *builderConfig) {
		c.nodeCount = n
	}
}
