// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • rng       = nil   (Generate fails with ErrNeedRandSource)
//   • canvas    = 1280×720
//   • radius    = 20
//   • nodeCount = 0     (use the Size argument)

package builder

import "math/rand"

// Canvas and node defaults matching the reference window.
const (
	DefaultWidth      = 1280.0
	DefaultHeight     = 720.0
	DefaultNodeRadius = 20.0
)

// builderConfig aggregates all knobs used by Generate.
type builderConfig struct {
	rng       *rand.Rand
	width     float64
	height    float64
	radius    float64
	nodeCount int
}

// newBuilderConfig applies opts in order on top of the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		width:  DefaultWidth,
		height: DefaultHeight,
		radius: DefaultNodeRadius,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
