// SPDX-License-Identifier: MIT

// Package builder is the graph provider: it generates random, connected,
// Euclidean-weighted graphs sized for animation.
//
// What
//
//   - Generate(size, class, opts...) places Size nodes on a Width×Height canvas
//     so that no two node discs of radius NodeRadius overlap, wires random
//     undirected edges, repairs connectivity, and freezes the result.
//   - Every edge weight equals the straight-line distance between its
//     endpoints, so the A* heuristic is admissible without scaling.
//   - Whole-graph classes (minimum spanning tree variants) get denser graphs
//     than single-source classes so the tree growth is worth watching.
//
// Determinism
//
//	Generate requires an RNG (WithSeed or WithRand). For a fixed seed and fixed
//	options the node positions, edge ids and weights are fully reproducible.
//	Position jitter is drawn from OpenSimplex noise seeded by the same RNG.
//
// Errors
//
//	ErrNeedRandSource, ErrTooFewVertices, ErrCanvasTooSmall, ErrUnknownSize and
//	ErrConstructFailed are sentinels; wrap-checked with errors.Is.
//	Option constructors panic on meaningless input; Generate itself never panics.
package builder
