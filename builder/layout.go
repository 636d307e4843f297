// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// layout.go - non-overlapping node placement.
//
// Model:
//   • The canvas minus a one-radius margin is cut into a rows×cols grid with
//     cols/rows close to the canvas aspect ratio.
//   • Cells are shuffled; node i takes the i-th shuffled cell.
//   • Inside its cell a node is jittered by OpenSimplex noise, clamped so its
//     disc stays inside the cell. Discs in distinct cells therefore never overlap.
//
// Complexity: O(rows·cols).

package builder

import (
	"fmt"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// noise sampling frequency along the node index axis
const jitterScale = 0.37

// point is a node center on the canvas.
type point struct{ x, y float64 }

// layout returns n node centers for cfg.
func layout(n int, cfg builderConfig, rng *rand.Rand) ([]point, error) {
	r := cfg.radius
	w, h := cfg.width-2*r, cfg.height-2*r
	if w < 2*r || h < 2*r {
		return nil, fmt.Errorf("layout: canvas %.0fx%.0f radius %.0f: %w", cfg.width, cfg.height, r, ErrCanvasTooSmall)
	}

	cols := int(math.Ceil(math.Sqrt(float64(n) * w / h)))
	if cols < 1 {
		cols = 1
	}
	rows := (n + cols - 1) / cols
	cellW, cellH := w/float64(cols), h/float64(rows)
	if cellW < 2*r || cellH < 2*r {
		return nil, fmt.Errorf("layout: %d nodes need %dx%d cells of %.1fx%.1f < %.0f: %w",
			n, cols, rows, cellW, cellH, 2*r, ErrCanvasTooSmall)
	}

	// slack each center may drift from the cell middle while keeping its disc inside
	slackX, slackY := cellW/2-r, cellH/2-r
	noise := opensimplex.New(rng.Int63())
	cells := rng.Perm(rows * cols)

	out := make([]point, n)
	for i := 0; i < n; i++ {
		row, col := cells[i]/cols, cells[i]%cols
		t := float64(i) * jitterScale
		jx := clampUnit(noise.Eval2(t, 0))
		jy := clampUnit(noise.Eval2(t, 100))
		out[i] = point{
			x: r + (float64(col)+0.5)*cellW + jx*slackX,
			y: r + (float64(row)+0.5)*cellH + jy*slackY,
		}
	}

	return out, nil
}

// clampUnit clamps v into [-1, 1].
func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
