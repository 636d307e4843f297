// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/engine"
	"github.com/katalvlaran/algoviz/internal/graphtest"
	"github.com/katalvlaran/algoviz/registry"
	"github.com/katalvlaran/algoviz/render"
	"github.com/katalvlaran/algoviz/trace"
)

type source struct {
	g     *core.Graph
	tr    *trace.Trace
	state engine.State
}

func (s *source) Graph() *core.Graph       { return s.g }
func (s *source) Snapshot() trace.Snapshot { return s.tr.Snapshot() }
func (s *source) State() engine.State      { return s.state }
func (s *source) RunID() string            { return "run-1" }
func (s *source) Selected() (registry.Entry, bool) {
	e, err := registry.Lookup("dijkstra")
	return e, err == nil
}

// diamondSource has walked 0→1→3 on the diamond fixture.
func diamondSource(t *testing.T) *source {
	t.Helper()

	g := graphtest.Diamond(t)
	tr := trace.New(g.NodeCount())
	require.NoError(t, tr.SetEndpoints(0, 3))
	require.NoError(t, tr.SetPredecessor(1, 0))
	require.NoError(t, tr.SetPredecessor(3, 1))
	require.NoError(t, tr.Visit(0))
	require.NoError(t, tr.Visit(1))

	return &source{g: g, tr: tr, state: engine.Running}
}

func TestCapture(t *testing.T) {
	f := render.Capture(diamondSource(t))

	assert.Equal(t, "Dijkstra", f.Variant)
	assert.Equal(t, engine.Running, f.State)
	assert.Equal(t, "run-1", f.RunID)
	assert.Equal(t, 4, f.Nodes)
	assert.Equal(t, 5, f.Edges)
	assert.Equal(t, []int{0, 1, 3}, f.Path)
	assert.InDelta(t, 2.0, f.PathWeight, 1e-9)
	assert.InDelta(t, 2.0, f.TreeWeight, 1e-9)
}

func TestPathOf(t *testing.T) {
	none := trace.None
	cases := []struct {
		name string
		snap trace.Snapshot
		want []int
	}{
		{"no endpoints", trace.Snapshot{Path: []int{none, none}, Source: none, Target: none}, nil},
		{"unreached", trace.Snapshot{Path: []int{none, none, 0}, Source: 0, Target: 1}, nil},
		{"source is target", trace.Snapshot{Path: []int{none}, Source: 0, Target: 0}, []int{0}},
		{"cycle", trace.Snapshot{Path: []int{none, 2, 1}, Source: 0, Target: 1}, nil},
		{"chain", trace.Snapshot{Path: []int{none, 0, 1}, Source: 0, Target: 2}, []int{0, 1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render.PathOf(tc.snap))
		})
	}
}

func TestText_Line(t *testing.T) {
	f := render.Capture(diamondSource(t))

	assert.Equal(t, "[running] Dijkstra  visited 2/5  path 0→1→3 (w=2.0)", render.NewText(nil).Line(f))
	assert.Equal(t,
		"[running] Dijkstra  visited 2/5  path 0→1→3 (w=2.0)  edges=0,1",
		render.NewText(nil, render.WithVerbose(true)).Line(f))

	coloured := render.NewText(nil, render.WithColour(true)).Line(f)
	assert.Contains(t, coloured, "Dijkstra")
	assert.Contains(t, coloured, "0→1→3")

	f.Path, f.State = nil, engine.Idle
	assert.Equal(t, "[idle] Dijkstra  visited 2/5  0→3", render.NewText(nil).Line(f))
}

func TestText_SkipsRepeats(t *testing.T) {
	var buf bytes.Buffer
	txt := render.NewText(&buf)
	f := render.Capture(diamondSource(t))

	require.NoError(t, txt.Render(context.Background(), f))
	require.NoError(t, txt.Render(context.Background(), f))
	f.State = engine.Paused
	require.NoError(t, txt.Render(context.Background(), f))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "[paused]"))
}

type recorder struct {
	mu     sync.Mutex
	frames []render.Frame
	err    error
}

func (r *recorder) Render(_ context.Context, f render.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)

	return r.err
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.frames)
}

func TestPoller_TicksAndFinalFrame(t *testing.T) {
	rec := &recorder{}
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	require.NoError(t, render.Poll(ctx, diamondSource(t), rec, 10*time.Millisecond))
	assert.GreaterOrEqual(t, rec.count(), 3)
}

func TestPoller_Request(t *testing.T) {
	rec := &recorder{}
	p := render.NewPoller(diamondSource(t), rec, time.Hour, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	p.Request()
	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, 2, rec.count())
}

func TestPoller_RendererError(t *testing.T) {
	boom := errors.New("boom")
	rec := &recorder{err: boom}

	err := render.Poll(context.Background(), diamondSource(t), rec, time.Millisecond)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, rec.count())
}

func TestNewPoller_PanicsOnZeroInterval(t *testing.T) {
	assert.Panics(t, func() { render.NewPoller(diamondSource(t), &recorder{}, 0, nil) })
}
