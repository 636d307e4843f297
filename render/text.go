// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/gookit/color"

	"github.com/katalvlaran/algoviz/engine"
)

// Text writes one status line per changed frame.
//
//	[running] Dijkstra  visited 7/23  path 0→4→9 (w=312.6)
type Text struct {
	w       io.Writer
	colour  bool
	verbose bool

	mu   sync.Mutex
	last string
}

// TextOption configures a Text renderer.
type TextOption func(*Text)

// WithColour styles the state tag and path with ANSI colours.
func WithColour(on bool) TextOption { return func(t *Text) { t.colour = on } }

// WithVerbose appends the visited edge ids to every line.
func WithVerbose(on bool) TextOption { return func(t *Text) { t.verbose = on } }

// NewText returns a renderer writing to w.
func NewText(w io.Writer, opts ...TextOption) *Text {
	t := &Text{w: w}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Render implements Renderer. Identical consecutive lines are skipped.
func (t *Text) Render(_ context.Context, f Frame) error {
	line := t.Line(f)

	t.mu.Lock()
	defer t.mu.Unlock()
	if line == t.last {
		return nil
	}
	t.last = line
	_, err := fmt.Fprintln(t.w, line)

	return err
}

// Line formats f without writing it.
func (t *Text) Line(f Frame) string {
	var b strings.Builder

	b.WriteString(t.paint(stateStyle(f.State), "["+f.State.String()+"]"))
	if f.Variant != "" {
		b.WriteString(" " + f.Variant)
	}
	fmt.Fprintf(&b, "  visited %d/%d", len(f.Trace.VisitedEdges), f.Edges)

	switch {
	case f.Path != nil:
		hops := make([]string, len(f.Path))
		for i, n := range f.Path {
			hops[i] = strconv.Itoa(n)
		}
		route := fmt.Sprintf("path %s (w=%.1f)", strings.Join(hops, "→"), f.PathWeight)
		b.WriteString("  " + t.paint(color.Style{color.FgGreen, color.OpBold}, route))
	case f.Trace.Source >= 0 && f.Trace.Target >= 0:
		fmt.Fprintf(&b, "  %d→%d", f.Trace.Source, f.Trace.Target)
	case len(f.Trace.VisitedEdges) > 0:
		fmt.Fprintf(&b, "  (w=%.1f)", f.TreeWeight)
	}

	if t.verbose && len(f.Trace.VisitedEdges) > 0 {
		ids := make([]string, len(f.Trace.VisitedEdges))
		for i, id := range f.Trace.VisitedEdges {
			ids[i] = strconv.Itoa(id)
		}
		b.WriteString("  edges=" + strings.Join(ids, ","))
	}

	return b.String()
}

func (t *Text) paint(s color.Style, text string) string {
	if !t.colour {
		return text
	}

	return s.Sprint(text)
}

func stateStyle(s engine.State) color.Style {
	switch s {
	case engine.Running:
		return color.Style{color.FgCyan}
	case engine.Paused:
		return color.Style{color.FgYellow}
	case engine.Stopped:
		return color.Style{color.FgRed}
	default:
		return color.Style{color.FgGray}
	}
}
