// SPDX-License-Identifier: MIT

// Package trace implements the AnimationTrace: the renderer-visible record of an
// algorithm's progress (visited edges, predecessor array, endpoints, step delay).
//
// Exactly one writer (the running algorithm) mutates a Trace at a time; any
// number of readers may call Snapshot concurrently. Each run follows one
// Discipline: AppendOnly runs only ever add visited edges, RemoveOnly runs seed
// the full edge set once and then only remove. A mutation that breaks the
// discipline is rejected with ErrDiscipline and leaves the trace untouched.
package trace

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/katalvlaran/algoviz/core"
)

// None marks an absent predecessor or endpoint.
const None = core.None

// Sentinel errors for trace mutations.
var (
	// ErrDiscipline indicates a mutation forbidden by the run's Discipline.
	ErrDiscipline = errors.New("trace: mutation violates run discipline")

	// ErrSourceRewrite indicates an attempt to give the source node a predecessor.
	ErrSourceRewrite = errors.New("trace: source predecessor must stay NONE")

	// ErrOutOfRange indicates a node id outside 0..N-1.
	ErrOutOfRange = errors.New("trace: node id out of range")

	// ErrNoPath indicates the predecessor chain does not lead back to the source.
	ErrNoPath = errors.New("trace: no path to target")
)

// Discipline selects which visited-edge mutations a run may perform.
type Discipline int

const (
	// AppendOnly runs may only add visited edges.
	AppendOnly Discipline = iota

	// RemoveOnly runs may Seed once, then only remove visited edges.
	RemoveOnly
)

// String implements fmt.Stringer.
func (d Discipline) String() string {
	switch d {
	case AppendOnly:
		return "append-only"
	case RemoveOnly:
		return "remove-only"
	default:
		return fmt.Sprintf("Discipline(%d)", int(d))
	}
}

// Trace is the shared, mutable animation state.
type Trace struct {
	mu sync.RWMutex

	discipline Discipline
	removed    bool // a RemoveOnly run has started removing; Seed is closed

	visited   map[int]struct{}
	path      []int
	source    int
	target    int
	stepDelay time.Duration
}

// New returns a Trace for a graph of n nodes with no endpoints selected.
func New(n int) *Trace {
	t := &Trace{source: None, target: None}
	t.resetLocked(n, AppendOnly)

	return t
}

// Reset clears visited edges and fills the path with NONE for a graph of n
// nodes, arming the given discipline for the next run. Endpoints and the step
// delay survive a reset; endpoints outside the new range are cleared.
func (t *Trace) Reset(n int, d Discipline) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.resetLocked(n, d)
}

func (t *Trace) resetLocked(n int, d Discipline) {
	if n < 0 {
		n = 0
	}
	t.discipline = d
	t.removed = false
	t.visited = make(map[int]struct{}, n)
	t.path = make([]int, n)
	for i := range t.path {
		t.path[i] = None
	}
	if t.source >= n || t.target >= n {
		t.source, t.target = None, None
	}
}

// Visit marks an edge as visited. Re-visiting is a no-op.
// Returns ErrDiscipline on a RemoveOnly run.
func (t *Trace) Visit(edgeID int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.discipline != AppendOnly {
		return fmt.Errorf("%w: visit on %s run", ErrDiscipline, t.discipline)
	}
	t.visited[edgeID] = struct{}{}

	return nil
}

// Seed marks every given edge as visited. Only valid on a RemoveOnly run
// before its first Unvisit.
func (t *Trace) Seed(edgeIDs []int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.discipline != RemoveOnly || t.removed {
		return fmt.Errorf("%w: seed on %s run", ErrDiscipline, t.discipline)
	}
	for _, id := range edgeIDs {
		t.visited[id] = struct{}{}
	}

	return nil
}

// Unvisit removes an edge from the visited set.
// Returns ErrDiscipline on an AppendOnly run.
func (t *Trace) Unvisit(edgeID int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.discipline != RemoveOnly {
		return fmt.Errorf("%w: removal on %s run", ErrDiscipline, t.discipline)
	}
	t.removed = true
	delete(t.visited, edgeID)

	return nil
}

// IsVisited reports whether edgeID is currently marked.
func (t *Trace) IsVisited(edgeID int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.visited[edgeID]

	return ok
}

// VisitedCount returns the number of marked edges.
func (t *Trace) VisitedCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.visited)
}

// VisitedEdges returns the marked edge ids in ascending order.
func (t *Trace) VisitedEdges() []int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.visitedLocked()
}

func (t *Trace) visitedLocked() []int {
	out := make([]int, 0, len(t.visited))
	for id := range t.visited {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// SetPredecessor records pred as the node from which node was reached.
// The source's entry may only ever be (re)set to NONE.
func (t *Trace) SetPredecessor(node, pred int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if node < 0 || node >= len(t.path) || pred < None || pred >= len(t.path) {
		return fmt.Errorf("%w: path[%d]=%d (n=%d)", ErrOutOfRange, node, pred, len(t.path))
	}
	if node == t.source && pred != None {
		return fmt.Errorf("%w: path[%d]=%d", ErrSourceRewrite, node, pred)
	}
	t.path[node] = pred

	return nil
}

// Predecessor returns path[node], or NONE for out-of-range ids.
func (t *Trace) Predecessor(node int) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if node < 0 || node >= len(t.path) {
		return None
	}

	return t.path[node]
}

// Path returns a copy of the predecessor array.
func (t *Trace) Path() []int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]int, len(t.path))
	copy(out, t.path)

	return out
}

// PathTo walks predecessors from target back to the source and returns the
// nodes in source→target order. The walk is bounded by N so a corrupted
// predecessor array can never loop forever.
func (t *Trace) PathTo(target int) ([]int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := len(t.path)
	if target < 0 || target >= n || t.source == None {
		return nil, fmt.Errorf("%w: target=%d", ErrNoPath, target)
	}

	rev := []int{target}
	for cur := target; cur != t.source; {
		cur = t.path[cur]
		if cur == None || len(rev) > n {
			return nil, fmt.Errorf("%w: target=%d", ErrNoPath, target)
		}
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// SetEndpoints selects the source and target nodes.
func (t *Trace) SetEndpoints(source, target int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.path)
	if source < 0 || source >= n || target < 0 || target >= n {
		return fmt.Errorf("%w: source=%d target=%d (n=%d)", ErrOutOfRange, source, target, n)
	}
	t.source, t.target = source, target
	t.path[source] = None

	return nil
}

// ClearEndpoints deselects both endpoints.
func (t *Trace) ClearEndpoints() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.source, t.target = None, None
}

// Endpoints returns the selected source and target; ok is false unless both are set.
func (t *Trace) Endpoints() (source, target int, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.source, t.target, t.source != None && t.target != None
}

// StepDelay returns the pause applied at each paced checkpoint.
func (t *Trace) StepDelay() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.stepDelay
}

// SetStepDelay changes the per-step delay; it takes effect at the next checkpoint.
// Negative values are clamped to zero.
func (t *Trace) SetStepDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stepDelay = d
}

// NodeCount returns the length of the predecessor array.
func (t *Trace) NodeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.path)
}
