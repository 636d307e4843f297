// SPDX-License-Identifier: MIT

package trace_test

import (
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/trace"
)

func TestNew_Cleared(t *testing.T) {
	tr := trace.New(4)
	snap := tr.Snapshot()

	assert.True(t, snap.Cleared())
	assert.Equal(t, []int{trace.None, trace.None, trace.None, trace.None}, snap.Path)
	_, _, ok := tr.Endpoints()
	assert.False(t, ok)
}

func TestAppendOnly_Discipline(t *testing.T) {
	tr := trace.New(3)
	require.NoError(t, tr.Visit(2))
	require.NoError(t, tr.Visit(0))
	require.NoError(t, tr.Visit(2)) // idempotent

	assert.ErrorIs(t, tr.Unvisit(2), trace.ErrDiscipline)
	assert.ErrorIs(t, tr.Seed([]int{5}), trace.ErrDiscipline)
	assert.Equal(t, []int{0, 2}, tr.VisitedEdges())
}

func TestRemoveOnly_Discipline(t *testing.T) {
	tr := trace.New(3)
	tr.Reset(3, trace.RemoveOnly)

	require.NoError(t, tr.Seed([]int{0, 1, 2}))
	assert.ErrorIs(t, tr.Visit(7), trace.ErrDiscipline)
	require.NoError(t, tr.Unvisit(1))
	assert.ErrorIs(t, tr.Seed([]int{1}), trace.ErrDiscipline, "seed closes after the first removal")
	assert.Equal(t, []int{0, 2}, tr.VisitedEdges())
	assert.Equal(t, 2, tr.VisitedCount())
}

func TestSetPredecessor_SourceStaysNone(t *testing.T) {
	tr := trace.New(3)
	require.NoError(t, tr.SetEndpoints(0, 2))

	assert.ErrorIs(t, tr.SetPredecessor(0, 1), trace.ErrSourceRewrite)
	require.NoError(t, tr.SetPredecessor(0, trace.None))
	require.NoError(t, tr.SetPredecessor(1, 0))
	assert.ErrorIs(t, tr.SetPredecessor(3, 0), trace.ErrOutOfRange)
	assert.ErrorIs(t, tr.SetPredecessor(1, 9), trace.ErrOutOfRange)
	assert.Equal(t, 0, tr.Predecessor(1))
	assert.Equal(t, trace.None, tr.Predecessor(0))
}

func TestPathTo(t *testing.T) {
	tr := trace.New(4)
	require.NoError(t, tr.SetEndpoints(0, 3))
	require.NoError(t, tr.SetPredecessor(1, 0))
	require.NoError(t, tr.SetPredecessor(3, 1))

	got, err := tr.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, got)

	_, err = tr.PathTo(2)
	assert.ErrorIs(t, err, trace.ErrNoPath)

	// a cycle must not hang the walk
	require.NoError(t, tr.SetPredecessor(1, 3))
	_, err = tr.PathTo(3)
	assert.ErrorIs(t, err, trace.ErrNoPath)
}

func TestReset_KeepsEndpointsAndDelay(t *testing.T) {
	tr := trace.New(5)
	require.NoError(t, tr.SetEndpoints(1, 4))
	tr.SetStepDelay(30 * time.Millisecond)
	require.NoError(t, tr.Visit(3))
	require.NoError(t, tr.SetPredecessor(4, 1))

	tr.Reset(5, trace.AppendOnly)

	assert.True(t, tr.Snapshot().Cleared())
	src, tgt, ok := tr.Endpoints()
	assert.True(t, ok)
	assert.Equal(t, 1, src)
	assert.Equal(t, 4, tgt)
	assert.Equal(t, 30*time.Millisecond, tr.StepDelay())

	// shrinking drops endpoints that no longer exist
	tr.Reset(3, trace.AppendOnly)
	_, _, ok = tr.Endpoints()
	assert.False(t, ok)
}

func TestSetEndpoints_Validation(t *testing.T) {
	tr := trace.New(2)
	assert.ErrorIs(t, tr.SetEndpoints(-1, 1), trace.ErrOutOfRange)
	assert.ErrorIs(t, tr.SetEndpoints(0, 2), trace.ErrOutOfRange)

	require.NoError(t, tr.SetEndpoints(0, 1))
	tr.ClearEndpoints()
	_, _, ok := tr.Endpoints()
	assert.False(t, ok)

	tr.SetStepDelay(-time.Second)
	assert.Zero(t, tr.StepDelay())
}

func TestSnapshot_IsDefensive(t *testing.T) {
	tr := trace.New(3)
	require.NoError(t, tr.Visit(1))
	snap := tr.Snapshot()

	require.NoError(t, tr.Visit(2))
	require.NoError(t, tr.SetPredecessor(2, 0))
	snap.Path[0] = 42

	want := trace.Snapshot{
		VisitedEdges: []int{1},
		Path:         []int{42, trace.None, trace.None},
		Source:       trace.None,
		Target:       trace.None,
		Discipline:   "append-only",
	}
	if diff := cmp.Diff(want, snap); diff != "" {
		t.Fatalf("snapshot changed after later mutations (-want +got):\n%s", diff)
	}
	assert.Equal(t, trace.None, tr.Predecessor(0))
}

// TestConcurrentSnapshots exercises one writer and several readers under -race.
func TestConcurrentSnapshots(t *testing.T) {
	const edges = 500
	tr := trace.New(10)

	var wg sync.WaitGroup
	done := make(chan struct{})
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			last := 0
			for {
				select {
				case <-done:
					return
				default:
				}
				n := len(tr.Snapshot().VisitedEdges)
				assert.GreaterOrEqual(t, n, last, "append-only set never shrinks")
				last = n
			}
		}()
	}

	for id := 0; id < edges; id++ {
		require.NoError(t, tr.Visit(id))
	}
	close(done)
	wg.Wait()
	assert.Equal(t, edges, tr.VisitedCount())
}
