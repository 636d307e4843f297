// SPDX-License-Identifier: MIT

package trace

import "time"

// Snapshot is a defensive copy of a Trace, safe to keep and iterate while the
// running algorithm continues to mutate the original.
type Snapshot struct {
	VisitedEdges []int         `json:"visitedEdges"`
	Path         []int         `json:"path"`
	Source       int           `json:"source"`
	Target       int           `json:"target"`
	StepDelay    time.Duration `json:"stepDelay"`
	Discipline   string        `json:"discipline"`
}

// Snapshot copies the current state under a read lock.
// Complexity: O(V + E log E).
func (t *Trace) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	path := make([]int, len(t.path))
	copy(path, t.path)

	return Snapshot{
		VisitedEdges: t.visitedLocked(),
		Path:         path,
		Source:       t.source,
		Target:       t.target,
		StepDelay:    t.stepDelay,
		Discipline:   t.discipline.String(),
	}
}

// Cleared reports whether the snapshot shows no progress: no visited edges and
// every predecessor NONE.
func (s Snapshot) Cleared() bool {
	if len(s.VisitedEdges) != 0 {
		return false
	}
	for _, p := range s.Path {
		if p != None {
			return false
		}
	}

	return true
}
