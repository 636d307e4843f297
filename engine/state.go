// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"time"

	"github.com/katalvlaran/algoviz/metrics"
)

// State is the lifecycle state of an Engine.
type State int

const (
	Idle State = iota
	Running
	Paused
	Stopped
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MarshalText lets State render as its name in JSON and YAML.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses a name produced by MarshalText.
func (s *State) UnmarshalText(b []byte) error {
	for _, st := range []State{Idle, Running, Paused, Stopped} {
		if st.String() == string(b) {
			*s = st
			return nil
		}
	}

	return fmt.Errorf("engine: unknown state %q", b)
}

// Outcomes reported in Result.Outcome.
const (
	OutcomeCompleted = metrics.OutcomeCompleted
	OutcomeStopped   = metrics.OutcomeStopped
	OutcomeFailed    = metrics.OutcomeFailed
)

// Result describes one finished run.
type Result struct {
	RunID    string        `json:"runId"`
	Variant  string        `json:"variant"`
	Outcome  string        `json:"outcome"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration"`
	Steps    int64         `json:"steps"`
	Err      error         `json:"-"`
}
