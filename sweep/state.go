package sweep

import "time"

// Phase is the current sub-state of a phased sweep
type Phase int

const (
	Filling Phase = iota
	Holding
	Emptying
	Sweeping
	Frozen

	// NoPhase is reported for effects that keep no state, or haven't started yet
	NoPhase Phase = -1
)

var phaseNames = map[Phase]string{
	Filling:  "filling",
	Holding:  "holding",
	Emptying: "emptying",
	Sweeping: "sweeping",
	Frozen:   "frozen",
	NoPhase:  "none",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// State is the per-segment state carried from one frame to the next. The zero value marks the first call
// after the effect was (re)selected.
type State struct {
	Phase       Phase
	PhaseStart  time.Duration
	Initialized bool
}

func (s State) start(phase Phase, now time.Duration) State {
	return State{Phase: phase, PhaseStart: now, Initialized: true}
}
