package sweep

import "time"

// Params are the tunables of a segment. Speed and Intensity are expected in 0-255; other values are clamped.
type Params struct {
	Speed      int
	Intensity  int
	Foreground Color
	Background Color
}

// Effect renders one frame into pixels and returns the state to pass to the next call.
// now is a monotonic timestamp. Passing a zero State restarts the effect.
type Effect interface {
	Step(state State, now time.Duration, params Params, pixels []Color) State
}

// CyclicSweep fills the strip, holds it, empties it and starts over
type CyclicSweep struct{}

var _ Effect = CyclicSweep{}

// Step renders the next frame
func (CyclicSweep) Step(state State, now time.Duration, params Params, pixels []Color) State {
	n := len(pixels)
	if n <= 1 {
		Fill(pixels, params.Foreground)
		return state
	}

	if !state.Initialized || !isCyclic(state.Phase) {
		state = state.start(Filling, now)
	}

	cycleTime := CycleTime(params.Speed)
	elapsed := since(state.PhaseStart, now)
	if elapsed >= cyclicDuration(state.Phase, cycleTime) {
		state = state.start(nextCyclic(state.Phase), now)
		elapsed = 0
	}

	if state.Phase == Holding {
		Fill(pixels, params.Foreground)
		return state
	}

	width := GradientWidth(params.Intensity, n)
	pos := BoundedPosition(Progress(elapsed, cyclicDuration(state.Phase, cycleTime)), n)

	dir := Forward
	if state.Phase == Emptying {
		dir = Reverse
	}
	Render(pixels, pos, width, params.Foreground, params.Background, dir)
	return state
}

func isCyclic(phase Phase) bool {
	return phase == Filling || phase == Holding || phase == Emptying
}

func cyclicDuration(phase Phase, cycleTime time.Duration) time.Duration {
	if phase == Holding {
		return HoldTime
	}
	return cycleTime
}

func nextCyclic(phase Phase) Phase {
	switch phase {
	case Filling:
		return Holding
	case Holding:
		return Emptying
	default:
		return Filling
	}
}

// OneShotSweep fills the strip once and then freezes it in the foreground color
type OneShotSweep struct{}

var _ Effect = OneShotSweep{}

// Step renders the next frame
func (OneShotSweep) Step(state State, now time.Duration, params Params, pixels []Color) State {
	n := len(pixels)
	if n <= 1 {
		Fill(pixels, params.Foreground)
		return state
	}

	if !state.Initialized || (state.Phase != Sweeping && state.Phase != Frozen) {
		state = state.start(Sweeping, now)
	}

	if state.Phase == Frozen {
		Fill(pixels, params.Foreground)
		return state
	}

	cycleTime := CycleTime(params.Speed)
	elapsed := since(state.PhaseStart, now)
	if elapsed >= cycleTime {
		state = state.start(Frozen, now)
		Fill(pixels, params.Foreground)
		return state
	}

	width := GradientWidth(params.Intensity, n)
	pos := ExtendedPosition(Progress(elapsed, cycleTime), n, width)
	Render(pixels, pos, width, params.Foreground, params.Background, Forward)
	return state
}

// SmoothSweep moves the gradient back and forth over the strip. It keeps no state.
type SmoothSweep struct{}

var _ Effect = SmoothSweep{}

// Step renders the next frame
func (SmoothSweep) Step(state State, now time.Duration, params Params, pixels []Color) State {
	n := len(pixels)
	if n <= 1 {
		Fill(pixels, params.Foreground)
		return state
	}

	cycleTime := CycleTime(params.Speed)
	if now < 0 {
		now = 0
	}
	pos, reverse := TrianglePosition(Progress(now%cycleTime, cycleTime), n)

	dir := Forward
	if reverse {
		dir = Reverse
	}
	Render(pixels, pos, GradientWidth(params.Intensity, n), params.Foreground, params.Background, dir)
	return state
}
