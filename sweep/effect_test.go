package sweep_test

import (
	"github.com/clambin/ledsweep/sweep"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
	"testing"
	"time"
)

var params = sweep.Params{
	Speed:      255,
	Intensity:  0,
	Foreground: fg,
	Background: bg,
}

func solid(n int, c sweep.Color) []sweep.Color {
	pixels := make([]sweep.Color, n)
	sweep.Fill(pixels, c)
	return pixels
}

func TestCyclicSweep_Step(t *testing.T) {
	var e sweep.CyclicSweep
	pixels := make([]sweep.Color, 10)
	front := sweep.Blend(bg, fg, sweep.MinFade)

	state := e.Step(sweep.State{}, 0, params, pixels)
	assert.Equal(t, sweep.State{Phase: sweep.Filling, PhaseStart: 0, Initialized: true}, state)
	assert.Equal(t, append([]sweep.Color{front}, solid(9, bg)...), pixels)

	state = e.Step(state, 375*time.Millisecond, params, pixels)
	assert.Equal(t, sweep.Filling, state.Phase)
	assert.Equal(t, append(solid(4, fg), append([]sweep.Color{front}, solid(5, bg)...)...), pixels)

	state = e.Step(state, 750*time.Millisecond, params, pixels)
	assert.Equal(t, sweep.State{Phase: sweep.Holding, PhaseStart: 750 * time.Millisecond, Initialized: true}, state)
	assert.Equal(t, solid(10, fg), pixels)

	state = e.Step(state, 1749*time.Millisecond, params, pixels)
	assert.Equal(t, sweep.Holding, state.Phase)
	assert.Equal(t, solid(10, fg), pixels)

	state = e.Step(state, 1750*time.Millisecond, params, pixels)
	assert.Equal(t, sweep.State{Phase: sweep.Emptying, PhaseStart: 1750 * time.Millisecond, Initialized: true}, state)
	assert.Equal(t, append([]sweep.Color{front}, solid(9, fg)...), pixels)

	state = e.Step(state, 2125*time.Millisecond, params, pixels)
	assert.Equal(t, sweep.Emptying, state.Phase)
	assert.Equal(t, append(solid(4, bg), append([]sweep.Color{front}, solid(5, fg)...)...), pixels)

	state = e.Step(state, 2500*time.Millisecond, params, pixels)
	assert.Equal(t, sweep.State{Phase: sweep.Filling, PhaseStart: 2500 * time.Millisecond, Initialized: true}, state)
}

func TestCyclicSweep_Rotation(t *testing.T) {
	var e sweep.CyclicSweep
	p := params
	p.Speed = 128
	cycleTime := sweep.CycleTime(p.Speed)
	pixels := make([]sweep.Color, 30)

	state := e.Step(sweep.State{}, 0, p, pixels)
	visited := []sweep.Phase{state.Phase}
	for now := time.Duration(0); now <= 2*cycleTime+sweep.HoldTime; now += 10 * time.Millisecond {
		next := e.Step(state, now, p, pixels)
		if next.Phase != state.Phase {
			assert.Equal(t, now, next.PhaseStart)
			visited = append(visited, next.Phase)
		}
		state = next
	}
	assert.Equal(t, []sweep.Phase{sweep.Filling, sweep.Holding, sweep.Emptying, sweep.Filling}, visited)
}

func TestCyclicSweep_ForeignState(t *testing.T) {
	var e sweep.CyclicSweep
	pixels := make([]sweep.Color, 10)

	state := e.Step(sweep.State{Phase: sweep.Frozen, PhaseStart: time.Second, Initialized: true}, 5*time.Second, params, pixels)
	assert.Equal(t, sweep.State{Phase: sweep.Filling, PhaseStart: 5 * time.Second, Initialized: true}, state)
}

func TestCyclicSweep_Phases(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var e sweep.CyclicSweep
		p := params
		p.Speed = rapid.IntRange(-10, 300).Draw(t, "speed")
		p.Intensity = rapid.IntRange(-10, 300).Draw(t, "intensity")
		pixels := make([]sweep.Color, rapid.IntRange(2, 100).Draw(t, "n"))

		var state sweep.State
		var now time.Duration
		for i := 0; i < 20; i++ {
			now += time.Duration(rapid.IntRange(0, 5000).Draw(t, "step")) * time.Millisecond
			state = e.Step(state, now, p, pixels)
			assert.Contains(t, []sweep.Phase{sweep.Filling, sweep.Holding, sweep.Emptying}, state.Phase)
			assert.True(t, state.PhaseStart <= now)
		}
	})
}

func TestOneShotSweep_Step(t *testing.T) {
	var e sweep.OneShotSweep
	p := params
	p.Intensity = 255
	pixels := make([]sweep.Color, 10)

	state := e.Step(sweep.State{}, time.Second, p, pixels)
	assert.Equal(t, sweep.State{Phase: sweep.Sweeping, PhaseStart: time.Second, Initialized: true}, state)
	assert.Equal(t, append([]sweep.Color{sweep.Blend(bg, fg, sweep.MinFade)}, solid(9, bg)...), pixels)

	// near the end, the sweep position runs past the last pixel and the gradient trails off the strip
	state = e.Step(state, time.Second+749*time.Millisecond, p, pixels)
	assert.Equal(t, sweep.Sweeping, state.Phase)
	assert.Equal(t, fg, pixels[0])
	assert.NotEqual(t, bg, pixels[9])

	state = e.Step(state, time.Second+750*time.Millisecond, p, pixels)
	assert.Equal(t, sweep.State{Phase: sweep.Frozen, PhaseStart: time.Second + 750*time.Millisecond, Initialized: true}, state)
	assert.Equal(t, solid(10, fg), pixels)
}

func TestOneShotSweep_Frozen(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var e sweep.OneShotSweep
		p := params
		p.Speed = rapid.IntRange(0, 255).Draw(t, "speed")
		n := rapid.IntRange(2, 100).Draw(t, "n")
		pixels := make([]sweep.Color, n)

		state := e.Step(sweep.State{}, 0, p, pixels)
		state = e.Step(state, sweep.CycleTime(p.Speed), p, pixels)
		assert.Equal(t, sweep.Frozen, state.Phase)
		frozen := state

		now := sweep.CycleTime(p.Speed)
		for i := 0; i < 10; i++ {
			now += time.Duration(rapid.IntRange(0, 100000).Draw(t, "step")) * time.Millisecond
			state = e.Step(state, now, p, pixels)
			assert.Equal(t, frozen, state)
			assert.Equal(t, solid(n, fg), pixels)
		}
	})
}

func TestSmoothSweep_Step(t *testing.T) {
	var e sweep.SmoothSweep
	pixels := make([]sweep.Color, 10)
	front := sweep.Blend(bg, fg, sweep.MinFade)

	state := e.Step(sweep.State{}, 0, params, pixels)
	assert.Equal(t, sweep.State{}, state)
	assert.Equal(t, append([]sweep.Color{front}, solid(9, bg)...), pixels)

	// halfway through the backward sweep
	_ = e.Step(state, 750*time.Millisecond+570*time.Millisecond, params, pixels)
	assert.Equal(t, append(solid(4, bg), append([]sweep.Color{front}, solid(5, fg)...)...), pixels)

	// one full cycle later, the pattern repeats
	_ = e.Step(state, 750*time.Millisecond, params, pixels)
	assert.Equal(t, append([]sweep.Color{front}, solid(9, bg)...), pixels)
}

func TestEffects_Degenerate(t *testing.T) {
	for _, mode := range sweep.Modes {
		e, ok := sweep.New(mode)
		assert.True(t, ok, mode)

		pixels := []sweep.Color{bg}
		state := e.Step(sweep.State{}, time.Second, params, pixels)
		assert.Equal(t, []sweep.Color{fg}, pixels, mode)
		assert.Equal(t, sweep.State{}, state, mode)

		assert.NotPanics(t, func() { e.Step(sweep.State{}, time.Second, params, nil) }, mode)
		assert.NotPanics(t, func() { e.Step(sweep.State{}, time.Second, params, []sweep.Color{}) }, mode)
	}
}
