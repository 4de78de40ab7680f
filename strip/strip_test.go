package strip_test

import (
	"context"
	"github.com/clambin/ledsweep/configuration"
	"github.com/clambin/ledsweep/strip"
	"github.com/clambin/ledsweep/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"sync"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	fg = sweep.RGB(255, 160, 0)
	bg = sweep.RGB(0, 0, 0)
)

func makeConfig(mode string, length int) configuration.StripConfiguration {
	return configuration.StripConfiguration{
		Length:   length,
		Interval: 10 * time.Millisecond,
		Mode:     mode,
		Params:   sweep.Params{Speed: 255, Intensity: 0, Foreground: fg, Background: bg},
	}
}

func TestNew(t *testing.T) {
	s, err := strip.New(makeConfig("cyclic", 10))
	require.NoError(t, err)
	assert.Equal(t, "cyclic", s.Mode())
	assert.Equal(t, 255, s.Params().Speed)

	_, err = strip.New(makeConfig("invalid", 10))
	assert.Error(t, err)

	_, err = strip.New(makeConfig("cyclic", -1))
	assert.Error(t, err)

	cfg := makeConfig("cyclic", 10)
	cfg.Interval = 0
	_, err = strip.New(cfg)
	assert.Error(t, err)
}

func TestStrip_Last(t *testing.T) {
	s, err := strip.New(makeConfig("cyclic", 4))
	require.NoError(t, err)

	_ = s.Render(0)
	_ = s.Render(750 * time.Millisecond)
	last := s.Last()
	last.Pixels[0] = bg
	assert.Equal(t, fg, s.Last().Pixels[0])
}

func TestStrip_Render_Stateless(t *testing.T) {
	s, err := strip.New(makeConfig("smooth", 10))
	require.NoError(t, err)

	frame := s.Render(500 * time.Millisecond)
	assert.Equal(t, sweep.NoPhase, frame.Phase)
	assert.Equal(t, "none", frame.Phase.String())
}

func TestStrip_Render(t *testing.T) {
	s, err := strip.New(makeConfig("cyclic", 10))
	require.NoError(t, err)

	frame := s.Render(0)
	assert.Equal(t, "cyclic", frame.Mode)
	assert.Equal(t, sweep.Filling, frame.Phase)
	assert.Len(t, frame.Pixels, 10)
	assert.Equal(t, bg, frame.Pixels[9])

	frame = s.Render(750 * time.Millisecond)
	assert.Equal(t, sweep.Holding, frame.Phase)
	assert.Equal(t, 750*time.Millisecond, frame.Time)
	for _, pixel := range frame.Pixels {
		assert.Equal(t, fg, pixel)
	}
	assert.Equal(t, frame, s.Last())

	// frames don't share the strip's buffer
	frame.Pixels[0] = bg
	assert.Equal(t, fg, s.Last().Pixels[0])
}

func TestStrip_SetEffect(t *testing.T) {
	s, err := strip.New(makeConfig("oneshot", 10))
	require.NoError(t, err)

	_ = s.Render(0)
	assert.Equal(t, sweep.Frozen, s.Render(time.Second).Phase)
	assert.Equal(t, sweep.Frozen, s.Render(2*time.Second).Phase)

	// reselecting the effect restarts it
	require.NoError(t, s.SetEffect("oneshot"))
	assert.Equal(t, sweep.Sweeping, s.Render(3*time.Second).Phase)

	require.NoError(t, s.SetEffect("cyclic"))
	assert.Equal(t, sweep.Filling, s.Render(4*time.Second).Phase)
	assert.Equal(t, "cyclic", s.Mode())

	assert.Error(t, s.SetEffect("invalid"))
	assert.Equal(t, "cyclic", s.Mode())
}

func TestStrip_SetParams(t *testing.T) {
	s, err := strip.New(makeConfig("cyclic", 10))
	require.NoError(t, err)

	_ = s.Render(0)
	params := s.Params()
	params.Speed = 0
	s.SetParams(params)

	// at speed 0, filling takes 39s
	assert.Equal(t, sweep.Filling, s.Render(time.Second).Phase)
	assert.Equal(t, 0, s.Params().Speed)
}

func TestStrip_Run(t *testing.T) {
	s, err := strip.New(makeConfig("smooth", 10))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		s.Run(ctx)
		wg.Done()
	}()

	first := <-s.Next()
	second := <-s.Next()
	assert.Equal(t, "smooth", first.Mode)
	assert.Len(t, first.Pixels, 10)
	assert.True(t, second.Time > first.Time)

	cancel()
	wg.Wait()
}

func TestStrip_Run_SlowConsumer(t *testing.T) {
	s, err := strip.New(makeConfig("smooth", 10))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		s.Run(ctx)
		wg.Done()
	}()

	// Run keeps rendering while nobody reads
	require.Eventually(t, func() bool {
		return s.Last().Time > 100*time.Millisecond
	}, time.Second, 10*time.Millisecond)

	cancel()
	wg.Wait()

	frame := <-s.Next()
	assert.True(t, frame.Time > 50*time.Millisecond)
}
