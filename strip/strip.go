package strip

import (
	"context"
	"fmt"
	"github.com/clambin/ledsweep/configuration"
	"github.com/clambin/ledsweep/sweep"
	log "github.com/sirupsen/logrus"
	"sync"
	"time"
)

// Frame is one rendered frame of the segment
type Frame struct {
	Mode   string
	Phase  sweep.Phase
	Time   time.Duration
	Pixels []sweep.Color
}

// Strip owns a segment: its pixels, the selected effect, its parameters and the effect's state.
// Run renders a frame every interval and publishes it on Next().
type Strip struct {
	mode     string
	effect   sweep.Effect
	params   sweep.Params
	state    sweep.State
	pixels   []sweep.Color
	last     Frame
	interval time.Duration
	frames   chan Frame
	lock     sync.RWMutex
}

// New creates a new Strip
func New(cfg configuration.StripConfiguration) (*Strip, error) {
	if cfg.Length < 0 {
		return nil, fmt.Errorf("invalid length: %d", cfg.Length)
	}
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("invalid interval: %s", cfg.Interval)
	}
	s := &Strip{
		params:   cfg.Params,
		pixels:   make([]sweep.Color, cfg.Length),
		interval: cfg.Interval,
		frames:   make(chan Frame, 1),
	}
	if err := s.SetEffect(cfg.Mode); err != nil {
		return nil, err
	}
	return s, nil
}

// SetEffect selects the effect to run. The effect restarts, even if the mode doesn't change.
func (s *Strip) SetEffect(mode string) error {
	e, ok := sweep.New(mode)
	if !ok {
		return fmt.Errorf("invalid mode: %s", mode)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.mode = mode
	s.effect = e
	s.state = sweep.State{}
	log.WithField("mode", mode).Debug("effect selected")
	return nil
}

// Mode returns the name of the selected effect
func (s *Strip) Mode() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.mode
}

// SetParams sets the effect's parameters. The effect continues from its current state.
func (s *Strip) SetParams(params sweep.Params) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.params = params
}

// Params returns the effect's parameters
func (s *Strip) Params() sweep.Params {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.params
}

// Last returns the last rendered frame
func (s *Strip) Last() Frame {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.last.clone()
}

// Render renders the frame at time now
func (s *Strip) Render(now time.Duration) Frame {
	s.lock.Lock()
	defer s.lock.Unlock()

	previous := s.state
	s.state = s.effect.Step(s.state, now, s.params, s.pixels)
	framesRendered.WithLabelValues(s.mode).Inc()
	if s.state.Initialized && (!previous.Initialized || previous.Phase != s.state.Phase) {
		phaseTransitions.WithLabelValues(s.mode, s.state.Phase.String()).Inc()
		log.WithFields(log.Fields{"mode": s.mode, "phase": s.state.Phase}).Debug("phase started")
	}

	phase := s.state.Phase
	if !s.state.Initialized {
		phase = sweep.NoPhase
	}
	s.last = Frame{
		Mode:   s.mode,
		Phase:  phase,
		Time:   now,
		Pixels: s.pixels,
	}.clone()
	return s.last.clone()
}

func (f Frame) clone() Frame {
	pixels := make([]sweep.Color, len(f.Pixels))
	copy(pixels, f.Pixels)
	f.Pixels = pixels
	return f
}

// Next returns the channel on which Run publishes each new frame
func (s *Strip) Next() <-chan Frame {
	return s.frames
}

// Run renders a frame every interval, until the context is canceled
func (s *Strip) Run(ctx context.Context) {
	log.WithField("interval", s.interval).Info("strip started")
	start := time.Now()
	ticker := time.NewTicker(s.interval)
	for running := true; running; {
		select {
		case <-ctx.Done():
			running = false
		case <-ticker.C:
			s.publish(s.Render(time.Since(start)))
		}
	}
	ticker.Stop()
	log.Info("strip stopped")
}

func (s *Strip) publish(frame Frame) {
	for {
		select {
		case s.frames <- frame:
			return
		default:
		}
		// consumer is behind: drop the stale frame
		select {
		case <-s.frames:
			log.Debug("frame dropped")
		default:
		}
	}
}
