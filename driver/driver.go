package driver

import (
	"context"
	"github.com/clambin/ledsweep/strip"
	log "github.com/sirupsen/logrus"
	"sync"
)

// Sink displays a frame
//
//go:generate mockery --name Sink
type Sink interface {
	Show(frame strip.Frame) error
}

// Source produces the frames to display
type Source interface {
	Next() <-chan strip.Frame
}

// Driver receives frames from the Source and shows them on all Sinks
type Driver struct {
	source Source
	sinks  []Sink
}

// New creates a new Driver
func New(source Source, sinks ...Sink) *Driver {
	return &Driver{
		source: source,
		sinks:  sinks,
	}
}

// Run starts the driver
func (d *Driver) Run(ctx context.Context) {
	log.WithField("sinks", len(d.sinks)).Info("driver started")
	for running := true; running; {
		select {
		case <-ctx.Done():
			running = false
		case frame := <-d.source.Next():
			d.show(frame)
		}
	}
	log.Info("driver stopped")
}

func (d *Driver) show(frame strip.Frame) {
	wg := sync.WaitGroup{}
	for _, sink := range d.sinks {
		wg.Add(1)
		go func(sink Sink) {
			if err := sink.Show(frame); err != nil {
				log.WithError(err).WithField("phase", frame.Phase).Warning("failed to show frame")
			}
			wg.Done()
		}(sink)
	}
	wg.Wait()
}
