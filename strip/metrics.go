package strip

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	framesRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName("ledsweep", "strip", "frames_total"),
		Help: "Number of frames rendered",
	}, []string{"mode"})

	phaseTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName("ledsweep", "strip", "phase_transitions_total"),
		Help: "Number of phases started",
	}, []string{"mode", "phase"})
)
