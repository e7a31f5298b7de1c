package proofgen

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	stepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "credfetch_step_duration_seconds",
		Help:    "Time spent in each pipeline step.",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
	}, []string{"step"})
	outputBytes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "credfetch_output_bytes_total",
		Help: "Bytes written to output files.",
	}, []string{"file"})
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "credfetch_runs_total",
		Help: "Pipeline runs by mode and outcome.",
	}, []string{"mode", "outcome"})
)
