package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/mholweger/dualmeet/core/metrics"
)

// PromSink records lineup runs and meet projections in Prometheus
// metrics.
type PromSink struct {
	runs        *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	assignments *prometheus.CounterVec
	projections *prometheus.CounterVec
}

// NewPromSink registers lineup metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// cfg.PrometheusAddr.
func NewPromSink(cfg coremetrics.Config) (*PromSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lineup_runs_total",
		Help: "Total number of lineup optimization runs",
	}, []string{"team", "failed"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lineup_run_duration_seconds",
		Help:    "Wall time of one optimization run",
		Buckets: prometheus.DefBuckets,
	}, []string{"team"})
	assignments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lineup_assignments_total",
		Help: "Slots committed per run, split by program",
	}, []string{"team", "program"})
	projections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "meet_projections_total",
		Help: "Dual-meet score projections by outcome",
	}, []string{"outcome"})

	for _, c := range []prometheus.Collector{runs, duration, assignments, projections} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return nil, err
			}
		}
	}
	return &PromSink{runs: runs, duration: duration, assignments: assignments, projections: projections}, nil
}

// RecordRun increments the run counters and observes the duration.
func (s *PromSink) RecordRun(res coremetrics.RunResult) error {
	s.runs.WithLabelValues(res.Team, strconv.FormatBool(res.Failed)).Inc()
	s.duration.WithLabelValues(res.Team).Observe(res.Duration.Seconds())
	s.assignments.WithLabelValues(res.Team, "relay").Add(float64(res.RelayLegs))
	s.assignments.WithLabelValues(res.Team, "individual").Add(float64(res.Individuals))
	return nil
}

// RecordScore counts the projection outcome.
func (s *PromSink) RecordScore(ev coremetrics.ScoreEvent) error {
	s.projections.WithLabelValues(ev.Outcome).Inc()
	return nil
}
