// Package metrics defines the observability contract for the lineup
// engine. The engine itself performs no I/O; the app layer records events
// through a Sink after each run.
package metrics

import "time"

// RunResult describes one completed optimization run.
type RunResult struct {
	RunID       string
	Team        string
	RelayLegs   int
	Individuals int
	Duration    time.Duration
	Failed      bool
	Time        time.Time
}

// Sink records run results for observability purposes.
type Sink interface {
	RecordRun(res RunResult) error
}

// ScoreEvent captures a dual-meet projection.
type ScoreEvent struct {
	RunID    string
	HomeTeam string
	AwayTeam string
	Home     int
	Away     int
	Outcome  string
	Time     time.Time
}

// ScoreRecorder records meet projections. Sinks implement it optionally.
type ScoreRecorder interface {
	RecordScore(ev ScoreEvent) error
}

// NopSink implements Sink and ScoreRecorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordRun(RunResult) error    { return nil }
func (NopSink) RecordScore(ScoreEvent) error { return nil }

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusAddr    string `json:"prometheus_addr"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusAddr == "" {
		c.PrometheusAddr = ":9090"
	}
}
