package metrics

import coremetrics "github.com/mholweger/dualmeet/core/metrics"

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRun forwards the result to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordRun(res coremetrics.RunResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordRun(res); err != nil {
			return err
		}
	}
	return nil
}

// RecordScore forwards the projection to sinks that record scores.
func (m *MultiSink) RecordScore(ev coremetrics.ScoreEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.ScoreRecorder); ok {
			if err := rec.RecordScore(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
