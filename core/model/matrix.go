package model

import (
	"sort"

	"github.com/mholweger/dualmeet/core/swimtime"
)

// TimeMatrix holds one team's best times: athlete name to event label to
// seconds. Missing or unparseable entries carry the swimtime.NoTime
// sentinel. A matrix is built once per team per meet by the ingestion side
// and treated as read-only by the engine.
type TimeMatrix struct {
	order []string
	times map[string]map[string]float64
}

// NewTimeMatrix returns an empty matrix.
func NewTimeMatrix() *TimeMatrix {
	return &TimeMatrix{times: make(map[string]map[string]float64)}
}

// Set records a numeric time. The sentinel may be stored explicitly; it is
// simply skipped by EventTimes.
func (m *TimeMatrix) Set(athlete, event string, seconds float64) {
	row, ok := m.times[athlete]
	if !ok {
		row = make(map[string]float64)
		m.times[athlete] = row
		m.order = append(m.order, athlete)
	}
	row[event] = seconds
}

// SetRaw parses a textual time and records the result. A malformed value
// stores the sentinel, removing the athlete from that one event only.
func (m *TimeMatrix) SetRaw(athlete, event, raw string) {
	m.Set(athlete, event, swimtime.ParseSeconds(raw))
}

// Time returns the recorded seconds, or the sentinel if absent.
func (m *TimeMatrix) Time(athlete, event string) float64 {
	if row, ok := m.times[athlete]; ok {
		if s, ok := row[event]; ok {
			return s
		}
	}
	return swimtime.NoTime
}

// Athletes returns athlete names in discovery order.
func (m *TimeMatrix) Athletes() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len reports the number of athletes on the roster.
func (m *TimeMatrix) Len() int { return len(m.order) }

// Events returns the distinct event labels present, sorted.
func (m *TimeMatrix) Events() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, row := range m.times {
		for ev := range row {
			if _, ok := seen[ev]; !ok {
				seen[ev] = struct{}{}
				out = append(out, ev)
			}
		}
	}
	sort.Strings(out)
	return out
}

// HasEvent reports whether any athlete holds a valid time for the event.
func (m *TimeMatrix) HasEvent(event string) bool {
	for _, row := range m.times {
		if s, ok := row[event]; ok && swimtime.IsValid(s) {
			return true
		}
	}
	return false
}

// EventTime pairs an athlete with a valid seconds value for one event.
type EventTime struct {
	Athlete string
	Seconds float64
}

// EventTimes returns all valid entries for the event sorted ascending by
// time. Equal times keep roster discovery order so repeated runs produce
// identical rankings.
func (m *TimeMatrix) EventTimes(event string) []EventTime {
	var out []EventTime
	for _, athlete := range m.order {
		s, ok := m.times[athlete][event]
		if !ok || !swimtime.IsValid(s) {
			continue
		}
		out = append(out, EventTime{Athlete: athlete, Seconds: s})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Seconds < out[j].Seconds })
	return out
}
