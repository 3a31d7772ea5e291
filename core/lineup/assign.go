package lineup

import (
	"sort"

	"github.com/mholweger/dualmeet/core/logger"
	"github.com/mholweger/dualmeet/core/model"
)

// Assigner fills individual-event slots from the capacity left in the
// run's ledger. Implementations share the eligibility rules in tracker
// and differ only in which events they cover and what extra context they
// attach.
type Assigner interface {
	Assign(matrix *model.TimeMatrix, led model.Ledger) []model.Assignment
}

// RoundRobinAssigner is the plain, self-optimizing variant: it favours
// the fastest remaining swim overall while cycling events so coverage
// stays balanced. The result is a deliberate greedy heuristic, not an
// optimal matching.
type RoundRobinAssigner struct {
	Config Config
	Log    logger.Logger
}

// Assign implements Assigner over the configured events.
func (a RoundRobinAssigner) Assign(matrix *model.TimeMatrix, led model.Ledger) []model.Assignment {
	return assignRoundRobin(a.Config, matrix, a.Config.Events, led, orNop(a.Log), nil)
}

type poolEntry struct {
	athlete string
	event   string
	seconds float64
	used    bool
}

// placeFn computes the expected place an assignment carries; nil leaves
// the field at zero.
type placeFn func(event string, seconds float64) int

// assignRoundRobin is the mechanism shared by both assignor variants.
// The pool holds every valid (athlete, event, time) entry sorted
// ascending by time across all events; equal times keep build order so
// repeated runs agree. Each pass over the events assigns at most one
// entry per open event; the loop stops at a fixed point, bounded by the
// configured pass ceiling.
func assignRoundRobin(cfg Config, matrix *model.TimeMatrix, events []string, led model.Ledger, log logger.Logger, place placeFn) []model.Assignment {
	pool := buildPool(matrix, events)
	if len(pool) == 0 {
		return nil
	}

	byEvent := make(map[string][]*poolEntry)
	for _, e := range pool {
		byEvent[e.event] = append(byEvent[e.event], e)
	}

	track := newTracker(cfg, led)
	var out []model.Assignment
	for pass := 0; pass < cfg.maxPasses(); pass++ {
		progressed := false
		for _, event := range events {
			if !track.open(event) {
				continue
			}
			for _, entry := range byEvent[event] {
				if entry.used || !track.eligible(entry.athlete, event) {
					continue
				}
				entry.used = true
				rank := track.commit(entry.athlete, event)
				asn := model.Assignment{
					Event:    event,
					Athlete:  entry.athlete,
					Seconds:  entry.seconds,
					SeedRank: rank,
				}
				if place != nil {
					asn.ExpectedPlace = place(event, entry.seconds)
				}
				out = append(out, asn)
				progressed = true
				break
			}
		}
		if !progressed {
			break
		}
	}

	for _, event := range events {
		if n := track.filled[event]; n < cfg.SwimmersPerEvent {
			log.Warnf("event %s: filled %d of %d slots", event, n, cfg.SwimmersPerEvent)
		}
	}
	return out
}

// buildPool collects valid entries for the requested events sorted
// ascending by time. The pre-sort build order (event request order, then
// per-event time order) is the stable tie-break.
func buildPool(matrix *model.TimeMatrix, events []string) []*poolEntry {
	var pool []*poolEntry
	for _, event := range events {
		for _, et := range matrix.EventTimes(event) {
			pool = append(pool, &poolEntry{athlete: et.Athlete, event: event, seconds: et.Seconds})
		}
	}
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].seconds < pool[j].seconds })
	return pool
}
