package lineup

import (
	"github.com/mholweger/dualmeet/core/logger"
	"github.com/mholweger/dualmeet/core/model"
	"github.com/mholweger/dualmeet/core/swimtime"
)

// StrategicAssigner is the opponent-aware variant. Selection order is
// identical to RoundRobinAssigner (own-fastest-first); the opponent's
// matrix only contributes the expected place attached to each assignment.
// Events the opponent does not swim are skipped here, so callers combine
// this with the plain variant for full coverage.
type StrategicAssigner struct {
	Config   Config
	Opponent *model.TimeMatrix
	Log      logger.Logger
}

// Assign implements Assigner over the events present in both matrices.
// Without opponent data it degrades to the plain variant.
func (a StrategicAssigner) Assign(matrix *model.TimeMatrix, led model.Ledger) []model.Assignment {
	log := orNop(a.Log)
	if a.Opponent == nil || a.Opponent.Len() == 0 {
		log.Warnf("no opponent data, falling back to round-robin assignment")
		return RoundRobinAssigner{Config: a.Config, Log: a.Log}.Assign(matrix, led)
	}

	common := a.CommonEvents()
	if len(common) == 0 {
		log.Warnf("no events shared with opponent roster")
		return nil
	}
	log.Debugf("strategic assignment over %d common events", len(common))

	return assignRoundRobin(a.Config, matrix, common, led, log, func(event string, seconds float64) int {
		return expectedPlace(a.Opponent, event, seconds)
	})
}

// CommonEvents returns the configured events the opponent holds at least
// one valid time for, in request order.
func (a StrategicAssigner) CommonEvents() []string {
	var out []string
	for _, event := range a.Config.Events {
		if a.Opponent.HasEvent(event) {
			out = append(out, event)
		}
	}
	return out
}

// expectedPlace is 1 plus the number of opponent entries strictly faster
// than the given time.
func expectedPlace(opp *model.TimeMatrix, event string, seconds float64) int {
	place := 1
	for _, athlete := range opp.Athletes() {
		t := opp.Time(athlete, event)
		if swimtime.IsValid(t) && t < seconds {
			place++
		}
	}
	return place
}
