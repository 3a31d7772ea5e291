package lineup

import (
	"github.com/mholweger/dualmeet/core/logger"
	"github.com/mholweger/dualmeet/core/model"
)

var squadLetters = []string{"A", "B"}

// RelayBuilder forms up to two squads per requested relay type, consuming
// athlete capacity from the run's ledger.
type RelayBuilder struct {
	Config Config
	Log    logger.Logger
}

// Build processes the configured relay types in request order and returns
// the formed legs. The ledger is incremented once per athlete per
// completed squad. A relay type that cannot field four distinct eligible
// athletes contributes zero squads; that is not an error.
func (b RelayBuilder) Build(matrix *model.TimeMatrix, led model.Ledger) []model.RelayLeg {
	log := orNop(b.Log)
	var out []model.RelayLeg

	for _, relay := range b.Config.RelayTypes {
		legs := relay.Legs()
		pools := make([][]model.EventTime, len(legs))
		for i, leg := range legs {
			pools[i] = matrix.EventTimes(leg.Event)
		}

		// Athletes placed in an earlier squad of this relay type stay
		// available for other relay types and individual events.
		usedInRelay := make(map[string]bool)
		for _, letter := range squadLetters {
			squad := b.pickSquad(legs, pools, led, usedInRelay)
			if squad == nil {
				log.Infof("relay %s: squad %s not formed, insufficient eligible athletes", relay, letter)
				break
			}
			for i, pick := range squad {
				out = append(out, model.RelayLeg{
					Relay:   relay,
					Squad:   letter,
					Leg:     legs[i].Name,
					Athlete: pick.Athlete,
					Seconds: pick.Seconds,
				})
				usedInRelay[pick.Athlete] = true
			}
			// One relay counts once against the cap, not once per leg.
			for _, pick := range squad {
				led.Add(pick.Athlete)
			}
			log.Debugw("relay squad formed", map[string]any{
				"relay": relay.String(),
				"squad": letter,
			})
		}
	}
	return out
}

// pickSquad fills the four legs greedily, fastest eligible candidate
// first. It returns nil when any leg cannot be filled: partial squads are
// never emitted.
func (b RelayBuilder) pickSquad(legs []model.LegDef, pools [][]model.EventTime, led model.Ledger, excluded map[string]bool) []model.EventTime {
	picks := make([]model.EventTime, 0, len(legs))
	inSquad := make(map[string]bool)
	for i := range legs {
		found := false
		for _, cand := range pools[i] {
			if excluded[cand.Athlete] || inSquad[cand.Athlete] {
				continue
			}
			if !led.Under(cand.Athlete, b.Config.MaxEventsPerSwimmer) {
				continue
			}
			picks = append(picks, cand)
			inSquad[cand.Athlete] = true
			found = true
			break
		}
		if !found {
			return nil
		}
	}
	return picks
}
