// Package lineup implements the meet lineup optimization engine: the
// relay squad builder, the individual-event assignors and the run
// orchestration around them.
//
// A run is a pure function of its inputs. It owns a fresh ledger, threads
// it through the relay builder and then an individual assignor, and
// returns the formed lineup. Nothing is shared across runs or teams, so
// optimizing two rosters side by side cannot leak participation counts.
package lineup

import (
	"github.com/mholweger/dualmeet/core/logger"
	"github.com/mholweger/dualmeet/core/model"
)

// Optimizer runs the full lineup pipeline for one team.
type Optimizer struct {
	Config Config
	Log    logger.Logger
}

// Run builds a lineup for the own roster. When an opponent matrix is
// provided, events shared with the opponent go through the strategic
// assignor and the remainder through the plain one; otherwise the plain
// assignor covers everything. Relays always consume capacity first.
func (o Optimizer) Run(own, opponent *model.TimeMatrix) (*Lineup, error) {
	if err := o.Config.Validate(); err != nil {
		return nil, err
	}
	if own == nil || own.Len() == 0 {
		return nil, ErrEmptyRoster
	}
	if len(o.Config.Events) == 0 && len(o.Config.RelayTypes) == 0 {
		return nil, ErrNoEvents
	}
	log := orNop(o.Log)

	led := model.NewLedger()
	relays := RelayBuilder{Config: o.Config, Log: o.Log}.Build(own, led)

	var individuals []model.Assignment
	if opponent != nil && opponent.Len() > 0 {
		strat := StrategicAssigner{Config: o.Config, Opponent: opponent, Log: o.Log}
		individuals = strat.Assign(own, led)
		if rest := o.remainingEvents(strat.CommonEvents()); len(rest) > 0 {
			log.Debugf("covering %d events missing from opponent roster", len(rest))
			cfg := o.Config
			cfg.Events = rest
			individuals = append(individuals, RoundRobinAssigner{Config: cfg, Log: o.Log}.Assign(own, led)...)
		}
	} else {
		individuals = RoundRobinAssigner{Config: o.Config, Log: o.Log}.Assign(own, led)
	}

	if len(relays) == 0 && len(individuals) == 0 {
		return nil, ErrNoLineup
	}
	return &Lineup{Relays: relays, Individuals: individuals, Ledger: led}, nil
}

// remainingEvents returns the configured events not covered by the
// strategic pass, preserving request order.
func (o Optimizer) remainingEvents(covered []string) []string {
	seen := make(map[string]bool, len(covered))
	for _, ev := range covered {
		seen[ev] = true
	}
	var out []string
	for _, ev := range o.Config.Events {
		if !seen[ev] {
			out = append(out, ev)
		}
	}
	return out
}
