// Package scoring projects a dual-meet score from two finalized lineups.
// It is a pure read-reduce pass: nothing here mutates a lineup or a
// ledger.
package scoring

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/mholweger/dualmeet/core/lineup"
	"github.com/mholweger/dualmeet/core/model"
	"github.com/mholweger/dualmeet/core/swimtime"
)

// Tally holds one side's points split by program.
type Tally struct {
	Individual int `json:"individual"`
	Relay      int `json:"relay"`
}

// Total returns the side's combined points.
func (t Tally) Total() int { return t.Individual + t.Relay }

// Score is the projected result of a dual meet.
type Score struct {
	Home Tally `json:"home"`
	Away Tally `json:"away"`
}

// Result categorizes the outcome from the home side's perspective.
type Result int

const (
	Tie Result = iota
	HomeWin
	AwayWin
)

func (r Result) String() string {
	switch r {
	case HomeWin:
		return "win"
	case AwayWin:
		return "loss"
	default:
		return "tie"
	}
}

// Outcome returns the categorical result and the absolute margin.
func (s Score) Outcome() (Result, int) {
	diff := s.Home.Total() - s.Away.Total()
	switch {
	case diff > 0:
		return HomeWin, diff
	case diff < 0:
		return AwayWin, -diff
	default:
		return Tie, 0
	}
}

// IndividualPoints scores one swim against the opposing roster's valid
// times for the event under the 9-4-3-2-1-0 dual-meet table. Beating the
// whole field earns 9; each additional opponent ahead steps down through
// 4, 3, 2 and 1 to nothing.
func IndividualPoints(seconds float64, opponents []float64) int {
	if !swimtime.IsValid(seconds) {
		return 0
	}
	var valid []float64
	for _, t := range opponents {
		if swimtime.IsValid(t) {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		return 9
	}
	beaten := 0
	for _, t := range valid {
		if seconds < t {
			beaten++
		}
	}
	n := len(valid)
	switch {
	case beaten == n:
		return 9
	case beaten >= n-1:
		return 4
	case beaten >= n-2:
		return 3
	case beaten >= n-3:
		return 2
	case beaten >= n-4:
		return 1
	default:
		return 0
	}
}

// RelayPoints compares the two teams' representative times for one relay
// type under the 11-4-2-0 table. With a single entry per team only the
// first two placings occur: the faster team takes 11, the other 4. Each
// side places by the count of entries strictly ahead of it, so an exact
// tie leaves both in second place for 4 apiece. A team without a
// representative time scores 0 and concedes 11.
func RelayPoints(own, opponent float64) (int, int) {
	ownOK := swimtime.IsValid(own)
	oppOK := swimtime.IsValid(opponent)
	switch {
	case !ownOK && !oppOK:
		return 0, 0
	case !oppOK:
		return 11, 0
	case !ownOK:
		return 0, 11
	case own < opponent:
		return 11, 4
	case opponent < own:
		return 4, 11
	default:
		return 4, 4
	}
}

// ScoreMeet aggregates individual and relay points for both sides.
func ScoreMeet(home, away *lineup.Lineup) Score {
	var s Score
	homeTimes := timesByEvent(home)
	awayTimes := timesByEvent(away)
	for _, event := range eventUnion(homeTimes, awayTimes) {
		for _, t := range homeTimes[event] {
			s.Home.Individual += IndividualPoints(t, awayTimes[event])
		}
		for _, t := range awayTimes[event] {
			s.Away.Individual += IndividualPoints(t, homeTimes[event])
		}
	}

	homeRelays := RepresentativeTimes(home.Relays)
	awayRelays := RepresentativeTimes(away.Relays)
	for _, relay := range model.AllRelayTypes {
		ownBest, ownOK := homeRelays[relay]
		oppBest, oppOK := awayRelays[relay]
		if !ownOK && !oppOK {
			continue
		}
		if !ownOK {
			ownBest = swimtime.NoTime
		}
		if !oppOK {
			oppBest = swimtime.NoTime
		}
		hp, ap := RelayPoints(ownBest, oppBest)
		s.Home.Relay += hp
		s.Away.Relay += ap
	}
	return s
}

// RepresentativeTimes reduces relay legs to one time per relay type: each
// squad's total is the sum of its four legs, and the team's representative
// time is the fastest squad total. Squads containing an invalid leg are
// ignored.
func RepresentativeTimes(legs []model.RelayLeg) map[model.RelayType]float64 {
	totals := make(map[model.RelayType]map[string][]float64)
	for _, leg := range legs {
		if totals[leg.Relay] == nil {
			totals[leg.Relay] = make(map[string][]float64)
		}
		totals[leg.Relay][leg.Squad] = append(totals[leg.Relay][leg.Squad], leg.Seconds)
	}

	out := make(map[model.RelayType]float64)
	for relay, squads := range totals {
		var candidates []float64
		for _, legTimes := range squads {
			if len(legTimes) != 4 {
				continue
			}
			valid := true
			for _, t := range legTimes {
				if !swimtime.IsValid(t) {
					valid = false
					break
				}
			}
			if valid {
				candidates = append(candidates, floats.Sum(legTimes))
			}
		}
		if len(candidates) > 0 {
			out[relay] = floats.Min(candidates)
		}
	}
	return out
}

func timesByEvent(l *lineup.Lineup) map[string][]float64 {
	out := make(map[string][]float64)
	if l == nil {
		return out
	}
	for _, a := range l.Individuals {
		out[a.Event] = append(out[a.Event], a.Seconds)
	}
	return out
}

func eventUnion(a, b map[string][]float64) []string {
	seen := make(map[string]bool)
	var out []string
	for ev := range a {
		if !seen[ev] {
			seen[ev] = true
			out = append(out, ev)
		}
	}
	for ev := range b {
		if !seen[ev] {
			seen[ev] = true
			out = append(out, ev)
		}
	}
	sort.Strings(out)
	return out
}
