package lineup

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mholweger/dualmeet/core/model"
)

func rosterForMeet() *model.TimeMatrix {
	m := model.NewTimeMatrix()
	names := []string{"Ava", "Ben", "Cleo", "Drew", "Elle", "Finn"}
	for i, name := range names {
		m.Set(name, "50 free", 22.0+float64(i)*0.5)
		m.Set(name, "100 free", 49.0+float64(i)*0.7)
		m.Set(name, "100 back", 56.0+float64(i)*0.6)
		m.Set(name, "100 breast", 63.0+float64(i)*0.6)
		m.Set(name, "100 fly", 55.0+float64(i)*0.6)
	}
	return m
}

func TestOptimizer_EmptyRoster(t *testing.T) {
	o := Optimizer{Config: DefaultConfig()}
	if _, err := o.Run(model.NewTimeMatrix(), nil); !errors.Is(err, ErrEmptyRoster) {
		t.Fatalf("err = %v, want ErrEmptyRoster", err)
	}
	if _, err := o.Run(nil, nil); !errors.Is(err, ErrEmptyRoster) {
		t.Fatalf("nil matrix err = %v, want ErrEmptyRoster", err)
	}
}

func TestOptimizer_NoEventsRequested(t *testing.T) {
	o := Optimizer{Config: Config{MaxEventsPerSwimmer: 4, SwimmersPerEvent: 4}}
	if _, err := o.Run(rosterForMeet(), nil); !errors.Is(err, ErrNoEvents) {
		t.Fatalf("err = %v, want ErrNoEvents", err)
	}
}

func TestOptimizer_NoLineupDistinctFromBadInput(t *testing.T) {
	m := model.NewTimeMatrix()
	m.SetRaw("Ghost", "50 free", "DNS")
	cfg := Config{MaxEventsPerSwimmer: 4, SwimmersPerEvent: 4, Events: []string{"50 free"}}
	_, err := Optimizer{Config: cfg}.Run(m, nil)
	if !errors.Is(err, ErrNoLineup) {
		t.Fatalf("err = %v, want ErrNoLineup", err)
	}
	if errors.Is(err, ErrEmptyRoster) {
		t.Fatal("a run that produced nothing is not the same as missing input")
	}
}

func TestOptimizer_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SwimmersPerEvent = 0
	if _, err := (Optimizer{Config: cfg}).Run(rosterForMeet(), nil); err == nil {
		t.Fatal("expected config validation error")
	}
}

func TestOptimizer_CapHoldsAcrossRelaysAndIndividuals(t *testing.T) {
	cfg := Config{
		MaxEventsPerSwimmer: 3,
		SwimmersPerEvent:    3,
		RelayTypes:          []model.RelayType{model.Relay400Medley, model.Relay400Free},
		Events:              []string{"50 free", "100 free", "100 back", "100 breast", "100 fly"},
	}
	m := rosterForMeet()
	got, err := Optimizer{Config: cfg}.Run(m, nil)
	require.NoError(t, err)

	// Recount from the output records and compare with the ledger.
	counts := model.NewLedger()
	seenSquads := map[string]map[string]bool{}
	for _, leg := range got.Relays {
		key := leg.Relay.String() + leg.Squad
		if seenSquads[key] == nil {
			seenSquads[key] = map[string]bool{}
		}
		if seenSquads[key][leg.Athlete] {
			t.Fatalf("athlete %s swims two legs of %s %s", leg.Athlete, leg.Relay, leg.Squad)
		}
		seenSquads[key][leg.Athlete] = true
		counts.Add(leg.Athlete)
	}
	for _, a := range got.Individuals {
		counts.Add(a.Athlete)
	}
	for name, n := range counts {
		if n > cfg.MaxEventsPerSwimmer {
			t.Errorf("%s committed to %d events, cap is %d", name, n, cfg.MaxEventsPerSwimmer)
		}
		if got.Ledger.Count(name) != n {
			t.Errorf("ledger for %s = %d, recount = %d", name, got.Ledger.Count(name), n)
		}
	}
	for key, squad := range seenSquads {
		if len(squad) != 4 {
			t.Errorf("squad %s has %d athletes, want 4", key, len(squad))
		}
	}
}

func TestOptimizer_Deterministic(t *testing.T) {
	cfg := Config{
		MaxEventsPerSwimmer: 4,
		SwimmersPerEvent:    2,
		RelayTypes:          []model.RelayType{model.Relay200Free},
		Events:              []string{"50 free", "100 free", "100 back"},
	}
	first, err := Optimizer{Config: cfg}.Run(rosterForMeet(), nil)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Optimizer{Config: cfg}.Run(rosterForMeet(), nil)
		require.NoError(t, err)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("runs differ:\n%+v\nvs\n%+v", first, again)
		}
	}
}

// Events the opponent does not swim still get covered, by the plain
// assignor, while shared events carry expected places.
func TestOptimizer_StrategicCombinesWithPlainCoverage(t *testing.T) {
	own := model.NewTimeMatrix()
	own.Set("Us1", "50 free", 22.0)
	own.Set("Us1", "200 fly", 128.0)
	own.Set("Us2", "50 free", 23.0)
	opp := model.NewTimeMatrix()
	opp.Set("Them", "50 free", 22.5)

	cfg := Config{MaxEventsPerSwimmer: 4, SwimmersPerEvent: 2, Events: []string{"50 free", "200 fly"}}
	got, err := Optimizer{Config: cfg}.Run(own, opp)
	require.NoError(t, err)

	byEvent := map[string][]model.Assignment{}
	for _, a := range got.Individuals {
		byEvent[a.Event] = append(byEvent[a.Event], a)
	}
	require.Len(t, byEvent["50 free"], 2)
	require.Len(t, byEvent["200 fly"], 1)
	if byEvent["50 free"][0].ExpectedPlace != 1 {
		t.Errorf("Us1 expected place = %d, want 1", byEvent["50 free"][0].ExpectedPlace)
	}
	if byEvent["50 free"][1].ExpectedPlace != 2 {
		t.Errorf("Us2 expected place = %d, want 2", byEvent["50 free"][1].ExpectedPlace)
	}
	if byEvent["200 fly"][0].ExpectedPlace != 0 {
		t.Errorf("plain coverage must not carry an expected place")
	}
}

// Separate runs own separate ledgers: optimizing both teams of a meet must
// not leak counts between them.
func TestOptimizer_IndependentRuns(t *testing.T) {
	cfg := Config{MaxEventsPerSwimmer: 1, SwimmersPerEvent: 1, Events: []string{"50 free"}}
	home := model.NewTimeMatrix()
	home.Set("Shared Name", "50 free", 22.0)
	away := model.NewTimeMatrix()
	away.Set("Shared Name", "50 free", 23.0)

	h, err := Optimizer{Config: cfg}.Run(home, nil)
	require.NoError(t, err)
	a, err := Optimizer{Config: cfg}.Run(away, nil)
	require.NoError(t, err)
	if h.Ledger.Count("Shared Name") != 1 || a.Ledger.Count("Shared Name") != 1 {
		t.Fatal("each run must own an independent ledger")
	}
}
