package lineup

import (
	"reflect"
	"testing"

	"github.com/mholweger/dualmeet/core/model"
)

func TestRoundRobin_FastestFirst(t *testing.T) {
	m := model.NewTimeMatrix()
	m.SetRaw("Alice", "50 free", "22.10")
	m.SetRaw("Bob", "50 free", "21.90")
	m.SetRaw("Cara", "50 free", "23.00")
	cfg := Config{MaxEventsPerSwimmer: 4, SwimmersPerEvent: 2, Events: []string{"50 free"}}

	got := RoundRobinAssigner{Config: cfg}.Assign(m, model.NewLedger())
	if len(got) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(got))
	}
	if got[0].Athlete != "Bob" || got[0].Seconds != 21.90 {
		t.Errorf("first seed = %+v, want Bob 21.90", got[0])
	}
	if got[1].Athlete != "Alice" || got[1].Seconds != 22.10 {
		t.Errorf("second seed = %+v, want Alice 22.10", got[1])
	}
	for _, a := range got {
		if a.Athlete == "Cara" {
			t.Error("Cara must be excluded by the event cap")
		}
	}
}

func TestRoundRobin_EventCapAndNoDoubleEntry(t *testing.T) {
	m := model.NewTimeMatrix()
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		m.Set(name, "100 free", 50.0)
		m.Set(name, "100 back", 60.0)
	}
	cfg := Config{MaxEventsPerSwimmer: 4, SwimmersPerEvent: 3, Events: []string{"100 free", "100 back"}}

	got := RoundRobinAssigner{Config: cfg}.Assign(m, model.NewLedger())
	perEvent := map[string]map[string]int{}
	for _, a := range got {
		if perEvent[a.Event] == nil {
			perEvent[a.Event] = map[string]int{}
		}
		perEvent[a.Event][a.Athlete]++
	}
	for event, athletes := range perEvent {
		total := 0
		for name, n := range athletes {
			if n > 1 {
				t.Errorf("%s assigned %d times to %s", name, n, event)
			}
			total += n
		}
		if total > cfg.SwimmersPerEvent {
			t.Errorf("event %s has %d entries, cap is %d", event, total, cfg.SwimmersPerEvent)
		}
	}
}

func TestRoundRobin_LedgerCapHolds(t *testing.T) {
	m := model.NewTimeMatrix()
	events := []string{"50 free", "100 free", "200 free", "100 back", "100 fly"}
	for _, ev := range events {
		m.Set("Iron", ev, 30.0)
		m.Set("Other", ev, 40.0)
	}
	cfg := Config{MaxEventsPerSwimmer: 3, SwimmersPerEvent: 2, Events: events}
	led := model.NewLedger()

	got := RoundRobinAssigner{Config: cfg}.Assign(m, led)
	for name, count := range led {
		if count > cfg.MaxEventsPerSwimmer {
			t.Errorf("%s committed to %d events, cap is %d", name, count, cfg.MaxEventsPerSwimmer)
		}
	}
	ironEvents := 0
	for _, a := range got {
		if a.Athlete == "Iron" {
			ironEvents++
		}
	}
	if ironEvents != 3 {
		t.Errorf("Iron assigned to %d events, want exactly the cap of 3", ironEvents)
	}
}

// Relay commitments seeded into the ledger reduce individual capacity.
func TestRoundRobin_HonorsRelaySeededLedger(t *testing.T) {
	m := model.NewTimeMatrix()
	m.Set("Busy", "50 free", 21.0)
	m.Set("Free", "50 free", 25.0)
	cfg := Config{MaxEventsPerSwimmer: 2, SwimmersPerEvent: 2, Events: []string{"50 free"}}
	led := model.NewLedger()
	led.Add("Busy")
	led.Add("Busy")

	got := RoundRobinAssigner{Config: cfg}.Assign(m, led)
	if len(got) != 1 || got[0].Athlete != "Free" {
		t.Fatalf("expected only Free to qualify, got %+v", got)
	}
}

func TestRoundRobin_Deterministic(t *testing.T) {
	build := func() []model.Assignment {
		m := model.NewTimeMatrix()
		for i, name := range []string{"P", "Q", "R", "S"} {
			m.Set(name, "50 free", 22.0+float64(i)*0.1)
			m.Set(name, "100 fly", 58.2) // all tied
		}
		cfg := Config{MaxEventsPerSwimmer: 2, SwimmersPerEvent: 2, Events: []string{"50 free", "100 fly"}}
		return RoundRobinAssigner{Config: cfg}.Assign(m, model.NewLedger())
	}
	first := build()
	for i := 0; i < 5; i++ {
		if again := build(); !reflect.DeepEqual(first, again) {
			t.Fatalf("assignment not deterministic:\n%+v\nvs\n%+v", first, again)
		}
	}
}

func TestRoundRobin_EmptyPool(t *testing.T) {
	m := model.NewTimeMatrix()
	m.SetRaw("Ghost", "50 free", "DNS")
	cfg := Config{MaxEventsPerSwimmer: 4, SwimmersPerEvent: 2, Events: []string{"50 free"}}
	if got := (RoundRobinAssigner{Config: cfg}).Assign(m, model.NewLedger()); len(got) != 0 {
		t.Fatalf("expected no assignments, got %+v", got)
	}
}

func TestRoundRobin_PassCeilingTerminates(t *testing.T) {
	m := model.NewTimeMatrix()
	for i := 0; i < 20; i++ {
		m.Set(string(rune('A'+i)), "50 free", 22.0)
	}
	cfg := Config{MaxEventsPerSwimmer: 1, SwimmersPerEvent: 20, Events: []string{"50 free"}, MaxPasses: 3}
	got := RoundRobinAssigner{Config: cfg}.Assign(m, model.NewLedger())
	// One assignment per pass per event, capped by MaxPasses.
	if len(got) != 3 {
		t.Fatalf("expected the pass ceiling to stop at 3 assignments, got %d", len(got))
	}
}
