package lineup

import (
	"github.com/mholweger/dualmeet/core/logger"
	"github.com/mholweger/dualmeet/core/model"
)

// tracker enforces the two shared eligibility rules: an athlete stays
// under the ledger cap and never enters the same event twice. Both
// assignor variants go through it so the checks are not re-derived.
type tracker struct {
	cfg     Config
	led     model.Ledger
	entered map[string]map[string]bool // event -> athlete -> already in
	filled  map[string]int             // event -> committed slots
}

func newTracker(cfg Config, led model.Ledger) *tracker {
	return &tracker{
		cfg:     cfg,
		led:     led,
		entered: make(map[string]map[string]bool),
		filled:  make(map[string]int),
	}
}

// open reports whether the event still has a free slot.
func (t *tracker) open(event string) bool {
	return t.filled[event] < t.cfg.SwimmersPerEvent
}

// eligible reports whether the athlete may take a slot in the event.
func (t *tracker) eligible(athlete, event string) bool {
	return t.led.Under(athlete, t.cfg.MaxEventsPerSwimmer) && !t.entered[event][athlete]
}

// commit records the assignment and returns the slot's 1-based rank.
func (t *tracker) commit(athlete, event string) int {
	if t.entered[event] == nil {
		t.entered[event] = make(map[string]bool)
	}
	t.entered[event][athlete] = true
	t.filled[event]++
	t.led.Add(athlete)
	return t.filled[event]
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}

func orNop(log logger.Logger) logger.Logger {
	if log == nil {
		return nopLogger{}
	}
	return log
}
