package model

// Ledger counts committed events (individual plus relay) per athlete
// within a single optimization run. Each run owns its own instance; it is
// threaded through the relay builder and then the individual assignor and
// never shared between teams.
type Ledger map[string]int

// NewLedger returns an empty ledger.
func NewLedger() Ledger { return make(Ledger) }

// Add commits one more event for the athlete.
func (l Ledger) Add(athlete string) { l[athlete]++ }

// Count returns the athlete's committed event count.
func (l Ledger) Count(athlete string) int { return l[athlete] }

// Under reports whether the athlete can take another event given the cap.
func (l Ledger) Under(athlete string, maxEvents int) bool {
	return l[athlete] < maxEvents
}
