package lineup

import (
	"fmt"

	"github.com/mholweger/dualmeet/core/model"
)

// Config defines the meet rules for one optimization run.
type Config struct {
	// MaxEventsPerSwimmer caps an athlete's committed events, relays
	// included.
	MaxEventsPerSwimmer int `json:"max_events_per_swimmer"`
	// SwimmersPerEvent caps entries per individual event, usually half
	// the pool's lanes.
	SwimmersPerEvent int `json:"swimmers_per_event"`
	// RelayTypes lists the requested relays in meet order.
	RelayTypes []model.RelayType `json:"relay_types"`
	// Events lists the requested individual events in meet order.
	Events []string `json:"events"`
	// MaxPasses bounds the round-robin assignment loop. Zero selects
	// DefaultMaxPasses.
	MaxPasses int `json:"max_passes"`
}

// DefaultMaxPasses is the hard ceiling on assignment passes. The loop
// reaches a fixed point long before this on any sane input; the ceiling
// only guards against non-termination.
const DefaultMaxPasses = 1000

// DefaultConfig returns the standard dual-meet setup: four events per
// swimmer, four lanes per side, the full relay program and the standard
// individual events.
func DefaultConfig() Config {
	events := make([]string, len(model.StandardEvents))
	copy(events, model.StandardEvents)
	relays := make([]model.RelayType, len(model.AllRelayTypes))
	copy(relays, model.AllRelayTypes)
	return Config{
		MaxEventsPerSwimmer: 4,
		SwimmersPerEvent:    4,
		RelayTypes:          relays,
		Events:              events,
	}
}

// Validate checks the caps are usable.
func (c Config) Validate() error {
	if c.MaxEventsPerSwimmer < 1 {
		return fmt.Errorf("max_events_per_swimmer must be >= 1, got %d", c.MaxEventsPerSwimmer)
	}
	if c.SwimmersPerEvent < 1 {
		return fmt.Errorf("swimmers_per_event must be >= 1, got %d", c.SwimmersPerEvent)
	}
	if c.MaxPasses < 0 {
		return fmt.Errorf("max_passes must not be negative, got %d", c.MaxPasses)
	}
	return nil
}

func (c Config) maxPasses() int {
	if c.MaxPasses > 0 {
		return c.MaxPasses
	}
	return DefaultMaxPasses
}
