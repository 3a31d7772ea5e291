package config

import (
	"fmt"

	"github.com/mholweger/dualmeet/core/lineup"
	"github.com/mholweger/dualmeet/core/model"
)

// MeetConfig describes the meet rules in configuration-friendly form:
// relays by their canonical labels, events by exact-match labels.
type MeetConfig struct {
	MaxEventsPerSwimmer int      `json:"max_events_per_swimmer"`
	SwimmersPerEvent    int      `json:"swimmers_per_event"`
	Relays              []string `json:"relays"`
	Events              []string `json:"events"`
	// Distance and IM extend the standard program when Events is left
	// empty.
	Distance bool `json:"distance"`
	IM       bool `json:"im"`
}

// SetDefaults fills the standard dual-meet setup.
func (c *MeetConfig) SetDefaults() {
	if c.MaxEventsPerSwimmer == 0 {
		c.MaxEventsPerSwimmer = 4
	}
	if c.SwimmersPerEvent == 0 {
		c.SwimmersPerEvent = 4
	}
	if len(c.Relays) == 0 {
		for _, t := range model.AllRelayTypes {
			c.Relays = append(c.Relays, t.String())
		}
	}
	if len(c.Events) == 0 {
		c.Events = append(c.Events, model.StandardEvents...)
		if c.Distance {
			c.Events = append(c.Events, model.DistanceEvents...)
		}
		if c.IM {
			c.Events = append(c.Events, model.IMEvents...)
		}
	}
}

// Validate checks the caps and relay labels.
func (c MeetConfig) Validate() error {
	if c.MaxEventsPerSwimmer < 1 {
		return fmt.Errorf("meet.max_events_per_swimmer must be >= 1")
	}
	if c.SwimmersPerEvent < 1 {
		return fmt.Errorf("meet.swimmers_per_event must be >= 1")
	}
	for _, label := range c.Relays {
		if _, err := model.ParseRelayType(label); err != nil {
			return fmt.Errorf("meet.relays: %w", err)
		}
	}
	return nil
}

// Lineup converts the meet rules to the engine's config.
func (c MeetConfig) Lineup() (lineup.Config, error) {
	out := lineup.Config{
		MaxEventsPerSwimmer: c.MaxEventsPerSwimmer,
		SwimmersPerEvent:    c.SwimmersPerEvent,
		Events:              append([]string(nil), c.Events...),
	}
	for _, label := range c.Relays {
		t, err := model.ParseRelayType(label)
		if err != nil {
			return lineup.Config{}, err
		}
		out.RelayTypes = append(out.RelayTypes, t)
	}
	return out, out.Validate()
}
