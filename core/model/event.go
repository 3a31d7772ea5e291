package model

import "fmt"

// RelayType identifies one of the four dual-meet relay events.
type RelayType int

const (
	RelayNone RelayType = iota
	Relay200Medley
	Relay400Medley
	Relay200Free
	Relay400Free
)

// AllRelayTypes lists the relay types in conventional meet order.
var AllRelayTypes = []RelayType{Relay200Medley, Relay400Medley, Relay200Free, Relay400Free}

// String returns the canonical event label for the relay type.
func (t RelayType) String() string {
	switch t {
	case Relay200Medley:
		return "200 Medley Relay"
	case Relay400Medley:
		return "400 Medley Relay"
	case Relay200Free:
		return "200 Free Relay"
	case Relay400Free:
		return "400 Free Relay"
	default:
		return "unknown"
	}
}

// ParseRelayType resolves a canonical relay label. Labels are exact-match;
// normalization is the ingestion side's responsibility.
func ParseRelayType(label string) (RelayType, error) {
	for _, t := range AllRelayTypes {
		if t.String() == label {
			return t, nil
		}
	}
	return RelayNone, fmt.Errorf("unknown relay event: %q", label)
}

// LegDef describes one slot of a relay: the leg name shown in lineups and
// the individual event whose times seed it.
type LegDef struct {
	Name  string
	Event string
}

// Legs returns the four required legs in swim order. Medley relays run
// back, breast, fly, free at the type's distance; free relays run four
// freestyle legs of the same distance.
func (t RelayType) Legs() []LegDef {
	switch t {
	case Relay200Medley:
		return []LegDef{
			{Name: "Backstroke", Event: "50 back"},
			{Name: "Breaststroke", Event: "50 breast"},
			{Name: "Butterfly", Event: "50 fly"},
			{Name: "Freestyle", Event: "50 free"},
		}
	case Relay400Medley:
		return []LegDef{
			{Name: "Backstroke", Event: "100 back"},
			{Name: "Breaststroke", Event: "100 breast"},
			{Name: "Butterfly", Event: "100 fly"},
			{Name: "Freestyle", Event: "100 free"},
		}
	case Relay200Free:
		return freeLegs("50 free")
	case Relay400Free:
		return freeLegs("100 free")
	default:
		return nil
	}
}

func freeLegs(event string) []LegDef {
	legs := make([]LegDef, 4)
	for i := range legs {
		legs[i] = LegDef{Name: fmt.Sprintf("Leg %d", i+1), Event: event}
	}
	return legs
}

// StandardEvents lists the individual events every dual meet runs.
var StandardEvents = []string{
	"50 free", "100 free", "200 free", "500 free",
	"100 back", "200 back",
	"100 breast", "200 breast",
	"100 fly", "200 fly",
}

// DistanceEvents and IMEvents are optional extensions a meet may add to
// the standard program.
var (
	DistanceEvents = []string{"1000 free", "1650 free"}
	IMEvents       = []string{"200 IM", "400 IM"}
)
