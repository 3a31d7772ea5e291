package model

// RelayLeg is one slot of a formed relay squad.
type RelayLeg struct {
	Relay   RelayType `json:"relay"`
	Squad   string    `json:"squad"` // "A" or "B"
	Leg     string    `json:"leg"`
	Athlete string    `json:"athlete"`
	Seconds float64   `json:"seconds"`
}

// Assignment is one athlete's entry in an individual event.
type Assignment struct {
	Event   string  `json:"event"`
	Athlete string  `json:"athlete"`
	Seconds float64 `json:"seconds"`
	// SeedRank is the 1-based position within the event's own lineup.
	SeedRank int `json:"seed_rank"`
	// ExpectedPlace is 1 + the count of strictly faster opponent times.
	// Zero when no opponent comparison was made. Informational only; it
	// never alters selection order.
	ExpectedPlace int `json:"expected_place,omitempty"`
}
