package lineup

import (
	"errors"

	"github.com/mholweger/dualmeet/core/model"
)

// Errors distinguishing bad input from an empty-but-valid outcome.
// Missing-roster and missing-event conditions are configuration errors;
// ErrNoLineup means the run executed but produced nothing at all.
// Lesser shortfalls (a skipped squad, an unfilled slot) are warnings only.
var (
	ErrEmptyRoster = errors.New("lineup: empty roster")
	ErrNoEvents    = errors.New("lineup: no events or relays requested")
	ErrNoLineup    = errors.New("lineup: no lineup could be generated")
)

// Lineup is the output of one optimization run.
type Lineup struct {
	Relays      []model.RelayLeg   `json:"relays"`
	Individuals []model.Assignment `json:"individuals"`
	// Ledger holds the final per-athlete event counts for the run.
	Ledger model.Ledger `json:"ledger"`
}
