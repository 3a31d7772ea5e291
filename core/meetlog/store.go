// Package meetlog persists optimization run records so past lineups and
// score projections can be reviewed.
package meetlog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mholweger/dualmeet/core/lineup"
	"github.com/mholweger/dualmeet/core/scoring"
)

// RunRecord captures one optimization run and its projection.
type RunRecord struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	HomeTeam  string         `json:"home_team"`
	AwayTeam  string         `json:"away_team,omitempty"`
	Config    lineup.Config  `json:"config"`
	Home      *lineup.Lineup `json:"home"`
	Away      *lineup.Lineup `json:"away,omitempty"`
	Score     *scoring.Score `json:"score,omitempty"`
	Outcome   string         `json:"outcome,omitempty"`
}

// NewRunID returns a fresh identifier for a run record.
func NewRunID() string { return uuid.NewString() }

// Query defines filters for retrieving records.
type Query struct {
	Start time.Time
	End   time.Time
	Team  string
}

// Store persists RunRecords and supports querying.
type Store interface {
	Append(ctx context.Context, rec RunRecord) error
	Query(ctx context.Context, q Query) ([]RunRecord, error)
	Close() error
}

func (q Query) matches(r RunRecord) bool {
	if !q.Start.IsZero() && r.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && r.Timestamp.After(q.End) {
		return false
	}
	if q.Team != "" && r.HomeTeam != q.Team && r.AwayTeam != q.Team {
		return false
	}
	return true
}
