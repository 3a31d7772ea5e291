// Package app wires configuration, storage and metrics around the lineup
// engine.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/mholweger/dualmeet/config"
	"github.com/mholweger/dualmeet/core/lineup"
	"github.com/mholweger/dualmeet/core/meetlog"
	coremetrics "github.com/mholweger/dualmeet/core/metrics"
	"github.com/mholweger/dualmeet/core/model"
	"github.com/mholweger/dualmeet/core/scoring"
	"github.com/mholweger/dualmeet/infra/logger"
	"github.com/mholweger/dualmeet/infra/metrics"
	"github.com/mholweger/dualmeet/infra/roster"
)

// Service orchestrates optimization runs for the configured meet.
type Service struct {
	cfg       *config.Config
	engineCfg lineup.Config
	store     meetlog.Store
	sink      coremetrics.Sink
	log       logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")
	engineCfg, err := cfg.Meet.Lineup()
	if err != nil {
		return nil, fmt.Errorf("meet config: %w", err)
	}

	var store meetlog.Store
	switch cfg.RunLog.Backend {
	case "sqlite":
		store, err = meetlog.NewSQLiteStore(cfg.RunLog.Path)
	default:
		store, err = meetlog.NewJSONLStore(cfg.RunLog.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("run store: %w", err)
	}

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	return &Service{cfg: cfg, engineCfg: engineCfg, store: store, sink: sink, log: logg}, nil
}

// RunSingle builds the best self-optimizing lineup for the home roster.
func (s *Service) RunSingle(ctx context.Context) (*meetlog.RunRecord, error) {
	team, matrix, err := roster.Load(s.cfg.Teams.Home)
	if err != nil {
		return nil, err
	}
	runID := meetlog.NewRunID()
	own, err := s.optimize(runID, team, matrix, nil)
	if err != nil {
		return nil, err
	}

	rec := meetlog.RunRecord{
		ID:        runID,
		Timestamp: time.Now(),
		HomeTeam:  team,
		Config:    s.engineCfg,
		Home:      own,
	}
	if err := s.store.Append(ctx, rec); err != nil {
		s.log.Errorf("append run record: %v", err)
	}
	s.log.Infof("lineup for %s: %d relay legs, %d individual entries",
		team, len(own.Relays), len(own.Individuals))
	return &rec, nil
}

// RunMeet builds an opponent-aware lineup for the home roster, a
// reference lineup for the opponent and projects the meet score.
func (s *Service) RunMeet(ctx context.Context) (*meetlog.RunRecord, error) {
	if s.cfg.Teams.Away == "" {
		return nil, fmt.Errorf("meet projection requires teams.away roster")
	}
	homeTeam, homeMatrix, err := roster.Load(s.cfg.Teams.Home)
	if err != nil {
		return nil, err
	}
	awayTeam, awayMatrix, err := roster.Load(s.cfg.Teams.Away)
	if err != nil {
		return nil, err
	}

	runID := meetlog.NewRunID()
	home, err := s.optimize(runID, homeTeam, homeMatrix, awayMatrix)
	if err != nil {
		return nil, fmt.Errorf("home lineup: %w", err)
	}
	// The opponent's reference lineup is self-optimizing: we assume they
	// field their best team without knowing ours.
	away, err := s.optimize(runID, awayTeam, awayMatrix, nil)
	if err != nil {
		return nil, fmt.Errorf("away lineup: %w", err)
	}

	score := scoring.ScoreMeet(home, away)
	result, margin := score.Outcome()
	s.log.Infof("projection: %s %d - %d %s (%s by %d)",
		homeTeam, score.Home.Total(), score.Away.Total(), awayTeam, result, margin)
	if rec, ok := s.sink.(coremetrics.ScoreRecorder); ok {
		ev := coremetrics.ScoreEvent{
			RunID:    runID,
			HomeTeam: homeTeam,
			AwayTeam: awayTeam,
			Home:     score.Home.Total(),
			Away:     score.Away.Total(),
			Outcome:  result.String(),
			Time:     time.Now(),
		}
		if err := rec.RecordScore(ev); err != nil {
			s.log.Errorf("record score: %v", err)
		}
	}

	rec := meetlog.RunRecord{
		ID:        runID,
		Timestamp: time.Now(),
		HomeTeam:  homeTeam,
		AwayTeam:  awayTeam,
		Config:    s.engineCfg,
		Home:      home,
		Away:      away,
		Score:     &score,
		Outcome:   result.String(),
	}
	if err := s.store.Append(ctx, rec); err != nil {
		s.log.Errorf("append run record: %v", err)
	}
	return &rec, nil
}

// Run executes the configured meet once. With Prometheus enabled it then
// keeps the metrics endpoint up until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	var err error
	if s.cfg.Teams.Away != "" {
		_, err = s.RunMeet(ctx)
	} else {
		_, err = s.RunSingle(ctx)
	}
	if err != nil {
		return err
	}
	if s.cfg.Metrics.PrometheusEnabled {
		s.log.Infof("serving metrics on %s", s.cfg.Metrics.PrometheusAddr)
		return metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr)
	}
	return nil
}

func (s *Service) optimize(runID, team string, own, opponent *model.TimeMatrix) (*lineup.Lineup, error) {
	start := time.Now()
	opt := lineup.Optimizer{Config: s.engineCfg, Log: logger.New("optimizer")}
	out, err := opt.Run(own, opponent)
	res := coremetrics.RunResult{
		RunID:    runID,
		Team:     team,
		Duration: time.Since(start),
		Failed:   err != nil,
		Time:     time.Now(),
	}
	if out != nil {
		res.RelayLegs = len(out.Relays)
		res.Individuals = len(out.Individuals)
	}
	if serr := s.sink.RecordRun(res); serr != nil {
		s.log.Errorf("record run: %v", serr)
	}
	return out, err
}

// Close releases resources held by the service.
func (s *Service) Close() error { return s.store.Close() }
