package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"outlet-analytics/internal/insights"
	"outlet-analytics/internal/models"
	"outlet-analytics/internal/shared/loggers"
)

const (
	cadence7d  = 6 * time.Hour
	cadence30d = 24 * time.Hour
	cadence90d = 7 * 24 * time.Hour

	activityLookback = 90 * 24 * time.Hour
)

// OutletLister discovers the outlets worth recomputing. Implemented by the
// mongo event store: an outlet is active when any outlet event mentions it
// within the trailing 90 days; inactive outlets are skipped, not zeroed out.
type OutletLister interface {
	ActiveOutletIDs(ctx context.Context, since time.Time) ([]string, error)
}

// Scheduler drives periodic full-fleet recomputation: every 6 hours for 7d,
// daily for 30d, weekly for 90d. A run guard serializes fleet runs; a cadence
// that fires while another run is in progress is skipped entirely and logged,
// never queued.
type Scheduler struct {
	engine  insights.InsightsEngine
	outlets OutletLister

	batchSize  int
	batchDelay time.Duration

	running atomic.Bool

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}

	clock  func() time.Time
	logger loggers.Logger
}

func NewScheduler(engine insights.InsightsEngine, outlets OutletLister, batchSize int, batchDelay time.Duration, logger loggers.Logger) *Scheduler {
	if batchSize <= 0 {
		batchSize = 10
	}
	return &Scheduler{
		engine:     engine,
		outlets:    outlets,
		batchSize:  batchSize,
		batchDelay: batchDelay,
		stopCh:     make(chan struct{}),
		clock:      func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

// Start spawns one cadence loop per time range.
func (s *Scheduler) Start(ctx context.Context) {
	cadences := []struct {
		timeRange models.TimeRange
		interval  time.Duration
	}{
		{models.Range7d, cadence7d},
		{models.Range30d, cadence30d},
		{models.Range90d, cadence90d},
	}

	for _, cadence := range cadences {
		timeRange, interval := cadence.timeRange, cadence.interval
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.runCadence(ctx, timeRange, interval)
		}()
	}
}

func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *Scheduler) runCadence(ctx context.Context, timeRange models.TimeRange, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.RunFleet(ctx, timeRange)
		}
	}
}

// RunFleet recomputes insights for every active outlet. Per-outlet failures
// are absorbed by the engine (recorded in the summary row), so one bad outlet
// never aborts the run.
func (s *Scheduler) RunFleet(ctx context.Context, timeRange models.TimeRange) {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Info().
			Str(loggers.FieldTimeRange, string(timeRange)).
			Msg("fleet run already in progress, skipping")
		metricFleetRunsSkippedTotal.WithLabelValues(string(timeRange)).Inc()
		return
	}
	defer s.running.Store(false)

	started := s.clock()
	outletIDs, err := s.outlets.ActiveOutletIDs(ctx, started.Add(-activityLookback))
	if err != nil {
		s.logger.Error().
			Err(err).
			Str(loggers.FieldTimeRange, string(timeRange)).
			Msg("active outlet discovery failed, aborting fleet run")
		metricFleetRunsTotal.WithLabelValues(string(timeRange), "failed").Inc()
		return
	}

	for batchStart := 0; batchStart < len(outletIDs); batchStart += s.batchSize {
		batchEnd := batchStart + s.batchSize
		if batchEnd > len(outletIDs) {
			batchEnd = len(outletIDs)
		}
		s.computeBatch(ctx, outletIDs[batchStart:batchEnd], timeRange)

		if batchEnd < len(outletIDs) && s.batchDelay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-s.stopCh:
				return
			case <-time.After(s.batchDelay):
			}
		}
	}

	s.logger.Info().
		Str(loggers.FieldTimeRange, string(timeRange)).
		Int("outlets", len(outletIDs)).
		Int64(loggers.FieldDuration, s.clock().Sub(started).Milliseconds()).
		Msg("fleet run completed")
	metricFleetRunsTotal.WithLabelValues(string(timeRange), "completed").Inc()
}

// computeBatch runs one batch of outlets in parallel.
func (s *Scheduler) computeBatch(ctx context.Context, outletIDs []string, timeRange models.TimeRange) {
	var wg sync.WaitGroup
	for _, outletID := range outletIDs {
		outletID := outletID
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.engine.ComputeForOutlet(ctx, outletID, timeRange); err != nil {
				// Summary-store failures only; computation failures are
				// already recorded in the summary row by the engine.
				s.logger.Error().
					Err(err).
					Str(loggers.FieldOutletID, outletID).
					Str(loggers.FieldTimeRange, string(timeRange)).
					Msg("failed to store outlet summary")
			}
		}()
	}
	wg.Wait()
}
