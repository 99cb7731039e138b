package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"outlet-analytics/internal/shared/loggers"
	"outlet-analytics/internal/stores"
)

// Reconciler periodically sweeps the fallback store and re-drives each
// record through the primary store, so overflow records do not accumulate
// into permanent data loss. Records that still fail are re-appended for the
// next sweep (at-least-once; duplicates are tolerated because replayed
// events keep their original event hash).
type Reconciler struct {
	fallback stores.FallbackStore
	events   stores.EventStore
	interval time.Duration

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewReconciler(fallback stores.FallbackStore, events stores.EventStore, interval time.Duration, logger loggers.Logger) *Reconciler {
	return &Reconciler{
		fallback: fallback,
		events:   events,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-r.stopCh:
				return
			case <-ticker.C:
				r.Sweep(ctx)
			}
		}
	}()
}

func (r *Reconciler) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

// Sweep replays the currently accumulated fallback records.
func (r *Reconciler) Sweep(ctx context.Context) {
	records, err := r.fallback.Collect(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("fallback sweep collect failed")
		return
	}
	if len(records) == 0 {
		return
	}

	var replayed, requeued int
	for _, record := range records {
		event := record.Event
		if err := r.events.InsertEvent(ctx, &event); err != nil {
			reason := fmt.Sprintf("reconcile_retry: %v", err)
			if fbErr := r.fallback.WriteEvent(ctx, &event, record.Payload, reason); fbErr != nil {
				r.logger.Error().
					Err(fbErr).
					Str(loggers.FieldEventHash, event.EventHash).
					Msg("failed to requeue fallback record")
			}
			requeued++
			continue
		}
		replayed++
	}

	if err := r.fallback.Discard(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to discard swept fallback file")
	}

	r.logger.Info().
		Int("replayed", replayed).
		Int("requeued", requeued).
		Msg("fallback sweep completed")
	metricFallbackReplayedTotal.Add(float64(replayed))
	metricFallbackRequeuedTotal.Add(float64(requeued))
}
