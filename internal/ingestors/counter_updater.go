package ingestors

import (
	"context"
	"sync"
	"time"

	"outlet-analytics/internal/models"
	"outlet-analytics/internal/shared/loggers"
	"outlet-analytics/internal/stores"
)

const (
	counterQueueSize     = 1024
	counterUpdateTimeout = 5 * time.Second
)

// CounterUpdater applies best-effort counter increments on denormalized
// aggregate documents as a detached background task. Failures are logged and
// counted, never surfaced: a broken counter must not make the underlying
// event write look failed.
type CounterUpdater struct {
	store stores.EventStore
	ch    chan models.CounterUpdate

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewCounterUpdater(store stores.EventStore, logger loggers.Logger) *CounterUpdater {
	return &CounterUpdater{
		store:  store,
		ch:     make(chan models.CounterUpdate, counterQueueSize),
		stopCh: make(chan struct{}),
		logger: logger,
	}
}

func (c *CounterUpdater) Start(ctx context.Context) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.run(ctx)
	}()
}

func (c *CounterUpdater) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
	c.wg.Wait()
}

// Enqueue never blocks the ingestion path; when the queue is full the update
// is dropped and counted.
func (c *CounterUpdater) Enqueue(update models.CounterUpdate) {
	select {
	case c.ch <- update:
	default:
		c.logger.Warn().
			Str("collection", update.Collection).
			Msg("counter update queue full, dropping update")
		metricCounterUpdateDroppedTotal.WithLabelValues(update.Collection).Inc()
	}
}

func (c *CounterUpdater) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stopCh:
			return
		case update := <-c.ch:
			c.apply(update)
		}
	}
}

func (c *CounterUpdater) apply(update models.CounterUpdate) {
	// Detached from the request context: the increment outlives the
	// ingestion call that produced it.
	ctx, cancel := context.WithTimeout(context.Background(), counterUpdateTimeout)
	defer cancel()

	if err := c.store.IncrementCounters(ctx, update); err != nil {
		c.logger.Warn().
			Err(err).
			Str("collection", update.Collection).
			Msg("counter update failed")
		metricCounterUpdateFailedTotal.WithLabelValues(update.Collection).Inc()
	}
}
