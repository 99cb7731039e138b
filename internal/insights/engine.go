package insights

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"outlet-analytics/internal/models"
	"outlet-analytics/internal/shared/loggers"
	"outlet-analytics/internal/stores"
)

// EventReader is the slice of the event store the engine needs. Implemented
// by the mongo event store.
type EventReader interface {
	OutletEvents(ctx context.Context, outletID string, from, to time.Time) ([]models.StoredEvent, error)
	FoodItemEvents(ctx context.Context, outletID string, from, to time.Time) ([]models.StoredEvent, error)
	PromotionEvents(ctx context.Context, outletID string, from, to time.Time) ([]models.StoredEvent, error)
	OfferEvents(ctx context.Context, outletID string, from, to time.Time) ([]models.StoredEvent, error)
	SessionsSeenBefore(ctx context.Context, outletID string, before time.Time) (map[string]struct{}, error)
}

//go:generate mockgen -source=engine.go -destination=./mocks/engine_mock.go -package=mocks
type InsightsEngine interface {
	// ComputeForOutlet computes and stores the summary for one outlet and
	// time range. A computation failure is recorded in the summary row
	// (status=failed) instead of being returned, so one bad outlet cannot
	// abort a fleet-wide run; only a summary-store failure is an error.
	ComputeForOutlet(ctx context.Context, outletID string, timeRange models.TimeRange) (*models.InsightsSummary, error)
}

type insightsEngine struct {
	events    EventReader
	summaries stores.SummaryStore
	clock     func() time.Time
}

func NewInsightsEngine(events EventReader, summaries stores.SummaryStore) InsightsEngine {
	return &insightsEngine{
		events:    events,
		summaries: summaries,
		clock:     func() time.Time { return time.Now().UTC() },
	}
}

func (e *insightsEngine) ComputeForOutlet(ctx context.Context, outletID string, timeRange models.TimeRange) (*models.InsightsSummary, error) {
	logger := loggers.Ctx(ctx)
	started := e.clock()
	periodStart, periodEnd := timeRange.Window(started)

	summary := &models.InsightsSummary{
		OutletID:    outletID,
		TimeRange:   timeRange,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		ComputedAt:  started,
	}

	basic, premium, trends, err := e.computeSafe(ctx, outletID, periodStart, periodEnd)
	if err != nil {
		summary.Status = models.SummaryStatusFailed
		summary.ErrorMessage = err.Error()
		logger.Error().
			Err(err).
			Str(loggers.FieldOutletID, outletID).
			Str(loggers.FieldTimeRange, string(timeRange)).
			Msg("insights computation failed")
		metricComputationsTotal.WithLabelValues(string(timeRange), models.SummaryStatusFailed).Inc()
	} else {
		summary.Status = models.SummaryStatusSuccess
		summary.Basic = basic
		summary.PremiumData = premium
		summary.Trends = trends
		metricComputationsTotal.WithLabelValues(string(timeRange), models.SummaryStatusSuccess).Inc()
	}

	elapsed := e.clock().Sub(started)
	summary.ComputationDurationMS = elapsed.Milliseconds()
	metricComputationDuration.WithLabelValues(string(timeRange)).Observe(elapsed.Seconds())

	if err := e.summaries.Upsert(ctx, summary); err != nil {
		return nil, errInternalSummaryStoreFailed(err)
	}

	return summary, nil
}

// computeSafe isolates the computation: any panic becomes an error recorded
// in the summary row.
func (e *insightsEngine) computeSafe(ctx context.Context, outletID string, start, end time.Time) (basic models.BasicMetrics, premium *models.PremiumMetrics, trends models.Trends, err error) {
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("insights computation panic recovered: %v", r)
			err = fmt.Errorf("computation panic: %v", r)
		}
	}()
	return e.compute(ctx, outletID, start, end)
}

func (e *insightsEngine) compute(ctx context.Context, outletID string, start, end time.Time) (models.BasicMetrics, *models.PremiumMetrics, models.Trends, error) {
	var zero models.BasicMetrics

	prevStart, prevEnd := models.PreviousWindow(start, end)

	outletEvents, err := e.events.OutletEvents(ctx, outletID, start, end)
	if err != nil {
		return zero, nil, models.Trends{}, errInternalEventQueryFailed(err)
	}
	prevOutletEvents, err := e.events.OutletEvents(ctx, outletID, prevStart, prevEnd)
	if err != nil {
		return zero, nil, models.Trends{}, errInternalEventQueryFailed(err)
	}
	foodEvents, err := e.events.FoodItemEvents(ctx, outletID, start, end)
	if err != nil {
		return zero, nil, models.Trends{}, errInternalEventQueryFailed(err)
	}
	promoEvents, err := e.events.PromotionEvents(ctx, outletID, start, end)
	if err != nil {
		return zero, nil, models.Trends{}, errInternalEventQueryFailed(err)
	}
	offerEvents, err := e.events.OfferEvents(ctx, outletID, start, end)
	if err != nil {
		return zero, nil, models.Trends{}, errInternalEventQueryFailed(err)
	}
	priorSessions, err := e.events.SessionsSeenBefore(ctx, outletID, start)
	if err != nil {
		return zero, nil, models.Trends{}, errInternalEventQueryFailed(err)
	}

	basic := computeBasic(outletEvents, foodEvents)
	prevBasic := computeBasic(prevOutletEvents, nil)
	trends := computeTrends(basic, prevBasic)
	premium := computePremium(outletEvents, foodEvents, promoEvents, offerEvents, priorSessions)

	return basic, premium, trends, nil
}
