package ingestors

import (
	"context"
	"fmt"

	"outlet-analytics/internal/models"
	"outlet-analytics/internal/shared/loggers"
	"outlet-analytics/internal/stores"
)

// ProcessResult is the aggregate outcome of one batch. Failed increments only
// when neither the primary nor the fallback persistence path could complete,
// which is the one case that should alert operators.
type ProcessResult struct {
	Success    int
	Failed     int
	Duplicates int

	FoodItems  int
	Outlets    int
	Promotions int
	Offers     int
	Sessions   int
	Unknown    int

	Errors []string
}

//go:generate mockgen -source=event_processor.go -destination=./mocks/event_processor_mock.go -package=mocks
type EventProcessor interface {
	ProcessEvents(ctx context.Context, events []*models.ParsedEvent) *ProcessResult
}

type eventProcessor struct {
	dedup    *Deduplicator
	events   stores.EventStore
	fallback stores.FallbackStore
	counters *CounterUpdater
}

func NewEventProcessor(dedup *Deduplicator, events stores.EventStore, fallback stores.FallbackStore, counters *CounterUpdater) EventProcessor {
	return &eventProcessor{
		dedup:    dedup,
		events:   events,
		fallback: fallback,
		counters: counters,
	}
}

// ProcessEvents handles events in array order so that duplicates submitted
// within the same batch collapse to one processed result.
func (p *eventProcessor) ProcessEvents(ctx context.Context, events []*models.ParsedEvent) *ProcessResult {
	logger := loggers.Ctx(ctx)
	result := &ProcessResult{}

	for _, event := range events {
		if p.dedup.IsDuplicate(event.EventHash) {
			result.Duplicates++
			logger.Debug().
				Str(loggers.FieldEventHash, event.EventHash).
				Str(loggers.FieldEventType, event.Type).
				Msg("skipping duplicate event")
			metricEventsProcessedTotal.WithLabelValues(outcomeDuplicate).Inc()
			continue
		}

		if err := p.processEvent(ctx, event, result); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, err.Error())
			logger.Error().
				Err(err).
				Str(loggers.FieldEventType, event.Type).
				Msg("event lost: both primary and fallback persistence failed")
			metricEventsProcessedTotal.WithLabelValues(outcomeFailed).Inc()
			continue
		}

		result.Success++
		p.dedup.MarkProcessed(event.EventHash)
	}

	return result
}

func (p *eventProcessor) processEvent(ctx context.Context, event *models.ParsedEvent, result *ProcessResult) error {
	logger := loggers.Ctx(ctx)

	if event.EventCategory == models.CategoryUnknown {
		// Unknown categories are accepted and no-op by design.
		result.Unknown++
		logger.Debug().
			Str(loggers.FieldEventType, event.Type).
			Msg("unknown event category, no-op")
		metricEventsProcessedTotal.WithLabelValues(outcomeUnknown).Inc()
		return nil
	}

	stored := buildStoredEvent(event)

	if !referencedIDsValid(stored) {
		// Malformed references are not retryable: dropped by design and
		// counted as success, with no fallback write.
		logger.Info().
			Str(loggers.FieldEventType, event.Type).
			Str(loggers.FieldCategory, string(event.EventCategory)).
			Msg("dropping event with malformed referenced ids")
		metricEventsProcessedTotal.WithLabelValues(outcomeDropped).Inc()
		return nil
	}

	if err := p.events.InsertEvent(ctx, stored); err != nil {
		reason := fmt.Sprintf("%s_db_error: %v", event.EventCategory, err)
		if fbErr := p.fallback.WriteEvent(ctx, stored, event.RawPayload, reason); fbErr != nil {
			return fmt.Errorf("primary write failed (%v) and fallback write failed: %w", err, fbErr)
		}
		logger.Warn().
			Err(err).
			Str(loggers.FieldCategory, string(event.EventCategory)).
			Msg("primary write failed, event saved to fallback store")
		metricEventsProcessedTotal.WithLabelValues(outcomeFallback).Inc()
		metricFallbackWrittenTotal.WithLabelValues(string(event.EventCategory)).Inc()
		p.countCategory(event.EventCategory, result)
		return nil
	}

	p.enqueueCounterUpdates(stored)
	metricEventsProcessedTotal.WithLabelValues(outcomeSuccess).Inc()
	p.countCategory(event.EventCategory, result)
	return nil
}

func (p *eventProcessor) countCategory(category models.EventCategory, result *ProcessResult) {
	switch category {
	case models.CategoryFoodItem:
		result.FoodItems++
	case models.CategoryOutlet:
		result.Outlets++
	case models.CategoryPromotion:
		result.Promotions++
	case models.CategoryOffer:
		result.Offers++
	case models.CategorySessionLifecycle:
		result.Sessions++
	}
}

// buildStoredEvent flattens a parsed event and its typed payload into the
// primary-store document shape.
func buildStoredEvent(event *models.ParsedEvent) *models.StoredEvent {
	stored := &models.StoredEvent{
		EventHash:  event.EventHash,
		EventType:  event.Type,
		Category:   event.EventCategory,
		OutletID:   event.OutletID,
		SessionID:  event.SessionID,
		UserID:     event.UserID,
		DeviceType: event.DeviceType,
		Platform:   event.Platform,
		Page:       event.Page,
		Timestamp:  event.Timestamp,
		ReceivedAt: event.ReceivedAt,
	}

	switch payload := event.Payload.(type) {
	case models.FoodItemPayload:
		stored.FoodItemID = payload.FoodItemID
		if stored.OutletID == "" {
			stored.OutletID = payload.OutletID
		}
	case models.OutletPayload:
		if stored.OutletID == "" {
			stored.OutletID = payload.OutletID
		}
		stored.Source = payload.Source
		stored.EntryPage = payload.EntryPage
		stored.City = payload.City
		stored.Country = payload.Country
	case models.PromotionPayload:
		stored.PromotionID = payload.PromotionID
		if stored.OutletID == "" {
			stored.OutletID = payload.OutletID
		}
	case models.OfferPayload:
		stored.OfferID = payload.OfferID
		if stored.OutletID == "" {
			stored.OutletID = payload.OutletID
		}
	case models.SessionPayload:
		if stored.OutletID == "" {
			stored.OutletID = payload.OutletID
		}
	}

	return stored
}

// referencedIDsValid checks the identifiers a category write depends on.
// Optional references that are present but malformed are cleared instead of
// failing the event.
func referencedIDsValid(stored *models.StoredEvent) bool {
	switch stored.Category {
	case models.CategoryFoodItem:
		if !stores.ValidEntityID(stored.FoodItemID) || !stores.ValidEntityID(stored.OutletID) {
			return false
		}
	case models.CategoryOutlet:
		if !stores.ValidEntityID(stored.OutletID) {
			return false
		}
	case models.CategoryPromotion:
		if !stores.ValidEntityID(stored.PromotionID) {
			return false
		}
		if stored.OutletID != "" && !stores.ValidEntityID(stored.OutletID) {
			stored.OutletID = ""
		}
	case models.CategoryOffer:
		if !stores.ValidEntityID(stored.OfferID) {
			return false
		}
		if stored.OutletID != "" && !stores.ValidEntityID(stored.OutletID) {
			stored.OutletID = ""
		}
	case models.CategorySessionLifecycle:
		if stored.OutletID != "" && !stores.ValidEntityID(stored.OutletID) {
			stored.OutletID = ""
		}
	}
	return true
}

// counterFieldsFor maps event types to the $inc fields on their aggregate
// document. Types without an entry issue no counter update.
var counterFieldsFor = map[string]string{
	"item_view":        "stats.views",
	"item_impression":  "stats.impressions",
	"add_to_cart":      "stats.cart_adds",
	"order_created":    "stats.orders",
	"promo_impression": "stats.impressions",
	"promo_click":      "stats.clicks",
	"offer_view":       "stats.views",
	"offer_click":      "stats.clicks",
	"offer_redeem":     "stats.redemptions",
}

func (p *eventProcessor) enqueueCounterUpdates(stored *models.StoredEvent) {
	field, ok := counterFieldsFor[stored.EventType]
	if !ok {
		return
	}

	var collection, entityID string
	switch stored.Category {
	case models.CategoryFoodItem:
		collection, entityID = stores.CollFoodItems, stored.FoodItemID
	case models.CategoryPromotion:
		collection, entityID = stores.CollPromotions, stored.PromotionID
	case models.CategoryOffer:
		collection, entityID = stores.CollOffers, stored.OfferID
	default:
		return
	}

	p.counters.Enqueue(models.CounterUpdate{
		Collection: collection,
		EntityID:   entityID,
		Fields:     map[string]int64{field: 1},
	})
}
