package ingestors

import (
	"context"
	"errors"
	"testing"
	"time"

	"outlet-analytics/internal/models"
	"outlet-analytics/internal/shared/loggers"
	"outlet-analytics/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	validOutletID   = "653a1b2c3d4e5f6a7b8c9d0e"
	validFoodItemID = "653a1b2c3d4e5f6a7b8c9d0f"
	validPromoID    = "653a1b2c3d4e5f6a7b8c9d10"
	validOfferID    = "653a1b2c3d4e5f6a7b8c9d11"
)

type processorFixture struct {
	processor EventProcessor
	dedup     *Deduplicator
	events    *mocks.MockEventStore
	fallback  *mocks.MockFallbackStore
	counters  *CounterUpdater
}

func newProcessorFixture(t *testing.T) *processorFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventStore(ctrl)
	fallback := mocks.NewMockFallbackStore(ctrl)

	logger, err := loggers.New("error")
	require.NoError(t, err)

	dedup := NewDeduplicator(100)
	counters := NewCounterUpdater(events, logger)

	return &processorFixture{
		processor: NewEventProcessor(dedup, events, fallback, counters),
		dedup:     dedup,
		events:    events,
		fallback:  fallback,
		counters:  counters,
	}
}

func foodItemEvent(hash string) *models.ParsedEvent {
	return &models.ParsedEvent{
		Type:          "item_view",
		EventCategory: models.CategoryFoodItem,
		Timestamp:     time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
		SessionID:     "s_1",
		OutletID:      validOutletID,
		RawPayload:    map[string]any{"food_item_id": validFoodItemID},
		Payload:       models.FoodItemPayload{FoodItemID: validFoodItemID, OutletID: validOutletID},
		EventHash:     hash,
		IsValid:       true,
	}
}

func outletEvent(hash string) *models.ParsedEvent {
	return &models.ParsedEvent{
		Type:          "outlet_visit",
		EventCategory: models.CategoryOutlet,
		Timestamp:     time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
		SessionID:     "s_1",
		OutletID:      validOutletID,
		RawPayload:    map[string]any{},
		Payload:       models.OutletPayload{OutletID: validOutletID},
		EventHash:     hash,
		IsValid:       true,
	}
}

func TestProcessEvents_FoodItemEventPersisted(t *testing.T) {
	t.Parallel()

	f := newProcessorFixture(t)
	ctx := context.Background()

	f.events.EXPECT().
		InsertEvent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, stored *models.StoredEvent) error {
			assert.Equal(t, "item_view", stored.EventType)
			assert.Equal(t, models.CategoryFoodItem, stored.Category)
			assert.Equal(t, validFoodItemID, stored.FoodItemID)
			assert.Equal(t, validOutletID, stored.OutletID)
			return nil
		})

	result := f.processor.ProcessEvents(ctx, []*models.ParsedEvent{foodItemEvent("h1")})

	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 0, result.Duplicates)
	assert.Equal(t, 1, result.FoodItems)
	assert.Empty(t, result.Errors)

	// item_view issues a views increment on the food item document
	assert.Len(t, f.counters.ch, 1)
	update := <-f.counters.ch
	assert.Equal(t, "food_items", update.Collection)
	assert.Equal(t, validFoodItemID, update.EntityID)
	assert.Equal(t, map[string]int64{"stats.views": 1}, update.Fields)
}

func TestProcessEvents_UnknownCategoryIsSuccessNoOp(t *testing.T) {
	t.Parallel()

	f := newProcessorFixture(t)
	event := &models.ParsedEvent{
		Type:          "mystery_event",
		EventCategory: models.CategoryUnknown,
		EventHash:     "h1",
	}

	// no store calls expected
	result := f.processor.ProcessEvents(context.Background(), []*models.ParsedEvent{event})

	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 1, result.Unknown)
	assert.Equal(t, 0, result.Failed)
}

func TestProcessEvents_MalformedIDsDroppedByDesign(t *testing.T) {
	t.Parallel()

	f := newProcessorFixture(t)

	event := foodItemEvent("h1")
	event.Payload = models.FoodItemPayload{FoodItemID: "not-an-object-id", OutletID: validOutletID}

	// dropped: no insert, no fallback
	result := f.processor.ProcessEvents(context.Background(), []*models.ParsedEvent{event})

	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 0, result.FoodItems)
	assert.Empty(t, result.Errors)
}

func TestProcessEvents_PrimaryFailureFallsBack(t *testing.T) {
	t.Parallel()

	f := newProcessorFixture(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	f.events.EXPECT().InsertEvent(ctx, gomock.Any()).Return(dbErr)
	f.fallback.EXPECT().
		WriteEvent(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, stored *models.StoredEvent, _ map[string]any, reason string) error {
			assert.Equal(t, "outlet_db_error: connection reset", reason)
			assert.Equal(t, validOutletID, stored.OutletID)
			return nil
		})

	result := f.processor.ProcessEvents(ctx, []*models.ParsedEvent{outletEvent("h1")})

	// fallback write still counts as success
	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 1, result.Outlets)
	assert.True(t, f.dedup.IsDuplicate("h1"))
}

func TestProcessEvents_FailedOnlyWhenFallbackAlsoFails(t *testing.T) {
	t.Parallel()

	f := newProcessorFixture(t)
	ctx := context.Background()

	f.events.EXPECT().InsertEvent(ctx, gomock.Any()).Return(errors.New("primary down"))
	f.fallback.EXPECT().WriteEvent(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	result := f.processor.ProcessEvents(ctx, []*models.ParsedEvent{outletEvent("h1")})

	assert.Equal(t, 0, result.Success)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "primary down")
	assert.Contains(t, result.Errors[0], "disk full")

	// not marked processed, so a retry is not treated as a duplicate
	assert.False(t, f.dedup.IsDuplicate("h1"))
}

func TestProcessEvents_DuplicateWithinBatch(t *testing.T) {
	t.Parallel()

	f := newProcessorFixture(t)
	ctx := context.Background()

	f.events.EXPECT().InsertEvent(ctx, gomock.Any()).Return(nil).Times(1)

	result := f.processor.ProcessEvents(ctx, []*models.ParsedEvent{outletEvent("h1"), outletEvent("h1")})

	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 1, result.Duplicates)
	assert.Equal(t, 1, result.Outlets)
}

func TestProcessEvents_DuplicateAcrossBatches(t *testing.T) {
	t.Parallel()

	f := newProcessorFixture(t)
	ctx := context.Background()

	f.events.EXPECT().InsertEvent(ctx, gomock.Any()).Return(nil).Times(1)

	first := f.processor.ProcessEvents(ctx, []*models.ParsedEvent{outletEvent("h1")})
	second := f.processor.ProcessEvents(ctx, []*models.ParsedEvent{outletEvent("h1")})

	assert.Equal(t, 1, first.Success)
	assert.Equal(t, 0, second.Success)
	assert.Equal(t, 1, second.Duplicates)
}

func TestProcessEvents_OptionalMalformedOutletIDCleared(t *testing.T) {
	t.Parallel()

	f := newProcessorFixture(t)
	ctx := context.Background()

	event := &models.ParsedEvent{
		Type:          "promo_click",
		EventCategory: models.CategoryPromotion,
		SessionID:     "s_1",
		OutletID:      "garbage-id",
		RawPayload:    map[string]any{},
		Payload:       models.PromotionPayload{PromotionID: validPromoID},
		EventHash:     "h1",
	}

	f.events.EXPECT().
		InsertEvent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, stored *models.StoredEvent) error {
			assert.Equal(t, validPromoID, stored.PromotionID)
			assert.Equal(t, "", stored.OutletID)
			return nil
		})

	result := f.processor.ProcessEvents(ctx, []*models.ParsedEvent{event})

	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 1, result.Promotions)
}

func TestProcessEvents_MixedBatchOrderPreserved(t *testing.T) {
	t.Parallel()

	f := newProcessorFixture(t)
	ctx := context.Background()

	f.events.EXPECT().InsertEvent(ctx, gomock.Any()).Return(nil).Times(2)

	events := []*models.ParsedEvent{
		foodItemEvent("h1"),
		{Type: "mystery_event", EventCategory: models.CategoryUnknown, EventHash: "h2"},
		outletEvent("h3"),
	}
	result := f.processor.ProcessEvents(ctx, events)

	assert.Equal(t, 3, result.Success)
	assert.Equal(t, 1, result.FoodItems)
	assert.Equal(t, 1, result.Outlets)
	assert.Equal(t, 1, result.Unknown)
}
