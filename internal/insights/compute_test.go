package insights

import (
	"fmt"
	"testing"
	"time"

	"outlet-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visitEvent(sessionID string, device models.DeviceType, ts time.Time) models.StoredEvent {
	return models.StoredEvent{
		EventType:  "outlet_visit",
		Category:   models.CategoryOutlet,
		SessionID:  sessionID,
		DeviceType: device,
		Timestamp:  ts,
	}
}

func TestComputeBasic_CountsAndUniqueVisitors(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	outletEvents := []models.StoredEvent{
		visitEvent("s1", models.DeviceMobile, ts),
		visitEvent("s1", models.DeviceMobile, ts),
		visitEvent("s2", models.DeviceDesktop, ts),
		{EventType: "menu_view", SessionID: "s2", DeviceType: models.DeviceDesktop, Timestamp: ts},
		{EventType: "profile_view", SessionID: "s3", DeviceType: models.DeviceMobile, Timestamp: ts},
	}

	basic := computeBasic(outletEvents, nil)

	assert.Equal(t, int64(3), basic.TotalVisits)
	assert.Equal(t, int64(1), basic.MenuViews)
	assert.Equal(t, int64(1), basic.ProfileViews)
	assert.Equal(t, int64(3), basic.UniqueVisitors)

	require.Contains(t, basic.DeviceBreakdown, "mobile")
	require.Contains(t, basic.DeviceBreakdown, "desktop")
	assert.Equal(t, int64(3), basic.DeviceBreakdown["mobile"].Count)
	assert.Equal(t, float64(60), basic.DeviceBreakdown["mobile"].Pct)
	assert.Equal(t, int64(2), basic.DeviceBreakdown["desktop"].Count)
	assert.Equal(t, float64(40), basic.DeviceBreakdown["desktop"].Pct)

	assert.Nil(t, basic.TopFoodItem)
}

func TestComputeBasic_TopFoodItemByViews(t *testing.T) {
	t.Parallel()

	foodEvents := []models.StoredEvent{
		{EventType: "item_view", FoodItemID: "item_a"},
		{EventType: "item_view", FoodItemID: "item_b"},
		{EventType: "item_view", FoodItemID: "item_b"},
		{EventType: "order_created", FoodItemID: "item_b"},
	}

	basic := computeBasic(nil, foodEvents)

	require.NotNil(t, basic.TopFoodItem)
	assert.Equal(t, "item_b", basic.TopFoodItem.FoodItemID)
	assert.Equal(t, int64(2), basic.TopFoodItem.Views)
	assert.Equal(t, int64(1), basic.TopFoodItem.Orders)
	assert.Equal(t, float64(50), basic.TopFoodItem.ConversionPct)
}

func TestComputeBasic_EmptyInput(t *testing.T) {
	t.Parallel()

	basic := computeBasic(nil, nil)
	assert.Equal(t, int64(0), basic.TotalVisits)
	assert.Equal(t, int64(0), basic.UniqueVisitors)
	assert.Empty(t, basic.DeviceBreakdown)
	assert.Nil(t, basic.TopFoodItem)
}

func TestComputePremium_Funnel(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	outletEvents := []models.StoredEvent{
		visitEvent("s1", models.DeviceMobile, ts),
		visitEvent("s2", models.DeviceMobile, ts),
		visitEvent("s3", models.DeviceMobile, ts),
		visitEvent("s4", models.DeviceMobile, ts),
		{EventType: "profile_view", SessionID: "s1", Timestamp: ts},
		{EventType: "profile_view", SessionID: "s2", Timestamp: ts},
		{EventType: "menu_view", SessionID: "s1", Timestamp: ts},
	}

	premium := computePremium(outletEvents, nil, nil, nil, nil)

	assert.Equal(t, int64(4), premium.Funnel.Visits)
	assert.Equal(t, int64(2), premium.Funnel.ProfileViews)
	assert.Equal(t, int64(1), premium.Funnel.MenuViews)
	assert.Equal(t, float64(50), premium.Funnel.VisitToProfilePct)
	assert.Equal(t, float64(50), premium.Funnel.ProfileToMenuPct)
}

func TestComputePremium_NewVsReturningSessions(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	outletEvents := []models.StoredEvent{
		visitEvent("s_old", models.DeviceMobile, ts),
		visitEvent("s_new_1", models.DeviceMobile, ts),
		visitEvent("s_new_2", models.DeviceMobile, ts),
	}
	priorSessions := map[string]struct{}{"s_old": {}, "s_gone": {}}

	premium := computePremium(outletEvents, nil, nil, nil, priorSessions)

	assert.Equal(t, int64(2), premium.NewSessions)
	assert.Equal(t, int64(1), premium.ReturningSessions)
}

func TestComputePremium_TopSourcesAndEntryPages(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	outletEvents := []models.StoredEvent{
		{EventType: "outlet_visit", SessionID: "s1", Source: "instagram", EntryPage: "/o/1", Timestamp: ts},
		{EventType: "outlet_visit", SessionID: "s2", Source: "instagram", EntryPage: "/o/1", Timestamp: ts},
		{EventType: "outlet_visit", SessionID: "s3", Source: "google", Page: "/menu", Timestamp: ts},
	}

	premium := computePremium(outletEvents, nil, nil, nil, nil)

	require.Len(t, premium.TopSources, 2)
	assert.Equal(t, "instagram", premium.TopSources[0].Key)
	assert.Equal(t, int64(2), premium.TopSources[0].Count)
	assert.Equal(t, 66.67, premium.TopSources[0].Pct)
	assert.Equal(t, "google", premium.TopSources[1].Key)

	// entry page falls back to the event page when unset
	require.Len(t, premium.TopEntryPages, 2)
	assert.Equal(t, "/o/1", premium.TopEntryPages[0].Key)
	assert.Equal(t, "/menu", premium.TopEntryPages[1].Key)
}

func TestComputePremium_TopFoodItemsLimitedToTen(t *testing.T) {
	t.Parallel()

	var foodEvents []models.StoredEvent
	for i := 0; i < 15; i++ {
		id := fmt.Sprintf("item_%02d", i)
		// item_00 gets the most views, item_14 the fewest
		for v := 0; v < 15-i; v++ {
			foodEvents = append(foodEvents, models.StoredEvent{EventType: "item_view", FoodItemID: id})
		}
	}

	premium := computePremium(nil, foodEvents, nil, nil, nil)

	require.Len(t, premium.TopFoodItems, 10)
	assert.Equal(t, "item_00", premium.TopFoodItems[0].FoodItemID)
	assert.Equal(t, int64(15), premium.TopFoodItems[0].Views)
	assert.Equal(t, "item_09", premium.TopFoodItems[9].FoodItemID)
}

func TestComputePremium_OfferAndPromotionRollups(t *testing.T) {
	t.Parallel()

	promoEvents := []models.StoredEvent{
		{EventType: "promo_click", PromotionID: "p1"},
		{EventType: "promo_click", PromotionID: "p1"},
		{EventType: "promo_impression", PromotionID: "p2"},
	}
	offerEvents := []models.StoredEvent{
		{EventType: "offer_redeem", OfferID: "o1"},
	}

	premium := computePremium(nil, nil, promoEvents, offerEvents, nil)

	assert.Equal(t, int64(3), premium.PromotionPerformance.TotalEvents)
	require.NotNil(t, premium.PromotionPerformance.TopEntity)
	assert.Equal(t, "p1", premium.PromotionPerformance.TopEntity.ID)
	assert.Equal(t, int64(2), premium.PromotionPerformance.TopEntity.Count)

	assert.Equal(t, int64(1), premium.OfferPerformance.TotalEvents)
	require.NotNil(t, premium.OfferPerformance.TopEntity)
	assert.Equal(t, "o1", premium.OfferPerformance.TopEntity.ID)
}

func TestComputePremium_DailySeriesUsesBusinessDays(t *testing.T) {
	t.Parallel()

	// 20:00 UTC on the 15th is already the 16th in IST
	outletEvents := []models.StoredEvent{
		visitEvent("s1", models.DeviceMobile, time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)),
		visitEvent("s2", models.DeviceMobile, time.Date(2026, 3, 15, 20, 0, 0, 0, time.UTC)),
		visitEvent("s3", models.DeviceMobile, time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)),
	}

	premium := computePremium(outletEvents, nil, nil, nil, nil)

	require.Len(t, premium.DailySeries, 2)
	assert.Equal(t, "2026-03-15", premium.DailySeries[0].Date)
	assert.Equal(t, int64(1), premium.DailySeries[0].Visits)
	assert.Equal(t, "2026-03-16", premium.DailySeries[1].Date)
	assert.Equal(t, int64(2), premium.DailySeries[1].Visits)
}

func TestComputePremium_PeakHoursInISTSlots(t *testing.T) {
	t.Parallel()

	// 10:30 UTC = 16:00 IST
	outletEvents := []models.StoredEvent{
		visitEvent("s1", models.DeviceMobile, time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)),
		visitEvent("s2", models.DeviceMobile, time.Date(2026, 3, 15, 10, 45, 0, 0, time.UTC)),
	}

	premium := computePremium(outletEvents, nil, nil, nil, nil)

	assert.Equal(t, int64(2), premium.PeakHours[16])
	var total int64
	for _, count := range premium.PeakHours {
		total += count
	}
	assert.Equal(t, int64(2), total)
}

func TestComputePremium_TopLocations(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	outletEvents := []models.StoredEvent{
		{EventType: "outlet_visit", SessionID: "s1", City: "Mumbai", Country: "IN", Timestamp: ts},
		{EventType: "outlet_visit", SessionID: "s2", City: "Mumbai", Country: "IN", Timestamp: ts},
		{EventType: "outlet_visit", SessionID: "s3", City: "Pune", Country: "IN", Timestamp: ts},
		{EventType: "outlet_visit", SessionID: "s4", Timestamp: ts},
	}

	premium := computePremium(outletEvents, nil, nil, nil, nil)

	require.Len(t, premium.TopLocations, 2)
	assert.Equal(t, models.GeoStat{City: "Mumbai", Country: "IN", Count: 2}, premium.TopLocations[0])
	assert.Equal(t, models.GeoStat{City: "Pune", Country: "IN", Count: 1}, premium.TopLocations[1])
}
