package models

import "time"

const (
	SummaryStatusSuccess = "success"
	SummaryStatusFailed  = "failed"
)

// InsightsSummary is the materialized rollup for one (outlet_id, time_range)
// pair. It is upserted on every scheduled run; exactly one current row exists
// per key, it is not an append log.
type InsightsSummary struct {
	OutletID              string          `bson:"outlet_id" json:"outletId"`
	TimeRange             TimeRange       `bson:"time_range" json:"timeRange"`
	PeriodStart           time.Time       `bson:"period_start" json:"periodStart"`
	PeriodEnd             time.Time       `bson:"period_end" json:"periodEnd"`
	Basic                 BasicMetrics    `bson:"basic" json:"basic"`
	PremiumData           *PremiumMetrics `bson:"premium_data,omitempty" json:"premiumData,omitempty"`
	Trends                Trends          `bson:"trends" json:"trends"`
	Status                string          `bson:"status" json:"status"`
	ErrorMessage          string          `bson:"error_message,omitempty" json:"errorMessage,omitempty"`
	ComputationDurationMS int64           `bson:"computation_duration_ms" json:"computationDurationMs"`
	ComputedAt            time.Time       `bson:"computed_at" json:"computedAt"`
}

// BasicMetrics is the free-tier metric set, always computed.
type BasicMetrics struct {
	TotalVisits     int64                  `bson:"total_visits" json:"totalVisits"`
	MenuViews       int64                  `bson:"menu_views" json:"menuViews"`
	ProfileViews    int64                  `bson:"profile_views" json:"profileViews"`
	UniqueVisitors  int64                  `bson:"unique_visitors" json:"uniqueVisitors"`
	DeviceBreakdown map[string]DeviceShare `bson:"device_breakdown" json:"deviceBreakdown"`
	TopFoodItem     *FoodItemStat          `bson:"top_food_item,omitempty" json:"topFoodItem,omitempty"`
}

type DeviceShare struct {
	Count int64   `bson:"count" json:"count"`
	Pct   float64 `bson:"pct" json:"pct"`
}

// FoodItemStat aggregates one food item's interaction counts over a period.
type FoodItemStat struct {
	FoodItemID    string  `bson:"food_item_id" json:"foodItemId"`
	Views         int64   `bson:"views" json:"views"`
	Impressions   int64   `bson:"impressions" json:"impressions"`
	CartAdds      int64   `bson:"cart_adds" json:"cartAdds"`
	Orders        int64   `bson:"orders" json:"orders"`
	ConversionPct float64 `bson:"conversion_pct" json:"conversionPct"`
}

// Trends holds percentage deltas of the basic metrics against the previous
// equal-length period.
type Trends struct {
	VisitsChangePct         float64 `bson:"visits_change_pct" json:"visitsChangePct"`
	MenuViewsChangePct      float64 `bson:"menu_views_change_pct" json:"menuViewsChangePct"`
	ProfileViewsChangePct   float64 `bson:"profile_views_change_pct" json:"profileViewsChangePct"`
	UniqueVisitorsChangePct float64 `bson:"unique_visitors_change_pct" json:"uniqueVisitorsChangePct"`
}

// PremiumMetrics is the subscription-gated metric set. Gating happens in the
// dashboard read path; the engine always computes it.
type PremiumMetrics struct {
	Funnel               Funnel         `bson:"funnel" json:"funnel"`
	NewSessions          int64          `bson:"new_sessions" json:"newSessions"`
	ReturningSessions    int64          `bson:"returning_sessions" json:"returningSessions"`
	TopSources           []RankedShare  `bson:"top_sources" json:"topSources"`
	TopEntryPages        []RankedShare  `bson:"top_entry_pages" json:"topEntryPages"`
	TopFoodItems         []FoodItemStat `bson:"top_food_items" json:"topFoodItems"`
	OfferPerformance     EntityRollup   `bson:"offer_performance" json:"offerPerformance"`
	PromotionPerformance EntityRollup   `bson:"promotion_performance" json:"promotionPerformance"`
	DailySeries          []DayStat      `bson:"daily_series" json:"dailySeries"`
	PeakHours            [24]int64      `bson:"peak_hours" json:"peakHours"`
	TopLocations         []GeoStat      `bson:"top_locations" json:"topLocations"`
}

// Funnel is the visit -> profile -> menu conversion chain.
type Funnel struct {
	Visits            int64   `bson:"visits" json:"visits"`
	ProfileViews      int64   `bson:"profile_views" json:"profileViews"`
	MenuViews         int64   `bson:"menu_views" json:"menuViews"`
	VisitToProfilePct float64 `bson:"visit_to_profile_pct" json:"visitToProfilePct"`
	ProfileToMenuPct  float64 `bson:"profile_to_menu_pct" json:"profileToMenuPct"`
}

// RankedShare is one entry of a top-N listing with its share of the total.
type RankedShare struct {
	Key   string  `bson:"key" json:"key"`
	Count int64   `bson:"count" json:"count"`
	Pct   float64 `bson:"pct" json:"pct"`
}

// EntityRollup summarizes promotion or offer interaction volume.
type EntityRollup struct {
	TotalEvents int64         `bson:"total_events" json:"totalEvents"`
	ByEntity    []EntityCount `bson:"by_entity" json:"byEntity"`
	TopEntity   *EntityCount  `bson:"top_entity,omitempty" json:"topEntity,omitempty"`
}

type EntityCount struct {
	ID    string `bson:"id" json:"id"`
	Count int64  `bson:"count" json:"count"`
}

type DayStat struct {
	Date         string `bson:"date" json:"date"`
	Visits       int64  `bson:"visits" json:"visits"`
	MenuViews    int64  `bson:"menu_views" json:"menuViews"`
	ProfileViews int64  `bson:"profile_views" json:"profileViews"`
}

type GeoStat struct {
	City    string `bson:"city" json:"city"`
	Country string `bson:"country" json:"country"`
	Count   int64  `bson:"count" json:"count"`
}
