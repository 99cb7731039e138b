package insights

import (
	"math"
	"sort"

	"outlet-analytics/internal/models"
)

const topListLimit = 10

const (
	typeOutletVisit = "outlet_visit"
	typeProfileView = "profile_view"
	typeMenuView    = "menu_view"

	typeItemView       = "item_view"
	typeItemImpression = "item_impression"
	typeAddToCart      = "add_to_cart"
	typeOrderCreated   = "order_created"
)

func computeBasic(outletEvents, foodEvents []models.StoredEvent) models.BasicMetrics {
	basic := models.BasicMetrics{
		DeviceBreakdown: make(map[string]models.DeviceShare),
	}

	sessions := make(map[string]struct{})
	deviceCounts := make(map[string]int64)
	for _, event := range outletEvents {
		switch event.EventType {
		case typeOutletVisit:
			basic.TotalVisits++
		case typeMenuView:
			basic.MenuViews++
		case typeProfileView:
			basic.ProfileViews++
		}
		sessions[event.SessionID] = struct{}{}
		deviceCounts[string(event.DeviceType)]++
	}
	basic.UniqueVisitors = int64(len(sessions))

	total := int64(len(outletEvents))
	for device, count := range deviceCounts {
		basic.DeviceBreakdown[device] = models.DeviceShare{
			Count: count,
			Pct:   pct(count, total),
		}
	}

	if items := foodItemStats(foodEvents); len(items) > 0 {
		basic.TopFoodItem = &items[0]
	}

	return basic
}

func computePremium(outletEvents, foodEvents, promoEvents, offerEvents []models.StoredEvent, priorSessions map[string]struct{}) *models.PremiumMetrics {
	premium := &models.PremiumMetrics{}

	// Conversion funnel: visit -> profile -> menu.
	var visits, profiles, menus int64
	for _, event := range outletEvents {
		switch event.EventType {
		case typeOutletVisit:
			visits++
		case typeProfileView:
			profiles++
		case typeMenuView:
			menus++
		}
	}
	premium.Funnel = models.Funnel{
		Visits:            visits,
		ProfileViews:      profiles,
		MenuViews:         menus,
		VisitToProfilePct: pct(profiles, visits),
		ProfileToMenuPct:  pct(menus, profiles),
	}

	// New vs returning: a session is returning if it appeared in any event
	// strictly before the period start.
	currentSessions := make(map[string]struct{})
	for _, event := range outletEvents {
		currentSessions[event.SessionID] = struct{}{}
	}
	for sessionID := range currentSessions {
		if _, seen := priorSessions[sessionID]; seen {
			premium.ReturningSessions++
		} else {
			premium.NewSessions++
		}
	}

	// Traffic sources and entry pages.
	sourceCounts := make(map[string]int64)
	entryPageCounts := make(map[string]int64)
	for _, event := range outletEvents {
		if event.Source != "" {
			sourceCounts[event.Source]++
		}
		entryPage := event.EntryPage
		if entryPage == "" {
			entryPage = event.Page
		}
		if entryPage != "" {
			entryPageCounts[entryPage]++
		}
	}
	premium.TopSources = topShares(sourceCounts, topListLimit)
	premium.TopEntryPages = topShares(entryPageCounts, topListLimit)

	// Food item performance.
	items := foodItemStats(foodEvents)
	if len(items) > topListLimit {
		items = items[:topListLimit]
	}
	premium.TopFoodItems = items

	premium.OfferPerformance = entityRollup(offerEvents, func(e models.StoredEvent) string { return e.OfferID })
	premium.PromotionPerformance = entityRollup(promoEvents, func(e models.StoredEvent) string { return e.PromotionID })

	premium.DailySeries = dailySeries(outletEvents)
	for _, event := range outletEvents {
		premium.PeakHours[models.BusinessHour(event.Timestamp)]++
	}
	premium.TopLocations = topLocations(outletEvents, topListLimit)

	return premium
}

// foodItemStats aggregates per-item interaction counts, sorted by views
// descending (then ID for determinism).
func foodItemStats(foodEvents []models.StoredEvent) []models.FoodItemStat {
	byItem := make(map[string]*models.FoodItemStat)
	for _, event := range foodEvents {
		if event.FoodItemID == "" {
			continue
		}
		stat, ok := byItem[event.FoodItemID]
		if !ok {
			stat = &models.FoodItemStat{FoodItemID: event.FoodItemID}
			byItem[event.FoodItemID] = stat
		}
		switch event.EventType {
		case typeItemView:
			stat.Views++
		case typeItemImpression:
			stat.Impressions++
		case typeAddToCart:
			stat.CartAdds++
		case typeOrderCreated:
			stat.Orders++
		}
	}

	stats := make([]models.FoodItemStat, 0, len(byItem))
	for _, stat := range byItem {
		stat.ConversionPct = pct(stat.Orders, stat.Views)
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Views != stats[j].Views {
			return stats[i].Views > stats[j].Views
		}
		return stats[i].FoodItemID < stats[j].FoodItemID
	})
	return stats
}

func entityRollup(events []models.StoredEvent, idOf func(models.StoredEvent) string) models.EntityRollup {
	counts := make(map[string]int64)
	for _, event := range events {
		if id := idOf(event); id != "" {
			counts[id]++
		}
	}

	rollup := models.EntityRollup{TotalEvents: int64(len(events))}
	for id, count := range counts {
		rollup.ByEntity = append(rollup.ByEntity, models.EntityCount{ID: id, Count: count})
	}
	sort.Slice(rollup.ByEntity, func(i, j int) bool {
		if rollup.ByEntity[i].Count != rollup.ByEntity[j].Count {
			return rollup.ByEntity[i].Count > rollup.ByEntity[j].Count
		}
		return rollup.ByEntity[i].ID < rollup.ByEntity[j].ID
	})
	if len(rollup.ByEntity) > 0 {
		top := rollup.ByEntity[0]
		rollup.TopEntity = &top
	}
	return rollup
}

func dailySeries(outletEvents []models.StoredEvent) []models.DayStat {
	byDay := make(map[string]*models.DayStat)
	for _, event := range outletEvents {
		day := models.BusinessDay(event.Timestamp)
		stat, ok := byDay[day]
		if !ok {
			stat = &models.DayStat{Date: day}
			byDay[day] = stat
		}
		switch event.EventType {
		case typeOutletVisit:
			stat.Visits++
		case typeMenuView:
			stat.MenuViews++
		case typeProfileView:
			stat.ProfileViews++
		}
	}

	series := make([]models.DayStat, 0, len(byDay))
	for _, stat := range byDay {
		series = append(series, *stat)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series
}

func topLocations(outletEvents []models.StoredEvent, limit int) []models.GeoStat {
	type geoKey struct{ city, country string }
	counts := make(map[geoKey]int64)
	for _, event := range outletEvents {
		if event.City == "" && event.Country == "" {
			continue
		}
		counts[geoKey{event.City, event.Country}]++
	}

	locations := make([]models.GeoStat, 0, len(counts))
	for key, count := range counts {
		locations = append(locations, models.GeoStat{City: key.city, Country: key.country, Count: count})
	}
	sort.Slice(locations, func(i, j int) bool {
		if locations[i].Count != locations[j].Count {
			return locations[i].Count > locations[j].Count
		}
		if locations[i].Country != locations[j].Country {
			return locations[i].Country < locations[j].Country
		}
		return locations[i].City < locations[j].City
	})
	if len(locations) > limit {
		locations = locations[:limit]
	}
	return locations
}

func topShares(counts map[string]int64, limit int) []models.RankedShare {
	var total int64
	for _, count := range counts {
		total += count
	}

	shares := make([]models.RankedShare, 0, len(counts))
	for key, count := range counts {
		shares = append(shares, models.RankedShare{Key: key, Count: count, Pct: pct(count, total)})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Key < shares[j].Key
	})
	if len(shares) > limit {
		shares = shares[:limit]
	}
	return shares
}

// pct returns part/whole as a percentage rounded to two decimals, 0 when the
// whole is zero.
func pct(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*100*100) / 100
}
