package insights

import (
	"math"

	"outlet-analytics/internal/models"
)

// changePct computes the period-over-period percentage delta. A zero previous
// value with a non-zero current value reports 100 (growth from nothing)
// instead of dividing by zero; zero to zero reports 0.
func changePct(current, previous int64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return math.Round(float64(current-previous)/float64(previous)*100*100) / 100
}

func computeTrends(current, previous models.BasicMetrics) models.Trends {
	return models.Trends{
		VisitsChangePct:         changePct(current.TotalVisits, previous.TotalVisits),
		MenuViewsChangePct:      changePct(current.MenuViews, previous.MenuViews),
		ProfileViewsChangePct:   changePct(current.ProfileViews, previous.ProfileViews),
		UniqueVisitorsChangePct: changePct(current.UniqueVisitors, previous.UniqueVisitors),
	}
}
