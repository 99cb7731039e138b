package http

import (
	"encoding/json"
	"net/http"

	"outlet-analytics/internal/insights"
	"outlet-analytics/internal/models"

	"github.com/go-chi/chi/v5"
)

type insightsHandler struct {
	engine insights.InsightsEngine
}

func NewInsightsHandler(engine insights.InsightsEngine) AppHttpHandler {
	return &insightsHandler{
		engine: engine,
	}
}

// Handle processes POST /outlets/{outletID}/insights/{timeRange}: the
// synchronous on-demand computation path used by premium dashboards (the
// scheduled fleet runs cover everyone else).
func (h *insightsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	outletID := chi.URLParam(r, "outletID")

	timeRange, err := models.NewTimeRangeFromString(chi.URLParam(r, "timeRange"))
	if err != nil {
		return insights.NewInvalidTimeRangeError(err)
	}

	summary, err := h.engine.ComputeForOutlet(r.Context(), outletID, timeRange)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(summary)
}
