package http

import (
	"net/http"

	"outlet-analytics/internal/ingestors"
	"outlet-analytics/internal/insights"
	"outlet-analytics/internal/shared/loggers"
	"outlet-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, engine insights.InsightsEngine, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	ingestEventsHandler := NewIngestEventsHandler(ingestionService)
	insightsHandler := NewInsightsHandler(engine)

	// Routes
	router.Post("/events", errorHandlingAdapter(ingestEventsHandler))
	router.Post("/outlets/{outletID}/insights/{timeRange}", errorHandlingAdapter(insightsHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
