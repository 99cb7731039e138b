package http

import (
	"encoding/json"
	"net/http"

	"outlet-analytics/internal/ingestors"
)

type ingestEventsHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestEventsHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestEventsHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /events requests. The response carries aggregate
// counts only: events that were deduplicated, dropped by design, or written
// to the fallback store were still handled, and surfacing them as errors
// would encourage pointless client retries.
func (h *ingestEventsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestBatch(r.Context(), r.Body, clientIP(r))
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(result)
}
