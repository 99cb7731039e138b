package ingestors

import (
	"context"
	"encoding/json"
	"io"

	"outlet-analytics/internal/shared/loggers"
	"outlet-analytics/internal/shared/metrics"
)

const maxBatchBytes = 2 * 1024 * 1024

// IngestResult carries the aggregate counts returned to the client. Per-event
// failure detail is deliberately withheld: events that were dropped or fell
// back were still handled, and error responses would only encourage retries
// of data that does not need them.
type IngestResult struct {
	Processed  int `json:"processed"`
	FoodItems  int `json:"food_items"`
	Outlets    int `json:"outlets"`
	Promotions int `json:"promotions"`
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestBatch parses and processes one client-reported event batch.
	IngestBatch(ctx context.Context, r io.Reader, clientIP string) (*IngestResult, error)
}

type ingestionService struct {
	parser    BatchParser
	processor EventProcessor
}

func NewIngestionService(parser BatchParser, processor EventProcessor) IngestionService {
	return &ingestionService{
		parser:    parser,
		processor: processor,
	}
}

func (s *ingestionService) IngestBatch(ctx context.Context, r io.Reader, clientIP string) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)

	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := s.readWithLimit(r, maxBatchBytes)
	if err != nil {
		return nil, errValidationFailed("batch too large: must be <= 2MB", nil)
	}

	var raw any
	if err := json.Unmarshal(buf, &raw); err != nil {
		metricBatchIngestedTotal.WithLabelValues(codeValidationFailed).Inc()
		return nil, errValidationFailed("invalid json", err)
	}

	batch := s.parser.ParseBatch(raw, clientIP)
	if batch.Error != "" {
		logger.Warn().Msgf("malformed batch payload: %s", batch.Error)
	}

	result := s.processor.ProcessEvents(ctx, batch.Events)

	logger.Info().
		Int("total_events", batch.TotalEvents).
		Int("valid_events", batch.ValidEvents).
		Int("invalid_events", batch.InvalidEvents).
		Int("success", result.Success).
		Int("failed", result.Failed).
		Int("duplicates", result.Duplicates).
		Msg("batch processed")

	metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()

	return &IngestResult{
		Processed:  result.Success,
		FoodItems:  result.FoodItems,
		Outlets:    result.Outlets,
		Promotions: result.Promotions,
	}, nil
}

// readWithLimit reads up to max+1 bytes from r and checks if it exceeds max.
func (s *ingestionService) readWithLimit(r io.Reader, max int) ([]byte, error) {
	limitedReader := io.LimitReader(r, int64(max+1))
	buf, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, err
	}
	if len(buf) > max {
		return nil, errValidationFailed("batch too large", nil)
	}
	return buf, nil
}
