package stores

import (
	"context"
	"errors"
	"fmt"

	"outlet-analytics/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collInsightsSummaries = "insights_summaries"

var ErrSummaryNotFound = errors.New("insights summary not found")

// SummaryStore holds the materialized insight rows, one current row per
// (outlet_id, time_range).
//
//go:generate mockgen -source=summary_store.go -destination=./mocks/summary_store_mock.go -package=mocks
type SummaryStore interface {
	Upsert(ctx context.Context, summary *models.InsightsSummary) error
	Get(ctx context.Context, outletID string, timeRange models.TimeRange) (*models.InsightsSummary, error)
}

type mongoSummaryStore struct {
	db *mongo.Database
}

func NewMongoSummaryStore(db *mongo.Database) SummaryStore {
	return &mongoSummaryStore{db: db}
}

func (s *mongoSummaryStore) Upsert(ctx context.Context, summary *models.InsightsSummary) error {
	filter := bson.M{
		"outlet_id":  summary.OutletID,
		"time_range": summary.TimeRange,
	}

	_, err := s.db.Collection(collInsightsSummaries).ReplaceOne(ctx, filter, summary, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert insights summary: %w", err)
	}
	return nil
}

func (s *mongoSummaryStore) Get(ctx context.Context, outletID string, timeRange models.TimeRange) (*models.InsightsSummary, error) {
	filter := bson.M{
		"outlet_id":  outletID,
		"time_range": timeRange,
	}

	var summary models.InsightsSummary
	err := s.db.Collection(collInsightsSummaries).FindOne(ctx, filter).Decode(&summary)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSummaryNotFound
		}
		return nil, fmt.Errorf("failed to get insights summary: %w", err)
	}
	return &summary, nil
}
