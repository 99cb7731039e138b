package stores

import (
	"context"
	"fmt"
	"time"

	"outlet-analytics/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names for the per-category event collections and the
// denormalized aggregate documents receiving counter increments.
const (
	collFoodItemEvents  = "food_item_events"
	collOutletEvents    = "outlet_events"
	collPromotionEvents = "promotion_events"
	collOfferEvents     = "offer_events"
	collSessionEvents   = "session_events"

	CollFoodItems  = "food_items"
	CollPromotions = "promotions"
	CollOffers     = "offers"
)

// ValidEntityID reports whether id is a well-formed primary-store identifier.
// Events referencing malformed identifiers are dropped by design upstream.
func ValidEntityID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

//go:generate mockgen -source=event_store.go -destination=./mocks/event_store_mock.go -package=mocks
type EventStore interface {
	// InsertEvent writes the event into its category collection.
	InsertEvent(ctx context.Context, event *models.StoredEvent) error
	// IncrementCounters applies a best-effort $inc to an aggregate document.
	// A missing document is not an error.
	IncrementCounters(ctx context.Context, update models.CounterUpdate) error

	OutletEvents(ctx context.Context, outletID string, from, to time.Time) ([]models.StoredEvent, error)
	FoodItemEvents(ctx context.Context, outletID string, from, to time.Time) ([]models.StoredEvent, error)
	PromotionEvents(ctx context.Context, outletID string, from, to time.Time) ([]models.StoredEvent, error)
	OfferEvents(ctx context.Context, outletID string, from, to time.Time) ([]models.StoredEvent, error)
	// SessionsSeenBefore returns the set of session IDs that appear in any
	// outlet event strictly before the given instant.
	SessionsSeenBefore(ctx context.Context, outletID string, before time.Time) (map[string]struct{}, error)
	// ActiveOutletIDs returns distinct outlet IDs seen in outlet events
	// since the given instant.
	ActiveOutletIDs(ctx context.Context, since time.Time) ([]string, error)
}

type mongoEventStore struct {
	db *mongo.Database
}

func NewMongoEventStore(db *mongo.Database) EventStore {
	return &mongoEventStore{db: db}
}

func collectionForCategory(category models.EventCategory) (string, bool) {
	switch category {
	case models.CategoryFoodItem:
		return collFoodItemEvents, true
	case models.CategoryOutlet:
		return collOutletEvents, true
	case models.CategoryPromotion:
		return collPromotionEvents, true
	case models.CategoryOffer:
		return collOfferEvents, true
	case models.CategorySessionLifecycle:
		return collSessionEvents, true
	}
	return "", false
}

func (s *mongoEventStore) InsertEvent(ctx context.Context, event *models.StoredEvent) error {
	collName, ok := collectionForCategory(event.Category)
	if !ok {
		return fmt.Errorf("no collection for category %q", event.Category)
	}
	_, err := s.db.Collection(collName).InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to insert %s event: %w", event.Category, err)
	}
	return nil
}

func (s *mongoEventStore) IncrementCounters(ctx context.Context, update models.CounterUpdate) error {
	oid, err := primitive.ObjectIDFromHex(update.EntityID)
	if err != nil {
		return fmt.Errorf("invalid entity id %q: %w", update.EntityID, err)
	}

	inc := bson.M{}
	for field, delta := range update.Fields {
		inc[field] = delta
	}

	_, err = s.db.Collection(update.Collection).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": inc},
	)
	if err != nil {
		return fmt.Errorf("failed to increment counters on %s/%s: %w", update.Collection, update.EntityID, err)
	}
	return nil
}

func (s *mongoEventStore) OutletEvents(ctx context.Context, outletID string, from, to time.Time) ([]models.StoredEvent, error) {
	return s.findEvents(ctx, collOutletEvents, outletID, from, to)
}

func (s *mongoEventStore) FoodItemEvents(ctx context.Context, outletID string, from, to time.Time) ([]models.StoredEvent, error) {
	return s.findEvents(ctx, collFoodItemEvents, outletID, from, to)
}

func (s *mongoEventStore) PromotionEvents(ctx context.Context, outletID string, from, to time.Time) ([]models.StoredEvent, error) {
	return s.findEvents(ctx, collPromotionEvents, outletID, from, to)
}

func (s *mongoEventStore) OfferEvents(ctx context.Context, outletID string, from, to time.Time) ([]models.StoredEvent, error) {
	return s.findEvents(ctx, collOfferEvents, outletID, from, to)
}

func (s *mongoEventStore) findEvents(ctx context.Context, collName, outletID string, from, to time.Time) ([]models.StoredEvent, error) {
	filter := bson.M{
		"outlet_id": outletID,
		"timestamp": bson.M{"$gte": from, "$lt": to},
	}

	cursor, err := s.db.Collection(collName).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collName, err)
	}
	defer cursor.Close(ctx)

	var events []models.StoredEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", collName, err)
	}
	return events, nil
}

func (s *mongoEventStore) SessionsSeenBefore(ctx context.Context, outletID string, before time.Time) (map[string]struct{}, error) {
	filter := bson.M{
		"outlet_id": outletID,
		"timestamp": bson.M{"$lt": before},
	}

	values, err := s.db.Collection(collOutletEvents).Distinct(ctx, "session_id", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query prior sessions: %w", err)
	}

	sessions := make(map[string]struct{}, len(values))
	for _, v := range values {
		if sessionID, ok := v.(string); ok {
			sessions[sessionID] = struct{}{}
		}
	}
	return sessions, nil
}

func (s *mongoEventStore) ActiveOutletIDs(ctx context.Context, since time.Time) ([]string, error) {
	filter := bson.M{"timestamp": bson.M{"$gte": since}}

	values, err := s.db.Collection(collOutletEvents).Distinct(ctx, "outlet_id", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query active outlets: %w", err)
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// NewMongoDatabase connects to the primary store and verifies the connection.
func NewMongoDatabase(ctx context.Context, uri, database string) (*mongo.Database, func(context.Context) error, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	return client.Database(database), client.Disconnect, nil
}
