package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoredEvent is the flattened document written to the per-category event
// collections in the primary store.
type StoredEvent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	EventHash   string             `bson:"event_hash" json:"eventHash"`
	EventType   string             `bson:"event_type" json:"eventType"`
	Category    EventCategory      `bson:"category" json:"category"`
	OutletID    string             `bson:"outlet_id,omitempty" json:"outletId,omitempty"`
	FoodItemID  string             `bson:"food_item_id,omitempty" json:"foodItemId,omitempty"`
	PromotionID string             `bson:"promotion_id,omitempty" json:"promotionId,omitempty"`
	OfferID     string             `bson:"offer_id,omitempty" json:"offerId,omitempty"`
	SessionID   string             `bson:"session_id" json:"sessionId"`
	UserID      string             `bson:"user_id,omitempty" json:"userId,omitempty"`
	DeviceType  DeviceType         `bson:"device_type" json:"deviceType"`
	Platform    string             `bson:"platform" json:"platform"`
	Page        string             `bson:"page" json:"page"`
	Source      string             `bson:"source,omitempty" json:"source,omitempty"`
	EntryPage   string             `bson:"entry_page,omitempty" json:"entryPage,omitempty"`
	City        string             `bson:"city,omitempty" json:"city,omitempty"`
	Country     string             `bson:"country,omitempty" json:"country,omitempty"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
	ReceivedAt  time.Time          `bson:"received_at" json:"receivedAt"`
}

// CounterUpdate is a best-effort atomic increment against a denormalized
// aggregate document (a promotion's click counter, a food item's view
// counter). Failures are logged and never escalate to the event write.
type CounterUpdate struct {
	Collection string
	EntityID   string
	Fields     map[string]int64
}
