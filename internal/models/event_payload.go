package models

// EventPayload is the category-tagged payload attached to a ParsedEvent.
// Category handlers receive one of the concrete types below instead of
// probing an open map.
type EventPayload interface {
	Category() EventCategory
}

type FoodItemPayload struct {
	OutletID   string
	FoodItemID string
	ItemName   string
	Quantity   int64
}

func (FoodItemPayload) Category() EventCategory { return CategoryFoodItem }

type OutletPayload struct {
	OutletID    string
	Source      string
	EntryPage   string
	City        string
	Country     string
	SearchQuery string
}

func (OutletPayload) Category() EventCategory { return CategoryOutlet }

type PromotionPayload struct {
	PromotionID string
	OutletID    string
}

func (PromotionPayload) Category() EventCategory { return CategoryPromotion }

type OfferPayload struct {
	OfferID  string
	OutletID string
}

func (OfferPayload) Category() EventCategory { return CategoryOffer }

type SessionPayload struct {
	OutletID string
	Referrer string
}

func (SessionPayload) Category() EventCategory { return CategorySessionLifecycle }

// UnknownPayload carries the sanitized raw fields of an event whose type maps
// to no known category.
type UnknownPayload struct {
	Fields map[string]any
}

func (UnknownPayload) Category() EventCategory { return CategoryUnknown }
