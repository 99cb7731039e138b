package models

import "strings"

// EventCategory is the closed routing tag derived from an event type.
// Unknown categories are accepted and treated as a successful no-op,
// never rejected.
type EventCategory string

const (
	CategoryFoodItem         EventCategory = "food_item"
	CategoryOutlet           EventCategory = "outlet"
	CategoryPromotion        EventCategory = "promotion"
	CategoryOffer            EventCategory = "offer"
	CategorySessionLifecycle EventCategory = "session_lifecycle"
	CategoryUnknown          EventCategory = "unknown"
)

// CategoryOf maps an event type to its routing category. The mapping is
// ordered and the first match wins.
func CategoryOf(eventType string) EventCategory {
	switch {
	case strings.HasPrefix(eventType, "item_"),
		eventType == "add_to_cart",
		eventType == "order_created":
		return CategoryFoodItem
	case eventType == "outlet_visit",
		eventType == "profile_view",
		eventType == "menu_view",
		eventType == "outlet_search":
		return CategoryOutlet
	case strings.HasPrefix(eventType, "promo_"):
		return CategoryPromotion
	case strings.HasPrefix(eventType, "offer_"):
		return CategoryOffer
	case eventType == "session_start",
		eventType == "session_end",
		eventType == "heartbeat":
		return CategorySessionLifecycle
	default:
		return CategoryUnknown
	}
}
