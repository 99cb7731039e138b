package models

import "time"

// DeviceType is the normalized client device class.
type DeviceType string

const (
	DeviceMobile  DeviceType = "mobile"
	DeviceDesktop DeviceType = "desktop"
	DeviceTablet  DeviceType = "tablet"
)

// ValidDeviceType reports whether s is one of the accepted device classes.
func ValidDeviceType(s string) bool {
	switch DeviceType(s) {
	case DeviceMobile, DeviceDesktop, DeviceTablet:
		return true
	}
	return false
}

// ParsedEvent is a fully normalized client event. Every field is populated
// during parsing (missing input fields are defaulted, never left zero where
// downstream code would have to null-check), so category handlers can rely
// on the shape unconditionally.
//
// EventHash is a deterministic digest of the normalized (type, timestamp,
// session_id, payload) tuple. It is the unit of idempotency, not a storage
// identity.
type ParsedEvent struct {
	Type             string
	EventCategory    EventCategory
	Timestamp        time.Time
	SessionID        string
	Page             string
	DeviceType       DeviceType
	Platform         string
	UserID           string
	OutletID         string
	Payload          EventPayload
	RawPayload       map[string]any
	ReceivedAt       time.Time
	ServerTimestamp  time.Time
	EventHash        string
	IsValid          bool
	ValidationErrors []string
}

// ParsedBatch is the always-well-formed result of parsing one raw batch.
type ParsedBatch struct {
	Events        []*ParsedEvent
	TotalEvents   int
	ValidEvents   int
	InvalidEvents int
	ClientIP      string
	ReceivedAt    time.Time
	// Error carries a batch-level diagnostic for catastrophic input
	// (non-object body, non-array events). The batch is still usable.
	Error string
}
