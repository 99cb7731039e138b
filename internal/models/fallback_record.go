package models

import "time"

// FallbackRecord is one line-delimited entry in the durable overflow sink,
// written whenever primary persistence of an event fails. It carries enough
// to re-drive the event through the primary store during reconciliation.
type FallbackRecord struct {
	Event     StoredEvent    `json:"event"`
	Payload   map[string]any `json:"payload,omitempty"`
	Reason    string         `json:"reason"`
	WrittenAt time.Time      `json:"writtenAt"`
}
