package ingestors

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"outlet-analytics/internal/models"
	"outlet-analytics/internal/shared/ulid"

	"github.com/mileusna/useragent"
)

const (
	defaultEventType = "unknown_event"
	defaultPage      = "/"
	defaultPlatform  = "web"

	syntheticErrorType = "error_occurred"
	maxRawSnippetLen   = 512
)

// BatchParser turns an arbitrary, possibly malformed batch payload into a
// list of normalized events. It never fails: catastrophic input yields a
// batch with zero events and a diagnostic, and a defect while parsing one
// event yields a synthetic fallback event instead of aborting the batch.
//
//go:generate mockgen -source=batch_parser.go -destination=./mocks/batch_parser_mock.go -package=mocks
type BatchParser interface {
	ParseBatch(raw any, clientIP string) *models.ParsedBatch
}

type batchParser struct {
	clock func() time.Time
}

func NewBatchParser() BatchParser {
	return &batchParser{clock: func() time.Time { return time.Now().UTC() }}
}

type batchMetadata struct {
	sessionID string
	userAgent string
}

func (p *batchParser) ParseBatch(raw any, clientIP string) *models.ParsedBatch {
	now := p.clock()
	batch := &models.ParsedBatch{
		ClientIP:   clientIP,
		ReceivedAt: now,
	}

	root, ok := raw.(map[string]any)
	if !ok {
		batch.Error = "batch payload is not an object"
		return batch
	}

	meta := parseMetadata(root["metadata"])

	rawEvents, ok := root["events"].([]any)
	if !ok {
		batch.Error = "events is missing or not an array"
		return batch
	}

	for _, rawEvent := range rawEvents {
		event := p.parseEventSafe(rawEvent, meta, now)
		batch.Events = append(batch.Events, event)
		if event.IsValid {
			batch.ValidEvents++
		} else {
			batch.InvalidEvents++
		}
	}
	batch.TotalEvents = len(batch.Events)

	return batch
}

// parseEventSafe guards a single event parse: a panic produces a synthetic
// error_occurred event carrying a truncated snapshot of the raw input, so
// one defective event cannot take the batch down with it.
func (p *batchParser) parseEventSafe(rawEvent any, meta batchMetadata, now time.Time) (event *models.ParsedEvent) {
	defer func() {
		if r := recover(); r != nil {
			event = p.syntheticErrorEvent(rawEvent, fmt.Sprintf("%v", r), meta, now)
		}
	}()
	return p.parseEvent(rawEvent, meta, now)
}

func (p *batchParser) parseEvent(rawEvent any, meta batchMetadata, now time.Time) *models.ParsedEvent {
	event := &models.ParsedEvent{
		ReceivedAt:      now,
		ServerTimestamp: now,
	}

	obj, ok := rawEvent.(map[string]any)
	if !ok {
		return p.syntheticErrorEvent(rawEvent, "event is not an object", meta, now)
	}

	// type
	if eventType, ok := obj["type"].(string); ok && eventType != "" {
		event.Type = eventType
	} else {
		event.Type = defaultEventType
		event.ValidationErrors = append(event.ValidationErrors, "missing or invalid type, defaulted to unknown_event")
	}
	event.EventCategory = models.CategoryOf(event.Type)

	// timestamp
	if ts, ok := parseTimestamp(obj["timestamp"]); ok {
		event.Timestamp = ts
	} else {
		event.Timestamp = now
		event.ValidationErrors = append(event.ValidationErrors, "missing or unparsable timestamp, defaulted to server time")
	}

	// session_id: event value, then batch metadata, then server-generated
	if sessionID, ok := obj["session_id"].(string); ok && sessionID != "" {
		event.SessionID = sessionID
	} else if meta.sessionID != "" {
		event.SessionID = meta.sessionID
	} else {
		event.SessionID = serverSessionID(now)
		event.ValidationErrors = append(event.ValidationErrors, "missing session_id, generated server-side")
	}

	// page
	if page, ok := obj["page"].(string); ok && page != "" {
		event.Page = page
	} else {
		event.Page = defaultPage
		event.ValidationErrors = append(event.ValidationErrors, "missing page, defaulted to /")
	}

	// device_type: accept valid values, otherwise infer from the batch
	// user agent, otherwise desktop.
	if deviceType, ok := obj["device_type"].(string); ok && models.ValidDeviceType(deviceType) {
		event.DeviceType = models.DeviceType(deviceType)
	} else if inferred, ok := deviceTypeFromUserAgent(meta.userAgent); ok {
		event.DeviceType = inferred
	} else {
		event.DeviceType = models.DeviceDesktop
		event.ValidationErrors = append(event.ValidationErrors, "missing or invalid device_type, defaulted to desktop")
	}

	// platform
	if platform, ok := obj["platform"].(string); ok && platform != "" {
		event.Platform = platform
	} else {
		event.Platform = defaultPlatform
		event.ValidationErrors = append(event.ValidationErrors, "missing platform, defaulted to web")
	}

	// optional identity fields
	event.UserID, _ = obj["user_id"].(string)
	event.OutletID, _ = obj["outlet_id"].(string)

	// payload
	if payload, ok := obj["payload"].(map[string]any); ok {
		event.RawPayload = sanitizePayload(payload)
	} else {
		event.RawPayload = map[string]any{}
		if _, present := obj["payload"]; present {
			event.ValidationErrors = append(event.ValidationErrors, "payload is not an object, defaulted to empty")
		}
	}
	if event.OutletID == "" {
		event.OutletID, _ = event.RawPayload["outlet_id"].(string)
	}
	event.Payload = typedPayload(event.EventCategory, event.RawPayload)

	event.EventHash = eventHash(event.Type, event.Timestamp, event.SessionID, event.RawPayload)
	event.IsValid = len(event.ValidationErrors) == 0

	return event
}

func (p *batchParser) syntheticErrorEvent(rawEvent any, errText string, meta batchMetadata, now time.Time) *models.ParsedEvent {
	snippet := fmt.Sprintf("%v", rawEvent)
	if len(snippet) > maxRawSnippetLen {
		snippet = snippet[:maxRawSnippetLen]
	}

	sessionID := meta.sessionID
	if sessionID == "" {
		sessionID = serverSessionID(now)
	}

	rawPayload := map[string]any{
		"raw":   snippet,
		"error": errText,
	}

	return &models.ParsedEvent{
		Type:             syntheticErrorType,
		EventCategory:    models.CategoryOf(syntheticErrorType),
		Timestamp:        now,
		SessionID:        sessionID,
		Page:             defaultPage,
		DeviceType:       models.DeviceDesktop,
		Platform:         defaultPlatform,
		RawPayload:       rawPayload,
		Payload:          models.UnknownPayload{Fields: rawPayload},
		ReceivedAt:       now,
		ServerTimestamp:  now,
		EventHash:        eventHash(syntheticErrorType, now, sessionID, rawPayload),
		IsValid:          false,
		ValidationErrors: []string{errText},
	}
}

func parseMetadata(raw any) batchMetadata {
	meta := batchMetadata{}
	obj, ok := raw.(map[string]any)
	if !ok {
		return meta
	}
	meta.sessionID, _ = obj["session_id"].(string)
	if ua, ok := obj["user_agent"].(string); ok {
		meta.userAgent = ua
	} else if deviceInfo, ok := obj["device_info"].(map[string]any); ok {
		meta.userAgent, _ = deviceInfo["user_agent"].(string)
	}
	return meta
}

func parseTimestamp(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.000Z"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t.UTC(), true
			}
		}
	case float64:
		// epoch milliseconds from JSON numbers
		if v > 0 {
			return time.UnixMilli(int64(v)).UTC(), true
		}
	}
	return time.Time{}, false
}

func deviceTypeFromUserAgent(ua string) (models.DeviceType, bool) {
	if ua == "" {
		return "", false
	}
	parsed := useragent.Parse(ua)
	switch {
	case parsed.Mobile:
		return models.DeviceMobile, true
	case parsed.Tablet:
		return models.DeviceTablet, true
	case parsed.Desktop:
		return models.DeviceDesktop, true
	}
	return "", false
}

// sanitizePayload copies the payload, dropping keys that could be abused for
// prototype pollution on the producing client stack. Nested objects are
// sanitized recursively.
func sanitizePayload(payload map[string]any) map[string]any {
	clean := make(map[string]any, len(payload))
	for k, v := range payload {
		if k == "__proto__" || k == "constructor" {
			continue
		}
		if nested, ok := v.(map[string]any); ok {
			clean[k] = sanitizePayload(nested)
			continue
		}
		clean[k] = v
	}
	return clean
}

func typedPayload(category models.EventCategory, payload map[string]any) models.EventPayload {
	str := func(key string) string {
		s, _ := payload[key].(string)
		return s
	}
	switch category {
	case models.CategoryFoodItem:
		quantity, _ := payload["quantity"].(float64)
		return models.FoodItemPayload{
			OutletID:   str("outlet_id"),
			FoodItemID: str("food_item_id"),
			ItemName:   str("item_name"),
			Quantity:   int64(quantity),
		}
	case models.CategoryOutlet:
		return models.OutletPayload{
			OutletID:    str("outlet_id"),
			Source:      str("source"),
			EntryPage:   str("entry_page"),
			City:        str("city"),
			Country:     str("country"),
			SearchQuery: str("search_query"),
		}
	case models.CategoryPromotion:
		return models.PromotionPayload{
			PromotionID: str("promotion_id"),
			OutletID:    str("outlet_id"),
		}
	case models.CategoryOffer:
		return models.OfferPayload{
			OfferID:  str("offer_id"),
			OutletID: str("outlet_id"),
		}
	case models.CategorySessionLifecycle:
		return models.SessionPayload{
			OutletID: str("outlet_id"),
			Referrer: str("referrer"),
		}
	default:
		return models.UnknownPayload{Fields: payload}
	}
}

// eventHash digests the normalized identity fields so that two submissions
// of the same logical event collapse to one fingerprint even when the raw
// encodings differ slightly.
func eventHash(eventType string, timestamp time.Time, sessionID string, payload map[string]any) string {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		payloadJSON = []byte(fmt.Sprintf("%v", payload))
	}

	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s", eventType, timestamp.UTC().Format(time.RFC3339Nano), sessionID, payloadJSON)
	return hex.EncodeToString(h.Sum(nil))
}

func serverSessionID(now time.Time) string {
	return fmt.Sprintf("s_server_%d_%s", now.UnixMilli(), ulid.NewULID())
}
