package stores

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"outlet-analytics/internal/models"
	"outlet-analytics/internal/shared/filestorages"
)

const (
	fallbackLiveKey     = "fallback/events.ndjson"
	fallbackSweepKey    = "fallback/events.ndjson.reconciling"
	fallbackMaxLineSize = 1 << 20
)

// FallbackStore is the durable overflow sink. Events land here whenever
// primary persistence fails; the guarantee is "saved somewhere", not "saved
// in the primary store". Records are line-delimited JSON for manual or
// automated reconciliation.
//
//go:generate mockgen -source=fallback_store.go -destination=./mocks/fallback_store_mock.go -package=mocks
type FallbackStore interface {
	// WriteEvent appends one record. If the append itself fails the record
	// is dumped to stderr as a last resort and the error returned.
	WriteEvent(ctx context.Context, event *models.StoredEvent, payload map[string]any, reason string) error
	// Collect rotates the live file aside and returns its records, plus any
	// records left over from a sweep that crashed mid-way.
	Collect(ctx context.Context) ([]models.FallbackRecord, error)
	// Discard removes the rotated file after a completed sweep.
	Discard(ctx context.Context) error
}

type fallbackStore struct {
	storage filestorages.FileStorage

	mu sync.Mutex
}

func NewFallbackStore(storage filestorages.FileStorage) FallbackStore {
	return &fallbackStore{storage: storage}
}

func (s *fallbackStore) WriteEvent(ctx context.Context, event *models.StoredEvent, payload map[string]any, reason string) error {
	record := models.FallbackRecord{
		Event:     *event,
		Payload:   payload,
		Reason:    reason,
		WrittenAt: time.Now().UTC(),
	}

	line, err := json.Marshal(record)
	if err != nil {
		// Payload maps come sanitized from the parser, so this only fires on
		// unmarshalable values smuggled past it. Strip the payload and retry
		// so the event itself is still preserved.
		record.Payload = nil
		line, err = json.Marshal(record)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fallback store lost record: marshal failed: %v (event_hash=%s reason=%s)\n", err, event.EventHash, reason)
			return fmt.Errorf("failed to marshal fallback record: %w", err)
		}
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Append(ctx, fallbackLiveKey, line); err != nil {
		// Last-resort safety net: the record goes to stderr so operators can
		// recover it even when the sink's own I/O is broken.
		fmt.Fprintf(os.Stderr, "fallback store write failed: %v record=%s", err, line)
		return fmt.Errorf("failed to append fallback record: %w", err)
	}
	return nil
}

func (s *fallbackStore) Collect(ctx context.Context) ([]models.FallbackRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A leftover sweep file means the previous sweep crashed before Discard;
	// re-read it instead of rotating on top of it.
	leftover, err := s.storage.Get(ctx, fallbackSweepKey)
	switch {
	case err == nil:
		_ = leftover.Close()
	case err == filestorages.ErrFileNotFound:
		if err := s.storage.Swap(ctx, fallbackLiveKey, fallbackSweepKey); err != nil {
			if err == filestorages.ErrFileNotFound {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to rotate fallback file: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to probe swept fallback file: %w", err)
	}

	return s.readRecords(ctx, fallbackSweepKey)
}

func (s *fallbackStore) Discard(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(ctx, fallbackSweepKey); err != nil && err != filestorages.ErrFileNotFound {
		return fmt.Errorf("failed to discard swept fallback file: %w", err)
	}
	return nil
}

func (s *fallbackStore) readRecords(ctx context.Context, key string) ([]models.FallbackRecord, error) {
	readCloser, err := s.storage.Get(ctx, key)
	if err != nil {
		if err == filestorages.ErrFileNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open fallback file: %w", err)
	}
	defer readCloser.Close()

	var records []models.FallbackRecord
	scanner := bufio.NewScanner(readCloser)
	scanner.Buffer(make([]byte, 64*1024), fallbackMaxLineSize)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record models.FallbackRecord
		if err := json.Unmarshal(line, &record); err != nil {
			// A torn or corrupt line is dumped to stderr rather than aborting
			// the sweep of the healthy records around it.
			fmt.Fprintf(os.Stderr, "fallback store skipping unreadable record: %v line=%s\n", err, line)
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("failed to scan fallback file: %w", err)
	}
	return records, nil
}
