package ingestors

import "sync"

const (
	defaultDedupCapacity = 10000
	evictFraction        = 5 // oldest 1/5 evicted on overflow
)

// Deduplicator is a capacity-bounded set of event fingerprints. On overflow
// it evicts the oldest 20% by insertion order rather than rejecting inserts:
// bounded memory takes priority over perfect dedup history. It is an
// injectable component, not process-global state, so tests can build a fresh
// one per run.
//
// The set is process-local and never persisted. Losing it on restart only
// shrinks the idempotency window, it cannot corrupt stored data.
type Deduplicator struct {
	mu       sync.Mutex
	capacity int
	seen     map[string]struct{}
	order    []string
}

func NewDeduplicator(capacity int) *Deduplicator {
	if capacity <= 0 {
		capacity = defaultDedupCapacity
	}
	return &Deduplicator{
		capacity: capacity,
		seen:     make(map[string]struct{}, capacity),
	}
}

func (d *Deduplicator) IsDuplicate(hash string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.seen[hash]
	return ok
}

func (d *Deduplicator) MarkProcessed(hash string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[hash]; ok {
		return
	}

	if len(d.seen) >= d.capacity {
		d.evictOldest()
	}

	d.seen[hash] = struct{}{}
	d.order = append(d.order, hash)
}

func (d *Deduplicator) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}

func (d *Deduplicator) evictOldest() {
	evictCount := d.capacity / evictFraction
	if evictCount < 1 {
		evictCount = 1
	}
	if evictCount > len(d.order) {
		evictCount = len(d.order)
	}

	for _, hash := range d.order[:evictCount] {
		delete(d.seen, hash)
	}
	d.order = append(d.order[:0], d.order[evictCount:]...)
}
