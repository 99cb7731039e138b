package ingestors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeduplicator_MarkAndCheck(t *testing.T) {
	t.Parallel()

	dedup := NewDeduplicator(100)

	assert.False(t, dedup.IsDuplicate("h1"))
	dedup.MarkProcessed("h1")
	assert.True(t, dedup.IsDuplicate("h1"))
	assert.False(t, dedup.IsDuplicate("h2"))
	assert.Equal(t, 1, dedup.Len())
}

func TestDeduplicator_MarkIsIdempotent(t *testing.T) {
	t.Parallel()

	dedup := NewDeduplicator(100)
	dedup.MarkProcessed("h1")
	dedup.MarkProcessed("h1")
	dedup.MarkProcessed("h1")
	assert.Equal(t, 1, dedup.Len())
}

func TestDeduplicator_EvictsOldestFifthOnOverflow(t *testing.T) {
	t.Parallel()

	dedup := NewDeduplicator(10)
	for i := 0; i < 10; i++ {
		dedup.MarkProcessed(fmt.Sprintf("h%d", i))
	}
	assert.Equal(t, 10, dedup.Len())

	// 11th insert evicts the oldest 20% (h0, h1)
	dedup.MarkProcessed("h10")
	assert.Equal(t, 9, dedup.Len())
	assert.False(t, dedup.IsDuplicate("h0"))
	assert.False(t, dedup.IsDuplicate("h1"))
	assert.True(t, dedup.IsDuplicate("h2"))
	assert.True(t, dedup.IsDuplicate("h10"))
}

func TestDeduplicator_ZeroCapacityUsesDefault(t *testing.T) {
	t.Parallel()

	dedup := NewDeduplicator(0)
	dedup.MarkProcessed("h1")
	assert.True(t, dedup.IsDuplicate("h1"))
	assert.Equal(t, defaultDedupCapacity, dedup.capacity)
}

func TestDeduplicator_EvictedHashCanBeReprocessed(t *testing.T) {
	t.Parallel()

	dedup := NewDeduplicator(5)
	for i := 0; i < 6; i++ {
		dedup.MarkProcessed(fmt.Sprintf("h%d", i))
	}

	// h0 was evicted; marking it again is a fresh insert, not a no-op
	assert.False(t, dedup.IsDuplicate("h0"))
	dedup.MarkProcessed("h0")
	assert.True(t, dedup.IsDuplicate("h0"))
}
