package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- mock for cache tests ---

type countingClassifier struct {
	calls   int
	verdict bool
}

func (m *countingClassifier) OceanPlausible(_, _ float64) bool {
	m.calls++
	return m.verdict
}

// --- CachedClassifier tests ---

func TestCachedClassifier_RepeatLookupHitsCache(t *testing.T) {
	inner := &countingClassifier{verdict: true}
	cached := NewCachedClassifier(inner, 10, nil)

	assert.True(t, cached.OceanPlausible(0.0, -140.0))
	assert.True(t, cached.OceanPlausible(0.0, -140.0))

	assert.Equal(t, 1, inner.calls, "should only call inner once")
}

func TestCachedClassifier_NearbyCoordinatesShareCell(t *testing.T) {
	inner := &countingClassifier{verdict: true}
	cached := NewCachedClassifier(inner, 10, nil)

	// Both round to the same 4-decimal cell.
	cached.OceanPlausible(10.00001, -140.00002)
	cached.OceanPlausible(10.00004, -140.00001)

	assert.Equal(t, 1, inner.calls)
}

func TestCachedClassifier_DifferentCellsMiss(t *testing.T) {
	inner := &countingClassifier{verdict: false}
	cached := NewCachedClassifier(inner, 10, nil)

	cached.OceanPlausible(39.0, -98.0)
	cached.OceanPlausible(40.0, 10.0)

	assert.Equal(t, 2, inner.calls)
}

func TestCachedClassifier_ReportsLookups(t *testing.T) {
	inner := &countingClassifier{verdict: true}
	var hits, misses int
	cached := NewCachedClassifier(inner, 10, func(hit bool) {
		if hit {
			hits++
		} else {
			misses++
		}
	})

	cached.OceanPlausible(0.0, -140.0)
	cached.OceanPlausible(0.0, -140.0)
	cached.OceanPlausible(30.0, -40.0)

	assert.Equal(t, 1, hits)
	assert.Equal(t, 2, misses)
}

// --- LRU cache unit tests ---

func TestLRUCache_BasicGetPut(t *testing.T) {
	c := newLRUCache(3)

	c.put("a", true)
	c.put("b", false)

	verdict, ok := c.get("a")
	assert.True(t, ok)
	assert.True(t, verdict)

	verdict, ok = c.get("b")
	assert.True(t, ok)
	assert.False(t, verdict)

	_, ok = c.get("missing")
	assert.False(t, ok)
}

func TestLRUCache_Eviction(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", true)
	c.put("b", true)
	c.put("c", true) // evicts "a"

	_, ok := c.get("a")
	assert.False(t, ok, "a should have been evicted")

	_, ok = c.get("b")
	assert.True(t, ok)

	_, ok = c.get("c")
	assert.True(t, ok)
}

func TestLRUCache_AccessPromotesEntry(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", true)
	c.put("b", true)

	// Access "a" to promote it, then insert "c" to evict the LRU entry.
	c.get("a")
	c.put("c", true)

	_, ok := c.get("a")
	assert.True(t, ok, "a was accessed recently, should not be evicted")

	_, ok = c.get("b")
	assert.False(t, ok, "b should have been evicted")
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", true)
	c.put("a", false)

	verdict, ok := c.get("a")
	assert.True(t, ok)
	assert.False(t, verdict)
}
