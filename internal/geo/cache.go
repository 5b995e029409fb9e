package geo

import (
	"fmt"
	"sync"
)

// CachedClassifier wraps a Classifier with an in-memory LRU cache keyed by
// the coordinate rounded to 4 decimal places (~11 m). Zone-table lookups are
// cheap enough to skip this; it exists for the polygon classifier, where a
// containment test walks every ring. Rounding means two positions within the
// same ~11 m cell share a verdict, which is far below marker resolution.
type CachedClassifier struct {
	inner    Classifier
	cache    *lruCache
	onLookup func(hit bool)
}

// NewCachedClassifier creates a cache decorator around a classifier.
// onLookup, if non-nil, is invoked for every lookup with the hit/miss result
// so callers can attach metrics.
func NewCachedClassifier(inner Classifier, maxEntries int, onLookup func(hit bool)) *CachedClassifier {
	return &CachedClassifier{
		inner:    inner,
		cache:    newLRUCache(maxEntries),
		onLookup: onLookup,
	}
}

func (c *CachedClassifier) OceanPlausible(lat, lon float64) bool {
	key := fmt.Sprintf("%.4f,%.4f", lat, lon)
	if verdict, ok := c.cache.get(key); ok {
		if c.onLookup != nil {
			c.onLookup(true)
		}
		return verdict
	}
	if c.onLookup != nil {
		c.onLookup(false)
	}

	verdict := c.inner.OceanPlausible(lat, lon)
	c.cache.put(key, verdict)
	return verdict
}

// lruCache is a simple thread-safe LRU cache for classification verdicts.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value bool
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
