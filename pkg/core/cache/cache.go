// Package cache memoizes computed metric documents. Keys carry the ticker
// and the calendar day, so cached results roll over naturally at midnight
// without explicit invalidation.
package cache

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/metrics"
)

// DefaultCapacity bounds the number of memoized documents.
const DefaultCapacity = 256

// DocumentCache is a concurrent-safe LRU cache of computed documents.
type DocumentCache struct {
	mu       sync.Mutex
	entries  map[string]metrics.Document
	order    []string // LRU order: front=oldest, back=newest
	capacity int
	hits     atomic.Int64
	misses   atomic.Int64
}

// Stats contains cache performance counters.
type Stats struct {
	Entries  int   `json:"entries"`
	Capacity int   `json:"capacity"`
	Hits     int64 `json:"hits"`
	Misses   int64 `json:"misses"`
}

func New(capacity int) *DocumentCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &DocumentCache{
		entries:  make(map[string]metrics.Document),
		capacity: capacity,
	}
}

// DayKey builds the memoization key for a ticker on a given day.
func DayKey(ticker string, day time.Time) string {
	return strings.ToUpper(ticker) + ":" + day.UTC().Format("2006-01-02")
}

// Get retrieves a cached document by key.
func (c *DocumentCache) Get(key string) (metrics.Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		return metrics.Document{}, false
	}

	c.removeFromOrder(key)
	c.order = append(c.order, key)
	c.hits.Add(1)
	return doc, true
}

// Put stores a document, evicting the least recently used entry at
// capacity.
func (c *DocumentCache) Put(key string, doc metrics.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = doc
		c.removeFromOrder(key)
		c.order = append(c.order, key)
		return
	}

	if len(c.entries) >= c.capacity && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = doc
	c.order = append(c.order, key)
}

// Stats returns a snapshot of the counters.
func (c *DocumentCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Entries:  len(c.entries),
		Capacity: c.capacity,
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
	}
}

func (c *DocumentCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
