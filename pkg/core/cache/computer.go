package cache

import (
	"context"
	"time"

	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/metrics"
)

// Computer memoizes a metrics service behind the day-keyed LRU cache.
// Force-refresh recomputes and replaces the cached entry rather than
// leaving a stale one behind.
type Computer struct {
	svc   *metrics.Service
	cache *DocumentCache
	now   func() time.Time
}

func NewComputer(svc *metrics.Service, cache *DocumentCache) *Computer {
	return &Computer{svc: svc, cache: cache, now: time.Now}
}

// Metrics returns the document for a ticker, serving today's cached copy
// unless forceRefresh is set.
func (c *Computer) Metrics(ctx context.Context, ticker string, forceRefresh bool) metrics.Document {
	key := DayKey(ticker, c.now())
	if !forceRefresh {
		if doc, ok := c.cache.Get(key); ok {
			return doc
		}
	}

	doc := c.svc.Compute(ctx, ticker)
	c.cache.Put(key, doc)
	return doc
}

// Stats exposes the underlying cache counters.
func (c *Computer) Stats() Stats {
	return c.cache.Stats()
}
