// Package cache provides the time-bounded memoization of price fetches.
// Time is always passed in explicitly so expiry is testable without
// touching the wall clock.
package cache

import (
	"sync"
	"time"

	"StockExpert/internal/model"
)

// Key identifies one cached series.
type Key struct {
	Symbol     string
	Resolution string // e.g. "2y/1d"
}

type entry struct {
	series *model.PriceSeries
	expiry time.Time
}

// SeriesCache is a read-through TTL cache of price series.
type SeriesCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[Key]entry
}

// New creates a cache with the given time-to-live.
func New(ttl time.Duration) *SeriesCache {
	return &SeriesCache{
		ttl:     ttl,
		entries: make(map[Key]entry),
	}
}

// Get returns the cached series for key if it has not expired at now.
func (c *SeriesCache) Get(key Key, now time.Time) (*model.PriceSeries, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || now.After(e.expiry) {
		delete(c.entries, key)
		return nil, false
	}
	return e.series, true
}

// Put stores a series under key, expiring ttl after now.
func (c *SeriesCache) Put(key Key, series *model.PriceSeries, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{series: series, expiry: now.Add(c.ttl)}
}

// Purge drops every entry expired at now and returns the count removed.
func (c *SeriesCache) Purge(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k, e := range c.entries {
		if now.After(e.expiry) {
			delete(c.entries, k)
			n++
		}
	}
	return n
}
