// Package quotes caches stock quotes by symbol and resolves missing ones
// against the stock API with bounded concurrency.
package quotes

import (
	"strings"
	"sync"
	"time"

	"github.com/Chethumuniraju/stockfolio/internal/models"
)

// entry wraps a cached quote with insertion order tracking for eviction.
type entry struct {
	quote     models.Quote
	insertIdx int64
}

// Cache holds the latest quote per symbol. Keys are upper-cased so that
// "aapl" and "AAPL" resolve to the same entry. Thread-safe with sync.RWMutex.
//
// Stale quotes are kept rather than deleted: a stale price is still worth
// rendering while a refresh is in flight. Freshness is the caller's concern
// via Fresh/Get.
type Cache struct {
	mu         sync.RWMutex
	items      map[string]entry
	ttl        time.Duration
	maxEntries int
	nextIdx    int64
}

// NewCache creates a quote cache with the given freshness TTL and capacity.
func NewCache(ttl time.Duration, maxEntries int) *Cache {
	return &Cache{
		items:      make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

// Key normalizes a symbol for cache lookup.
func Key(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Get returns the cached quote for symbol and whether it exists. The quote
// may be stale; check Fresh if staleness matters.
func (c *Cache) Get(symbol string) (models.Quote, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.items[Key(symbol)]
	if !ok {
		return models.Quote{}, false
	}
	return e.quote, true
}

// Fresh returns the cached quote only if it is within the TTL.
func (c *Cache) Fresh(symbol string) (models.Quote, bool) {
	q, ok := c.Get(symbol)
	if !ok {
		return models.Quote{}, false
	}
	if time.Since(q.FetchedAt) > c.ttl {
		return models.Quote{}, false
	}
	return q, true
}

// Set stores a quote, stamping FetchedAt if the caller left it zero.
// Evicts the oldest entry if at capacity.
func (c *Cache) Set(quote models.Quote) {
	if quote.FetchedAt.IsZero() {
		quote.FetchedAt = time.Now()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := Key(quote.Symbol)
	e := entry{quote: quote, insertIdx: c.nextIdx}
	c.nextIdx++

	// If key already exists, update in place (no capacity change)
	if _, exists := c.items[key]; exists {
		c.items[key] = e
		return
	}

	// Evict oldest if at capacity
	if c.maxEntries > 0 && len(c.items) >= c.maxEntries {
		c.evictOldest()
	}

	c.items[key] = e
}

// Snapshot returns the cached quotes for the given symbols, keyed by
// normalized symbol. Symbols with no cached quote are absent from the map.
func (c *Cache) Snapshot(symbols []string) map[string]models.Quote {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]models.Quote, len(symbols))
	for _, s := range symbols {
		if e, ok := c.items[Key(s)]; ok {
			out[Key(s)] = e.quote
		}
	}
	return out
}

// Len returns the number of cached quotes.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// evictOldest removes the entry with the lowest insertIdx. Must be called with mu held.
func (c *Cache) evictOldest() {
	var oldestKey string
	var oldestIdx int64 = -1

	for key, e := range c.items {
		if oldestIdx == -1 || e.insertIdx < oldestIdx {
			oldestIdx = e.insertIdx
			oldestKey = key
		}
	}

	if oldestKey != "" {
		delete(c.items, oldestKey)
	}
}
