package quotes

import (
	"context"
	"sync"

	"github.com/Chethumuniraju/stockfolio/internal/common"
	"github.com/Chethumuniraju/stockfolio/internal/models"
)

// maxConcurrentFetches bounds the quote fan-out so a large portfolio does
// not open one connection per symbol against the stock API.
const maxConcurrentFetches = 8

// QuoteGetter fetches a single quote from the stock API.
type QuoteGetter interface {
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)
}

// Resolver fills the quote cache from the stock API. Individual symbol
// failures are absorbed: a portfolio with one unquotable symbol still
// renders the rest.
type Resolver struct {
	api   QuoteGetter
	cache *Cache
	log   *common.Logger

	mu          sync.Mutex
	nextSubID   int
	subscribers map[int]func(models.Quote)
}

// NewResolver creates a resolver backed by the given API and cache.
func NewResolver(api QuoteGetter, cache *Cache, log *common.Logger) *Resolver {
	return &Resolver{
		api:         api,
		cache:       cache,
		log:         log,
		subscribers: make(map[int]func(models.Quote)),
	}
}

// Subscribe registers a callback invoked for every freshly fetched quote and
// returns an unsubscribe func. Callbacks run on resolver goroutines and must
// not block.
func (r *Resolver) Subscribe(fn func(models.Quote)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextSubID
	r.nextSubID++
	r.subscribers[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subscribers, id)
	}
}

func (r *Resolver) notify(q models.Quote) {
	r.mu.Lock()
	subs := make([]func(models.Quote), 0, len(r.subscribers))
	for _, fn := range r.subscribers {
		subs = append(subs, fn)
	}
	r.mu.Unlock()

	for _, fn := range subs {
		fn(q)
	}
}

// Resolve ensures the cache holds a fresh quote for each symbol, fetching
// stale or missing ones concurrently, then returns a snapshot keyed by
// normalized symbol. Symbols that could not be fetched and have no cached
// quote are absent from the result.
func (r *Resolver) Resolve(ctx context.Context, symbols []string) map[string]models.Quote {
	missing := make([]string, 0, len(symbols))
	seen := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		key := Key(s)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if _, ok := r.cache.Fresh(key); !ok {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		r.fetchAll(ctx, missing)
	}

	return r.cache.Snapshot(symbols)
}

// Refresh fetches the given symbols unconditionally, bypassing freshness.
func (r *Resolver) Refresh(ctx context.Context, symbols []string) {
	keys := make([]string, 0, len(symbols))
	seen := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		key := Key(s)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	r.fetchAll(ctx, keys)
}

// fetchAll fans out quote fetches with bounded concurrency and waits for
// all of them. Per-symbol failures are logged and dropped.
func (r *Resolver) fetchAll(ctx context.Context, symbols []string) {
	sem := make(chan struct{}, maxConcurrentFetches)
	var wg sync.WaitGroup

	for _, symbol := range symbols {
		wg.Add(1)
		sem <- struct{}{}
		go func(symbol string) {
			defer wg.Done()
			defer func() { <-sem }()

			quote, err := r.api.GetQuote(ctx, symbol)
			if err != nil {
				r.log.Warn().Str("symbol", symbol).Err(err).Msg("Quote fetch failed")
				return
			}
			r.cache.Set(*quote)
			r.notify(*quote)
		}(symbol)
	}

	wg.Wait()
}
