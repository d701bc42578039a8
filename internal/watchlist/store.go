// Package watchlist keeps a local snapshot of the user's watchlists in sync
// with the stock API. The backend owns the data; every mutation round-trips
// and then reloads the full collection, so the snapshot never drifts from
// what the server holds.
package watchlist

import (
	"context"
	"strings"
	"sync"

	"github.com/Chethumuniraju/stockfolio/internal/client"
	"github.com/Chethumuniraju/stockfolio/internal/common"
	"github.com/Chethumuniraju/stockfolio/internal/models"
)

// API is the slice of the stock API the store depends on.
type API interface {
	ListWatchlists(ctx context.Context) ([]models.Watchlist, error)
	CreateWatchlist(ctx context.Context, name string) (*models.Watchlist, error)
	AddStock(ctx context.Context, watchlistID, symbol string) error
	RemoveStock(ctx context.Context, watchlistID, symbol string) error
	DeleteWatchlist(ctx context.Context, watchlistID string) error
}

// Store holds the current watchlist snapshot. The snapshot is replaced
// wholesale under the mutex on every reload; readers get copies and never
// see a half-applied mutation.
type Store struct {
	api API
	log *common.Logger

	mu    sync.RWMutex
	lists []models.Watchlist
}

// NewStore creates a store with an empty snapshot. Call Reload to populate.
func NewStore(api API, log *common.Logger) *Store {
	return &Store{api: api, log: log}
}

// Reload replaces the snapshot with the server's current collection.
// Symbols are deduplicated on the way in so a backend that double-recorded
// an add never renders a symbol twice. On error the previous snapshot is
// kept untouched.
func (s *Store) Reload(ctx context.Context) error {
	lists, err := s.api.ListWatchlists(ctx)
	if err != nil {
		return err
	}

	for i := range lists {
		lists[i].StockSymbols = lists[i].UniqueSymbols()
	}

	s.mu.Lock()
	s.lists = lists
	s.mu.Unlock()

	s.log.Debug().Int("count", len(lists)).Msg("Watchlists reloaded")
	return nil
}

// Watchlists returns a copy of the current snapshot.
func (s *Store) Watchlists() []models.Watchlist {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Watchlist, len(s.lists))
	copy(out, s.lists)
	return out
}

// Get returns the watchlist with the given id from the snapshot.
func (s *Store) Get(id string) (models.Watchlist, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.lists {
		if w.ID == id {
			return w, true
		}
	}
	return models.Watchlist{}, false
}

// Create makes a new named watchlist and reloads. Blank names are rejected
// locally without a round trip.
func (s *Store) Create(ctx context.Context, name string) (*models.Watchlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, client.Validationf("watchlist name cannot be empty")
	}

	created, err := s.api.CreateWatchlist(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := s.Reload(ctx); err != nil {
		s.log.Warn().Err(err).Msg("Reload after watchlist create failed")
	}
	return created, nil
}

// AddStock adds a symbol to a watchlist and reloads. Adding a symbol that
// is already present is a no-op: the snapshot is checked first so the
// backend never sees the duplicate.
func (s *Store) AddStock(ctx context.Context, watchlistID, symbol string) error {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return client.Validationf("stock symbol cannot be empty")
	}

	if w, ok := s.Get(watchlistID); ok && w.HasSymbol(symbol) {
		return nil
	}

	if err := s.api.AddStock(ctx, watchlistID, symbol); err != nil {
		return err
	}
	return s.Reload(ctx)
}

// RemoveStock removes a symbol from a watchlist and reloads. Removing a
// symbol the server no longer has counts as success — the desired end state
// already holds.
func (s *Store) RemoveStock(ctx context.Context, watchlistID, symbol string) error {
	if err := s.api.RemoveStock(ctx, watchlistID, symbol); err != nil {
		if !client.IsNotFound(err) {
			return err
		}
		s.log.Debug().
			Str("watchlist", watchlistID).
			Str("symbol", symbol).
			Msg("Symbol already absent on remove")
	}
	return s.Reload(ctx)
}

// Delete removes a watchlist entirely and reloads.
func (s *Store) Delete(ctx context.Context, watchlistID string) error {
	if err := s.api.DeleteWatchlist(ctx, watchlistID); err != nil {
		return err
	}
	return s.Reload(ctx)
}

// Symbols returns the union of all watched symbols across every watchlist,
// deduplicated. Used to drive quote prefetch for the watch view.
func (s *Store) Symbols() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, w := range s.lists {
		for _, sym := range w.StockSymbols {
			key := strings.ToUpper(sym)
			if !seen[key] {
				seen[key] = true
				out = append(out, sym)
			}
		}
	}
	return out
}
