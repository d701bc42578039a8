// Package app assembles the portal's components and their dependencies.
package app

import (
	"time"

	"github.com/Chethumuniraju/stockfolio/internal/client"
	"github.com/Chethumuniraju/stockfolio/internal/common"
	"github.com/Chethumuniraju/stockfolio/internal/config"
	"github.com/Chethumuniraju/stockfolio/internal/handlers"
	"github.com/Chethumuniraju/stockfolio/internal/quotes"
	"github.com/Chethumuniraju/stockfolio/internal/search"
	"github.com/Chethumuniraju/stockfolio/internal/share"
	"github.com/Chethumuniraju/stockfolio/internal/watchlist"
)

// quoteCacheCapacity bounds the in-memory quote cache. A retail portfolio
// plus a handful of watchlists stays far below this.
const quoteCacheCapacity = 1000

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	// Core services
	StockClient   *client.StockClient
	QuoteCache    *quotes.Cache
	QuoteResolver *quotes.Resolver
	Watchlists    *watchlist.Store
	ShareIssuer   *share.Issuer

	// HTTP handlers
	HealthHandler     *handlers.HealthHandler
	VersionHandler    *handlers.VersionHandler
	PortfolioHandler  *handlers.PortfolioHandler
	WatchlistsHandler *handlers.WatchlistsHandler
	SearchHandler     *handlers.SearchHandler
	QuoteHandler      *handlers.QuoteHandler
	ShareHandler      *handlers.ShareHandler
	SharedHandler     *handlers.SharedHandler
	StreamHandler     *handlers.StreamHandler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	a.StockClient = client.NewStockClient(cfg.API.URL)

	ttl := time.Duration(cfg.Quotes.TTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = common.FreshnessQuote
	}
	a.QuoteCache = quotes.NewCache(ttl, quoteCacheCapacity)
	a.QuoteResolver = quotes.NewResolver(a.StockClient, a.QuoteCache, logger)

	a.Watchlists = watchlist.NewStore(a.StockClient, logger)
	a.ShareIssuer = share.NewIssuer(a.StockClient, cfg.BaseURL(), logger)

	a.initHandlers()

	logger.Info().
		Str("api_url", cfg.API.URL).
		Str("quote_ttl", ttl.String()).
		Msg("application initialization complete")

	return a, nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.HealthHandler = handlers.NewHealthHandler(a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.PortfolioHandler = handlers.NewPortfolioHandler(a.Logger, a.StockClient, a.QuoteResolver)
	a.WatchlistsHandler = handlers.NewWatchlistsHandler(a.Logger, a.Watchlists)
	a.SearchHandler = handlers.NewSearchHandler(a.Logger, a.StockClient)
	a.QuoteHandler = handlers.NewQuoteHandler(a.Logger, a.QuoteResolver)
	a.ShareHandler = handlers.NewShareHandler(a.Logger, a.ShareIssuer)
	a.SharedHandler = handlers.NewSharedHandler(a.Logger, a.StockClient, a.QuoteResolver)
	a.StreamHandler = handlers.NewStreamHandler(a.Logger, a.QuoteResolver, a.StockClient, search.DefaultDelay)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close closes all application resources.
func (a *App) Close() error {
	return nil
}
