package server

import "net/http"

// setupRoutes configures all HTTP routes.
func setupRoutesFor(a appHandlers) *http.ServeMux {
	mux := http.NewServeMux()

	// API routes
	mux.Handle("/api/health", a.Health)
	mux.Handle("/api/version", a.Version)
	mux.Handle("/api/portfolio/summary", a.Portfolio)
	mux.Handle("/api/watchlists", a.Watchlists)
	mux.Handle("/api/watchlists/", a.Watchlists)
	mux.Handle("/api/stocks/search", a.Search)
	mux.Handle("/api/stocks/", a.Quote)
	mux.Handle("/api/share", a.Share)
	mux.Handle("/api/shared/", a.Shared)

	// Live quote + debounced search stream
	mux.Handle("/ws", a.Stream)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", handleNotFound)

	return mux
}

// appHandlers is the set of handlers the route table mounts. Decoupled from
// *app.App so route tests can mount fakes.
type appHandlers struct {
	Health     http.Handler
	Version    http.Handler
	Portfolio  http.Handler
	Watchlists http.Handler
	Search     http.Handler
	Quote      http.Handler
	Share      http.Handler
	Shared     http.Handler
	Stream     http.Handler
}

func (s *Server) setupRoutes() *http.ServeMux {
	return setupRoutesFor(appHandlers{
		Health:     s.app.HealthHandler,
		Version:    s.app.VersionHandler,
		Portfolio:  s.app.PortfolioHandler,
		Watchlists: s.app.WatchlistsHandler,
		Search:     s.app.SearchHandler,
		Quote:      s.app.QuoteHandler,
		Share:      s.app.ShareHandler,
		Shared:     s.app.SharedHandler,
		Stream:     s.app.StreamHandler,
	})
}

// handleNotFound returns a JSON 404 for unmatched API routes.
func handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not Found","message":"The requested endpoint does not exist"}`))
}
