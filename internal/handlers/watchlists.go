package handlers

import (
	"net/http"
	"strings"

	"github.com/Chethumuniraju/stockfolio/internal/common"
	"github.com/Chethumuniraju/stockfolio/internal/watchlist"
)

// WatchlistsHandler serves the watchlist collection and its mutations.
// All writes go through the store, which round-trips to the stock API and
// reloads, so responses always reflect server state.
type WatchlistsHandler struct {
	logger *common.Logger
	store  *watchlist.Store
}

// NewWatchlistsHandler creates a new watchlists handler.
func NewWatchlistsHandler(logger *common.Logger, store *watchlist.Store) *WatchlistsHandler {
	return &WatchlistsHandler{logger: logger, store: store}
}

// ServeHTTP routes watchlist requests:
//
//	GET    /api/watchlists                       list
//	POST   /api/watchlists                       create {name}
//	DELETE /api/watchlists/{id}                  delete
//	POST   /api/watchlists/{id}/stocks           add {symbol}
//	DELETE /api/watchlists/{id}/stocks/{symbol}  remove
func (h *WatchlistsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/watchlists"), "/")
	parts := []string{}
	if rest != "" {
		parts = strings.Split(rest, "/")
	}

	switch {
	case len(parts) == 0:
		h.handleCollection(w, r)
	case len(parts) == 1:
		h.handleItem(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "stocks":
		h.handleAddStock(w, r, parts[0])
	case len(parts) == 3 && parts[1] == "stocks":
		h.handleRemoveStock(w, r, parts[0], parts[2])
	default:
		WriteError(w, http.StatusNotFound, "unknown watchlist route")
	}
}

func (h *WatchlistsHandler) handleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *WatchlistsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Reload(r.Context()); err != nil {
		h.logger.Warn().Err(err).Msg("Watchlist reload failed")
		WriteAPIError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, h.store.Watchlists())
}

func (h *WatchlistsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.store.Create(r.Context(), req.Name)
	if err != nil {
		WriteAPIError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

func (h *WatchlistsHandler) handleItem(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		WriteAPIError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *WatchlistsHandler) handleAddStock(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Symbol string `json:"symbol"`
	}
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.store.AddStock(r.Context(), id, req.Symbol); err != nil {
		WriteAPIError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "added"})
}

func (h *WatchlistsHandler) handleRemoveStock(w http.ResponseWriter, r *http.Request, id, symbol string) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.store.RemoveStock(r.Context(), id, symbol); err != nil {
		WriteAPIError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}
