package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/Chethumuniraju/stockfolio/internal/common"
	"github.com/Chethumuniraju/stockfolio/internal/models"
)

// SearchAPI is the slice of the stock API the search handler depends on.
type SearchAPI interface {
	SearchStocks(ctx context.Context, query string) ([]models.SearchResult, error)
}

// SearchHandler serves free-text symbol search. Debouncing lives client-side
// (and in the websocket stream); this endpoint answers every request it
// receives, so a blank query short-circuits to an empty result rather than
// hitting the backend.
type SearchHandler struct {
	logger *common.Logger
	api    SearchAPI
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(logger *common.Logger, api SearchAPI) *SearchHandler {
	return &SearchHandler{logger: logger, api: api}
}

// ServeHTTP handles GET /api/stocks/search?symbol=Q.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("symbol"))
	if query == "" {
		WriteJSON(w, http.StatusOK, map[string]interface{}{"data": []models.SearchResult{}})
		return
	}

	results, err := h.api.SearchStocks(r.Context(), query)
	if err != nil {
		h.logger.Warn().Str("query", query).Err(err).Msg("Search failed")
		WriteAPIError(w, err)
		return
	}
	if results == nil {
		results = []models.SearchResult{}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{"data": results})
}
