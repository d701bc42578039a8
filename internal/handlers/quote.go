package handlers

import (
	"net/http"
	"strings"

	"github.com/Chethumuniraju/stockfolio/internal/common"
	"github.com/Chethumuniraju/stockfolio/internal/quotes"
)

// QuoteHandler serves single-symbol quote lookups through the resolver, so
// a lookup warms the same cache the portfolio and watch views read from.
type QuoteHandler struct {
	logger   *common.Logger
	resolver *quotes.Resolver
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(logger *common.Logger, resolver *quotes.Resolver) *QuoteHandler {
	return &QuoteHandler{logger: logger, resolver: resolver}
}

// ServeHTTP handles GET /api/stocks/{symbol}/quote.
func (h *QuoteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/stocks"), "/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[1] != "quote" || quotes.Key(parts[0]) == "" {
		WriteError(w, http.StatusNotFound, "unknown stocks route")
		return
	}
	symbol := parts[0]

	quoteMap := h.resolver.Resolve(r.Context(), []string{symbol})
	quote, ok := quoteMap[quotes.Key(symbol)]
	if !ok {
		h.logger.Warn().Str("symbol", symbol).Msg("Quote unavailable")
		WriteError(w, http.StatusNotFound, "no quote available for "+quotes.Key(symbol))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"quote": quote,
		"display": map[string]string{
			"close":         common.FormatCurrency(quote.Close),
			"percentChange": common.FormatSignedPct(quote.PercentChange),
		},
	})
}
