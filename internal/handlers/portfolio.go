package handlers

import (
	"context"
	"net/http"

	"github.com/Chethumuniraju/stockfolio/internal/common"
	"github.com/Chethumuniraju/stockfolio/internal/models"
	"github.com/Chethumuniraju/stockfolio/internal/portfolio"
	"github.com/Chethumuniraju/stockfolio/internal/quotes"
)

// HoldingsAPI is the slice of the stock API the portfolio handler depends on.
type HoldingsAPI interface {
	GetHoldings(ctx context.Context) ([]models.Holding, error)
}

// HoldingRow is one holding joined with its quote and derived figures.
// Pending is true when no quote was available; the numeric fields are then
// zero and the row is excluded from the summary totals.
type HoldingRow struct {
	models.Holding
	models.HoldingMetrics
	Close         float64 `json:"close"`
	PreviousClose float64 `json:"previousClose"`
	Pending       bool    `json:"pending,omitempty"`
}

// SummaryResponse is the payload for GET /api/portfolio/summary.
type SummaryResponse struct {
	Summary  models.PortfolioSummary `json:"summary"`
	Holdings []HoldingRow            `json:"holdings"`
	Pending  []string                `json:"pending,omitempty"`
	Display  SummaryDisplay          `json:"display"`
}

// SummaryDisplay carries the pre-formatted figures so every surface (web,
// MCP, logs) renders money identically.
type SummaryDisplay struct {
	TotalInvestment string `json:"totalInvestment"`
	CurrentValue    string `json:"currentValue"`
	TotalProfitLoss string `json:"totalProfitLoss"`
	TodayProfitLoss string `json:"todayProfitLoss"`
}

// PortfolioHandler serves the portfolio summary.
type PortfolioHandler struct {
	logger   *common.Logger
	api      HoldingsAPI
	resolver *quotes.Resolver
}

// NewPortfolioHandler creates a new portfolio handler.
func NewPortfolioHandler(logger *common.Logger, api HoldingsAPI, resolver *quotes.Resolver) *PortfolioHandler {
	return &PortfolioHandler{logger: logger, api: api, resolver: resolver}
}

// ServeHTTP handles GET /api/portfolio/summary.
func (h *PortfolioHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	holdings, err := h.api.GetHoldings(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("Holdings fetch failed")
		WriteAPIError(w, err)
		return
	}

	resp := BuildSummary(r.Context(), holdings, h.resolver)
	WriteJSON(w, http.StatusOK, resp)
}

// BuildSummary resolves quotes for the holdings and assembles the summary
// response. Shared between the live portfolio endpoint and the shared
// portfolio view.
func BuildSummary(ctx context.Context, holdings []models.Holding, resolver *quotes.Resolver) SummaryResponse {
	symbols := make([]string, len(holdings))
	for i, h := range holdings {
		symbols[i] = h.StockSymbol
	}
	quoteMap := resolver.Resolve(ctx, symbols)

	summary := portfolio.ComputeSummary(holdings, quoteMap)

	rows := make([]HoldingRow, 0, len(holdings))
	for _, holding := range holdings {
		row := HoldingRow{Holding: holding}
		if quote, ok := quoteMap[quotes.Key(holding.StockSymbol)]; ok {
			row.HoldingMetrics = portfolio.ComputeHoldingMetrics(holding, quote)
			row.Close = quote.Close
			row.PreviousClose = quote.PreviousClose
		} else {
			row.Pending = true
		}
		rows = append(rows, row)
	}

	return SummaryResponse{
		Summary:  summary.PortfolioSummary,
		Holdings: rows,
		Pending:  summary.Pending,
		Display: SummaryDisplay{
			TotalInvestment: common.FormatCurrency(summary.TotalInvestment),
			CurrentValue:    common.FormatCurrency(summary.CurrentValue),
			TotalProfitLoss: common.FormatSignedMoney(summary.TotalProfitLoss),
			TodayProfitLoss: common.FormatSignedMoney(summary.TodayProfitLoss),
		},
	}
}
