// Package portfolio derives portfolio-level and per-holding figures from
// holdings and quotes. All functions are pure: no I/O, no retained state.
package portfolio

import (
	"github.com/shopspring/decimal"

	"github.com/Chethumuniraju/stockfolio/internal/models"
	"github.com/Chethumuniraju/stockfolio/internal/quotes"
)

// Summary is a portfolio summary plus the symbols that could not be valued
// because no quote was available. Pending holdings are excluded from every
// total rather than valued at zero.
type Summary struct {
	models.PortfolioSummary
	Pending []string `json:"pending,omitempty"`
}

// ComputeSummary aggregates holdings against the quote map. Accumulation
// runs on decimals so the result is independent of holding order; the
// float64 totals are materialized once at the end.
func ComputeSummary(holdings []models.Holding, quoteBySymbol map[string]models.Quote) Summary {
	var investment, current, today decimal.Decimal

	var pending []string
	for _, h := range holdings {
		quote, ok := quoteBySymbol[quotes.Key(h.StockSymbol)]
		if !ok {
			pending = append(pending, h.StockSymbol)
			continue
		}

		qty := decimal.NewFromFloat(h.Quantity)
		investment = investment.Add(qty.Mul(decimal.NewFromFloat(h.AveragePrice)))
		current = current.Add(qty.Mul(decimal.NewFromFloat(quote.Close)))
		today = today.Add(qty.Mul(decimal.NewFromFloat(quote.Close - quote.PreviousClose)))
	}

	return Summary{
		PortfolioSummary: models.PortfolioSummary{
			TotalInvestment: investment.InexactFloat64(),
			CurrentValue:    current.InexactFloat64(),
			TotalProfitLoss: current.Sub(investment).InexactFloat64(),
			TodayProfitLoss: today.InexactFloat64(),
		},
		Pending: pending,
	}
}

// ComputeHoldingMetrics derives the per-row display figures for one holding.
// ProfitLossPercent is zero when the investment is zero (free shares) so a
// division by zero never reaches the renderer.
func ComputeHoldingMetrics(h models.Holding, quote models.Quote) models.HoldingMetrics {
	qty := decimal.NewFromFloat(h.Quantity)
	investment := qty.Mul(decimal.NewFromFloat(h.AveragePrice))
	current := qty.Mul(decimal.NewFromFloat(quote.Close))
	profitLoss := current.Sub(investment)

	var pct decimal.Decimal
	if !investment.IsZero() {
		pct = profitLoss.Div(investment).Mul(decimal.NewFromInt(100))
	}

	return models.HoldingMetrics{
		Investment:        investment.InexactFloat64(),
		CurrentValue:      current.InexactFloat64(),
		ProfitLoss:        profitLoss.InexactFloat64(),
		ProfitLossPercent: pct.InexactFloat64(),
	}
}
