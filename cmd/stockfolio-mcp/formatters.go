package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Chethumuniraju/stockfolio/internal/common"
	"github.com/Chethumuniraju/stockfolio/internal/handlers"
	"github.com/Chethumuniraju/stockfolio/internal/models"
)

// Delegate to common format helpers
func formatMoney(v float64) string       { return common.FormatCurrency(v) }
func formatSignedMoney(v float64) string { return common.FormatSignedMoney(v) }
func formatSignedPct(v float64) string   { return common.FormatSignedPct(v) }

// formatPortfolioSummary formats a portfolio summary as markdown.
func formatPortfolioSummary(resp *handlers.SummaryResponse) string {
	var sb strings.Builder

	sb.WriteString("# Portfolio Summary\n\n")
	sb.WriteString(fmt.Sprintf("**Total Investment:** %s\n", formatMoney(resp.Summary.TotalInvestment)))
	sb.WriteString(fmt.Sprintf("**Current Value:** %s\n", formatMoney(resp.Summary.CurrentValue)))
	sb.WriteString(fmt.Sprintf("**Total P/L:** %s\n", formatSignedMoney(resp.Summary.TotalProfitLoss)))
	sb.WriteString(fmt.Sprintf("**Today's P/L:** %s\n\n", formatSignedMoney(resp.Summary.TodayProfitLoss)))

	if len(resp.Holdings) == 0 {
		sb.WriteString("No holdings.\n")
		return sb.String()
	}

	rows := make([]handlers.HoldingRow, len(resp.Holdings))
	copy(rows, resp.Holdings)
	sort.Slice(rows, func(i, j int) bool { return rows[i].StockSymbol < rows[j].StockSymbol })

	sb.WriteString("## Holdings\n\n")
	sb.WriteString("| Symbol | Qty | Avg Price | Price | Investment | Value | P/L | P/L % |\n")
	sb.WriteString("|--------|-----|-----------|-------|------------|-------|-----|-------|\n")

	for _, row := range rows {
		if row.Pending {
			sb.WriteString(fmt.Sprintf("| %s | %.2f | %s | — | — | — | — | — |\n",
				row.StockSymbol, row.Quantity, formatMoney(row.AveragePrice)))
			continue
		}
		sb.WriteString(fmt.Sprintf("| %s | %.2f | %s | %s | %s | %s | %s | %s |\n",
			row.StockSymbol, row.Quantity,
			formatMoney(row.AveragePrice), formatMoney(row.Close),
			formatMoney(row.Investment), formatMoney(row.CurrentValue),
			formatSignedMoney(row.ProfitLoss), formatSignedPct(row.ProfitLossPercent)))
	}

	if len(resp.Pending) > 0 {
		sb.WriteString(fmt.Sprintf("\nAwaiting quotes for: %s (excluded from totals)\n",
			strings.Join(resp.Pending, ", ")))
	}

	return sb.String()
}

// formatWatchlists formats the watchlist collection as markdown.
func formatWatchlists(lists []models.Watchlist) string {
	if len(lists) == 0 {
		return "No watchlists. Use create_watchlist to add one."
	}

	var sb strings.Builder
	sb.WriteString("# Watchlists\n\n")
	for _, w := range lists {
		sb.WriteString(fmt.Sprintf("## %s (id: %s)\n\n", w.Name, w.ID))
		symbols := w.UniqueSymbols()
		if len(symbols) == 0 {
			sb.WriteString("_empty_\n\n")
			continue
		}
		sb.WriteString(strings.Join(symbols, ", "))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// formatSearchResults formats search hits as a markdown table.
func formatSearchResults(query string, results []models.SearchResult) string {
	if len(results) == 0 {
		return fmt.Sprintf("No stocks found for %q.", query)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Search: %q\n\n", query))
	sb.WriteString("| Symbol | Name | Exchange | Country |\n")
	sb.WriteString("|--------|------|----------|--------|\n")
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", r.Symbol, r.Name, r.Exchange, r.Country))
	}
	return sb.String()
}

// formatQuote formats a single quote.
func formatQuote(q *models.Quote) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", q.Symbol))
	sb.WriteString(fmt.Sprintf("**Close:** %s\n", formatMoney(q.Close)))
	sb.WriteString(fmt.Sprintf("**Previous Close:** %s\n", formatMoney(q.PreviousClose)))
	sb.WriteString(fmt.Sprintf("**Change:** %s\n", formatSignedPct(q.PercentChange)))
	return sb.String()
}

// formatShareLink formats an issued share link.
func formatShareLink(link *models.ShareLink) string {
	var sb strings.Builder
	sb.WriteString("Share link created:\n\n")
	sb.WriteString(link.URL + "\n\n")
	if !link.ExpiresAt.IsZero() {
		sb.WriteString(fmt.Sprintf("Expires: %s\n", link.ExpiresAt.Format("2006-01-02 15:04 MST")))
	}
	if link.Copied {
		sb.WriteString("The link has been copied to the clipboard.\n")
	}
	return sb.String()
}
