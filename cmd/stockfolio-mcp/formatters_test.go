package main

import (
	"strings"
	"testing"
	"time"

	"github.com/Chethumuniraju/stockfolio/internal/handlers"
	"github.com/Chethumuniraju/stockfolio/internal/models"
)

func TestFormatPortfolioSummary(t *testing.T) {
	resp := &handlers.SummaryResponse{
		Summary: models.PortfolioSummary{
			TotalInvestment: 1000,
			CurrentValue:    1200,
			TotalProfitLoss: 200,
			TodayProfitLoss: 50,
		},
		Holdings: []handlers.HoldingRow{
			{
				Holding: models.Holding{ID: "h1", StockSymbol: "AAPL", Quantity: 10, AveragePrice: 100},
				HoldingMetrics: models.HoldingMetrics{
					Investment: 1000, CurrentValue: 1200, ProfitLoss: 200, ProfitLossPercent: 20,
				},
				Close:         120,
				PreviousClose: 115,
			},
		},
	}

	md := formatPortfolioSummary(resp)

	for _, want := range []string{
		"**Total Investment:** $1,000.00",
		"**Current Value:** $1,200.00",
		"**Total P/L:** +$200.00",
		"**Today's P/L:** +$50.00",
		"| AAPL |",
		"+20.00%",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("expected %q in output:\n%s", want, md)
		}
	}
}

func TestFormatPortfolioSummary_PendingRow(t *testing.T) {
	resp := &handlers.SummaryResponse{
		Holdings: []handlers.HoldingRow{
			{
				Holding: models.Holding{StockSymbol: "NOPE", Quantity: 5, AveragePrice: 50},
				Pending: true,
			},
		},
		Pending: []string{"NOPE"},
	}

	md := formatPortfolioSummary(resp)
	if !strings.Contains(md, "Awaiting quotes for: NOPE") {
		t.Errorf("expected pending note in output:\n%s", md)
	}
	if !strings.Contains(md, "| NOPE | 5.00 | $50.00 | — |") {
		t.Errorf("expected dashed row for pending holding:\n%s", md)
	}
}

func TestFormatPortfolioSummary_Empty(t *testing.T) {
	md := formatPortfolioSummary(&handlers.SummaryResponse{})
	if !strings.Contains(md, "No holdings.") {
		t.Errorf("expected empty-state message:\n%s", md)
	}
}

func TestFormatWatchlists(t *testing.T) {
	lists := []models.Watchlist{
		{ID: "w1", Name: "Tech", StockSymbols: []string{"AAPL", "MSFT"}},
		{ID: "w2", Name: "Empty", StockSymbols: nil},
	}

	md := formatWatchlists(lists)
	if !strings.Contains(md, "## Tech (id: w1)") {
		t.Errorf("expected watchlist heading:\n%s", md)
	}
	if !strings.Contains(md, "AAPL, MSFT") {
		t.Errorf("expected symbols listed:\n%s", md)
	}
	if !strings.Contains(md, "_empty_") {
		t.Errorf("expected empty marker:\n%s", md)
	}
}

func TestFormatWatchlists_None(t *testing.T) {
	md := formatWatchlists(nil)
	if !strings.Contains(md, "No watchlists") {
		t.Errorf("expected empty-state message, got %q", md)
	}
}

func TestFormatSearchResults(t *testing.T) {
	results := []models.SearchResult{
		{Symbol: "AAPL", Name: "Apple Inc", Exchange: "NASDAQ", Country: "United States"},
	}

	md := formatSearchResults("AAP", results)
	if !strings.Contains(md, "| AAPL | Apple Inc | NASDAQ | United States |") {
		t.Errorf("expected result row:\n%s", md)
	}
}

func TestFormatSearchResults_None(t *testing.T) {
	md := formatSearchResults("ZZZZ", nil)
	if !strings.Contains(md, "No stocks found") {
		t.Errorf("expected empty-state message, got %q", md)
	}
}

func TestFormatQuote(t *testing.T) {
	q := &models.Quote{Symbol: "AAPL", Close: 120, PreviousClose: 115, PercentChange: 4.35}

	md := formatQuote(q)
	for _, want := range []string{"# AAPL", "**Close:** $120.00", "**Previous Close:** $115.00", "+4.35%"} {
		if !strings.Contains(md, want) {
			t.Errorf("expected %q in output:\n%s", want, md)
		}
	}
}

func TestFormatShareLink(t *testing.T) {
	link := &models.ShareLink{
		URL:       "http://localhost:4251/shared/abc123",
		ShareID:   "abc123",
		ExpiresAt: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		Copied:    true,
	}

	md := formatShareLink(link)
	if !strings.Contains(md, "http://localhost:4251/shared/abc123") {
		t.Errorf("expected URL in output:\n%s", md)
	}
	if !strings.Contains(md, "copied to the clipboard") {
		t.Errorf("expected clipboard note:\n%s", md)
	}
	if !strings.Contains(md, "2026-09-01") {
		t.Errorf("expected expiry date:\n%s", md)
	}
}

func TestFormatShareLink_NotCopied(t *testing.T) {
	link := &models.ShareLink{URL: "http://localhost:4251/shared/x", ShareID: "x"}

	md := formatShareLink(link)
	if strings.Contains(md, "clipboard") {
		t.Errorf("expected no clipboard note when copy failed:\n%s", md)
	}
}
