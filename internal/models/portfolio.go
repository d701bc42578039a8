// Package models defines data structures for Stockfolio
package models

import "time"

// Holding represents a brokerage position. Holdings are owned by the stock
// API backend; the portal treats them as immutable input per request.
type Holding struct {
	ID           string  `json:"id"`
	StockSymbol  string  `json:"stockSymbol"`
	Quantity     float64 `json:"quantity"`
	AveragePrice float64 `json:"averagePrice"`
}

// PortfolioSummary holds portfolio-level totals derived from holdings and
// cached quotes. Never persisted — recomputed fresh on every request.
type PortfolioSummary struct {
	TotalInvestment float64 `json:"totalInvestment"`
	CurrentValue    float64 `json:"currentValue"`
	TotalProfitLoss float64 `json:"totalProfitLoss"`
	TodayProfitLoss float64 `json:"todayProfitLoss"`
}

// HoldingMetrics holds per-row display figures for a single holding.
type HoldingMetrics struct {
	Investment        float64 `json:"investment"`
	CurrentValue      float64 `json:"currentValue"`
	ProfitLoss        float64 `json:"profitLoss"`
	ProfitLossPercent float64 `json:"profitLossPercent"`
}

// SharedPortfolio is the read side of a share snapshot: a time-bounded,
// read-only view of someone's holdings keyed by an opaque share id.
type SharedPortfolio struct {
	UserName  string    `json:"userName"`
	ExpiresAt time.Time `json:"expiresAt"`
	Holdings  []Holding `json:"holdings"`
}
