package models

import "time"

// Quote is a snapshot of a stock's latest and previous closing price.
// Produced by the stock API, cached by symbol; may be stale or absent.
type Quote struct {
	Symbol        string    `json:"symbol"`
	Close         float64   `json:"close"`
	PreviousClose float64   `json:"previousClose"`
	PercentChange float64   `json:"percentChange"`
	FetchedAt     time.Time `json:"fetchedAt,omitempty"` // set locally when cached
}

// SearchResult is a single stock search hit. Transient — discarded once
// acted upon.
type SearchResult struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Country  string `json:"country"`
}
