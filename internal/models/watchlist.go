package models

import "strings"

// Watchlist is a named, user-curated set of stock symbols tracked without
// implying ownership. Symbol uniqueness is enforced by the backend, but it
// can be violated transiently — callers should read through UniqueSymbols.
type Watchlist struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	StockSymbols []string `json:"stockSymbols"`
}

// HasSymbol reports whether the watchlist contains the symbol (case-insensitive).
func (w *Watchlist) HasSymbol(symbol string) bool {
	for _, s := range w.StockSymbols {
		if strings.EqualFold(s, symbol) {
			return true
		}
	}
	return false
}

// UniqueSymbols returns the symbol list with duplicates removed, preserving
// first-seen order.
func (w *Watchlist) UniqueSymbols() []string {
	seen := make(map[string]bool, len(w.StockSymbols))
	out := make([]string, 0, len(w.StockSymbols))
	for _, s := range w.StockSymbols {
		key := strings.ToUpper(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
