package common

import "time"

// FreshnessQuote is the TTL for cached price quotes. Quotes are real-time
// data: short TTL, re-fetched on the next natural trigger once stale.
const FreshnessQuote = 15 * time.Minute

// IsFresh returns true if the given timestamp is within the TTL
func IsFresh(updated time.Time, ttl time.Duration) bool {
	if updated.IsZero() {
		return false
	}
	return time.Since(updated) < ttl
}
