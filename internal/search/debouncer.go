// Package search debounces free-text symbol search so that a burst of
// keystrokes becomes a single backend request, and late responses from
// superseded queries are discarded instead of clobbering newer results.
package search

import (
	"strings"
	"sync"
	"time"
)

// DefaultDelay is how long input must be quiet before a search dispatches.
const DefaultDelay = 300 * time.Millisecond

// Debouncer coalesces query changes into dispatches. Each dispatch carries a
// monotonically increasing sequence number; callers tag in-flight requests
// with it and drop any response whose sequence is no longer current.
//
// The zero value is not usable; construct with NewDebouncer.
type Debouncer struct {
	mu       sync.Mutex
	delay    time.Duration
	timer    *time.Timer
	seq      uint64
	dispatch func(query string, seq uint64)
	clear    func()
	stopped  bool
}

// NewDebouncer creates a debouncer that calls dispatch after the delay with
// the latest query, and clear immediately when the query empties out. A
// non-positive delay falls back to DefaultDelay.
func NewDebouncer(delay time.Duration, dispatch func(query string, seq uint64), clear func()) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{
		delay:    delay,
		dispatch: dispatch,
		clear:    clear,
	}
}

// QueryChanged registers a new input value. Whitespace-only input counts as
// empty: any pending dispatch is cancelled, the current sequence is
// invalidated so in-flight responses get dropped, and clear fires
// synchronously. Non-empty input (re)arms the timer, so only the last value
// in a burst dispatches.
func (d *Debouncer) QueryChanged(query string) {
	query = strings.TrimSpace(query)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if query == "" {
		d.seq++
		if d.clear != nil {
			d.clear()
		}
		return
	}

	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(query, seq)
	})
}

// fire runs on the timer goroutine. The sequence check guards the window
// between the timer firing and QueryChanged stopping it.
func (d *Debouncer) fire(query string, seq uint64) {
	d.mu.Lock()
	if d.stopped || seq != d.seq {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.dispatch(query, seq)
}

// Stale reports whether a response tagged with seq has been superseded and
// must be discarded.
func (d *Debouncer) Stale(seq uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stopped || seq != d.seq
}

// Stop cancels any pending dispatch and invalidates all outstanding
// sequences. The debouncer cannot be reused after Stop.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.stopped = true
}
