package quotes

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Chethumuniraju/stockfolio/internal/common"
	"github.com/Chethumuniraju/stockfolio/internal/models"
)

// fakeQuoteAPI serves quotes from a map and counts calls per symbol.
type fakeQuoteAPI struct {
	mu     sync.Mutex
	quotes map[string]models.Quote
	errs   map[string]error
	calls  map[string]int
}

func newFakeQuoteAPI() *fakeQuoteAPI {
	return &fakeQuoteAPI{
		quotes: make(map[string]models.Quote),
		errs:   make(map[string]error),
		calls:  make(map[string]int),
	}
}

func (f *fakeQuoteAPI) GetQuote(_ context.Context, symbol string) (*models.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[symbol]++
	if err, ok := f.errs[symbol]; ok {
		return nil, err
	}
	q, ok := f.quotes[symbol]
	if !ok {
		return nil, fmt.Errorf("no quote for %s", symbol)
	}
	return &q, nil
}

func (f *fakeQuoteAPI) callCount(symbol string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[symbol]
}

func TestResolver_FetchesMissing(t *testing.T) {
	api := newFakeQuoteAPI()
	api.quotes["AAPL"] = models.Quote{Symbol: "AAPL", Close: 120, PreviousClose: 115}
	api.quotes["MSFT"] = models.Quote{Symbol: "MSFT", Close: 250, PreviousClose: 248}

	r := NewResolver(api, NewCache(15*time.Minute, 100), common.NewSilentLogger())

	result := r.Resolve(context.Background(), []string{"AAPL", "MSFT"})
	if len(result) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(result))
	}
	if result["AAPL"].Close != 120 {
		t.Errorf("expected AAPL close 120, got %v", result["AAPL"].Close)
	}
}

func TestResolver_SkipsFresh(t *testing.T) {
	api := newFakeQuoteAPI()
	api.quotes["AAPL"] = models.Quote{Symbol: "AAPL", Close: 120}

	cache := NewCache(15*time.Minute, 100)
	r := NewResolver(api, cache, common.NewSilentLogger())

	r.Resolve(context.Background(), []string{"AAPL"})
	r.Resolve(context.Background(), []string{"AAPL"})

	if got := api.callCount("AAPL"); got != 1 {
		t.Errorf("expected 1 API call for fresh quote, got %d", got)
	}
}

func TestResolver_RefetchesStale(t *testing.T) {
	api := newFakeQuoteAPI()
	api.quotes["AAPL"] = models.Quote{Symbol: "AAPL", Close: 121}

	cache := NewCache(15*time.Minute, 100)
	cache.Set(models.Quote{Symbol: "AAPL", Close: 120, FetchedAt: time.Now().Add(-30 * time.Minute)})
	r := NewResolver(api, cache, common.NewSilentLogger())

	result := r.Resolve(context.Background(), []string{"AAPL"})
	if got := api.callCount("AAPL"); got != 1 {
		t.Errorf("expected stale quote to be refetched, got %d calls", got)
	}
	if result["AAPL"].Close != 121 {
		t.Errorf("expected refreshed close 121, got %v", result["AAPL"].Close)
	}
}

func TestResolver_AbsorbsFailures(t *testing.T) {
	api := newFakeQuoteAPI()
	api.quotes["AAPL"] = models.Quote{Symbol: "AAPL", Close: 120}
	api.errs["BADX"] = fmt.Errorf("symbol not supported")

	r := NewResolver(api, NewCache(15*time.Minute, 100), common.NewSilentLogger())

	result := r.Resolve(context.Background(), []string{"AAPL", "BADX"})
	if len(result) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(result))
	}
	if _, ok := result["BADX"]; ok {
		t.Error("expected failed symbol to be absent")
	}
	if _, ok := result["AAPL"]; !ok {
		t.Error("expected surviving symbol to be present")
	}
}

func TestResolver_StaleFallbackOnFailure(t *testing.T) {
	api := newFakeQuoteAPI()
	api.errs["AAPL"] = fmt.Errorf("backend down")

	cache := NewCache(15*time.Minute, 100)
	cache.Set(models.Quote{Symbol: "AAPL", Close: 118, FetchedAt: time.Now().Add(-30 * time.Minute)})
	r := NewResolver(api, cache, common.NewSilentLogger())

	result := r.Resolve(context.Background(), []string{"AAPL"})
	if result["AAPL"].Close != 118 {
		t.Errorf("expected stale quote returned when refresh fails, got %+v", result["AAPL"])
	}
}

func TestResolver_DeduplicatesSymbols(t *testing.T) {
	api := newFakeQuoteAPI()
	api.quotes["AAPL"] = models.Quote{Symbol: "AAPL", Close: 120}

	r := NewResolver(api, NewCache(15*time.Minute, 100), common.NewSilentLogger())

	r.Resolve(context.Background(), []string{"AAPL", "aapl", " AAPL "})
	if got := api.callCount("AAPL"); got != 1 {
		t.Errorf("expected 1 API call for duplicate symbols, got %d", got)
	}
}

func TestResolver_NotifiesSubscribers(t *testing.T) {
	api := newFakeQuoteAPI()
	api.quotes["AAPL"] = models.Quote{Symbol: "AAPL", Close: 120}

	r := NewResolver(api, NewCache(15*time.Minute, 100), common.NewSilentLogger())

	var notified atomic.Int32
	r.Subscribe(func(q models.Quote) {
		if q.Symbol == "AAPL" {
			notified.Add(1)
		}
	})

	r.Resolve(context.Background(), []string{"AAPL"})
	if notified.Load() != 1 {
		t.Errorf("expected 1 notification, got %d", notified.Load())
	}

	// Fresh cache hit must not notify again.
	r.Resolve(context.Background(), []string{"AAPL"})
	if notified.Load() != 1 {
		t.Errorf("expected no notification on cache hit, got %d", notified.Load())
	}
}

func TestResolver_Unsubscribe(t *testing.T) {
	api := newFakeQuoteAPI()
	api.quotes["AAPL"] = models.Quote{Symbol: "AAPL", Close: 120}

	r := NewResolver(api, NewCache(15*time.Minute, 100), common.NewSilentLogger())

	var notified atomic.Int32
	unsubscribe := r.Subscribe(func(models.Quote) { notified.Add(1) })
	unsubscribe()

	r.Refresh(context.Background(), []string{"AAPL"})
	if notified.Load() != 0 {
		t.Errorf("expected no notification after unsubscribe, got %d", notified.Load())
	}
}

func TestStress_ResolverFanOut(t *testing.T) {
	api := newFakeQuoteAPI()
	symbols := make([]string, 50)
	for i := range symbols {
		s := fmt.Sprintf("SYM%d", i)
		symbols[i] = s
		api.quotes[s] = models.Quote{Symbol: s, Close: float64(i)}
	}

	r := NewResolver(api, NewCache(15*time.Minute, 100), common.NewSilentLogger())

	result := r.Resolve(context.Background(), symbols)
	if len(result) != 50 {
		t.Fatalf("expected 50 quotes, got %d", len(result))
	}
}
