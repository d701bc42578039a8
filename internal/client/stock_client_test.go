package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetHoldings_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/holdings" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "h1", "stockSymbol": "AAPL", "quantity": 10, "averagePrice": 100},
			{"id": "h2", "stockSymbol": "MSFT", "quantity": 5, "averagePrice": 250},
		})
	}))
	defer srv.Close()

	c := NewStockClient(srv.URL)
	holdings, err := c.GetHoldings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(holdings) != 2 {
		t.Fatalf("expected 2 holdings, got %d", len(holdings))
	}
	if holdings[0].StockSymbol != "AAPL" {
		t.Errorf("expected AAPL, got %s", holdings[0].StockSymbol)
	}
	if holdings[0].Quantity != 10 || holdings[0].AveragePrice != 100 {
		t.Errorf("unexpected holding values: %+v", holdings[0])
	}
}

func TestGetQuote_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stocks/AAPL/quote" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]float64{
			"close":         120,
			"previousClose": 115,
			"percentChange": 4.35,
		})
	}))
	defer srv.Close()

	c := NewStockClient(srv.URL)
	quote, err := c.GetQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Symbol != "AAPL" {
		t.Errorf("expected symbol stamped onto quote, got %q", quote.Symbol)
	}
	if quote.Close != 120 || quote.PreviousClose != 115 {
		t.Errorf("unexpected quote: %+v", quote)
	}
}

func TestSearchStocks_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stocks/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("symbol"); got != "AAP" {
			t.Errorf("expected symbol=AAP, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]string{
				{"symbol": "AAPL", "name": "Apple Inc", "exchange": "NASDAQ", "country": "United States"},
				{"symbol": "AAP", "name": "Advance Auto Parts", "exchange": "NYSE", "country": "United States"},
			},
		})
	}))
	defer srv.Close()

	c := NewStockClient(srv.URL)
	results, err := c.SearchStocks(context.Background(), "AAP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Symbol != "AAPL" || results[0].Exchange != "NASDAQ" {
		t.Errorf("unexpected result: %+v", results[0])
	}
}

func TestCreateWatchlist_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/watchlists" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["name"] != "Tech" {
			t.Errorf("expected name=Tech, got %q", body["name"])
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": "w1", "name": "Tech", "stockSymbols": []string{},
		})
	}))
	defer srv.Close()

	c := NewStockClient(srv.URL)
	list, err := c.CreateWatchlist(context.Background(), "Tech")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.ID != "w1" || list.Name != "Tech" {
		t.Errorf("unexpected watchlist: %+v", list)
	}
}

func TestAddStock_PathEncoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/watchlists/w1/stocks/BRK.B" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := NewStockClient(srv.URL)
	if err := c.AddStock(context.Background(), "w1", "BRK.B"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteWatchlist_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"watchlist not found"}`))
	}))
	defer srv.Close()

	c := NewStockClient(srv.URL)
	err := c.DeleteWatchlist(context.Background(), "gone")
	if err == nil {
		t.Fatal("expected error for missing watchlist")
	}
	if !IsNotFound(err) {
		t.Errorf("expected not-found kind, got %v", KindOf(err))
	}
	if err.Error() != "watchlist not found" {
		t.Errorf("expected server message surfaced, got %q", err.Error())
	}
}

func TestDeleteWatchlist_Unreachable(t *testing.T) {
	c := NewStockClient("http://127.0.0.1:1")
	err := c.DeleteWatchlist(context.Background(), "w1")
	if err == nil {
		t.Fatal("expected error for unreachable backend")
	}
	if !IsNetwork(err) {
		t.Errorf("expected network kind, got %v", KindOf(err))
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status int
		body   string
		kind   ErrorKind
	}{
		{http.StatusBadRequest, `{"error":"name required"}`, KindValidation},
		{http.StatusNotFound, `{}`, KindNotFound},
		{http.StatusInternalServerError, ``, KindNetwork},
		{http.StatusBadGateway, `{"message":"upstream down"}`, KindNetwork},
		{http.StatusConflict, `{}`, KindValidation},
	}

	for _, tt := range tests {
		got := classifyStatus(tt.status, []byte(tt.body))
		if got.Kind != tt.kind {
			t.Errorf("classifyStatus(%d) kind = %v, want %v", tt.status, got.Kind, tt.kind)
		}
		if got.StatusCode != tt.status {
			t.Errorf("classifyStatus(%d) status = %d", tt.status, got.StatusCode)
		}
	}
}

func TestClassifyStatus_MessageFromBody(t *testing.T) {
	got := classifyStatus(http.StatusBadRequest, []byte(`{"error":"name required"}`))
	if got.Message != "name required" {
		t.Errorf("expected server message, got %q", got.Message)
	}
}

func TestCreateShareLink_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/share" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"shareId":"abc123","expiresAt":"2026-09-01T00:00:00Z"}`))
	}))
	defer srv.Close()

	c := NewStockClient(srv.URL)
	token, err := c.CreateShareLink(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.ShareID != "abc123" {
		t.Errorf("expected shareId abc123, got %s", token.ShareID)
	}
	if token.ExpiresAt.IsZero() {
		t.Error("expected expiresAt to be parsed")
	}
}

func TestGetSharedPortfolio_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/shared/abc123" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"userName": "alice",
			"expiresAt": "2026-09-01T00:00:00Z",
			"holdings": [{"id":"h1","stockSymbol":"AAPL","quantity":10,"averagePrice":100}]
		}`))
	}))
	defer srv.Close()

	c := NewStockClient(srv.URL)
	shared, err := c.GetSharedPortfolio(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shared.UserName != "alice" {
		t.Errorf("expected userName alice, got %s", shared.UserName)
	}
	if len(shared.Holdings) != 1 || shared.Holdings[0].StockSymbol != "AAPL" {
		t.Errorf("unexpected holdings: %+v", shared.Holdings)
	}
}

func TestValidationf(t *testing.T) {
	err := Validationf("watchlist name cannot be empty")
	if !IsValidation(err) {
		t.Error("expected validation kind")
	}
	if IsNetwork(err) || IsNotFound(err) {
		t.Error("kind predicates must be mutually exclusive")
	}
}
