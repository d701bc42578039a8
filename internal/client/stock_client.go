// Package client communicates with the stock API backend REST interface.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Chethumuniraju/stockfolio/internal/models"
)

// StockClient communicates with the stock API backend. It never retries —
// retry/backoff policy belongs to the transport layer, not the portal.
type StockClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewStockClient creates a new client targeting the given backend URL.
func NewStockClient(baseURL string) *StockClient {
	return &StockClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// do performs a request and returns the response body. Transport failures
// come back as KindNetwork; 4xx responses map onto the error taxonomy.
func (c *StockClient) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{
			Kind:    KindNetwork,
			Message: "failed to reach stock API",
			Err:     err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &APIError{
			Kind:    KindNetwork,
			Message: "failed to read stock API response",
			Err:     err,
		}
	}

	if resp.StatusCode >= 400 {
		return nil, classifyStatus(resp.StatusCode, body)
	}

	return body, nil
}

// classifyStatus maps an HTTP error status onto the error taxonomy.
// 5xx counts as network: the request may succeed if retried later, and the
// user-visible message should read as "could not reach the server".
func classifyStatus(status int, body []byte) *APIError {
	message := ""
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &errResp) == nil {
		if errResp.Error != "" {
			message = errResp.Error
		} else if errResp.Message != "" {
			message = errResp.Message
		}
	}

	kind := KindValidation
	switch {
	case status == http.StatusNotFound:
		kind = KindNotFound
		if message == "" {
			message = "not found"
		}
	case status >= 500:
		kind = KindNetwork
		if message == "" {
			message = fmt.Sprintf("stock API returned %d", status)
		}
	default:
		if message == "" {
			message = fmt.Sprintf("stock API rejected the request (%d)", status)
		}
	}

	return &APIError{Kind: kind, StatusCode: status, Message: message}
}

// GetHoldings fetches the user's brokerage holdings.
// GET /holdings -> [Holding]
func (c *StockClient) GetHoldings(ctx context.Context) ([]models.Holding, error) {
	body, err := c.do(ctx, http.MethodGet, "/holdings", nil)
	if err != nil {
		return nil, err
	}

	var holdings []models.Holding
	if err := json.Unmarshal(body, &holdings); err != nil {
		return nil, fmt.Errorf("failed to parse holdings: %w", err)
	}
	return holdings, nil
}

// ListWatchlists fetches the full watchlist collection.
// GET /watchlists -> [Watchlist]
func (c *StockClient) ListWatchlists(ctx context.Context) ([]models.Watchlist, error) {
	body, err := c.do(ctx, http.MethodGet, "/watchlists", nil)
	if err != nil {
		return nil, err
	}

	var lists []models.Watchlist
	if err := json.Unmarshal(body, &lists); err != nil {
		return nil, fmt.Errorf("failed to parse watchlists: %w", err)
	}
	return lists, nil
}

// CreateWatchlist creates a named watchlist.
// POST /watchlists {name} -> Watchlist
func (c *StockClient) CreateWatchlist(ctx context.Context, name string) (*models.Watchlist, error) {
	body, err := c.do(ctx, http.MethodPost, "/watchlists", map[string]string{"name": name})
	if err != nil {
		return nil, err
	}

	var list models.Watchlist
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to parse created watchlist: %w", err)
	}
	return &list, nil
}

// AddStock adds a symbol to a watchlist.
// POST /watchlists/{id}/stocks/{symbol} -> ack
func (c *StockClient) AddStock(ctx context.Context, watchlistID, symbol string) error {
	path := "/watchlists/" + url.PathEscape(watchlistID) + "/stocks/" + url.PathEscape(symbol)
	_, err := c.do(ctx, http.MethodPost, path, nil)
	return err
}

// RemoveStock removes a symbol from a watchlist.
// DELETE /watchlists/{id}/stocks/{symbol} -> ack
func (c *StockClient) RemoveStock(ctx context.Context, watchlistID, symbol string) error {
	path := "/watchlists/" + url.PathEscape(watchlistID) + "/stocks/" + url.PathEscape(symbol)
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

// DeleteWatchlist deletes a watchlist.
// DELETE /watchlists/{id} -> ack
func (c *StockClient) DeleteWatchlist(ctx context.Context, watchlistID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/watchlists/"+url.PathEscape(watchlistID), nil)
	return err
}

// GetQuote fetches the latest quote for a symbol.
// GET /stocks/{symbol}/quote -> {close, previousClose, percentChange}
func (c *StockClient) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	body, err := c.do(ctx, http.MethodGet, "/stocks/"+url.PathEscape(symbol)+"/quote", nil)
	if err != nil {
		return nil, err
	}

	var quote models.Quote
	if err := json.Unmarshal(body, &quote); err != nil {
		return nil, fmt.Errorf("failed to parse quote for %s: %w", symbol, err)
	}
	// The quote endpoint omits the symbol; stamp it for cache keying.
	quote.Symbol = symbol
	return &quote, nil
}

// SearchStocks runs a free-text symbol search.
// GET /stocks/search?symbol=Q -> {data: [SearchResult]}
func (c *StockClient) SearchStocks(ctx context.Context, query string) ([]models.SearchResult, error) {
	body, err := c.do(ctx, http.MethodGet, "/stocks/search?symbol="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Data []models.SearchResult `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse search results: %w", err)
	}
	return result.Data, nil
}

// CreateShareLink requests an ephemeral share token for the user's portfolio.
// POST /share -> {shareId, expiresAt}
func (c *StockClient) CreateShareLink(ctx context.Context) (*models.ShareToken, error) {
	body, err := c.do(ctx, http.MethodPost, "/share", nil)
	if err != nil {
		return nil, err
	}

	var token models.ShareToken
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("failed to parse share token: %w", err)
	}
	return &token, nil
}

// GetSharedPortfolio reads a shared portfolio snapshot by share id.
// GET /shared/{shareId} -> {userName, expiresAt, holdings}
func (c *StockClient) GetSharedPortfolio(ctx context.Context, shareID string) (*models.SharedPortfolio, error) {
	body, err := c.do(ctx, http.MethodGet, "/shared/"+url.PathEscape(shareID), nil)
	if err != nil {
		return nil, err
	}

	var shared models.SharedPortfolio
	if err := json.Unmarshal(body, &shared); err != nil {
		return nil, fmt.Errorf("failed to parse shared portfolio: %w", err)
	}
	return &shared, nil
}
