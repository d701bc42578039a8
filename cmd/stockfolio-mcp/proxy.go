package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Chethumuniraju/stockfolio/internal/common"
)

// PortalProxy connects MCP tool calls to the portal's REST API.
type PortalProxy struct {
	portalURL  string
	httpClient *http.Client
	logger     *common.Logger
}

// NewPortalProxy creates a new proxy targeting the given portal URL.
func NewPortalProxy(portalURL string, logger *common.Logger) *PortalProxy {
	return &PortalProxy{
		portalURL: portalURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// get performs a GET request and returns the response body.
func (p *PortalProxy) get(path string) ([]byte, error) {
	return p.do(http.MethodGet, path, nil)
}

// post performs a POST request with JSON body and returns the response body.
func (p *PortalProxy) post(path string, data interface{}) ([]byte, error) {
	return p.do(http.MethodPost, path, data)
}

// del performs a DELETE request and returns the response body.
func (p *PortalProxy) del(path string) ([]byte, error) {
	return p.do(http.MethodDelete, path, nil)
}

// do performs an HTTP request against the portal.
func (p *PortalProxy) do(method, path string, data interface{}) ([]byte, error) {
	p.logger.Debug().
		Str("method", method).
		Str("path", path).
		Msg("MCP Proxy Request")

	var bodyReader io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, p.portalURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		p.logger.Error().Err(err).Str("path", path).Dur("duration", duration).Msg("MCP Proxy Request Failed")
		return nil, fmt.Errorf("portal request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	p.logger.Debug().
		Str("status", resp.Status).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Msg("MCP Proxy Response")

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return nil, fmt.Errorf("%s", errResp.Error)
		}
		return nil, fmt.Errorf("portal returned %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
