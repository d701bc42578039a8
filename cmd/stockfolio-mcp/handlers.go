package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Chethumuniraju/stockfolio/internal/handlers"
	"github.com/Chethumuniraju/stockfolio/internal/models"
)

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// --- Handlers ---

func handleGetVersion(p *PortalProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body, err := p.get("/api/version")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		var resp struct {
			Version   string `json:"version"`
			Build     string `json:"build"`
			GitCommit string `json:"git_commit"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		result := fmt.Sprintf("Stockfolio Portal\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			resp.Version, resp.Build, resp.GitCommit)
		return textResult(result), nil
	}
}

func handleGetPortfolioSummary(p *PortalProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body, err := p.get("/api/portfolio/summary")
		if err != nil {
			return errorResult(fmt.Sprintf("Summary error: %v", err)), nil
		}

		var resp handlers.SummaryResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatPortfolioSummary(&resp)), nil
	}
}

func handleListWatchlists(p *PortalProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body, err := p.get("/api/watchlists")
		if err != nil {
			return errorResult(fmt.Sprintf("Watchlist error: %v", err)), nil
		}

		var lists []models.Watchlist
		if err := json.Unmarshal(body, &lists); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatWatchlists(lists)), nil
	}
}

func handleCreateWatchlist(p *PortalProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult("Error: name parameter is required"), nil
		}

		body, err := p.post("/api/watchlists", map[string]string{"name": name})
		if err != nil {
			return errorResult(fmt.Sprintf("Create error: %v", err)), nil
		}

		var created models.Watchlist
		if err := json.Unmarshal(body, &created); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Created watchlist %q (id: %s)", created.Name, created.ID)), nil
	}
}

func handleAddWatchlistStock(p *PortalProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		watchlistID, err := request.RequireString("watchlist_id")
		if err != nil {
			return errorResult("Error: watchlist_id parameter is required"), nil
		}
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return errorResult("Error: symbol parameter is required"), nil
		}

		path := fmt.Sprintf("/api/watchlists/%s/stocks", url.PathEscape(watchlistID))
		if _, err := p.post(path, map[string]string{"symbol": symbol}); err != nil {
			return errorResult(fmt.Sprintf("Add error: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Added %s to watchlist %s", strings.ToUpper(symbol), watchlistID)), nil
	}
}

func handleRemoveWatchlistStock(p *PortalProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		watchlistID, err := request.RequireString("watchlist_id")
		if err != nil {
			return errorResult("Error: watchlist_id parameter is required"), nil
		}
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return errorResult("Error: symbol parameter is required"), nil
		}

		path := fmt.Sprintf("/api/watchlists/%s/stocks/%s", url.PathEscape(watchlistID), url.PathEscape(symbol))
		if _, err := p.del(path); err != nil {
			return errorResult(fmt.Sprintf("Remove error: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Removed %s from watchlist %s", strings.ToUpper(symbol), watchlistID)), nil
	}
}

func handleDeleteWatchlist(p *PortalProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		watchlistID, err := request.RequireString("watchlist_id")
		if err != nil {
			return errorResult("Error: watchlist_id parameter is required"), nil
		}

		if _, err := p.del("/api/watchlists/" + url.PathEscape(watchlistID)); err != nil {
			return errorResult(fmt.Sprintf("Delete error: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Deleted watchlist %s", watchlistID)), nil
	}
}

func handleSearchStocks(p *PortalProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return errorResult("Error: query parameter is required"), nil
		}

		body, err := p.get("/api/stocks/search?symbol=" + url.QueryEscape(query))
		if err != nil {
			return errorResult(fmt.Sprintf("Search error: %v", err)), nil
		}

		var resp struct {
			Data []models.SearchResult `json:"data"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatSearchResults(query, resp.Data)), nil
	}
}

func handleGetQuote(p *PortalProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return errorResult("Error: symbol parameter is required"), nil
		}

		body, err := p.get("/api/stocks/" + url.PathEscape(symbol) + "/quote")
		if err != nil {
			return errorResult(fmt.Sprintf("Quote error: %v", err)), nil
		}

		var resp struct {
			Quote models.Quote `json:"quote"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatQuote(&resp.Quote)), nil
	}
}

func handleCreateShareLink(p *PortalProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body, err := p.post("/api/share", nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Share error: %v", err)), nil
		}

		var link models.ShareLink
		if err := json.Unmarshal(body, &link); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatShareLink(&link)), nil
	}
}

func handleGetSharedPortfolio(p *PortalProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		shareID, err := request.RequireString("share_id")
		if err != nil {
			return errorResult("Error: share_id parameter is required"), nil
		}

		body, err := p.get("/api/shared/" + url.PathEscape(shareID))
		if err != nil {
			return errorResult(fmt.Sprintf("Shared portfolio error: %v", err)), nil
		}

		var resp handlers.SharedResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		markdown := fmt.Sprintf("# %s's Portfolio (shared)\n\nExpires: %s\n\n", resp.UserName, resp.ExpiresAt)
		markdown += formatPortfolioSummary(&resp.SummaryResponse)
		return textResult(markdown), nil
	}
}
