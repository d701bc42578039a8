package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerTools registers all MCP tools on the server, wiring each to a handler
// that calls the portal's REST API via the proxy.
func registerTools(s *server.MCPServer, p *PortalProxy) {
	s.AddTool(createGetVersionTool(), handleGetVersion(p))
	s.AddTool(createGetPortfolioSummaryTool(), handleGetPortfolioSummary(p))
	s.AddTool(createListWatchlistsTool(), handleListWatchlists(p))
	s.AddTool(createCreateWatchlistTool(), handleCreateWatchlist(p))
	s.AddTool(createAddWatchlistStockTool(), handleAddWatchlistStock(p))
	s.AddTool(createRemoveWatchlistStockTool(), handleRemoveWatchlistStock(p))
	s.AddTool(createDeleteWatchlistTool(), handleDeleteWatchlist(p))
	s.AddTool(createSearchStocksTool(), handleSearchStocks(p))
	s.AddTool(createGetQuoteTool(), handleGetQuote(p))
	s.AddTool(createCreateShareLinkTool(), handleCreateShareLink(p))
	s.AddTool(createGetSharedPortfolioTool(), handleGetSharedPortfolio(p))
}

// --- Tool definitions ---

func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the Stockfolio portal version and status. Use this to verify connectivity."),
	)
}

func createGetPortfolioSummaryTool() mcp.Tool {
	return mcp.NewTool("get_portfolio_summary",
		mcp.WithDescription("FAST: Get the current portfolio summary — total investment, current value, overall and today's profit/loss, plus a per-holding breakdown with live prices."),
	)
}

func createListWatchlistsTool() mcp.Tool {
	return mcp.NewTool("list_watchlists",
		mcp.WithDescription("List all watchlists with their tracked stock symbols."),
	)
}

func createCreateWatchlistTool() mcp.Tool {
	return mcp.NewTool("create_watchlist",
		mcp.WithDescription("Create a new named watchlist."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Name for the new watchlist (e.g., 'Tech', 'Dividend Payers')")),
	)
}

func createAddWatchlistStockTool() mcp.Tool {
	return mcp.NewTool("add_watchlist_stock",
		mcp.WithDescription("Add a stock symbol to a watchlist. Adding a symbol that is already present is a no-op."),
		mcp.WithString("watchlist_id", mcp.Required(), mcp.Description("ID of the watchlist")),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Stock symbol to add (e.g., 'AAPL')")),
	)
}

func createRemoveWatchlistStockTool() mcp.Tool {
	return mcp.NewTool("remove_watchlist_stock",
		mcp.WithDescription("Remove a stock symbol from a watchlist. Removing a symbol that is not present succeeds silently."),
		mcp.WithString("watchlist_id", mcp.Required(), mcp.Description("ID of the watchlist")),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Stock symbol to remove (e.g., 'AAPL')")),
	)
}

func createDeleteWatchlistTool() mcp.Tool {
	return mcp.NewTool("delete_watchlist",
		mcp.WithDescription("Delete a watchlist entirely."),
		mcp.WithString("watchlist_id", mcp.Required(), mcp.Description("ID of the watchlist to delete")),
	)
}

func createSearchStocksTool() mcp.Tool {
	return mcp.NewTool("search_stocks",
		mcp.WithDescription("Search for stocks by symbol or name fragment. Returns symbol, company name, exchange, and country."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search text (e.g., 'AAP', 'apple')")),
	)
}

func createGetQuoteTool() mcp.Tool {
	return mcp.NewTool("get_quote",
		mcp.WithDescription("Get the latest price quote for a single stock symbol: close, previous close, and percent change."),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Stock symbol to quote (e.g., 'AAPL')")),
	)
}

func createCreateShareLinkTool() mcp.Tool {
	return mcp.NewTool("create_share_link",
		mcp.WithDescription("Create a time-limited public share link for the portfolio. Anyone with the link can view holdings read-only until it expires."),
	)
}

func createGetSharedPortfolioTool() mcp.Tool {
	return mcp.NewTool("get_shared_portfolio",
		mcp.WithDescription("View a shared portfolio by its share id. Works only while the share link is valid."),
		mcp.WithString("share_id", mcp.Required(), mcp.Description("The opaque share id from a share link")),
	)
}
