// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/trendscope/trendscope/internal/contract"
)

// NewMCPServer initializes and configures the Trendscope MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Trendscope Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_account_segments ---
	s.AddTool(mcp.NewTool("get_account_segments",
		mcp.WithDescription("Classify every account into a growth segment based on its ARR trend."),
		mcp.WithString("data_path", mcp.Description("Path to the dataset directory (defaults to the configured path).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of accounts returned.")),
	), h.handleGetAccountSegments)

	// --- 2. Tool: get_portfolio_trends ---
	s.AddTool(mcp.NewTool("get_portfolio_trends",
		mcp.WithDescription("Compute portfolio-wide monthly trends for Total ARR, Avg Health Score, Avg NPS and Customer Count."),
		mcp.WithString("data_path", mcp.Description("Path to the dataset directory.")),
	), h.handleGetPortfolioTrends)

	// --- 3. Tool: get_account_trend ---
	s.AddTool(mcp.NewTool("get_account_trend",
		mcp.WithDescription("Analyze the trend of one metric series for a single account."),
		mcp.WithString("account_id", mcp.Description("The account to analyze."), mcp.Required()),
		mcp.WithString("metric", mcp.Description("Which series to analyze (arr, health, nps). Defaults to 'arr'."), mcp.Enum("arr", "health", "nps")),
		mcp.WithString("data_path", mcp.Description("Path to the dataset directory.")),
	), h.handleGetAccountTrend)

	// --- 4. Tool: get_inflections ---
	s.AddTool(mcp.NewTool("get_inflections",
		mcp.WithDescription("Detect significant, sustained shifts in one account's metric series."),
		mcp.WithString("account_id", mcp.Description("The account to analyze."), mcp.Required()),
		mcp.WithString("metric", mcp.Description("Which series to analyze (arr, health, nps). Defaults to 'arr'."), mcp.Enum("arr", "health", "nps")),
		mcp.WithNumber("threshold", mcp.Description("Detection threshold in percent. Defaults to 15.")),
		mcp.WithString("data_path", mcp.Description("Path to the dataset directory.")),
	), h.handleGetInflections)

	return s
}

// StartMCPServer starts the Trendscope MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
