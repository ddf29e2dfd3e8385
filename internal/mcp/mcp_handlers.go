package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/trendscope/trendscope/core"
	"github.com/trendscope/trendscope/internal/contract"
	"github.com/trendscope/trendscope/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleGetAccountSegments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("data_path", ""); p != "" {
		cfg.DataPath = p
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	bundle, err := core.GetReportResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	segments := bundle.Segments
	if len(segments) > cfg.ResultLimit {
		segments = segments[:cfg.ResultLimit]
	}
	output := struct {
		Summaries []schema.SegmentSummary      `json:"summaries"`
		Accounts  []schema.AccountTrendSegment `json:"accounts"`
	}{bundle.Summaries, segments}

	jsonData, _ := json.MarshalIndent(output, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPortfolioTrends(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("data_path", ""); p != "" {
		cfg.DataPath = p
	}

	bundle, err := core.GetReportResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(bundle.Portfolio, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetAccountTrend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.AccountID = request.GetString("account_id", "")
	if m := request.GetString("metric", ""); m != "" {
		cfg.Metric = schema.SeriesMetric(m)
	}
	if p := request.GetString("data_path", ""); p != "" {
		cfg.DataPath = p
	}

	acct, result, inflections, err := core.GetTrendResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trend analysis failed: %v", err)), nil
	}

	output := struct {
		AccountID   string                   `json:"account_id"`
		AccountName string                   `json:"account_name"`
		Metric      schema.SeriesMetric      `json:"metric"`
		Trend       schema.TrendResult       `json:"trend"`
		Inflections []schema.InflectionPoint `json:"inflections"`
	}{acct.ID, acct.Name, cfg.Metric, result, inflections}

	jsonData, _ := json.MarshalIndent(output, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetInflections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.AccountID = request.GetString("account_id", "")
	if m := request.GetString("metric", ""); m != "" {
		cfg.Metric = schema.SeriesMetric(m)
	}
	if t := request.GetFloat("threshold", 0); t > 0 {
		cfg.Threshold = t
	}
	if p := request.GetString("data_path", ""); p != "" {
		cfg.DataPath = p
	}

	_, _, inflections, err := core.GetTrendResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("inflection detection failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(inflections, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
