package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/internal/contract"
	mcp_internal "github.com/trendscope/trendscope/internal/mcp"
	"github.com/trendscope/trendscope/schema"
)

// writeDataset writes a small CSV dataset and returns its directory.
func writeDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	accounts := `account_id,name,current_arr
acme,Acme Corp,200000
`
	metrics := `account_id,metric,date,value
acme,arr,2023-01-01,100000
acme,arr,2024-01-01,200000
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, contract.AccountsFileName), []byte(accounts), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, contract.MetricsFileName), []byte(metrics), 0o644))
	return dir
}

func baseConfig(t *testing.T) *contract.Config {
	t.Helper()
	return &contract.Config{
		DataPath:    writeDataset(t),
		BatchID:     "mcp-test",
		Metric:      schema.ARRSeries,
		Threshold:   contract.DefaultThreshold,
		ResultLimit: contract.DefaultResultLimit,
		Workers:     2,
		Precision:   contract.DefaultPrecision,
		RunBackend:  schema.NoneBackend,
	}
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := baseConfig(t)

	// A dummy manager is fine here; validation fails before any store access
	var mgr contract.StoreManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("get_account_trend missing account_id", func(t *testing.T) {
		tool := s.GetTool("get_account_trend")
		require.NotNil(t, tool, "Tool get_account_trend should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_account_trend",
				Arguments: map[string]any{
					"account_id": "", // Missing required
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "account is required")
	})

	t.Run("get_inflections missing account_id", func(t *testing.T) {
		tool := s.GetTool("get_inflections")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_inflections",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "account is required")
	})

	t.Run("get_account_trend unknown account", func(t *testing.T) {
		tool := s.GetTool("get_account_trend")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_account_trend",
				Arguments: map[string]any{
					"account_id": "ghost",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "account not found")
	})
}

func TestMCPServerHandlers_AccountTrend(t *testing.T) {
	baseCfg := baseConfig(t)

	var mgr contract.StoreManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	tool := s.GetTool("get_account_trend")
	require.NotNil(t, tool)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "get_account_trend",
			Arguments: map[string]any{
				"account_id": "acme",
				"metric":     "arr",
			},
		},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)

	var output struct {
		AccountID string             `json:"account_id"`
		Metric    string             `json:"metric"`
		Trend     schema.TrendResult `json:"trend"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &output))
	assert.Equal(t, "acme", output.AccountID)
	assert.Equal(t, "arr", output.Metric)
	assert.Equal(t, schema.DirectionUp, output.Trend.Direction)
	assert.InDelta(t, 100.0, output.Trend.CAGR, 1.0)
}
