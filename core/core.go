package core

import (
	"context"
	"errors"
	"time"

	"github.com/trendscope/trendscope/internal/contract"
	"github.com/trendscope/trendscope/internal/outwriter"
	"github.com/trendscope/trendscope/schema"
)

// ExecutorFunc defines the function signature for executing different report modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// ExecuteSegments runs the full segmentation analysis and prints the
// per-account segments plus the segment roll-up. It serves as the main entry
// point for the 'segments' command.
func ExecuteSegments(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	source := contract.NewCSVAccountSource(cfg.DataPath)
	bundle, err := runReportCore(ctx, cfg, source, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintSegmentResults(bundle.Segments, bundle.Summaries, cfg, duration)
}

// ExecutePortfolio runs the portfolio-wide aggregation and prints one trend
// line per tracked metric. It serves as the main entry point for the
// 'portfolio' command.
func ExecutePortfolio(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	source := contract.NewCSVAccountSource(cfg.DataPath)
	bundle, err := runReportCore(ctx, cfg, source, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintPortfolioResults(bundle.Portfolio, cfg, duration)
}

// ExecuteTrend analyzes one metric series of one account and prints the trend
// result together with any detected inflection points. It serves as the main
// entry point for the 'trend' command.
func ExecuteTrend(ctx context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	start := time.Now()
	if cfg.AccountID == "" {
		return errors.New("--account is required")
	}

	source := contract.NewCSVAccountSource(cfg.DataPath)
	accounts, err := source.LoadAccounts(ctx)
	if err != nil {
		return err
	}

	acct, err := findAccount(accounts, cfg.AccountID)
	if err != nil {
		return err
	}

	series := seriesForMetric(acct, cfg.Metric)
	result := AnalyzeTrend(series)
	inflections := DetectInflections(series, string(cfg.Metric), cfg.Threshold)

	duration := time.Since(start)
	return outwriter.PrintTrendResults(acct, result, inflections, cfg, duration)
}

// GetReportResults runs the complete analysis and returns the result bundle
// without printing. Used by the MCP server.
func GetReportResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (*schema.ReportBundle, error) {
	source := contract.NewCSVAccountSource(cfg.DataPath)
	return runReportCore(ctx, cfg, source, mgr)
}

// GetTrendResults analyzes one metric series of one account and returns the
// trend plus inflection points without printing. Used by the MCP server.
func GetTrendResults(ctx context.Context, cfg *contract.Config) (schema.AccountSeries, schema.TrendResult, []schema.InflectionPoint, error) {
	if cfg.AccountID == "" {
		return schema.AccountSeries{}, schema.TrendResult{}, nil, errors.New("account is required")
	}

	source := contract.NewCSVAccountSource(cfg.DataPath)
	accounts, err := source.LoadAccounts(ctx)
	if err != nil {
		return schema.AccountSeries{}, schema.TrendResult{}, nil, err
	}

	acct, err := findAccount(accounts, cfg.AccountID)
	if err != nil {
		return schema.AccountSeries{}, schema.TrendResult{}, nil, err
	}

	series := seriesForMetric(acct, cfg.Metric)
	result := AnalyzeTrend(series)
	inflections := DetectInflections(series, string(cfg.Metric), cfg.Threshold)
	return acct, result, inflections, nil
}

// ExecuteReport runs the complete analysis and prints the combined report:
// segment roll-up, per-account segments and portfolio trends. It serves as
// the main entry point for the 'report' command.
func ExecuteReport(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	source := contract.NewCSVAccountSource(cfg.DataPath)
	bundle, err := runReportCore(ctx, cfg, source, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintReportResults(bundle, cfg, duration)
}
