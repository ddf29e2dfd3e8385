package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/trendscope/trendscope/internal/contract"
	"github.com/trendscope/trendscope/schema"
)

// runReportCore performs the common Load, Segmentation, and Aggregation steps
// and persists the run when a run store is configured.
func runReportCore(ctx context.Context, cfg *contract.Config, source contract.AccountSource, mgr contract.StoreManager) (*schema.ReportBundle, error) {
	// --- 0. Begin Run Tracking (if configured) ---
	var runID int64
	var runStore contract.RunStore
	if mgr != nil {
		runStore = mgr.GetRunStore()
	}
	if runStore != nil {
		startTime := time.Now()
		configParams := map[string]any{
			"batch_id":  cfg.BatchID,
			"data_path": cfg.DataPath,
			"threshold": cfg.Threshold,
			"workers":   cfg.Workers,
		}
		var err error
		runID, err = runStore.BeginRun(cfg.BatchID, startTime, configParams)
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
		}
	}

	// --- 1. Load Phase ---
	accounts, err := source.LoadAccounts(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, errors.New("no accounts found")
	}

	// --- 2. Segmentation Phase ---
	segments := segmentAccountsParallel(ctx, cfg, accounts)
	summaries := summarizeSegments(accounts, segments)

	// --- 3. Portfolio Aggregation Phase ---
	portfolio := AggregatePortfolio(accounts)

	bundle := &schema.ReportBundle{
		BatchID:     cfg.BatchID,
		GeneratedAt: time.Now().UTC(),
		Segments:    segments,
		Summaries:   summaries,
		Portfolio:   portfolio,
	}

	// --- 4. End Run Tracking ---
	if runStore != nil && runID > 0 {
		if err := runStore.SaveBundle(cfg.BatchID, bundle); err != nil {
			contract.LogWarn("Failed to persist result bundle", err)
		}
		if err := runStore.EndRun(runID, time.Now(), len(accounts)); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	return bundle, nil
}

// segmentAccountsParallel classifies all accounts using a worker pool.
// It spawns cfg.Workers goroutines; each result lands at the account's own
// index, so no aggregation channel is needed.
func segmentAccountsParallel(ctx context.Context, cfg *contract.Config, accounts []schema.AccountSeries) []schema.AccountTrendSegment {
	indexCh := make(chan int, len(accounts))
	segments := make([]schema.AccountTrendSegment, len(accounts))
	var wg sync.WaitGroup

	// Start worker pool
	for range cfg.Workers {
		wg.Go(func() {
			for idx := range indexCh {
				if ctx.Err() != nil {
					continue // Drain remaining work after cancellation
				}
				// Each goroutine writes to a *unique* index, which is safe.
				segments[idx] = classifyAccount(accounts[idx])
			}
		})
	}

	// Send account indices to worker channel
	for i := range accounts {
		indexCh <- i
	}
	close(indexCh)

	// Wait for all workers to finish processing
	wg.Wait()

	return segments
}

// findAccount returns the account matching the given ID.
func findAccount(accounts []schema.AccountSeries, id string) (schema.AccountSeries, error) {
	for _, acct := range accounts {
		if acct.ID == id {
			return acct, nil
		}
	}
	return schema.AccountSeries{}, fmt.Errorf("account not found: %s", id)
}

// seriesForMetric picks one of the account's raw series by metric name.
func seriesForMetric(acct schema.AccountSeries, metric schema.SeriesMetric) []schema.TimePoint {
	switch metric {
	case schema.HealthSeries:
		return acct.Health
	case schema.NPSSeries:
		return acct.NPS
	default:
		return acct.ARR
	}
}
