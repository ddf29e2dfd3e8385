// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/trendscope/trendscope/schema"
)

// AccountSource supplies per-account metric histories for analysis.
// This allows the core engine to be tested without a real dataset on disk.
type AccountSource interface {
	// LoadAccounts returns every account with its ARR, health and NPS series.
	// Series may arrive unordered; the engine sorts its own copies.
	LoadAccounts(ctx context.Context) ([]schema.AccountSeries, error)
}

// RunStore defines the interface for tracking report runs and persisting result bundles.
type RunStore interface {
	// BeginRun creates a new report run and returns its unique ID.
	BeginRun(batchID string, startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the report run with completion data.
	EndRun(runID int64, endTime time.Time, accountCount int) error

	// SaveBundle stores the JSON-serialized result bundle keyed by batch ID.
	SaveBundle(batchID string, bundle *schema.ReportBundle) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(limit int) ([]schema.ReportRun, error)

	// GetBundle loads the most recent bundle saved under the batch ID.
	GetBundle(batchID string) (*schema.ReportBundle, error)

	// GetAllBundles returns every stored bundle, oldest first. Used by exports.
	GetAllBundles() ([]schema.StoredBundle, error)

	// GetStatus returns status information about the run store.
	GetStatus() (schema.RunStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// StoreManager defines the interface for handing out the configured run store.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetRunStore() RunStore
}
