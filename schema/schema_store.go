package schema

import "time"

// RunStatus holds status information about the run store.
type RunStatus struct {
	Backend     DatabaseBackend `json:"backend"`
	Location    string          `json:"location"` // File path for SQLite, redacted DSN otherwise
	RunCount    int             `json:"run_count"`
	BundleCount int             `json:"bundle_count"`
	LastRunAt   *time.Time      `json:"last_run_at,omitempty"`
}

// StoredBundle pairs a persisted result bundle with its storage metadata.
type StoredBundle struct {
	BatchID string        `json:"batch_id"`
	SavedAt time.Time     `json:"saved_at"`
	Bundle  *ReportBundle `json:"bundle"`
}

// ReportRun records one completed (or in-flight) analysis run.
type ReportRun struct {
	RunID        int64      `json:"run_id"`
	BatchID      string     `json:"batch_id"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	AccountCount int        `json:"account_count"`
	ConfigParams string     `json:"config_params,omitempty"` // JSON-encoded run parameters
}
