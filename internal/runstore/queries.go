package runstore

import (
	"fmt"

	"github.com/trendscope/trendscope/schema"
)

// getCreateReportRunsQuery returns the CREATE TABLE query for trendscope_report_runs.
func getCreateReportRunsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(reportRunsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				batch_id VARCHAR(255) NOT NULL,
				start_time DATETIME(6) NOT NULL,
				end_time DATETIME(6),
				account_count INT,
				config_params TEXT
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGSERIAL PRIMARY KEY,
				batch_id TEXT NOT NULL,
				start_time TIMESTAMPTZ NOT NULL,
				end_time TIMESTAMPTZ,
				account_count INT,
				config_params TEXT
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				batch_id TEXT NOT NULL,
				start_time TEXT NOT NULL,
				end_time TEXT,
				account_count INTEGER,
				config_params TEXT
			);
		`, quotedTableName)
	}
}

// getCreateReportBundlesQuery returns the CREATE TABLE query for trendscope_report_bundles.
func getCreateReportBundlesQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(reportBundlesTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				batch_id VARCHAR(255) NOT NULL,
				saved_at DATETIME(6) NOT NULL,
				bundle_json MEDIUMTEXT NOT NULL,
				PRIMARY KEY (batch_id, saved_at)
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				batch_id TEXT NOT NULL,
				saved_at TIMESTAMPTZ NOT NULL,
				bundle_json TEXT NOT NULL,
				PRIMARY KEY (batch_id, saved_at)
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				batch_id TEXT NOT NULL,
				saved_at TEXT NOT NULL,
				bundle_json TEXT NOT NULL,
				PRIMARY KEY (batch_id, saved_at)
			);
		`, quotedTableName)
	}
}
