package runstore

import (
	"errors"
	"fmt"

	"github.com/trendscope/trendscope/internal/parquet"
)

// ExecuteRunExport performs the actual export of run data to Parquet files.
func ExecuteRunExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run tracking is not configured")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run status: %w", err)
	}

	if status.RunCount == 0 {
		return errors.New("no run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total report runs: %d\n", status.RunCount)
	fmt.Printf("Total stored bundles: %d\n", status.BundleCount)

	// Retrieve all report runs
	runs, err := store.ListRuns(0)
	if err != nil {
		return fmt.Errorf("failed to retrieve report runs: %w", err)
	}

	// Retrieve all stored bundles
	bundles, err := store.GetAllBundles()
	if err != nil {
		return fmt.Errorf("failed to retrieve bundles: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertReportRuns(runs)
	segmentRows, portfolioRows := parquet.ConvertStoredBundles(bundles)

	// Write report runs to Parquet
	runsFile := outputFile + ".report_runs.parquet"
	if err := parquet.WriteReportRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write report runs: %w", err)
	}
	fmt.Printf("Exported %d report runs to: %s\n", len(parquetRuns), runsFile)

	// Write segment rows to Parquet
	segmentsFile := outputFile + ".segments.parquet"
	if err := parquet.WriteSegmentRowsParquet(segmentRows, segmentsFile); err != nil {
		return fmt.Errorf("failed to write segments: %w", err)
	}
	fmt.Printf("Exported %d segment rows to: %s\n", len(segmentRows), segmentsFile)

	// Write portfolio trend rows to Parquet
	portfolioFile := outputFile + ".portfolio.parquet"
	if err := parquet.WritePortfolioTrendRowsParquet(portfolioRows, portfolioFile); err != nil {
		return fmt.Errorf("failed to write portfolio trends: %w", err)
	}
	fmt.Printf("Exported %d portfolio rows to: %s\n", len(portfolioRows), portfolioFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
