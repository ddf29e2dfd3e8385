// Package parquet provides data structures and functions for exporting
// trendscope run data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/trendscope/trendscope/schema"
)

// ReportRun represents a single analysis run with metadata.
// This struct maps to the trendscope_report_runs database table.
type ReportRun struct {
	// RunID is the unique identifier for this report run
	RunID int64 `parquet:"run_id,snappy"`

	// BatchID identifies the data upload this run was computed from
	BatchID string `parquet:"batch_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// AccountCount is the number of accounts analyzed in this run
	AccountCount int32 `parquet:"account_count,snappy"`

	// ConfigParams contains the JSON-encoded run parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// SegmentRow represents one account's segment assignment inside a stored bundle.
type SegmentRow struct {
	// BatchID identifies the bundle this row came from
	BatchID string `parquet:"batch_id,snappy"`

	// GeneratedAt is when the bundle was computed
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	// AccountID is the account identifier
	AccountID string `parquet:"account_id,snappy"`

	// AccountName is the account display name
	AccountName string `parquet:"account_name,snappy"`

	// Segment is the assigned growth segment
	Segment string `parquet:"segment,snappy"`

	// ARRCagr is the account's ARR compound annual growth rate
	ARRCagr float64 `parquet:"arr_cagr,snappy"`

	// HealthCagr is the account's health score CAGR (nullable)
	HealthCagr *float64 `parquet:"health_cagr,optional,snappy"`

	// GrowthDriver is the growth annotation, if any (nullable)
	GrowthDriver *string `parquet:"growth_driver,optional,snappy"`

	// DeclineDriver is the decline annotation, if any (nullable)
	DeclineDriver *string `parquet:"decline_driver,optional,snappy"`
}

// PortfolioTrendRow represents one portfolio metric trend inside a stored bundle.
type PortfolioTrendRow struct {
	// BatchID identifies the bundle this row came from
	BatchID string `parquet:"batch_id,snappy"`

	// GeneratedAt is when the bundle was computed
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	// MetricName is the tracked portfolio metric
	MetricName string `parquet:"metric_name,snappy"`

	// StartDate is the first monthly point
	StartDate time.Time `parquet:"start_date,snappy"`

	// StartValue is the aggregated value at the first monthly point
	StartValue float64 `parquet:"start_value,snappy"`

	// EndDate is the last monthly point
	EndDate time.Time `parquet:"end_date,snappy"`

	// EndValue is the aggregated value at the last monthly point
	EndValue float64 `parquet:"end_value,snappy"`

	// CAGR is the metric's compound annual growth rate
	CAGR float64 `parquet:"cagr,snappy"`

	// Direction is the trend direction label
	Direction string `parquet:"direction,snappy"`

	// Strength is the human-readable strength label
	Strength string `parquet:"strength,snappy"`
}

// WriteReportRunsParquet writes a slice of ReportRun structs to a Parquet file.
func WriteReportRunsParquet(data []ReportRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ReportRun struct tags
	writer := parquet.NewGenericWriter[ReportRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteSegmentRowsParquet writes a slice of SegmentRow structs to a Parquet file.
func WriteSegmentRowsParquet(data []SegmentRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[SegmentRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WritePortfolioTrendRowsParquet writes a slice of PortfolioTrendRow structs to a Parquet file.
func WritePortfolioTrendRowsParquet(data []PortfolioTrendRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[PortfolioTrendRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// MockFetchReportRuns generates sample ReportRun data for demonstration.
func MockFetchReportRuns() []ReportRun {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := now.Add(-1*time.Hour - 58*time.Minute)
	configParams1 := `{"metric":"arr","threshold":15,"workers":4}`

	startTime2 := now.Add(-24 * time.Hour)
	endTime2 := now.Add(-23*time.Hour - 59*time.Minute)
	configParams2 := `{"metric":"health","threshold":10,"workers":8}`

	startTime3 := now.Add(-10 * time.Minute)
	// Note: endTime3 and configParams3 are nil to demonstrate nullable fields

	return []ReportRun{
		{
			RunID:        1,
			BatchID:      "2026-q3-upload",
			StartTime:    startTime1,
			EndTime:      &endTime1,
			AccountCount: 150,
			ConfigParams: &configParams1,
		},
		{
			RunID:        2,
			BatchID:      "2026-q2-upload",
			StartTime:    startTime2,
			EndTime:      &endTime2,
			AccountCount: 142,
			ConfigParams: &configParams2,
		},
		{
			RunID:        3,
			BatchID:      "adhoc-check",
			StartTime:    startTime3,
			EndTime:      nil, // Still running - nullable field
			AccountCount: 0,
			ConfigParams: nil, // No config stored - nullable field
		},
	}
}

// MockFetchSegmentRows generates sample SegmentRow data for demonstration.
func MockFetchSegmentRows() []SegmentRow {
	now := time.Now()
	healthCagr1 := 12.4
	healthCagr2 := -28.9
	growth := "Product expansion"
	decline := "Usage declining"

	return []SegmentRow{
		{
			BatchID:      "2026-q3-upload",
			GeneratedAt:  now.Add(-2 * time.Hour),
			AccountID:    "acct-001",
			AccountName:  "Acme Corp",
			Segment:      "high_growth",
			ARRCagr:      62.5,
			HealthCagr:   &healthCagr1,
			GrowthDriver: &growth,
		},
		{
			BatchID:       "2026-q3-upload",
			GeneratedAt:   now.Add(-2 * time.Hour),
			AccountID:     "acct-002",
			AccountName:   "Fading Inc",
			Segment:       "at_risk",
			ARRCagr:       -34.1,
			HealthCagr:    &healthCagr2,
			DeclineDriver: &decline,
		},
		{
			BatchID:     "2026-q3-upload",
			GeneratedAt: now.Add(-2 * time.Hour),
			AccountID:   "acct-003",
			AccountName: "Steady LLC",
			Segment:     "stable",
			ARRCagr:     1.8,
			HealthCagr:  nil, // No health series recorded - nullable field
		},
	}
}

// MockFetchPortfolioTrendRows generates sample PortfolioTrendRow data for demonstration.
func MockFetchPortfolioTrendRows() []PortfolioTrendRow {
	now := time.Now()
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	latestMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	return []PortfolioTrendRow{
		{
			BatchID:     "2026-q3-upload",
			GeneratedAt: now.Add(-2 * time.Hour),
			MetricName:  "Total ARR",
			StartDate:   yearStart,
			StartValue:  4_200_000,
			EndDate:     latestMonth,
			EndValue:    4_850_000,
			CAGR:        27.3,
			Direction:   "up",
			Strength:    "Moderate",
		},
		{
			BatchID:     "2026-q3-upload",
			GeneratedAt: now.Add(-2 * time.Hour),
			MetricName:  "Avg Health Score",
			StartDate:   yearStart,
			StartValue:  72.4,
			EndDate:     latestMonth,
			EndValue:    71.9,
			CAGR:        -1.1,
			Direction:   "stable",
			Strength:    "Weak",
		},
	}
}

// ConvertReportRuns converts schema.ReportRun records for Parquet export.
func ConvertReportRuns(records []schema.ReportRun) []ReportRun {
	result := make([]ReportRun, len(records))
	for i, record := range records {
		var configParams *string
		if record.ConfigParams != "" {
			params := record.ConfigParams
			configParams = &params
		}
		result[i] = ReportRun{
			RunID:        record.RunID,
			BatchID:      record.BatchID,
			StartTime:    record.StartTime,
			EndTime:      record.EndTime,
			AccountCount: int32(record.AccountCount),
			ConfigParams: configParams,
		}
	}
	return result
}

// ConvertStoredBundles flattens stored bundles into segment and portfolio rows for Parquet export.
func ConvertStoredBundles(bundles []schema.StoredBundle) ([]SegmentRow, []PortfolioTrendRow) {
	var segmentRows []SegmentRow
	var portfolioRows []PortfolioTrendRow

	for _, stored := range bundles {
		if stored.Bundle == nil {
			continue
		}
		b := stored.Bundle

		for _, s := range b.Segments {
			row := SegmentRow{
				BatchID:     b.BatchID,
				GeneratedAt: b.GeneratedAt,
				AccountID:   s.AccountID,
				AccountName: s.AccountName,
				Segment:     string(s.Segment),
				ARRCagr:     s.ARRCagr,
				HealthCagr:  s.HealthCagr,
			}
			if s.GrowthDriver != "" {
				driver := s.GrowthDriver
				row.GrowthDriver = &driver
			}
			if s.DeclineDriver != "" {
				driver := s.DeclineDriver
				row.DeclineDriver = &driver
			}
			segmentRows = append(segmentRows, row)
		}

		for _, t := range b.Portfolio {
			portfolioRows = append(portfolioRows, PortfolioTrendRow{
				BatchID:     b.BatchID,
				GeneratedAt: b.GeneratedAt,
				MetricName:  string(t.MetricName),
				StartDate:   t.StartDate,
				StartValue:  t.StartValue,
				EndDate:     t.EndDate,
				EndValue:    t.EndValue,
				CAGR:        t.CAGR,
				Direction:   string(t.Direction),
				Strength:    t.StrengthLabel,
			})
		}
	}

	return segmentRows, portfolioRows
}
