package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/trendscope/trendscope/schema"
)

// writeJSONResultsForSegments marshals the segmentation output to JSON and writes it.
func writeJSONResultsForSegments(w io.Writer, segments []schema.AccountTrendSegment, summaries []schema.SegmentSummary) error {
	// 1. Prepare the combined structure so one document carries both views
	type JSONSegmentOutput struct {
		Summaries []schema.SegmentSummary      `json:"summaries"`
		Accounts  []schema.AccountTrendSegment `json:"accounts"`
	}

	output := JSONSegmentOutput{
		Summaries: summaries,
		Accounts:  segments,
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// writeCSVResultsForSegments writes the per-account segment data to a CSV writer.
func writeCSVResultsForSegments(w *csv.Writer, segments []schema.AccountTrendSegment, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"rank",
		"account_id",
		"account_name",
		"segment",
		"arr_cagr",
		"health_cagr",
		"growth_driver",
		"decline_driver",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for i, s := range segments {
		healthCagr := ""
		if s.HealthCagr != nil {
			healthCagr = fmtFloat(*s.HealthCagr)
		}
		row := []string{
			strconv.Itoa(i + 1),   // Rank
			s.AccountID,           // Account ID
			s.AccountName,         // Account Name
			string(s.Segment),     // Segment
			fmtFloat(s.ARRCagr),   // ARR CAGR
			healthCagr,            // Health CAGR (empty when no series)
			s.GrowthDriver,        // Growth Driver
			s.DeclineDriver,       // Decline Driver
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
