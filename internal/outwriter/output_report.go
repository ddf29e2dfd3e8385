package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/trendscope/trendscope/internal/contract"
	"github.com/trendscope/trendscope/schema"
)

// PrintReportResults outputs the combined report bundle, dispatching based on the output format configured.
// The text view chains the segment tables and the portfolio table; CSV falls
// back to the per-account segment rows since a bundle spans several row shapes.
func PrintReportResults(bundle *schema.ReportBundle, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForReport(bundle, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
		return nil
	case schema.CSVOut:
		return PrintSegmentResults(bundle.Segments, bundle.Summaries, cfg, duration)
	default:
		fmt.Printf("Report for batch %s (generated %s)\n", bundle.BatchID, bundle.GeneratedAt.Format(time.RFC3339))
		// Segment tables print their own footer; suppress double timing by
		// printing portfolio last with the real duration.
		if err := PrintSegmentResults(bundle.Segments, bundle.Summaries, cfg, duration); err != nil {
			return err
		}
		return PrintPortfolioResults(bundle.Portfolio, cfg, duration)
	}
}

// printJSONResultsForReport handles opening the file and calling the JSON writer.
func printJSONResultsForReport(bundle *schema.ReportBundle, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, bundle)
	}, "Wrote JSON")
}
