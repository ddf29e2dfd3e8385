package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/trendscope/trendscope/internal/contract"
	"github.com/trendscope/trendscope/schema"
)

// PrintSegmentResults outputs the segmentation results, dispatching based on the output format configured.
func PrintSegmentResults(segments []schema.AccountTrendSegment, summaries []schema.SegmentSummary, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, fmtMoney := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForSegments(segments, summaries, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForSegments(segments, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable tables
		if err := printSegmentTables(segments, summaries, cfg, fmtFloat, fmtMoney, duration); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForSegments handles opening the file and calling the JSON writer.
func printJSONResultsForSegments(segments []schema.AccountTrendSegment, summaries []schema.SegmentSummary, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForSegments(w, segments, summaries)
	}, "Wrote JSON")
}

// printCSVResultsForSegments handles opening the file and calling the CSV writer.
func printCSVResultsForSegments(segments []schema.AccountTrendSegment, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForSegments(csvWriter, segments, fmtFloat)
	}, "Wrote CSV")
}

// printSegmentTables prints the segment roll-up followed by the per-account
// assignments, using the tablewriter API.
func printSegmentTables(segments []schema.AccountTrendSegment, summaries []schema.SegmentSummary, cfg *contract.Config, fmtFloat, fmtMoney func(float64) string, duration time.Duration) error {
	// --- 1. Segment Roll-Up Table ---
	summaryTable := tablewriter.NewWriter(os.Stdout)
	summaryTable.Header([]string{"Segment", "Accounts", "Total ARR", "ARR %", "Avg CAGR"})
	summaryTable.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var summaryData [][]string
	for _, s := range summaries {
		summaryData = append(summaryData, []string{
			contract.GetSegmentLabel(s.Segment, cfg.UseColor),
			strconv.Itoa(s.AccountCount),
			fmtMoney(s.TotalARR),
			fmtFloat(s.ARRPercent),
			fmtFloat(s.AvgCagr),
		})
	}
	if err := summaryTable.Bulk(summaryData); err != nil {
		return err
	}
	if err := summaryTable.Render(); err != nil {
		return err
	}

	// --- 2. Per-Account Table ---
	accountTable := tablewriter.NewWriter(os.Stdout)
	accountTable.Header([]string{"Rank", "Account", "Name", "Segment", "ARR CAGR", "Health CAGR", "Driver"})
	accountTable.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	limit := min(cfg.ResultLimit, len(segments))
	nameWidth := GetMaxTableNameWidth(cfg)
	var accountData [][]string
	for i, s := range segments[:limit] {
		accountData = append(accountData, []string{
			strconv.Itoa(i + 1), // Rank
			s.AccountID,
			contract.TruncateName(s.AccountName, nameWidth),
			contract.GetSegmentLabel(s.Segment, cfg.UseColor),
			fmtFloat(s.ARRCagr),
			fmtOptionalCagr(s.HealthCagr, fmtFloat),
			driverLabel(s),
		})
	}
	if err := accountTable.Bulk(accountData); err != nil {
		return err
	}
	if err := accountTable.Render(); err != nil {
		return err
	}

	fmt.Printf("Showing %d of %d accounts\n", limit, len(segments))
	fmt.Printf("Analysis completed in %v with %d workers. Run backend: %s\n", duration, cfg.Workers, cfg.RunBackend)
	return nil
}

// driverLabel returns whichever driver annotation applies to the account.
func driverLabel(s schema.AccountTrendSegment) string {
	if s.GrowthDriver != "" {
		return s.GrowthDriver
	}
	if s.DeclineDriver != "" {
		return s.DeclineDriver
	}
	return "-"
}
