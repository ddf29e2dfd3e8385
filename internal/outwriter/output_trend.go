package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/trendscope/trendscope/internal/contract"
	"github.com/trendscope/trendscope/schema"
)

// PrintTrendResults outputs one account's trend and inflection points,
// dispatching based on the output format configured.
func PrintTrendResults(acct schema.AccountSeries, result schema.TrendResult, inflections []schema.InflectionPoint, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, fmtMoney := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForTrend(acct, result, inflections, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForTrend(acct, result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable tables
		if err := printTrendTables(acct, result, inflections, cfg, fmtFloat, fmtMoney, duration); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForTrend handles opening the file and calling the JSON writer.
func printJSONResultsForTrend(acct schema.AccountSeries, result schema.TrendResult, inflections []schema.InflectionPoint, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForTrend(w, acct, cfg.Metric, result, inflections)
	}, "Wrote JSON")
}

// printCSVResultsForTrend handles opening the file and calling the CSV writer.
func printCSVResultsForTrend(acct schema.AccountSeries, result schema.TrendResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForTrend(csvWriter, acct, cfg.Metric, result, fmtFloat)
	}, "Wrote CSV")
}

// printTrendTables prints the trend summary followed by detected inflection
// points, using the tablewriter API.
func printTrendTables(acct schema.AccountSeries, result schema.TrendResult, inflections []schema.InflectionPoint, cfg *contract.Config, fmtFloat, fmtMoney func(float64) string, duration time.Duration) error {
	fmt.Printf("Trend for %s (%s) on metric %s\n", acct.Name, acct.ID, cfg.Metric)

	// --- 1. Trend Summary Table ---
	trendTable := tablewriter.NewWriter(os.Stdout)
	trendTable.Header([]string{"Direction", "Strength", "CAGR", "Velocity", "Accel", "R2", "Start", "End", "Change %"})
	trendTable.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	trendData := [][]string{{
		contract.GetDirectionLabel(result.Direction, cfg.UseColor),
		schema.StrengthLabel(result.Strength),
		fmtFloat(result.CAGR),
		fmtFloat(result.Velocity),
		fmtFloat(result.Acceleration),
		fmt.Sprintf("%.2f", result.RSquared),
		fmtMoney(result.StartValue),
		fmtMoney(result.EndValue),
		fmtFloat(result.ChangePercent),
	}}
	if err := trendTable.Bulk(trendData); err != nil {
		return err
	}
	if err := trendTable.Render(); err != nil {
		return err
	}

	// --- 2. Inflection Points Table ---
	if len(inflections) == 0 {
		fmt.Printf("No inflection points above %.1f%% threshold\n", cfg.Threshold)
	} else {
		inflTable := tablewriter.NewWriter(os.Stdout)
		inflTable.Header([]string{"Date", "Before", "After", "Change %", "Direction", "Significance"})
		inflTable.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		var inflData [][]string
		for _, p := range inflections {
			inflData = append(inflData, []string{
				contract.FormatDate(p.Date),
				fmtMoney(p.PreviousValue),
				fmtMoney(p.NewValue),
				fmtFloat(p.ChangePercent),
				contract.GetDirectionLabel(p.Direction, cfg.UseColor),
				string(p.Significance),
			})
		}
		if err := inflTable.Bulk(inflData); err != nil {
			return err
		}
		if err := inflTable.Render(); err != nil {
			return err
		}
	}

	fmt.Printf("Analysis completed in %v. Run backend: %s\n", duration, cfg.RunBackend)
	return nil
}
