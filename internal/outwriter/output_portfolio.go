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

// PrintPortfolioResults outputs the portfolio trends, dispatching based on the output format configured.
func PrintPortfolioResults(trends []schema.PortfolioMetricTrend, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, fmtMoney := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForPortfolio(trends, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForPortfolio(trends, cfg, fmtFloat, fmtMoney); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printPortfolioTable(trends, cfg, fmtFloat, fmtMoney, duration); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForPortfolio handles opening the file and calling the JSON writer.
func printJSONResultsForPortfolio(trends []schema.PortfolioMetricTrend, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, trends)
	}, "Wrote JSON")
}

// printCSVResultsForPortfolio handles opening the file and calling the CSV writer.
func printCSVResultsForPortfolio(trends []schema.PortfolioMetricTrend, cfg *contract.Config, fmtFloat, fmtMoney func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForPortfolio(csvWriter, trends, fmtFloat, fmtMoney)
	}, "Wrote CSV")
}

// printPortfolioTable prints one trend line per tracked metric,
// using the tablewriter API.
func printPortfolioTable(trends []schema.PortfolioMetricTrend, cfg *contract.Config, fmtFloat, fmtMoney func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Metric", "Start", "Start Value", "End", "End Value", "CAGR", "Direction", "Strength"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, t := range trends {
		data = append(data, []string{
			string(t.MetricName),
			contract.FormatDate(t.StartDate),
			fmtMoney(t.StartValue),
			contract.FormatDate(t.EndDate),
			fmtMoney(t.EndValue),
			fmtFloat(t.CAGR),
			contract.GetDirectionLabel(t.Direction, cfg.UseColor),
			t.StrengthLabel,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Showing %d portfolio metrics\n", len(trends))
	fmt.Printf("Analysis completed in %v with %d workers. Run backend: %s\n", duration, cfg.Workers, cfg.RunBackend)
	return nil
}
