package outwriter

import (
	"encoding/csv"

	"github.com/trendscope/trendscope/internal/contract"
	"github.com/trendscope/trendscope/schema"
)

// writeCSVResultsForPortfolio writes the portfolio trend data to a CSV writer.
func writeCSVResultsForPortfolio(w *csv.Writer, trends []schema.PortfolioMetricTrend, fmtFloat, fmtMoney func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"metric",
		"start_date",
		"start_value",
		"end_date",
		"end_value",
		"cagr",
		"direction",
		"strength",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, t := range trends {
		row := []string{
			string(t.MetricName),            // Metric
			contract.FormatDate(t.StartDate), // Start Date
			fmtMoney(t.StartValue),          // Start Value
			contract.FormatDate(t.EndDate),  // End Date
			fmtMoney(t.EndValue),            // End Value
			fmtFloat(t.CAGR),                // CAGR
			string(t.Direction),             // Direction
			t.StrengthLabel,                 // Strength
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
