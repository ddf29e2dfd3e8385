package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/trendscope/trendscope/schema"
)

// writeJSONResultsForTrend marshals the single-account trend output to JSON and writes it.
func writeJSONResultsForTrend(w io.Writer, acct schema.AccountSeries, metric schema.SeriesMetric, result schema.TrendResult, inflections []schema.InflectionPoint) error {
	// 1. Prepare the combined structure so one document carries both views
	type JSONTrendOutput struct {
		AccountID   string                   `json:"account_id"`
		AccountName string                   `json:"account_name"`
		Metric      schema.SeriesMetric      `json:"metric"`
		Trend       schema.TrendResult       `json:"trend"`
		Inflections []schema.InflectionPoint `json:"inflections"`
	}

	output := JSONTrendOutput{
		AccountID:   acct.ID,
		AccountName: acct.Name,
		Metric:      metric,
		Trend:       result,
		Inflections: inflections,
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// writeCSVResultsForTrend writes the trend result as a single CSV row.
// Inflection points are a per-date view; use JSON output to export them.
func writeCSVResultsForTrend(w *csv.Writer, acct schema.AccountSeries, metric schema.SeriesMetric, result schema.TrendResult, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"account_id",
		"metric",
		"direction",
		"strength",
		"cagr",
		"velocity",
		"acceleration",
		"r_squared",
		"start_value",
		"end_value",
		"change",
		"change_percent",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Row
	row := []string{
		acct.ID,
		string(metric),
		string(result.Direction),
		string(result.Strength),
		fmtFloat(result.CAGR),
		fmtFloat(result.Velocity),
		fmtFloat(result.Acceleration),
		fmtFloat(result.RSquared),
		fmtFloat(result.StartValue),
		fmtFloat(result.EndValue),
		fmtFloat(result.Change),
		fmtFloat(result.ChangePercent),
	}
	return w.Write(row)
}
