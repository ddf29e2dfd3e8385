package cmd

import (
	"github.com/spf13/cobra"
	"github.com/trendscope/trendscope/core"
	"github.com/trendscope/trendscope/internal/contract"
)

// trendCmd analyzes a single account's metric series.
var trendCmd = &cobra.Command{
	Use:   "trend [data-path]",
	Short: "Analyze the trend of one metric for a single account.",
	Long: `Deep-dive into one account's metric history.

Computes the annualized growth rate, linear trend slope, fit quality and
acceleration for the selected series (ARR by default), then scans the series
for inflection points: sustained shifts where the metric broke from its
recent average.

Requires --account. Metric defaults to arr; use --metric to analyze
health or nps instead. --threshold controls how large a shift must be
(in percent) before it is reported as an inflection.

Examples:
  # ARR trend for one account
  trendscope trend ./data --account acme-corp

  # Health score trend with a more sensitive inflection threshold
  trendscope trend ./data --account acme-corp --metric health --threshold 10

  # Full trend and inflection detail as JSON
  trendscope trend ./data --account acme-corp --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrend(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run trend analysis", err)
		}
	},
}
