package cmd

import (
	"github.com/spf13/cobra"
	"github.com/trendscope/trendscope/core"
	"github.com/trendscope/trendscope/internal/contract"
)

// portfolioCmd computes portfolio-wide metric trends.
var portfolioCmd = &cobra.Command{
	Use:   "portfolio [data-path]",
	Short: "Show portfolio-wide trends across all accounts.",
	Long: `Aggregate every account's history into monthly portfolio metrics and
report the trend of each one:
- Total ARR (sum across accounts)
- Avg Health Score
- Avg NPS
- Customer Count

Each metric series is bucketed by calendar month (UTC) and analyzed for
direction, growth rate and trend strength. Metrics without at least two
monthly data points are omitted.

Examples:
  # Portfolio trends for the accounts in ./data
  trendscope portfolio ./data

  # Export portfolio trends as JSON
  trendscope portfolio ./data --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePortfolio(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run portfolio analysis", err)
		}
	},
}
