package cmd

import (
	"github.com/spf13/cobra"
	"github.com/trendscope/trendscope/core"
	"github.com/trendscope/trendscope/internal/contract"
)

// segmentsCmd classifies accounts into growth segments.
var segmentsCmd = &cobra.Command{
	Use:   "segments [data-path]",
	Short: "Classify every account into a growth segment.",
	Long: `Analyze each account's ARR history and place it into one of five segments:
high_growth, steady_growth, stable, declining or at_risk.

Each account is scored on its annualized ARR growth rate and the acceleration
of that growth, then enriched with a likely growth or decline driver taken
from its health score trend.

Use segments to:
- Spot accounts about to churn before the renewal conversation
- Find expansion candidates for upsell campaigns
- Balance CSM books by trajectory rather than raw ARR

Examples:
  # Segment the accounts in ./data
  trendscope segments ./data

  # Only show the top 10 accounts per ranking
  trendscope segments ./data --limit 10

  # Export the full segmentation to CSV
  trendscope segments ./data --output csv --output-file segments.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSegments(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run segments analysis", err)
		}
	},
}
