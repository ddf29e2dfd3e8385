package cmd

import (
	"github.com/spf13/cobra"
	"github.com/trendscope/trendscope/core"
	"github.com/trendscope/trendscope/internal/contract"
)

// reportCmd produces the combined segmentation and portfolio report.
var reportCmd = &cobra.Command{
	Use:   "report [data-path]",
	Short: "Produce the combined segment and portfolio report.",
	Long: `Run the full analysis in one pass: segment every account, roll the
segments up into portfolio-level summaries, and compute monthly trends for
the portfolio metrics.

When run tracking is enabled (--run-backend), the report bundle is persisted
under its batch ID so later runs can be compared and exported.

Examples:
  # Full report for the accounts in ./data
  trendscope report ./data

  # Persist this run under an explicit batch ID
  trendscope report ./data --run-backend sqlite --batch-id 2026-q3-review

  # Machine-readable bundle for downstream tooling
  trendscope report ./data --output json --output-file report.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run report analysis", err)
		}
	},
}
