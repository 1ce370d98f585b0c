package cmd

import (
	"github.com/huangsam/cardstats/core"
	"github.com/spf13/cobra"
)

// reportCmd builds every dataset of one set of report cards.
var reportCmd = &cobra.Command{
	Use:   "report [feed-file]",
	Short: "Build the full report: summary, languages and recent activity.",
	Long: `Build every dataset needed to draw one set of activity cards.

The report carries the daily series, streaks, rolling average, weekly and
hourly buckets, the contribution curve, the time distribution donut, the
streak mini chart, language shares and recent activity. The text view prints
the scalar summary; use --output json or yaml for the complete report.

Examples:
  # Summarize a feed exported from your activity provider
  cardstats report feed.json

  # The full report as JSON for a renderer
  cardstats report feed.yaml --output json --output-file report.json

  # Last 90 days of the current repository, in Tokyo time
  cardstats report --source git --window "90 days" --timezone Asia/Tokyo`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteReport(rootCtx, cfg)
	},
}
