package cmd

import (
	"github.com/huangsam/cardstats/core"
	"github.com/spf13/cobra"
)

// weeklyCmd prints per-category weekly totals.
var weeklyCmd = &cobra.Command{
	Use:   "weekly [feed-file]",
	Short: "Show commits, pull requests and issues per week.",
	Long: `Split activity into consecutive calendar weeks, oldest first.

The last bucket is the week containing the reference time. Use --week-start to
begin weeks on a day other than Sunday.

Examples:
  cardstats weekly feed.json --weeks 12
  cardstats weekly --source git --week-start monday --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteWeekly(rootCtx, cfg)
	},
}
