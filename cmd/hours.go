package cmd

import (
	"github.com/huangsam/cardstats/core"
	"github.com/spf13/cobra"
)

// hoursCmd prints the hour of day histogram.
var hoursCmd = &cobra.Command{
	Use:   "hours [feed-file]",
	Short: "Show when activity happens across the 24 hours of the day.",
	Long: `Count events per local hour in the configured time zone.

Examples:
  cardstats hours feed.json --timezone Europe/Berlin
  cardstats hours feed.json --output parquet --output-file hours.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteHours(rootCtx, cfg)
	},
}
