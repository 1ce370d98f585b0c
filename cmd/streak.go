package cmd

import (
	"github.com/huangsam/cardstats/core"
	"github.com/spf13/cobra"
)

// streakCmd prints the daily series with streak values.
var streakCmd = &cobra.Command{
	Use:   "streak [feed-file]",
	Short: "Show the daily series with the current and longest streak.",
	Long: `Bucket activity into calendar days and compute streaks.

The current streak counts consecutive active days ending today, so a quiet
today resets it to zero. Each day also shows the trailing rolling average and
an activity label relative to the busiest day of the window.

Examples:
  # Two week streak card
  cardstats streak feed.json --window "14 days" --rolling 3

  # Daily series as CSV
  cardstats streak feed.json --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteStreak(rootCtx, cfg)
	},
}
