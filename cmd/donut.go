package cmd

import (
	"github.com/huangsam/cardstats/core"
	"github.com/spf13/cobra"
)

// donutCmd prints the time distribution ring.
var donutCmd = &cobra.Command{
	Use:   "donut [feed-file]",
	Short: "Compute the time-of-day donut as annulus wedge paths.",
	Long: `Fold the hour histogram into six day periods and lay them out clockwise
from 12 o'clock. Wedges too thin to survive the gap get an empty path.

Examples:
  cardstats donut feed.json
  cardstats donut feed.json --gap 0 --outer-radius 80 --inner-radius 50 --output yaml`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteDonut(rootCtx, cfg)
	},
}
