package cmd

import (
	"github.com/huangsam/cardstats/core"
	"github.com/spf13/cobra"
)

// curveCmd prints the contribution chart geometry.
var curveCmd = &cobra.Command{
	Use:   "curve [feed-file]",
	Short: "Compute the contribution curve as SVG path descriptors.",
	Long: `Map the daily series into the plot area and smooth it into cubic Bezier
line and area paths. Coordinates use an SVG style system where Y grows
downward; the plot is offset 50px from the card's top-left corner.

Examples:
  cardstats curve feed.json --smoothing catmull-rom
  cardstats curve feed.json --chart-width 500 --chart-height 100 --top-pad 10 --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteCurve(rootCtx, cfg)
	},
}
