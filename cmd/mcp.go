package cmd

import (
	"github.com/huangsam/cardstats/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the cardstats MCP server",
	Long:  `Launch an MCP server on stdio that lets AI agents compute streaks, rolling averages, curves, donuts and full reports.`,
	// Logs go to stderr, so stdout stays free for the protocol.
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, gitClient)
	},
}
