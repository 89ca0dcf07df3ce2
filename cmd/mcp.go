package cmd

import (
	"github.com/spf13/cobra"
	"github.com/unc-data110/hoopstats/internal/chart"
	"github.com/unc-data110/hoopstats/internal/mcp"
)

// mcpCmd serves the dashboard data to AI agents over stdio.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve dashboard views, samples, tables and charts as MCP tools.",
	Long: `Start a Model Context Protocol server on stdin/stdout.

Tools: get_view, get_scatter_sample, get_residual_sample,
get_permutation_curve, get_summary_tables, render_chart.

The configured --tab, --metric and --seed act as defaults for tool calls.`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, chart.NewRenderer())
	},
}
