// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/unc-data110/hoopstats/internal/contract"
)

// NewMCPServer initializes and configures the dashboard MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, renderer contract.ChartRenderer) *server.MCPServer {
	s := server.NewMCPServer(
		"Hoopstats Dashboard Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg:  baseCfg,
		renderer: renderer,
	}

	// --- 1. Tool: get_view ---
	s.AddTool(mcp.NewTool("get_view",
		mcp.WithDescription("Render one dashboard tab (overview, exploration, model, results) as JSON."),
		mcp.WithString("tab", mcp.Description("Dashboard tab. Defaults to 'overview'."), mcp.Enum("overview", "exploration", "model", "results")),
		mcp.WithString("metric", mcp.Description("Scatter metric for the exploration tab. Defaults to 'ADJOE'."), mcp.Enum("ADJOE", "ADJDE")),
		mcp.WithNumber("seed", mcp.Description("Random seed for the illustrative samples. 0 draws fresh noise.")),
	), h.handleGetView)

	// --- 2. Tool: get_scatter_sample ---
	s.AddTool(mcp.NewTool("get_scatter_sample",
		mcp.WithDescription("Generate the illustrative efficiency vs win percentage sample (200 points)."),
		mcp.WithString("metric", mcp.Description("Efficiency metric (ADJOE or ADJDE)."), mcp.Enum("ADJOE", "ADJDE")),
		mcp.WithNumber("seed", mcp.Description("Random seed. 0 draws fresh noise.")),
	), h.handleGetScatterSample)

	// --- 3. Tool: get_residual_sample ---
	s.AddTool(mcp.NewTool("get_residual_sample",
		mcp.WithDescription("Generate the illustrative residual diagnostics sample (150 points)."),
		mcp.WithNumber("seed", mcp.Description("Random seed. 0 draws fresh noise.")),
	), h.handleGetResidualSample)

	// --- 4. Tool: get_permutation_curve ---
	s.AddTool(mcp.NewTool("get_permutation_curve",
		mcp.WithDescription("Return the permutation test null distribution curve (100 points)."),
	), h.handleGetPermutationCurve)

	// --- 5. Tool: get_summary_tables ---
	s.AddTool(mcp.NewTool("get_summary_tables",
		mcp.WithDescription("Return the regression coefficients, style distribution and win percentage tables."),
	), h.handleGetSummaryTables)

	// --- 6. Tool: render_chart ---
	s.AddTool(mcp.NewTool("render_chart",
		mcp.WithDescription("Render one dashboard chart as SVG markup."),
		mcp.WithString("name", mcp.Description("Chart name."), mcp.Required(),
			mcp.Enum("styles", "scatter", "winpct", "coefficients", "residuals", "permutation")),
		mcp.WithString("metric", mcp.Description("Scatter metric (ADJOE or ADJDE)."), mcp.Enum("ADJOE", "ADJDE")),
		mcp.WithNumber("seed", mcp.Description("Random seed. 0 draws fresh noise.")),
	), h.handleRenderChart)

	return s
}

// StartMCPServer starts the dashboard MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, renderer contract.ChartRenderer) error {
	s := NewMCPServer(baseCfg, renderer)
	return server.ServeStdio(s)
}
