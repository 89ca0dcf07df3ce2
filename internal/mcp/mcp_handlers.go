package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/unc-data110/hoopstats/core"
	"github.com/unc-data110/hoopstats/internal/contract"
	"github.com/unc-data110/hoopstats/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg  *contract.Config
	renderer contract.ChartRenderer
}

// scatterSample is the payload of get_scatter_sample.
type scatterSample struct {
	Metric      schema.Metric         `json:"metric"`
	Caption     string                `json:"caption"`
	Correlation float64               `json:"correlation"`
	Points      []schema.ScatterPoint `json:"points"`
}

// configFor clones the base config and applies the tab, metric and seed arguments.
func (h *toolHandler) configFor(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if t := request.GetString("tab", ""); t != "" {
		tab, err := schema.ParseTab(t)
		if err != nil {
			return nil, err
		}
		cfg.Tab = tab
	}
	if m := request.GetString("metric", ""); m != "" {
		metric, err := schema.ParseMetric(m)
		if err != nil {
			return nil, err
		}
		cfg.Metric = metric
	}
	if seed := request.GetInt("seed", 0); seed != 0 {
		if seed < 0 {
			return nil, fmt.Errorf("seed must not be negative (received %d)", seed)
		}
		cfg.Seed = uint64(seed)
	}
	return cfg, nil
}

func jsonResult(data any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetView(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid view parameters: %v", err)), nil
	}
	view, err := core.GetView(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
	}
	return jsonResult(view)
}

func (h *toolHandler) handleGetScatterSample(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid scatter parameters: %v", err)), nil
	}
	points := core.GenerateScatter(core.NewSource(cfg.Seed), cfg.Metric)
	return jsonResult(scatterSample{
		Metric:      cfg.Metric,
		Caption:     schema.MetricCaption(cfg.Metric),
		Correlation: core.ScatterCorrelation(points),
		Points:      points,
	})
}

func (h *toolHandler) handleGetResidualSample(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid residual parameters: %v", err)), nil
	}
	return jsonResult(core.GenerateResiduals(core.NewSource(cfg.Seed)))
}

func (h *toolHandler) handleGetPermutationCurve(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(core.GeneratePermutationCurve())
}

func (h *toolHandler) handleGetSummaryTables(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(schema.Tables())
}

func (h *toolHandler) handleRenderChart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := schema.ParseChart(request.GetString("name", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid chart parameters: %v", err)), nil
	}
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid chart parameters: %v", err)), nil
	}
	cfg.ChartFormat = schema.SVGChart

	var buf bytes.Buffer
	if err := core.ExecuteChart(core.WithSuppressHeader(ctx), cfg, name, h.renderer, &buf); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}
