// Package core has core logic for the dashboard state, views and sample generators.
package core

import (
	"context"
	"fmt"
	"io"

	"github.com/unc-data110/hoopstats/internal/contract"
	"github.com/unc-data110/hoopstats/schema"
)

// ExecutorFunc defines the function signature for executing the different CLI modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, w contract.ViewWriter) error

// GetView renders the configured tab and metric with the configured seed.
func GetView(cfg *contract.Config) (schema.View, error) {
	tab, err := schema.ParseTab(string(cfg.Tab))
	if err != nil {
		return schema.View{}, err
	}
	metric, err := schema.ParseMetric(string(cfg.Metric))
	if err != nil {
		return schema.View{}, err
	}
	dash := NewDashboard()
	if err := dash.SelectTab(tab); err != nil {
		return schema.View{}, err
	}
	if err := dash.SelectMetric(metric); err != nil {
		return schema.View{}, err
	}
	return dash.Render(NewSource(cfg.Seed)), nil
}

// ExecuteView renders one dashboard tab through the writer.
func ExecuteView(ctx context.Context, cfg *contract.Config, w contract.ViewWriter) error {
	view, err := GetView(cfg)
	if err != nil {
		return err
	}
	logHeader(ctx, cfg, fmt.Sprintf("Tab: %s", schema.TabTitle(view.Tab)))
	return w.WriteView(view, cfg)
}

// ExecuteScatter writes a fresh scatter sample for the configured metric.
func ExecuteScatter(ctx context.Context, cfg *contract.Config, w contract.ViewWriter) error {
	metric, err := schema.ParseMetric(string(cfg.Metric))
	if err != nil {
		return err
	}
	logHeader(ctx, cfg, fmt.Sprintf("Scatter: %s (%d points)", metric, schema.ScatterSampleSize))
	return w.WriteScatter(GenerateScatter(NewSource(cfg.Seed), metric), metric, cfg)
}

// ExecuteResiduals writes a fresh residual sample.
func ExecuteResiduals(ctx context.Context, cfg *contract.Config, w contract.ViewWriter) error {
	logHeader(ctx, cfg, fmt.Sprintf("Residuals (%d points)", schema.ResidualSampleSize))
	return w.WriteResiduals(GenerateResiduals(NewSource(cfg.Seed)), cfg)
}

// ExecutePermutation writes the permutation null distribution curve.
func ExecutePermutation(ctx context.Context, cfg *contract.Config, w contract.ViewWriter) error {
	logHeader(ctx, cfg, fmt.Sprintf("Permutation curve (%d points)", schema.PermutationCurveSize))
	return w.WriteCurve(GeneratePermutationCurve(), cfg)
}

// ExecuteTables writes the static summary tables.
func ExecuteTables(ctx context.Context, cfg *contract.Config, w contract.ViewWriter) error {
	logHeader(ctx, cfg, "Summary tables")
	return w.WriteTables(schema.Tables(), cfg)
}

// ExecuteChart draws one chart to out. The chart is taken from the tab that owns it,
// so the configured tab is ignored while the configured metric and seed still apply.
func ExecuteChart(ctx context.Context, cfg *contract.Config, name schema.ChartName, r contract.ChartRenderer, out io.Writer) error {
	metric, err := schema.ParseMetric(string(cfg.Metric))
	if err != nil {
		return err
	}
	view := BuildView(ChartTab(name), metric, NewSource(cfg.Seed))
	logHeader(ctx, cfg, fmt.Sprintf("Chart: %s (%s %dx%d)", name, cfg.ChartFormat, cfg.ChartWidth, cfg.ChartHeight))
	if err := r.RenderChart(out, name, view, cfg.ChartOptions()); err != nil {
		return fmt.Errorf("failed to render %s chart: %w", name, err)
	}
	return nil
}

// ChartTab returns the tab whose view carries the data of a chart.
func ChartTab(name schema.ChartName) schema.Tab {
	switch name {
	case schema.CoefficientsChart, schema.ResidualsChart:
		return schema.ModelTab
	case schema.PermutationChart:
		return schema.ResultsTab
	default:
		return schema.ExplorationTab
	}
}
