// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"io"

	"github.com/unc-data110/hoopstats/schema"
)

// ViewWriter renders dashboard data in the configured output format.
// This allows the core logic to be tested without touching stdout or files.
type ViewWriter interface {
	// WriteView renders one dashboard tab.
	WriteView(view schema.View, cfg *Config) error

	// WriteScatter renders an efficiency vs win percentage sample.
	WriteScatter(points []schema.ScatterPoint, metric schema.Metric, cfg *Config) error

	// WriteResiduals renders a residual diagnostics sample.
	WriteResiduals(points []schema.ResidualPoint, cfg *Config) error

	// WriteCurve renders the permutation null distribution curve.
	WriteCurve(points []schema.CurvePoint, cfg *Config) error

	// WriteTables renders the static summary tables.
	WriteTables(tables schema.SummaryTables, cfg *Config) error
}

// ChartRenderer draws one dashboard chart as an image.
type ChartRenderer interface {
	// RenderChart writes the named chart of the view to w.
	RenderChart(w io.Writer, name schema.ChartName, view schema.View, opts ChartOptions) error
}

// ChartOptions controls chart dimensions and encoding.
type ChartOptions struct {
	Width  int
	Height int
	Format schema.ChartFormat
}
