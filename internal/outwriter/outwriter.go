// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/unc-data110/hoopstats/internal/contract"
	"github.com/unc-data110/hoopstats/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

var _ contract.ViewWriter = &OutWriter{} // Compile-time check

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteView prints one dashboard tab using the configured output format.
func (ow *OutWriter) WriteView(view schema.View, cfg *contract.Config) error {
	return WriteViewResults(view, cfg)
}

// WriteScatter prints a scatter sample using the configured output format.
func (ow *OutWriter) WriteScatter(points []schema.ScatterPoint, metric schema.Metric, cfg *contract.Config) error {
	return WriteScatterResults(points, metric, cfg)
}

// WriteResiduals prints a residual sample using the configured output format.
func (ow *OutWriter) WriteResiduals(points []schema.ResidualPoint, cfg *contract.Config) error {
	return WriteResidualResults(points, cfg)
}

// WriteCurve prints the permutation curve using the configured output format.
func (ow *OutWriter) WriteCurve(points []schema.CurvePoint, cfg *contract.Config) error {
	return WriteCurveResults(points, cfg)
}

// WriteTables prints the static tables using the configured output format.
func (ow *OutWriter) WriteTables(tables schema.SummaryTables, cfg *contract.Config) error {
	return WriteTableResults(tables, cfg)
}

// GetTextWidth calculates the width available for wrapped prose in text output,
// based on the width override or the detected terminal width.
func GetTextWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	if termWidth < 40 {
		return 40
	}
	if termWidth > 120 {
		return 120
	}
	return termWidth
}
