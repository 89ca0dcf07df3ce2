// Package parquet provides row types and functions for exporting dashboard
// series and tables to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/unc-data110/hoopstats/schema"
)

// ScatterRow is one team-season of the efficiency vs win percentage sample.
type ScatterRow struct {
	// Metric is the efficiency metric on the x axis (ADJOE or ADJDE)
	Metric string `parquet:"metric,snappy,dict"`

	// Efficiency is points scored or allowed per 100 possessions
	Efficiency float64 `parquet:"efficiency,snappy"`

	// WinPct is the win percentage in [0,1]
	WinPct float64 `parquet:"win_pct,snappy"`
}

// ResidualRow is one fitted observation of the residual diagnostics.
type ResidualRow struct {
	Predicted float64 `parquet:"predicted,snappy"`
	Residual  float64 `parquet:"residual,snappy"`
}

// CurveRow is one point of the permutation null distribution.
type CurveRow struct {
	// Difference is the difference in mean win percentage
	Difference float64 `parquet:"difference,snappy"`

	// Frequency is how often the difference occurred among permutations
	Frequency float64 `parquet:"frequency,snappy"`
}

// SummaryRow is one row of the static tables in long format.
// Count is only set for the style distribution table.
type SummaryRow struct {
	// Table names the source table: coefficients, style_distribution or win_pct_comparison
	Table string `parquet:"table,snappy,dict"`

	Name  string  `parquet:"name,snappy"`
	Label string  `parquet:"label,snappy"`
	Value float64 `parquet:"value,snappy"`
	Count *int32  `parquet:"count,optional,snappy"`
	Color string  `parquet:"color,snappy"`
}

// CardRow is one headline card of the overview.
type CardRow struct {
	Value    string `parquet:"value,snappy"`
	Title    string `parquet:"title,snappy"`
	Subtitle string `parquet:"subtitle,snappy"`
}

// Table names used in SummaryRow.
const (
	CoefficientsTable      = "coefficients"
	StyleDistributionTable = "style_distribution"
	WinPctComparisonTable  = "win_pct_comparison"
)

// writeRows writes a slice of rows to a Parquet file. The schema is derived
// from the struct tags of T.
func writeRows[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// WriteScatterParquet writes a scatter sample to a Parquet file.
func WriteScatterParquet(points []schema.ScatterPoint, metric schema.Metric, outputPath string) error {
	return writeRows(ConvertScatter(points, metric), outputPath)
}

// WriteResidualsParquet writes a residual sample to a Parquet file.
func WriteResidualsParquet(points []schema.ResidualPoint, outputPath string) error {
	return writeRows(ConvertResiduals(points), outputPath)
}

// WriteCurveParquet writes the permutation curve to a Parquet file.
func WriteCurveParquet(points []schema.CurvePoint, outputPath string) error {
	return writeRows(ConvertCurve(points), outputPath)
}

// WriteTablesParquet writes all static tables to one Parquet file in long format.
func WriteTablesParquet(tables schema.SummaryTables, outputPath string) error {
	return writeRows(ConvertTables(tables), outputPath)
}

// WriteCardsParquet writes headline cards to a Parquet file.
func WriteCardsParquet(cards []schema.Card, outputPath string) error {
	return writeRows(ConvertCards(cards), outputPath)
}

// ConvertScatter converts scatter points to ScatterRow for Parquet export.
func ConvertScatter(points []schema.ScatterPoint, metric schema.Metric) []ScatterRow {
	result := make([]ScatterRow, len(points))
	for i, p := range points {
		result[i] = ScatterRow{Metric: string(metric), Efficiency: p.X, WinPct: p.Y}
	}
	return result
}

// ConvertResiduals converts residual points to ResidualRow for Parquet export.
func ConvertResiduals(points []schema.ResidualPoint) []ResidualRow {
	result := make([]ResidualRow, len(points))
	for i, p := range points {
		result[i] = ResidualRow(p)
	}
	return result
}

// ConvertCurve converts curve points to CurveRow for Parquet export.
func ConvertCurve(points []schema.CurvePoint) []CurveRow {
	result := make([]CurveRow, len(points))
	for i, p := range points {
		result[i] = CurveRow{Difference: p.X, Frequency: p.Y}
	}
	return result
}

// ConvertCards converts cards to CardRow for Parquet export.
func ConvertCards(cards []schema.Card) []CardRow {
	result := make([]CardRow, len(cards))
	for i, c := range cards {
		result[i] = CardRow(c)
	}
	return result
}

// ConvertTables flattens the static tables into SummaryRow records.
// Style buckets carry their percentage in Value and their size in Count.
func ConvertTables(tables schema.SummaryTables) []SummaryRow {
	result := make([]SummaryRow, 0, len(tables.Coefficients)+len(tables.StyleDistribution)+len(tables.WinPctComparison))
	for _, c := range tables.Coefficients {
		result = append(result, SummaryRow{Table: CoefficientsTable, Name: c.Name, Label: c.Label, Value: c.Value, Color: c.Color})
	}
	for _, s := range tables.StyleDistribution {
		count := int32(s.Count)
		result = append(result, SummaryRow{Table: StyleDistributionTable, Name: s.Name, Label: s.Name, Value: s.Pct, Count: &count, Color: s.Color})
	}
	for _, w := range tables.WinPctComparison {
		result = append(result, SummaryRow{Table: WinPctComparisonTable, Name: w.TeamStyle, Label: w.TeamStyle, Value: w.WinPct, Color: w.Color})
	}
	return result
}
