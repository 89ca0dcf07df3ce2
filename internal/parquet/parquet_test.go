package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unc-data110/hoopstats/schema"
)

// readRows reads every row of a Parquet file written by writeRows.
func readRows[T any](t *testing.T, path string) []T {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[T](file)
	defer reader.Close()

	rows := make([]T, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	return rows[:n]
}

func TestRowStructTags(t *testing.T) {
	tests := []struct {
		name    string
		model   any
		columns []string
	}{
		{"scatter", new(ScatterRow), []string{"metric", "efficiency", "win_pct"}},
		{"residual", new(ResidualRow), []string{"predicted", "residual"}},
		{"curve", new(CurveRow), []string{"difference", "frequency"}},
		{"summary", new(SummaryRow), []string{"table", "name", "label", "value", "count", "color"}},
		{"card", new(CardRow), []string{"value", "title", "subtitle"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := parquet.SchemaOf(tt.model)
			require.NotNil(t, s)
			for _, colName := range tt.columns {
				col, ok := s.Lookup(colName)
				require.True(t, ok, "Column %s should exist in schema", colName)
				require.NotNil(t, col, "Column %s should not be nil", colName)
			}
		})
	}
}

func TestWriteScatterParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "scatter.parquet")
	points := []schema.ScatterPoint{{X: 101.5, Y: 0.61}, {X: 88.2, Y: 0.27}, {X: 119.9, Y: 0.83}}

	require.NoError(t, WriteScatterParquet(points, schema.ADJOE, outputPath))

	rows := readRows[ScatterRow](t, outputPath)
	require.Len(t, rows, len(points))
	for i, p := range points {
		assert.Equal(t, "ADJOE", rows[i].Metric)
		assert.InDelta(t, p.X, rows[i].Efficiency, 1e-12)
		assert.InDelta(t, p.Y, rows[i].WinPct, 1e-12)
	}
}

func TestWriteResidualsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "residuals.parquet")
	points := []schema.ResidualPoint{{Predicted: 0.4, Residual: -0.1}, {Predicted: 0.9, Residual: 0.05}}

	require.NoError(t, WriteResidualsParquet(points, outputPath))

	rows := readRows[ResidualRow](t, outputPath)
	assert.Equal(t, ConvertResiduals(points), rows)
}

func TestWriteCurveParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "curve.parquet")
	points := []schema.CurvePoint{{X: -0.02, Y: 25.3}, {X: 0.002, Y: 650}}

	require.NoError(t, WriteCurveParquet(points, outputPath))

	rows := readRows[CurveRow](t, outputPath)
	require.Len(t, rows, 2)
	assert.InDelta(t, 650.0, rows[1].Frequency, 1e-9)
	assert.InDelta(t, -0.02, rows[0].Difference, 1e-12)
}

func TestWriteTablesParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "tables.parquet")

	require.NoError(t, WriteTablesParquet(schema.Tables(), outputPath))

	rows := readRows[SummaryRow](t, outputPath)
	require.Len(t, rows, 9)

	assert.Equal(t, CoefficientsTable, rows[0].Table)
	assert.Equal(t, "ADJOE", rows[0].Name)
	assert.InDelta(t, 0.64, rows[0].Value, 1e-12)
	assert.Nil(t, rows[0].Count)

	assert.Equal(t, StyleDistributionTable, rows[4].Table)
	assert.Equal(t, "Both Low", rows[4].Name)
	require.NotNil(t, rows[4].Count)
	assert.Equal(t, int32(1517), *rows[4].Count)

	assert.Equal(t, WinPctComparisonTable, rows[8].Table)
	assert.Equal(t, "Defense-Heavy", rows[8].Name)
	assert.InDelta(t, 0.530, rows[8].Value, 1e-12)
}

func TestWriteCardsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "cards.parquet")

	require.NoError(t, WriteCardsParquet(schema.HeadlineCards(), outputPath))

	rows := readRows[CardRow](t, outputPath)
	require.Len(t, rows, 3)
	assert.Equal(t, "3,523", rows[0].Value)
	assert.Equal(t, "R² Score", rows[1].Title)
}

func TestWriteParquet_EmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")

	require.NoError(t, WriteScatterParquet(nil, schema.ADJDE, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Parquet footer should still be written")
	assert.Empty(t, readRows[ScatterRow](t, outputPath))
}

func TestWriteParquet_InvalidPath(t *testing.T) {
	err := WriteCurveParquet(nil, filepath.Join(t.TempDir(), "missing", "curve.parquet"))
	assert.ErrorContains(t, err, "failed to create output file")
}

func TestConvertTablesOrder(t *testing.T) {
	rows := ConvertTables(schema.Tables())
	var tables []string
	for _, r := range rows {
		if len(tables) == 0 || tables[len(tables)-1] != r.Table {
			tables = append(tables, r.Table)
		}
	}
	assert.Equal(t, []string{CoefficientsTable, StyleDistributionTable, WinPctComparisonTable}, tables)
}
