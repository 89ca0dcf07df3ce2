package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unc-data110/hoopstats/schema"
)

func TestWriteTablesCSV(t *testing.T) {
	fmtFloat, intFmt := createFormatters(3)

	var buf bytes.Buffer
	require.NoError(t, writeTablesCSV(&buf, schema.Tables(), fmtFloat, intFmt))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 10)
	assert.Equal(t, []string{"table", "name", "label", "value", "count", "color"}, records[0])
	assert.Equal(t, []string{"coefficients", "ADJOE", "Offense", "0.640", "", "#3b82f6"}, records[1])
	assert.Equal(t, []string{"style_distribution", "Both Low", "Both Low", "43.100", "1517", "#6b7280"}, records[5])
	assert.Equal(t, []string{"win_pct_comparison", "Offense-Heavy", "Offense-Heavy", "0.556", "", "#3b82f6"}, records[8])
}

func TestWriteTablesText(t *testing.T) {
	cfg := textConfig()
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	require.NoError(t, writeTablesText(&buf, schema.Tables(), cfg, fmtFloat, intFmt))

	out := buf.String()
	for _, s := range []string{"Regression Coefficients", "ADJ_T", "0.005", "Minimal", "Both High", "876", "24.9%", "3523", "Defense-Heavy", "0.530"} {
		assert.Contains(t, out, s)
	}
}

func TestWriteTablesTextWithEmojis(t *testing.T) {
	cfg := textConfig()
	cfg.UseEmojis = true
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	require.NoError(t, writeTablesText(&buf, schema.Tables(), cfg, fmtFloat, intFmt))
	assert.Contains(t, buf.String(), "📐 Regression Coefficients")
}

func TestWriteTableResultsJSONToFile(t *testing.T) {
	cfg := textConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "tables.json")

	require.NoError(t, NewOutWriter().WriteTables(schema.Tables(), cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var result schema.SummaryTables
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, schema.Tables(), result)
}
