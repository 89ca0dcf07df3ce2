package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unc-data110/hoopstats/internal/contract"
	"github.com/unc-data110/hoopstats/schema"
)

func textConfig() *contract.Config {
	return &contract.Config{
		Output:    schema.TextOut,
		Precision: 3,
		Width:     100,
		UseEmojis: false,
		UseColors: false,
	}
}

func overviewView() schema.View {
	return schema.View{
		Tab:    schema.OverviewTab,
		Metric: schema.ADJOE,
		Overview: &schema.OverviewView{
			Question: schema.ResearchQuestion,
			Cards:    schema.HeadlineCards(),
			Findings: schema.KeyFindings(),
		},
	}
}

func explorationView() schema.View {
	return schema.View{
		Tab:    schema.ExplorationTab,
		Metric: schema.ADJDE,
		Exploration: &schema.ExplorationView{
			Styles:         schema.StyleDistribution(),
			StyleNote:      schema.StyleNote,
			Metric:         schema.ADJDE,
			Scatter:        []schema.ScatterPoint{{X: 86, Y: 0.78}, {X: 87.5, Y: 0.74}, {X: 118, Y: 0.22}},
			ScatterCaption: schema.DefenseCaption,
			ReversedAxis:   true,
			Correlation:    -0.95,
			WinPct:         schema.WinPctComparison(),
			WinPctNote:     schema.WinPctNote,
		},
	}
}

func modelView() schema.View {
	return schema.View{
		Tab: schema.ModelTab,
		Model: &schema.ModelView{
			Target:       schema.TargetVariable,
			Features:     schema.Features(),
			Equation:     schema.ModelEquation,
			ScalingNote:  schema.ModelScalingNote,
			Coefficients: schema.RateCoefficients(schema.CoefficientData()),
			Residuals:    []schema.ResidualPoint{{Predicted: 0.2, Residual: -0.1}, {Predicted: 0.7, Residual: 0.04}},
			ResidualNote: schema.ResidualNote,
			Diagnostics:  schema.DiagnosticCards(),
		},
	}
}

func resultsView() schema.View {
	return schema.View{
		Tab: schema.ResultsTab,
		Results: &schema.ResultsView{
			NullHypothesis:     schema.NullHypothesis,
			AltHypothesis:      schema.AltHypothesis,
			Curve:              []schema.CurvePoint{{X: -0.02, Y: 25}, {X: 0.002, Y: 650}, {X: 0.03, Y: 3}},
			ObservedDifference: schema.ObservedDifference,
			PValue:             schema.PValue,
			Permutations:       schema.Permutations,
			RejectNull:         true,
			Evidence:           schema.EvidenceCards(true),
			Conclusions:        schema.KeyConclusions(),
			About:              schema.AboutResearch(),
		},
	}
}

func TestWriteViewText(t *testing.T) {
	cfg := textConfig()
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	tests := []struct {
		name     string
		view     schema.View
		contains []string
	}{
		{"overview", overviewView(), []string{"[Overview] | Exploration", "Research Question", "3,523", "Offense Matters More", "+ Offense Matters More"}},
		{"exploration", explorationView(), []string{"[Exploration]", "Both Low", "3523", "Defensive Efficiency (ADJDE)", "Pearson r = -0.950", "Offense-Heavy"}},
		{"model", modelView(), []string{"Win_PCT = 0.64", "Strong", "Substantial", "Minimal", "Residual Analysis", "R² = 0.60"}},
		{"results", resultsView(), []string{"H₀:", "0.026", "650.000 at 0.002", "Reject H₀", "Offense Wins Championships", "Audrey Sompie, Anirudh Dhawan", "barttorvik.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeViewText(&buf, tt.view, cfg, fmtFloat, intFmt))
			out := buf.String()
			assert.Contains(t, out, schema.Title)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestWriteViewTextEmpty(t *testing.T) {
	cfg := textConfig()
	fmtFloat, intFmt := createFormatters(cfg.Precision)
	err := writeViewText(&bytes.Buffer{}, schema.View{Tab: schema.ModelTab}, cfg, fmtFloat, intFmt)
	assert.ErrorContains(t, err, "has no content")
}

func TestWriteViewCSV(t *testing.T) {
	fmtFloat, _ := createFormatters(2)

	tests := []struct {
		name   string
		view   schema.View
		header []string
		rows   int
	}{
		{"overview", overviewView(), []string{"value", "title", "subtitle"}, 3},
		{"exploration", explorationView(), []string{"metric", "efficiency", "win_pct"}, 3},
		{"model", modelView(), []string{"predicted", "residual"}, 2},
		{"results", resultsView(), []string{"difference", "frequency"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeViewCSV(&buf, tt.view, fmtFloat))
			records, err := csv.NewReader(&buf).ReadAll()
			require.NoError(t, err)
			require.Len(t, records, tt.rows+1)
			assert.Equal(t, tt.header, records[0])
		})
	}
}

func TestWriteViewJSONToFile(t *testing.T) {
	cfg := textConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "view.json")

	require.NoError(t, WriteViewResults(explorationView(), cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var result map[string]any
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "exploration", result["tab"])
	assert.Nil(t, result["overview"])
	exploration, ok := result["exploration"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, exploration["reversed_axis"])
	assert.Len(t, exploration["scatter"], 3)
}

func TestWriteViewParquetToFile(t *testing.T) {
	cfg := textConfig()
	cfg.Output = schema.ParquetOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "view.parquet")

	require.NoError(t, WriteViewResults(resultsView(), cfg))

	info, err := os.Stat(cfg.OutputFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteViewParquetRequiresFile(t *testing.T) {
	cfg := textConfig()
	cfg.Output = schema.ParquetOut
	assert.ErrorContains(t, WriteViewResults(overviewView(), cfg), "--output-file")
}

func TestScatterBands(t *testing.T) {
	fmtFloat, _ := createFormatters(2)
	points := []schema.ScatterPoint{{X: 85, Y: 0.2}, {X: 89.9, Y: 0.4}, {X: 119.9, Y: 0.8}}

	rows := scatterBands(points, false, fmtFloat)
	require.Len(t, rows, 7)
	assert.Equal(t, []string{"85-90", "2", "0.30"}, rows[0])
	assert.Equal(t, []string{"90-95", "0", "-"}, rows[1])
	assert.Equal(t, []string{"115-120", "1", "0.80"}, rows[6])

	reversed := scatterBands(points, true, fmtFloat)
	assert.Equal(t, rows[6], reversed[0])
	assert.Equal(t, rows[0], reversed[6])
}

func TestResidualStats(t *testing.T) {
	minRes, maxRes, mean := residualStats([]schema.ResidualPoint{{Residual: -0.1}, {Residual: 0.05}, {Residual: 0.02}})
	assert.InDelta(t, -0.1, minRes, 1e-12)
	assert.InDelta(t, 0.05, maxRes, 1e-12)
	assert.InDelta(t, -0.01, mean, 1e-12)

	minRes, maxRes, mean = residualStats(nil)
	assert.Zero(t, minRes)
	assert.Zero(t, maxRes)
	assert.Zero(t, mean)
}

func TestTabBar(t *testing.T) {
	assert.Equal(t, "Overview | Exploration | [Model] | Results", tabBar(schema.ModelTab))
	assert.False(t, strings.Contains(tabBar("standings"), "["))
}
