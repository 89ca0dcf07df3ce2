package core

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/unc-data110/hoopstats/internal/contract"
	"github.com/unc-data110/hoopstats/internal/outwriter"
	"github.com/unc-data110/hoopstats/schema"
)

func testConfig() *contract.Config {
	return &contract.Config{
		Tab:         schema.ExplorationTab,
		Metric:      schema.ADJDE,
		Seed:        99,
		Output:      schema.JSONOut,
		Precision:   contract.DefaultPrecision,
		ChartWidth:  contract.DefaultChartWidth,
		ChartHeight: contract.DefaultChartHeight,
		ChartFormat: schema.SVGChart,
	}
}

// TestGetView tests that the configured selection and seed drive the view.
func TestGetView(t *testing.T) {
	cfg := testConfig()
	a, err := GetView(cfg)
	require.NoError(t, err)
	b, err := GetView(cfg)
	require.NoError(t, err)

	assert.Equal(t, schema.ExplorationTab, a.Tab)
	assert.Equal(t, schema.ADJDE, a.Metric)
	assert.Equal(t, a, b, "same seed should give the same view")
}

// TestGetViewInvalidSelection tests validation of the configured selection.
func TestGetViewInvalidSelection(t *testing.T) {
	cfg := testConfig()
	cfg.Tab = "standings"
	_, err := GetView(cfg)
	assert.ErrorIs(t, err, schema.ErrUnknownTab)

	cfg = testConfig()
	cfg.Metric = "TEMPO"
	_, err = GetView(cfg)
	assert.ErrorIs(t, err, schema.ErrUnknownMetric)
}

// TestExecuteView tests that the rendered view is handed to the writer.
func TestExecuteView(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := testConfig()

	w := &outwriter.MockViewWriter{}
	w.On("WriteView", mock.MatchedBy(func(v schema.View) bool {
		return v.Tab == schema.ExplorationTab && v.Exploration != nil && v.Exploration.ReversedAxis
	}), cfg).Return(nil)

	require.NoError(t, ExecuteView(ctx, cfg, w))
	w.AssertExpectations(t)
}

// TestExecuteViewWriterError tests that writer failures propagate.
func TestExecuteViewWriterError(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := testConfig()

	w := &outwriter.MockViewWriter{}
	w.On("WriteView", mock.Anything, cfg).Return(errors.New("disk full"))

	assert.EqualError(t, ExecuteView(ctx, cfg, w), "disk full")
}

// TestExecuteSamples tests the sample and table executors.
func TestExecuteSamples(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := testConfig()

	w := &outwriter.MockViewWriter{}
	w.On("WriteScatter", mock.MatchedBy(func(p []schema.ScatterPoint) bool {
		return len(p) == schema.ScatterSampleSize
	}), schema.ADJDE, cfg).Return(nil)
	w.On("WriteResiduals", mock.MatchedBy(func(p []schema.ResidualPoint) bool {
		return len(p) == schema.ResidualSampleSize
	}), cfg).Return(nil)
	w.On("WriteCurve", GeneratePermutationCurve(), cfg).Return(nil)
	w.On("WriteTables", schema.Tables(), cfg).Return(nil)

	require.NoError(t, ExecuteScatter(ctx, cfg, w))
	require.NoError(t, ExecuteResiduals(ctx, cfg, w))
	require.NoError(t, ExecutePermutation(ctx, cfg, w))
	require.NoError(t, ExecuteTables(ctx, cfg, w))
	w.AssertExpectations(t)
}

// TestExecuteScatterDefaultMetric tests that an empty metric resolves to ADJOE.
func TestExecuteScatterDefaultMetric(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := testConfig()
	cfg.Metric = ""

	w := &outwriter.MockViewWriter{}
	w.On("WriteScatter", mock.Anything, schema.ADJOE, cfg).Return(nil)

	require.NoError(t, ExecuteScatter(ctx, cfg, w))
	w.AssertExpectations(t)
}

// TestExecuteChart tests that the chart is rendered from its owning tab.
func TestExecuteChart(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := testConfig()
	var out bytes.Buffer

	r := &outwriter.MockChartRenderer{}
	r.On("RenderChart", &out, schema.ResidualsChart, mock.MatchedBy(func(v schema.View) bool {
		return v.Tab == schema.ModelTab && v.Model != nil
	}), cfg.ChartOptions()).Return(nil)

	require.NoError(t, ExecuteChart(ctx, cfg, schema.ResidualsChart, r, &out))
	r.AssertExpectations(t)
}

// TestExecuteChartError tests that renderer failures are wrapped.
func TestExecuteChartError(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := testConfig()
	sentinel := errors.New("boom")

	r := &outwriter.MockChartRenderer{}
	r.On("RenderChart", mock.Anything, schema.PermutationChart, mock.Anything, mock.Anything).Return(sentinel)

	err := ExecuteChart(ctx, cfg, schema.PermutationChart, r, &bytes.Buffer{})
	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "permutation")
}

// TestChartTab tests the chart to tab mapping.
func TestChartTab(t *testing.T) {
	tests := map[schema.ChartName]schema.Tab{
		schema.StylesChart:       schema.ExplorationTab,
		schema.ScatterChart:      schema.ExplorationTab,
		schema.WinPctChart:       schema.ExplorationTab,
		schema.CoefficientsChart: schema.ModelTab,
		schema.ResidualsChart:    schema.ModelTab,
		schema.PermutationChart:  schema.ResultsTab,
	}
	for name, tab := range tests {
		assert.Equal(t, tab, ChartTab(name), "chart %s", name)
	}
}
