// Package chart draws the dashboard charts with github.com/wcharczuk/go-chart/v2.
package chart

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/unc-data110/hoopstats/internal/contract"
	"github.com/unc-data110/hoopstats/schema"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrMissingData is returned when the view does not carry the data of the requested chart.
var ErrMissingData = errors.New("view has no data for chart")

// Series colors shared with the HTML dashboard.
var (
	seriesColor    = hexColor("#3b82f6")
	referenceColor = hexColor("#ef4444")
)

// Renderer draws dashboard charts as SVG or PNG.
type Renderer struct{}

var _ contract.ChartRenderer = &Renderer{} // Compile-time check

// NewRenderer creates a new chart renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderChart writes the named chart of the view to w.
func (r *Renderer) RenderChart(w io.Writer, name schema.ChartName, view schema.View, opts contract.ChartOptions) error {
	provider := gochart.SVG
	if opts.Format == schema.PNGChart {
		provider = gochart.PNG
	}
	if opts.Width <= 0 {
		opts.Width = contract.DefaultChartWidth
	}
	if opts.Height <= 0 {
		opts.Height = contract.DefaultChartHeight
	}

	switch name {
	case schema.StylesChart:
		if view.Exploration == nil {
			return missing(name)
		}
		return stylesChart(view.Exploration.Styles, opts).Render(provider, w)
	case schema.ScatterChart:
		if view.Exploration == nil {
			return missing(name)
		}
		return scatterChart(view.Exploration, opts).Render(provider, w)
	case schema.WinPctChart:
		if view.Exploration == nil {
			return missing(name)
		}
		return winPctChart(view.Exploration.WinPct, opts).Render(provider, w)
	case schema.CoefficientsChart:
		if view.Model == nil {
			return missing(name)
		}
		return coefficientsChart(view.Model.Coefficients, opts).Render(provider, w)
	case schema.ResidualsChart:
		if view.Model == nil {
			return missing(name)
		}
		return residualsChart(view.Model.Residuals, opts).Render(provider, w)
	case schema.PermutationChart:
		if view.Results == nil {
			return missing(name)
		}
		return permutationChart(view.Results, opts).Render(provider, w)
	default:
		return fmt.Errorf("%w %q", schema.ErrUnknownChart, name)
	}
}

func missing(name schema.ChartName) error {
	return fmt.Errorf("%w %q", ErrMissingData, name)
}

// pointStyle returns a style that renders points only (no connecting line)
func pointStyle(col drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeWidth: gochart.Disabled,
		DotWidth:    3,
		DotColor:    col,
	}
}

// referenceStyle returns the style of the zero and observed-difference lines.
func referenceStyle() gochart.Style {
	return gochart.Style{StrokeColor: referenceColor, StrokeWidth: 2}
}

// noSecondaryAxis hides the right-hand axis, which go-chart draws unless told otherwise.
func noSecondaryAxis() gochart.YAxis {
	return gochart.YAxis{Style: gochart.Hidden()}
}

func background() gochart.Style {
	return gochart.Style{Padding: gochart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}}
}

// hexColor parses "#rrggbb" colors as used by the static tables.
func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// barWidth fits n bars into the chart width with equal gaps.
func barWidth(n, width int) int {
	if n <= 0 {
		return 0
	}
	return max(width/(2*n+2), 8)
}

func stylesChart(styles []schema.StyleBucket, opts contract.ChartOptions) *gochart.BarChart {
	bars := make([]gochart.Value, len(styles))
	for i, s := range styles {
		bars[i] = gochart.Value{
			Label: s.Name,
			Value: float64(s.Count),
			Style: gochart.Style{FillColor: hexColor(s.Color), StrokeColor: hexColor(s.Color)},
		}
	}
	return &gochart.BarChart{
		Title:      "Team Style Distribution",
		Width:      opts.Width,
		Height:     opts.Height,
		BarWidth:   barWidth(len(bars), opts.Width),
		Background: background(),
		YAxis:      gochart.YAxis{Name: "Team-Seasons"},
		Bars:       bars,
	}
}

func scatterChart(v *schema.ExplorationView, opts contract.ChartOptions) *gochart.Chart {
	xs := make([]float64, len(v.Scatter))
	ys := make([]float64, len(v.Scatter))
	for i, p := range v.Scatter {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return &gochart.Chart{
		Title:      schema.MetricLabel(v.Metric) + " vs Win %",
		Width:      opts.Width,
		Height:     opts.Height,
		Background: background(),
		XAxis: gochart.XAxis{
			Name: string(v.Metric),
			// Descending for ADJDE puts fewer points allowed on the right.
			Range: &gochart.ContinuousRange{Min: schema.EfficiencyMin, Max: schema.EfficiencyMax, Descending: v.ReversedAxis},
		},
		YAxis:          gochart.YAxis{Name: "Win %", Range: &gochart.ContinuousRange{Min: 0, Max: 1}},
		YAxisSecondary: noSecondaryAxis(),
		Series: []gochart.Series{
			gochart.ContinuousSeries{Name: "Team-Seasons", XValues: xs, YValues: ys, Style: pointStyle(seriesColor)},
		},
	}
}

func winPctChart(rows []schema.StyleWinPct, opts contract.ChartOptions) *gochart.BarChart {
	bars := make([]gochart.Value, len(rows))
	for i, r := range rows {
		bars[i] = gochart.Value{
			Label: r.TeamStyle,
			Value: r.WinPct,
			Style: gochart.Style{FillColor: hexColor(r.Color), StrokeColor: hexColor(r.Color)},
		}
	}
	return &gochart.BarChart{
		Title:      "Win % by Team Style",
		Width:      opts.Width,
		Height:     opts.Height,
		BarWidth:   barWidth(len(bars), opts.Width),
		Background: background(),
		YAxis:      gochart.YAxis{Name: "Win %", Range: &gochart.ContinuousRange{Min: 0.5, Max: 0.6}},
		Bars:       bars,
	}
}

func coefficientsChart(coefs []schema.RatedCoefficient, opts contract.ChartOptions) *gochart.BarChart {
	bars := make([]gochart.Value, len(coefs))
	for i, c := range coefs {
		bars[i] = gochart.Value{
			Label: c.Label,
			Value: c.Value,
			Style: gochart.Style{FillColor: hexColor(c.Color), StrokeColor: hexColor(c.Color)},
		}
	}
	return &gochart.BarChart{
		Title:      "Feature Importance",
		Width:      opts.Width,
		Height:     opts.Height,
		BarWidth:   barWidth(len(bars), opts.Width),
		Background: background(),
		YAxis:      gochart.YAxis{Name: "Coefficient", Range: &gochart.ContinuousRange{Min: 0, Max: 0.7}},
		Bars:       bars,
	}
}

func residualsChart(points []schema.ResidualPoint, opts contract.ChartOptions) *gochart.Chart {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Predicted
		ys[i] = p.Residual
	}
	return &gochart.Chart{
		Title:          "Residual Plot",
		Width:          opts.Width,
		Height:         opts.Height,
		Background:     background(),
		XAxis:          gochart.XAxis{Name: "Predicted Win %", Range: &gochart.ContinuousRange{Min: 0, Max: 1}},
		YAxis:          gochart.YAxis{Name: "Residual", Range: &gochart.ContinuousRange{Min: -0.2, Max: 0.2}},
		YAxisSecondary: noSecondaryAxis(),
		Series: []gochart.Series{
			gochart.ContinuousSeries{Name: "Residuals", XValues: xs, YValues: ys, Style: pointStyle(seriesColor)},
			gochart.ContinuousSeries{Name: "Zero", XValues: []float64{0, 1}, YValues: []float64{0, 0}, Style: referenceStyle()},
		},
	}
}

func permutationChart(v *schema.ResultsView, opts contract.ChartOptions) *gochart.Chart {
	xs := make([]float64, len(v.Curve))
	ys := make([]float64, len(v.Curve))
	for i, p := range v.Curve {
		xs[i] = p.X
		ys[i] = p.Y
	}
	lo, hi := schema.PermutationXMin, schema.PermutationXMin+schema.PermutationXSpan
	yMax := schema.PermutationPeak * 1.1

	ch := &gochart.Chart{
		Title:          "Permutation Test Distribution",
		Width:          opts.Width,
		Height:         opts.Height,
		Background:     background(),
		XAxis:          gochart.XAxis{Name: "Difference in Win %", Range: &gochart.ContinuousRange{Min: lo, Max: hi}},
		YAxis:          gochart.YAxis{Name: "Frequency", Range: &gochart.ContinuousRange{Min: 0, Max: yMax}},
		YAxisSecondary: noSecondaryAxis(),
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    "Null Distribution",
				XValues: xs,
				YValues: ys,
				Style:   gochart.Style{StrokeColor: seriesColor, StrokeWidth: 2},
			},
			gochart.ContinuousSeries{
				Name:    fmt.Sprintf("Observed (%.3f)", v.ObservedDifference),
				XValues: []float64{v.ObservedDifference, v.ObservedDifference},
				YValues: []float64{0, yMax},
				Style:   referenceStyle(),
			},
		},
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(ch)}
	return ch
}
