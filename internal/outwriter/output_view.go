package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/unc-data110/hoopstats/internal/contract"
	"github.com/unc-data110/hoopstats/internal/parquet"
	"github.com/unc-data110/hoopstats/schema"
)

// WriteViewResults outputs one dashboard tab, dispatching based on the output format configured.
// CSV and Parquet carry only the primary series of the tab: cards for the overview,
// the scatter sample for exploration, the residuals for the model and the curve for results.
func WriteViewResults(view schema.View, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, view)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeViewCSV(w, view, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetFile(cfg.OutputFile, func(path string) error {
			return writeViewParquet(view, path)
		})
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeViewText(w, view, cfg, fmtFloat, intFmt)
		}, "Wrote table")
	}
}

func writeViewCSV(w io.Writer, view schema.View, fmtFloat func(float64) string) error {
	switch {
	case view.Exploration != nil:
		return writeScatterCSV(w, view.Exploration.Scatter, view.Exploration.Metric, fmtFloat)
	case view.Model != nil:
		return writeResidualCSV(w, view.Model.Residuals, fmtFloat)
	case view.Results != nil:
		return writeCurveCSV(w, view.Results.Curve, fmtFloat)
	case view.Overview != nil:
		return writeCSVWithHeader(w, []string{"value", "title", "subtitle"}, func(cw *csv.Writer) error {
			for _, c := range view.Overview.Cards {
				if err := cw.Write([]string{c.Value, c.Title, c.Subtitle}); err != nil {
					return err
				}
			}
			return nil
		})
	default:
		return fmt.Errorf("view for tab %q has no content", view.Tab)
	}
}

func writeViewParquet(view schema.View, path string) error {
	switch {
	case view.Exploration != nil:
		return parquet.WriteScatterParquet(view.Exploration.Scatter, view.Exploration.Metric, path)
	case view.Model != nil:
		return parquet.WriteResidualsParquet(view.Model.Residuals, path)
	case view.Results != nil:
		return parquet.WriteCurveParquet(view.Results.Curve, path)
	case view.Overview != nil:
		return parquet.WriteCardsParquet(view.Overview.Cards, path)
	default:
		return fmt.Errorf("view for tab %q has no content", view.Tab)
	}
}

// writeViewText renders the human-readable dashboard for one tab.
func writeViewText(w io.Writer, view schema.View, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	title := fmt.Sprintf("%s: %s", schema.Title, schema.Subtitle)
	if cfg.UseColors {
		title = contract.ValueColor.Sprint(title)
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n", title, tabBar(view.Tab)); err != nil {
		return err
	}

	switch {
	case view.Overview != nil:
		return writeOverviewText(w, view.Overview, cfg)
	case view.Exploration != nil:
		return writeExplorationText(w, view.Exploration, cfg, fmtFloat, intFmt)
	case view.Model != nil:
		return writeModelText(w, view.Model, cfg, fmtFloat)
	case view.Results != nil:
		return writeResultsText(w, view.Results, cfg, fmtFloat)
	default:
		return fmt.Errorf("view for tab %q has no content", view.Tab)
	}
}

// tabBar renders the navigation with the active tab in brackets.
func tabBar(active schema.Tab) string {
	bar := ""
	for i, t := range schema.AllTabs {
		if i > 0 {
			bar += " | "
		}
		if t == active {
			bar += "[" + schema.TabTitle(t) + "]"
		} else {
			bar += schema.TabTitle(t)
		}
	}
	return bar
}

func writeCards(w io.Writer, cards []schema.Card) error {
	data := make([][]string, len(cards))
	for i, c := range cards {
		data[i] = []string{c.Value, c.Title, c.Subtitle}
	}
	return renderTable(w, []string{"Value", "Title", "Detail"}, data)
}

func writeFindings(w io.Writer, findings []schema.Finding, cfg *contract.Config) error {
	for _, f := range findings {
		heading := f.Title
		if f.Trend != "" {
			heading = trendGlyph(f.Trend, cfg.UseEmojis) + " " + heading
		}
		if _, err := fmt.Fprintln(w, heading); err != nil {
			return err
		}
		if err := paragraph(w, cfg, f.Text); err != nil {
			return err
		}
	}
	return nil
}

func writeOverviewText(w io.Writer, v *schema.OverviewView, cfg *contract.Config) error {
	if err := section(w, cfg, "❓", "Research Question"); err != nil {
		return err
	}
	if err := paragraph(w, cfg, v.Question); err != nil {
		return err
	}
	if err := section(w, cfg, "📊", "At a Glance"); err != nil {
		return err
	}
	if err := writeCards(w, v.Cards); err != nil {
		return err
	}
	if err := section(w, cfg, "🔑", "Key Findings"); err != nil {
		return err
	}
	return writeFindings(w, v.Findings, cfg)
}

func writeExplorationText(w io.Writer, v *schema.ExplorationView, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	if err := section(w, cfg, "🏀", "Team Style Distribution"); err != nil {
		return err
	}
	if err := writeStyleTable(w, v.Styles, intFmt); err != nil {
		return err
	}
	if err := paragraph(w, cfg, v.StyleNote); err != nil {
		return err
	}

	if err := section(w, cfg, "📈", fmt.Sprintf("%s vs Win Percentage", schema.MetricLabel(v.Metric))); err != nil {
		return err
	}
	if err := renderTable(w, []string{"Efficiency Band", "Teams", "Mean Win %"}, scatterBands(v.Scatter, v.ReversedAxis, fmtFloat)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Sample of %d team-seasons, Pearson r = %s\n", len(v.Scatter), fmtFloat(v.Correlation)); err != nil {
		return err
	}
	if err := paragraph(w, cfg, v.ScatterCaption); err != nil {
		return err
	}

	if err := section(w, cfg, "🏆", "Win % by Team Style"); err != nil {
		return err
	}
	if err := writeWinPctTable(w, v.WinPct, fmtFloat); err != nil {
		return err
	}
	return paragraph(w, cfg, v.WinPctNote)
}

// scatterBandWidth is the efficiency range of one row in the text scatter summary.
const scatterBandWidth = 5.0

// scatterBands buckets a scatter sample into efficiency bands with their mean win percentage.
// Reversed bands list the highest efficiency first, matching the flipped chart axis.
func scatterBands(points []schema.ScatterPoint, reversed bool, fmtFloat func(float64) string) [][]string {
	numBands := int(math.Ceil((schema.EfficiencyMax - schema.EfficiencyMin) / scatterBandWidth))
	counts := make([]int, numBands)
	sums := make([]float64, numBands)
	for _, p := range points {
		idx := int((p.X - schema.EfficiencyMin) / scatterBandWidth)
		if idx < 0 || idx >= numBands {
			continue
		}
		counts[idx]++
		sums[idx] += p.Y
	}

	rows := make([][]string, 0, numBands)
	for i := range numBands {
		lo := schema.EfficiencyMin + float64(i)*scatterBandWidth
		mean := "-"
		if counts[i] > 0 {
			mean = fmtFloat(sums[i] / float64(counts[i]))
		}
		rows = append(rows, []string{fmt.Sprintf("%.0f-%.0f", lo, lo+scatterBandWidth), fmt.Sprintf("%d", counts[i]), mean})
	}
	if reversed {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
	return rows
}

func writeModelText(w io.Writer, v *schema.ModelView, cfg *contract.Config, fmtFloat func(float64) string) error {
	if err := section(w, cfg, "🎯", "Linear Regression Model"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Target: %s\n", v.Target); err != nil {
		return err
	}
	features := make([][]string, len(v.Features))
	for i, f := range v.Features {
		features[i] = []string{f.Name, f.Description}
	}
	if err := renderTable(w, []string{"Feature", "Description"}, features); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n", v.Equation, v.ScalingNote); err != nil {
		return err
	}

	if err := section(w, cfg, "📐", "Feature Importance"); err != nil {
		return err
	}
	if err := writeCoefficientTable(w, v.Coefficients, cfg, fmtFloat); err != nil {
		return err
	}

	if err := section(w, cfg, "🔍", "Residual Analysis"); err != nil {
		return err
	}
	minRes, maxRes, meanRes := residualStats(v.Residuals)
	summary := [][]string{{fmt.Sprintf("%d", len(v.Residuals)), fmtFloat(minRes), fmtFloat(meanRes), fmtFloat(maxRes)}}
	if err := renderTable(w, []string{"Points", "Min", "Mean", "Max"}, summary); err != nil {
		return err
	}
	if err := paragraph(w, cfg, v.ResidualNote); err != nil {
		return err
	}

	if err := section(w, cfg, "✅", "Model Performance"); err != nil {
		return err
	}
	return writeCards(w, v.Diagnostics)
}

// residualStats returns the min, max and mean residual. All are zero for an empty sample.
func residualStats(points []schema.ResidualPoint) (minRes, maxRes, mean float64) {
	if len(points) == 0 {
		return 0, 0, 0
	}
	minRes, maxRes = math.Inf(1), math.Inf(-1)
	var sum float64
	for _, p := range points {
		minRes = math.Min(minRes, p.Residual)
		maxRes = math.Max(maxRes, p.Residual)
		sum += p.Residual
	}
	return minRes, maxRes, sum / float64(len(points))
}

func writeResultsText(w io.Writer, v *schema.ResultsView, cfg *contract.Config, fmtFloat func(float64) string) error {
	if err := section(w, cfg, "🧪", "Permutation Test"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "H₀: %s\nH₁: %s\n", v.NullHypothesis, v.AltHypothesis); err != nil {
		return err
	}

	peak := schema.CurvePoint{}
	for _, p := range v.Curve {
		if p.Y > peak.Y {
			peak = p
		}
	}
	stats := [][]string{
		{"Observed difference", fmtFloat(v.ObservedDifference)},
		{"Null distribution peak", fmt.Sprintf("%s at %s", fmtFloat(peak.Y), fmtFloat(peak.X))},
		{"Permutations", fmt.Sprintf("%d", v.Permutations)},
		{"p-value", fmt.Sprintf("%g", v.PValue)},
		{"Decision", decisionLabel(v.PValue, cfg)},
	}
	if err := renderTable(w, []string{"Statistic", "Value"}, stats); err != nil {
		return err
	}
	if err := writeCards(w, v.Evidence); err != nil {
		return err
	}

	if err := section(w, cfg, "🏁", "Key Conclusions"); err != nil {
		return err
	}
	if err := writeFindings(w, v.Conclusions, cfg); err != nil {
		return err
	}

	if err := section(w, cfg, "👥", "About This Research"); err != nil {
		return err
	}
	if err := paragraph(w, cfg, v.About.Summary); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %s\nData source: %s\n", v.About.Group, strings.Join(v.About.Members, ", "), v.About.Source)
	return err
}
