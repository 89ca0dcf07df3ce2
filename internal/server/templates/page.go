// Package templates holds the templ components of the HTML dashboard.
package templates

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/unc-data110/hoopstats/schema"
)

//go:embed dashboard.css
var dashboardCSS string

// TabLink is one entry of the navigation bar.
type TabLink struct {
	Title  string
	Href   string
	Active bool
}

// MetricOption is one entry of the metric dropdown.
type MetricOption struct {
	Value    string
	Label    string
	Selected bool
}

// PageData is everything the dashboard page renders. Charts holds the inline
// SVG of the active tab keyed by chart name.
type PageData struct {
	Title    string
	Subtitle string
	Group    string
	Years    string
	Tabs     []TabLink
	Metrics  []MetricOption
	View     schema.View
	Charts   map[schema.ChartName]string
}

// htmlWriter writes markup and keeps the first error.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) printf(format string, args ...any) {
	h.text(fmt.Sprintf(format, args...))
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err == nil {
		h.err = c.Render(h.ctx, h.w)
	}
}

// component adapts a writer callback into a templ.Component.
func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}

// Page is the full dashboard document: header, navigation and the panel of the active tab.
func Page(d PageData) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(d.Title)
		h.raw(`</title><style>`)
		h.raw(dashboardCSS)
		h.raw(`</style></head><body>`)
		h.render(Header(d))
		h.render(Nav(d.Tabs))
		h.raw(`<main>`)
		h.render(TabPanel(d))
		h.raw(`</main></body></html>`)
	})
}

// Header shows the title, the research group and the data years.
func Header(d PageData) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<header><div><h1>`)
		h.text(d.Title)
		h.raw(`</h1><p class="muted">`)
		h.text(d.Subtitle)
		h.raw(`</p></div><div style="text-align:right"><p class="muted">`)
		h.text(d.Group)
		h.raw(`</p><p class="muted">Data: `)
		h.text(d.Years)
		h.raw(`</p></div></header>`)
	})
}

// Nav is the tab bar.
func Nav(tabs []TabLink) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<nav>`)
		for _, t := range tabs {
			h.raw(`<a href="`)
			h.text(t.Href)
			h.raw(`"`)
			if t.Active {
				h.raw(` class="active"`)
			}
			h.raw(`>`)
			h.text(t.Title)
			h.raw(`</a>`)
		}
		h.raw(`</nav>`)
	})
}

// TabPanel picks the panel of whichever tab payload the view carries.
func TabPanel(d PageData) templ.Component {
	v := d.View
	switch {
	case v.Overview != nil:
		return OverviewPanel(v.Overview)
	case v.Exploration != nil:
		return ExplorationPanel(v.Exploration, d.Metrics, d.Charts)
	case v.Model != nil:
		return ModelPanel(v.Model, d.Charts)
	case v.Results != nil:
		return ResultsPanel(v.Results, d.Charts)
	default:
		return templ.NopComponent
	}
}

// Cards renders a grid of headline figures.
func Cards(cards []schema.Card) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="cards">`)
		for _, c := range cards {
			h.raw(`<div class="card"><div class="value">`)
			h.text(c.Value)
			h.raw(`</div><div>`)
			h.text(c.Title)
			h.raw(`</div>`)
			if c.Subtitle != "" {
				h.raw(`<div class="muted">`)
				h.text(c.Subtitle)
				h.raw(`</div>`)
			}
			h.raw(`</div>`)
		}
		h.raw(`</div>`)
	})
}

// Chart wraps an inline SVG. The markup comes from the chart renderer.
func Chart(svg string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="chart">`)
		h.render(templ.Raw(svg))
		h.raw(`</div>`)
	})
}

// section opens a panel with a heading, renders body and closes the panel.
func section(h *htmlWriter, title string, body func()) {
	h.raw(`<section class="panel"><h2>`)
	h.text(title)
	h.raw(`</h2>`)
	body()
	h.raw(`</section>`)
}

func note(h *htmlWriter, text string) {
	h.raw(`<p class="muted">`)
	h.text(text)
	h.raw(`</p>`)
}

func trendGlyph(t schema.Trend) string {
	switch t {
	case schema.TrendUp:
		return "▲"
	case schema.TrendDown:
		return "▼"
	default:
		return "●"
	}
}

// OverviewPanel shows the research question, headline cards and key findings.
func OverviewPanel(v *schema.OverviewView) templ.Component {
	return component(func(h *htmlWriter) {
		section(h, "Research Question", func() {
			h.raw(`<p>`)
			h.text(v.Question)
			h.raw(`</p>`)
		})
		h.render(Cards(v.Cards))
		section(h, "Key Findings", func() {
			for _, f := range v.Findings {
				h.raw(`<p><strong>`)
				h.text(trendGlyph(f.Trend) + " " + f.Title)
				h.raw(`</strong><br><span class="muted">`)
				h.text(f.Text)
				h.raw(`</span></p>`)
			}
		})
	})
}

// MetricSelect is the metric dropdown of the scatter panel.
func MetricSelect(options []MetricOption) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<form method="get" action="/"><input type="hidden" name="tab" value="exploration">`)
		h.raw(`<select name="metric" onchange="this.form.submit()">`)
		for _, o := range options {
			h.raw(`<option value="`)
			h.text(o.Value)
			h.raw(`"`)
			if o.Selected {
				h.raw(` selected`)
			}
			h.raw(`>`)
			h.text(o.Label)
			h.raw(`</option>`)
		}
		h.raw(`</select><noscript><button type="submit">Show</button></noscript></form>`)
	})
}

// ExplorationPanel shows the style distribution, the efficiency scatter and win % by style.
func ExplorationPanel(v *schema.ExplorationView, metrics []MetricOption, charts map[schema.ChartName]string) templ.Component {
	return component(func(h *htmlWriter) {
		section(h, "Playing Style Distribution", func() {
			h.render(Chart(charts[schema.StylesChart]))
			note(h, v.StyleNote)
		})
		section(h, "Efficiency vs Win Percentage", func() {
			h.render(MetricSelect(metrics))
			h.render(Chart(charts[schema.ScatterChart]))
			note(h, fmt.Sprintf("%s (sample r = %.3f)", v.ScatterCaption, v.Correlation))
		})
		section(h, "Win Percentage by Team Style", func() {
			h.render(Chart(charts[schema.WinPctChart]))
			note(h, v.WinPctNote)
		})
	})
}

// ModelPanel shows the regression setup, coefficients, residuals and diagnostics.
func ModelPanel(v *schema.ModelView, charts map[schema.ChartName]string) templ.Component {
	return component(func(h *htmlWriter) {
		section(h, "Linear Regression Model", func() {
			h.raw(`<p><strong>Target:</strong> `)
			h.text(v.Target)
			h.raw(`</p><table><tr><th>Feature</th><th>Description</th></tr>`)
			for _, f := range v.Features {
				h.raw(`<tr><td>`)
				h.text(f.Name)
				h.raw(`</td><td>`)
				h.text(f.Description)
				h.raw(`</td></tr>`)
			}
			h.raw(`</table><p><code>`)
			h.text(v.Equation)
			h.raw(`</code><br><span class="muted">`)
			h.text(v.ScalingNote)
			h.raw(`</span></p>`)
		})
		section(h, "Feature Importance", func() {
			h.render(Chart(charts[schema.CoefficientsChart]))
			h.raw(`<table><tr><th>Feature</th><th>Coefficient</th><th>Strength</th><th>Note</th></tr>`)
			for _, c := range v.Coefficients {
				h.raw(`<tr><td><span class="swatch" style="background:`)
				h.text(c.Color)
				h.raw(`"></span>`)
				h.text(c.Name)
				h.raw(`</td><td>`)
				h.printf("%.3f", c.Value)
				h.raw(`</td><td>`)
				h.text(c.Strength)
				h.raw(`</td><td>`)
				h.text(c.Note)
				h.raw(`</td></tr>`)
			}
			h.raw(`</table>`)
		})
		section(h, "Residual Analysis", func() {
			h.render(Chart(charts[schema.ResidualsChart]))
			note(h, v.ResidualNote)
		})
		h.render(Cards(v.Diagnostics))
	})
}

// ResultsPanel shows the permutation test, the evidence, the conclusions and the credits.
func ResultsPanel(v *schema.ResultsView, charts map[schema.ChartName]string) templ.Component {
	return component(func(h *htmlWriter) {
		section(h, "Permutation Test", func() {
			h.raw(`<p><strong>H₀:</strong> `)
			h.text(v.NullHypothesis)
			h.raw(`<br><strong>H₁:</strong> `)
			h.text(v.AltHypothesis)
			h.raw(`</p>`)
			h.render(Chart(charts[schema.PermutationChart]))
			h.raw(`<p>`)
			h.printf("p-value = %v over %d permutations: ", v.PValue, v.Permutations)
			if v.RejectNull {
				h.raw(`<span class="reject">Reject H₀</span>`)
			} else {
				h.raw(`<span class="retain">Fail to reject H₀</span>`)
			}
			h.raw(`</p>`)
		})
		h.render(Cards(v.Evidence))
		section(h, "Key Conclusions", func() {
			for _, c := range v.Conclusions {
				h.raw(`<h3>`)
				h.text(c.Title)
				h.raw(`</h3><p>`)
				h.text(c.Text)
				h.raw(`</p>`)
			}
		})
		section(h, "About This Research", func() {
			h.raw(`<p>`)
			h.text(v.About.Summary)
			h.raw(`</p>`)
			note(h, "Team members: "+strings.Join(v.About.Members, ", "))
			note(h, "Data source: "+v.About.Source)
		})
	})
}
