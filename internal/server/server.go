// Package server serves the interactive dashboard and its JSON API over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/unc-data110/hoopstats/core"
	"github.com/unc-data110/hoopstats/internal/contract"
	"github.com/unc-data110/hoopstats/internal/server/templates"
	"github.com/unc-data110/hoopstats/schema"
)

// Server is the HTTP dashboard. It holds no selection state: every request
// builds its own dashboard and random source.
type Server struct {
	cfg      *contract.Config
	renderer contract.ChartRenderer
	srv      *http.Server
}

// New creates a server for the validated config.
func New(cfg *contract.Config, renderer contract.ChartRenderer) (*Server, error) {
	if renderer == nil {
		return nil, errors.New("server needs a chart renderer")
	}
	return &Server{cfg: cfg, renderer: renderer}, nil
}

// Handler returns the routed handler with access logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /charts/{file}", s.handleChart)
	mux.HandleFunc("GET /api/view", s.handleAPIView)
	mux.HandleFunc("GET /api/scatter", s.handleAPIScatter)
	mux.HandleFunc("GET /api/residuals", s.handleAPIResiduals)
	mux.HandleFunc("GET /api/permutation", s.handleAPIPermutation)
	mux.HandleFunc("GET /api/tables", s.handleAPITables)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return logRequests(mux)
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		contract.LogInfo("🏀 Dashboard listening on %s", s.cfg.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	contract.LogInfo("🛑 Shutting down (timeout %s)", s.cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return <-errCh
}

// selection parses the tab and metric query parameters, falling back to the configured defaults.
func (s *Server) selection(q url.Values) (schema.Tab, schema.Metric, error) {
	tab, err := schema.ParseTab(firstNonEmpty(q.Get("tab"), string(s.cfg.Tab)))
	if err != nil {
		return "", "", err
	}
	metric, err := schema.ParseMetric(firstNonEmpty(q.Get("metric"), string(s.cfg.Metric)))
	if err != nil {
		return "", "", err
	}
	return tab, metric, nil
}

// render builds a fresh dashboard for one request.
func (s *Server) render(tab schema.Tab, metric schema.Metric) (schema.View, error) {
	cfg := s.cfg.Clone()
	cfg.Tab = tab
	cfg.Metric = metric
	return core.GetView(cfg)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	tab, metric, err := s.selection(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := s.render(tab, metric)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	charts, err := s.inlineCharts(view)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	page := templates.Page(templates.PageData{
		Title:    schema.Title,
		Subtitle: schema.Subtitle,
		Group:    schema.ResearchGroup,
		Years:    schema.DataYears,
		Tabs:     tabLinks(tab, metric),
		Metrics:  metricOptions(metric),
		View:     view,
		Charts:   charts,
	})

	templ.Handler(page, templ.WithErrorHandler(pageError)).ServeHTTP(w, r)
}

// pageError reports a component that failed to render. templ buffers the
// page, so nothing has been written yet.
func pageError(r *http.Request, err error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		contract.LogWarn("Cannot render "+r.URL.Path, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	})
}

// inlineCharts renders the SVG charts of the active tab from the same view
// as the page, so the charts and the captions describe the same sample.
func (s *Server) inlineCharts(view schema.View) (map[schema.ChartName]string, error) {
	charts := make(map[schema.ChartName]string)
	opts := s.cfg.ChartOptions()
	opts.Format = schema.SVGChart
	for _, name := range schema.AllCharts {
		if core.ChartTab(name) != view.Tab {
			continue
		}
		var buf bytes.Buffer
		if err := s.renderer.RenderChart(&buf, name, view, opts); err != nil {
			return nil, fmt.Errorf("failed to render %s chart: %w", name, err)
		}
		charts[name] = buf.String()
	}
	return charts, nil
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	ext := path.Ext(file)
	format := schema.ChartFormat(strings.ToLower(strings.TrimPrefix(ext, ".")))
	if _, ok := schema.ValidChartFormats[format]; !ok {
		http.Error(w, fmt.Sprintf("chart %q must end in .svg or .png", file), http.StatusNotFound)
		return
	}
	name, err := schema.ParseChart(strings.TrimSuffix(file, ext))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	metric, err := schema.ParseMetric(firstNonEmpty(r.URL.Query().Get("metric"), string(s.cfg.Metric)))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := s.render(core.ChartTab(name), metric)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	opts := s.cfg.ChartOptions()
	opts.Format = format
	var buf bytes.Buffer
	if err := s.renderer.RenderChart(&buf, name, view, opts); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if format == schema.PNGChart {
		w.Header().Set("Content-Type", "image/png")
	} else {
		w.Header().Set("Content-Type", "image/svg+xml")
	}
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

func tabLinks(active schema.Tab, metric schema.Metric) []templates.TabLink {
	links := make([]templates.TabLink, len(schema.AllTabs))
	for i, t := range schema.AllTabs {
		q := url.Values{"tab": {string(t)}, "metric": {string(metric)}}
		links[i] = templates.TabLink{Title: schema.TabTitle(t), Href: "/?" + q.Encode(), Active: t == active}
	}
	return links
}

func metricOptions(selected schema.Metric) []templates.MetricOption {
	options := make([]templates.MetricOption, len(schema.AllMetrics))
	for i, m := range schema.AllMetrics {
		options[i] = templates.MetricOption{Value: string(m), Label: schema.MetricLabel(m), Selected: m == selected}
	}
	return options
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
