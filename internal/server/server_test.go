package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/unc-data110/hoopstats/internal/chart"
	"github.com/unc-data110/hoopstats/internal/contract"
	"github.com/unc-data110/hoopstats/internal/outwriter"
	"github.com/unc-data110/hoopstats/schema"
)

func testConfig() *contract.Config {
	return &contract.Config{
		Tab:             schema.OverviewTab,
		Metric:          schema.ADJOE,
		Seed:            42,
		Addr:            "127.0.0.1:0",
		ShutdownTimeout: time.Second,
		ChartWidth:      640,
		ChartHeight:     320,
		ChartFormat:     schema.SVGChart,
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(testConfig(), chart.NewRenderer())
	require.NoError(t, err)
	return s
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestIndexDefaultTab(t *testing.T) {
	rec := get(t, newTestServer(t).Handler(), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, schema.Title)
	assert.Contains(t, body, "Research Question")
	assert.Contains(t, body, "3,523")
	assert.Contains(t, body, `class="active">Overview</a>`)
	assert.NotContains(t, body, "<svg")
}

func TestIndexTabs(t *testing.T) {
	h := newTestServer(t).Handler()

	tests := []struct {
		query string
		want  []string
	}{
		{"/?tab=exploration", []string{"Playing Style Distribution", "<svg", "sample r ="}},
		{"/?tab=exploration&metric=ADJDE", []string{`value="ADJDE" selected`, "axes are flipped"}},
		{"/?tab=model", []string{"Feature Importance", "Residual Analysis", "<svg"}},
		{"/?tab=results", []string{"Permutation Test", "Reject H₀", "<svg", "Audrey Sompie, Anirudh Dhawan"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := get(t, h, tt.query)
			require.Equal(t, http.StatusOK, rec.Code)
			for _, want := range tt.want {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}

func TestIndexRejectsUnknownSelection(t *testing.T) {
	h := newTestServer(t).Handler()

	assert.Equal(t, http.StatusBadRequest, get(t, h, "/?tab=stats").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/?metric=ADJT").Code)
}

func TestIndexChartRenderFailure(t *testing.T) {
	renderer := &outwriter.MockChartRenderer{}
	renderer.On("RenderChart", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("canvas unavailable"))
	s, err := New(testConfig(), renderer)
	require.NoError(t, err)

	rec := get(t, s.Handler(), "/?tab=model")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "canvas unavailable")
}

func TestPageError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?tab=model", nil)
	rec := httptest.NewRecorder()
	pageError(req, errors.New("write failed")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "write failed")
}

func TestNewRequiresRenderer(t *testing.T) {
	_, err := New(testConfig(), nil)
	assert.Error(t, err)
}

func TestChartEndpoint(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := get(t, h, "/charts/scatter.svg?metric=ADJDE")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")

	rec = get(t, h, "/charts/permutation.png")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	assert.Equal(t, http.StatusNotFound, get(t, h, "/charts/heatmap.svg").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/charts/scatter.gif").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/charts/scatter").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/charts/scatter.svg?metric=pace").Code)
}

func TestAPIView(t *testing.T) {
	rec := get(t, newTestServer(t).Handler(), "/api/view?tab=results")
	require.Equal(t, http.StatusOK, rec.Code)

	var view schema.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, schema.ResultsTab, view.Tab)
	require.NotNil(t, view.Results)
	assert.Nil(t, view.Overview)
	assert.Len(t, view.Results.Curve, schema.PermutationCurveSize)
	assert.True(t, view.Results.RejectNull)
}

func TestAPIViewBadTab(t *testing.T) {
	rec := get(t, newTestServer(t).Handler(), "/api/view?tab=nope")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "unknown tab")
}

func TestAPIScatter(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := get(t, h, "/api/scatter?metric=adjde")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp scatterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, schema.ADJDE, resp.Metric)
	assert.Len(t, resp.Points, schema.ScatterSampleSize)
	assert.Less(t, resp.Correlation, 0.0)
	assert.Equal(t, schema.DefenseCaption, resp.Caption)

	// A fixed seed gives the same sample on every request.
	again := get(t, h, "/api/scatter?metric=ADJDE")
	assert.JSONEq(t, rec.Body.String(), again.Body.String())
}

func TestAPISamplesAndTables(t *testing.T) {
	h := newTestServer(t).Handler()

	var residuals []schema.ResidualPoint
	require.NoError(t, json.Unmarshal(get(t, h, "/api/residuals").Body.Bytes(), &residuals))
	assert.Len(t, residuals, schema.ResidualSampleSize)

	var curve []schema.CurvePoint
	require.NoError(t, json.Unmarshal(get(t, h, "/api/permutation").Body.Bytes(), &curve))
	assert.Len(t, curve, schema.PermutationCurveSize)

	var tables schema.SummaryTables
	require.NoError(t, json.Unmarshal(get(t, h, "/api/tables").Body.Bytes(), &tables))
	assert.Equal(t, schema.Tables(), tables)
}

func TestHealthAndMethods(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	post := httptest.NewRecorder()
	h.ServeHTTP(post, httptest.NewRequest(http.MethodPost, "/api/view", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, post.Code)

	assert.Equal(t, http.StatusNotFound, get(t, h, "/missing").Code)
}

func TestRunShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunReportsListenError(t *testing.T) {
	cfg := testConfig()
	cfg.Addr = "256.0.0.1:99999"
	s, err := New(cfg, chart.NewRenderer())
	require.NoError(t, err)

	assert.Error(t, s.Run(context.Background()))
}
