package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/unc-data110/hoopstats/core"
	"github.com/unc-data110/hoopstats/internal/contract"
	"github.com/unc-data110/hoopstats/schema"
)

// scatterResponse is the body of /api/scatter.
type scatterResponse struct {
	Metric      schema.Metric         `json:"metric"`
	Caption     string                `json:"caption"`
	Correlation float64               `json:"correlation"`
	Points      []schema.ScatterPoint `json:"points"`
}

func (s *Server) handleAPIView(w http.ResponseWriter, r *http.Request) {
	tab, metric, err := s.selection(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	view, err := s.render(tab, metric)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleAPIScatter(w http.ResponseWriter, r *http.Request) {
	_, metric, err := s.selection(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	points := core.GenerateScatter(core.NewSource(s.cfg.Seed), metric)
	writeJSON(w, http.StatusOK, scatterResponse{
		Metric:      metric,
		Caption:     schema.MetricCaption(metric),
		Correlation: core.ScatterCorrelation(points),
		Points:      points,
	})
}

func (s *Server) handleAPIResiduals(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, core.GenerateResiduals(core.NewSource(s.cfg.Seed)))
}

func (s *Server) handleAPIPermutation(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, core.GeneratePermutationCurve())
}

func (s *Server) handleAPITables(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, schema.Tables())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON encodes data as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		contract.LogWarn("failed to encode JSON response", err)
	}
}

// writeError reports an error as a JSON body.
func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests writes one access line per request to stderr.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		contract.LogInfo("🌐 %s %s %d %s", r.Method, r.URL.RequestURI(), rec.status, time.Since(start).Round(time.Microsecond))
	})
}
