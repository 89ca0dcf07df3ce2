package outwriter

import (
	"io"

	"github.com/stretchr/testify/mock"
	"github.com/unc-data110/hoopstats/internal/contract"
	"github.com/unc-data110/hoopstats/schema"
)

// MockViewWriter is a mock implementation of ViewWriter for testing.
type MockViewWriter struct {
	mock.Mock
}

var _ contract.ViewWriter = &MockViewWriter{} // Compile-time check

// WriteView implements the ViewWriter interface.
func (m *MockViewWriter) WriteView(view schema.View, cfg *contract.Config) error {
	args := m.Called(view, cfg)
	return args.Error(0)
}

// WriteScatter implements the ViewWriter interface.
func (m *MockViewWriter) WriteScatter(points []schema.ScatterPoint, metric schema.Metric, cfg *contract.Config) error {
	args := m.Called(points, metric, cfg)
	return args.Error(0)
}

// WriteResiduals implements the ViewWriter interface.
func (m *MockViewWriter) WriteResiduals(points []schema.ResidualPoint, cfg *contract.Config) error {
	args := m.Called(points, cfg)
	return args.Error(0)
}

// WriteCurve implements the ViewWriter interface.
func (m *MockViewWriter) WriteCurve(points []schema.CurvePoint, cfg *contract.Config) error {
	args := m.Called(points, cfg)
	return args.Error(0)
}

// WriteTables implements the ViewWriter interface.
func (m *MockViewWriter) WriteTables(tables schema.SummaryTables, cfg *contract.Config) error {
	args := m.Called(tables, cfg)
	return args.Error(0)
}

// MockChartRenderer is a mock implementation of ChartRenderer for testing.
type MockChartRenderer struct {
	mock.Mock
}

var _ contract.ChartRenderer = &MockChartRenderer{} // Compile-time check

// RenderChart implements the ChartRenderer interface.
func (m *MockChartRenderer) RenderChart(w io.Writer, name schema.ChartName, view schema.View, opts contract.ChartOptions) error {
	args := m.Called(w, name, view, opts)
	return args.Error(0)
}
