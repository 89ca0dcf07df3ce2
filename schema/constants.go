package schema

import "errors"

// Custom string types for type safety.
type (
	// Tab represents one of the fixed dashboard views.
	Tab string

	// Metric represents the efficiency metric plotted against win percentage.
	Metric string

	// OutputMode represents the format of the output.
	OutputMode string

	// ChartName identifies one of the dashboard charts.
	ChartName string

	// ChartFormat represents the image encoding of a chart.
	ChartFormat string
)

// All dashboard tabs, in display order.
const (
	OverviewTab    Tab = "overview" // default
	ExplorationTab Tab = "exploration"
	ModelTab       Tab = "model"
	ResultsTab     Tab = "results"
)

// All selectable scatter metrics.
const (
	ADJOE Metric = "ADJOE" // default
	ADJDE Metric = "ADJDE"
)

// ADJT is the tempo feature. It appears in the coefficient table but is not selectable.
const ADJT = "ADJ_T"

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All charts the dashboard draws.
const (
	StylesChart       ChartName = "styles"
	ScatterChart      ChartName = "scatter"
	WinPctChart       ChartName = "winpct"
	CoefficientsChart ChartName = "coefficients"
	ResidualsChart    ChartName = "residuals"
	PermutationChart  ChartName = "permutation"
)

// All chart encodings supported.
const (
	SVGChart ChartFormat = "svg" // default
	PNGChart ChartFormat = "png"
)

// ValidChartFormats lists all valid chart encodings.
var ValidChartFormats = map[ChartFormat]struct{}{
	SVGChart: {},
	PNGChart: {},
}

// Sentinel errors for invalid selections.
var (
	ErrUnknownTab    = errors.New("unknown tab")
	ErrUnknownMetric = errors.New("unknown metric")
	ErrUnknownChart  = errors.New("unknown chart")
)

// AllTabs lists every tab in navigation order.
var AllTabs = []Tab{OverviewTab, ExplorationTab, ModelTab, ResultsTab}

// AllMetrics lists every selectable metric.
var AllMetrics = []Metric{ADJOE, ADJDE}

// AllCharts lists every chart in the order the dashboard shows them.
var AllCharts = []ChartName{StylesChart, ScatterChart, WinPctChart, CoefficientsChart, ResidualsChart, PermutationChart}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// Sample sizes and ranges of the illustrative generators.
const (
	ScatterSampleSize    = 200
	ResidualSampleSize   = 150
	PermutationCurveSize = 100

	EfficiencyMin = 85.0
	EfficiencyMax = 120.0

	ScatterSlope        = 0.6
	OffenseBaseline     = 0.2
	DefenseBaseline     = 0.8
	ScatterNoiseSpread  = 0.2
	ResidualSpread      = 0.3
	PermutationXMin     = -0.02
	PermutationXSpan    = 0.06
	PermutationCenter   = 0.002
	PermutationVariance = 0.00015
	PermutationPeak     = 650.0
)
