package schema

// Strength labels for regression coefficients.
const (
	StrongValue      = "Strong"
	SubstantialValue = "Substantial"
	WeakValue        = "Weak"
	MinimalValue     = "Minimal"
)

// Trend of a finding, used to pick an indicator glyph.
type Trend string

// All finding trends.
const (
	TrendUp     Trend = "up"
	TrendSteady Trend = "steady"
	TrendDown   Trend = "down"
)

// Card is a headline figure with a caption.
type Card struct {
	Value    string `json:"value"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Finding is a titled statement shown in the overview and results views.
type Finding struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Trend Trend  `json:"trend,omitempty"`
}

// Feature describes one regression input.
type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RatedCoefficient adds presentation data to a Coefficient.
type RatedCoefficient struct {
	Coefficient
	Strength string `json:"strength"`
	Note     string `json:"note"`
}

// About describes who produced the analysis.
type About struct {
	Group   string   `json:"group"`
	Summary string   `json:"summary"`
	Members []string `json:"members"`
	Source  string   `json:"source"`
}

// OverviewView is the research question and headline figures.
type OverviewView struct {
	Question string    `json:"question"`
	Cards    []Card    `json:"cards"`
	Findings []Finding `json:"findings"`
}

// ExplorationView holds the descriptive charts.
type ExplorationView struct {
	Styles         []StyleBucket  `json:"styles"`
	StyleNote      string         `json:"style_note"`
	Metric         Metric         `json:"metric"`
	Scatter        []ScatterPoint `json:"scatter"`
	ScatterCaption string         `json:"scatter_caption"`
	ReversedAxis   bool           `json:"reversed_axis"`
	Correlation    float64        `json:"correlation"`
	WinPct         []StyleWinPct  `json:"win_pct"`
	WinPctNote     string         `json:"win_pct_note"`
}

// ModelView holds the regression description and diagnostics.
type ModelView struct {
	Target       string             `json:"target"`
	Features     []Feature          `json:"features"`
	Equation     string             `json:"equation"`
	ScalingNote  string             `json:"scaling_note"`
	Coefficients []RatedCoefficient `json:"coefficients"`
	Residuals    []ResidualPoint    `json:"residuals"`
	ResidualNote string             `json:"residual_note"`
	Diagnostics  []Card             `json:"diagnostics"`
}

// ResultsView holds the permutation test and the conclusions.
type ResultsView struct {
	NullHypothesis     string       `json:"null_hypothesis"`
	AltHypothesis      string       `json:"alt_hypothesis"`
	Curve              []CurvePoint `json:"curve"`
	ObservedDifference float64      `json:"observed_difference"`
	PValue             float64      `json:"p_value"`
	Permutations       int          `json:"permutations"`
	RejectNull         bool         `json:"reject_null"`
	Evidence           []Card       `json:"evidence"`
	Conclusions        []Finding    `json:"conclusions"`
	About              About        `json:"about"`
}

// View is one rendered dashboard tab. Exactly one of the tab payloads is set.
type View struct {
	Tab         Tab              `json:"tab"`
	Metric      Metric           `json:"metric"`
	Overview    *OverviewView    `json:"overview,omitempty"`
	Exploration *ExplorationView `json:"exploration,omitempty"`
	Model       *ModelView       `json:"model,omitempty"`
	Results     *ResultsView     `json:"results,omitempty"`
}

// GetPlainLabel returns a plain text label describing how strongly a
// regression coefficient contributes to the prediction.
func GetPlainLabel(value float64) string {
	if value < 0 {
		value = -value
	}
	switch {
	case value >= 0.5:
		return StrongValue
	case value >= 0.25:
		return SubstantialValue
	case value >= 0.05:
		return WeakValue
	default:
		return MinimalValue
	}
}

// RateCoefficients adds strength labels and notes to coefficients.
func RateCoefficients(coefs []Coefficient) []RatedCoefficient {
	output := make([]RatedCoefficient, len(coefs))
	for i, c := range coefs {
		output[i] = RatedCoefficient{
			Coefficient: c,
			Strength:    GetPlainLabel(c.Value),
			Note:        coefficientNotes[c.Name],
		}
	}
	return output
}
