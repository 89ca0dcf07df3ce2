package core

import (
	"math/rand/v2"

	"github.com/unc-data110/hoopstats/schema"
)

// BuildView assembles the view of one tab. Only the exploration and model
// tabs draw from src; the overview and results tabs are fully static.
func BuildView(tab schema.Tab, metric schema.Metric, src *rand.Rand) schema.View {
	view := schema.View{Tab: tab, Metric: metric}
	switch tab {
	case schema.ExplorationTab:
		view.Exploration = buildExploration(metric, src)
	case schema.ModelTab:
		view.Model = buildModel(src)
	case schema.ResultsTab:
		view.Results = buildResults()
	default:
		view.Tab = schema.OverviewTab
		view.Overview = buildOverview()
	}
	return view
}

func buildOverview() *schema.OverviewView {
	return &schema.OverviewView{
		Question: schema.ResearchQuestion,
		Cards:    schema.HeadlineCards(),
		Findings: schema.KeyFindings(),
	}
}

func buildExploration(metric schema.Metric, src *rand.Rand) *schema.ExplorationView {
	scatter := GenerateScatter(src, metric)
	return &schema.ExplorationView{
		Styles:         schema.StyleDistribution(),
		StyleNote:      schema.StyleNote,
		Metric:         metric,
		Scatter:        scatter,
		ScatterCaption: schema.MetricCaption(metric),
		ReversedAxis:   metric == schema.ADJDE,
		Correlation:    ScatterCorrelation(scatter),
		WinPct:         schema.WinPctComparison(),
		WinPctNote:     schema.WinPctNote,
	}
}

func buildModel(src *rand.Rand) *schema.ModelView {
	return &schema.ModelView{
		Target:       schema.TargetVariable,
		Features:     schema.Features(),
		Equation:     schema.ModelEquation,
		ScalingNote:  schema.ModelScalingNote,
		Coefficients: schema.RateCoefficients(schema.CoefficientData()),
		Residuals:    GenerateResiduals(src),
		ResidualNote: schema.ResidualNote,
		Diagnostics:  schema.DiagnosticCards(),
	}
}

func buildResults() *schema.ResultsView {
	reject := schema.PValue < schema.SignificanceLevel
	return &schema.ResultsView{
		NullHypothesis:     schema.NullHypothesis,
		AltHypothesis:      schema.AltHypothesis,
		Curve:              GeneratePermutationCurve(),
		ObservedDifference: schema.ObservedDifference,
		PValue:             schema.PValue,
		Permutations:       schema.Permutations,
		RejectNull:         reject,
		Evidence:           schema.EvidenceCards(reject),
		Conclusions:        schema.KeyConclusions(),
		About:              schema.AboutResearch(),
	}
}
