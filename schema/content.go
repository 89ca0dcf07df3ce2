package schema

// Narrative text shown alongside the charts.
const (
	Title            = "NCAA Basketball Analytics"
	Subtitle         = "Offense vs Defense Efficiency Analysis"
	ResearchQuestion = "Does offensive or defensive efficiency matter more for winning NCAA Division I men's basketball games?"

	StyleNote      = "Most teams (43.1%) are balanced but below average in both metrics. Only 15-17% specialize in one area."
	OffenseCaption = "Strong positive correlation: Higher offensive efficiency → Higher win percentage"
	DefenseCaption = "Strong negative correlation: Lower defensive efficiency (fewer points allowed) → Higher win percentage (axes are flipped!)"
	WinPctNote     = "Offense-heavy teams win 2.6% more games on average (55.6% vs 53.0%)"

	TargetVariable = "Win Percentage (Win_PCT)"
	ResidualNote   = "Residuals are randomly scattered around zero with no clear pattern, confirming that linear regression is appropriate for this data."

	NullHypothesis = "Offense-heavy and defense-heavy teams have equal mean Win_PCT"
	AltHypothesis  = "Offense-heavy teams have higher mean Win_PCT"
)

var coefficientNotes = map[string]string{
	string(ADJOE): "Strongest predictor - better offense significantly increases win probability",
	string(ADJDE): "Second strongest - good defense is important but slightly less impactful",
	ADJT:          "Very small coefficient - pace has minimal predictive power compared to offense/defense",
}

// Features returns the regression inputs.
func Features() []Feature {
	return []Feature{
		{Name: string(ADJOE), Description: "Adjusted Offensive Efficiency (points scored per 100 possessions)"},
		{Name: string(ADJDE), Description: "Adjusted Defensive Efficiency (points allowed per 100 possessions)"},
		{Name: ADJT, Description: "Adjusted Tempo (possessions per 40 minutes)"},
	}
}

// HeadlineCards returns the overview figures.
func HeadlineCards() []Card {
	return []Card{
		{Value: "3,523", Title: "Team-Season Records", Subtitle: "~350 teams × 10 seasons"},
		{Value: "60%", Title: "R² Score", Subtitle: "Variance explained by model"},
		{Value: "2.6%", Title: "Offense Advantage", Subtitle: "p-value = 0.0005"},
	}
}

// KeyFindings returns the overview findings.
func KeyFindings() []Finding {
	return []Finding{
		{Title: "Offense Matters More", Text: "Offensive efficiency (ADJOE) has a stronger coefficient (0.64) compared to defensive efficiency (0.45)", Trend: TrendUp},
		{Title: "Both Are Important", Text: "Teams excelling in both offense and defense have the highest win percentages", Trend: TrendSteady},
		{Title: "Tempo Less Significant", Text: "Pace (ADJ_T) has minimal impact with coefficient near 0.005", Trend: TrendDown},
	}
}

// DiagnosticCards returns the model fit figures.
func DiagnosticCards() []Card {
	return []Card{
		{Value: "R² = 0.60", Title: "Model explains 60% of variance in win percentage"},
		{Value: "RMSE = 14%", Title: "Average prediction error"},
		{Value: "No Overfitting", Title: "Model generalizes well to test data"},
	}
}

// EvidenceCards returns the permutation test figures. The conclusion
// card depends on whether the p-value clears the significance level.
func EvidenceCards(rejectNull bool) []Card {
	conclusion := Card{Value: "Conclusion: Reject H₀", Title: "Strong statistical evidence that offense contributes more to winning than defense"}
	if !rejectNull {
		conclusion = Card{Value: "Conclusion: Fail to reject H₀", Title: "No significant difference between offense-heavy and defense-heavy teams"}
	}
	return []Card{
		{Value: "Observed Difference: 0.026 (2.6%)", Title: "Offense-heavy teams win 2.6 percentage points more than defense-heavy teams"},
		{Value: "p-value = 0.0005", Title: "Only 0.05% of 10,000 permutations produced a difference this extreme or greater"},
		conclusion,
	}
}

// KeyConclusions returns the numbered conclusions of the results view.
func KeyConclusions() []Finding {
	return []Finding{
		{Title: "1. Offense Wins Championships", Text: "Both the linear regression model (coefficient: 0.64 vs 0.45) and permutation test (p = 0.0005) provide strong evidence that offensive efficiency is a stronger predictor of winning than defensive efficiency."},
		{Title: "2. Defense Still Matters", Text: "While offense is more important, defensive efficiency remains highly significant with a substantial coefficient (0.45). The best teams excel at both."},
		{Title: "3. Tempo is Overrated", Text: "Playing fast or slow (ADJ_T coefficient: 0.005) has minimal impact on winning compared to efficiency metrics. It's not about how many possessions you have, but what you do with them."},
		{Title: "4. Practical Applications", Text: "Coaches should prioritize offensive skill development and recruiting, though not at the complete expense of defense. The 2.6% advantage translates to roughly 1 additional win per season for offense-focused teams."},
	}
}

// AboutResearch returns the credits block.
func AboutResearch() About {
	return About{
		Group:   ResearchGroup,
		Summary: "This analysis was conducted by the UNC Data 110 Research Group using comprehensive NCAA Division I men's basketball data from 2013-2023 (excluding the cancelled 2020 season). The dataset includes 3,523 team-season records from approximately 350 teams.",
		Members: TeamMembers(),
		Source:  DataSource,
	}
}

// MetricCaption returns the scatter caption for a metric.
func MetricCaption(m Metric) string {
	if m == ADJDE {
		return DefenseCaption
	}
	return OffenseCaption
}

// MetricLabel returns the dropdown label of a metric.
func MetricLabel(m Metric) string {
	switch m {
	case ADJDE:
		return "Defensive Efficiency (ADJDE)"
	default:
		return "Offensive Efficiency (ADJOE)"
	}
}
