// Package schema has models, static tables and constants for all parts of hoopstats.
package schema

// ScatterPoint is one team-season in the efficiency vs win percentage chart.
type ScatterPoint struct {
	X float64 `json:"x"` // Efficiency value (points per 100 possessions)
	Y float64 `json:"y"` // Win percentage in [0,1]
}

// ResidualPoint is one fitted observation in the residual diagnostics chart.
type ResidualPoint struct {
	Predicted float64 `json:"predicted"`
	Residual  float64 `json:"residual"`
}

// CurvePoint is one point of the permutation null distribution curve.
type CurvePoint struct {
	X float64 `json:"x"` // Difference in mean win percentage
	Y float64 `json:"y"` // Frequency among permutations
}

// Coefficient is a regression coefficient for one feature.
type Coefficient struct {
	Name  string  `json:"name"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// StyleBucket counts team-seasons by playing style.
type StyleBucket struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Pct   float64 `json:"pct"`
	Color string  `json:"color"`
}

// StyleWinPct is the mean win percentage of one team style.
type StyleWinPct struct {
	TeamStyle string  `json:"teamstyle"`
	WinPct    float64 `json:"winPct"`
	Color     string  `json:"color"`
}

// SummaryTables bundles all static tables of the dashboard.
type SummaryTables struct {
	Coefficients      []Coefficient `json:"coefficients"`
	StyleDistribution []StyleBucket `json:"style_distribution"`
	WinPctComparison  []StyleWinPct `json:"win_pct_comparison"`
}
