package schema

// Headline figures of the analysis.
const (
	TeamSeasonRecords  = 3523
	ApproxTeams        = 350
	Seasons            = 10
	RSquared           = 0.60
	RMSE               = 0.14
	ObservedDifference = 0.026
	PValue             = 0.0005
	Permutations       = 10000
	SignificanceLevel  = 0.05
	DataYears          = "2013-2023 (excl. 2020)"
	DataSource         = "barttorvik.com"
	ResearchGroup      = "UNC Data 110 Research Group"
	ModelEquation      = "Win_PCT = 0.64 × ADJOE - 0.45 × ADJDE + 0.005 × ADJ_T"
	ModelScalingNote   = "(After MinMax scaling of features)"
)

// teamMembers lists the authors of the analysis.
var teamMembers = []string{
	"Audrey Sompie",
	"Anirudh Dhawan",
	"Sanjana Holla",
	"Naomi Webster",
	"Dane Nighswander",
	"Ira Joshi",
}

var coefficientData = []Coefficient{
	{Name: string(ADJOE), Label: "Offense", Value: 0.64, Color: "#3b82f6"},
	{Name: string(ADJDE), Label: "Defense", Value: 0.45, Color: "#ef4444"},
	{Name: ADJT, Label: "Tempo", Value: 0.005, Color: "#10b981"},
}

var styleDistribution = []StyleBucket{
	{Name: "Both High", Count: 876, Pct: 24.9, Color: "#3b82f6"},
	{Name: "Both Low", Count: 1517, Pct: 43.1, Color: "#6b7280"},
	{Name: "Offense Only", Count: 537, Pct: 15.2, Color: "#f59e0b"},
	{Name: "Defense Only", Count: 593, Pct: 16.8, Color: "#ef4444"},
}

var winPctComparison = []StyleWinPct{
	{TeamStyle: "Offense-Heavy", WinPct: 0.556, Color: "#3b82f6"},
	{TeamStyle: "Defense-Heavy", WinPct: 0.530, Color: "#ef4444"},
}

// CoefficientData returns a copy of the regression coefficients per feature.
func CoefficientData() []Coefficient {
	return append([]Coefficient(nil), coefficientData...)
}

// StyleDistribution returns a copy of the team-season counts per playing style.
func StyleDistribution() []StyleBucket {
	return append([]StyleBucket(nil), styleDistribution...)
}

// WinPctComparison returns a copy of the mean win percentage per team style.
func WinPctComparison() []StyleWinPct {
	return append([]StyleWinPct(nil), winPctComparison...)
}

// TeamMembers returns a copy of the research group members.
func TeamMembers() []string {
	return append([]string(nil), teamMembers...)
}

// Tables returns all static tables.
func Tables() SummaryTables {
	return SummaryTables{
		Coefficients:      CoefficientData(),
		StyleDistribution: StyleDistribution(),
		WinPctComparison:  WinPctComparison(),
	}
}
