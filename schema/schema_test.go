package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoefficientDataValues(t *testing.T) {
	coefs := CoefficientData()
	require.Len(t, coefs, 3)
	assert.Equal(t, Coefficient{Name: "ADJOE", Label: "Offense", Value: 0.64, Color: "#3b82f6"}, coefs[0])
	assert.Equal(t, Coefficient{Name: "ADJDE", Label: "Defense", Value: 0.45, Color: "#ef4444"}, coefs[1])
	assert.Equal(t, Coefficient{Name: "ADJ_T", Label: "Tempo", Value: 0.005, Color: "#10b981"}, coefs[2])
}

func TestStyleDistributionValues(t *testing.T) {
	styles := StyleDistribution()
	require.Len(t, styles, 4)

	names := []string{"Both High", "Both Low", "Offense Only", "Defense Only"}
	counts := []int{876, 1517, 537, 593}
	pcts := []float64{24.9, 43.1, 15.2, 16.8}
	total := 0
	for i, s := range styles {
		assert.Equal(t, names[i], s.Name)
		assert.Equal(t, counts[i], s.Count)
		assert.InDelta(t, pcts[i], s.Pct, 1e-9)
		total += s.Count
	}
	assert.Equal(t, TeamSeasonRecords, total, "style buckets cover every team-season")
}

func TestWinPctComparisonValues(t *testing.T) {
	cmp := WinPctComparison()
	require.Len(t, cmp, 2)
	assert.Equal(t, "Offense-Heavy", cmp[0].TeamStyle)
	assert.Equal(t, 0.556, cmp[0].WinPct)
	assert.Equal(t, "Defense-Heavy", cmp[1].TeamStyle)
	assert.Equal(t, 0.530, cmp[1].WinPct)
	assert.InDelta(t, ObservedDifference, cmp[0].WinPct-cmp[1].WinPct, 1e-9)
}

func TestTablesAreCopies(t *testing.T) {
	coefs := CoefficientData()
	coefs[0].Value = 99
	styles := StyleDistribution()
	styles[1].Count = -1
	cmp := WinPctComparison()
	cmp[0].WinPct = 0
	members := TeamMembers()
	members[0] = "Someone Else"

	assert.Equal(t, 0.64, CoefficientData()[0].Value)
	assert.Equal(t, 1517, StyleDistribution()[1].Count)
	assert.Equal(t, 0.556, WinPctComparison()[0].WinPct)
	assert.Equal(t, "Audrey Sompie", TeamMembers()[0])

	tables := Tables()
	tables.Coefficients[2].Value = 1
	assert.Equal(t, 0.005, CoefficientData()[2].Value)
}

func TestHeadlineFigures(t *testing.T) {
	assert.Equal(t, 3523, TeamSeasonRecords)
	assert.Equal(t, 0.60, RSquared)
	assert.Equal(t, 0.0005, PValue)
	assert.Equal(t, 10000, Permutations)
	assert.Less(t, PValue, SignificanceLevel)
	assert.Len(t, HeadlineCards(), 3)
	assert.Len(t, KeyFindings(), 3)
	assert.Len(t, KeyConclusions(), 4)
	assert.Len(t, Features(), 3)
	assert.Equal(t, "barttorvik.com", AboutResearch().Source)
}
