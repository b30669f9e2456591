package formatter

import (
	"testing"

	"github.com/alexanderramin/wellspring/internal/analytics"
	"github.com/stretchr/testify/assert"
)

func TestFormatProfile_Empty(t *testing.T) {
	out := stripANSI(FormatProfile(analytics.WellnessProfile{}))
	assert.Contains(t, out, "WELLNESS PROFILE")
	assert.Contains(t, out, "Not enough history yet")
}

func TestFormatProfile_PopulatedSections(t *testing.T) {
	p := analytics.WellnessProfile{
		EnergyPatterns: &analytics.EnergyPatterns{
			PeakEnergyHours: []int{7, 8},
			LowEnergyHours:  []int{15},
			EnergyStability: 0.8,
			CircadianType:   analytics.MorningLark,
		},
		Consistency: &analytics.Consistency{Score: 0.7, AverageCompletion: 0.75, Trend: analytics.TrendImproving},
		Trajectory:  &analytics.Trajectory{Confidence: 0},
		RiskFactors: []string{},
		Strengths:   []string{"Excellent at Exercise tasks (90% completion)"},
	}

	out := stripANSI(FormatProfile(p))
	assert.Contains(t, out, "Morning Lark")
	assert.Contains(t, out, "07:00, 08:00")
	assert.Contains(t, out, "75%")
	assert.Contains(t, out, "insufficient data")
	assert.Contains(t, out, "none identified")
	assert.Contains(t, out, "Excellent at Exercise tasks")
	assert.NotContains(t, out, "Stress")
}

func TestFormatPatterns(t *testing.T) {
	p := analytics.CompletionPatterns{
		BestCategories: map[string][]bool{"Exercise": {true, true, false}},
		BestTimes:      map[analytics.TimePeriod][]bool{analytics.PeriodMorning: {true}},
		CompletionByWeekday: map[string][]bool{
			"Monday": {true, false},
			"Empty":  {},
		},
		TotalCompletionRate: 0.5,
	}

	out := stripANSI(FormatPatterns(p))
	assert.Contains(t, out, "Exercise")
	assert.Contains(t, out, "2/3")
	assert.Contains(t, out, "Morning")
	assert.Contains(t, out, "1/2")
	assert.NotContains(t, out, "Empty")
	assert.NotContains(t, out, "NaN")
}
