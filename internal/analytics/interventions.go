package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	energyVolatilityThreshold = 0.3
	lowResilienceThreshold    = 0.6
	energyInterventionConf    = 0.85
	stressInterventionConf    = 0.78
)

// ProactiveInterventions derives profile-level interventions, most confident
// first.
func (e *Engine) ProactiveInterventions() []Intervention {
	out := []Intervention{}
	p := e.WellnessProfile()
	if p.Empty() {
		return out
	}

	if ep := p.EnergyPatterns; ep != nil && ep.EnergyStability > energyVolatilityThreshold {
		out = append(out, Intervention{
			Type:  InterventionEnergyStabilization,
			Title: "Stabilize Your Energy Patterns",
			Description: fmt.Sprintf("Your energy varies significantly throughout the day. You're a %s type.",
				ep.CircadianType),
			Action:              "Schedule demanding tasks during your peak hours: " + peakHourList(ep.PeakEnergyHours, 2) + ":00",
			AIConfidence:        energyInterventionConf,
			ExpectedImprovement: "15-25% better task completion",
			Priority:            PriorityHigh,
		})
	}

	if sr := p.StressResilience; sr != nil && sr.ResilienceScore < lowResilienceThreshold {
		out = append(out, Intervention{
			Type:  InterventionStressManagement,
			Title: "Enhance Stress Resilience",
			Description: fmt.Sprintf("AI detected %s stress levels with %s recovery.",
				sr.StressLevel, sr.RecoveryCapacity),
			Action:              "Add 15-minute mindfulness breaks between work sessions",
			AIConfidence:        stressInterventionConf,
			ExpectedImprovement: "30% improvement in completion rates",
			Priority:            PriorityHigh,
		})
	}

	if t := p.Trajectory; t != nil && t.TrendDirection == TrendDeclining {
		out = append(out, Intervention{
			Type:  InterventionTrajectoryCorrection,
			Title: "Reverse Declining Performance",
			Description: fmt.Sprintf("AI predicts %s completion rate next week if current pattern continues.",
				percent(t.PredictedNextWeek)),
			Action:              "Simplify routines and focus on 3 core daily habits",
			AIConfidence:        t.Confidence,
			ExpectedImprovement: "Prevent 20% further decline",
			Priority:            PriorityUrgent,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].AIConfidence > out[j].AIConfidence })
	return out
}

func peakHourList(hours []int, n int) string {
	parts := make([]string, 0, n)
	for _, h := range hours[:min(n, len(hours))] {
		parts = append(parts, strconv.Itoa(h))
	}
	return strings.Join(parts, ", ")
}
