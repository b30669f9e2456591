package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/wellspring/internal/domain"
)

const (
	longWorkMinutes      = 120
	overworkDayMinutes   = 480
	highIntensityMinutes = 60
	trajectoryWindow     = 7
)

var recoveryRecommendations = map[NeedLevel]string{
	NeedCritical: "Schedule mandatory rest days and add daily stretching sessions",
	NeedHigh:     "Increase recovery activities and consider lighter workout days",
	NeedModerate: "Add post-workout stretching and one dedicated recovery day per week",
	NeedAdequate: "Maintain current recovery routine",
}

const defaultStrength = "Building healthy habits foundation"

// byDate returns a copy of routines ordered by date, oldest first.
func byDate(routines []domain.DailyRoutine) []domain.DailyRoutine {
	sorted := make([]domain.DailyRoutine, len(routines))
	copy(sorted, routines)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })
	return sorted
}

func completionRates(routines []domain.DailyRoutine) []float64 {
	rates := make([]float64, len(routines))
	for i, r := range routines {
		rates[i] = r.CompletionRate()
	}
	return rates
}

func calculateStressResilience(routines []domain.DailyRoutine) StressResilience {
	stress := make([]float64, 0, len(routines))
	recovery := make([]float64, 0, len(routines))
	for _, r := range routines {
		var dailyStress, dailyRecovery float64
		for _, t := range r.Tasks {
			if t.Category == domain.CategoryWork && t.Duration > longWorkMinutes {
				dailyStress += 2
			} else if containsAny(t.Name, painKeywords) {
				dailyStress++
			}
			restful := t.Category == domain.CategoryPersonal || t.Category == domain.CategoryEvening ||
				containsAny(t.Name, stretchKeywords)
			if restful && t.Completed {
				dailyRecovery++
			}
		}
		stress = append(stress, dailyStress)
		recovery = append(recovery, dailyRecovery)
	}

	avgStress, avgRecovery := mean(stress), mean(recovery)
	sr := StressResilience{
		ResilienceScore:     clamp((avgRecovery-avgStress+3)/6, 0, 1),
		StressLevel:         StressLow,
		RecoveryCapacity:    CapacityNeedsImprovement,
		StressRecoveryRatio: avgRecovery / max(avgStress, 1),
	}
	switch {
	case avgStress > 3:
		sr.StressLevel = StressHigh
	case avgStress > 1:
		sr.StressLevel = StressModerate
	}
	switch {
	case avgRecovery > 3:
		sr.RecoveryCapacity = CapacityExcellent
	case avgRecovery > 1:
		sr.RecoveryCapacity = CapacityGood
	}
	return sr
}

func measureConsistency(routines []domain.DailyRoutine) Consistency {
	if len(routines) < 3 {
		return Consistency{Trend: TrendInsufficientData}
	}

	rates := completionRates(byDate(routines))
	variation := sampleStdDev(rates)
	c := Consistency{
		Score:             clamp(1-variation, 0, 1),
		AverageCompletion: mean(rates),
		Trend:             TrendEstablishing,
		Variation:         variation,
	}
	if n := len(rates); n >= 5 {
		recent := mean(rates[n-3:])
		var earlier float64
		if n >= 6 {
			earlier = mean(rates[n-6 : n-3])
		} else {
			earlier = mean(rates[:n-3])
		}
		switch diff := recent - earlier; {
		case diff > 0.1:
			c.Trend = TrendImproving
		case diff < -0.1:
			c.Trend = TrendDeclining
		default:
			c.Trend = TrendStable
		}
	}
	return c
}

func assessRecoveryRequirements(routines []domain.DailyRoutine) RecoveryNeeds {
	var completedExercise, highIntensityDays, recoveryActivities int
	for _, r := range routines {
		daily := 0
		for _, t := range r.Tasks {
			if t.Category == domain.CategoryExercise {
				daily += t.Duration
				if t.Completed {
					completedExercise += t.Duration
				}
			}
			if t.Completed && containsAny(t.Name, recoveryKeywords) {
				recoveryActivities++
			}
		}
		if daily > highIntensityMinutes {
			highIntensityDays++
		}
	}

	var avg float64
	if len(routines) > 0 {
		avg = float64(completedExercise) / float64(len(routines))
	}
	ratio := float64(recoveryActivities) / float64(max(highIntensityDays, 1))

	level := NeedAdequate
	switch {
	case avg > 90 && ratio < 0.5:
		level = NeedCritical
	case avg > 60 && ratio < 0.8:
		level = NeedHigh
	case avg > 30 && ratio < 1.0:
		level = NeedModerate
	}
	return RecoveryNeeds{
		NeedLevel:           level,
		AvgExerciseDuration: avg,
		RecoveryRatio:       ratio,
		HighIntensityDays:   highIntensityDays,
		Recommendation:      recoveryRecommendations[level],
	}
}

func predictWellnessTrajectory(routines []domain.DailyRoutine) Trajectory {
	if len(routines) < 5 {
		return Trajectory{Prediction: "Insufficient data"}
	}

	sorted := byDate(routines)
	if len(sorted) > trajectoryWindow {
		sorted = sorted[len(sorted)-trajectoryWindow:]
	}
	trend := completionRates(sorted)
	n := len(trend)
	if n < 3 {
		return Trajectory{Prediction: "Building baseline", Confidence: 0.3}
	}

	first, last := trend[0], trend[n-1]
	avgRecent := mean(trend[n-3:])
	momentum := (last - first) / float64(n)
	t := Trajectory{
		CurrentPerformance:     avgRecent,
		TrendDirection:         TrendDeclining,
		Momentum:               momentum,
		Confidence:             min(0.9, float64(n)/10),
		PredictedNextWeek:      clamp(avgRecent+momentum, 0, 1),
		RecommendationsUrgency: PriorityLow,
	}
	if last > first {
		t.TrendDirection = TrendImproving
	}
	switch {
	case avgRecent < 0.6:
		t.RecommendationsUrgency = PriorityHigh
	case avgRecent < 0.8:
		t.RecommendationsUrgency = PriorityMedium
	}
	return t
}

func identifyRiskFactors(routines []domain.DailyRoutine) []string {
	risks := []string{}
	days := float64(len(routines))
	if days == 0 {
		return risks
	}

	var painTasks, overworkDays, lowAdherenceDays, activeDays int
	for _, r := range routines {
		workMinutes := 0
		exercised := false
		for _, t := range r.Tasks {
			if containsAny(t.Name, painKeywords) {
				painTasks++
			}
			if t.Category == domain.CategoryWork {
				workMinutes += t.Duration
			}
			if t.Category == domain.CategoryExercise && t.Completed {
				exercised = true
			}
		}
		if workMinutes > overworkDayMinutes {
			overworkDays++
		}
		if r.CompletionRate() < 0.5 {
			lowAdherenceDays++
		}
		if exercised {
			activeDays++
		}
	}

	if float64(painTasks)/days > 0.3 {
		risks = append(risks, "Chronic pain indicators detected")
	}
	if float64(overworkDays)/days > 0.4 {
		risks = append(risks, "Excessive work hours pattern")
	}
	if float64(lowAdherenceDays)/days > 0.3 {
		risks = append(risks, "Low routine adherence trend")
	}
	if float64(activeDays)/days < 0.4 {
		risks = append(risks, "Insufficient physical activity")
	}
	return risks
}

func identifyStrengths(p CompletionPatterns, c Consistency, r RecoveryNeeds) []string {
	var strengths []string
	if p.TotalCompletionRate > 0.8 {
		strengths = append(strengths, "Excellent routine adherence")
	}
	for _, cr := range p.categoryRates() {
		if cr.Value > 0.85 {
			strengths = append(strengths, fmt.Sprintf("Strong %s routine consistency", strings.ToLower(cr.Key)))
		}
	}
	if c.Score > 0.8 {
		strengths = append(strengths, "Highly consistent daily patterns")
	}
	if r.NeedLevel == NeedAdequate {
		strengths = append(strengths, "Well-balanced activity and recovery")
	}
	if len(strengths) == 0 {
		return []string{defaultStrength}
	}
	return strengths
}
