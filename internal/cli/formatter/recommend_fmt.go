package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wellspring/internal/analytics"
)

// FormatRecommendations renders a titled list of recommendations of any kind.
func FormatRecommendations(title string, recs []analytics.Recommendation) string {
	var b strings.Builder
	b.WriteString("\n" + Header(title) + "\n\n")
	if len(recs) == 0 {
		b.WriteString("  " + Dim("Nothing to suggest right now.") + "\n\n")
		return b.String()
	}
	for i, r := range recs {
		fmt.Fprintf(&b, "  %s %s  %s\n", StyleDim.Render(fmt.Sprintf("%d.", i+1)), Bold(RecommendationTitle(r)), PriorityBadge(r.Priority))
		for _, line := range recommendationDetails(r) {
			b.WriteString("     " + line + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RecommendationTitle picks the display name for a recommendation: the
// catalog entry it points at, or its own title.
func RecommendationTitle(r analytics.Recommendation) string {
	switch {
	case r.Workout != nil:
		return r.Workout.Name
	case r.Meal != nil:
		return r.Meal.Name
	case r.Title != "":
		return r.Title
	default:
		return r.Type
	}
}

func recommendationDetails(r analytics.Recommendation) []string {
	var lines []string
	if r.Workout != nil {
		w := r.Workout
		meta := []string{string(w.Difficulty), FormatMinutes(w.EstimatedDuration)}
		if len(w.TargetMuscleGroups) > 0 {
			meta = append(meta, strings.Join(w.TargetMuscleGroups, ", "))
		}
		lines = append(lines, Dim(strings.Join(meta, " · ")))
	}
	if r.Meal != nil {
		m := r.Meal
		lines = append(lines, Dim(fmt.Sprintf("%d kcal · P %.0fg · C %.0fg · F %.0fg", m.Calories, m.Protein, m.Carbs, m.Fat)))
	}
	if r.Description != "" {
		lines = append(lines, r.Description)
	}
	if r.Reason != "" {
		lines = append(lines, StyleBlue.Render("why ")+r.Reason)
	}
	if r.Action != "" {
		lines = append(lines, StyleGreen.Render("do  ")+r.Action)
	}

	var when []string
	if r.Score > 0 {
		when = append(when, "score "+Score(r.Score))
	}
	if r.BestTime != "" {
		when = append(when, "best at "+r.BestTime)
	}
	if r.MealTime != "" {
		when = append(when, string(r.MealTime))
	}
	if r.TimeSlot != "" {
		when = append(when, string(r.TimeSlot))
	}
	if r.BestDay != "" {
		when = append(when, "best day "+r.BestDay)
	}
	if r.ImprovementPotential != "" {
		when = append(when, "potential "+r.ImprovementPotential)
	}
	if len(when) > 0 {
		lines = append(lines, Dim(strings.Join(when, " · ")))
	}
	return lines
}

func FormatInterventions(items []analytics.Intervention) string {
	var b strings.Builder
	b.WriteString("\n" + Header("Interventions") + "\n\n")
	if len(items) == 0 {
		b.WriteString("  " + StyleGreen.Render("No interventions needed.") + "\n\n")
		return b.String()
	}
	for _, it := range items {
		fmt.Fprintf(&b, "  %s  %s\n", Bold(it.Title), PriorityBadge(it.Priority))
		b.WriteString("     " + it.Description + "\n")
		b.WriteString("     " + StyleGreen.Render("do  ") + it.Action + "\n")
		fmt.Fprintf(&b, "     %s\n\n", Dim(fmt.Sprintf("confidence %s · expected %s", Score(it.AIConfidence), it.ExpectedImprovement)))
	}
	return b.String()
}

func FormatCoaching(c analytics.Coaching) string {
	var b strings.Builder
	b.WriteString("\n" + Header("Coaching") + "\n\n")
	b.WriteString("  " + CoachingIndicator(c.Status) + "\n\n")
	b.WriteString("  " + c.Message + "\n")
	if c.Action != "" {
		b.WriteString("  " + StyleGreen.Render("do  ") + c.Action + "\n")
	}
	if c.RecommendedActivity != "" {
		kv(&b, "Activity", c.RecommendedActivity)
	}
	if c.StressAlert != "" {
		b.WriteString("\n  " + StyleYellow.Render("⚠ "+c.StressAlert) + "\n")
		if c.PriorityAdjustment != "" {
			b.WriteString("    " + Dim(c.PriorityAdjustment) + "\n")
		}
	}
	b.WriteString("\n  " + Dim("confidence "+Score(c.Confidence)) + "\n\n")
	return b.String()
}

func FormatReadiness(r analytics.WorkoutReadiness) string {
	var b strings.Builder
	b.WriteString("\n" + Header("Workout Readiness") + "\n\n")
	b.WriteString("  " + ReadinessIndicator(r.Readiness) + "\n")
	if r.Message != "" {
		b.WriteString("  " + r.Message + "\n")
	}
	b.WriteString("\n")
	if f := r.Factors; f != nil {
		kv(&b, "Recovery time", RenderProgress(f.RecoveryTime, 12))
		kv(&b, "Pain status", RenderProgress(f.PainStatus, 12))
		kv(&b, "Sleep quality", RenderProgress(f.SleepQuality, 12))
		kv(&b, "Consistency", RenderProgress(f.Consistency, 12))
		kv(&b, "Overall", Bold(Score(r.OverallScore)))
		b.WriteString("\n")
	}
	if r.SuggestedIntensity != "" {
		kv(&b, "Intensity", r.SuggestedIntensity)
	}
	if r.WorkoutType != "" {
		kv(&b, "Workout", r.WorkoutType)
	}
	kv(&b, "Confidence", Score(r.Confidence))
	b.WriteString("\n")
	return b.String()
}

func FormatMealTiming(plan []analytics.MealTiming) string {
	var b strings.Builder
	b.WriteString("\n" + Header("Meal Timing") + "\n\n")
	if len(plan) == 0 {
		b.WriteString("  " + Dim("No timing plan for your current energy pattern.") + "\n\n")
		return b.String()
	}
	rows := make([][]string, len(plan))
	for i, m := range plan {
		rows[i] = []string{string(m.MealType), m.OptimalTime, m.MealSize, fmt.Sprintf("%d", m.RecommendedCalories), m.Reasoning}
	}
	b.WriteString(RenderTable([]string{"Meal", "Time", "Size", "kcal", "Why"}, rows, 3))
	b.WriteString("\n")
	return b.String()
}

func FormatSummary(s analytics.Summary) string {
	var b strings.Builder
	b.WriteString("\n" + Header("Recommendation Summary") + "\n\n")
	kv(&b, "Total", Bold(fmt.Sprintf("%d", s.Total)))
	kv(&b, "Routine tips", fmt.Sprintf("%d", s.RoutineTips))
	kv(&b, "Workouts", fmt.Sprintf("%d", s.Workouts))
	kv(&b, "Meals", fmt.Sprintf("%d", s.Meals))
	kv(&b, "Scheduling", fmt.Sprintf("%d", s.Scheduling))
	kv(&b, "Interventions", fmt.Sprintf("%d", s.AIInterventions))
	kv(&b, "High priority", fmt.Sprintf("%d", s.HighPriority))
	kv(&b, "Urgent", fmt.Sprintf("%d", s.UrgentInterventions))
	b.WriteString("\n")
	kv(&b, "Confidence", RenderProgress(s.AIConfidence, 12))
	kv(&b, "Status", StylePurple.Render(s.AIStatus))
	kv(&b, "Profile", RenderProgress(s.ProfileCompleteness, 12))
	b.WriteString("\n")
	return b.String()
}
