package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/wellspring/internal/analytics"
)

// FormatProfile renders the wellness profile sections that carry data.
func FormatProfile(p analytics.WellnessProfile) string {
	if p.Empty() {
		return "\n" + Header("Wellness Profile") + "\n\n  " +
			Dim("Not enough history yet. Log a few routines to build a profile.") + "\n\n"
	}

	var b strings.Builder
	b.WriteString("\n" + Header("Wellness Profile") + "\n\n")

	if e := p.EnergyPatterns; e != nil {
		b.WriteString(Bold("Energy") + "\n")
		kv(&b, "Circadian type", StylePurple.Render(string(e.CircadianType)))
		kv(&b, "Peak hours", FormatHours(e.PeakEnergyHours))
		kv(&b, "Low hours", FormatHours(e.LowEnergyHours))
		kv(&b, "Stability", RenderProgress(e.EnergyStability, 12))
		b.WriteString("\n")
	}
	if s := p.StressResilience; s != nil {
		b.WriteString(Bold("Stress") + "\n")
		kv(&b, "Resilience", RenderProgress(s.ResilienceScore, 12))
		kv(&b, "Stress level", string(s.StressLevel))
		kv(&b, "Recovery", string(s.RecoveryCapacity))
		kv(&b, "Recovery ratio", Score(s.StressRecoveryRatio))
		b.WriteString("\n")
	}
	if c := p.Consistency; c != nil {
		b.WriteString(Bold("Consistency") + "\n")
		kv(&b, "Score", RenderProgress(c.Score, 12))
		kv(&b, "Avg completion", Percent(c.AverageCompletion))
		kv(&b, "Trend", string(c.Trend))
		b.WriteString("\n")
	}
	if r := p.RecoveryNeeds; r != nil {
		b.WriteString(Bold("Recovery") + "\n")
		kv(&b, "Need", string(r.NeedLevel))
		kv(&b, "Avg exercise", fmt.Sprintf("%.0f min", r.AvgExerciseDuration))
		kv(&b, "Intense days", fmt.Sprintf("%d", r.HighIntensityDays))
		if r.Recommendation != "" {
			kv(&b, "Advice", r.Recommendation)
		}
		b.WriteString("\n")
	}
	if t := p.Trajectory; t != nil {
		b.WriteString(Bold("Trajectory") + "\n")
		if t.Prediction == "" {
			kv(&b, "Prediction", Dim("insufficient data"))
		} else {
			kv(&b, "Prediction", t.Prediction)
			kv(&b, "Direction", string(t.TrendDirection))
			kv(&b, "Next week", Percent(t.PredictedNextWeek))
			kv(&b, "Urgency", PriorityBadge(t.RecommendationsUrgency))
		}
		kv(&b, "Confidence", Score(t.Confidence))
		b.WriteString("\n")
	}
	if p.RiskFactors != nil {
		b.WriteString(StyleRed.Render("Risk factors") + "\n")
		b.WriteString(Bullets(p.RiskFactors, "none identified"))
		b.WriteString("\n")
	}
	if p.Strengths != nil {
		b.WriteString(StyleGreen.Render("Strengths") + "\n")
		b.WriteString(Bullets(p.Strengths, "none identified yet"))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatPatterns renders completion rates per category, period and weekday.
func FormatPatterns(p analytics.CompletionPatterns) string {
	var b strings.Builder
	b.WriteString("\n" + Header("Completion Patterns") + "\n\n")
	kv(&b, "Overall", RenderProgress(p.TotalCompletionRate, 16))
	b.WriteString("\n")

	b.WriteString(rateTable("Category", p.BestCategories))
	b.WriteString("\n")

	byPeriod := make(map[string][]bool, len(p.BestTimes))
	for k, v := range p.BestTimes {
		byPeriod[string(k)] = v
	}
	b.WriteString(rateTable("Time of day", byPeriod))
	b.WriteString("\n")
	b.WriteString(rateTable("Weekday", p.CompletionByWeekday))
	return b.String()
}

func rateTable(label string, buckets map[string][]bool) string {
	if len(buckets) == 0 {
		return "  " + Dim("No "+strings.ToLower(label)+" data.") + "\n"
	}
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		outcomes := buckets[k]
		if len(outcomes) == 0 {
			continue
		}
		done := 0
		for _, ok := range outcomes {
			if ok {
				done++
			}
		}
		rate := float64(done) / float64(len(outcomes))
		rows = append(rows, []string{k, fmt.Sprintf("%d/%d", done, len(outcomes)), RenderProgress(rate, 10)})
	}
	return RenderTable([]string{label, "Done", "Rate"}, rows, 1)
}

func kv(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "  %s %s\n", Dim(fmt.Sprintf("%-15s", key)), value)
}
