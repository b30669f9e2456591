package formatter

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/alexanderramin/wellspring/internal/analytics"
	"github.com/alexanderramin/wellspring/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var reportMarkdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// ReportMarkdown renders the full wellness report as plain markdown with
// no terminal styling, so it can be saved or converted to HTML.
func ReportMarkdown(r *service.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Wellness Report\n\n")
	fmt.Fprintf(&b, "_Generated %s from %d routines._\n\n", r.GeneratedAt.Format("Mon Jan 2, 2006 15:04 MST"), r.RoutineCount)

	b.WriteString("## Summary\n\n")
	s := r.Summary
	b.WriteString("| Metric | Value |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Recommendations | %d |\n", s.Total)
	fmt.Fprintf(&b, "| High priority | %d |\n", s.HighPriority)
	fmt.Fprintf(&b, "| Urgent interventions | %d |\n", s.UrgentInterventions)
	fmt.Fprintf(&b, "| Confidence | %s (%s) |\n", Score(s.AIConfidence), s.AIStatus)
	fmt.Fprintf(&b, "| Profile completeness | %s |\n\n", Percent(s.ProfileCompleteness))

	b.WriteString("## Wellness Profile\n\n")
	mdProfile(&b, r.Profile)

	b.WriteString("## Right Now\n\n")
	c := r.Coaching
	fmt.Fprintf(&b, "**%s**", mdEscape(c.Message))
	if c.Action != "" {
		fmt.Fprintf(&b, " %s", mdEscape(c.Action))
	}
	b.WriteString("\n\n")
	if c.StressAlert != "" {
		fmt.Fprintf(&b, "> %s %s\n\n", mdEscape(c.StressAlert), mdEscape(c.PriorityAdjustment))
	}
	fmt.Fprintf(&b, "Workout readiness: **%s**", r.Readiness.Readiness)
	if r.Readiness.Message != "" {
		fmt.Fprintf(&b, ". %s", mdEscape(r.Readiness.Message))
	}
	b.WriteString("\n\n")

	if len(r.Interventions) > 0 {
		b.WriteString("## Interventions\n\n")
		for _, it := range r.Interventions {
			fmt.Fprintf(&b, "- **%s** (%s, confidence %s): %s %s\n",
				mdEscape(it.Title), it.Priority, Score(it.AIConfidence), mdEscape(it.Description), mdEscape(it.Action))
		}
		b.WriteString("\n")
	}

	mdRecommendations(&b, "Workouts", r.Workouts)
	mdRecommendations(&b, "Meals", r.Meals)
	mdRecommendations(&b, "Routine Tips", r.RoutineTips)
	mdRecommendations(&b, "Scheduling", r.Scheduling)

	if len(r.MealTiming) > 0 {
		b.WriteString("## Meal Timing\n\n| Meal | Time | Size | kcal |\n|---|---|---|---:|\n")
		for _, m := range r.MealTiming {
			fmt.Fprintf(&b, "| %s | %s | %s | %d |\n", m.MealType, m.OptimalTime, m.MealSize, m.RecommendedCalories)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func mdProfile(b *strings.Builder, p analytics.WellnessProfile) {
	if p.Empty() {
		b.WriteString("Not enough history to build a profile yet.\n\n")
		return
	}
	if e := p.EnergyPatterns; e != nil {
		fmt.Fprintf(b, "- **Energy:** %s, peaks at %s\n", e.CircadianType, plainHours(e.PeakEnergyHours))
	}
	if s := p.StressResilience; s != nil {
		fmt.Fprintf(b, "- **Stress:** %s stress, resilience %s\n", s.StressLevel, Score(s.ResilienceScore))
	}
	if c := p.Consistency; c != nil {
		fmt.Fprintf(b, "- **Consistency:** %s, trend %s\n", Score(c.Score), c.Trend)
	}
	if r := p.RecoveryNeeds; r != nil {
		fmt.Fprintf(b, "- **Recovery need:** %s\n", r.NeedLevel)
	}
	if t := p.Trajectory; t != nil && t.Prediction != "" {
		fmt.Fprintf(b, "- **Trajectory:** %s\n", mdEscape(t.Prediction))
	}
	b.WriteString("\n")
	if len(p.Strengths) > 0 {
		b.WriteString("**Strengths**\n\n")
		for _, s := range p.Strengths {
			fmt.Fprintf(b, "- %s\n", mdEscape(s))
		}
		b.WriteString("\n")
	}
	if len(p.RiskFactors) > 0 {
		b.WriteString("**Risk factors**\n\n")
		for _, s := range p.RiskFactors {
			fmt.Fprintf(b, "- %s\n", mdEscape(s))
		}
		b.WriteString("\n")
	}
}

func mdRecommendations(b *strings.Builder, title string, recs []analytics.Recommendation) {
	if len(recs) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for i, r := range recs {
		fmt.Fprintf(b, "%d. **%s** _(%s)_", i+1, mdEscape(RecommendationTitle(r)), r.Priority)
		for _, s := range []string{r.Description, r.Reason, r.Action} {
			if s != "" {
				fmt.Fprintf(b, " %s", mdEscape(s))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func plainHours(hours []int) string {
	if len(hours) == 0 {
		return "no clear hour"
	}
	parts := make([]string, len(hours))
	for i, h := range hours {
		parts[i] = fmt.Sprintf("%02d:00", h)
	}
	return strings.Join(parts, ", ")
}

var mdEscaper = strings.NewReplacer(`*`, `\*`, `_`, `\_`, `|`, `\|`, "`", "\\`", `<`, `&lt;`)

func mdEscape(s string) string {
	return mdEscaper.Replace(s)
}

// RenderReportHTML converts the report markdown into a standalone HTML page.
func RenderReportHTML(r *service.Report) (string, error) {
	var body bytes.Buffer
	if err := reportMarkdown.Convert([]byte(ReportMarkdown(r)), &body); err != nil {
		return "", fmt.Errorf("rendering report html: %w", err)
	}
	title := html.EscapeString("Wellness Report " + r.GeneratedAt.Format("2006-01-02"))
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 46rem; margin: 2rem auto; color: #282828; }
table { border-collapse: collapse; }
th, td { border-bottom: 1px solid #d5c4a1; padding: .25rem .75rem; }
blockquote { border-left: 4px solid #fe8019; margin-left: 0; padding-left: 1rem; }
</style>
</head>
<body>
%s</body>
</html>
`, title, body.String()), nil
}
