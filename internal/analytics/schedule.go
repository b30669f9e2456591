package analytics

import (
	"fmt"
)

const (
	weakCategoryRate      = 0.6
	strongPeriodRate      = 0.8
	durationSampleMinimum = 3
	periodSampleMinimum   = 3
	weekdaySampleMinimum  = 2
	weekdaysRequired      = 3
	periodGapThreshold    = 0.2
	weekdayGapThreshold   = 0.15
)

func percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

// SuggestRoutineOptimizations proposes category, timing and duration changes
// from completion patterns alone.
func (e *Engine) SuggestRoutineOptimizations() []Recommendation {
	recs := []Recommendation{}
	if len(e.history.Routines) == 0 {
		return recs
	}
	p := e.CompletionPatterns()

	if rates := p.categoryRates(); len(rates) > 0 {
		best, worst := bestAndWorst(rates)
		if worst.Value < weakCategoryRate {
			recs = append(recs, Recommendation{
				Type:  TypeCategoryOptimization,
				Title: fmt.Sprintf("Reduce %s Tasks", worst.Key),
				Description: fmt.Sprintf("You complete only %s of %s tasks. Consider moving some to %s time slots.",
					percent(worst.Value), worst.Key, best.Key),
				Action:   fmt.Sprintf("Move %s tasks to %s time periods", worst.Key, best.Key),
				Priority: PriorityHigh,
			})
		}
	}

	if rates := p.periodRates(1); len(rates) > 0 {
		best, _ := bestAndWorst(rates)
		if best.Value > strongPeriodRate {
			recs = append(recs, Recommendation{
				Type:  TypeTimingOptimization,
				Title: fmt.Sprintf("Leverage Your %s Productivity", best.Key),
				Description: fmt.Sprintf("You have %s completion rate during %s. Schedule important tasks here.",
					percent(best.Value), best.Key),
				Action:   fmt.Sprintf("Move critical tasks to %s", best.Key),
				TimeSlot: TimePeriod(best.Key),
				Priority: PriorityMedium,
			})
		}
	}

	for _, category := range sortedKeys(p.OptimalDurations) {
		durations := p.OptimalDurations[category]
		if len(durations) <= durationSampleMinimum {
			continue
		}
		avg := meanInts(durations)
		recs = append(recs, Recommendation{
			Type:        TypeDurationOptimization,
			Title:       fmt.Sprintf("Optimize %s Duration", category),
			Description: fmt.Sprintf("Your most successful %s tasks average %.0f minutes.", category, avg),
			Action:      fmt.Sprintf("Set %s tasks to ~%.0f minutes", category, avg),
			Priority:    PriorityLow,
		})
	}
	return recs
}

// SuggestOptimalScheduling compares the best and worst time periods and
// weekdays. Periods need three samples and weekdays two; weekday advice
// also needs more than three weekdays on record.
func (e *Engine) SuggestOptimalScheduling() []Recommendation {
	recs := []Recommendation{}
	p := e.CompletionPatterns()

	periods := p.periodRates(periodSampleMinimum)
	if len(periods) == 0 {
		return recs
	}
	best, worst := bestAndWorst(periods)
	if gap := best.Value - worst.Value; gap > periodGapThreshold {
		recs = append(recs, Recommendation{
			Type:  TypeScheduleOptimization,
			Title: fmt.Sprintf("Maximize Your %s Peak", best.Key),
			Description: fmt.Sprintf("You perform %s better during %s vs %s during %s.",
				percent(best.Value), best.Key, percent(worst.Value), worst.Key),
			Action:               fmt.Sprintf("Schedule important tasks during %s", best.Key),
			TimeSlot:             TimePeriod(best.Key),
			ImprovementPotential: "+" + percent(gap),
			Priority:             PriorityHigh,
		})
	}

	days := p.weekdayRates(weekdaySampleMinimum)
	if len(days) <= weekdaysRequired {
		return recs
	}
	bestDay, worstDay := bestAndWorst(days)
	if bestDay.Value-worstDay.Value > weekdayGapThreshold {
		recs = append(recs, Recommendation{
			Type:  TypeWeeklyOptimization,
			Title: fmt.Sprintf("Leverage Your %s Energy", bestDay.Key),
			Description: fmt.Sprintf("%s is your most productive day (%s completion vs %s on %s).",
				bestDay.Key, percent(bestDay.Value), percent(worstDay.Value), worstDay.Key),
			Action:   fmt.Sprintf("Schedule challenging tasks on %ss", bestDay.Key),
			BestDay:  bestDay.Key,
			Priority: PriorityMedium,
		})
	}
	return recs
}
