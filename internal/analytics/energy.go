package analytics

import (
	"sort"

	"github.com/alexanderramin/wellspring/internal/domain"
)

const (
	neutralEnergy       = 0.5
	completedEnergy     = 1.0
	missedEnergy        = 0.3
	demandingMultiplier = 1.5
)

func completionEnergy(t domain.RoutineTask) float64 {
	if t.Completed {
		return completedEnergy
	}
	return missedEnergy
}

// energySample weights completion by duration in hours, boosting Work and
// Exercise tasks.
func energySample(t domain.RoutineTask) float64 {
	weight := float64(t.Duration) / 60
	if t.Category == domain.CategoryWork || t.Category == domain.CategoryExercise {
		weight *= demandingMultiplier
	}
	return completionEnergy(t) * weight
}

type hourEnergy struct {
	hour  int
	value float64
}

func analyzeEnergyPatterns(routines []domain.DailyRoutine) EnergyPatterns {
	var byHour [24][]float64
	byWeekday := map[string][]float64{}

	for _, r := range routines {
		weekday := r.Weekday()
		for _, t := range r.Tasks {
			hour, ok := t.Hour()
			if !ok {
				continue
			}
			byHour[hour] = append(byHour[hour], energySample(t))
			byWeekday[weekday] = append(byWeekday[weekday], completionEnergy(t))
		}
	}

	hourly := make([]hourEnergy, 24)
	values := make([]float64, 24)
	for h := range byHour {
		v := neutralEnergy
		if len(byHour[h]) > 0 {
			v = mean(byHour[h])
		}
		hourly[h] = hourEnergy{hour: h, value: v}
		values[h] = v
	}

	peaks := make([]hourEnergy, 24)
	copy(peaks, hourly)
	sort.SliceStable(peaks, func(i, j int) bool { return peaks[i].value > peaks[j].value })
	lows := make([]hourEnergy, 24)
	copy(lows, hourly)
	sort.SliceStable(lows, func(i, j int) bool { return lows[i].value < lows[j].value })

	peakHours := hoursOf(peaks[:3])
	weekdays := map[string]float64{}
	for _, day := range weekdayOrder {
		if samples := byWeekday[day]; len(samples) > 0 {
			weekdays[day] = mean(samples)
		}
	}

	return EnergyPatterns{
		PeakEnergyHours: peakHours,
		LowEnergyHours:  hoursOf(lows[:3]),
		EnergyStability: stability(values),
		CircadianType:   circadianTypeOf(peakHours),
		WeekdayPatterns: weekdays,
	}
}

func hoursOf(hs []hourEnergy) []int {
	out := make([]int, len(hs))
	for i, h := range hs {
		out[i] = h.hour
	}
	return out
}

func circadianTypeOf(peakHours []int) CircadianType {
	avg := meanInts(peakHours)
	switch {
	case avg <= 10:
		return MorningLark
	case avg >= 18:
		return NightOwl
	case avg > 10 && avg < 18:
		return MidDayPeak
	default:
		return VariablePattern
	}
}

// stability is the population standard deviation, exactly 0 when every
// value is the same.
func stability(values []float64) float64 {
	for _, v := range values[1:] {
		if v != values[0] {
			return populationStdDev(values)
		}
	}
	return 0
}
