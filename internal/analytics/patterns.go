package analytics

import (
	"sort"
	"time"

	"github.com/alexanderramin/wellspring/internal/domain"
)

// weekdayOrder is Monday-first, used wherever weekdays are ranked.
var weekdayOrder = []string{
	time.Monday.String(), time.Tuesday.String(), time.Wednesday.String(),
	time.Thursday.String(), time.Friday.String(), time.Saturday.String(),
	time.Sunday.String(),
}

// CompletionPatternsOf buckets every task of every routine. Tasks with an
// unparsable time are left out of BestTimes only.
func CompletionPatternsOf(routines []domain.DailyRoutine) CompletionPatterns {
	p := CompletionPatterns{
		BestCategories:      map[string][]bool{},
		BestTimes:           map[TimePeriod][]bool{},
		OptimalDurations:    map[string][]int{},
		CompletionByWeekday: map[string][]bool{},
	}

	total, completed := 0, 0
	for _, r := range routines {
		weekday := r.Weekday()
		for _, t := range r.Tasks {
			total++
			if t.Completed {
				completed++
				p.OptimalDurations[t.Category] = append(p.OptimalDurations[t.Category], t.Duration)
			}
			p.BestCategories[t.Category] = append(p.BestCategories[t.Category], t.Completed)
			if hour, ok := t.Hour(); ok {
				period := TimePeriodOf(hour)
				p.BestTimes[period] = append(p.BestTimes[period], t.Completed)
			}
			p.CompletionByWeekday[weekday] = append(p.CompletionByWeekday[weekday], t.Completed)
		}
	}
	if total > 0 {
		p.TotalCompletionRate = float64(completed) / float64(total)
	}
	return p
}

// rate is the success rate of one bucket.
type rate struct {
	Key     string
	Value   float64
	Samples int
}

// rankRates turns buckets into rates, visiting keys in the given order and
// skipping buckets with fewer than minSamples entries.
func rankRates(buckets map[string][]bool, order []string, minSamples int) []rate {
	var out []rate
	for _, k := range order {
		bs := buckets[k]
		if len(bs) == 0 || len(bs) < minSamples {
			continue
		}
		out = append(out, rate{Key: k, Value: successRate(bs), Samples: len(bs)})
	}
	return out
}

// bestAndWorst returns the first highest and first lowest rate.
func bestAndWorst(rates []rate) (best, worst rate) {
	best, worst = rates[0], rates[0]
	for _, r := range rates[1:] {
		if r.Value > best.Value {
			best = r
		}
		if r.Value < worst.Value {
			worst = r
		}
	}
	return best, worst
}

func (p CompletionPatterns) categoryRates() []rate {
	return rankRates(p.BestCategories, sortedKeys(p.BestCategories), 1)
}

func (p CompletionPatterns) periodRates(minSamples int) []rate {
	buckets := make(map[string][]bool, len(p.BestTimes))
	order := make([]string, 0, len(timePeriods))
	for _, tp := range timePeriods {
		buckets[string(tp)] = p.BestTimes[tp]
		order = append(order, string(tp))
	}
	return rankRates(buckets, order, minSamples)
}

func (p CompletionPatterns) weekdayRates(minSamples int) []rate {
	return rankRates(p.CompletionByWeekday, weekdayOrder, minSamples)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
