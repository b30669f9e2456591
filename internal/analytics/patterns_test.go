package analytics

import (
	"testing"

	"github.com/alexanderramin/wellspring/internal/domain"
	tu "github.com/alexanderramin/wellspring/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// alternatingWeek is seven consecutive days, one 08:00 Work task each,
// completed on the first day and every other day after.
func alternatingWeek() []domain.DailyRoutine {
	dates := []string{"2025-03-10", "2025-03-11", "2025-03-12", "2025-03-13", "2025-03-14", "2025-03-15", "2025-03-16"}
	routines := make([]domain.DailyRoutine, len(dates))
	for i, d := range dates {
		opts := []tu.TaskOption{tu.At("08:00"), tu.InCategory(domain.CategoryWork), tu.Lasting(60)}
		if i%2 == 0 {
			opts = append(opts, tu.Done())
		}
		routines[i] = tu.NewTestRoutine(d, tu.NewTestTask("Deep work", opts...))
	}
	return routines
}

func TestTimePeriodOf(t *testing.T) {
	tests := []struct {
		hour int
		want TimePeriod
	}{
		{0, PeriodNight},
		{4, PeriodNight},
		{5, PeriodEarlyMorning},
		{8, PeriodEarlyMorning},
		{9, PeriodMorning},
		{11, PeriodMorning},
		{12, PeriodAfternoon},
		{16, PeriodAfternoon},
		{17, PeriodEvening},
		{20, PeriodEvening},
		{21, PeriodNight},
		{23, PeriodNight},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TimePeriodOf(tt.hour), "hour %d", tt.hour)
	}
}

func TestMealSlotOf(t *testing.T) {
	assert.Equal(t, SlotBreakfast, MealSlotOf(5))
	assert.Equal(t, SlotBreakfast, MealSlotOf(9))
	assert.Equal(t, SlotSnack, MealSlotOf(10))
	assert.Equal(t, SlotLunch, MealSlotOf(11))
	assert.Equal(t, SlotLunch, MealSlotOf(14))
	assert.Equal(t, SlotSnack, MealSlotOf(15))
	assert.Equal(t, SlotDinner, MealSlotOf(17))
	assert.Equal(t, SlotDinner, MealSlotOf(20))
	assert.Equal(t, SlotSnack, MealSlotOf(22))
}

func TestCompletionPatterns_AlternatingWeek(t *testing.T) {
	p := CompletionPatternsOf(alternatingWeek())

	assert.InDelta(t, 4.0/7.0, p.TotalCompletionRate, 1e-12)
	assert.Equal(t, []bool{true, false, true, false, true, false, true}, p.BestCategories[domain.CategoryWork])
	assert.Len(t, p.BestTimes[PeriodEarlyMorning], 7)
	assert.Equal(t, []int{60, 60, 60, 60}, p.OptimalDurations[domain.CategoryWork])
	assert.Equal(t, []bool{true}, p.CompletionByWeekday["Monday"])
	assert.Equal(t, []bool{false}, p.CompletionByWeekday["Tuesday"])
	assert.Equal(t, []bool{true}, p.CompletionByWeekday["Sunday"])
}

func TestCompletionPatterns_RateIsExactRatio(t *testing.T) {
	routines := []domain.DailyRoutine{
		tu.NewTestRoutine("2025-03-10",
			tu.NewTestTask("a", tu.Done()),
			tu.NewTestTask("b"),
			tu.NewTestTask("c", tu.Done()),
		),
		tu.NewTestRoutine("2025-03-11", tu.NewTestTask("d")),
		tu.NewTestRoutine("2025-03-12"),
	}

	p := CompletionPatternsOf(routines)

	assert.Equal(t, 2.0/4.0, p.TotalCompletionRate)
}

func TestCompletionPatterns_EmptyHistory(t *testing.T) {
	p := CompletionPatternsOf(nil)

	assert.Zero(t, p.TotalCompletionRate)
	assert.NotNil(t, p.BestCategories)
	assert.Empty(t, p.BestTimes)
}

func TestCompletionPatterns_MalformedTimeSkipsPeriodOnly(t *testing.T) {
	routines := []domain.DailyRoutine{
		tu.NewTestRoutine("2025-03-10",
			tu.NewTestTask("no clock", tu.At("soon"), tu.Done()),
			tu.NewTestTask("late", tu.At("25:00")),
			tu.NewTestTask("ok", tu.At("13:15"), tu.Done()),
		),
	}

	p := CompletionPatternsOf(routines)

	require.Len(t, p.BestTimes, 1)
	assert.Equal(t, []bool{true}, p.BestTimes[PeriodAfternoon])
	assert.Len(t, p.BestCategories[domain.CategoryWork], 3)
	assert.InDelta(t, 2.0/3.0, p.TotalCompletionRate, 1e-12)
}

func TestBestAndWorst_FirstWinsTies(t *testing.T) {
	best, worst := bestAndWorst([]rate{
		{Key: "a", Value: 0.5},
		{Key: "b", Value: 0.9},
		{Key: "c", Value: 0.9},
		{Key: "d", Value: 0.1},
		{Key: "e", Value: 0.1},
	})

	assert.Equal(t, "b", best.Key)
	assert.Equal(t, "d", worst.Key)
}

func TestMatchGroups_MultipleGroups(t *testing.T) {
	assert.Equal(t, []string{"Chest", "Arms"}, matchGroups("Push-ups and bicep curls", muscleGroupKeywords))
	assert.Equal(t, []string{"Wrists"}, matchGroups("Wrist relief routine", muscleGroupKeywords))
	assert.Empty(t, matchGroups("Yoga", muscleGroupKeywords))
}
