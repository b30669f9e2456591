package service

import (
	"context"
	"time"

	"github.com/alexanderramin/wellspring/internal/analytics"
)

type insightService struct {
	history  HistorySource
	observer UseCaseObserver
}

func NewInsightService(history HistorySource, observers ...UseCaseObserver) InsightService {
	return &insightService{history: history, observer: useCaseObserverOrNoop(observers)}
}

func (s *insightService) Engine(ctx context.Context, now time.Time) (eng *analytics.Engine, err error) {
	fields := map[string]any{"now": now.Format(time.RFC3339)}
	done := track(ctx, s.observer, "build-engine", fields)
	defer func() { done(err) }()

	h, err := s.history.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}
	fields["routines"] = len(h.Routines)
	fields["workouts"] = len(h.Workouts)
	fields["diets"] = len(h.Diets)
	return analytics.NewEngine(h, now), nil
}

func (s *insightService) Report(ctx context.Context, now time.Time) (r *Report, err error) {
	fields := map[string]any{}
	done := track(ctx, s.observer, "wellness-report", fields)
	defer func() { done(err) }()

	h, err := s.history.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}
	r = BuildReport(analytics.NewEngine(h, now), len(h.Routines))
	fields["recommendations"] = r.Summary.Total
	return r, nil
}

// BuildReport collects every engine output. The profile is computed once
// and shared by the later calls.
func BuildReport(eng *analytics.Engine, routineCount int) *Report {
	return &Report{
		GeneratedAt:   eng.Now(),
		RoutineCount:  routineCount,
		Profile:       eng.WellnessProfile(),
		Patterns:      eng.CompletionPatterns(),
		Workouts:      eng.RecommendWorkouts(),
		Meals:         eng.RecommendMeals(),
		RoutineTips:   eng.SuggestRoutineOptimizations(),
		Scheduling:    eng.SuggestOptimalScheduling(),
		Interventions: eng.ProactiveInterventions(),
		Coaching:      eng.RealTimeCoaching(),
		Readiness:     eng.WorkoutReadiness(),
		MealTiming:    eng.AdaptiveMealTiming(),
		Summary:       eng.Summary(),
	}
}
