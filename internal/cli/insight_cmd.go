package cli

import (
	"fmt"

	"github.com/alexanderramin/wellspring/internal/analytics"
	"github.com/alexanderramin/wellspring/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// engineCmd builds a command that renders one engine output.
func engineCmd[T any](r *runner, use, short string, get func(*analytics.Engine) T, format func(T) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := r.engine(cmd.Context())
			if err != nil {
				return err
			}
			v := get(eng)
			return r.emit(cmd, v, func() string { return format(v) })
		},
	}
}

func newProfileCmd(r *runner) *cobra.Command {
	return engineCmd(r, "profile", "Show your wellness profile",
		(*analytics.Engine).WellnessProfile, formatter.FormatProfile)
}

func newPatternsCmd(r *runner) *cobra.Command {
	return engineCmd(r, "patterns", "Show completion rates by category, time of day and weekday",
		(*analytics.Engine).CompletionPatterns, formatter.FormatPatterns)
}

func newInterventionsCmd(r *runner) *cobra.Command {
	return engineCmd(r, "interventions", "Show proactive interventions for risky trends",
		(*analytics.Engine).ProactiveInterventions, formatter.FormatInterventions)
}

func newCoachCmd(r *runner) *cobra.Command {
	return engineCmd(r, "coach", "Get coaching for the current hour",
		(*analytics.Engine).RealTimeCoaching, formatter.FormatCoaching)
}

func newReadinessCmd(r *runner) *cobra.Command {
	return engineCmd(r, "readiness", "Check whether today suits a workout",
		(*analytics.Engine).WorkoutReadiness, formatter.FormatReadiness)
}

func newMealTimingCmd(r *runner) *cobra.Command {
	return engineCmd(r, "meal-timing", "Suggest meal times for your energy pattern",
		(*analytics.Engine).AdaptiveMealTiming, formatter.FormatMealTiming)
}

func newSummaryCmd(r *runner) *cobra.Command {
	return engineCmd(r, "summary", "Count recommendations and show overall confidence",
		(*analytics.Engine).Summary, formatter.FormatSummary)
}

// recommendKinds maps each `recommend` argument to its engine call and title.
var recommendKinds = map[string]struct {
	title string
	get   func(*analytics.Engine) []analytics.Recommendation
}{
	"workouts": {"Workout Recommendations", (*analytics.Engine).RecommendWorkouts},
	"meals":    {"Meal Recommendations", (*analytics.Engine).RecommendMeals},
	"routine":  {"Routine Optimizations", (*analytics.Engine).SuggestRoutineOptimizations},
	"schedule": {"Scheduling Suggestions", (*analytics.Engine).SuggestOptimalScheduling},
}

func newRecommendCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:       "recommend {workouts|meals|routine|schedule}",
		Short:     "Recommend workouts, meals, routine changes or schedule slots",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"workouts", "meals", "routine", "schedule"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := recommendKinds[args[0]]
			if !ok {
				return fmt.Errorf("unknown recommendation kind %q (want workouts, meals, routine or schedule)", args[0])
			}
			eng, err := r.engine(cmd.Context())
			if err != nil {
				return err
			}
			recs := kind.get(eng)
			return r.emit(cmd, recs, func() string { return formatter.FormatRecommendations(kind.title, recs) })
		},
	}
}
