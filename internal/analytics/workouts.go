package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/wellspring/internal/domain"
)

const (
	recentWindowDays    = 7
	painWindowDays      = 3
	defaultDaysSince    = 7
	workoutBaseScore    = 0.5
	workoutMinScore     = 0.5
	maxWorkoutResults   = 3
	wristsGroup         = "Wrists"
	shortWorkoutMinutes = 30
	longWorkoutMinutes  = 60
)

// workoutContext is the history-derived input shared by every workout score.
type workoutContext struct {
	daysSince    int
	recentGroups map[string]bool
	pain         PainLevel
}

// RecommendWorkouts scores every catalog workout and returns at most three
// scoring above 0.5, best first.
func (e *Engine) RecommendWorkouts() []Recommendation {
	recs := []Recommendation{}
	if len(e.history.Workouts) == 0 {
		return recs
	}

	in := workoutContext{
		daysSince:    e.daysSinceLastWorkout(),
		recentGroups: muscleGroupUsage(e.recentWorkouts(recentWindowDays)),
		pain:         e.PainLevel(),
	}
	bestTime := e.suggestWorkoutTime()

	for i := range e.history.Workouts {
		w := e.history.Workouts[i]
		score := scoreWorkout(w, in)
		if score <= workoutMinScore {
			continue
		}
		recs = append(recs, Recommendation{
			Type:     TypeWorkout,
			Title:    w.Name,
			Workout:  &w,
			Score:    score,
			Reason:   workoutReason(w, in),
			BestTime: bestTime,
			Priority: workoutPriority(score),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })
	if len(recs) > maxWorkoutResults {
		recs = recs[:maxWorkoutResults]
	}
	return recs
}

// recentWorkouts returns names of completed Exercise tasks in the window.
func (e *Engine) recentWorkouts(days int) []string {
	var names []string
	for _, r := range e.routinesSince(days) {
		for _, t := range r.Tasks {
			if t.Category == domain.CategoryExercise && t.Completed {
				names = append(names, t.Name)
			}
		}
	}
	return names
}

// lastWorkoutDate is the latest routine date holding a completed Exercise
// task.
func (e *Engine) lastWorkoutDate() (time.Time, bool) {
	var last time.Time
	found := false
	for _, r := range e.history.Routines {
		for _, t := range r.Tasks {
			if t.Category == domain.CategoryExercise && t.Completed {
				if !found || r.Date.After(last) {
					last = r.Date
					found = true
				}
				break
			}
		}
	}
	return last, found
}

func (e *Engine) daysSinceLastWorkout() int {
	last, ok := e.lastWorkoutDate()
	if !ok {
		return defaultDaysSince
	}
	return domain.DaysBetween(last, e.today)
}

// PainLevel classifies the share of pain-related tasks over the last three
// days.
func (e *Engine) PainLevel() PainLevel {
	var total, painful int
	for _, r := range e.routinesSince(painWindowDays) {
		for _, t := range r.Tasks {
			total++
			if containsAny(t.Name, painLevelKeywords) {
				painful++
			}
		}
	}
	if total == 0 {
		return PainUnknown
	}
	switch ratio := float64(painful) / float64(total); {
	case ratio > 0.3:
		return PainHigh
	case ratio > 0.15:
		return PainModerate
	default:
		return PainLow
	}
}

func muscleGroupUsage(names []string) map[string]bool {
	used := map[string]bool{}
	for _, name := range names {
		for _, g := range matchGroups(name, muscleGroupKeywords) {
			used[g] = true
		}
	}
	return used
}

// overlap counts distinct target groups worked recently.
func overlap(w domain.WorkoutPlan, used map[string]bool) int {
	seen := map[string]bool{}
	for _, g := range w.TargetMuscleGroups {
		if used[g] && !seen[g] {
			seen[g] = true
		}
	}
	return len(seen)
}

func scoreWorkout(w domain.WorkoutPlan, in workoutContext) float64 {
	score := workoutBaseScore

	switch in.daysSince {
	case 0:
		score *= 0.2
	case 1:
		score *= 0.4
	}

	switch in.pain {
	case PainHigh:
		if w.Targets(wristsGroup) || w.Difficulty == domain.DifficultyBeginner {
			score *= 1.3
		} else {
			score *= 0.3
		}
	case PainModerate:
		if w.Difficulty == domain.DifficultyAdvanced {
			score *= 0.7
		}
	}

	switch overlap(w, in.recentGroups) {
	case 0:
		score *= 1.4
	case 1:
		score *= 1.1
	default:
		score *= 0.8
	}

	switch {
	case w.EstimatedDuration <= shortWorkoutMinutes:
		score *= 1.2
	case w.EstimatedDuration > longWorkoutMinutes:
		score *= 0.9
	}

	return clamp(score, 0, 1)
}

func workoutReason(w domain.WorkoutPlan, in workoutContext) string {
	var reasons []string
	if in.daysSince >= 2 {
		reasons = append(reasons, fmt.Sprintf("%d days since last workout", in.daysSince))
	}
	if in.pain == PainHigh && w.Targets(wristsGroup) {
		reasons = append(reasons, "includes wrist-friendly exercises")
	}
	if overlap(w, in.recentGroups) == 0 {
		reasons = append(reasons, "targets fresh muscle groups")
	}
	if w.EstimatedDuration <= shortWorkoutMinutes {
		reasons = append(reasons, "quick and manageable duration")
	}
	if w.Difficulty == domain.DifficultyBeginner && (in.pain == PainHigh || in.pain == PainModerate) {
		reasons = append(reasons, "gentle intensity for recovery")
	}
	if len(reasons) == 0 {
		return "Good fit for your routine"
	}
	return "Perfect because it " + strings.Join(reasons, ", ")
}

func workoutPriority(score float64) Priority {
	switch {
	case score > 0.8:
		return PriorityHigh
	case score > 0.7:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// suggestWorkoutTime maps the best-performing time period to a clock time.
func (e *Engine) suggestWorkoutTime() string {
	rates := e.CompletionPatterns().periodRates(1)
	if len(rates) == 0 {
		return defaultWorkoutTime
	}
	best, _ := bestAndWorst(rates)
	return representativeTimes[TimePeriod(best.Key)]
}
