package testutil

import (
	"time"

	"github.com/alexanderramin/wellspring/internal/domain"
	"github.com/google/uuid"
)

// Date parses a YYYY-MM-DD fixture date and panics on malformed input.
func Date(s string) time.Time {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

// Task options
type TaskOption func(*domain.RoutineTask)

func At(hhmm string) TaskOption {
	return func(t *domain.RoutineTask) {
		t.Time = hhmm
	}
}

func InCategory(c string) TaskOption {
	return func(t *domain.RoutineTask) {
		t.Category = c
	}
}

func Lasting(minutes int) TaskOption {
	return func(t *domain.RoutineTask) {
		t.Duration = minutes
	}
}

func Done() TaskOption {
	return func(t *domain.RoutineTask) {
		t.Completed = true
	}
}

func WithTaskDescription(d string) TaskOption {
	return func(t *domain.RoutineTask) {
		t.Description = d
	}
}

// NewTestTask defaults to a pending 30 minute Work task at 08:00.
func NewTestTask(name string, opts ...TaskOption) domain.RoutineTask {
	t := domain.RoutineTask{
		ID:       uuid.New().String(),
		Name:     name,
		Time:     "08:00",
		Duration: 30,
		Category: domain.CategoryWork,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// NewTestRoutine builds the routine for a YYYY-MM-DD date.
func NewTestRoutine(date string, tasks ...domain.RoutineTask) domain.DailyRoutine {
	now := time.Now().UTC()
	return domain.DailyRoutine{
		ID:        uuid.New().String(),
		Name:      "Routine " + date,
		Date:      Date(date),
		Tasks:     tasks,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Workout options
type WorkoutOption func(*domain.WorkoutPlan)

func WithDifficulty(d domain.Difficulty) WorkoutOption {
	return func(w *domain.WorkoutPlan) {
		w.Difficulty = d
	}
}

func Targeting(groups ...string) WorkoutOption {
	return func(w *domain.WorkoutPlan) {
		w.TargetMuscleGroups = groups
	}
}

func WithEstimatedDuration(minutes int) WorkoutOption {
	return func(w *domain.WorkoutPlan) {
		w.EstimatedDuration = minutes
	}
}

func WithExercises(ex ...domain.Exercise) WorkoutOption {
	return func(w *domain.WorkoutPlan) {
		w.Exercises = ex
	}
}

// NewTestWorkout defaults to a 45 minute Intermediate Core workout.
func NewTestWorkout(name string, opts ...WorkoutOption) domain.WorkoutPlan {
	now := time.Now().UTC()
	w := domain.WorkoutPlan{
		ID:                 uuid.New().String(),
		Name:               name,
		Difficulty:         domain.DifficultyIntermediate,
		TargetMuscleGroups: []string{"Core"},
		EstimatedDuration:  45,
		Exercises: []domain.Exercise{
			{ID: uuid.New().String(), Name: "Plank", Sets: 3, Reps: "30 seconds", Weight: "Bodyweight"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// Meal options
type MealOption func(*domain.Meal)

func WithIngredients(ings ...string) MealOption {
	return func(m *domain.Meal) {
		m.Ingredients = ings
	}
}

func WithMacros(protein, carbs, fat float64) MealOption {
	return func(m *domain.Meal) {
		m.Protein = protein
		m.Carbs = carbs
		m.Fat = fat
	}
}

func NewTestMeal(name string, calories int, opts ...MealOption) domain.Meal {
	m := domain.Meal{
		ID:       uuid.New().String(),
		Name:     name,
		Calories: calories,
		Protein:  20,
		Carbs:    40,
		Fat:      10,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// NewTestDiet wraps meals in a diet plan whose daily totals are their sums.
func NewTestDiet(name string, meals ...domain.Meal) domain.DietPlan {
	now := time.Now().UTC()
	d := domain.DietPlan{
		ID:        uuid.New().String(),
		Name:      name,
		Meals:     meals,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, m := range meals {
		d.DailyCalories += m.Calories
		d.DailyProtein += m.Protein
		d.DailyCarbs += m.Carbs
		d.DailyFat += m.Fat
	}
	return d
}
