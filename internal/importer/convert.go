package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/wellspring/internal/domain"
	"github.com/google/uuid"
)

// Bundle holds converted domain objects ready for persistence.
type Bundle struct {
	Routines []domain.DailyRoutine
	Workouts []domain.WorkoutPlan
	Diets    []domain.DietPlan
}

// Convert normalises a validated ImportSchema: missing IDs get a UUID,
// missing completion flags become false, blank categories become Other and
// blank difficulties Beginner. Call ValidateImportSchema first.
func Convert(schema *ImportSchema) (*Bundle, error) {
	now := time.Now().UTC()
	b := &Bundle{
		Routines: make([]domain.DailyRoutine, 0, len(schema.Routines)),
		Workouts: make([]domain.WorkoutPlan, 0, len(schema.Workouts)),
		Diets:    make([]domain.DietPlan, 0, len(schema.Diets)),
	}

	for _, r := range schema.Routines {
		date, err := time.Parse(domain.DateLayout, r.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing routine date %q: %w", r.Date, err)
		}
		tasks := make([]domain.RoutineTask, 0, len(r.Tasks))
		for _, t := range r.Tasks {
			tasks = append(tasks, domain.RoutineTask{
				ID:          newID(t.ID),
				Name:        t.Name,
				Description: t.Description,
				Time:        t.Time,
				Duration:    t.Duration,
				Category:    domain.Coalesce(t.Category, domain.CategoryOther),
				Completed:   domain.FromPtr(false, t.Completed),
			})
		}
		b.Routines = append(b.Routines, domain.DailyRoutine{
			ID:        newID(r.ID),
			Name:      domain.Coalesce(r.Name, "Routine for "+r.Date),
			Date:      date,
			Tasks:     tasks,
			Notes:     r.Notes,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	for _, w := range schema.Workouts {
		exercises := make([]domain.Exercise, 0, len(w.Exercises))
		for _, e := range w.Exercises {
			exercises = append(exercises, domain.Exercise{
				ID:     newID(e.ID),
				Name:   e.Name,
				Sets:   e.Sets,
				Reps:   string(e.Reps),
				Weight: string(e.Weight),
				Notes:  e.Notes,
			})
		}
		groups := w.TargetMuscleGroups
		if groups == nil {
			groups = []string{}
		}
		b.Workouts = append(b.Workouts, domain.WorkoutPlan{
			ID:                 newID(w.ID),
			Name:               w.Name,
			Description:        w.Description,
			Difficulty:         domain.Difficulty(domain.Coalesce(w.Difficulty, string(domain.DifficultyBeginner))),
			TargetMuscleGroups: groups,
			EstimatedDuration:  w.EstimatedDuration,
			Exercises:          exercises,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
	}

	for _, d := range schema.Diets {
		b.Diets = append(b.Diets, convertDiet(d, now))
	}
	return b, nil
}

// convertDiet fills zero daily totals from the meal sums.
func convertDiet(d DietImport, now time.Time) domain.DietPlan {
	plan := domain.DietPlan{
		ID:            newID(d.ID),
		Name:          d.Name,
		Description:   d.Description,
		Meals:         make([]domain.Meal, 0, len(d.Meals)),
		DailyCalories: d.DailyCalories,
		DailyProtein:  d.DailyProtein,
		DailyCarbs:    d.DailyCarbs,
		DailyFat:      d.DailyFat,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	var cal int
	var protein, carbs, fat float64
	for _, m := range d.Meals {
		ingredients := m.Ingredients
		if ingredients == nil {
			ingredients = []string{}
		}
		plan.Meals = append(plan.Meals, domain.Meal{
			ID:          newID(m.ID),
			Name:        m.Name,
			Calories:    m.Calories,
			Protein:     m.Protein,
			Carbs:       m.Carbs,
			Fat:         m.Fat,
			Ingredients: ingredients,
			Notes:       m.Notes,
		})
		cal += m.Calories
		protein += m.Protein
		carbs += m.Carbs
		fat += m.Fat
	}
	plan.DailyCalories = domain.Coalesce(plan.DailyCalories, cal)
	plan.DailyProtein = domain.Coalesce(plan.DailyProtein, protein)
	plan.DailyCarbs = domain.Coalesce(plan.DailyCarbs, carbs)
	plan.DailyFat = domain.Coalesce(plan.DailyFat, fat)
	return plan
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}
