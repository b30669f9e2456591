package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/wellspring/internal/domain"
)

// ValidateImportSchema checks the document before conversion and returns
// every problem found. Unparsable task times are not errors; they are kept
// verbatim and skipped by time-based statistics.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error
	errs = append(errs, validateRoutines(schema.Routines)...)
	errs = append(errs, validateWorkouts(schema.Workouts)...)
	errs = append(errs, validateDiets(schema.Diets)...)
	return errs
}

func validateRoutines(routines []RoutineImport) []error {
	var errs []error
	dates := make(map[string]int)
	ids := make(map[string]bool)

	for i, r := range routines {
		prefix := fmt.Sprintf("routines[%d]", i)
		if r.Date == "" {
			errs = append(errs, fmt.Errorf("%s.date is required", prefix))
		} else if _, err := time.Parse(domain.DateLayout, r.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, r.Date))
		} else if prev, dup := dates[r.Date]; dup {
			errs = append(errs, fmt.Errorf("%s.date %s duplicates routines[%d]", prefix, r.Date, prev))
		} else {
			dates[r.Date] = i
		}
		if r.ID != "" {
			if ids[r.ID] {
				errs = append(errs, fmt.Errorf("%s.id %q is not unique", prefix, r.ID))
			}
			ids[r.ID] = true
		}

		taskIDs := make(map[string]bool)
		for j, t := range r.Tasks {
			tp := fmt.Sprintf("%s.tasks[%d]", prefix, j)
			if t.Name == "" {
				errs = append(errs, fmt.Errorf("%s.name is required", tp))
			}
			if t.Duration < 0 {
				errs = append(errs, fmt.Errorf("%s.duration must be non-negative", tp))
			}
			if t.ID != "" {
				if taskIDs[t.ID] {
					errs = append(errs, fmt.Errorf("%s.id %q is not unique within the routine", tp, t.ID))
				}
				taskIDs[t.ID] = true
			}
		}
	}
	return errs
}

func validateWorkouts(workouts []WorkoutImport) []error {
	var errs []error
	ids := make(map[string]bool)

	for i, w := range workouts {
		prefix := fmt.Sprintf("workouts[%d]", i)
		if w.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if w.Difficulty != "" && !domain.ValidDifficulties[w.Difficulty] {
			errs = append(errs, fmt.Errorf("%s.difficulty: invalid value %q", prefix, w.Difficulty))
		}
		if w.EstimatedDuration < 0 {
			errs = append(errs, fmt.Errorf("%s.estimated_duration must be non-negative", prefix))
		}
		if w.ID != "" {
			if ids[w.ID] {
				errs = append(errs, fmt.Errorf("%s.id %q is not unique", prefix, w.ID))
			}
			ids[w.ID] = true
		}
		exIDs := make(map[string]bool)
		for j, e := range w.Exercises {
			ep := fmt.Sprintf("%s.exercises[%d]", prefix, j)
			if e.Name == "" {
				errs = append(errs, fmt.Errorf("%s.name is required", ep))
			}
			if e.Sets < 0 {
				errs = append(errs, fmt.Errorf("%s.sets must be non-negative", ep))
			}
			if e.ID != "" {
				if exIDs[e.ID] {
					errs = append(errs, fmt.Errorf("%s.id %q is not unique within the workout", ep, e.ID))
				}
				exIDs[e.ID] = true
			}
		}
	}
	return errs
}

func validateDiets(diets []DietImport) []error {
	var errs []error
	ids := make(map[string]bool)

	for i, d := range diets {
		prefix := fmt.Sprintf("diets[%d]", i)
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if d.DailyCalories < 0 || d.DailyProtein < 0 || d.DailyCarbs < 0 || d.DailyFat < 0 {
			errs = append(errs, fmt.Errorf("%s: daily totals must be non-negative", prefix))
		}
		if d.ID != "" {
			if ids[d.ID] {
				errs = append(errs, fmt.Errorf("%s.id %q is not unique", prefix, d.ID))
			}
			ids[d.ID] = true
		}
		mealIDs := make(map[string]bool)
		for j, m := range d.Meals {
			mp := fmt.Sprintf("%s.meals[%d]", prefix, j)
			if m.Name == "" {
				errs = append(errs, fmt.Errorf("%s.name is required", mp))
			}
			if m.Calories < 0 || m.Protein < 0 || m.Carbs < 0 || m.Fat < 0 {
				errs = append(errs, fmt.Errorf("%s: calories and macros must be non-negative", mp))
			}
			if m.ID != "" {
				if mealIDs[m.ID] {
					errs = append(errs, fmt.Errorf("%s.id %q is not unique within the diet", mp, m.ID))
				}
				mealIDs[m.ID] = true
			}
		}
	}
	return errs
}
