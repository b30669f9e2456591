package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/wellspring/internal/domain"
)

// FromBundle converts stored objects back into the import shape so an
// export can be re-imported unchanged.
func FromBundle(b *Bundle) *ImportSchema {
	s := &ImportSchema{
		Routines: make([]RoutineImport, 0, len(b.Routines)),
		Workouts: make([]WorkoutImport, 0, len(b.Workouts)),
		Diets:    make([]DietImport, 0, len(b.Diets)),
	}
	for _, r := range b.Routines {
		tasks := make([]TaskImport, 0, len(r.Tasks))
		for _, t := range r.Tasks {
			completed := t.Completed
			tasks = append(tasks, TaskImport{
				ID:          t.ID,
				Name:        t.Name,
				Description: t.Description,
				Time:        t.Time,
				Duration:    t.Duration,
				Category:    t.Category,
				Completed:   &completed,
			})
		}
		s.Routines = append(s.Routines, RoutineImport{
			ID: r.ID, Name: r.Name, Date: r.DateKey(), Tasks: tasks, Notes: r.Notes,
		})
	}
	for _, w := range b.Workouts {
		exercises := make([]ExerciseImport, 0, len(w.Exercises))
		for _, e := range w.Exercises {
			exercises = append(exercises, ExerciseImport{
				ID: e.ID, Name: e.Name, Sets: e.Sets,
				Reps: FlexString(e.Reps), Weight: FlexString(e.Weight), Notes: e.Notes,
			})
		}
		s.Workouts = append(s.Workouts, WorkoutImport{
			ID:                 w.ID,
			Name:               w.Name,
			Description:        w.Description,
			Exercises:          exercises,
			TargetMuscleGroups: w.TargetMuscleGroups,
			Difficulty:         string(w.Difficulty),
			EstimatedDuration:  w.EstimatedDuration,
		})
	}
	for _, d := range b.Diets {
		s.Diets = append(s.Diets, exportDiet(d))
	}
	return s
}

func exportDiet(d domain.DietPlan) DietImport {
	meals := make([]MealImport, 0, len(d.Meals))
	for _, m := range d.Meals {
		meals = append(meals, MealImport{
			ID: m.ID, Name: m.Name, Calories: m.Calories,
			Protein: m.Protein, Carbs: m.Carbs, Fat: m.Fat,
			Ingredients: m.Ingredients, Notes: m.Notes,
		})
	}
	return DietImport{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		Meals:         meals,
		DailyCalories: d.DailyCalories,
		DailyProtein:  d.DailyProtein,
		DailyCarbs:    d.DailyCarbs,
		DailyFat:      d.DailyFat,
	}
}

// WriteFile writes the combined document as indented JSON.
func (s *ImportSchema) WriteFile(path string) error {
	return writeJSON(path, s)
}

// WriteDir writes the three per-collection files into dir.
func (s *ImportSchema) WriteDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	if err := writeJSON(filepath.Join(dir, RoutinesFile), s.Routines); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, WorkoutsFile), s.Workouts); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, DietsFile), s.Diets)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
