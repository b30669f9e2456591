package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// File names of the three collections inside a data directory.
const (
	RoutinesFile = "daily_routines.json"
	WorkoutsFile = "workout_plans.json"
	DietsFile    = "diet_plans.json"
)

// ImportSchema is the combined import document. A data directory holding
// the three per-collection files loads into the same structure.
type ImportSchema struct {
	Routines []RoutineImport `json:"routines"`
	Workouts []WorkoutImport `json:"workouts"`
	Diets    []DietImport    `json:"diets"`
}

type RoutineImport struct {
	ID    string       `json:"id,omitempty"`
	Name  string       `json:"name"`
	Date  string       `json:"date"`
	Tasks []TaskImport `json:"tasks"`
	Notes string       `json:"notes,omitempty"`
}

type TaskImport struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	Category    string `json:"category,omitempty"`
	Completed   *bool  `json:"completed,omitempty"`
}

type WorkoutImport struct {
	ID                 string           `json:"id,omitempty"`
	Name               string           `json:"name"`
	Description        string           `json:"description,omitempty"`
	Exercises          []ExerciseImport `json:"exercises"`
	TargetMuscleGroups []string         `json:"target_muscle_groups"`
	Difficulty         string           `json:"difficulty"`
	EstimatedDuration  int              `json:"estimated_duration"`
}

type ExerciseImport struct {
	ID     string     `json:"id,omitempty"`
	Name   string     `json:"name"`
	Sets   int        `json:"sets"`
	Reps   FlexString `json:"reps"`
	Weight FlexString `json:"weight,omitempty"`
	Notes  string     `json:"notes,omitempty"`
}

type DietImport struct {
	ID            string       `json:"id,omitempty"`
	Name          string       `json:"name"`
	Description   string       `json:"description,omitempty"`
	Meals         []MealImport `json:"meals"`
	DailyCalories int          `json:"daily_calories"`
	DailyProtein  float64      `json:"daily_protein"`
	DailyCarbs    float64      `json:"daily_carbs"`
	DailyFat      float64      `json:"daily_fat"`
}

type MealImport struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Calories    int      `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Ingredients []string `json:"ingredients"`
	Notes       string   `json:"notes,omitempty"`
}

// FlexString accepts a JSON string or number. Hand-edited files write reps
// as 12 as often as "12-15".
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	if i, err := n.Int64(); err == nil {
		*f = FlexString(strconv.FormatInt(i, 10))
		return nil
	}
	*f = FlexString(n.String())
	return nil
}

// LoadImportSchema reads a combined import document.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}

// LoadImportDir reads whichever of the three collection files exist in dir.
// A directory with none of them is an error.
func LoadImportDir(dir string) (*ImportSchema, error) {
	var schema ImportSchema
	found := 0
	for name, dst := range map[string]any{
		RoutinesFile: &schema.Routines,
		WorkoutsFile: &schema.Workouts,
		DietsFile:    &schema.Diets,
	} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, dst); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		found++
	}
	if found == 0 {
		return nil, fmt.Errorf("no %s, %s or %s in %s", RoutinesFile, WorkoutsFile, DietsFile, dir)
	}
	return &schema, nil
}

// Load picks LoadImportDir or LoadImportSchema depending on what path is.
func Load(path string) (*ImportSchema, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return LoadImportDir(path)
	}
	return LoadImportSchema(path)
}
