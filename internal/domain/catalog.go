package domain

import "time"

type Exercise struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Sets   int    `json:"sets"`
	Reps   string `json:"reps"`            // "12", "12-15" or "30 seconds"
	Weight string `json:"weight"`
	Notes  string `json:"notes,omitempty"`
}

// WorkoutPlan is a catalog entry scored by the workout recommender.
type WorkoutPlan struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description,omitempty"`
	Difficulty         Difficulty `json:"difficulty"`
	TargetMuscleGroups []string   `json:"target_muscle_groups"`
	EstimatedDuration  int        `json:"estimated_duration"`    // minutes
	Exercises          []Exercise `json:"exercises"`
	CreatedAt          time.Time  `json:"created_at,omitempty"`
	UpdatedAt          time.Time  `json:"updated_at,omitempty"`
}

// Targets reports whether the plan lists the given muscle group.
func (w WorkoutPlan) Targets(group string) bool {
	for _, g := range w.TargetMuscleGroups {
		if g == group {
			return true
		}
	}
	return false
}

type Meal struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Calories    int      `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Ingredients []string `json:"ingredients"`
	Notes       string   `json:"notes,omitempty"`
}

type DietPlan struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Meals         []Meal    `json:"meals"`
	DailyCalories int       `json:"daily_calories"`
	DailyProtein  float64   `json:"daily_protein"`
	DailyCarbs    float64   `json:"daily_carbs"`
	DailyFat      float64   `json:"daily_fat"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}
