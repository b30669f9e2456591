package service

import (
	"context"
	"time"

	"github.com/alexanderramin/wellspring/internal/analytics"
	"github.com/alexanderramin/wellspring/internal/domain"
	"github.com/alexanderramin/wellspring/internal/importer"
)

// HistorySource supplies the snapshot an analytics.Engine is built from.
type HistorySource interface {
	LoadHistory(ctx context.Context) (analytics.History, error)
}

// InsightService builds engines over the stored history. Each call loads a
// fresh snapshot, so results always reflect the latest writes.
type InsightService interface {
	Engine(ctx context.Context, now time.Time) (*analytics.Engine, error)
	Report(ctx context.Context, now time.Time) (*Report, error)
}

type RoutineService interface {
	Get(ctx context.Context, date time.Time) (*domain.DailyRoutine, error)
	List(ctx context.Context, from, to time.Time) ([]domain.DailyRoutine, error)
	LogTask(ctx context.Context, date time.Time, task domain.RoutineTask) (*domain.DailyRoutine, error)
	SetTaskCompleted(ctx context.Context, date time.Time, ref string, completed bool) (*domain.RoutineTask, error)
	ToggleTask(ctx context.Context, date time.Time, ref string) (*domain.RoutineTask, error)
	Delete(ctx context.Context, date time.Time) error
}

type ImportService interface {
	Import(ctx context.Context, path string) (*ImportResult, error)
	ImportSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}

type ExportService interface {
	// Export writes a combined JSON file, or the three collection files
	// when asDir is set.
	Export(ctx context.Context, path string, asDir bool) (*ExportResult, error)
}

type ImportResult struct {
	Routines         int `json:"routines"`
	ReplacedRoutines int `json:"replaced_routines"`
	Workouts         int `json:"workouts"`
	Diets            int `json:"diets"`
}

type ExportResult struct {
	Path     string `json:"path"`
	Routines int    `json:"routines"`
	Workouts int    `json:"workouts"`
	Diets    int    `json:"diets"`
}

// Report is every engine output for one instant, as rendered by the report
// command and the dashboard.
type Report struct {
	GeneratedAt   time.Time                    `json:"generated_at"`
	RoutineCount  int                          `json:"routine_count"`
	Profile       analytics.WellnessProfile    `json:"profile"`
	Patterns      analytics.CompletionPatterns `json:"patterns"`
	Workouts      []analytics.Recommendation   `json:"workouts"`
	Meals         []analytics.Recommendation   `json:"meals"`
	RoutineTips   []analytics.Recommendation   `json:"routine_tips"`
	Scheduling    []analytics.Recommendation   `json:"scheduling"`
	Interventions []analytics.Intervention     `json:"interventions"`
	Coaching      analytics.Coaching           `json:"coaching"`
	Readiness     analytics.WorkoutReadiness   `json:"readiness"`
	MealTiming    []analytics.MealTiming       `json:"meal_timing"`
	Summary       analytics.Summary            `json:"summary"`
}
