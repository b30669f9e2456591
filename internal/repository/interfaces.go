package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/wellspring/internal/domain"
)

// RoutineRepo stores daily routines. Dates are unique; Upsert replaces the
// routine's task list wholesale.
type RoutineRepo interface {
	Upsert(ctx context.Context, r *domain.DailyRoutine) error
	GetByID(ctx context.Context, id string) (*domain.DailyRoutine, error)
	GetByDate(ctx context.Context, date time.Time) (*domain.DailyRoutine, error)
	List(ctx context.Context) ([]domain.DailyRoutine, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.DailyRoutine, error)
	SetTaskCompleted(ctx context.Context, routineID, taskID string, completed bool) error
	Delete(ctx context.Context, id string) error
}

type WorkoutRepo interface {
	Upsert(ctx context.Context, w *domain.WorkoutPlan) error
	GetByID(ctx context.Context, id string) (*domain.WorkoutPlan, error)
	List(ctx context.Context) ([]domain.WorkoutPlan, error)
	Delete(ctx context.Context, id string) error
}

type DietRepo interface {
	Upsert(ctx context.Context, d *domain.DietPlan) error
	GetByID(ctx context.Context, id string) (*domain.DietPlan, error)
	List(ctx context.Context) ([]domain.DietPlan, error)
	Delete(ctx context.Context, id string) error
}
