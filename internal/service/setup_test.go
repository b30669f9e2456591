package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/wellspring/internal/db"
	"github.com/alexanderramin/wellspring/internal/domain"
	"github.com/alexanderramin/wellspring/internal/repository"
	"github.com/alexanderramin/wellspring/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)

type fixture struct {
	conn     *sql.DB
	uow      db.UnitOfWork
	routines *repository.SQLiteRoutineRepo
	workouts *repository.SQLiteWorkoutRepo
	diets    *repository.SQLiteDietRepo
	history  HistorySource
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	conn := testutil.NewTestDB(t)
	f := &fixture{
		conn:     conn,
		uow:      testutil.NewTestUoW(conn),
		routines: repository.NewSQLiteRoutineRepo(conn),
		workouts: repository.NewSQLiteWorkoutRepo(conn),
		diets:    repository.NewSQLiteDietRepo(conn),
	}
	f.history = NewHistorySource(f.routines, f.workouts, f.diets)
	return f
}

func (f *fixture) seedRoutine(t *testing.T, rt domain.DailyRoutine) domain.DailyRoutine {
	t.Helper()
	require.NoError(t, f.routines.Upsert(context.Background(), &rt))
	return rt
}

func (f *fixture) seedWorkout(t *testing.T, w domain.WorkoutPlan) {
	t.Helper()
	require.NoError(t, f.workouts.Upsert(context.Background(), &w))
}

func (f *fixture) seedDiet(t *testing.T, d domain.DietPlan) {
	t.Helper()
	require.NoError(t, f.diets.Upsert(context.Background(), &d))
}

// recordingObserver keeps every event for assertions.
type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}
