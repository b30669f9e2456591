package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/wellspring/internal/domain"
	"github.com/alexanderramin/wellspring/internal/repository"
	"github.com/alexanderramin/wellspring/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutineService_LogTaskCreatesRoutine(t *testing.T) {
	f := newFixture(t)
	svc := NewRoutineService(f.routines, f.uow)
	ctx := context.Background()
	day := testutil.Date("2025-03-20")

	rt, err := svc.LogTask(ctx, day, domain.RoutineTask{Name: "Yoga", Time: "07:00", Duration: 20})
	require.NoError(t, err)
	assert.Equal(t, "Routine for 2025-03-20", rt.Name)
	require.Len(t, rt.Tasks, 1)
	assert.NotEmpty(t, rt.Tasks[0].ID)
	assert.Equal(t, domain.CategoryOther, rt.Tasks[0].Category)
	assert.False(t, rt.Tasks[0].Completed)

	rt2, err := svc.LogTask(ctx, day, domain.RoutineTask{Name: "Lunch", Time: "12:30", Category: domain.CategoryMeal})
	require.NoError(t, err)
	assert.Equal(t, rt.ID, rt2.ID)

	got, err := svc.Get(ctx, day)
	require.NoError(t, err)
	require.Len(t, got.Tasks, 2)
	assert.Equal(t, "Lunch", got.Tasks[1].Name)
}

func TestRoutineService_LogTaskValidation(t *testing.T) {
	f := newFixture(t)
	svc := NewRoutineService(f.routines, f.uow)
	ctx := context.Background()
	day := testutil.Date("2025-03-20")

	tests := []struct {
		name string
		task domain.RoutineTask
		want string
	}{
		{"blank name", domain.RoutineTask{Name: " ", Time: "07:00"}, "name is required"},
		{"bad time", domain.RoutineTask{Name: "Run", Time: "7am"}, "expected HH:MM"},
		{"hour out of range", domain.RoutineTask{Name: "Run", Time: "25:00"}, "expected HH:MM"},
		{"negative duration", domain.RoutineTask{Name: "Run", Time: "07:00", Duration: -1}, "non-negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.LogTask(ctx, day, tt.task)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Error(), tt.want)
		})
	}
}

func TestRoutineService_ToggleAndSet(t *testing.T) {
	f := newFixture(t)
	rt := f.seedRoutine(t, testutil.NewTestRoutine("2025-03-20",
		testutil.NewTestTask("Standup"),
		testutil.NewTestTask("Gym", testutil.InCategory(domain.CategoryExercise)),
	))
	svc := NewRoutineService(f.routines, f.uow)
	ctx := context.Background()
	day := testutil.Date("2025-03-20")

	task, err := svc.ToggleTask(ctx, day, "2")
	require.NoError(t, err)
	assert.Equal(t, "Gym", task.Name)
	assert.True(t, task.Completed)

	task, err = svc.ToggleTask(ctx, day, "gym")
	require.NoError(t, err)
	assert.False(t, task.Completed)

	task, err = svc.SetTaskCompleted(ctx, day, rt.Tasks[0].ID, true)
	require.NoError(t, err)
	assert.True(t, task.Completed)
	task, err = svc.SetTaskCompleted(ctx, day, rt.Tasks[0].ID[:9], true)
	require.NoError(t, err)
	assert.True(t, task.Completed, "setting is idempotent")

	got, err := f.routines.GetByDate(ctx, day)
	require.NoError(t, err)
	assert.True(t, got.Tasks[0].Completed)
	assert.False(t, got.Tasks[1].Completed)
}

func TestRoutineService_TaskRefErrors(t *testing.T) {
	f := newFixture(t)
	f.seedRoutine(t, testutil.NewTestRoutine("2025-03-20", testutil.NewTestTask("Only")))
	svc := NewRoutineService(f.routines, f.uow)
	ctx := context.Background()

	_, err := svc.ToggleTask(ctx, testutil.Date("2025-03-20"), "5")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = svc.ToggleTask(ctx, testutil.Date("2025-03-20"), "zzz-missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = svc.ToggleTask(ctx, testutil.Date("2025-03-21"), "1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestResolveTask_AmbiguousPrefix(t *testing.T) {
	tasks := []domain.RoutineTask{{ID: "abc-1", Name: "A"}, {ID: "abc-2", Name: "B"}}

	_, err := resolveTask(tasks, "abc")
	assert.ErrorIs(t, err, ErrAmbiguousTask)

	i, err := resolveTask(tasks, "abc-2")
	require.NoError(t, err)
	assert.Equal(t, 1, i)
}

func TestRoutineService_ListAndDelete(t *testing.T) {
	f := newFixture(t)
	for _, d := range []string{"2025-03-18", "2025-03-19", "2025-03-20"} {
		f.seedRoutine(t, testutil.NewTestRoutine(d))
	}
	svc := NewRoutineService(f.routines, f.uow)
	ctx := context.Background()

	list, err := svc.List(ctx, testutil.Date("2025-03-19"), testutil.Date("2025-03-20"))
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, svc.Delete(ctx, testutil.Date("2025-03-19")))
	assert.ErrorIs(t, svc.Delete(ctx, testutil.Date("2025-03-19")), repository.ErrNotFound)
}

func TestRoutineService_LogTaskRollsBack(t *testing.T) {
	f := newFixture(t)
	boom := assert.AnError
	// Writes: routine row, task delete, task insert.
	uow := &testutil.FailingUoW{DB: f.conn, FailOn: 3, Err: boom}
	svc := NewRoutineService(f.routines, uow)

	_, err := svc.LogTask(context.Background(), testutil.Date("2025-03-20"), domain.RoutineTask{Name: "Run", Time: "06:00"})
	require.ErrorIs(t, err, boom)

	_, err = f.routines.GetByDate(context.Background(), testutil.Date("2025-03-20"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
