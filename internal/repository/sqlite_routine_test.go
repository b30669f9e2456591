package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/wellspring/internal/db"
	"github.com/alexanderramin/wellspring/internal/domain"
	"github.com/alexanderramin/wellspring/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutineRepo_UpsertAndGetByDate(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := NewSQLiteRoutineRepo(conn)
	ctx := context.Background()

	rt := testutil.NewTestRoutine("2025-03-17",
		testutil.NewTestTask("Standup", testutil.At("09:00"), testutil.Done()),
		testutil.NewTestTask("Run", testutil.At("18:00"), testutil.InCategory(domain.CategoryExercise), testutil.Lasting(45)),
	)
	rt.Notes = "busy day"
	require.NoError(t, repo.Upsert(ctx, &rt))
	assert.False(t, rt.CreatedAt.IsZero())

	got, err := repo.GetByDate(ctx, testutil.Date("2025-03-17"))
	require.NoError(t, err)
	assert.Equal(t, rt.ID, got.ID)
	assert.Equal(t, "busy day", got.Notes)
	assert.Equal(t, "Monday", got.Weekday())
	require.Len(t, got.Tasks, 2)
	assert.Equal(t, "Standup", got.Tasks[0].Name)
	assert.True(t, got.Tasks[0].Completed)
	assert.Equal(t, "Run", got.Tasks[1].Name)
	assert.Equal(t, 45, got.Tasks[1].Duration)
	assert.Equal(t, domain.CategoryExercise, got.Tasks[1].Category)
}

func TestRoutineRepo_UpsertReplacesTasks(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := NewSQLiteRoutineRepo(conn)
	ctx := context.Background()

	rt := testutil.NewTestRoutine("2025-03-17",
		testutil.NewTestTask("A"), testutil.NewTestTask("B"), testutil.NewTestTask("C"))
	require.NoError(t, repo.Upsert(ctx, &rt))
	created := rt.CreatedAt

	rt.Tasks = []domain.RoutineTask{rt.Tasks[2], rt.Tasks[0]}
	require.NoError(t, repo.Upsert(ctx, &rt))
	assert.Equal(t, created, rt.CreatedAt)

	got, err := repo.GetByID(ctx, rt.ID)
	require.NoError(t, err)
	require.Len(t, got.Tasks, 2)
	assert.Equal(t, "C", got.Tasks[0].Name)
	assert.Equal(t, "A", got.Tasks[1].Name)
}

func TestRoutineRepo_MalformedTimeRoundTrips(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := NewSQLiteRoutineRepo(conn)
	ctx := context.Background()

	rt := testutil.NewTestRoutine("2025-03-17", testutil.NewTestTask("Odd", testutil.At("late")))
	require.NoError(t, repo.Upsert(ctx, &rt))

	got, err := repo.GetByID(ctx, rt.ID)
	require.NoError(t, err)
	assert.Equal(t, "late", got.Tasks[0].Time)
}

func TestRoutineRepo_DuplicateDateRejected(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := NewSQLiteRoutineRepo(conn)
	ctx := context.Background()

	first := testutil.NewTestRoutine("2025-03-17")
	second := testutil.NewTestRoutine("2025-03-17")
	require.NoError(t, repo.Upsert(ctx, &first))
	assert.Error(t, repo.Upsert(ctx, &second))
}

func TestRoutineRepo_ListOrderedByDate(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := NewSQLiteRoutineRepo(conn)
	ctx := context.Background()

	for _, d := range []string{"2025-03-19", "2025-03-17", "2025-03-18"} {
		rt := testutil.NewTestRoutine(d, testutil.NewTestTask("T-"+d))
		require.NoError(t, repo.Upsert(ctx, &rt))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2025-03-17", all[0].DateKey())
	assert.Equal(t, "2025-03-19", all[2].DateKey())
	for _, rt := range all {
		require.Len(t, rt.Tasks, 1)
		assert.Equal(t, "T-"+rt.DateKey(), rt.Tasks[0].Name)
	}

	window, err := repo.ListBetween(ctx, testutil.Date("2025-03-18"), testutil.Date("2025-03-19"))
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, "2025-03-18", window[0].DateKey())
}

func TestRoutineRepo_ListEmpty(t *testing.T) {
	repo := NewSQLiteRoutineRepo(testutil.NewTestDB(t))

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestRoutineRepo_SetTaskCompleted(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := NewSQLiteRoutineRepo(conn)
	ctx := context.Background()

	rt := testutil.NewTestRoutine("2025-03-17", testutil.NewTestTask("Read"))
	require.NoError(t, repo.Upsert(ctx, &rt))

	require.NoError(t, repo.SetTaskCompleted(ctx, rt.ID, rt.Tasks[0].ID, true))
	got, err := repo.GetByID(ctx, rt.ID)
	require.NoError(t, err)
	assert.True(t, got.Tasks[0].Completed)

	err = repo.SetTaskCompleted(ctx, rt.ID, "missing", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoutineRepo_NotFound(t *testing.T) {
	repo := NewSQLiteRoutineRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetByDate(ctx, testutil.Date("2030-01-01"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "nope"), ErrNotFound)
}

func TestRoutineRepo_DeleteCascadesTasks(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := NewSQLiteRoutineRepo(conn)
	ctx := context.Background()

	rt := testutil.NewTestRoutine("2025-03-17", testutil.NewTestTask("A"), testutil.NewTestTask("B"))
	require.NoError(t, repo.Upsert(ctx, &rt))
	require.NoError(t, repo.Delete(ctx, rt.ID))

	var n int
	require.NoError(t, conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM routine_tasks`).Scan(&n))
	assert.Zero(t, n)
}

func TestRoutineRepo_UpsertRollsBackInsideUoW(t *testing.T) {
	conn := testutil.NewTestDB(t)
	ctx := context.Background()
	boom := assert.AnError

	rt := testutil.NewTestRoutine("2025-03-17", testutil.NewTestTask("A"), testutil.NewTestTask("B"))
	// Writes: routine row, task delete, task A, task B.
	uow := &testutil.FailingUoW{DB: conn, FailOn: 4, Err: boom}
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteRoutineRepo(tx).Upsert(ctx, &rt)
	})
	require.ErrorIs(t, err, boom)

	_, err = NewSQLiteRoutineRepo(conn).GetByID(ctx, rt.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
