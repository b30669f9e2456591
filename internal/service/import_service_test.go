package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/wellspring/internal/importer"
	"github.com/alexanderramin/wellspring/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routinesJSON = `[
  {"id": "r1", "name": "Monday", "date": "2025-03-17", "notes": "",
   "tasks": [
     {"id": "t1", "name": "Morning run", "description": "", "time": "06:30", "duration": 30, "category": "Exercise", "completed": true},
     {"id": "t2", "name": "Breakfast", "description": "oatmeal with berries", "time": "07:30", "duration": 20, "category": "Meal"}
   ]},
  {"name": "Tuesday", "date": "2025-03-18",
   "tasks": [{"name": "Standup", "time": "9am", "duration": 15, "category": "Work"}]}
]`

const workoutsJSON = `[
  {"id": "w1", "name": "Upper Body", "description": "", "difficulty": "Intermediate",
   "target_muscle_groups": ["Chest", "Arms"], "estimated_duration": 45,
   "exercises": [{"id": "e1", "name": "Push-ups", "sets": 3, "reps": 12, "weight": "Bodyweight"}]}
]`

const dietsJSON = `[
  {"id": "d1", "name": "Balanced", "description": "", "daily_calories": 2000,
   "daily_protein": 120, "daily_carbs": 220, "daily_fat": 70,
   "meals": [{"id": "m1", "name": "Oatmeal", "calories": 350, "protein": 12, "carbs": 60, "fat": 6, "ingredients": ["oats", "berries"]}]}
]`

func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, importer.RoutinesFile), []byte(routinesJSON), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, importer.WorkoutsFile), []byte(workoutsJSON), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, importer.DietsFile), []byte(dietsJSON), 0644))
	return dir
}

func TestImportService_DataDirectory(t *testing.T) {
	f := newFixture(t)
	svc := NewImportService(f.uow)
	ctx := context.Background()

	res, err := svc.Import(ctx, writeDataDir(t))
	require.NoError(t, err)
	assert.Equal(t, &ImportResult{Routines: 2, Workouts: 1, Diets: 1}, res)

	monday, err := f.routines.GetByDate(ctx, testutil.Date("2025-03-17"))
	require.NoError(t, err)
	assert.Equal(t, "r1", monday.ID)
	assert.True(t, monday.Tasks[0].Completed)
	assert.False(t, monday.Tasks[1].Completed)

	tuesday, err := f.routines.GetByDate(ctx, testutil.Date("2025-03-18"))
	require.NoError(t, err)
	assert.Equal(t, "9am", tuesday.Tasks[0].Time)

	w, err := f.workouts.GetByID(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "12", w.Exercises[0].Reps)
}

func TestImportService_ReimportIsIdempotent(t *testing.T) {
	f := newFixture(t)
	svc := NewImportService(f.uow)
	ctx := context.Background()
	dir := writeDataDir(t)

	_, err := svc.Import(ctx, dir)
	require.NoError(t, err)
	_, err = svc.Import(ctx, dir)
	require.NoError(t, err)

	all, err := f.routines.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestImportService_ReplacesRoutineOnSameDate(t *testing.T) {
	f := newFixture(t)
	f.seedRoutine(t, testutil.NewTestRoutine("2025-03-17", testutil.NewTestTask("Old")))
	svc := NewImportService(f.uow)
	ctx := context.Background()

	res, err := svc.Import(ctx, writeDataDir(t))
	require.NoError(t, err)
	assert.Equal(t, 1, res.ReplacedRoutines)

	monday, err := f.routines.GetByDate(ctx, testutil.Date("2025-03-17"))
	require.NoError(t, err)
	assert.Equal(t, "Morning run", monday.Tasks[0].Name)
}

func TestImportService_ValidationErrors(t *testing.T) {
	f := newFixture(t)
	rec := &recordingObserver{}
	svc := NewImportService(f.uow, rec)

	_, err := svc.ImportSchema(context.Background(), &importer.ImportSchema{
		Routines: []importer.RoutineImport{{Date: "bad"}},
		Workouts: []importer.WorkoutImport{{Name: ""}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (2 errors)")
	assert.Contains(t, err.Error(), "routines[0].date")
	require.Len(t, rec.events, 1)
	assert.False(t, rec.events[0].Success)
	assert.Equal(t, 2, rec.events[0].Fields["validation_errors"])
}

func TestImportService_RollsBackOnFailure(t *testing.T) {
	f := newFixture(t)
	boom := assert.AnError
	// Routines take writes 1-7 and the workout 8-10, so write 11 is the diet row.
	uow := &testutil.FailingUoW{DB: f.conn, FailOn: 11, Err: boom}
	svc := NewImportService(uow)
	ctx := context.Background()

	_, err := svc.Import(ctx, writeDataDir(t))
	require.ErrorIs(t, err, boom)

	h, err := f.history.LoadHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, h.Routines)
	assert.Empty(t, h.Workouts)
	assert.Empty(t, h.Diets)
}

func TestExportService_RoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := NewImportService(f.uow).Import(ctx, writeDataDir(t))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "export")
	res, err := NewExportService(f.history).Export(ctx, out, true)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Routines)

	g := newFixture(t)
	_, err = NewImportService(g.uow).Import(ctx, out)
	require.NoError(t, err)

	want, err := f.history.LoadHistory(ctx)
	require.NoError(t, err)
	got, err := g.history.LoadHistory(ctx)
	require.NoError(t, err)
	require.Len(t, got.Routines, 2)
	assert.Equal(t, want.Routines[0].Tasks, got.Routines[0].Tasks)
	assert.Equal(t, want.Routines[1].Tasks, got.Routines[1].Tasks)
	assert.Equal(t, want.Workouts[0].Exercises, got.Workouts[0].Exercises)
	assert.Equal(t, want.Diets[0].Meals, got.Diets[0].Meals)

	file := filepath.Join(t.TempDir(), "all.json")
	_, err = NewExportService(f.history).Export(ctx, file, false)
	require.NoError(t, err)
	schema, err := importer.Load(file)
	require.NoError(t, err)
	assert.Len(t, schema.Routines, 2)
}
