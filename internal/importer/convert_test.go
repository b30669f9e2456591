package importer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/wellspring/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_Normalises(t *testing.T) {
	s := validMinimalSchema()
	s.Routines[0].Tasks = append(s.Routines[0].Tasks, TaskImport{Name: "Walk", Time: "whenever"})
	s.Workouts[0].Difficulty = ""

	b, err := Convert(s)
	require.NoError(t, err)

	require.Len(t, b.Routines, 1)
	r := b.Routines[0]
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "2025-03-17", r.DateKey())
	require.Len(t, r.Tasks, 2)
	assert.True(t, r.Tasks[0].Completed)
	assert.False(t, r.Tasks[1].Completed)
	assert.Equal(t, domain.CategoryOther, r.Tasks[1].Category)
	assert.Equal(t, "whenever", r.Tasks[1].Time)
	assert.NotEqual(t, r.Tasks[0].ID, r.Tasks[1].ID)

	require.Len(t, b.Workouts, 1)
	assert.Equal(t, domain.DifficultyBeginner, b.Workouts[0].Difficulty)
	assert.Equal(t, "30 seconds", b.Workouts[0].Exercises[0].Reps)

	require.Len(t, b.Diets, 1)
	assert.Equal(t, 350, b.Diets[0].DailyCalories, "zero totals are filled from meals")
}

func TestConvert_KeepsExplicitIDsAndTotals(t *testing.T) {
	s := validMinimalSchema()
	s.Routines[0].ID = "r-1"
	s.Routines[0].Name = ""
	s.Diets[0].DailyCalories = 2000

	b, err := Convert(s)
	require.NoError(t, err)
	assert.Equal(t, "r-1", b.Routines[0].ID)
	assert.Equal(t, "Routine for 2025-03-17", b.Routines[0].Name)
	assert.Equal(t, 2000, b.Diets[0].DailyCalories)
}

func TestFlexString(t *testing.T) {
	var ex []ExerciseImport
	require.NoError(t, json.Unmarshal([]byte(`[
		{"name":"a","sets":3,"reps":12,"weight":"20kg"},
		{"name":"b","sets":3,"reps":"12-15","weight":null},
		{"name":"c","sets":1,"reps":2.5}
	]`), &ex))
	assert.Equal(t, FlexString("12"), ex[0].Reps)
	assert.Equal(t, FlexString("12-15"), ex[1].Reps)
	assert.Equal(t, FlexString(""), ex[1].Weight)
	assert.Equal(t, FlexString("2.5"), ex[2].Reps)

	var bad ExerciseImport
	assert.Error(t, json.Unmarshal([]byte(`{"reps":[1]}`), &bad))
}

func TestLoadImportDir(t *testing.T) {
	dir := t.TempDir()
	routines := `[{"id":"r1","name":"Mon","date":"2025-03-17","tasks":[
		{"id":"t1","name":"Run","description":"","time":"07:00","duration":30,"category":"Exercise"}
	],"notes":""}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, RoutinesFile), []byte(routines), 0644))

	s, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, s.Routines, 1)
	assert.Nil(t, s.Routines[0].Tasks[0].Completed)
	assert.Empty(t, s.Workouts)

	_, err = LoadImportDir(t.TempDir())
	assert.Error(t, err)
}

func TestLoadImportDir_BadJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DietsFile), []byte(`{`), 0644))
	_, err := LoadImportDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), DietsFile)
}

func TestExport_RoundTrip(t *testing.T) {
	b, err := Convert(validMinimalSchema())
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, FromBundle(b).WriteDir(dir))

	back, err := LoadImportDir(dir)
	require.NoError(t, err)
	assert.Empty(t, ValidateImportSchema(back))
	again, err := Convert(back)
	require.NoError(t, err)

	assert.Equal(t, b.Routines[0].ID, again.Routines[0].ID)
	assert.Equal(t, b.Routines[0].Tasks, again.Routines[0].Tasks)
	assert.Equal(t, b.Workouts[0].Exercises, again.Workouts[0].Exercises)
	assert.Equal(t, b.Diets[0].Meals, again.Diets[0].Meals)

	file := filepath.Join(t.TempDir(), "all.json")
	require.NoError(t, FromBundle(b).WriteFile(file))
	combined, err := Load(file)
	require.NoError(t, err)
	assert.Len(t, combined.Routines, 1)
	assert.Len(t, combined.Workouts, 1)
	assert.Len(t, combined.Diets, 1)
}
