package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/wellspring/internal/analytics"
	"github.com/alexanderramin/wellspring/internal/domain"
	"github.com/alexanderramin/wellspring/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadHistory_AllCollections(t *testing.T) {
	f := newFixture(t)
	f.seedRoutine(t, testutil.NewTestRoutine("2025-03-18", testutil.NewTestTask("Run")))
	f.seedRoutine(t, testutil.NewTestRoutine("2025-03-17", testutil.NewTestTask("Swim")))
	f.seedWorkout(t, testutil.NewTestWorkout("Core"))
	f.seedDiet(t, testutil.NewTestDiet("Plan", testutil.NewTestMeal("Oatmeal", 300)))

	h, err := f.history.LoadHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, h.Routines, 2)
	assert.Equal(t, "2025-03-17", h.Routines[0].DateKey())
	assert.Len(t, h.Workouts, 1)
	require.Len(t, h.Diets, 1)
	assert.Len(t, h.Diets[0].Meals, 1)
}

func TestLoadHistory_Empty(t *testing.T) {
	h, err := newFixture(t).history.LoadHistory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, h.Routines)
	assert.Empty(t, h.Workouts)
	assert.Empty(t, h.Diets)
}

// failingDiets fails every listing.
type failingDiets struct{}

func (failingDiets) Upsert(context.Context, *domain.DietPlan) error { return nil }
func (failingDiets) GetByID(context.Context, string) (*domain.DietPlan, error) {
	return nil, errors.New("disk on fire")
}
func (failingDiets) List(context.Context) ([]domain.DietPlan, error) {
	return nil, errors.New("disk on fire")
}
func (failingDiets) Delete(context.Context, string) error { return nil }

func TestLoadHistory_PropagatesError(t *testing.T) {
	f := newFixture(t)
	src := NewHistorySource(f.routines, f.workouts, failingDiets{})

	h, err := src.LoadHistory(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading diet plans")
	assert.Equal(t, analytics.History{}, h)
}
