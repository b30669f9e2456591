package analytics

import (
	"testing"
	"time"

	"github.com/alexanderramin/wellspring/internal/domain"
	tu "github.com/alexanderramin/wellspring/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var breakfastTime = time.Date(2025, 3, 20, 8, 0, 0, 0, time.UTC)

func TestRecommendMeals_EmptyCatalog(t *testing.T) {
	recs := NewEngine(History{Diets: []domain.DietPlan{tu.NewTestDiet("Empty")}}, breakfastTime).RecommendMeals()

	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestRecommendMeals_BreakfastSlot(t *testing.T) {
	oatmeal := tu.NewTestMeal("Overnight Oatmeal", 400, tu.WithIngredients("Oats", "Milk"))
	pasta := tu.NewTestMeal("Chicken Pasta", 900, tu.WithIngredients("Chicken", "Pasta"))
	e := NewEngine(History{Diets: []domain.DietPlan{tu.NewTestDiet("Balanced", pasta, oatmeal)}}, breakfastTime)

	recs := e.RecommendMeals()

	require.Len(t, recs, 2)
	assert.Equal(t, "Overnight Oatmeal", recs[0].Meal.Name)
	// favourites 1.2, calories 250 off 0.8, breakfast keyword 1.3
	assert.InDelta(t, 0.5*1.2*0.8*1.3, recs[0].Score, 1e-9)
	assert.Equal(t, PriorityMedium, recs[0].Priority)
	assert.Equal(t, SlotBreakfast, recs[0].MealTime)
	assert.Equal(t, "Great choice - includes your favorites: oats, milk, adds variety to your week", recs[0].Reason)

	assert.Equal(t, "Chicken Pasta", recs[1].Meal.Name)
	assert.InDelta(t, 0.5*1.2*0.8, recs[1].Score, 1e-9)
	assert.Equal(t, PriorityLow, recs[1].Priority)
}

func TestRecommendMeals_RecentIngredientsPenalised(t *testing.T) {
	routines := []domain.DailyRoutine{
		tu.NewTestRoutine("2025-03-19",
			tu.NewTestTask("Lunch", tu.WithTaskDescription("Salmon rice bowl"), tu.InCategory(domain.CategoryMeal)),
		),
	}
	bowl := tu.NewTestMeal("Salmon Bowl", 600, tu.WithIngredients("salmon", "rice"))
	salad := tu.NewTestMeal("Lunch Salad", 600, tu.WithIngredients("lettuce", "tomato"))
	e := NewEngine(History{Routines: routines, Diets: []domain.DietPlan{tu.NewTestDiet("D", bowl, salad)}},
		time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC))

	recs := e.RecommendMeals()

	require.Len(t, recs, 2)
	assert.Equal(t, "Lunch Salad", recs[0].Meal.Name)
	assert.InDelta(t, 0.5*1.2*1.2*1.3, recs[0].Score, 1e-9)
	assert.Contains(t, recs[0].Reason, "perfect calorie match")
	assert.Contains(t, recs[0].Reason, "perfect for lunch")
	// two repeated ingredients: 0.6, two favourites: 1.2, calorie match: 1.2
	assert.InDelta(t, 0.5*0.6*1.2*1.2, recs[1].Score, 1e-9)
	assert.NotContains(t, recs[1].Reason, "adds variety")
}

func TestRecommendMeals_TopFour(t *testing.T) {
	var meals []domain.Meal
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		meals = append(meals, tu.NewTestMeal(name, 500))
	}
	recs := NewEngine(History{Diets: []domain.DietPlan{tu.NewTestDiet("D", meals...)}}, breakfastTime).RecommendMeals()

	require.Len(t, recs, 4)
	for _, r := range recs {
		assert.Greater(t, r.Score, mealMinScore)
		assert.Equal(t, "Great choice - perfect calorie match", r.Reason)
	}
}

func TestScoreMeal_ClampsNegativeToZero(t *testing.T) {
	m := tu.NewTestMeal("Everything", 500, tu.WithIngredients("a", "b", "c", "d", "e", "f"))
	in := mealContext{
		recentTokens: []string{"abcdef"},
		prefs:        NutritionPreferences{AvgCalories: 500},
		slot:         SlotSnack,
	}

	assert.Zero(t, scoreMeal(m, in))
}

func TestNutritionPreferencesOf(t *testing.T) {
	meals := []domain.Meal{
		tu.NewTestMeal("One", 300, tu.WithIngredients("Egg", "Spinach")),
		tu.NewTestMeal("Two", 500, tu.WithIngredients("spinach", "Rice")),
		tu.NewTestMeal("Three", 700, tu.WithIngredients("rice", "SPINACH", "Beans")),
	}

	prefs := NutritionPreferencesOf(meals)

	assert.InDelta(t, 500.0, prefs.AvgCalories, 1e-9)
	assert.Equal(t, []string{"spinach", "rice", "egg", "beans"}, prefs.FavoriteIngredients)
	assert.Empty(t, NutritionPreferencesOf(nil).FavoriteIngredients)
}

func TestRecentMeals_DescriptionOrName(t *testing.T) {
	routines := []domain.DailyRoutine{
		tu.NewTestRoutine("2025-03-18",
			tu.NewTestTask("Breakfast", tu.WithTaskDescription("Greek yogurt")),
			tu.NewTestTask("Team dinner"),
			tu.NewTestTask("Standup"),
		),
		tu.NewTestRoutine("2025-03-01", tu.NewTestTask("Old lunch")),
	}

	got := NewEngine(History{Routines: routines}, testNow).recentMeals(recentWindowDays)

	assert.Equal(t, []string{"Greek yogurt", "Team dinner"}, got)
}
