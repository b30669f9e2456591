package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/alexanderramin/wellspring/internal/domain"
)

const (
	mealBaseScore      = 0.5
	mealMinScore       = 0.4
	maxMealResults     = 4
	favoriteLimit      = 10
	favoritesInReason  = 2
	varietyIngredients = 2
)

// NutritionPreferences summarises the meal catalog.
type NutritionPreferences struct {
	AvgCalories         float64  `json:"avg_calories"`
	AvgProtein          float64  `json:"avg_protein"`
	AvgCarbs            float64  `json:"avg_carbs"`
	AvgFat              float64  `json:"avg_fat"`
	FavoriteIngredients []string `json:"favorite_ingredients"`
}

type mealContext struct {
	recentTokens []string
	prefs        NutritionPreferences
	favorites    map[string]bool
	slot         MealSlot
}

// RecommendMeals scores every catalog meal for the current meal slot and
// returns at most four scoring above 0.4, best first.
func (e *Engine) RecommendMeals() []Recommendation {
	recs := []Recommendation{}
	meals := e.catalogMeals()
	if len(meals) == 0 {
		return recs
	}

	prefs := NutritionPreferencesOf(meals)
	in := mealContext{
		recentTokens: tokenize(e.recentMeals(recentWindowDays)),
		prefs:        prefs,
		favorites:    make(map[string]bool, len(prefs.FavoriteIngredients)),
		slot:         MealSlotOf(e.now.Hour()),
	}
	for _, f := range prefs.FavoriteIngredients {
		in.favorites[f] = true
	}

	for i := range meals {
		m := meals[i]
		score := scoreMeal(m, in)
		if score <= mealMinScore {
			continue
		}
		recs = append(recs, Recommendation{
			Type:     TypeMeal,
			Title:    m.Name,
			Meal:     &m,
			Score:    score,
			Reason:   mealReason(m, in),
			MealTime: in.slot,
			Priority: mealPriority(score),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })
	if len(recs) > maxMealResults {
		recs = recs[:maxMealResults]
	}
	return recs
}

func (e *Engine) catalogMeals() []domain.Meal {
	var meals []domain.Meal
	for _, d := range e.history.Diets {
		meals = append(meals, d.Meals...)
	}
	return meals
}

// recentMeals returns the description (or name) of meal-related tasks.
func (e *Engine) recentMeals(days int) []string {
	var texts []string
	for _, r := range e.routinesSince(days) {
		for _, t := range r.Tasks {
			if containsAny(t.Name, mealTaskKeywords) {
				texts = append(texts, domain.Coalesce(t.Description, t.Name))
			}
		}
	}
	return texts
}

func tokenize(texts []string) []string {
	var tokens []string
	for _, text := range texts {
		tokens = append(tokens, strings.Fields(strings.ToLower(text))...)
	}
	return tokens
}

// NutritionPreferencesOf averages macros across meals and ranks the ten most
// used ingredients. Ties keep first-seen order.
func NutritionPreferencesOf(meals []domain.Meal) NutritionPreferences {
	if len(meals) == 0 {
		return NutritionPreferences{FavoriteIngredients: []string{}}
	}

	var calories, protein, carbs, fat float64
	counts := map[string]int{}
	var order []string
	for _, m := range meals {
		calories += float64(m.Calories)
		protein += m.Protein
		carbs += m.Carbs
		fat += m.Fat
		for _, ing := range m.Ingredients {
			key := strings.ToLower(ing)
			if _, seen := counts[key]; !seen {
				order = append(order, key)
			}
			counts[key]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > favoriteLimit {
		order = order[:favoriteLimit]
	}
	n := float64(len(meals))
	return NutritionPreferences{
		AvgCalories:         calories / n,
		AvgProtein:          protein / n,
		AvgCarbs:            carbs / n,
		AvgFat:              fat / n,
		FavoriteIngredients: append([]string{}, order...),
	}
}

func lowerIngredients(m domain.Meal) []string {
	out := make([]string, len(m.Ingredients))
	for i, ing := range m.Ingredients {
		out[i] = strings.ToLower(ing)
	}
	return out
}

// eatenRecently reports whether the ingredient appears inside any recent
// meal token.
func eatenRecently(ingredient string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(tok, ingredient) {
			return true
		}
	}
	return false
}

func scoreMeal(m domain.Meal, in mealContext) float64 {
	score := mealBaseScore
	ingredients := lowerIngredients(m)

	repeated, favorites := 0, 0
	for _, ing := range ingredients {
		if eatenRecently(ing, in.recentTokens) {
			repeated++
		}
		if in.favorites[ing] {
			favorites++
		}
	}
	if repeated > 0 {
		score *= 1 - float64(repeated)*0.2
	}
	score *= 1 + float64(favorites)*0.1

	switch diff := math.Abs(float64(m.Calories) - in.prefs.AvgCalories); {
	case diff < 100:
		score *= 1.2
	case diff > 200:
		score *= 0.8
	}

	if containsAny(m.Name, mealSlotKeywords[in.slot]) {
		score *= 1.3
	}

	return clamp(score, 0, 1)
}

func mealReason(m domain.Meal, in mealContext) string {
	var reasons []string
	ingredients := lowerIngredients(m)

	var favorites []string
	fresh := 0
	for _, ing := range ingredients {
		if in.favorites[ing] {
			favorites = append(favorites, ing)
		}
		if !eatenRecently(ing, in.recentTokens) {
			fresh++
		}
	}
	if len(favorites) > 0 {
		reasons = append(reasons, "includes your favorites: "+strings.Join(favorites[:min(len(favorites), favoritesInReason)], ", "))
	}
	if math.Abs(float64(m.Calories)-in.prefs.AvgCalories) < 50 {
		reasons = append(reasons, "perfect calorie match")
	}
	if fresh >= varietyIngredients {
		reasons = append(reasons, "adds variety to your week")
	}
	slot := strings.ToLower(string(in.slot))
	if strings.Contains(strings.ToLower(m.Name), slot) {
		reasons = append(reasons, fmt.Sprintf("perfect for %s", slot))
	}

	if len(reasons) == 0 {
		return "Nutritious and balanced option"
	}
	return "Great choice - " + strings.Join(reasons, ", ")
}

func mealPriority(score float64) Priority {
	switch {
	case score > 0.8:
		return PriorityHigh
	case score > 0.6:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
