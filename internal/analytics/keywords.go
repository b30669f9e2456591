package analytics

import "strings"

// KeywordGroup maps a label to the substrings that classify a task or meal
// name into it. Matching is case-insensitive substring containment.
type KeywordGroup struct {
	Label    string
	Keywords []string
}

var (
	painKeywords      = []string{"pain", "relief", "wrist"}
	painLevelKeywords = []string{"pain", "relief", "wrist", "stretch"}
	stretchKeywords   = []string{"stretch"}
	recoveryKeywords  = []string{"stretch", "recovery", "rest", "massage", "relaxation"}
	mealTaskKeywords  = []string{"breakfast", "lunch", "dinner", "meal"}
)

// muscleGroupKeywords infers worked muscle groups from exercise task names.
// A name may match several groups.
var muscleGroupKeywords = []KeywordGroup{
	{Label: "Chest", Keywords: []string{"chest", "push", "press"}},
	{Label: "Back", Keywords: []string{"back", "pull", "row"}},
	{Label: "Legs", Keywords: []string{"leg", "squat", "lunge"}},
	{Label: "Arms", Keywords: []string{"arm", "bicep", "tricep"}},
	{Label: "Core", Keywords: []string{"core", "abs", "plank"}},
	{Label: "Shoulders", Keywords: []string{"shoulder", "overhead"}},
	{Label: "Cardio", Keywords: []string{"cardio", "run", "bike"}},
	{Label: "Wrists", Keywords: []string{"wrist", "relief", "pain"}},
}

// mealSlotKeywords marks meal names that suit a meal slot. Snack has none.
var mealSlotKeywords = map[MealSlot][]string{
	SlotBreakfast: {"breakfast", "morning", "oatmeal", "yogurt"},
	SlotLunch:     {"lunch", "wrap", "salad", "soup"},
	SlotDinner:    {"dinner", "pasta", "bowl", "recovery"},
}

// containsAny reports whether the lowercased text contains any keyword.
func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// matchGroups returns the labels of every group whose keywords appear in text,
// in table order.
func matchGroups(text string, table []KeywordGroup) []string {
	var labels []string
	for _, g := range table {
		if containsAny(text, g.Keywords) {
			labels = append(labels, g.Label)
		}
	}
	return labels
}
