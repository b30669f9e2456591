package analytics

var mealTimingPlans = map[CircadianType][]MealTiming{
	MorningLark: {
		{MealType: SlotBreakfast, OptimalTime: "06:30", Reasoning: "Early risers need substantial morning fuel", MealSize: "Large", RecommendedCalories: 500, AIConfidence: 0.85},
		{MealType: SlotLunch, OptimalTime: "12:00", Reasoning: "Peak metabolism during mid-day", MealSize: "Medium", RecommendedCalories: 400, AIConfidence: 0.8},
		{MealType: SlotDinner, OptimalTime: "18:00", Reasoning: "Earlier dinner for better sleep", MealSize: "Medium", RecommendedCalories: 450, AIConfidence: 0.9},
	},
	NightOwl: {
		{MealType: SlotBreakfast, OptimalTime: "08:30", Reasoning: "Later start aligns with delayed circadian rhythm", MealSize: "Medium", RecommendedCalories: 350, AIConfidence: 0.8},
		{MealType: SlotLunch, OptimalTime: "13:30", Reasoning: "Shifted metabolism peak", MealSize: "Large", RecommendedCalories: 550, AIConfidence: 0.85},
		{MealType: SlotDinner, OptimalTime: "19:30", Reasoning: "Later dinner works with night owl patterns", MealSize: "Medium", RecommendedCalories: 400, AIConfidence: 0.8},
	},
}

// AdaptiveMealTiming returns a meal schedule for Morning Lark and Night Owl
// profiles and nothing for other circadian types.
func (e *Engine) AdaptiveMealTiming() []MealTiming {
	p := e.WellnessProfile()
	if p.EnergyPatterns == nil {
		return []MealTiming{}
	}
	plan := mealTimingPlans[p.EnergyPatterns.CircadianType]
	return append([]MealTiming{}, plan...)
}
