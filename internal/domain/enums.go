package domain

// Well-known task categories. Producers may use any string; the analytics
// engine only gives special meaning to the ones listed here.
const (
	CategoryWork     = "Work"
	CategoryExercise = "Exercise"
	CategoryStudy    = "Study"
	CategoryMeal     = "Meal"
	CategoryBreak    = "Break"
	CategoryRecovery = "Recovery"
	CategoryOther    = "Other"
	CategoryPersonal = "Personal"
	CategoryEvening  = "Evening"
	CategoryMorning  = "Morning"
)

// KnownCategories lists the categories offered by interactive forms.
var KnownCategories = []string{
	CategoryWork, CategoryExercise, CategoryStudy, CategoryMeal, CategoryBreak,
	CategoryRecovery, CategoryPersonal, CategoryEvening, CategoryMorning, CategoryOther,
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[string]bool{
	"Beginner": true, "Intermediate": true, "Advanced": true,
}
