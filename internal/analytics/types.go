package analytics

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/alexanderramin/wellspring/internal/domain"
)

// History is the read-only snapshot the engine derives everything from.
type History struct {
	Routines []domain.DailyRoutine
	Workouts []domain.WorkoutPlan
	Diets    []domain.DietPlan
}

// CompletionPatterns buckets task completion by category, time period and
// weekday.
type CompletionPatterns struct {
	BestCategories      map[string][]bool     `json:"best_categories"`
	BestTimes           map[TimePeriod][]bool `json:"best_times"`
	OptimalDurations    map[string][]int      `json:"optimal_durations"`
	CompletionByWeekday map[string][]bool     `json:"completion_by_weekday"`
	TotalCompletionRate float64               `json:"total_completion_rate"`
}

type EnergyPatterns struct {
	PeakEnergyHours []int              `json:"peak_energy_hours"`
	LowEnergyHours  []int              `json:"low_energy_hours"`
	EnergyStability float64            `json:"energy_stability"`
	CircadianType   CircadianType      `json:"circadian_type"`
	WeekdayPatterns map[string]float64 `json:"weekday_patterns"`
}

type StressResilience struct {
	ResilienceScore     float64          `json:"resilience_score"`
	StressLevel         StressLevel      `json:"stress_level"`
	RecoveryCapacity    RecoveryCapacity `json:"recovery_capacity"`
	StressRecoveryRatio float64          `json:"stress_recovery_ratio"`
}

type Consistency struct {
	Score             float64 `json:"score"`
	AverageCompletion float64 `json:"average_completion"`
	Trend             Trend   `json:"trend"`
	Variation         float64 `json:"variation"`
}

type RecoveryNeeds struct {
	NeedLevel           NeedLevel `json:"need_level"`
	AvgExerciseDuration float64   `json:"avg_exercise_duration"`
	RecoveryRatio       float64   `json:"recovery_ratio"`
	HighIntensityDays   int       `json:"high_intensity_days"`
	Recommendation      string    `json:"recommendation"`
}

// Trajectory is either a placeholder (Prediction set, Confidence only) or a
// full short-term forecast.
type Trajectory struct {
	Prediction             string   `json:"prediction,omitempty"`
	CurrentPerformance     float64  `json:"current_performance"`
	TrendDirection         Trend    `json:"trend_direction"`
	Momentum               float64  `json:"momentum"`
	Confidence             float64  `json:"confidence"`
	PredictedNextWeek      float64  `json:"predicted_next_week"`
	RecommendationsUrgency Priority `json:"recommendations_urgency"`
}

// MarshalJSON writes a placeholder as {prediction, confidence} and a
// forecast with every field, zeros included.
func (t Trajectory) MarshalJSON() ([]byte, error) {
	if t.Prediction != "" {
		return json.Marshal(struct {
			Prediction string  `json:"prediction"`
			Confidence float64 `json:"confidence"`
		}{t.Prediction, t.Confidence})
	}
	type plain Trajectory
	return json.Marshal(plain(t))
}

// WellnessProfile aggregates every pattern analysis. The zero value is the
// empty profile produced for an empty history.
type WellnessProfile struct {
	EnergyPatterns   *EnergyPatterns   `json:"energy_patterns"`
	StressResilience *StressResilience `json:"stress_resilience"`
	Consistency      *Consistency      `json:"consistency_score"`
	RecoveryNeeds    *RecoveryNeeds    `json:"recovery_needs"`
	Trajectory       *Trajectory       `json:"wellness_trajectory"`
	RiskFactors      []string          `json:"risk_factors"`
	Strengths        []string          `json:"strengths"`
}

// Empty reports whether no section has been populated.
func (p WellnessProfile) Empty() bool {
	return p.PopulatedSections() == 0
}

// PopulatedSections counts the sections that carry data.
func (p WellnessProfile) PopulatedSections() int {
	n := 0
	for _, populated := range []bool{
		p.EnergyPatterns != nil,
		p.StressResilience != nil,
		p.Consistency != nil,
		p.RecoveryNeeds != nil,
		p.Trajectory != nil,
		p.RiskFactors != nil,
		p.Strengths != nil,
	} {
		if populated {
			n++
		}
	}
	return n
}

// clone copies every section so callers cannot reach the memoized profile.
func (p WellnessProfile) clone() WellnessProfile {
	out := p
	if p.EnergyPatterns != nil {
		ep := *p.EnergyPatterns
		ep.PeakEnergyHours = slices.Clone(ep.PeakEnergyHours)
		ep.LowEnergyHours = slices.Clone(ep.LowEnergyHours)
		ep.WeekdayPatterns = maps.Clone(ep.WeekdayPatterns)
		out.EnergyPatterns = &ep
	}
	if p.StressResilience != nil {
		sr := *p.StressResilience
		out.StressResilience = &sr
	}
	if p.Consistency != nil {
		c := *p.Consistency
		out.Consistency = &c
	}
	if p.RecoveryNeeds != nil {
		rn := *p.RecoveryNeeds
		out.RecoveryNeeds = &rn
	}
	if p.Trajectory != nil {
		tr := *p.Trajectory
		out.Trajectory = &tr
	}
	out.RiskFactors = slices.Clone(p.RiskFactors)
	out.Strengths = slices.Clone(p.Strengths)
	return out
}

// MarshalJSON renders the empty profile as {}.
func (p WellnessProfile) MarshalJSON() ([]byte, error) {
	if p.Empty() {
		return []byte("{}"), nil
	}
	type plain WellnessProfile
	return json.Marshal(plain(p))
}

// Recommendation is a scored workout, meal or schedule suggestion.
type Recommendation struct {
	Type                 string              `json:"type"`
	Title                string              `json:"title,omitempty"`
	Workout              *domain.WorkoutPlan `json:"workout,omitempty"`
	Meal                 *domain.Meal        `json:"meal,omitempty"`
	Score                float64             `json:"score,omitempty"`
	Reason               string              `json:"reason,omitempty"`
	Description          string              `json:"description,omitempty"`
	Action               string              `json:"action,omitempty"`
	Priority             Priority            `json:"priority"`
	BestTime             string              `json:"best_time,omitempty"`
	MealTime             MealSlot            `json:"meal_time,omitempty"`
	TimeSlot             TimePeriod          `json:"time_slot,omitempty"`
	ImprovementPotential string              `json:"improvement_potential,omitempty"`
	BestDay              string              `json:"best_day,omitempty"`
}

// Intervention is a profile-level, urgency-tagged suggestion.
type Intervention struct {
	Type                string   `json:"type"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Action              string   `json:"action"`
	AIConfidence        float64  `json:"ai_confidence"`
	ExpectedImprovement string   `json:"expected_improvement"`
	Priority            Priority `json:"priority"`
}

type Coaching struct {
	Status              CoachingStatus `json:"status,omitempty"`
	Message             string         `json:"message"`
	Action              string         `json:"action,omitempty"`
	Confidence          float64        `json:"confidence"`
	EnergyLevel         string         `json:"energy_level,omitempty"`
	RecommendedActivity string         `json:"recommended_activity,omitempty"`
	StressAlert         string         `json:"stress_alert,omitempty"`
	PriorityAdjustment  string         `json:"priority_adjustment,omitempty"`
}

type MealTiming struct {
	MealType            MealSlot `json:"meal_type"`
	OptimalTime         string   `json:"optimal_time"`
	Reasoning           string   `json:"reasoning"`
	MealSize            string   `json:"meal_size"`
	RecommendedCalories int      `json:"recommended_calories"`
	AIConfidence        float64  `json:"ai_confidence"`
}

type ReadinessFactors struct {
	RecoveryTime float64 `json:"recovery_time"`
	PainStatus   float64 `json:"pain_status"`
	SleepQuality float64 `json:"sleep_quality"`
	Consistency  float64 `json:"consistency"`
}

type WorkoutReadiness struct {
	Readiness          Readiness         `json:"readiness"`
	Message            string            `json:"message,omitempty"`
	SuggestedIntensity string            `json:"suggested_intensity,omitempty"`
	WorkoutType        string            `json:"workout_type,omitempty"`
	Confidence         float64           `json:"confidence"`
	Factors            *ReadinessFactors `json:"factors,omitempty"`
	OverallScore       float64           `json:"overall_score,omitempty"`
}

// Summary holds dashboard badge counts.
type Summary struct {
	Total               int     `json:"total"`
	RoutineTips         int     `json:"routine_tips"`
	Workouts            int     `json:"workouts"`
	Meals               int     `json:"meals"`
	Scheduling          int     `json:"scheduling"`
	AIInterventions     int     `json:"ai_interventions"`
	HighPriority        int     `json:"high_priority"`
	UrgentInterventions int     `json:"urgent_interventions"`
	AIConfidence        float64 `json:"ai_confidence"`
	AIStatus            string  `json:"ai_status"`
	HasWellnessProfile  bool    `json:"has_wellness_profile"`
	ProfileCompleteness float64 `json:"profile_completeness"`
}
