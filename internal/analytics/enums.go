package analytics

type TimePeriod string

const (
	PeriodEarlyMorning TimePeriod = "Early Morning"
	PeriodMorning      TimePeriod = "Morning"
	PeriodAfternoon    TimePeriod = "Afternoon"
	PeriodEvening      TimePeriod = "Evening"
	PeriodNight        TimePeriod = "Night"
)

// timePeriods is the chronological order used to break ties.
var timePeriods = []TimePeriod{
	PeriodEarlyMorning, PeriodMorning, PeriodAfternoon, PeriodEvening, PeriodNight,
}

// representativeTimes maps a period to the clock time suggested for workouts.
var representativeTimes = map[TimePeriod]string{
	PeriodEarlyMorning: "06:30",
	PeriodMorning:      "10:00",
	PeriodAfternoon:    "14:00",
	PeriodEvening:      "17:00",
	PeriodNight:        "20:00",
}

const defaultWorkoutTime = "06:30"

// TimePeriodOf buckets an hour of day.
func TimePeriodOf(hour int) TimePeriod {
	switch {
	case hour >= 5 && hour < 9:
		return PeriodEarlyMorning
	case hour >= 9 && hour < 12:
		return PeriodMorning
	case hour >= 12 && hour < 17:
		return PeriodAfternoon
	case hour >= 17 && hour < 21:
		return PeriodEvening
	default:
		return PeriodNight
	}
}

type CircadianType string

const (
	MorningLark     CircadianType = "Morning Lark"
	NightOwl        CircadianType = "Night Owl"
	MidDayPeak      CircadianType = "Mid-day Peak"
	VariablePattern CircadianType = "Variable Pattern"
)

type StressLevel string

const (
	StressLow      StressLevel = "Low"
	StressModerate StressLevel = "Moderate"
	StressHigh     StressLevel = "High"
)

type RecoveryCapacity string

const (
	CapacityNeedsImprovement RecoveryCapacity = "Needs Improvement"
	CapacityGood             RecoveryCapacity = "Good"
	CapacityExcellent        RecoveryCapacity = "Excellent"
)

type Trend string

const (
	TrendImproving        Trend = "improving"
	TrendDeclining        Trend = "declining"
	TrendStable           Trend = "stable"
	TrendEstablishing     Trend = "establishing"
	TrendInsufficientData Trend = "insufficient_data"
)

type NeedLevel string

const (
	NeedAdequate NeedLevel = "adequate"
	NeedModerate NeedLevel = "moderate"
	NeedHigh     NeedLevel = "high"
	NeedCritical NeedLevel = "critical"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type PainLevel string

const (
	PainUnknown  PainLevel = "unknown"
	PainLow      PainLevel = "low"
	PainModerate PainLevel = "moderate"
	PainHigh     PainLevel = "high"
)

type MealSlot string

const (
	SlotBreakfast MealSlot = "Breakfast"
	SlotLunch     MealSlot = "Lunch"
	SlotDinner    MealSlot = "Dinner"
	SlotSnack     MealSlot = "Snack"
)

// MealSlotOf maps a clock hour to the current meal slot.
func MealSlotOf(hour int) MealSlot {
	switch {
	case hour >= 5 && hour < 10:
		return SlotBreakfast
	case hour >= 11 && hour < 15:
		return SlotLunch
	case hour >= 17 && hour < 21:
		return SlotDinner
	default:
		return SlotSnack
	}
}

type CoachingStatus string

const (
	StatusPeakEnergy     CoachingStatus = "peak_energy"
	StatusLowEnergy      CoachingStatus = "low_energy"
	StatusModerateEnergy CoachingStatus = "moderate_energy"
)

type Readiness string

const (
	ReadinessUnknown Readiness = "unknown"
	ReadinessOptimal Readiness = "optimal"
	ReadinessGood    Readiness = "good"
	ReadinessCaution Readiness = "caution"
	ReadinessRest    Readiness = "rest"
)

// Recommendation types.
const (
	TypeWorkout              = "workout"
	TypeMeal                 = "meal"
	TypeCategoryOptimization = "category_optimization"
	TypeTimingOptimization   = "timing_optimization"
	TypeDurationOptimization = "duration_optimization"
	TypeScheduleOptimization = "schedule_optimization"
	TypeWeeklyOptimization   = "weekly_optimization"
)

// Intervention types.
const (
	InterventionEnergyStabilization  = "energy_stabilization"
	InterventionStressManagement     = "stress_management"
	InterventionTrajectoryCorrection = "trajectory_correction"
)
