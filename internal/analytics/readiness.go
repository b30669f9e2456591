package analytics

import "github.com/alexanderramin/wellspring/internal/domain"

const (
	readinessWindowDays = 3
	neutralSleepQuality = 0.5
)

type readinessBand struct {
	floor     float64
	readiness Readiness
	message   string
	intensity string
	workout   string
}

// readinessBands is ordered from the highest floor down.
var readinessBands = []readinessBand{
	{0.8, ReadinessOptimal, "Perfect workout conditions! Your body is ready for peak performance.", "High", "Strength training or high-intensity workout"},
	{0.6, ReadinessGood, "Good workout readiness. Consider moderate-intensity activities.", "Moderate", "Cardio or moderate strength training"},
	{0.4, ReadinessCaution, "Body may need more recovery. Light activity recommended.", "Light", "Yoga, stretching, or light walking"},
	{0, ReadinessRest, "Your body needs rest and recovery today.", "Rest", "Rest day or gentle stretching only"},
}

// WorkoutReadiness blends recovery time, pain, an evening-routine sleep
// proxy and recent training load into a readiness band.
func (e *Engine) WorkoutReadiness() WorkoutReadiness {
	routines := e.history.Routines
	if len(routines) == 0 {
		return WorkoutReadiness{Readiness: ReadinessUnknown}
	}

	recent := len(e.recentWorkouts(readinessWindowDays))
	consistency := 0.8
	if recent <= 7 {
		consistency = float64(recent) / 7
	}

	pain := 0.2
	switch e.PainLevel() {
	case PainLow:
		pain = 1.0
	case PainModerate:
		pain = 0.5
	}

	f := ReadinessFactors{
		RecoveryTime: min(1.0, float64(e.daysSinceLastWorkout())/2),
		PainStatus:   pain,
		SleepQuality: e.sleepQualityProxy(),
		Consistency:  consistency,
	}
	overall := mean([]float64{f.RecoveryTime, f.PainStatus, f.SleepQuality, f.Consistency})

	band := readinessBands[len(readinessBands)-1]
	for _, b := range readinessBands {
		if overall >= b.floor {
			band = b
			break
		}
	}
	return WorkoutReadiness{
		Readiness:          band.readiness,
		Message:            band.message,
		SuggestedIntensity: band.intensity,
		WorkoutType:        band.workout,
		Confidence:         min(0.9, float64(len(routines))/10),
		Factors:            &f,
		OverallScore:       overall,
	}
}

// sleepQualityProxy averages per-day Evening task completion over the
// readiness window.
func (e *Engine) sleepQualityProxy() float64 {
	var evenings []float64
	for _, r := range e.routinesSince(readinessWindowDays) {
		total, done := 0, 0
		for _, t := range r.Tasks {
			if t.Category != domain.CategoryEvening {
				continue
			}
			total++
			if t.Completed {
				done++
			}
		}
		if total > 0 {
			evenings = append(evenings, float64(done)/float64(total))
		}
	}
	if len(evenings) == 0 {
		return neutralSleepQuality
	}
	return mean(evenings)
}
