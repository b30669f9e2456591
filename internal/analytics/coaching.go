package analytics

import "slices"

// RealTimeCoaching gives a right-now suggestion from the hour of e.Now() and
// the profile's peak and low hours. High stress adds an alert on top.
func (e *Engine) RealTimeCoaching() Coaching {
	p := e.WellnessProfile()
	if p.Empty() {
		return Coaching{Message: "Building your AI profile...", Confidence: 0.3}
	}

	var peak, low []int
	if p.EnergyPatterns != nil {
		peak, low = p.EnergyPatterns.PeakEnergyHours, p.EnergyPatterns.LowEnergyHours
	}

	hour := e.now.Hour()
	var c Coaching
	switch {
	case slices.Contains(peak, hour):
		c = Coaching{
			Status:              StatusPeakEnergy,
			Message:             "You're in your peak energy zone! Perfect time for high-focus work or challenging exercises.",
			Action:              "Tackle your most important task now",
			Confidence:          0.9,
			EnergyLevel:         "High",
			RecommendedActivity: "Deep work or intense workout",
		}
	case slices.Contains(low, hour):
		c = Coaching{
			Status:              StatusLowEnergy,
			Message:             "Natural low-energy period detected. Consider lighter activities or a strategic break.",
			Action:              "Schedule recovery activities or easy tasks",
			Confidence:          0.85,
			EnergyLevel:         "Low",
			RecommendedActivity: "Stretching, meal prep, or administrative tasks",
		}
	default:
		c = Coaching{
			Status:              StatusModerateEnergy,
			Message:             "Moderate energy period. Good for routine tasks and steady progress.",
			Action:              "Maintain current activity level",
			Confidence:          0.7,
			EnergyLevel:         "Moderate",
			RecommendedActivity: "Regular scheduled activities",
		}
	}

	if p.StressResilience != nil && p.StressResilience.StressLevel == StressHigh {
		c.StressAlert = "High stress detected. Consider adding a 5-minute breathing exercise."
		c.PriorityAdjustment = "Focus on stress-relief activities"
	}
	return c
}
