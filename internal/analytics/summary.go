package analytics

const profileSections = 7

// Summary counts every recommendation family for dashboard badges. Meal
// priorities do not contribute to HighPriority.
func (e *Engine) Summary() Summary {
	routineTips := e.SuggestRoutineOptimizations()
	workouts := e.RecommendWorkouts()
	meals := e.RecommendMeals()
	scheduling := e.SuggestOptimalScheduling()
	interventions := e.ProactiveInterventions()
	profile := e.WellnessProfile()

	s := Summary{
		RoutineTips:     len(routineTips),
		Workouts:        len(workouts),
		Meals:           len(meals),
		Scheduling:      len(scheduling),
		AIInterventions: len(interventions),
	}
	s.Total = s.RoutineTips + s.Workouts + s.Meals + s.Scheduling + s.AIInterventions

	for _, group := range [][]Recommendation{routineTips, workouts, scheduling} {
		for _, r := range group {
			if r.Priority == PriorityHigh {
				s.HighPriority++
			}
		}
	}
	for _, in := range interventions {
		if in.Priority == PriorityUrgent {
			s.UrgentInterventions++
		}
	}

	s.AIConfidence = clamp(float64(len(e.history.Routines))/10, 0.3, 0.95)
	s.AIStatus = aiStatus(s.AIConfidence)
	s.HasWellnessProfile = !profile.Empty()
	s.ProfileCompleteness = min(1.0, float64(profile.PopulatedSections())/profileSections)
	return s
}

func aiStatus(confidence float64) string {
	switch {
	case confidence < 0.5:
		return "Learning"
	case confidence < 0.7:
		return "Analyzing"
	case confidence < 0.9:
		return "Optimizing"
	default:
		return "Mastered"
	}
}
