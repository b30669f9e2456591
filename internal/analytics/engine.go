package analytics

import (
	"time"

	"github.com/alexanderramin/wellspring/internal/domain"
)

// Engine derives patterns, profiles and recommendations from one History
// snapshot as of a fixed instant. The wellness profile is computed once per
// Engine; call Invalidate or build a new Engine when the history changes.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	history History
	now     time.Time
	today   time.Time

	profile  *WellnessProfile
	patterns *CompletionPatterns
}

func NewEngine(h History, now time.Time) *Engine {
	return &Engine{
		history: h,
		now:     now,
		today:   domain.CivilDate(now),
	}
}

// Now returns the instant the engine evaluates time-of-day logic against.
func (e *Engine) Now() time.Time { return e.now }

// Invalidate drops memoized results.
func (e *Engine) Invalidate() {
	e.profile = nil
	e.patterns = nil
}

// CompletionPatterns returns the task completion buckets for the history.
func (e *Engine) CompletionPatterns() CompletionPatterns {
	if e.patterns == nil {
		p := CompletionPatternsOf(e.history.Routines)
		e.patterns = &p
	}
	return *e.patterns
}

// WellnessProfile builds the full profile. An empty history yields the
// empty profile. The result is a copy the caller may modify.
func (e *Engine) WellnessProfile() WellnessProfile {
	if e.profile != nil {
		return e.profile.clone()
	}
	routines := e.history.Routines
	if len(routines) == 0 {
		return WellnessProfile{}
	}

	energy := analyzeEnergyPatterns(routines)
	stress := calculateStressResilience(routines)
	consistency := measureConsistency(routines)
	recovery := assessRecoveryRequirements(routines)
	trajectory := predictWellnessTrajectory(routines)
	p := WellnessProfile{
		EnergyPatterns:   &energy,
		StressResilience: &stress,
		Consistency:      &consistency,
		RecoveryNeeds:    &recovery,
		Trajectory:       &trajectory,
		RiskFactors:      identifyRiskFactors(routines),
		Strengths:        identifyStrengths(e.CompletionPatterns(), consistency, recovery),
	}
	e.profile = &p
	return p.clone()
}

// routinesSince returns routines dated on or after today minus days.
func (e *Engine) routinesSince(days int) []domain.DailyRoutine {
	cutoff := e.today.AddDate(0, 0, -days)
	var out []domain.DailyRoutine
	for _, r := range e.history.Routines {
		if !domain.CivilDate(r.Date).Before(cutoff) {
			out = append(out, r)
		}
	}
	return out
}
