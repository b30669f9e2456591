package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/wellspring/internal/analytics"
	"github.com/alexanderramin/wellspring/internal/config"
	"github.com/alexanderramin/wellspring/internal/domain"
	"github.com/alexanderramin/wellspring/internal/repository"
	"github.com/alexanderramin/wellspring/internal/service"
	"github.com/gorilla/mux"
)

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// now honours a ?now= override in RFC3339 or YYYY-MM-DD form.
func (s *Server) now(r *http.Request) (time.Time, error) {
	if v := r.URL.Query().Get("now"); v != "" {
		return config.ParseNow(v)
	}
	return s.clock(), nil
}

// withEngine builds a fresh engine for the request and hands it to fn.
func (s *Server) withEngine(w http.ResponseWriter, r *http.Request, fn func(*analytics.Engine) any) {
	now, err := s.now(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	eng, err := s.insights.Engine(r.Context(), now)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fn(eng))
}

func (s *Server) profile(w http.ResponseWriter, r *http.Request) {
	s.withEngine(w, r, func(e *analytics.Engine) any { return e.WellnessProfile() })
}

func (s *Server) patterns(w http.ResponseWriter, r *http.Request) {
	s.withEngine(w, r, func(e *analytics.Engine) any { return e.CompletionPatterns() })
}

func (s *Server) recommendations(w http.ResponseWriter, r *http.Request) {
	kinds := map[string]func(*analytics.Engine) []analytics.Recommendation{
		"workouts": (*analytics.Engine).RecommendWorkouts,
		"meals":    (*analytics.Engine).RecommendMeals,
		"routine":  (*analytics.Engine).SuggestRoutineOptimizations,
		"schedule": (*analytics.Engine).SuggestOptimalScheduling,
	}
	kind := mux.Vars(r)["kind"]
	fn, ok := kinds[kind]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown recommendation kind "+kind)
		return
	}
	s.withEngine(w, r, func(e *analytics.Engine) any { return fn(e) })
}

func (s *Server) interventions(w http.ResponseWriter, r *http.Request) {
	s.withEngine(w, r, func(e *analytics.Engine) any { return e.ProactiveInterventions() })
}

func (s *Server) coaching(w http.ResponseWriter, r *http.Request) {
	s.withEngine(w, r, func(e *analytics.Engine) any { return e.RealTimeCoaching() })
}

func (s *Server) readiness(w http.ResponseWriter, r *http.Request) {
	s.withEngine(w, r, func(e *analytics.Engine) any { return e.WorkoutReadiness() })
}

func (s *Server) mealTiming(w http.ResponseWriter, r *http.Request) {
	s.withEngine(w, r, func(e *analytics.Engine) any { return e.AdaptiveMealTiming() })
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	s.withEngine(w, r, func(e *analytics.Engine) any { return e.Summary() })
}

func (s *Server) report(w http.ResponseWriter, r *http.Request) {
	now, err := s.now(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rep, err := s.insights.Report(r.Context(), now)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// listRoutines returns routines between ?from= and ?to=, defaulting to the
// last 30 days.
func (s *Server) listRoutines(w http.ResponseWriter, r *http.Request) {
	now, err := s.now(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	to := domain.CivilDate(now)
	from := to.AddDate(0, 0, -30)
	q := r.URL.Query()
	if v := q.Get("from"); v != "" {
		if from, err = time.Parse(domain.DateLayout, v); err != nil {
			writeError(w, http.StatusBadRequest, "from: expected YYYY-MM-DD")
			return
		}
	}
	if v := q.Get("to"); v != "" {
		if to, err = time.Parse(domain.DateLayout, v); err != nil {
			writeError(w, http.StatusBadRequest, "to: expected YYYY-MM-DD")
			return
		}
	}
	routines, err := s.routines.List(r.Context(), from, to)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, routines)
}

func (s *Server) getRoutine(w http.ResponseWriter, r *http.Request) {
	date, ok := pathDate(w, r)
	if !ok {
		return
	}
	rt, err := s.routines.Get(r.Context(), date)
	if err != nil {
		s.handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

func (s *Server) logTask(w http.ResponseWriter, r *http.Request) {
	date, ok := pathDate(w, r)
	if !ok {
		return
	}
	var task domain.RoutineTask
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&task); err != nil {
		writeError(w, http.StatusBadRequest, "invalid task body: "+err.Error())
		return
	}
	rt, err := s.routines.LogTask(r.Context(), date, task)
	if err != nil {
		s.handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rt)
}

func (s *Server) toggleTask(w http.ResponseWriter, r *http.Request) {
	date, ok := pathDate(w, r)
	if !ok {
		return
	}
	task, err := s.routines.ToggleTask(r.Context(), date, mux.Vars(r)["ref"])
	if err != nil {
		s.handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func pathDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	d, err := time.Parse(domain.DateLayout, mux.Vars(r)["date"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "date: expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return d, true
}

// handleServiceError maps lookups to 404, ambiguous references to 409 and
// anything else that is not a storage failure to 400.
func (s *Server) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAmbiguousTask):
		writeError(w, http.StatusConflict, err.Error())
	case r.Method == http.MethodPost && isValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.serverError(w, r, err)
	}
}

func isValidation(err error) bool {
	var ve *service.ValidationError
	return errors.As(err, &ve)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.LogAttrs(r.Context(), slog.LevelError, "request failed",
		slog.String("path", r.URL.Path), slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
