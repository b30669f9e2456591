// Package api serves engine output as JSON for external dashboards.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/wellspring/internal/service"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

type Options struct {
	// AllowedOrigins lists browser origins permitted by CORS.
	AllowedOrigins []string
	// Clock supplies "now" when a request has no ?now= override.
	Clock  func() time.Time
	Logger *slog.Logger
}

type Server struct {
	insights service.InsightService
	routines service.RoutineService
	origins  []string
	clock    func() time.Time
	logger   *slog.Logger
}

func NewServer(insights service.InsightService, routines service.RoutineService, opts Options) *Server {
	s := &Server{
		insights: insights,
		routines: routines,
		origins:  opts.AllowedOrigins,
		clock:    opts.Clock,
		logger:   opts.Logger,
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// Handler returns the routed handler wrapped in CORS, logging and panic
// recovery.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.healthz).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/profile", s.profile).Methods(http.MethodGet)
	api.HandleFunc("/patterns", s.patterns).Methods(http.MethodGet)
	api.HandleFunc("/recommendations/{kind}", s.recommendations).Methods(http.MethodGet)
	api.HandleFunc("/interventions", s.interventions).Methods(http.MethodGet)
	api.HandleFunc("/coaching", s.coaching).Methods(http.MethodGet)
	api.HandleFunc("/readiness", s.readiness).Methods(http.MethodGet)
	api.HandleFunc("/meal-timing", s.mealTiming).Methods(http.MethodGet)
	api.HandleFunc("/summary", s.summary).Methods(http.MethodGet)
	api.HandleFunc("/report", s.report).Methods(http.MethodGet)
	api.HandleFunc("/routines", s.listRoutines).Methods(http.MethodGet)
	api.HandleFunc("/routines/{date}", s.getRoutine).Methods(http.MethodGet)
	api.HandleFunc("/routines/{date}/tasks", s.logTask).Methods(http.MethodPost)
	api.HandleFunc("/routines/{date}/tasks/{ref}/toggle", s.toggleTask).Methods(http.MethodPost)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return s.recoverPanic(s.logResponse(c.Handler(r)))
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", slog.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("server stopping")
		return srv.Shutdown(shutdownCtx)
	}
}
