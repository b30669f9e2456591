package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/wellspring/internal/domain"
	"github.com/alexanderramin/wellspring/internal/repository"
	"github.com/alexanderramin/wellspring/internal/service"
	"github.com/alexanderramin/wellspring/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)

type testServer struct {
	handler  http.Handler
	routines *repository.SQLiteRoutineRepo
	workouts *repository.SQLiteWorkoutRepo
	logs     *bytes.Buffer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	conn := testutil.NewTestDB(t)
	routines := repository.NewSQLiteRoutineRepo(conn)
	workouts := repository.NewSQLiteWorkoutRepo(conn)
	diets := repository.NewSQLiteDietRepo(conn)
	history := service.NewHistorySource(routines, workouts, diets)

	var logs bytes.Buffer
	srv := NewServer(
		service.NewInsightService(history),
		service.NewRoutineService(routines, testutil.NewTestUoW(conn)),
		Options{
			AllowedOrigins: []string{"http://localhost:8501"},
			Clock:          func() time.Time { return testNow },
			Logger:         slog.New(slog.NewTextHandler(&logs, nil)),
		},
	)
	return &testServer{handler: srv.Handler(), routines: routines, workouts: workouts, logs: &logs}
}

func (ts *testServer) do(t *testing.T, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, r)
	return w
}

func (ts *testServer) seedWeek(t *testing.T) {
	t.Helper()
	for _, d := range []string{"2025-03-14", "2025-03-15", "2025-03-16", "2025-03-17", "2025-03-18", "2025-03-19"} {
		rt := testutil.NewTestRoutine(d,
			testutil.NewTestTask("Deep work", testutil.At("09:00"), testutil.Lasting(90), testutil.Done()),
			testutil.NewTestTask("Gym", testutil.At("18:00"), testutil.InCategory(domain.CategoryExercise), testutil.Done()),
		)
		require.NoError(t, ts.routines.Upsert(context.Background(), &rt))
	}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Contains(t, ts.logs.String(), "status_code=200")
}

func TestProfile_EmptyHistory(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/api/profile", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestProfile_Populated(t *testing.T) {
	ts := newTestServer(t)
	ts.seedWeek(t)

	w := ts.do(t, http.MethodGet, "/api/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]json.RawMessage](t, w)
	for _, key := range []string{"energy_patterns", "stress_resilience", "consistency_score", "recovery_needs", "wellness_trajectory", "risk_factors", "strengths"} {
		assert.Contains(t, body, key)
	}
}

func TestEndpoints_ReturnJSON(t *testing.T) {
	ts := newTestServer(t)
	ts.seedWeek(t)
	w := testutil.NewTestWorkout("Legs", testutil.Targeting("Legs"), testutil.WithDifficulty(domain.DifficultyBeginner))
	require.NoError(t, ts.workouts.Upsert(context.Background(), &w))

	for _, path := range []string{
		"/api/patterns",
		"/api/recommendations/workouts",
		"/api/recommendations/meals",
		"/api/recommendations/routine",
		"/api/recommendations/schedule",
		"/api/interventions",
		"/api/coaching",
		"/api/readiness",
		"/api/meal-timing",
		"/api/summary",
		"/api/report",
	} {
		t.Run(path, func(t *testing.T) {
			w := ts.do(t, http.MethodGet, path, "")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.True(t, json.Valid(w.Body.Bytes()))
		})
	}
}

func TestRecommendations_EmptyCatalogIsEmptyArray(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/api/recommendations/workouts", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRecommendations_UnknownKind(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/api/recommendations/naps", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSummary_NowOverride(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/api/summary?now=2025-03-20T08:00:00Z", "")
	require.Equal(t, http.StatusOK, w.Code)
	s := decode[map[string]any](t, w)
	assert.Equal(t, 0.3, s["ai_confidence"])
	assert.Equal(t, "Learning", s["ai_status"])

	w = ts.do(t, http.MethodGet, "/api/summary?now=tomorrow", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCoaching_EmptyProfile(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/api/coaching", "")
	require.Equal(t, http.StatusOK, w.Code)
	c := decode[map[string]any](t, w)
	assert.Equal(t, "Building your AI profile...", c["message"])
	assert.Equal(t, 0.3, c["confidence"])
}

func TestRoutines_LogToggleAndGet(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/routines/2025-03-20/tasks",
		`{"name":"Walk","time":"07:15","duration":25,"category":"Exercise"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	rt := decode[domain.DailyRoutine](t, w)
	require.Len(t, rt.Tasks, 1)

	w = ts.do(t, http.MethodPost, "/api/routines/2025-03-20/tasks/1/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	task := decode[domain.RoutineTask](t, w)
	assert.True(t, task.Completed)

	w = ts.do(t, http.MethodGet, "/api/routines/2025-03-20", "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[domain.DailyRoutine](t, w)
	assert.True(t, got.Tasks[0].Completed)

	w = ts.do(t, http.MethodGet, "/api/routines?from=2025-03-01&to=2025-03-31", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.DailyRoutine](t, w), 1)
}

func TestRoutines_Errors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name, method, path, body string
		want                     int
	}{
		{"bad date", http.MethodGet, "/api/routines/20-03-2025", "", http.StatusBadRequest},
		{"missing routine", http.MethodGet, "/api/routines/2025-01-01", "", http.StatusNotFound},
		{"bad body", http.MethodPost, "/api/routines/2025-03-20/tasks", `{"nope":1}`, http.StatusBadRequest},
		{"invalid task", http.MethodPost, "/api/routines/2025-03-20/tasks", `{"name":"x","time":"noon"}`, http.StatusBadRequest},
		{"toggle missing", http.MethodPost, "/api/routines/2025-03-20/tasks/1/toggle", "", http.StatusNotFound},
		{"bad range", http.MethodGet, "/api/routines?from=March", "", http.StatusBadRequest},
		{"unknown path", http.MethodGet, "/api/nothing", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
			assert.Contains(t, decode[map[string]string](t, w), "error")
		})
	}
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t)

	r := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	r.Header.Set("Origin", "http://localhost:8501")
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, r)
	assert.Equal(t, "http://localhost:8501", w.Header().Get("Access-Control-Allow-Origin"))

	r = httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	r.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	ts.handler.ServeHTTP(w, r)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecoverPanic(t *testing.T) {
	s := NewServer(nil, nil, Options{})
	h := s.recoverPanic(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
