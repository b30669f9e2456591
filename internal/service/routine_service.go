package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/wellspring/internal/db"
	"github.com/alexanderramin/wellspring/internal/domain"
	"github.com/alexanderramin/wellspring/internal/repository"
	"github.com/google/uuid"
)

// ErrAmbiguousTask is returned when a task reference prefix matches more
// than one task.
var ErrAmbiguousTask = errors.New("ambiguous task reference")

type routineService struct {
	routines repository.RoutineRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewRoutineService(routines repository.RoutineRepo, uow db.UnitOfWork, observers ...UseCaseObserver) RoutineService {
	return &routineService{routines: routines, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *routineService) Get(ctx context.Context, date time.Time) (*domain.DailyRoutine, error) {
	return s.routines.GetByDate(ctx, date)
}

func (s *routineService) List(ctx context.Context, from, to time.Time) ([]domain.DailyRoutine, error) {
	return s.routines.ListBetween(ctx, from, to)
}

// LogTask appends task to the routine for date, creating the routine when
// none exists yet.
func (s *routineService) LogTask(ctx context.Context, date time.Time, task domain.RoutineTask) (rt *domain.DailyRoutine, err error) {
	date = domain.CivilDate(date)
	done := track(ctx, s.observer, "log-task", map[string]any{
		"date":     date.Format(domain.DateLayout),
		"category": task.Category,
	})
	defer func() { done(err) }()

	if err := validateTask(task); err != nil {
		return nil, err
	}
	task.ID = domain.Coalesce(task.ID, uuid.New().String())
	task.Category = domain.Coalesce(task.Category, domain.CategoryOther)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRoutines := repository.NewSQLiteRoutineRepo(tx)
		existing, err := txRoutines.GetByDate(ctx, date)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			existing = &domain.DailyRoutine{
				ID:    uuid.New().String(),
				Name:  "Routine for " + date.Format(domain.DateLayout),
				Date:  date,
				Tasks: []domain.RoutineTask{},
			}
		case err != nil:
			return err
		}
		existing.Tasks = append(existing.Tasks, task)
		if err := txRoutines.Upsert(ctx, existing); err != nil {
			return err
		}
		rt = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func validateTask(t domain.RoutineTask) error {
	if strings.TrimSpace(t.Name) == "" {
		return invalid("task name is required")
	}
	if _, err := time.Parse("15:04", t.Time); err != nil {
		return invalid(fmt.Sprintf("task time %q: expected HH:MM", t.Time))
	}
	if t.Duration < 0 {
		return invalid("task duration must be non-negative")
	}
	return nil
}

func (s *routineService) SetTaskCompleted(ctx context.Context, date time.Time, ref string, completed bool) (*domain.RoutineTask, error) {
	return s.updateTask(ctx, "complete-task", date, ref, func(bool) bool { return completed })
}

func (s *routineService) ToggleTask(ctx context.Context, date time.Time, ref string) (*domain.RoutineTask, error) {
	return s.updateTask(ctx, "toggle-task", date, ref, func(cur bool) bool { return !cur })
}

func (s *routineService) updateTask(ctx context.Context, name string, date time.Time, ref string, next func(bool) bool) (task *domain.RoutineTask, err error) {
	done := track(ctx, s.observer, name, map[string]any{"date": date.Format(domain.DateLayout), "ref": ref})
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRoutines := repository.NewSQLiteRoutineRepo(tx)
		rt, err := txRoutines.GetByDate(ctx, date)
		if err != nil {
			return err
		}
		i, err := resolveTask(rt.Tasks, ref)
		if err != nil {
			return err
		}
		t := rt.Tasks[i]
		t.Completed = next(t.Completed)
		if err := txRoutines.SetTaskCompleted(ctx, rt.ID, t.ID, t.Completed); err != nil {
			return err
		}
		task = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// resolveTask matches ref against, in order: an exact task ID, a 1-based
// position, a case-insensitive task name, and a unique ID prefix.
func resolveTask(tasks []domain.RoutineTask, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	for i, t := range tasks {
		if t.ID == ref {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n >= 1 && n <= len(tasks) {
			return n - 1, nil
		}
		return 0, fmt.Errorf("task #%d: %w", n, repository.ErrNotFound)
	}
	for i, t := range tasks {
		if strings.EqualFold(t.Name, ref) {
			return i, nil
		}
	}
	match := -1
	for i, t := range tasks {
		if ref != "" && strings.HasPrefix(t.ID, ref) {
			if match >= 0 {
				return 0, fmt.Errorf("%q: %w", ref, ErrAmbiguousTask)
			}
			match = i
		}
	}
	if match < 0 {
		return 0, fmt.Errorf("task %q: %w", ref, repository.ErrNotFound)
	}
	return match, nil
}

func (s *routineService) Delete(ctx context.Context, date time.Time) (err error) {
	done := track(ctx, s.observer, "delete-routine", map[string]any{"date": date.Format(domain.DateLayout)})
	defer func() { done(err) }()

	rt, err := s.routines.GetByDate(ctx, date)
	if err != nil {
		return err
	}
	return s.routines.Delete(ctx, rt.ID)
}
