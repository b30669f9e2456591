package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/wellspring/internal/analytics"
	"github.com/alexanderramin/wellspring/internal/repository"
	"golang.org/x/sync/errgroup"
)

type repoHistory struct {
	routines repository.RoutineRepo
	workouts repository.WorkoutRepo
	diets    repository.DietRepo
}

func NewHistorySource(routines repository.RoutineRepo, workouts repository.WorkoutRepo, diets repository.DietRepo) HistorySource {
	return &repoHistory{routines: routines, workouts: workouts, diets: diets}
}

// LoadHistory reads the three collections concurrently.
func (h *repoHistory) LoadHistory(ctx context.Context) (analytics.History, error) {
	var out analytics.History
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rs, err := h.routines.List(ctx)
		if err != nil {
			return fmt.Errorf("loading routines: %w", err)
		}
		out.Routines = rs
		return nil
	})
	g.Go(func() error {
		ws, err := h.workouts.List(ctx)
		if err != nil {
			return fmt.Errorf("loading workout plans: %w", err)
		}
		out.Workouts = ws
		return nil
	})
	g.Go(func() error {
		ds, err := h.diets.List(ctx)
		if err != nil {
			return fmt.Errorf("loading diet plans: %w", err)
		}
		out.Diets = ds
		return nil
	})
	if err := g.Wait(); err != nil {
		return analytics.History{}, err
	}
	return out, nil
}
