package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/wellspring/internal/db"
	"github.com/alexanderramin/wellspring/internal/domain"
)

// SQLiteWorkoutRepo implements WorkoutRepo. Target muscle groups are stored
// as a JSON array; exercises live in workout_exercises.
type SQLiteWorkoutRepo struct {
	db db.DBTX
}

func NewSQLiteWorkoutRepo(conn db.DBTX) *SQLiteWorkoutRepo {
	return &SQLiteWorkoutRepo{db: conn}
}

const workoutColumns = `id, name, description, difficulty, target_muscle_groups, estimated_duration_min, created_at, updated_at`

func (r *SQLiteWorkoutRepo) Upsert(ctx context.Context, w *domain.WorkoutPlan) error {
	groups, err := encodeList(w.TargetMuscleGroups)
	if err != nil {
		return fmt.Errorf("encoding muscle groups: %w", err)
	}
	stamp(&w.CreatedAt, &w.UpdatedAt)
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO workout_plans (`+workoutColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			difficulty = excluded.difficulty,
			target_muscle_groups = excluded.target_muscle_groups,
			estimated_duration_min = excluded.estimated_duration_min,
			updated_at = excluded.updated_at`,
		w.ID, w.Name, w.Description, string(w.Difficulty), groups, w.EstimatedDuration,
		formatTime(w.CreatedAt), formatTime(w.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting workout %q: %w", w.Name, err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM workout_exercises WHERE workout_id = ?`, w.ID); err != nil {
		return fmt.Errorf("clearing exercises: %w", err)
	}
	for i, e := range w.Exercises {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO workout_exercises (workout_id, id, position, name, sets, reps, weight, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			w.ID, e.ID, i, e.Name, e.Sets, e.Reps, e.Weight, e.Notes,
		)
		if err != nil {
			return fmt.Errorf("inserting exercise %q: %w", e.Name, err)
		}
	}
	return nil
}

func (r *SQLiteWorkoutRepo) GetByID(ctx context.Context, id string) (*domain.WorkoutPlan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+workoutColumns+` FROM workout_plans WHERE id = ?`, id)
	w, err := scanWorkout(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("workout plan: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	exercises, err := r.exercisesFor(ctx, []string{w.ID})
	if err != nil {
		return nil, err
	}
	w.Exercises = nonNil(exercises[w.ID])
	return w, nil
}

// List returns the catalog in name order.
func (r *SQLiteWorkoutRepo) List(ctx context.Context) ([]domain.WorkoutPlan, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+workoutColumns+` FROM workout_plans ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing workout plans: %w", err)
	}
	plans := []domain.WorkoutPlan{}
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		plans = append(plans, *w)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating workout plans: %w", err)
	}
	rows.Close()

	ids := make([]string, len(plans))
	for i, w := range plans {
		ids[i] = w.ID
	}
	exercises, err := r.exercisesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range plans {
		plans[i].Exercises = nonNil(exercises[plans[i].ID])
	}
	return plans, nil
}

func (r *SQLiteWorkoutRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workout_plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting workout plan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("workout plan %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteWorkoutRepo) exercisesFor(ctx context.Context, workoutIDs []string) (map[string][]domain.Exercise, error) {
	out := make(map[string][]domain.Exercise, len(workoutIDs))
	if len(workoutIDs) == 0 {
		return out, nil
	}
	args := make([]any, len(workoutIDs))
	for i, id := range workoutIDs {
		args[i] = id
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT workout_id, id, name, sets, reps, weight, notes
		FROM workout_exercises WHERE workout_id IN (`+placeholders(len(args))+`)
		ORDER BY workout_id, position`, args...)
	if err != nil {
		return nil, fmt.Errorf("listing exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			workoutID string
			e         domain.Exercise
		)
		if err := rows.Scan(&workoutID, &e.ID, &e.Name, &e.Sets, &e.Reps, &e.Weight, &e.Notes); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		out[workoutID] = append(out[workoutID], e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exercises: %w", err)
	}
	return out, nil
}

func scanWorkout(s scanner) (*domain.WorkoutPlan, error) {
	var (
		w                  domain.WorkoutPlan
		difficulty, groups string
		created, updated   string
	)
	err := s.Scan(&w.ID, &w.Name, &w.Description, &difficulty, &groups, &w.EstimatedDuration, &created, &updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning workout plan: %w", err)
	}
	w.Difficulty = domain.Difficulty(difficulty)
	if w.TargetMuscleGroups, err = decodeList("target_muscle_groups", groups); err != nil {
		return nil, err
	}
	if w.CreatedAt, err = parseTime("created_at", created); err != nil {
		return nil, err
	}
	if w.UpdatedAt, err = parseTime("updated_at", updated); err != nil {
		return nil, err
	}
	return &w, nil
}

func nonNil[T any](xs []T) []T {
	if xs == nil {
		return []T{}
	}
	return xs
}
