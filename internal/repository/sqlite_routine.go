package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/wellspring/internal/db"
	"github.com/alexanderramin/wellspring/internal/domain"
)

// SQLiteRoutineRepo implements RoutineRepo. Tasks live in routine_tasks and
// keep their list order through the position column.
type SQLiteRoutineRepo struct {
	db db.DBTX
}

func NewSQLiteRoutineRepo(conn db.DBTX) *SQLiteRoutineRepo {
	return &SQLiteRoutineRepo{db: conn}
}

const routineColumns = `id, name, date, notes, created_at, updated_at`

// Upsert writes the routine row and replaces its tasks. Callers that need
// the two steps to be atomic run it inside a UnitOfWork.
func (r *SQLiteRoutineRepo) Upsert(ctx context.Context, rt *domain.DailyRoutine) error {
	stamp(&rt.CreatedAt, &rt.UpdatedAt)
	query := `INSERT INTO routines (id, name, date, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			date = excluded.date,
			notes = excluded.notes,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		rt.ID,
		rt.Name,
		rt.DateKey(),
		rt.Notes,
		formatTime(rt.CreatedAt),
		formatTime(rt.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting routine %s: %w", rt.DateKey(), err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM routine_tasks WHERE routine_id = ?`, rt.ID); err != nil {
		return fmt.Errorf("clearing routine tasks: %w", err)
	}
	for i, t := range rt.Tasks {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO routine_tasks (routine_id, id, position, name, description, time, duration_min, category, completed)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rt.ID, t.ID, i, t.Name, t.Description, t.Time, t.Duration, t.Category, boolToInt(t.Completed),
		)
		if err != nil {
			return fmt.Errorf("inserting task %q: %w", t.Name, err)
		}
	}
	return nil
}

func (r *SQLiteRoutineRepo) GetByID(ctx context.Context, id string) (*domain.DailyRoutine, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+routineColumns+` FROM routines WHERE id = ?`, id)
	return r.get(ctx, row)
}

func (r *SQLiteRoutineRepo) GetByDate(ctx context.Context, date time.Time) (*domain.DailyRoutine, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+routineColumns+` FROM routines WHERE date = ?`,
		date.Format(domain.DateLayout))
	return r.get(ctx, row)
}

// List returns every routine ordered by date.
func (r *SQLiteRoutineRepo) List(ctx context.Context) ([]domain.DailyRoutine, error) {
	return r.list(ctx, `SELECT `+routineColumns+` FROM routines ORDER BY date`)
}

// ListBetween returns routines dated within [from, to], inclusive.
func (r *SQLiteRoutineRepo) ListBetween(ctx context.Context, from, to time.Time) ([]domain.DailyRoutine, error) {
	return r.list(ctx, `SELECT `+routineColumns+` FROM routines WHERE date BETWEEN ? AND ? ORDER BY date`,
		from.Format(domain.DateLayout), to.Format(domain.DateLayout))
}

func (r *SQLiteRoutineRepo) SetTaskCompleted(ctx context.Context, routineID, taskID string, completed bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE routine_tasks SET completed = ? WHERE routine_id = ? AND id = ?`,
		boolToInt(completed), routineID, taskID)
	if err != nil {
		return fmt.Errorf("updating task %s: %w", taskID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("task %s: %w", taskID, ErrNotFound)
	}
	_, err = r.db.ExecContext(ctx, `UPDATE routines SET updated_at = ? WHERE id = ?`,
		formatTime(time.Now()), routineID)
	if err != nil {
		return fmt.Errorf("touching routine %s: %w", routineID, err)
	}
	return nil
}

func (r *SQLiteRoutineRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM routines WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting routine: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("routine %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteRoutineRepo) get(ctx context.Context, row *sql.Row) (*domain.DailyRoutine, error) {
	rt, err := scanRoutine(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("routine: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	tasks, err := r.tasksFor(ctx, []string{rt.ID})
	if err != nil {
		return nil, err
	}
	rt.Tasks = tasks[rt.ID]
	if rt.Tasks == nil {
		rt.Tasks = []domain.RoutineTask{}
	}
	return rt, nil
}

func (r *SQLiteRoutineRepo) list(ctx context.Context, query string, args ...any) ([]domain.DailyRoutine, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing routines: %w", err)
	}
	routines := []domain.DailyRoutine{}
	for rows.Next() {
		rt, err := scanRoutine(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		routines = append(routines, *rt)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating routines: %w", err)
	}
	rows.Close()

	ids := make([]string, len(routines))
	for i, rt := range routines {
		ids[i] = rt.ID
	}
	tasks, err := r.tasksFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range routines {
		routines[i].Tasks = tasks[routines[i].ID]
		if routines[i].Tasks == nil {
			routines[i].Tasks = []domain.RoutineTask{}
		}
	}
	return routines, nil
}

// tasksFor loads tasks for the given routines keyed by routine ID.
func (r *SQLiteRoutineRepo) tasksFor(ctx context.Context, routineIDs []string) (map[string][]domain.RoutineTask, error) {
	out := make(map[string][]domain.RoutineTask, len(routineIDs))
	if len(routineIDs) == 0 {
		return out, nil
	}
	args := make([]any, len(routineIDs))
	for i, id := range routineIDs {
		args[i] = id
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT routine_id, id, name, description, time, duration_min, category, completed
		FROM routine_tasks WHERE routine_id IN (`+placeholders(len(args))+`)
		ORDER BY routine_id, position`, args...)
	if err != nil {
		return nil, fmt.Errorf("listing routine tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			routineID string
			t         domain.RoutineTask
			completed int
		)
		if err := rows.Scan(&routineID, &t.ID, &t.Name, &t.Description, &t.Time, &t.Duration, &t.Category, &completed); err != nil {
			return nil, fmt.Errorf("scanning routine task: %w", err)
		}
		t.Completed = intToBool(completed)
		out[routineID] = append(out[routineID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating routine tasks: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRoutine(s scanner) (*domain.DailyRoutine, error) {
	var (
		rt               domain.DailyRoutine
		date             string
		created, updated string
	)
	if err := s.Scan(&rt.ID, &rt.Name, &date, &rt.Notes, &created, &updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning routine: %w", err)
	}
	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parsing routine date %q: %w", date, err)
	}
	rt.Date = d
	if rt.CreatedAt, err = parseTime("created_at", created); err != nil {
		return nil, err
	}
	if rt.UpdatedAt, err = parseTime("updated_at", updated); err != nil {
		return nil, err
	}
	return &rt, nil
}
