package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/wellspring/internal/db"
	"github.com/alexanderramin/wellspring/internal/domain"
)

// SQLiteDietRepo implements DietRepo. Meals keep their plan order and store
// ingredients as a JSON array.
type SQLiteDietRepo struct {
	db db.DBTX
}

func NewSQLiteDietRepo(conn db.DBTX) *SQLiteDietRepo {
	return &SQLiteDietRepo{db: conn}
}

const dietColumns = `id, name, description, daily_calories, daily_protein, daily_carbs, daily_fat, created_at, updated_at`

func (r *SQLiteDietRepo) Upsert(ctx context.Context, d *domain.DietPlan) error {
	stamp(&d.CreatedAt, &d.UpdatedAt)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO diet_plans (`+dietColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			daily_calories = excluded.daily_calories,
			daily_protein = excluded.daily_protein,
			daily_carbs = excluded.daily_carbs,
			daily_fat = excluded.daily_fat,
			updated_at = excluded.updated_at`,
		d.ID, d.Name, d.Description, d.DailyCalories, d.DailyProtein, d.DailyCarbs, d.DailyFat,
		formatTime(d.CreatedAt), formatTime(d.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting diet plan %q: %w", d.Name, err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM meals WHERE diet_id = ?`, d.ID); err != nil {
		return fmt.Errorf("clearing meals: %w", err)
	}
	for i, m := range d.Meals {
		ingredients, err := encodeList(m.Ingredients)
		if err != nil {
			return fmt.Errorf("encoding ingredients: %w", err)
		}
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO meals (diet_id, id, position, name, calories, protein, carbs, fat, ingredients, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			d.ID, m.ID, i, m.Name, m.Calories, m.Protein, m.Carbs, m.Fat, ingredients, m.Notes,
		)
		if err != nil {
			return fmt.Errorf("inserting meal %q: %w", m.Name, err)
		}
	}
	return nil
}

func (r *SQLiteDietRepo) GetByID(ctx context.Context, id string) (*domain.DietPlan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+dietColumns+` FROM diet_plans WHERE id = ?`, id)
	d, err := scanDiet(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("diet plan: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	meals, err := r.mealsFor(ctx, []string{d.ID})
	if err != nil {
		return nil, err
	}
	d.Meals = nonNil(meals[d.ID])
	return d, nil
}

// List returns the diet catalog in name order.
func (r *SQLiteDietRepo) List(ctx context.Context) ([]domain.DietPlan, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+dietColumns+` FROM diet_plans ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing diet plans: %w", err)
	}
	plans := []domain.DietPlan{}
	for rows.Next() {
		d, err := scanDiet(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		plans = append(plans, *d)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating diet plans: %w", err)
	}
	rows.Close()

	ids := make([]string, len(plans))
	for i, d := range plans {
		ids[i] = d.ID
	}
	meals, err := r.mealsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range plans {
		plans[i].Meals = nonNil(meals[plans[i].ID])
	}
	return plans, nil
}

func (r *SQLiteDietRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM diet_plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting diet plan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("diet plan %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteDietRepo) mealsFor(ctx context.Context, dietIDs []string) (map[string][]domain.Meal, error) {
	out := make(map[string][]domain.Meal, len(dietIDs))
	if len(dietIDs) == 0 {
		return out, nil
	}
	args := make([]any, len(dietIDs))
	for i, id := range dietIDs {
		args[i] = id
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT diet_id, id, name, calories, protein, carbs, fat, ingredients, notes
		FROM meals WHERE diet_id IN (`+placeholders(len(args))+`)
		ORDER BY diet_id, position`, args...)
	if err != nil {
		return nil, fmt.Errorf("listing meals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			dietID      string
			m           domain.Meal
			ingredients string
		)
		if err := rows.Scan(&dietID, &m.ID, &m.Name, &m.Calories, &m.Protein, &m.Carbs, &m.Fat, &ingredients, &m.Notes); err != nil {
			return nil, fmt.Errorf("scanning meal: %w", err)
		}
		if m.Ingredients, err = decodeList("ingredients", ingredients); err != nil {
			return nil, err
		}
		out[dietID] = append(out[dietID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating meals: %w", err)
	}
	return out, nil
}

func scanDiet(s scanner) (*domain.DietPlan, error) {
	var (
		d                domain.DietPlan
		created, updated string
	)
	err := s.Scan(&d.ID, &d.Name, &d.Description, &d.DailyCalories, &d.DailyProtein, &d.DailyCarbs, &d.DailyFat, &created, &updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning diet plan: %w", err)
	}
	if d.CreatedAt, err = parseTime("created_at", created); err != nil {
		return nil, err
	}
	if d.UpdatedAt, err = parseTime("updated_at", updated); err != nil {
		return nil, err
	}
	return &d, nil
}
