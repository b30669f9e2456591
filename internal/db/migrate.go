package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are idempotent; ALTER
// TABLE additions that already ran fail with "duplicate column name" and are
// skipped.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS routines (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL DEFAULT '',
		date       TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS routine_tasks (
		routine_id   TEXT NOT NULL REFERENCES routines(id) ON DELETE CASCADE,
		id           TEXT NOT NULL,
		position     INTEGER NOT NULL,
		name         TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		time         TEXT NOT NULL DEFAULT '',
		duration_min INTEGER NOT NULL DEFAULT 0 CHECK(duration_min >= 0),
		category     TEXT NOT NULL DEFAULT 'Other',
		completed    INTEGER NOT NULL DEFAULT 0 CHECK(completed IN (0, 1)),
		PRIMARY KEY (routine_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS workout_plans (
		id                     TEXT PRIMARY KEY,
		name                   TEXT NOT NULL,
		description            TEXT NOT NULL DEFAULT '',
		difficulty             TEXT NOT NULL DEFAULT 'Beginner'
		                       CHECK(difficulty IN ('Beginner','Intermediate','Advanced')),
		target_muscle_groups   TEXT NOT NULL DEFAULT '[]',
		estimated_duration_min INTEGER NOT NULL DEFAULT 0 CHECK(estimated_duration_min >= 0),
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS workout_exercises (
		workout_id TEXT NOT NULL REFERENCES workout_plans(id) ON DELETE CASCADE,
		id         TEXT NOT NULL,
		position   INTEGER NOT NULL,
		name       TEXT NOT NULL,
		sets       INTEGER NOT NULL DEFAULT 0,
		reps       TEXT NOT NULL DEFAULT '',
		weight     TEXT NOT NULL DEFAULT '',
		notes      TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (workout_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS diet_plans (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		daily_calories INTEGER NOT NULL DEFAULT 0,
		daily_protein  REAL NOT NULL DEFAULT 0,
		daily_carbs    REAL NOT NULL DEFAULT 0,
		daily_fat      REAL NOT NULL DEFAULT 0,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS meals (
		diet_id     TEXT NOT NULL REFERENCES diet_plans(id) ON DELETE CASCADE,
		id          TEXT NOT NULL,
		position    INTEGER NOT NULL,
		name        TEXT NOT NULL,
		calories    INTEGER NOT NULL DEFAULT 0,
		protein     REAL NOT NULL DEFAULT 0,
		carbs       REAL NOT NULL DEFAULT 0,
		fat         REAL NOT NULL DEFAULT 0,
		ingredients TEXT NOT NULL DEFAULT '[]',
		notes       TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (diet_id, id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_routine_tasks_routine ON routine_tasks(routine_id, position)`,
	`CREATE INDEX IF NOT EXISTS idx_workout_exercises_workout ON workout_exercises(workout_id, position)`,
	`CREATE INDEX IF NOT EXISTS idx_meals_diet ON meals(diet_id, position)`,
	`ALTER TABLE routines ADD COLUMN notes TEXT NOT NULL DEFAULT ''`,
}
