package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A store created before routines carried notes keeps its rows and gains the
// column with an empty default.
func TestMigrate_UpgradeAddsRoutineNotes(t *testing.T) {
	db, err := sql.Open("sqlite", MemoryPath)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE routines (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL DEFAULT '',
		date       TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO routines (id, name, date, created_at, updated_at) VALUES ('r1', 'Monday', '2025-03-17', 'x', 'x')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	var name, notes string
	require.NoError(t, db.QueryRow(`SELECT name, notes FROM routines WHERE id = 'r1'`).Scan(&name, &notes))
	assert.Equal(t, "Monday", name)
	assert.Empty(t, notes)
}
