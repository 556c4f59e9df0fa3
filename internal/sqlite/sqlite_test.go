package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnotherWeak/prova/internal/sqlite"
)

func TestOpenAppliesMigrations(t *testing.T) {
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	for _, table := range []string{"characters", "items", "schema_migrations"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "expected table %q to exist", table)
	}
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := sqlite.Open("")
	assert.Error(t, err)

	_, err = sqlite.Open("   ")
	assert.Error(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// A second open against the same file must not re-run migrations
	db, err = sqlite.Open(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(1) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSchemaEnforcesAmuletBackstop(t *testing.T) {
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = db.Exec(`INSERT INTO characters
		(name, adventurer_name, class, level, base_strength, base_defense, created_at, updated_at)
		VALUES ('Frodo', 'Ringbearer', 'Rogue', 1, 3, 3, 0, 0)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO items
		(name, type, strength, defense, owner_id, created_at, updated_at)
		VALUES ('Evenstar', 'Amulet', 1, 1, 1, 0, 0)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO items
		(name, type, strength, defense, owner_id, created_at, updated_at)
		VALUES ('Barrow Amulet', 'Amulet', 2, 0, 1, 0, 0)`)
	assert.Error(t, err, "a second amulet on the same owner must violate the unique index")
}
