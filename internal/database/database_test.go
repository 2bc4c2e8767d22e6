package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	for _, table := range []string{"players", "games", "game_stats"} {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "Querying for %s table should not produce an error", table)
		assert.Equal(t, table, name, "The '%s' table should be created", table)
	}
}

func TestInitDB_EnablesForeignKeys(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()

	var enabled int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func TestInitDB_ForeignKeysOnEveryConnection(t *testing.T) {
	db, teardown, err := InitDB(filepath.Join(t.TempDir(), "stats.db"), "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()

	// Without idle connections each query below runs on a freshly opened connection.
	db.SetMaxIdleConns(0)
	for i := 0; i < 3; i++ {
		var enabled int
		require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
		assert.Equal(t, 1, enabled, "connection %d", i)
	}
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=on", sqliteDSN(":memory:"))
	assert.Equal(t, "stats.db?_foreign_keys=on", sqliteDSN("stats.db"))
	assert.Equal(t, "file:stats.db?cache=shared&_foreign_keys=on", sqliteDSN("file:stats.db?cache=shared"))
}

func TestInitDB_MissingMigrations(t *testing.T) {
	_, _, err := InitDB(":memory:", "", "", "./does-not-exist")
	assert.Error(t, err)
}
