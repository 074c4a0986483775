package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"playbracket/internal/database"
)

func TestInitDBRunsMigrations(t *testing.T) {
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	defer func() {
		teardown()
		db.Close()
	}()

	for _, table := range []string{"players", "sports", "sport_players", "leagues", "league_admins", "events", "matches", "match_winners", "match_losers"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}

	var fk int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk, "foreign key enforcement should be on")
}

func TestInitDBMissingMigrationsDir(t *testing.T) {
	_, _, err := database.InitDB(":memory:", "", "", "./does-not-exist")
	assert.Error(t, err)
}
