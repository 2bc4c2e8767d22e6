package roster_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/mauv0809/hockey-stats/internal/database"
	"github.com/mauv0809/hockey-stats/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (roster.Roster, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return roster.New(db), db, dbTeardown
}

func TestSeed_IsIdempotent(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	inserted, err := store.Seed(ctx, roster.DefaultRoster)
	require.NoError(t, err)
	assert.Equal(t, len(roster.DefaultRoster), inserted)

	inserted, err = store.Seed(ctx, roster.DefaultRoster)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted, "re-seeding must not insert duplicates")

	players, err := store.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Len(t, players, len(roster.DefaultRoster))
}

func TestSeed_KeepsExistingNames(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	_, err := store.AddPlayer(ctx, 13, "Nicole")
	require.NoError(t, err)

	inserted, err := store.Seed(ctx, []roster.Entry{{Number: 13, Name: "Cole"}, {Number: 14, Name: "Leo"}})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	players, err := store.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Nicole", players[0].Name)
}

func TestListPlayers_SortedByNumber(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	_, err := store.Seed(ctx, []roster.Entry{{Number: 44, Name: "Brooks"}, {Number: 4, Name: "Ryder"}, {Number: 13, Name: "Cole"}})
	require.NoError(t, err)

	players, err := store.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 3)
	assert.Equal(t, []int{4, 13, 44}, []int{players[0].Number, players[1].Number, players[2].Number})
}

func TestGetPlayer(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	cole, err := store.AddPlayer(ctx, 13, "Cole")
	require.NoError(t, err)

	got, err := store.GetPlayer(ctx, cole.ID)
	require.NoError(t, err)
	assert.Equal(t, *cole, *got)

	_, err = store.GetPlayer(ctx, cole.ID+100)
	assert.ErrorIs(t, err, roster.ErrPlayerNotFound)
}

func TestAddPlayer_DuplicateNumber(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	_, err := store.AddPlayer(ctx, 13, "Cole")
	require.NoError(t, err)
	_, err = store.AddPlayer(ctx, 13, "Someone Else")
	assert.ErrorIs(t, err, roster.ErrDuplicateNumber)
}

func TestRenamePlayer(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	p, err := store.AddPlayer(ctx, 16, "Shay")
	require.NoError(t, err)
	require.NoError(t, store.RenamePlayer(ctx, p.ID, "Shea"))

	got, err := store.GetPlayer(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shea", got.Name)

	assert.ErrorIs(t, store.RenamePlayer(ctx, 999, "Nobody"), roster.ErrPlayerNotFound)
}

func TestDeletePlayer_CascadesStats(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	p, err := store.AddPlayer(ctx, 13, "Cole")
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO game_stats (player_id, game_date, plus_minus) VALUES (?, '2024-01-15 18:00:00', 1), (?, '2024-01-22 18:00:00', 2)`, p.ID, p.ID)
	require.NoError(t, err)

	require.NoError(t, store.DeletePlayer(ctx, p.ID))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM game_stats WHERE player_id = ?", p.ID).Scan(&count))
	assert.Equal(t, 0, count)

	assert.ErrorIs(t, store.DeletePlayer(ctx, p.ID), roster.ErrPlayerNotFound)
}
