package bracket_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"playbracket/internal/bracket"
	"playbracket/internal/database"
)

func setupTestDB(t *testing.T) (bracket.BracketStore, func()) {
	t.Helper()
	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := bracket.New(db)
	teardown := func() {
		dbTeardown()
		db.Close()
	}
	return store, teardown
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(bracket.DateLayout, value)
	require.NoError(t, err)
	return date
}

func TestCreateAndGetPlayer(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	created, err := store.CreatePlayer("Alice")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Alice", created.Name)

	byID, err := store.GetPlayer(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)

	byName, err := store.GetPlayerByName("Alice")
	require.NoError(t, err)
	assert.Equal(t, created, byName)
}

func TestCreatePlayerRejectsEmptyName(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	for _, name := range []string{"", "   "} {
		_, err := store.CreatePlayer(name)
		require.Error(t, err)

		var verr *bracket.ValidationError
		assert.True(t, errors.As(err, &verr))
	}
}

func TestCreatePlayerEnforcesUniqueName(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.CreatePlayer("Alice")
	require.NoError(t, err)

	_, err = store.CreatePlayer("Alice")
	assert.Error(t, err)
}

func TestListAndDeletePlayers(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	alice, err := store.CreatePlayer("Alice")
	require.NoError(t, err)
	_, err = store.CreatePlayer("Bob")
	require.NoError(t, err)

	players, err := store.ListPlayers()
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Alice", players[0].Name)
	assert.Equal(t, "Bob", players[1].Name)

	require.NoError(t, store.DeletePlayer(alice.ID))
	players, err = store.ListPlayers()
	require.NoError(t, err)
	assert.Len(t, players, 1)
}

func TestSportRoster(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	squash, err := store.CreateSport("squash")
	require.NoError(t, err)
	padel, err := store.CreateSport("padel")
	require.NoError(t, err)

	alice, err := store.CreatePlayer("Alice")
	require.NoError(t, err)
	bob, err := store.CreatePlayer("Bob")
	require.NoError(t, err)

	require.NoError(t, store.AddPlayerToSport(squash.ID, alice.ID))
	require.NoError(t, store.AddPlayerToSport(squash.ID, bob.ID))
	require.NoError(t, store.AddPlayerToSport(padel.ID, alice.ID))

	// Re-adding a member is a no-op.
	require.NoError(t, store.AddPlayerToSport(squash.ID, alice.ID))

	roster, err := store.SportPlayers(squash.ID)
	require.NoError(t, err)
	assert.Len(t, roster, 2)

	sports, err := store.PlayerSports(alice.ID)
	require.NoError(t, err)
	assert.Len(t, sports, 2)

	require.NoError(t, store.RemovePlayerFromSport(squash.ID, bob.ID))
	roster, err = store.SportPlayers(squash.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "Alice", roster[0].Name)
}

func TestLeaguePlayersDelegateToSportRoster(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	squash, err := store.CreateSport("squash")
	require.NoError(t, err)

	alice, err := store.CreatePlayer("Alice")
	require.NoError(t, err)
	bob, err := store.CreatePlayer("Bob")
	require.NoError(t, err)
	require.NoError(t, store.AddPlayerToSport(squash.ID, alice.ID))
	require.NoError(t, store.AddPlayerToSport(squash.ID, bob.ID))

	league, err := store.CreateLeague("Tuesday Night League", &squash.ID)
	require.NoError(t, err)

	// Only Alice has a match in this league, but the league's player
	// list is the full sport roster.
	match := &bracket.Match{
		Date:     mustDate(t, "2026-08-01"),
		Winners:  []bracket.Player{alice},
		Losers:   nil,
		LeagueID: &league.ID,
	}
	require.NoError(t, store.CreateMatch(match))

	players, err := store.LeaguePlayers(league.ID)
	require.NoError(t, err)
	assert.Len(t, players, 2)
}

func TestLeagueWithoutSportHasNoPlayers(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	league, err := store.CreateLeague("Orphan League", nil)
	require.NoError(t, err)

	players, err := store.LeaguePlayers(league.ID)
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestLeagueAdmins(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	league, err := store.CreateLeague("Tuesday Night League", nil)
	require.NoError(t, err)

	require.NoError(t, store.AddLeagueAdmin(league.ID, "user-1"))
	require.NoError(t, store.AddLeagueAdmin(league.ID, "user-2"))
	require.NoError(t, store.AddLeagueAdmin(league.ID, "user-1"))

	admins, err := store.LeagueAdmins(league.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"user-1", "user-2"}, admins)

	fetched, err := store.GetLeague(league.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"user-1", "user-2"}, fetched.Admins)
}

func TestCreateMatchRoundTrip(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	alice, err := store.CreatePlayer("Alice")
	require.NoError(t, err)
	bob, err := store.CreatePlayer("Bob")
	require.NoError(t, err)

	winnerScore := 3
	loserScore := 1
	match := &bracket.Match{
		Date:        mustDate(t, "2026-08-01"),
		Winners:     []bracket.Player{alice},
		Losers:      []bracket.Player{bob},
		WinnerScore: &winnerScore,
		LoserScore:  &loserScore,
	}
	require.NoError(t, store.CreateMatch(match))
	require.NotEmpty(t, match.ID)

	fetched, err := store.GetMatch(match.ID)
	require.NoError(t, err)
	assert.Equal(t, match.Date, fetched.Date)
	require.Len(t, fetched.Winners, 1)
	require.Len(t, fetched.Losers, 1)
	assert.Equal(t, "Alice", fetched.Winners[0].Name)
	assert.Equal(t, "Bob", fetched.Losers[0].Name)
	require.NotNil(t, fetched.WinnerScore)
	assert.Equal(t, 3, *fetched.WinnerScore)
	require.NotNil(t, fetched.LoserScore)
	assert.Equal(t, 1, *fetched.LoserScore)
	assert.Nil(t, fetched.LeagueID)
	assert.Nil(t, fetched.EventID)
}

func TestCreateMatchRejectsOverlap(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	alice, err := store.CreatePlayer("Alice")
	require.NoError(t, err)
	bob, err := store.CreatePlayer("Bob")
	require.NoError(t, err)

	match := &bracket.Match{
		Date:    mustDate(t, "2026-08-01"),
		Winners: []bracket.Player{alice, bob},
		Losers:  []bracket.Player{bob},
	}
	err = store.CreateMatch(match)
	require.Error(t, err)

	var verr *bracket.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Error(), "Bob")

	// Nothing was persisted.
	matches, err := store.ListMatches()
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestUpdateMatch(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	alice, err := store.CreatePlayer("Alice")
	require.NoError(t, err)
	bob, err := store.CreatePlayer("Bob")
	require.NoError(t, err)

	match := &bracket.Match{
		Date:    mustDate(t, "2026-08-01"),
		Winners: []bracket.Player{alice},
		Losers:  []bracket.Player{bob},
	}
	require.NoError(t, store.CreateMatch(match))

	// Flip the outcome.
	match.Winners = []bracket.Player{bob}
	match.Losers = []bracket.Player{alice}
	match.Cleared = true
	require.NoError(t, store.UpdateMatch(match))

	fetched, err := store.GetMatch(match.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Cleared)
	require.Len(t, fetched.Winners, 1)
	assert.Equal(t, "Bob", fetched.Winners[0].Name)
	require.Len(t, fetched.Losers, 1)
	assert.Equal(t, "Alice", fetched.Losers[0].Name)
}

func TestUpdateMatchRejectsOverlapWithoutWriting(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	alice, err := store.CreatePlayer("Alice")
	require.NoError(t, err)
	bob, err := store.CreatePlayer("Bob")
	require.NoError(t, err)

	match := &bracket.Match{
		Date:    mustDate(t, "2026-08-01"),
		Winners: []bracket.Player{alice},
		Losers:  []bracket.Player{bob},
	}
	require.NoError(t, store.CreateMatch(match))

	bad := *match
	bad.Winners = []bracket.Player{alice, bob}
	err = store.UpdateMatch(&bad)
	require.Error(t, err)

	// The stored match is unchanged.
	fetched, err := store.GetMatch(match.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Winners, 1)
	assert.Equal(t, "Alice", fetched.Winners[0].Name)
}

func TestUpdateMatchUnknownID(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	match := &bracket.Match{ID: "missing", Date: mustDate(t, "2026-08-01")}
	err := store.UpdateMatch(match)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteLeagueCascadesToMatches(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	alice, err := store.CreatePlayer("Alice")
	require.NoError(t, err)
	bob, err := store.CreatePlayer("Bob")
	require.NoError(t, err)

	league, err := store.CreateLeague("Tuesday Night League", nil)
	require.NoError(t, err)

	inLeague := &bracket.Match{
		Date:     mustDate(t, "2026-08-01"),
		Winners:  []bracket.Player{alice},
		Losers:   []bracket.Player{bob},
		LeagueID: &league.ID,
	}
	require.NoError(t, store.CreateMatch(inLeague))

	standalone := &bracket.Match{
		Date:    mustDate(t, "2026-08-02"),
		Winners: []bracket.Player{bob},
		Losers:  []bracket.Player{alice},
	}
	require.NoError(t, store.CreateMatch(standalone))

	require.NoError(t, store.DeleteLeague(league.ID))

	matches, err := store.ListMatches()
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, standalone.ID, matches[0].ID)
}

func TestDeleteEventCascadesToMatches(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	alice, err := store.CreatePlayer("Alice")
	require.NoError(t, err)
	bob, err := store.CreatePlayer("Bob")
	require.NoError(t, err)

	place := "Downtown Courts"
	event, err := store.CreateEvent(&place, mustDate(t, "2026-08-01"))
	require.NoError(t, err)

	match := &bracket.Match{
		Date:    mustDate(t, "2026-08-01"),
		Winners: []bracket.Player{alice},
		Losers:  []bracket.Player{bob},
		EventID: &event.ID,
	}
	require.NoError(t, store.CreateMatch(match))

	require.NoError(t, store.DeleteEvent(event.ID))

	matches, err := store.ListMatches()
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestEventRoundTrip(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	place := "Downtown Courts"
	event, err := store.CreateEvent(&place, mustDate(t, "2026-08-01"))
	require.NoError(t, err)

	fetched, err := store.GetEvent(event.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Place)
	assert.Equal(t, "Downtown Courts", *fetched.Place)
	assert.Equal(t, "2026-08-01 - Downtown Courts", fetched.String())

	noPlace, err := store.CreateEvent(nil, mustDate(t, "2026-08-02"))
	require.NoError(t, err)
	fetched, err = store.GetEvent(noPlace.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.Place)

	events, err := store.ListEvents()
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Newest first.
	assert.Equal(t, noPlace.ID, events[0].ID)
}

func TestEventMatchesScopedToEvent(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	alice, err := store.CreatePlayer("Alice")
	require.NoError(t, err)
	bob, err := store.CreatePlayer("Bob")
	require.NoError(t, err)

	event, err := store.CreateEvent(nil, mustDate(t, "2026-08-01"))
	require.NoError(t, err)
	other, err := store.CreateEvent(nil, mustDate(t, "2026-08-02"))
	require.NoError(t, err)

	inEvent := &bracket.Match{
		Date:    mustDate(t, "2026-08-01"),
		Winners: []bracket.Player{alice},
		Losers:  []bracket.Player{bob},
		EventID: &event.ID,
	}
	require.NoError(t, store.CreateMatch(inEvent))

	elsewhere := &bracket.Match{
		Date:    mustDate(t, "2026-08-02"),
		Winners: []bracket.Player{bob},
		Losers:  []bracket.Player{alice},
		EventID: &other.ID,
	}
	require.NoError(t, store.CreateMatch(elsewhere))

	matches, err := store.EventMatches(event.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, inEvent.ID, matches[0].ID)
}

func TestCountsScopedBySportAndLeague(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	squash, err := store.CreateSport("squash")
	require.NoError(t, err)
	padel, err := store.CreateSport("padel")
	require.NoError(t, err)

	squashLeague, err := store.CreateLeague("Squash League", &squash.ID)
	require.NoError(t, err)
	otherSquashLeague, err := store.CreateLeague("Squash League B", &squash.ID)
	require.NoError(t, err)
	padelLeague, err := store.CreateLeague("Padel League", &padel.ID)
	require.NoError(t, err)

	alice, err := store.CreatePlayer("Alice")
	require.NoError(t, err)
	bob, err := store.CreatePlayer("Bob")
	require.NoError(t, err)

	record := func(leagueID *string, winner, loser bracket.Player) {
		t.Helper()
		m := &bracket.Match{
			Date:     mustDate(t, "2026-08-01"),
			Winners:  []bracket.Player{winner},
			Losers:   []bracket.Player{loser},
			LeagueID: leagueID,
		}
		require.NoError(t, store.CreateMatch(m))
	}

	record(&squashLeague.ID, alice, bob)
	record(&squashLeague.ID, bob, alice)
	record(&otherSquashLeague.ID, alice, bob)
	record(&padelLeague.ID, alice, bob)
	// A match outside any league counts toward nothing.
	record(nil, alice, bob)

	wins, err := store.CountPlayerWinsBySport(alice.ID, squash.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, wins)

	losses, err := store.CountPlayerLossesBySport(alice.ID, squash.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, losses)

	wins, err = store.CountPlayerWinsByLeague(alice.ID, squashLeague.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, wins)

	losses, err = store.CountPlayerLossesByLeague(alice.ID, squashLeague.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, losses)

	wins, err = store.CountPlayerWinsBySport(alice.ID, padel.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, wins)
}

func TestClearEmptiesEverything(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	alice, err := store.CreatePlayer("Alice")
	require.NoError(t, err)
	bob, err := store.CreatePlayer("Bob")
	require.NoError(t, err)
	_, err = store.CreateSport("squash")
	require.NoError(t, err)
	_, err = store.CreateLeague("Tuesday Night League", nil)
	require.NoError(t, err)

	match := &bracket.Match{
		Date:    mustDate(t, "2026-08-01"),
		Winners: []bracket.Player{alice},
		Losers:  []bracket.Player{bob},
	}
	require.NoError(t, store.CreateMatch(match))

	store.Clear()

	players, err := store.ListPlayers()
	require.NoError(t, err)
	assert.Empty(t, players)
	matches, err := store.ListMatches()
	require.NoError(t, err)
	assert.Empty(t, matches)
	leagues, err := store.ListLeagues()
	require.NoError(t, err)
	assert.Empty(t, leagues)
}

func TestGetMissingEntities(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.GetPlayer("missing")
	assert.Error(t, err)
	_, err = store.GetPlayerByName("missing")
	assert.Error(t, err)
	_, err = store.GetSport("missing")
	assert.Error(t, err)
	_, err = store.GetLeague("missing")
	assert.Error(t, err)
	_, err = store.GetEvent("missing")
	assert.Error(t, err)
	_, err = store.GetMatch("missing")
	assert.Error(t, err)
}
