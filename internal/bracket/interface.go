package bracket

import "time"

// BracketStore defines the interface for interacting with the bracket's data.
type BracketStore interface {
	CreatePlayer(name string) (Player, error)
	GetPlayer(id string) (Player, error)
	GetPlayerByName(name string) (Player, error)
	ListPlayers() ([]Player, error)
	DeletePlayer(id string) error

	CreateSport(name string) (Sport, error)
	GetSport(id string) (Sport, error)
	ListSports() ([]Sport, error)
	AddPlayerToSport(sportID, playerID string) error
	RemovePlayerFromSport(sportID, playerID string) error
	SportPlayers(sportID string) ([]Player, error)
	PlayerSports(playerID string) ([]Sport, error)

	CreateLeague(name string, sportID *string) (League, error)
	GetLeague(id string) (League, error)
	ListLeagues() ([]League, error)
	DeleteLeague(id string) error
	AddLeagueAdmin(leagueID, userID string) error
	LeagueAdmins(leagueID string) ([]string, error)
	// LeaguePlayers returns the roster of the league's sport. A league has
	// no player list of its own.
	LeaguePlayers(leagueID string) ([]Player, error)
	LeagueMatches(leagueID string) ([]Match, error)

	CreateEvent(place *string, date time.Time) (Event, error)
	GetEvent(id string) (Event, error)
	ListEvents() ([]Event, error)
	DeleteEvent(id string) error
	EventMatches(eventID string) ([]Match, error)

	// CreateMatch and UpdateMatch validate the winners/losers invariant and
	// perform the write inside one transaction.
	CreateMatch(m *Match) error
	UpdateMatch(m *Match) error
	GetMatch(id string) (Match, error)
	ListMatches() ([]Match, error)
	DeleteMatch(id string) error

	CountPlayerWinsBySport(playerID, sportID string) (int, error)
	CountPlayerLossesBySport(playerID, sportID string) (int, error)
	CountPlayerWinsByLeague(playerID, leagueID string) (int, error)
	CountPlayerLossesByLeague(playerID, leagueID string) (int, error)

	Clear()
}
