package bracket

import (
	"sync"
	"time"
)

// MockStore is a mock implementation of the BracketStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreatePlayerFunc              func(name string) (Player, error)
	GetPlayerFunc                 func(id string) (Player, error)
	GetPlayerByNameFunc           func(name string) (Player, error)
	ListPlayersFunc               func() ([]Player, error)
	DeletePlayerFunc              func(id string) error
	CreateSportFunc               func(name string) (Sport, error)
	GetSportFunc                  func(id string) (Sport, error)
	ListSportsFunc                func() ([]Sport, error)
	AddPlayerToSportFunc          func(sportID, playerID string) error
	RemovePlayerFromSportFunc     func(sportID, playerID string) error
	SportPlayersFunc              func(sportID string) ([]Player, error)
	PlayerSportsFunc              func(playerID string) ([]Sport, error)
	CreateLeagueFunc              func(name string, sportID *string) (League, error)
	GetLeagueFunc                 func(id string) (League, error)
	ListLeaguesFunc               func() ([]League, error)
	DeleteLeagueFunc              func(id string) error
	AddLeagueAdminFunc            func(leagueID, userID string) error
	LeagueAdminsFunc              func(leagueID string) ([]string, error)
	LeaguePlayersFunc             func(leagueID string) ([]Player, error)
	LeagueMatchesFunc             func(leagueID string) ([]Match, error)
	CreateEventFunc               func(place *string, date time.Time) (Event, error)
	GetEventFunc                  func(id string) (Event, error)
	ListEventsFunc                func() ([]Event, error)
	DeleteEventFunc               func(id string) error
	EventMatchesFunc              func(eventID string) ([]Match, error)
	CreateMatchFunc               func(m *Match) error
	UpdateMatchFunc               func(m *Match) error
	GetMatchFunc                  func(id string) (Match, error)
	ListMatchesFunc               func() ([]Match, error)
	DeleteMatchFunc               func(id string) error
	CountPlayerWinsBySportFunc    func(playerID, sportID string) (int, error)
	CountPlayerLossesBySportFunc  func(playerID, sportID string) (int, error)
	CountPlayerWinsByLeagueFunc   func(playerID, leagueID string) (int, error)
	CountPlayerLossesByLeagueFunc func(playerID, leagueID string) (int, error)
	ClearFunc                     func()

	// Call records
	CreatePlayerCalls []string
	CreateMatchCalls  []*Match
	UpdateMatchCalls  []*Match
	DeleteLeagueCalls []string
	DeleteEventCalls  []string
	EventMatchesCalls []string
}

var _ BracketStore = (*MockStore)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatePlayerCalls = nil
	m.CreateMatchCalls = nil
	m.UpdateMatchCalls = nil
	m.DeleteLeagueCalls = nil
	m.DeleteEventCalls = nil
	m.EventMatchesCalls = nil
}

func (m *MockStore) CreatePlayer(name string) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatePlayerCalls = append(m.CreatePlayerCalls, name)
	if m.CreatePlayerFunc != nil {
		return m.CreatePlayerFunc(name)
	}
	return Player{Name: name}, nil
}

func (m *MockStore) GetPlayer(id string) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(id)
	}
	return Player{ID: id}, nil
}

func (m *MockStore) GetPlayerByName(name string) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerByNameFunc != nil {
		return m.GetPlayerByNameFunc(name)
	}
	return Player{Name: name}, nil
}

func (m *MockStore) ListPlayers() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) DeletePlayer(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeletePlayerFunc != nil {
		return m.DeletePlayerFunc(id)
	}
	return nil
}

func (m *MockStore) CreateSport(name string) (Sport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateSportFunc != nil {
		return m.CreateSportFunc(name)
	}
	return Sport{Name: name}, nil
}

func (m *MockStore) GetSport(id string) (Sport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetSportFunc != nil {
		return m.GetSportFunc(id)
	}
	return Sport{ID: id}, nil
}

func (m *MockStore) ListSports() ([]Sport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListSportsFunc != nil {
		return m.ListSportsFunc()
	}
	return nil, nil
}

func (m *MockStore) AddPlayerToSport(sportID, playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddPlayerToSportFunc != nil {
		return m.AddPlayerToSportFunc(sportID, playerID)
	}
	return nil
}

func (m *MockStore) RemovePlayerFromSport(sportID, playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RemovePlayerFromSportFunc != nil {
		return m.RemovePlayerFromSportFunc(sportID, playerID)
	}
	return nil
}

func (m *MockStore) SportPlayers(sportID string) ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SportPlayersFunc != nil {
		return m.SportPlayersFunc(sportID)
	}
	return nil, nil
}

func (m *MockStore) PlayerSports(playerID string) ([]Sport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PlayerSportsFunc != nil {
		return m.PlayerSportsFunc(playerID)
	}
	return nil, nil
}

func (m *MockStore) CreateLeague(name string, sportID *string) (League, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateLeagueFunc != nil {
		return m.CreateLeagueFunc(name, sportID)
	}
	return League{Name: name, SportID: sportID}, nil
}

func (m *MockStore) GetLeague(id string) (League, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetLeagueFunc != nil {
		return m.GetLeagueFunc(id)
	}
	return League{ID: id}, nil
}

func (m *MockStore) ListLeagues() ([]League, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListLeaguesFunc != nil {
		return m.ListLeaguesFunc()
	}
	return nil, nil
}

func (m *MockStore) DeleteLeague(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteLeagueCalls = append(m.DeleteLeagueCalls, id)
	if m.DeleteLeagueFunc != nil {
		return m.DeleteLeagueFunc(id)
	}
	return nil
}

func (m *MockStore) AddLeagueAdmin(leagueID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddLeagueAdminFunc != nil {
		return m.AddLeagueAdminFunc(leagueID, userID)
	}
	return nil
}

func (m *MockStore) LeagueAdmins(leagueID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LeagueAdminsFunc != nil {
		return m.LeagueAdminsFunc(leagueID)
	}
	return nil, nil
}

func (m *MockStore) LeaguePlayers(leagueID string) ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LeaguePlayersFunc != nil {
		return m.LeaguePlayersFunc(leagueID)
	}
	return nil, nil
}

func (m *MockStore) LeagueMatches(leagueID string) ([]Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LeagueMatchesFunc != nil {
		return m.LeagueMatchesFunc(leagueID)
	}
	return nil, nil
}

func (m *MockStore) CreateEvent(place *string, date time.Time) (Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateEventFunc != nil {
		return m.CreateEventFunc(place, date)
	}
	return Event{Place: place, Date: date}, nil
}

func (m *MockStore) GetEvent(id string) (Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetEventFunc != nil {
		return m.GetEventFunc(id)
	}
	return Event{ID: id}, nil
}

func (m *MockStore) ListEvents() ([]Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListEventsFunc != nil {
		return m.ListEventsFunc()
	}
	return nil, nil
}

func (m *MockStore) DeleteEvent(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteEventCalls = append(m.DeleteEventCalls, id)
	if m.DeleteEventFunc != nil {
		return m.DeleteEventFunc(id)
	}
	return nil
}

func (m *MockStore) EventMatches(eventID string) ([]Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EventMatchesCalls = append(m.EventMatchesCalls, eventID)
	if m.EventMatchesFunc != nil {
		return m.EventMatchesFunc(eventID)
	}
	return nil, nil
}

func (m *MockStore) CreateMatch(match *Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateMatchCalls = append(m.CreateMatchCalls, match)
	if m.CreateMatchFunc != nil {
		return m.CreateMatchFunc(match)
	}
	return nil
}

func (m *MockStore) UpdateMatch(match *Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateMatchCalls = append(m.UpdateMatchCalls, match)
	if m.UpdateMatchFunc != nil {
		return m.UpdateMatchFunc(match)
	}
	return nil
}

func (m *MockStore) GetMatch(id string) (Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(id)
	}
	return Match{ID: id}, nil
}

func (m *MockStore) ListMatches() ([]Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc()
	}
	return nil, nil
}

func (m *MockStore) DeleteMatch(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteMatchFunc != nil {
		return m.DeleteMatchFunc(id)
	}
	return nil
}

func (m *MockStore) CountPlayerWinsBySport(playerID, sportID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountPlayerWinsBySportFunc != nil {
		return m.CountPlayerWinsBySportFunc(playerID, sportID)
	}
	return 0, nil
}

func (m *MockStore) CountPlayerLossesBySport(playerID, sportID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountPlayerLossesBySportFunc != nil {
		return m.CountPlayerLossesBySportFunc(playerID, sportID)
	}
	return 0, nil
}

func (m *MockStore) CountPlayerWinsByLeague(playerID, leagueID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountPlayerWinsByLeagueFunc != nil {
		return m.CountPlayerWinsByLeagueFunc(playerID, leagueID)
	}
	return 0, nil
}

func (m *MockStore) CountPlayerLossesByLeague(playerID, leagueID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountPlayerLossesByLeagueFunc != nil {
		return m.CountPlayerLossesByLeagueFunc(playerID, leagueID)
	}
	return 0, nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}
