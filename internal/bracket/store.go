package bracket

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new BracketStore.
func New(db *sql.DB) BracketStore {
	return &store{
		db: db,
	}
}

func (s *store) CreatePlayer(name string) (Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return Player{}, &ValidationError{Message: "player name cannot be empty"}
	}

	p := Player{ID: uuid.NewString(), Name: name}
	if _, err := s.db.Exec("INSERT INTO players (id, name) VALUES (?, ?)", p.ID, p.Name); err != nil {
		return Player{}, fmt.Errorf("failed to create player %q: %w", name, err)
	}
	log.Info("Created player", "playerID", p.ID, "name", p.Name)
	return p, nil
}

func (s *store) GetPlayer(id string) (Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p Player
	err := s.db.QueryRow("SELECT id, name FROM players WHERE id = ?", id).Scan(&p.ID, &p.Name)
	if err == sql.ErrNoRows {
		return Player{}, fmt.Errorf("player %s not found", id)
	}
	if err != nil {
		return Player{}, fmt.Errorf("failed to get player: %w", err)
	}
	return p, nil
}

func (s *store) GetPlayerByName(name string) (Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p Player
	err := s.db.QueryRow("SELECT id, name FROM players WHERE name = ?", name).Scan(&p.ID, &p.Name)
	if err == sql.ErrNoRows {
		return Player{}, fmt.Errorf("player %q not found", name)
	}
	if err != nil {
		return Player{}, fmt.Errorf("failed to get player by name: %w", err)
	}
	return p, nil
}

func (s *store) ListPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryPlayers("SELECT id, name FROM players ORDER BY name")
}

func (s *store) DeletePlayer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM players WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}

func (s *store) CreateSport(name string) (Sport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return Sport{}, &ValidationError{Message: "sport name cannot be empty"}
	}

	sp := Sport{ID: uuid.NewString(), Name: name}
	if _, err := s.db.Exec("INSERT INTO sports (id, name) VALUES (?, ?)", sp.ID, sp.Name); err != nil {
		return Sport{}, fmt.Errorf("failed to create sport %q: %w", name, err)
	}
	log.Info("Created sport", "sportID", sp.ID, "name", sp.Name)
	return sp, nil
}

func (s *store) GetSport(id string) (Sport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sp Sport
	err := s.db.QueryRow("SELECT id, name FROM sports WHERE id = ?", id).Scan(&sp.ID, &sp.Name)
	if err == sql.ErrNoRows {
		return Sport{}, fmt.Errorf("sport %s not found", id)
	}
	if err != nil {
		return Sport{}, fmt.Errorf("failed to get sport: %w", err)
	}
	return sp, nil
}

func (s *store) ListSports() ([]Sport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name FROM sports ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query sports: %w", err)
	}
	defer rows.Close()

	var sports []Sport
	for rows.Next() {
		var sp Sport
		if err := rows.Scan(&sp.ID, &sp.Name); err != nil {
			return nil, err
		}
		sports = append(sports, sp)
	}
	return sports, rows.Err()
}

func (s *store) AddPlayerToSport(sportID, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("INSERT OR IGNORE INTO sport_players (sport_id, player_id) VALUES (?, ?)", sportID, playerID)
	if err != nil {
		return fmt.Errorf("failed to add player to sport: %w", err)
	}
	return nil
}

func (s *store) RemovePlayerFromSport(sportID, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM sport_players WHERE sport_id = ? AND player_id = ?", sportID, playerID)
	if err != nil {
		return fmt.Errorf("failed to remove player from sport: %w", err)
	}
	return nil
}

// SportPlayers returns the sport's roster in insertion order.
func (s *store) SportPlayers(sportID string) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryPlayers(`
		SELECT p.id, p.name FROM players p
		JOIN sport_players sp ON p.id = sp.player_id
		WHERE sp.sport_id = ?`, sportID)
}

func (s *store) PlayerSports(playerID string) ([]Sport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT sp.id, sp.name FROM sports sp
		JOIN sport_players m ON sp.id = m.sport_id
		WHERE m.player_id = ?`, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query player sports: %w", err)
	}
	defer rows.Close()

	var sports []Sport
	for rows.Next() {
		var sp Sport
		if err := rows.Scan(&sp.ID, &sp.Name); err != nil {
			return nil, err
		}
		sports = append(sports, sp)
	}
	return sports, rows.Err()
}

func (s *store) CreateLeague(name string, sportID *string) (League, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := League{ID: uuid.NewString(), Name: name, SportID: sportID}
	if _, err := s.db.Exec("INSERT INTO leagues (id, name, sport_id) VALUES (?, ?, ?)", l.ID, l.Name, l.SportID); err != nil {
		return League{}, fmt.Errorf("failed to create league %q: %w", name, err)
	}
	log.Info("Created league", "leagueID", l.ID, "name", l.Name)
	return l, nil
}

func (s *store) GetLeague(id string) (League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var l League
	var sportID sql.NullString
	err := s.db.QueryRow("SELECT id, name, sport_id FROM leagues WHERE id = ?", id).Scan(&l.ID, &l.Name, &sportID)
	if err == sql.ErrNoRows {
		return League{}, fmt.Errorf("league %s not found", id)
	}
	if err != nil {
		return League{}, fmt.Errorf("failed to get league: %w", err)
	}
	if sportID.Valid {
		l.SportID = &sportID.String
	}
	admins, err := s.queryLeagueAdmins(id)
	if err != nil {
		return League{}, err
	}
	l.Admins = admins
	return l, nil
}

func (s *store) ListLeagues() ([]League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, sport_id FROM leagues ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query leagues: %w", err)
	}
	defer rows.Close()

	var leagues []League
	for rows.Next() {
		var l League
		var sportID sql.NullString
		if err := rows.Scan(&l.ID, &l.Name, &sportID); err != nil {
			return nil, err
		}
		if sportID.Valid {
			l.SportID = &sportID.String
		}
		leagues = append(leagues, l)
	}
	return leagues, rows.Err()
}

// DeleteLeague removes the league and, via foreign key cascade, every
// match attached to it.
func (s *store) DeleteLeague(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM leagues WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete league: %w", err)
	}
	log.Info("Deleted league and its matches", "leagueID", id)
	return nil
}

func (s *store) AddLeagueAdmin(leagueID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("INSERT OR IGNORE INTO league_admins (league_id, user_id) VALUES (?, ?)", leagueID, userID)
	if err != nil {
		return fmt.Errorf("failed to add league admin: %w", err)
	}
	return nil
}

func (s *store) LeagueAdmins(leagueID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryLeagueAdmins(leagueID)
}

func (s *store) queryLeagueAdmins(leagueID string) ([]string, error) {
	rows, err := s.db.Query("SELECT user_id FROM league_admins WHERE league_id = ?", leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query league admins: %w", err)
	}
	defer rows.Close()

	var admins []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		admins = append(admins, userID)
	}
	return admins, rows.Err()
}

// LeaguePlayers delegates entirely to the sport's roster: it returns the
// full membership of the league's sport, including players who never
// competed in this league. A league without a sport has no players.
func (s *store) LeaguePlayers(leagueID string) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryPlayers(`
		SELECT p.id, p.name FROM players p
		JOIN sport_players sp ON p.id = sp.player_id
		JOIN leagues l ON l.sport_id = sp.sport_id
		WHERE l.id = ?`, leagueID)
}

func (s *store) LeagueMatches(leagueID string) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryMatches("WHERE league_id = ?", leagueID)
}

func (s *store) CreateEvent(place *string, date time.Time) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if date.IsZero() {
		date = time.Now()
	}
	e := Event{ID: uuid.NewString(), Place: place, Date: date}
	if _, err := s.db.Exec("INSERT INTO events (id, place, date) VALUES (?, ?, ?)", e.ID, e.Place, e.Date.Format(DateLayout)); err != nil {
		return Event{}, fmt.Errorf("failed to create event: %w", err)
	}
	log.Info("Created event", "eventID", e.ID, "event", e.String())
	return e, nil
}

func (s *store) GetEvent(id string) (Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var e Event
	var place sql.NullString
	var date string
	err := s.db.QueryRow("SELECT id, place, date FROM events WHERE id = ?", id).Scan(&e.ID, &place, &date)
	if err == sql.ErrNoRows {
		return Event{}, fmt.Errorf("event %s not found", id)
	}
	if err != nil {
		return Event{}, fmt.Errorf("failed to get event: %w", err)
	}
	if place.Valid {
		e.Place = &place.String
	}
	e.Date, err = time.Parse(DateLayout, date)
	if err != nil {
		return Event{}, fmt.Errorf("failed to parse event date: %w", err)
	}
	return e, nil
}

func (s *store) ListEvents() ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, place, date FROM events ORDER BY date DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var place sql.NullString
		var date string
		if err := rows.Scan(&e.ID, &place, &date); err != nil {
			return nil, err
		}
		if place.Valid {
			e.Place = &place.String
		}
		if e.Date, err = time.Parse(DateLayout, date); err != nil {
			log.Error("Failed to parse event date", "eventID", e.ID, "error", err)
			continue
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// DeleteEvent removes the event and, via foreign key cascade, every match
// recorded under it.
func (s *store) DeleteEvent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM events WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	log.Info("Deleted event and its matches", "eventID", id)
	return nil
}

func (s *store) EventMatches(eventID string) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryMatches("WHERE event_id = ?", eventID)
}

// CreateMatch validates the winners/losers invariant and writes the match
// and its player relations in a single transaction.
func (s *store) CreateMatch(m *Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Date.IsZero() {
		m.Date = time.Now()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := m.Validate(); err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO matches (id, date, cleared, winner_score, loser_score, league_id, event_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Date.Format(DateLayout), m.Cleared, m.WinnerScore, m.LoserScore, m.LeagueID, m.EventID)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert match: %w", err)
	}

	if err := insertMatchPlayers(tx, m); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit match: %w", err)
	}
	log.Info("Recorded match", "matchID", m.ID, "winners", len(m.Winners), "losers", len(m.Losers))
	return nil
}

// UpdateMatch re-validates and replaces the match row and its player
// relations in a single transaction.
func (s *store) UpdateMatch(m *Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := m.Validate(); err != nil {
		tx.Rollback()
		return err
	}

	res, err := tx.Exec(`
		UPDATE matches SET date = ?, cleared = ?, winner_score = ?, loser_score = ?, league_id = ?, event_id = ?
		WHERE id = ?`,
		m.Date.Format(DateLayout), m.Cleared, m.WinnerScore, m.LoserScore, m.LeagueID, m.EventID, m.ID)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to update match: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		tx.Rollback()
		return fmt.Errorf("match %s not found", m.ID)
	}

	for _, table := range []string{"match_winners", "match_losers"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE match_id = ?", m.ID); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	if err := insertMatchPlayers(tx, m); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit match update: %w", err)
	}
	return nil
}

func insertMatchPlayers(tx *sql.Tx, m *Match) error {
	for _, p := range m.Winners {
		if _, err := tx.Exec("INSERT INTO match_winners (match_id, player_id) VALUES (?, ?)", m.ID, p.ID); err != nil {
			return fmt.Errorf("failed to insert winner %s: %w", p.Name, err)
		}
	}
	for _, p := range m.Losers {
		if _, err := tx.Exec("INSERT INTO match_losers (match_id, player_id) VALUES (?, ?)", m.ID, p.ID); err != nil {
			return fmt.Errorf("failed to insert loser %s: %w", p.Name, err)
		}
	}
	return nil
}

func (s *store) GetMatch(id string) (Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches, err := s.queryMatches("WHERE id = ?", id)
	if err != nil {
		return Match{}, err
	}
	if len(matches) == 0 {
		return Match{}, fmt.Errorf("match %s not found", id)
	}
	return matches[0], nil
}

func (s *store) ListMatches() ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryMatches("")
}

func (s *store) DeleteMatch(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM matches WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return nil
}

// queryMatches loads match rows for the given WHERE clause and resolves
// each match's winner and loser sets.
func (s *store) queryMatches(where string, args ...any) ([]Match, error) {
	query := "SELECT id, date, cleared, winner_score, loser_score, league_id, event_id FROM matches " + where + " ORDER BY date DESC, id"
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		var date string
		var winnerScore, loserScore sql.NullInt64
		var leagueID, eventID sql.NullString
		if err := rows.Scan(&m.ID, &date, &m.Cleared, &winnerScore, &loserScore, &leagueID, &eventID); err != nil {
			return nil, err
		}
		if winnerScore.Valid {
			score := int(winnerScore.Int64)
			m.WinnerScore = &score
		}
		if loserScore.Valid {
			score := int(loserScore.Int64)
			m.LoserScore = &score
		}
		if leagueID.Valid {
			m.LeagueID = &leagueID.String
		}
		if eventID.Valid {
			m.EventID = &eventID.String
		}
		if m.Date, err = time.Parse(DateLayout, date); err != nil {
			log.Error("Failed to parse match date", "matchID", m.ID, "error", err)
			continue
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range matches {
		if matches[i].Winners, err = s.matchPlayers(matches[i].ID, "match_winners"); err != nil {
			return nil, err
		}
		if matches[i].Losers, err = s.matchPlayers(matches[i].ID, "match_losers"); err != nil {
			return nil, err
		}
	}
	return matches, nil
}

func (s *store) matchPlayers(matchID, table string) ([]Player, error) {
	return s.queryPlayers(`
		SELECT p.id, p.name FROM players p
		JOIN `+table+` m ON p.id = m.player_id
		WHERE m.match_id = ?`, matchID)
}

func (s *store) queryPlayers(query string, args ...any) ([]Player, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// countMatchMembership counts matches where the player appears in the
// given relation table, optionally scoped through the match's league.
func (s *store) countMatchMembership(table, whereLeague string, args ...any) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*) FROM %s mm
		JOIN matches m ON mm.match_id = m.id
		JOIN leagues l ON m.league_id = l.id
		WHERE mm.player_id = ? AND %s`, table, whereLeague)

	var count int
	if err := s.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}

func (s *store) CountPlayerWinsBySport(playerID, sportID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countMatchMembership("match_winners", "l.sport_id = ?", playerID, sportID)
}

func (s *store) CountPlayerLossesBySport(playerID, sportID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countMatchMembership("match_losers", "l.sport_id = ?", playerID, sportID)
}

func (s *store) CountPlayerWinsByLeague(playerID, leagueID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countMatchMembership("match_winners", "l.id = ?", playerID, leagueID)
}

func (s *store) CountPlayerLossesByLeague(playerID, leagueID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countMatchMembership("match_losers", "l.id = ?", playerID, leagueID)
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}

	for _, table := range []string{"match_winners", "match_losers", "matches", "league_admins", "leagues", "sport_players", "sports", "events", "players"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "table", table, "error", err)
			tx.Rollback()
			return
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}
