package bracket

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"
)

// DateLayout is how entity dates are stored and rendered.
const DateLayout = "2006-01-02"

// store handles all database operations for the bracket.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Player is a named participant. Names are unique across the system.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Sport is a category of play with an associated player roster.
type Sport struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// League is a named competitive grouping scoped to one sport. Names are
// not unique; two leagues of the same sport can share one. Admins are
// user identities resolved by the external auth layer.
type League struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	SportID *string  `json:"sport_id,omitempty"`
	Admins  []string `json:"admins,omitempty"`
}

// Event is a dated gathering containing multiple matches.
type Event struct {
	ID    string    `json:"id"`
	Place *string   `json:"place,omitempty"`
	Date  time.Time `json:"date"`
}

// String renders the event as "{date} - {place}", or just "{date}" when
// no place is set.
func (e Event) String() string {
	if e.Place != nil && *e.Place != "" {
		return fmt.Sprintf("%s - %s", e.Date.Format(DateLayout), *e.Place)
	}
	return e.Date.Format(DateLayout)
}

// Match is one contest between a set of winners and a set of losers,
// optionally attached to a league and/or an event.
type Match struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Cleared     bool      `json:"cleared"`
	Winners     []Player  `json:"winners"`
	Losers      []Player  `json:"losers"`
	WinnerScore *int      `json:"winner_score,omitempty"`
	LoserScore  *int      `json:"loser_score,omitempty"`
	LeagueID    *string   `json:"league_id,omitempty"`
	EventID     *string   `json:"event_id,omitempty"`
}

// Players returns the union of the match's winners and losers, winners
// first, without duplicates.
func (m *Match) Players() []Player {
	seen := make(map[string]bool, len(m.Winners)+len(m.Losers))
	var players []Player
	for _, p := range append(append([]Player{}, m.Winners...), m.Losers...) {
		key := playerKey(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		players = append(players, p)
	}
	return players
}

// String renders a human-readable match summary listing winners and
// losers by name.
func (m *Match) String() string {
	return fmt.Sprintf("(%s - %s) Winners: [%s], Losers: [%s]",
		m.ID, m.Date.Format(DateLayout),
		strings.Join(playerNames(m.Winners), ", "),
		strings.Join(playerNames(m.Losers), ", "))
}

func playerNames(players []Player) []string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return names
}

// playerKey identifies a player within a match. Persisted players are
// keyed by ID; unsaved ones fall back to the unique name.
func playerKey(p Player) string {
	if p.ID != "" {
		return p.ID
	}
	return p.Name
}
