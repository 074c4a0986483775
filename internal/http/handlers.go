package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"playbracket/internal/bracket"
	"playbracket/internal/pubsub"
)

// Request bodies for the POST endpoints.

type createPlayerRequest struct {
	Name string `json:"name"`
}

type createSportRequest struct {
	Name string `json:"name"`
}

type createLeagueRequest struct {
	Name    string  `json:"name"`
	SportID *string `json:"sport_id,omitempty"`
}

type createEventRequest struct {
	Place *string `json:"place,omitempty"`
	Date  string  `json:"date,omitempty"`
}

type recordMatchRequest struct {
	Date        string   `json:"date,omitempty"`
	Cleared     bool     `json:"cleared,omitempty"`
	Winners     []string `json:"winners"`
	Losers      []string `json:"losers"`
	WinnerScore *int     `json:"winner_score,omitempty"`
	LoserScore  *int     `json:"loser_score,omitempty"`
	LeagueID    *string  `json:"league_id,omitempty"`
	EventID     *string  `json:"event_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

// storeError maps a store failure onto an HTTP response. Validation
// failures are the caller's fault and come back as 400s; anything else
// is a 500.
func (s *Server) storeError(w http.ResponseWriter, err error) {
	var verr *bracket.ValidationError
	if errors.As(err, &verr) {
		s.Metrics.IncValidationFailures()
		http.Error(w, verr.Error(), http.StatusBadRequest)
		return
	}
	log.Error("Store operation failed", "error", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("matchID")
		if matchID != "" {
			log.Info("Received request to clear a specific match", "matchID", matchID)
			if err := s.Store.DeleteMatch(matchID); err != nil {
				s.storeError(w, err)
				return
			}
			fmt.Fprintf(w, "Cleared match %s from store!", matchID)
			return
		}
		log.Info("Received request to clear entire store")
		s.Store.Clear()
		if !isDryRunFromContext(r) {
			s.pubsub.SendMessage(pubsub.EventStoreCleared, time.Now().Unix())
		}
		fmt.Fprint(w, "Store cleared!")
	}
}

func (s *Server) PlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req createPlayerRequest
			if !decodeJSON(w, r, &req) {
				return
			}
			player, err := s.Store.CreatePlayer(req.Name)
			if err != nil {
				s.storeError(w, err)
				return
			}
			writeJSON(w, player)
		default:
			players, err := s.Store.ListPlayers()
			if err != nil {
				s.storeError(w, err)
				return
			}
			writeJSON(w, players)
		}
	}
}

func (s *Server) DeletePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Missing id parameter", http.StatusBadRequest)
			return
		}
		if err := s.Store.DeletePlayer(id); err != nil {
			s.storeError(w, err)
			return
		}
		fmt.Fprintf(w, "Deleted player %s", id)
	}
}

// PlayerSportsHandler lists the sports a player participates in.
func (s *Server) PlayerSportsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.URL.Query().Get("playerID")
		if playerID == "" {
			http.Error(w, "Missing playerID parameter", http.StatusBadRequest)
			return
		}
		sports, err := s.Store.PlayerSports(playerID)
		if err != nil {
			s.storeError(w, err)
			return
		}
		writeJSON(w, sports)
	}
}

func (s *Server) SportsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req createSportRequest
			if !decodeJSON(w, r, &req) {
				return
			}
			sport, err := s.Store.CreateSport(req.Name)
			if err != nil {
				s.storeError(w, err)
				return
			}
			writeJSON(w, sport)
		default:
			sports, err := s.Store.ListSports()
			if err != nil {
				s.storeError(w, err)
				return
			}
			writeJSON(w, sports)
		}
	}
}

func (s *Server) AddPlayerToSportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sportID := r.URL.Query().Get("sportID")
		playerID := r.URL.Query().Get("playerID")
		if sportID == "" || playerID == "" {
			http.Error(w, "Missing sportID or playerID parameter", http.StatusBadRequest)
			return
		}
		if err := s.Store.AddPlayerToSport(sportID, playerID); err != nil {
			s.storeError(w, err)
			return
		}
		fmt.Fprintf(w, "Added player %s to sport %s", playerID, sportID)
	}
}

func (s *Server) SportPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sportID := r.URL.Query().Get("sportID")
		if sportID == "" {
			http.Error(w, "Missing sportID parameter", http.StatusBadRequest)
			return
		}
		players, err := s.Store.SportPlayers(sportID)
		if err != nil {
			s.storeError(w, err)
			return
		}
		writeJSON(w, players)
	}
}

func (s *Server) LeaguesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req createLeagueRequest
			if !decodeJSON(w, r, &req) {
				return
			}
			league, err := s.Store.CreateLeague(req.Name, req.SportID)
			if err != nil {
				s.storeError(w, err)
				return
			}
			writeJSON(w, league)
		default:
			leagues, err := s.Store.ListLeagues()
			if err != nil {
				s.storeError(w, err)
				return
			}
			writeJSON(w, leagues)
		}
	}
}

func (s *Server) DeleteLeagueHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Missing id parameter", http.StatusBadRequest)
			return
		}
		if err := s.Store.DeleteLeague(id); err != nil {
			s.storeError(w, err)
			return
		}
		fmt.Fprintf(w, "Deleted league %s and its matches", id)
	}
}

func (s *Server) LeaguePlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := r.URL.Query().Get("leagueID")
		if leagueID == "" {
			http.Error(w, "Missing leagueID parameter", http.StatusBadRequest)
			return
		}
		players, err := s.Store.LeaguePlayers(leagueID)
		if err != nil {
			s.storeError(w, err)
			return
		}
		writeJSON(w, players)
	}
}

func (s *Server) AddLeagueAdminHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := r.URL.Query().Get("leagueID")
		userID := r.URL.Query().Get("userID")
		if leagueID == "" || userID == "" {
			http.Error(w, "Missing leagueID or userID parameter", http.StatusBadRequest)
			return
		}
		if err := s.Store.AddLeagueAdmin(leagueID, userID); err != nil {
			s.storeError(w, err)
			return
		}
		fmt.Fprintf(w, "Added admin %s to league %s", userID, leagueID)
	}
}

func (s *Server) EventsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req createEventRequest
			if !decodeJSON(w, r, &req) {
				return
			}
			var date time.Time
			if req.Date != "" {
				parsed, err := time.Parse(bracket.DateLayout, req.Date)
				if err != nil {
					http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
					return
				}
				date = parsed
			}
			event, err := s.Store.CreateEvent(req.Place, date)
			if err != nil {
				s.storeError(w, err)
				return
			}
			writeJSON(w, event)
		default:
			events, err := s.Store.ListEvents()
			if err != nil {
				s.storeError(w, err)
				return
			}
			writeJSON(w, events)
		}
	}
}

func (s *Server) DeleteEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Missing id parameter", http.StatusBadRequest)
			return
		}
		if err := s.Store.DeleteEvent(id); err != nil {
			s.storeError(w, err)
			return
		}
		fmt.Fprintf(w, "Deleted event %s and its matches", id)
	}
}

func (s *Server) EventRankingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := r.URL.Query().Get("eventID")
		if eventID == "" {
			http.Error(w, "Missing eventID parameter", http.StatusBadRequest)
			return
		}
		ranking, err := s.Standings.EventRanking(eventID)
		if err != nil {
			s.storeError(w, err)
			return
		}
		if !isDryRunFromContext(r) {
			s.pubsub.SendMessage(pubsub.EventRankingComputed, eventID)
		}
		writeJSON(w, ranking)
	}
}

// NotifyRankingHandler computes an event's ranking and posts it to the
// notification channel.
func (s *Server) NotifyRankingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := r.URL.Query().Get("eventID")
		if eventID == "" {
			http.Error(w, "Missing eventID parameter", http.StatusBadRequest)
			return
		}
		event, err := s.Store.GetEvent(eventID)
		if err != nil {
			s.storeError(w, err)
			return
		}
		ranking, err := s.Standings.EventRanking(eventID)
		if err != nil {
			s.storeError(w, err)
			return
		}
		if err := s.Notifier.SendEventRanking(event, ranking, isDryRunFromContext(r)); err != nil {
			http.Error(w, "Failed to send ranking notification", http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, "Ranking for event %s sent.", eventID)
	}
}

func (s *Server) MatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			s.recordMatch(w, r)
		default:
			matches, err := s.Store.ListMatches()
			if err != nil {
				s.storeError(w, err)
				return
			}
			writeJSON(w, matches)
		}
	}
}

// recordMatch resolves player names, validates, and persists a new match.
func (s *Server) recordMatch(w http.ResponseWriter, r *http.Request) {
	var req recordMatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	match := bracket.Match{
		Cleared:     req.Cleared,
		WinnerScore: req.WinnerScore,
		LoserScore:  req.LoserScore,
		LeagueID:    req.LeagueID,
		EventID:     req.EventID,
	}

	if req.Date != "" {
		date, err := time.Parse(bracket.DateLayout, req.Date)
		if err != nil {
			http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		match.Date = date
	}

	resolve := func(names []string) ([]bracket.Player, bool) {
		var players []bracket.Player
		for _, name := range names {
			player, err := s.Store.GetPlayerByName(name)
			if err != nil {
				http.Error(w, fmt.Sprintf("Unknown player: %s", name), http.StatusBadRequest)
				return nil, false
			}
			players = append(players, player)
		}
		return players, true
	}

	var ok bool
	if match.Winners, ok = resolve(req.Winners); !ok {
		return
	}
	if match.Losers, ok = resolve(req.Losers); !ok {
		return
	}

	if err := s.Store.CreateMatch(&match); err != nil {
		s.storeError(w, err)
		return
	}

	s.Metrics.IncMatchesRecorded()
	isDryRun := isDryRunFromContext(r)
	if !isDryRun {
		s.pubsub.SendMessage(pubsub.EventMatchRecorded, &match)
	}
	if err := s.Notifier.SendMatchRecorded(&match, isDryRun); err != nil {
		log.Error("Failed to send match notification", "error", err, "matchID", match.ID)
	}

	writeJSON(w, match)
}

func (s *Server) DeleteMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Missing id parameter", http.StatusBadRequest)
			return
		}
		if err := s.Store.DeleteMatch(id); err != nil {
			s.storeError(w, err)
			return
		}
		if !isDryRunFromContext(r) {
			s.pubsub.SendMessage(pubsub.EventMatchDeleted, id)
		}
		fmt.Fprintf(w, "Deleted match %s", id)
	}
}

// playerStatsResponse carries a win ratio with the scope it was computed
// over.
type playerStatsResponse struct {
	PlayerID string  `json:"player_id"`
	Scope    string  `json:"scope"`
	ScopeID  string  `json:"scope_id"`
	WinRatio float64 `json:"win_ratio"`
}

// PlayerStatsHandler computes a player's win ratio scoped to a sport or a
// league, depending on which parameter is present.
func (s *Server) PlayerStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.URL.Query().Get("playerID")
		if playerID == "" {
			http.Error(w, "Missing playerID parameter", http.StatusBadRequest)
			return
		}

		sportID := r.URL.Query().Get("sportID")
		leagueID := r.URL.Query().Get("leagueID")

		switch {
		case sportID != "":
			ratio, err := s.Standings.SportWinRatio(playerID, sportID)
			if err != nil {
				s.storeError(w, err)
				return
			}
			writeJSON(w, playerStatsResponse{PlayerID: playerID, Scope: "sport", ScopeID: sportID, WinRatio: ratio})
		case leagueID != "":
			ratio, err := s.Standings.LeagueWinRatio(playerID, leagueID)
			if err != nil {
				s.storeError(w, err)
				return
			}
			writeJSON(w, playerStatsResponse{PlayerID: playerID, Scope: "league", ScopeID: leagueID, WinRatio: ratio})
		default:
			http.Error(w, "Missing sportID or leagueID parameter", http.StatusBadRequest)
		}
	}
}
