package standings

import (
	"fmt"

	"github.com/charmbracelet/log"
	"playbracket/internal/bracket"
	"playbracket/internal/metrics"
)

// Service computes derived statistics on demand. Nothing is cached or
// persisted; every call goes back to the store.
type Service struct {
	store   bracket.BracketStore
	metrics metrics.Metrics
}

// New creates a new standings Service.
func New(store bracket.BracketStore, metrics metrics.Metrics) *Service {
	return &Service{
		store:   store,
		metrics: metrics,
	}
}

// SportWinRatio is the player's win percentage across all matches whose
// league belongs to the given sport.
func (s *Service) SportWinRatio(playerID, sportID string) (float64, error) {
	won, err := s.store.CountPlayerWinsBySport(playerID, sportID)
	if err != nil {
		return 0, fmt.Errorf("failed to count sport wins: %w", err)
	}
	lost, err := s.store.CountPlayerLossesBySport(playerID, sportID)
	if err != nil {
		return 0, fmt.Errorf("failed to count sport losses: %w", err)
	}
	return HitRatio(won, won+lost), nil
}

// LeagueWinRatio is the player's win percentage across the matches of a
// single league.
func (s *Service) LeagueWinRatio(playerID, leagueID string) (float64, error) {
	won, err := s.store.CountPlayerWinsByLeague(playerID, leagueID)
	if err != nil {
		return 0, fmt.Errorf("failed to count league wins: %w", err)
	}
	lost, err := s.store.CountPlayerLossesByLeague(playerID, leagueID)
	if err != nil {
		return 0, fmt.Errorf("failed to count league losses: %w", err)
	}
	return HitRatio(won, won+lost), nil
}

// EventRanking loads the event's matches and ranks every player who
// appears in them.
func (s *Service) EventRanking(eventID string) ([]PlayerResult, error) {
	matches, err := s.store.EventMatches(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event matches: %w", err)
	}
	results := EventRanking(matches)
	s.metrics.IncRankingsComputed()
	log.Debug("Computed event ranking", "eventID", eventID, "players", len(results), "matches", len(matches))
	return results, nil
}

// EventPlayerResult computes one player's result within an event.
func (s *Service) EventPlayerResult(eventID, playerName string) (PlayerResult, error) {
	matches, err := s.store.EventMatches(eventID)
	if err != nil {
		return PlayerResult{}, fmt.Errorf("failed to load event matches: %w", err)
	}
	return PlayerResultFor(matches, playerName), nil
}
