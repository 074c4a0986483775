package standings

import (
	"sort"

	"playbracket/internal/bracket"
)

// PlayerResult is one player's aggregate outcome across a set of matches.
type PlayerResult struct {
	Name     string  `json:"name"`
	Won      int     `json:"won"`
	Lost     int     `json:"lost"`
	Total    int     `json:"total"`
	WinRatio float64 `json:"win_ratio"`
}

// EventRanking computes the ranking across the given matches, one entry
// per distinct player appearing in any match's winners or losers. These
// are pure in-memory aggregations: callers pass the event's matches and
// no datastore is touched.
func EventRanking(matches []bracket.Match) []PlayerResult {
	tally := make(map[string]*PlayerResult)

	record := func(players []bracket.Player, won bool) {
		for _, p := range players {
			r, ok := tally[p.Name]
			if !ok {
				r = &PlayerResult{Name: p.Name}
				tally[p.Name] = r
			}
			if won {
				r.Won++
			} else {
				r.Lost++
			}
		}
	}

	for _, m := range matches {
		record(m.Winners, true)
		record(m.Losers, false)
	}

	results := make([]PlayerResult, 0, len(tally))
	for _, r := range tally {
		r.Total = r.Won + r.Lost
		r.WinRatio = HitRatio(r.Won, r.Total)
		results = append(results, *r)
	}
	return Rank(results)
}

// PlayerResultFor computes a single player's result across the given
// matches. Players absent from every match come back with all-zero
// counts and a 0 ratio.
func PlayerResultFor(matches []bracket.Match, name string) PlayerResult {
	r := PlayerResult{Name: name}
	for _, m := range matches {
		for _, p := range m.Winners {
			if p.Name == name {
				r.Won++
			}
		}
		for _, p := range m.Losers {
			if p.Name == name {
				r.Lost++
			}
		}
	}
	r.Total = r.Won + r.Lost
	r.WinRatio = HitRatio(r.Won, r.Total)
	return r
}

// Rank sorts results by win ratio descending. Ties break by player name
// ascending so the ordering is deterministic across runs.
func Rank(results []PlayerResult) []PlayerResult {
	sort.Slice(results, func(i, j int) bool {
		if results[i].WinRatio != results[j].WinRatio {
			return results[i].WinRatio > results[j].WinRatio
		}
		return results[i].Name < results[j].Name
	})
	return results
}

// EventPlayers returns the distinct players across the given matches,
// the union of each match's winners and losers, in first-appearance
// order.
func EventPlayers(matches []bracket.Match) []bracket.Player {
	seen := make(map[string]bool)
	var players []bracket.Player
	for _, m := range matches {
		for _, p := range m.Players() {
			if seen[p.Name] {
				continue
			}
			seen[p.Name] = true
			players = append(players, p)
		}
	}
	return players
}
