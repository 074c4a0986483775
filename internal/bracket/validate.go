package bracket

import "fmt"

// ValidationError is returned when a match violates the disjoint
// winners/losers invariant. It propagates to the caller as a rejected
// write; nothing retries it.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks that no player appears in both the winners and the
// losers of a match. The store runs this inside the same transaction as
// every create and update, but it is exported so callers can pre-check
// before committing to a write.
//
// Empty winner or loser sets are valid; the check is direction-aware and
// reports winners found among the losers before the reverse.
func (m *Match) Validate() error {
	winners := make(map[string]bool, len(m.Winners))
	losers := make(map[string]bool, len(m.Losers))
	for _, p := range m.Winners {
		winners[playerKey(p)] = true
	}
	for _, p := range m.Losers {
		losers[playerKey(p)] = true
	}

	for _, p := range m.Winners {
		if losers[playerKey(p)] {
			return &ValidationError{Message: fmt.Sprintf("a winner cannot also be a loser: %s", p.Name)}
		}
	}
	for _, p := range m.Losers {
		if winners[playerKey(p)] {
			return &ValidationError{Message: fmt.Sprintf("a loser cannot also be a winner: %s", p.Name)}
		}
	}
	return nil
}
