package notifier

import (
	"playbracket/internal/bracket"
	"playbracket/internal/standings"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For freshly recorded matches
	SendMatchRecorded(match *bracket.Match, dryRun bool) error
	// For event rankings
	SendEventRanking(event bracket.Event, results []standings.PlayerResult, dryRun bool) error
	// For single-player statistics
	SendPlayerStats(result standings.PlayerResult, scope string, dryRun bool) error
}
