package slack

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"
	"playbracket/internal/bracket"
	"playbracket/internal/standings"
)

// formatMatchRecorded creates the Slack message for a recorded match using Block Kit.
func (s *Notifier) formatMatchRecorded(match *bracket.Match) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Match recorded! 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var winners, losers []string
	for _, p := range match.Winners {
		winners = append(winners, p.Name)
	}
	for _, p := range match.Losers {
		losers = append(losers, p.Name)
	}

	detailsText := fmt.Sprintf("Date: %s\nWinners: %s\nLosers: %s",
		match.Date.Format(bracket.DateLayout),
		strings.Join(winners, ", "),
		strings.Join(losers, ", "))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	if match.WinnerScore != nil && match.LoserScore != nil {
		scoreText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("Score: %d - %d", *match.WinnerScore, *match.LoserScore), true, false)
		blocks = append(blocks, slack.NewContextBlock("", scoreText))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatEventRanking creates the Slack message for an event ranking using Block Kit.
// Results are assumed to arrive already ranked.
func (s *Notifier) formatEventRanking(event bracket.Event, results []standings.PlayerResult) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("📊 Ranking: %s 📊", event.String()), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(results) == 0 {
		emptyText := slack.NewTextBlockObject("plain_text", "No matches recorded for this event yet.", true, false)
		blocks = append(blocks, slack.NewSectionBlock(emptyText, nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	var lines []string
	for i, r := range results {
		lines = append(lines, fmt.Sprintf("%d. %s - %d won / %d lost (%.1f%%)", i+1, r.Name, r.Won, r.Lost, r.WinRatio))
	}
	rankingText := slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false)
	blocks = append(blocks, slack.NewSectionBlock(rankingText, nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerStats creates the Slack message for a single player's statistics.
func (s *Notifier) formatPlayerStats(result standings.PlayerResult, scope string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏅 Stats for %s 🏅", result.Name), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("Scope: %s\nWon: %d\nLost: %d\nWin ratio: %.1f%%", scope, result.Won, result.Lost, result.WinRatio)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}
