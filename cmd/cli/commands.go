package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	matchDate    string
	matchWinners []string
	matchLosers  []string
	matchLeague  string
	matchEvent   string
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(sportsCmd)
	rootCmd.AddCommand(leaguesCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(rankingCmd)
	rootCmd.AddCommand(metricsCmd)

	recordCmd.Flags().StringVar(&matchDate, "date", "", "Match date (YYYY-MM-DD, defaults to today)")
	recordCmd.Flags().StringSliceVar(&matchWinners, "winners", nil, "Winner player names")
	recordCmd.Flags().StringSliceVar(&matchLosers, "losers", nil, "Loser player names")
	recordCmd.Flags().StringVar(&matchLeague, "league", "", "League ID to attach the match to")
	recordCmd.Flags().StringVar(&matchEvent, "event", "", "Event ID to attach the match to")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players in the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var sportsCmd = &cobra.Command{
	Use:   "sports",
	Short: "List the sports in the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/sports")
	},
}

var leaguesCmd = &cobra.Command{
	Use:   "leagues",
	Short: "List the leagues in the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/leagues")
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the events in the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/events")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the recorded matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches")
	},
}

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a match between winners and losers",
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{
			"winners": matchWinners,
			"losers":  matchLosers,
		}
		if matchDate != "" {
			body["date"] = matchDate
		}
		if matchLeague != "" {
			body["league_id"] = matchLeague
		}
		if matchEvent != "" {
			body["event_id"] = matchEvent
		}
		return performPostRequest("/matches", body)
	},
}

var rankingCmd = &cobra.Command{
	Use:   "ranking [eventID]",
	Short: "Show the ranking for an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/events/ranking?eventID=" + url.QueryEscape(args[0]))
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, body any) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
