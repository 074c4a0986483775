package notifier

import (
	"sync"

	"playbracket/internal/bracket"
	"playbracket/internal/standings"
)

// MockNotifier is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type MockNotifier struct {
	mu sync.Mutex

	// Spies for method calls
	SendMatchRecordedFunc func(match *bracket.Match, dryRun bool) error
	SendEventRankingFunc  func(event bracket.Event, results []standings.PlayerResult, dryRun bool) error
	SendPlayerStatsFunc   func(result standings.PlayerResult, scope string, dryRun bool) error

	// Call records
	SendMatchRecordedCalls []*bracket.Match
	SendEventRankingCalls  []SendEventRankingCall
	SendPlayerStatsCalls   []SendPlayerStatsCall
}

// SendEventRankingCall holds the arguments for a call to SendEventRanking.
type SendEventRankingCall struct {
	Event   bracket.Event
	Results []standings.PlayerResult
	DryRun  bool
}

// SendPlayerStatsCall holds the arguments for a call to SendPlayerStats.
type SendPlayerStatsCall struct {
	Result standings.PlayerResult
	Scope  string
	DryRun bool
}

var _ Notifier = (*MockNotifier)(nil)

// NewMock creates a new mock Notifier.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

// Reset clears all call records.
func (m *MockNotifier) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchRecordedCalls = nil
	m.SendEventRankingCalls = nil
	m.SendPlayerStatsCalls = nil
}

func (m *MockNotifier) SendMatchRecorded(match *bracket.Match, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchRecordedCalls = append(m.SendMatchRecordedCalls, match)
	if m.SendMatchRecordedFunc != nil {
		return m.SendMatchRecordedFunc(match, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendEventRanking(event bracket.Event, results []standings.PlayerResult, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendEventRankingCalls = append(m.SendEventRankingCalls, SendEventRankingCall{Event: event, Results: results, DryRun: dryRun})
	if m.SendEventRankingFunc != nil {
		return m.SendEventRankingFunc(event, results, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendPlayerStats(result standings.PlayerResult, scope string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerStatsCalls = append(m.SendPlayerStatsCalls, SendPlayerStatsCall{Result: result, Scope: scope, DryRun: dryRun})
	if m.SendPlayerStatsFunc != nil {
		return m.SendPlayerStatsFunc(result, scope, dryRun)
	}
	return nil
}
