package metrics

import "sync"

// MockMetrics is a mock implementation of the Metrics interface for testing.
// It counts calls instead of registering Prometheus collectors.
type MockMetrics struct {
	mu sync.Mutex

	MatchesRecordedCalls    int
	ValidationFailuresCalls int
	RankingsComputedCalls   int
	NotifSentCalls          int
	NotifFailedCalls        int
	StartupTimes            []float64
}

var _ Metrics = (*MockMetrics)(nil)

// NewMockMetrics creates a new mock instance.
func NewMockMetrics() *MockMetrics {
	return &MockMetrics{}
}

func (m *MockMetrics) IncMatchesRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchesRecordedCalls++
}

func (m *MockMetrics) IncValidationFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ValidationFailuresCalls++
}

func (m *MockMetrics) IncRankingsComputed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RankingsComputedCalls++
}

func (m *MockMetrics) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifSentCalls++
}

func (m *MockMetrics) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifFailedCalls++
}

func (m *MockMetrics) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTimes = append(m.StartupTimes, duration)
}
