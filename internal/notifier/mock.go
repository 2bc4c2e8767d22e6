package notifier

import (
	"sync"

	"github.com/mauv0809/hockey-stats/internal/stats"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies
	SendGameSummaryFunc           func(summary GameSummary, dryRun bool) error
	FormatLeaderboardResponseFunc func(players []stats.PlayerTotals) (any, error)

	// Call records
	SendGameSummaryCalls    []GameSummary
	LastLeaderboardResponse any
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendGameSummaryCalls = nil
	m.LastLeaderboardResponse = nil
}

func (m *Mock) SendGameSummary(summary GameSummary, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendGameSummaryCalls = append(m.SendGameSummaryCalls, summary)
	if m.SendGameSummaryFunc != nil {
		return m.SendGameSummaryFunc(summary, dryRun)
	}
	return nil
}

func (m *Mock) FormatLeaderboardResponse(players []stats.PlayerTotals) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatLeaderboardResponseFunc != nil {
		resp, err := m.FormatLeaderboardResponseFunc(players)
		m.LastLeaderboardResponse = resp
		return resp, err
	}
	return "formatted_leaderboard", nil
}

// GameSummaries returns a copy of the recorded SendGameSummary calls.
func (m *Mock) GameSummaries() []GameSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]GameSummary(nil), m.SendGameSummaryCalls...)
}
