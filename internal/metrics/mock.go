package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	submissions        int
	autosaves          int
	submissionFailures int
	inserted           int
	updated            int
	deleted            int
	submitDurations    []float64
	statsDeleted       int
	gamesDeleted       int
	deleteFailures     int
	slackNotifSent     int
	slackNotifFailed   int
	eventsPublished    int
	startupTime        float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		submitDurations: make([]float64, 0),
	}
}

func (m *Mock) IncSubmissions(autosave bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissions++
	if autosave {
		m.autosaves++
	}
}

func (m *Mock) IncSubmissionFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissionFailures++
}

func (m *Mock) AddCounterSetChanges(inserted, updated, deleted int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inserted += inserted
	m.updated += updated
	m.deleted += deleted
}

func (m *Mock) ObserveSubmitDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitDurations = append(m.submitDurations, seconds)
}

func (m *Mock) IncStatsDeleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statsDeleted++
}

func (m *Mock) AddGamesDeleted(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gamesDeleted += n
}

func (m *Mock) IncDeleteFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteFailures++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) IncEventsPublished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsPublished++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Submissions returns the number of times IncSubmissions was called.
func (m *Mock) Submissions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submissions
}

// SubmissionFailures returns the number of times IncSubmissionFailures was called.
func (m *Mock) SubmissionFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submissionFailures
}

// CounterSetChanges returns the accumulated inserted, updated and deleted counts.
func (m *Mock) CounterSetChanges() (int, int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inserted, m.updated, m.deleted
}

func (m *Mock) StatsDeleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statsDeleted
}

func (m *Mock) GamesDeleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gamesDeleted
}

func (m *Mock) DeleteFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleteFailures
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

func (m *Mock) EventsPublished() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventsPublished
}
