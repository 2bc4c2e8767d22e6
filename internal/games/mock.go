package games

import (
	"context"
	"sync"
	"time"
)

// MockIndex is a mock implementation of the Index interface for testing.
// It is safe for concurrent use.
type MockIndex struct {
	mu sync.Mutex

	// Spies for method calls
	ListGamesFunc   func(ctx context.Context) ([]GameView, error)
	GetGameFunc     func(ctx context.Context, gameDate time.Time) (*Game, error)
	DeleteGameFunc  func(ctx context.Context, gameDate time.Time) error
	DeleteGamesFunc func(ctx context.Context, dates []string) ([]string, error)

	// Call records
	DeleteGameCalls  []time.Time
	DeleteGamesCalls [][]string
}

// NewMock creates a new mock instance.
func NewMock() *MockIndex {
	return &MockIndex{}
}

func (m *MockIndex) ListGames(ctx context.Context) ([]GameView, error) {
	if m.ListGamesFunc != nil {
		return m.ListGamesFunc(ctx)
	}
	return []GameView{}, nil
}

func (m *MockIndex) GetGame(ctx context.Context, gameDate time.Time) (*Game, error) {
	if m.GetGameFunc != nil {
		return m.GetGameFunc(ctx, gameDate)
	}
	return nil, ErrGameNotFound
}

func (m *MockIndex) DeleteGame(ctx context.Context, gameDate time.Time) error {
	m.mu.Lock()
	m.DeleteGameCalls = append(m.DeleteGameCalls, gameDate)
	m.mu.Unlock()
	if m.DeleteGameFunc != nil {
		return m.DeleteGameFunc(ctx, gameDate)
	}
	return nil
}

func (m *MockIndex) DeleteGames(ctx context.Context, dates []string) ([]string, error) {
	m.mu.Lock()
	m.DeleteGamesCalls = append(m.DeleteGamesCalls, dates)
	m.mu.Unlock()
	if m.DeleteGamesFunc != nil {
		return m.DeleteGamesFunc(ctx, dates)
	}
	return nil, nil
}
