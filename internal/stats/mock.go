package stats

import (
	"context"
	"sync"
	"time"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	SubmitGameFunc       func(ctx context.Context, sub Submission) (*Result, error)
	TotalsFunc           func(ctx context.Context, playerID int64) (Totals, error)
	PlayerTotalsFunc     func(ctx context.Context) ([]PlayerTotals, error)
	PlayerHistoryFunc    func(ctx context.Context, playerID int64) ([]CounterSet, error)
	GameSheetFunc        func(ctx context.Context, gameDate time.Time) ([]CounterSet, error)
	DeleteCounterSetFunc func(ctx context.Context, id int64) (int64, error)

	// Call records
	SubmitGameCalls       []Submission
	DeleteCounterSetCalls []int64
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) SubmitGame(ctx context.Context, sub Submission) (*Result, error) {
	m.mu.Lock()
	m.SubmitGameCalls = append(m.SubmitGameCalls, sub)
	m.mu.Unlock()
	if m.SubmitGameFunc != nil {
		return m.SubmitGameFunc(ctx, sub)
	}
	return &Result{Success: true, Message: MessageSaved}, nil
}

func (m *MockStore) Totals(ctx context.Context, playerID int64) (Totals, error) {
	if m.TotalsFunc != nil {
		return m.TotalsFunc(ctx, playerID)
	}
	return Totals{}, nil
}

func (m *MockStore) PlayerTotals(ctx context.Context) ([]PlayerTotals, error) {
	if m.PlayerTotalsFunc != nil {
		return m.PlayerTotalsFunc(ctx)
	}
	return []PlayerTotals{}, nil
}

func (m *MockStore) PlayerHistory(ctx context.Context, playerID int64) ([]CounterSet, error) {
	if m.PlayerHistoryFunc != nil {
		return m.PlayerHistoryFunc(ctx, playerID)
	}
	return []CounterSet{}, nil
}

func (m *MockStore) GameSheet(ctx context.Context, gameDate time.Time) ([]CounterSet, error) {
	if m.GameSheetFunc != nil {
		return m.GameSheetFunc(ctx, gameDate)
	}
	return []CounterSet{}, nil
}

func (m *MockStore) DeleteCounterSet(ctx context.Context, id int64) (int64, error) {
	m.mu.Lock()
	m.DeleteCounterSetCalls = append(m.DeleteCounterSetCalls, id)
	m.mu.Unlock()
	if m.DeleteCounterSetFunc != nil {
		return m.DeleteCounterSetFunc(ctx, id)
	}
	return 0, nil
}
