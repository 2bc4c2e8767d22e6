package roster

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MockRoster is an in-memory implementation of the Roster interface for testing.
// It is safe for concurrent use.
type MockRoster struct {
	mu      sync.Mutex
	nextID  int64
	players map[int64]Player

	// Spies for method calls
	ListPlayersFunc func(ctx context.Context) ([]Player, error)
	GetPlayerFunc   func(ctx context.Context, id int64) (*Player, error)

	// Call records
	DeletePlayerCalls []int64
}

// NewMock creates a new mock instance holding the given players.
func NewMock(players ...Player) *MockRoster {
	m := &MockRoster{players: make(map[int64]Player)}
	for _, p := range players {
		m.players[p.ID] = p
		if p.ID > m.nextID {
			m.nextID = p.ID
		}
	}
	return m
}

func (m *MockRoster) ListPlayers(ctx context.Context) ([]Player, error) {
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	players := make([]Player, 0, len(m.players))
	for _, p := range m.players {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Number < players[j].Number })
	return players, nil
}

func (m *MockRoster) GetPlayer(ctx context.Context, id int64) (*Player, error) {
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.players[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrPlayerNotFound, id)
	}
	return &p, nil
}

func (m *MockRoster) Seed(ctx context.Context, entries []Entry) (int, error) {
	inserted := 0
	for _, e := range entries {
		if _, err := m.AddPlayer(ctx, e.Number, e.Name); err == nil {
			inserted++
		}
	}
	return inserted, nil
}

func (m *MockRoster) AddPlayer(_ context.Context, number int, name string) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.players {
		if p.Number == number {
			return nil, fmt.Errorf("%w: #%d", ErrDuplicateNumber, number)
		}
	}
	m.nextID++
	p := Player{ID: m.nextID, Number: number, Name: name}
	m.players[p.ID] = p
	return &p, nil
}

func (m *MockRoster) RenamePlayer(_ context.Context, id int64, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.players[id]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrPlayerNotFound, id)
	}
	p.Name = name
	m.players[id] = p
	return nil
}

func (m *MockRoster) DeletePlayer(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeletePlayerCalls = append(m.DeletePlayerCalls, id)
	if _, ok := m.players[id]; !ok {
		return fmt.Errorf("%w: id %d", ErrPlayerNotFound, id)
	}
	delete(m.players, id)
	return nil
}
