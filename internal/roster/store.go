package roster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/charmbracelet/log"
	"github.com/mauv0809/hockey-stats/internal/database"
)

var playerColumns = []string{"id", "number", "name"}

// New creates a new Roster backed by db.
func New(db *sql.DB) Roster {
	return &store{
		db: db,
	}
}

// ListPlayers returns every player ordered by jersey number.
func (s *store) ListPlayers(ctx context.Context) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := database.Query(ctx, s.db, sq.Select(playerColumns...).From("players").OrderBy("number"))
	if err != nil {
		log.Error("Failed to query players", "error", err)
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := make([]Player, 0)
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Number, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (s *store) GetPlayer(ctx context.Context, id int64) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p Player
	q := sq.Select(playerColumns...).From("players").Where(sq.Eq{"id": id})
	err := database.Get(ctx, s.db, q, &p.ID, &p.Number, &p.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", ErrPlayerNotFound, id)
		}
		return nil, fmt.Errorf("failed to get player %d: %w", id, err)
	}
	return &p, nil
}

// Seed inserts each roster entry whose number is not taken yet. Existing players are left
// untouched, so seeding twice is harmless. It returns how many players were inserted.
func (s *store) Seed(ctx context.Context, entries []Entry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	inserted := 0
	for _, e := range entries {
		taken, err := numberTaken(ctx, tx, e.Number)
		if err != nil {
			return 0, err
		}
		if taken {
			continue
		}
		if _, err := database.Exec(ctx, tx, insertPlayer(e.Number, e.Name)); err != nil {
			return 0, fmt.Errorf("failed to insert player #%d: %w", e.Number, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	log.Info("Roster seeded", "inserted", inserted, "entries", len(entries))
	return inserted, nil
}

func (s *store) AddPlayer(ctx context.Context, number int, name string) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	taken, err := numberTaken(ctx, s.db, number)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: #%d", ErrDuplicateNumber, number)
	}

	res, err := database.Exec(ctx, s.db, insertPlayer(number, name))
	if err != nil {
		return nil, fmt.Errorf("failed to add player #%d: %w", number, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	log.Info("Added player to roster", "id", id, "number", number, "name", name)
	return &Player{ID: id, Number: number, Name: name}, nil
}

func (s *store) RenamePlayer(ctx context.Context, id int64, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := database.Exec(ctx, s.db, sq.Update("players").Set("name", name).Where(sq.Eq{"id": id}))
	if err != nil {
		return fmt.Errorf("failed to rename player %d: %w", id, err)
	}
	return requireOneRow(res, id)
}

// DeletePlayer removes a player. Their stat rows go with them through the foreign key cascade.
func (s *store) DeletePlayer(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := database.Exec(ctx, s.db, sq.Delete("players").Where(sq.Eq{"id": id}))
	if err != nil {
		return fmt.Errorf("failed to delete player %d: %w", id, err)
	}
	if err := requireOneRow(res, id); err != nil {
		return err
	}
	log.Info("Deleted player from roster", "id", id)
	return nil
}

func numberTaken(ctx context.Context, q database.Querier, number int) (bool, error) {
	var n int
	err := database.Get(ctx, q, sq.Select("COUNT(*)").From("players").Where(sq.Eq{"number": number}), &n)
	if err != nil {
		return false, fmt.Errorf("failed to check player #%d: %w", number, err)
	}
	return n > 0, nil
}

func insertPlayer(number int, name string) sq.InsertBuilder {
	return sq.Insert("players").Columns("number", "name").Values(number, name)
}

func requireOneRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrPlayerNotFound, id)
	}
	return nil
}
