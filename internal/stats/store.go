package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/charmbracelet/log"
	"github.com/mauv0809/hockey-stats/internal/database"
	"github.com/mauv0809/hockey-stats/internal/gamedate"
)

var counterSetColumns = []string{"id", "player_id", "game_date", "plus_minus", "blocked_shots", "takeaways", "shots_taken"}

// New creates a new stats Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// Totals sums every counter set owned by the player. Nothing is cached.
func (s *store) Totals(ctx context.Context, playerID int64) (Totals, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var t Totals
	q := sq.Select(
		"COALESCE(SUM(plus_minus), 0)",
		"COALESCE(SUM(blocked_shots), 0)",
		"COALESCE(SUM(takeaways), 0)",
		"COALESCE(SUM(shots_taken), 0)",
		"COUNT(id)",
	).From("game_stats").Where(sq.Eq{"player_id": playerID})

	err := database.Get(ctx, s.db, q, &t.PlusMinus, &t.BlockedShots, &t.Takeaways, &t.ShotsTaken, &t.GamesPlayed)
	if err != nil {
		log.Error("Failed to compute player totals", "error", err, "playerID", playerID)
		return Totals{}, fmt.Errorf("failed to compute totals for player %d: %w", playerID, err)
	}
	return t, nil
}

// PlayerTotals returns the whole roster, ordered by jersey number, with lifetime totals.
func (s *store) PlayerTotals(ctx context.Context) ([]PlayerTotals, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := sq.Select(
		"p.id", "p.number", "p.name",
		"COALESCE(SUM(gs.plus_minus), 0)",
		"COALESCE(SUM(gs.blocked_shots), 0)",
		"COALESCE(SUM(gs.takeaways), 0)",
		"COALESCE(SUM(gs.shots_taken), 0)",
		"COUNT(gs.id)",
	).
		From("players p").
		LeftJoin("game_stats gs ON gs.player_id = p.id").
		GroupBy("p.id", "p.number", "p.name").
		OrderBy("p.number")

	rows, err := database.Query(ctx, s.db, q)
	if err != nil {
		log.Error("Failed to query player totals", "error", err)
		return nil, fmt.Errorf("failed to query player totals: %w", err)
	}
	defer rows.Close()

	result := make([]PlayerTotals, 0)
	for rows.Next() {
		var pt PlayerTotals
		if err := rows.Scan(&pt.ID, &pt.Number, &pt.Name,
			&pt.Stats.PlusMinus, &pt.Stats.BlockedShots, &pt.Stats.Takeaways, &pt.Stats.ShotsTaken,
			&pt.Stats.GamesPlayed); err != nil {
			return nil, fmt.Errorf("failed to scan player totals row: %w", err)
		}
		result = append(result, pt)
	}
	return result, rows.Err()
}

func (s *store) PlayerHistory(ctx context.Context, playerID int64) ([]CounterSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := sq.Select(counterSetColumns...).
		From("game_stats").
		Where(sq.Eq{"player_id": playerID}).
		OrderBy("game_date DESC")
	return s.queryCounterSets(ctx, q)
}

// GameSheet returns every counter set recorded for one game, ordered by player.
func (s *store) GameSheet(ctx context.Context, gameDate time.Time) ([]CounterSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := sq.Select(counterSetColumns...).
		From("game_stats").
		Where(sq.Eq{"game_date": gamedate.Key(gameDate)}).
		OrderBy("player_id")
	return s.queryCounterSets(ctx, q)
}

func (s *store) queryCounterSets(ctx context.Context, q sq.SelectBuilder) ([]CounterSet, error) {
	rows, err := database.Query(ctx, s.db, q)
	if err != nil {
		log.Error("Failed to query counter sets", "error", err)
		return nil, fmt.Errorf("failed to query counter sets: %w", err)
	}
	defer rows.Close()

	sets := make([]CounterSet, 0)
	for rows.Next() {
		cs, err := scanCounterSet(rows)
		if err != nil {
			return nil, err
		}
		sets = append(sets, *cs)
	}
	return sets, rows.Err()
}

func scanCounterSet(scanner interface{ Scan(...any) error }) (*CounterSet, error) {
	var cs CounterSet
	var dateKey string
	err := scanner.Scan(&cs.ID, &cs.PlayerID, &dateKey, &cs.PlusMinus, &cs.BlockedShots, &cs.Takeaways, &cs.ShotsTaken)
	if err != nil {
		return nil, fmt.Errorf("failed to scan counter set row: %w", err)
	}
	cs.GameDate, err = gamedate.FromKey(dateKey)
	if err != nil {
		return nil, err
	}
	return &cs, nil
}

// DeleteCounterSet removes a single counter set. Game metadata is left alone, so a named game
// keeps its row even when its last counter set goes.
func (s *store) DeleteCounterSet(ctx context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var playerID int64
	err = database.Get(ctx, tx, sq.Select("player_id").From("game_stats").Where(sq.Eq{"id": id}), &playerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: id %d", ErrStatNotFound, id)
		}
		return 0, fmt.Errorf("failed to look up stat %d: %w", id, err)
	}

	if _, err := database.Exec(ctx, tx, sq.Delete("game_stats").Where(sq.Eq{"id": id})); err != nil {
		return 0, fmt.Errorf("failed to delete stat %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit stat deletion: %w", err)
	}
	log.Info("Deleted counter set", "id", id, "playerID", playerID)
	return playerID, nil
}
