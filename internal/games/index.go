package games

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/charmbracelet/log"
	"github.com/mauv0809/hockey-stats/internal/database"
	"github.com/mauv0809/hockey-stats/internal/gamedate"
)

// New creates a new games Index.
func New(db *sql.DB) Index {
	return &store{
		db: db,
	}
}

// ListGames merges the explicit games rows with the dates that only appear in game_stats and
// returns them newest first. Nothing here is persisted.
func (s *store) ListGames(ctx context.Context) ([]GameView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make(map[string]string)
	rows, err := database.Query(ctx, s.db, sq.Select("game_date", "name").From("games"))
	if err != nil {
		log.Error("Failed to query games", "error", err)
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	for rows.Next() {
		var key string
		var name sql.NullString
		if err := rows.Scan(&key, &name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}
		names[key] = name.String
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	rows, err = database.Query(ctx, s.db, sq.Select("game_date", "COUNT(*)").From("game_stats").GroupBy("game_date"))
	if err != nil {
		log.Error("Failed to query game stat dates", "error", err)
		return nil, fmt.Errorf("failed to query game stat dates: %w", err)
	}
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan game stat date: %w", err)
		}
		counts[key] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{}, len(names)+len(counts))
	for k := range names {
		keys[k] = struct{}{}
	}
	for k := range counts {
		keys[k] = struct{}{}
	}

	views := make([]GameView, 0, len(keys))
	for k := range keys {
		d, err := gamedate.FromKey(k)
		if err != nil {
			log.Warn("Skipping game with unreadable date", "game_date", k, "error", err)
			continue
		}
		views = append(views, GameView{
			GameDate:     d,
			DateStr:      gamedate.Display(d),
			DateISO:      gamedate.ISO(d),
			Name:         names[k],
			EntriesCount: counts[k],
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].GameDate.After(views[j].GameDate) })
	return views, nil
}

// GetGame returns the explicit games row for a date.
func (s *store) GetGame(ctx context.Context, gameDate time.Time) (*Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var g Game
	var name sql.NullString
	key := gamedate.Key(gameDate)
	err := database.Get(ctx, s.db, sq.Select("id", "name").From("games").Where(sq.Eq{"game_date": key}), &g.ID, &name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrGameNotFound, key)
		}
		return nil, fmt.Errorf("failed to get game %s: %w", key, err)
	}
	g.GameDate = gameDate
	g.Name = name.String
	return &g, nil
}

// DeleteGame removes every counter set for the date and the games row if there is one.
// On failure nothing is removed.
func (s *store) DeleteGame(ctx context.Context, gameDate time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deleteGameTx(ctx, tx, gamedate.Key(gameDate)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit game deletion: %w", err)
	}
	log.Info("Deleted game", "game_date", gamedate.Key(gameDate))
	return nil
}

func (s *store) DeleteGames(ctx context.Context, dates []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var skipped []string
	deleted := 0
	for _, raw := range dates {
		d, err := gamedate.Parse(raw)
		if err != nil {
			log.Warn("Skipping unparseable game date in bulk delete", "date", raw)
			skipped = append(skipped, raw)
			continue
		}
		if err := deleteGameTx(ctx, tx, gamedate.Key(d)); err != nil {
			return nil, err
		}
		deleted++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bulk game deletion: %w", err)
	}
	log.Info("Bulk deleted games", "deleted", deleted, "skipped", len(skipped))
	return skipped, nil
}

func deleteGameTx(ctx context.Context, tx *sql.Tx, key string) error {
	if _, err := database.Exec(ctx, tx, sq.Delete("game_stats").Where(sq.Eq{"game_date": key})); err != nil {
		return fmt.Errorf("failed to delete stats for game %s: %w", key, err)
	}
	if _, err := database.Exec(ctx, tx, sq.Delete("games").Where(sq.Eq{"game_date": key})); err != nil {
		return fmt.Errorf("failed to delete game %s: %w", key, err)
	}
	return nil
}
