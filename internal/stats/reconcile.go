package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/charmbracelet/log"
	"github.com/mauv0809/hockey-stats/internal/database"
	"github.com/mauv0809/hockey-stats/internal/gamedate"
	"github.com/mauv0809/hockey-stats/internal/roster"
)

// SubmitGame applies a stat sheet for one game. Each entry replaces the player's counter set for
// that date, and an all-zero entry removes it. The game row is created when the sheet carries a
// name or at least one non-zero entry, and its name is only ever overwritten by a non-empty one.
// Nothing is written unless every entry is valid and the whole sheet commits.
func (s *store) SubmitGame(ctx context.Context, sub Submission) (*Result, error) {
	gameDate, err := gamedate.Parse(sub.GameDate)
	if err != nil {
		return nil, err
	}
	lines, err := normalize(sub.Players)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(sub.GameName)
	key := gamedate.Key(gameDate)

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res := &Result{GameDate: gameDate}
	touched := false
	for _, l := range lines {
		if err := ensurePlayer(ctx, tx, l.playerID); err != nil {
			return nil, err
		}

		var existingID int64
		err := database.Get(ctx, tx,
			sq.Select("id").From("game_stats").Where(sq.Eq{"player_id": l.playerID, "game_date": key}),
			&existingID)
		exists := err == nil
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to look up stat for player %d: %w", l.playerID, err)
		}

		if l.IsZero() {
			if exists {
				if _, err := database.Exec(ctx, tx, sq.Delete("game_stats").Where(sq.Eq{"id": existingID})); err != nil {
					return nil, fmt.Errorf("failed to clear stat for player %d: %w", l.playerID, err)
				}
				res.Deleted++
			}
			continue
		}

		touched = true
		if exists {
			_, err = database.Exec(ctx, tx, sq.Update("game_stats").SetMap(map[string]any{
				"plus_minus":    l.PlusMinus,
				"blocked_shots": l.BlockedShots,
				"takeaways":     l.Takeaways,
				"shots_taken":   l.ShotsTaken,
			}).Where(sq.Eq{"id": existingID}))
			if err != nil {
				return nil, fmt.Errorf("failed to update stat for player %d: %w", l.playerID, err)
			}
			res.Updated++
		} else {
			_, err = database.Exec(ctx, tx, sq.Insert("game_stats").
				Columns("player_id", "game_date", "plus_minus", "blocked_shots", "takeaways", "shots_taken").
				Values(l.playerID, key, l.PlusMinus, l.BlockedShots, l.Takeaways, l.ShotsTaken))
			if err != nil {
				return nil, fmt.Errorf("failed to insert stat for player %d: %w", l.playerID, err)
			}
			res.Inserted++
		}
	}

	created, err := upsertGame(ctx, tx, key, name, touched)
	if err != nil {
		return nil, err
	}
	res.GameCreated = created

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit game stats: %w", err)
	}

	res.Success = true
	res.Message = MessageSaved
	if sub.Autosave {
		res.Message = MessageAutosaved
	}
	log.Info("Game stats saved", "game_date", key, "inserted", res.Inserted, "updated", res.Updated,
		"deleted", res.Deleted, "game_created", res.GameCreated, "autosave", sub.Autosave)
	return res, nil
}

func ensurePlayer(ctx context.Context, tx *sql.Tx, playerID int64) error {
	var n int
	err := database.Get(ctx, tx, sq.Select("COUNT(*)").From("players").Where(sq.Eq{"id": playerID}), &n)
	if err != nil {
		return fmt.Errorf("failed to check player %d: %w", playerID, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", roster.ErrPlayerNotFound, playerID)
	}
	return nil
}

// upsertGame keeps the games row for key in line with a submission and reports whether it created one.
func upsertGame(ctx context.Context, tx *sql.Tx, key, name string, touched bool) (bool, error) {
	var gameID int64
	err := database.Get(ctx, tx, sq.Select("id").From("games").Where(sq.Eq{"game_date": key}), &gameID)
	switch {
	case err == nil:
		if name == "" {
			return false, nil
		}
		if _, err := database.Exec(ctx, tx, sq.Update("games").Set("name", name).Where(sq.Eq{"id": gameID})); err != nil {
			return false, fmt.Errorf("failed to rename game %s: %w", key, err)
		}
		return false, nil
	case errors.Is(err, sql.ErrNoRows):
		if name == "" && !touched {
			return false, nil
		}
		var stored any
		if name != "" {
			stored = name
		}
		if _, err := database.Exec(ctx, tx, sq.Insert("games").Columns("game_date", "name").Values(key, stored)); err != nil {
			return false, fmt.Errorf("failed to create game %s: %w", key, err)
		}
		return true, nil
	default:
		return false, fmt.Errorf("failed to look up game %s: %w", key, err)
	}
}
