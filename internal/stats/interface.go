package stats

import (
	"context"
	"time"
)

// Store records per-game counter sets and derives lifetime totals from them.
type Store interface {
	// SubmitGame reconciles a full stat sheet for one game in a single transaction.
	SubmitGame(ctx context.Context, sub Submission) (*Result, error)

	Totals(ctx context.Context, playerID int64) (Totals, error)
	PlayerTotals(ctx context.Context) ([]PlayerTotals, error)

	// PlayerHistory returns a player's counter sets, newest game first.
	PlayerHistory(ctx context.Context, playerID int64) ([]CounterSet, error)
	GameSheet(ctx context.Context, gameDate time.Time) ([]CounterSet, error)

	// DeleteCounterSet removes one counter set and returns the id of the player it belonged to.
	DeleteCounterSet(ctx context.Context, id int64) (int64, error)
}
