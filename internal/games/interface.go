package games

import (
	"context"
	"time"
)

// Index derives the list of known games and owns whole-game deletion.
type Index interface {
	ListGames(ctx context.Context) ([]GameView, error)
	GetGame(ctx context.Context, gameDate time.Time) (*Game, error)
	DeleteGame(ctx context.Context, gameDate time.Time) error
	// DeleteGames removes every parseable date in one transaction. Unparseable dates are skipped
	// and returned.
	DeleteGames(ctx context.Context, dates []string) (skipped []string, err error)
}
