package roster

import "context"

// Roster defines the operations on the team's player roster.
type Roster interface {
	ListPlayers(ctx context.Context) ([]Player, error)
	GetPlayer(ctx context.Context, id int64) (*Player, error)
	Seed(ctx context.Context, entries []Entry) (int, error)

	// Admin corrections
	AddPlayer(ctx context.Context, number int, name string) (*Player, error)
	RenamePlayer(ctx context.Context, id int64, name string) error
	DeletePlayer(ctx context.Context, id int64) error
}
