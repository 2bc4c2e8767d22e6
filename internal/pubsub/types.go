package pubsub

import (
	"time"

	"cloud.google.com/go/pubsub"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

type noopClient struct{}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventGameSubmitted EventType = "game-submitted"
	EventGameDeleted   EventType = "game-deleted"
)

// GameSubmitted is published after a stat sheet commits.
type GameSubmitted struct {
	GameDate    time.Time `msgpack:"game_date"`
	GameName    string    `msgpack:"game_name"`
	Autosave    bool      `msgpack:"autosave"`
	Inserted    int       `msgpack:"inserted"`
	Updated     int       `msgpack:"updated"`
	Deleted     int       `msgpack:"deleted"`
	GameCreated bool      `msgpack:"game_created"`
}

// GameDeleted is published after one or more games are removed.
type GameDeleted struct {
	GameDates []string `msgpack:"game_dates"`
}
