package stats

import (
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"time"
)

var ErrStatNotFound = errors.New("stat not found")

const (
	MessageSaved     = "Game stats saved successfully!"
	MessageAutosaved = "Autosaved"
)

// store handles all database operations for game stats.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Counters are the four defensive stats tracked per player per game.
type Counters struct {
	PlusMinus    int `json:"plus_minus"`
	BlockedShots int `json:"blocked_shots"`
	Takeaways    int `json:"takeaways"`
	ShotsTaken   int `json:"shots_taken"`
}

// IsZero reports whether all four counters are zero. Such a set is never stored.
func (c Counters) IsZero() bool {
	return c.PlusMinus == 0 && c.BlockedShots == 0 && c.Takeaways == 0 && c.ShotsTaken == 0
}

// CounterSet is one player's counters for one game.
type CounterSet struct {
	ID       int64     `json:"id"`
	PlayerID int64     `json:"player_id"`
	GameDate time.Time `json:"game_date"`
	Counters
}

// Totals are a player's counters summed over every game they have a counter set for.
type Totals struct {
	Counters
	GamesPlayed int `json:"games_played"`
}

// PlayerTotals is a roster line on the dashboard.
type PlayerTotals struct {
	ID     int64  `json:"id"`
	Number int    `json:"number"`
	Name   string `json:"name"`
	Stats  Totals `json:"stats"`
}

// Submission is a full stat sheet for one game as posted by the record-game form.
type Submission struct {
	GameDate string  `json:"game_date"`
	GameName string  `json:"game_name,omitempty"`
	Autosave bool    `json:"autosave,omitempty"`
	Players  []Entry `json:"players"`
}

// Entry is one player's line on a stat sheet. Counter fields keep the raw submitted JSON so that
// numbers, numeric strings, empty strings and null are all accepted; see Coerce.
type Entry struct {
	PlayerID     int64           `json:"player_id"`
	PlusMinus    json.RawMessage `json:"plus_minus,omitempty"`
	BlockedShots json.RawMessage `json:"blocked_shots,omitempty"`
	Takeaways    json.RawMessage `json:"takeaways,omitempty"`
	ShotsTaken   json.RawMessage `json:"shots_taken,omitempty"`
}

// Result reports the outcome of a submission.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	GameDate    time.Time `json:"-"`
	Inserted    int       `json:"-"`
	Updated     int       `json:"-"`
	Deleted     int       `json:"-"`
	GameCreated bool      `json:"-"`
}

// line is an Entry after coercion.
type line struct {
	playerID int64
	Counters
}
