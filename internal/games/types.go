package games

import (
	"database/sql"
	"errors"
	"sync"
	"time"
)

var ErrGameNotFound = errors.New("game not found")

// store handles database operations for games.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Game is an explicit games row.
type Game struct {
	ID       int64     `json:"id"`
	GameDate time.Time `json:"game_date"`
	Name     string    `json:"name"`
}

// GameView is one line of the games listing.
type GameView struct {
	GameDate     time.Time `json:"game_date"`
	DateStr      string    `json:"date_str"`
	DateISO      string    `json:"date_iso"`
	Name         string    `json:"name"`
	EntriesCount int       `json:"entries_count"`
}
