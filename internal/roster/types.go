package roster

import (
	"database/sql"
	"errors"
	"sync"
)

var (
	ErrPlayerNotFound  = errors.New("player not found")
	ErrDuplicateNumber = errors.New("jersey number already on the roster")
)

// store handles all database operations for the roster.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Player is a member of the roster.
type Player struct {
	ID     int64  `json:"id"`
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// Entry is one line of the fixed roster table used for seeding.
type Entry struct {
	Number int
	Name   string
}

// DefaultRoster is the team's roster.
var DefaultRoster = []Entry{
	{4, "Ryder"},
	{5, "Sebastian"},
	{6, "Hudson"},
	{11, "Juna"},
	{12, "Bowen"},
	{13, "Cole"},
	{14, "Leo"},
	{16, "Shea"},
	{20, "Pierre"},
	{29, "Matthew"},
	{35, "Carter"},
	{37, "Slade"},
	{38, "Andrew"},
	{39, "Ryland"},
	{41, "Asher"},
	{44, "Brooks"},
}
