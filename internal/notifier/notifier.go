package notifier

import (
	"time"

	"github.com/mauv0809/hockey-stats/internal/stats"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// After a stat sheet is saved
	SendGameSummary(summary GameSummary, dryRun bool) error

	// For slash commands
	FormatLeaderboardResponse(players []stats.PlayerTotals) (any, error)
}

// GameSummary is the stat sheet of one game with the players resolved.
type GameSummary struct {
	GameDate time.Time
	GameName string
	Lines    []SummaryLine
}

// SummaryLine is one player's counters in a GameSummary.
type SummaryLine struct {
	Number int
	Name   string
	stats.Counters
}
