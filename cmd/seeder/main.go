package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/hockey-stats/internal/config"
	"github.com/mauv0809/hockey-stats/internal/database"
	"github.com/mauv0809/hockey-stats/internal/gamedate"
	"github.com/mauv0809/hockey-stats/internal/roster"
	"github.com/mauv0809/hockey-stats/internal/stats"
)

const numGames = 12

var opponents = []string{"Wolves", "Owls", "Blizzard", "Ice Cats", "Storm", "Grizzlies"}

func main() {
	log.Info("Starting database seeder...")
	cfg := config.Load()

	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	ctx := context.Background()
	rosterStore := roster.New(db)
	added, err := rosterStore.Seed(ctx, roster.DefaultRoster)
	if err != nil {
		log.Fatalf("Failed to seed roster: %s", err)
	}
	log.Info("Ensured roster exists.", "added", added)

	players, err := rosterStore.ListPlayers(ctx)
	if err != nil {
		log.Fatalf("Failed to list players: %s", err)
	}

	statStore := stats.New(db)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	first := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, -7*numGames).Add(18 * time.Hour)

	log.Info("Preparing to insert demo games...", "total", numGames)
	startTime := time.Now()
	for i := 0; i < numGames; i++ {
		sub := demoGame(rng, players, first.AddDate(0, 0, 7*i), i)
		res, err := statStore.SubmitGame(ctx, sub)
		if err != nil {
			log.Fatalf("Failed to insert demo game %s: %s", sub.GameDate, err)
		}
		log.Debug("Inserted demo game", "game_date", sub.GameDate, "stats", res.Inserted)
	}
	log.Info("Successfully seeded demo games.", "total", numGames, "duration", time.Since(startTime))
}

// demoGame dresses a random subset of the roster and gives each skater plausible numbers.
func demoGame(rng *rand.Rand, players []roster.Player, when time.Time, n int) stats.Submission {
	sub := stats.Submission{
		GameDate: gamedate.ISO(when),
		GameName: fmt.Sprintf("Game %d vs %s", n+1, opponents[rng.Intn(len(opponents))]),
	}
	for _, p := range players {
		if rng.Intn(5) == 0 {
			continue
		}
		sub.Players = append(sub.Players, stats.Entry{
			PlayerID:     p.ID,
			PlusMinus:    stats.Int(rng.Intn(7) - 3),
			BlockedShots: stats.Int(rng.Intn(4)),
			Takeaways:    stats.Int(rng.Intn(3)),
			ShotsTaken:   stats.Int(rng.Intn(5)),
		})
	}
	return sub
}
