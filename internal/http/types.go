package http

import (
	"net/http"

	"github.com/mauv0809/hockey-stats/internal/config"
	"github.com/mauv0809/hockey-stats/internal/games"
	"github.com/mauv0809/hockey-stats/internal/metrics"
	"github.com/mauv0809/hockey-stats/internal/notifier"
	"github.com/mauv0809/hockey-stats/internal/pubsub"
	"github.com/mauv0809/hockey-stats/internal/roster"
	"github.com/mauv0809/hockey-stats/internal/stats"
)

type Server struct {
	Roster         roster.Roster
	Stats          stats.Store
	Games          games.Index
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}

// recordGameView prefills the record-game form.
type recordGameView struct {
	Players         []roster.Player `json:"players"`
	InitialGameDate string          `json:"initial_game_date"`
	InitialGameName string          `json:"initial_game_name"`
}

// playerView is the player detail page.
type playerView struct {
	Player     *roster.Player     `json:"player"`
	GameStats  []stats.CounterSet `json:"game_stats"`
	TotalStats stats.Totals       `json:"total_stats"`
}

// pushEnvelope is the body Pub/Sub posts to a push subscription.
type pushEnvelope struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data       string            `json:"data"`
		Attributes map[string]string `json:"attributes"`
	} `json:"message"`
}
