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

func NewServer(rosterStore roster.Roster, statStore stats.Store, gameIndex games.Index, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Roster:         rosterStore,
		Stats:          statStore,
		Games:          gameIndex,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), requestIDMiddleware, paramsMiddleware, authMiddleware)
	std := []Middleware{requestIDMiddleware, paramsMiddleware}
	slackCmd := []Middleware{requestIDMiddleware, paramsMiddleware, slackVerifyMiddleware(s.Cfg.Slack.SigningSecret)}

	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), std...))

	s.Router.Handle("GET /{$}", Chain(s.DashboardHandler(), std...))
	s.Router.Handle("GET /api/dashboard", Chain(s.DashboardHandler(), std...))
	s.Router.Handle("GET /api/players", Chain(s.ListPlayersHandler(), std...))
	s.Router.Handle("GET /api/record-game", Chain(s.RecordGameHandler(), std...))
	s.Router.Handle("POST /save_game_stats", Chain(s.SaveGameStatsHandler(), std...))
	s.Router.Handle("GET /player/{id}", Chain(s.PlayerDetailHandler(), std...))
	s.Router.Handle("POST /api/players", Chain(s.AddPlayerHandler(), std...))
	s.Router.Handle("POST /player/{id}/rename", Chain(s.RenamePlayerHandler(), std...))
	s.Router.Handle("POST /delete_player/{id}", Chain(s.DeletePlayerHandler(), std...))
	s.Router.Handle("POST /delete_stat/{id}", Chain(s.DeleteStatHandler(), std...))
	s.Router.Handle("GET /games", Chain(s.ListGamesHandler(), std...))
	s.Router.Handle("POST /delete_game", Chain(s.DeleteGameHandler(), std...))
	s.Router.Handle("POST /delete_games_bulk", Chain(s.DeleteGamesBulkHandler(), std...))

	s.Router.Handle("POST /slack/command/leaderboard", Chain(s.LeaderboardCommandHandler(), slackCmd...))
	s.Router.Handle("POST /pubsub/game-submitted", Chain(s.GameSubmittedPushHandler(), std...))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
